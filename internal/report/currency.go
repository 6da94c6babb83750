package report

import (
	"fmt"
	"math"
	"strings"
)

// FormatCurrency renders an amount with the "Rs. " prefix and Indian
// digit grouping: the last three digits form one group, every group
// before that has two digits (12,34,567).
func FormatCurrency(amount float64) string {
	negative := amount < 0
	// Round to two decimals first so a fraction like .999 carries into
	// the integer part instead of formatting as "1.00".
	abs := math.Round(math.Abs(amount)*100) / 100

	whole := int64(abs)
	fraction := abs - float64(whole)

	grouped := groupIndian(fmt.Sprintf("%d", whole))
	if fraction >= 0.005 {
		grouped += strings.TrimPrefix(fmt.Sprintf("%.2f", fraction), "0")
	}

	if negative {
		return "Rs. -" + grouped
	}
	return "Rs. " + grouped
}

// groupIndian inserts commas into a plain digit string using the Indian
// numbering convention.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(append(groups, tail), ",")
}
