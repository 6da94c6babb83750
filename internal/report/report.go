// Package report renders the planner collections as paginated PDF
// documents. Every report shares the same header band (brand, title,
// generation timestamp) and footer band (brand, contact line, page
// numbering); only the tabular body differs per kind.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"bella/internal/models"
)

const (
	brandName     = "My Wedding Planner"
	footerContact = "www.myweddingclicks.com    |    Phone: +91 78273 78274"
)

// Brand palette.
var (
	brandFill  = [3]int{236, 72, 153}
	altRowFill = [3]int{253, 242, 248}
	slateText  = [3]int{100, 116, 139}
)

// Kind identifies one of the report types.
type Kind string

const (
	KindBudget    Kind = "budget"
	KindGuests    Kind = "guests"
	KindChecklist Kind = "checklist"
	KindTimeline  Kind = "timeline"
	KindDashboard Kind = "dashboard"
)

// Filename returns the fixed download name for the report kind.
func (k Kind) Filename() string {
	switch k {
	case KindBudget:
		return "Wedding_Budget_Report.pdf"
	case KindGuests:
		return "Wedding_Guest_List.pdf"
	case KindChecklist:
		return "Wedding_Checklist.pdf"
	case KindTimeline:
		return "Wedding_Timeline.pdf"
	case KindDashboard:
		return "Wedding_Dashboard_Summary.pdf"
	}
	return ""
}

// IsValid reports whether the kind is a known report type.
func (k Kind) IsValid() bool {
	return k.Filename() != ""
}

// newDoc creates an A4 portrait document with the shared header and
// footer template installed.
func newDoc(title string, generatedAt time.Time) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 40, 14)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AliasNbPages("")

	pdf.SetHeaderFunc(func() {
		pageWidth, _ := pdf.GetPageSize()

		pdf.SetFillColor(brandFill[0], brandFill[1], brandFill[2])
		pdf.Rect(0, 0, pageWidth, 25, "F")

		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 22)
		pdf.Text(14, 16, brandName)

		pdf.SetFont("Helvetica", "", 14)
		titleWidth := pdf.GetStringWidth(title)
		pdf.Text(pageWidth-14-titleWidth, 16, title)

		pdf.SetTextColor(slateText[0], slateText[1], slateText[2])
		pdf.SetFont("Helvetica", "", 10)
		pdf.Text(14, 32, "Generated on: "+generatedAt.Format("02/01/2006 at 3:04:05 PM"))
	})

	pdf.SetFooterFunc(func() {
		pageWidth, pageHeight := pdf.GetPageSize()

		pdf.SetTextColor(148, 163, 184)
		pdf.SetFont("Helvetica", "", 8)
		pdf.Text(14, pageHeight-10, brandName)

		contactWidth := pdf.GetStringWidth(footerContact)
		pdf.Text((pageWidth-contactWidth)/2, pageHeight-10, footerContact)

		pageLabel := fmt.Sprintf("Page %d of {nb}", pdf.PageNo())
		pdf.Text(pageWidth-14-pdf.GetStringWidth(pageLabel), pageHeight-10, pageLabel)
	})

	pdf.AddPage()
	return pdf
}

// column describes one table column.
type column struct {
	header string
	width  float64
	align  string
}

// drawTable renders a table with a brand-colored header row and
// alternating row fills. boldRows marks rows rendered in bold on a
// neutral fill (used for TOTAL rows).
func drawTable(pdf *gofpdf.Fpdf, cols []column, rows [][]string, boldRows map[int]bool) {
	const rowHeight = 8

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(brandFill[0], brandFill[1], brandFill[2])
	pdf.SetTextColor(255, 255, 255)
	for _, col := range cols {
		pdf.CellFormat(col.width, rowHeight, col.header, "", 0, col.align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(51, 65, 85)
	for i, row := range rows {
		if boldRows[i] {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.SetFillColor(250, 250, 250)
		} else {
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetFillColor(altRowFill[0], altRowFill[1], altRowFill[2])
		}
		fill := boldRows[i] || i%2 == 1
		for c, col := range cols {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			pdf.CellFormat(col.width, rowHeight, cell, "", 0, col.align, fill, 0, "")
		}
		pdf.Ln(-1)
	}
}

// output finalizes the document into a byte slice.
func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Budget builds the budget report: one row per item plus a TOTAL row.
func Budget(items []models.BudgetItem, generatedAt time.Time) ([]byte, error) {
	pdf := newDoc("BUDGET REPORT", generatedAt)

	cols := []column{
		{"Category", 50, "L"},
		{"Estimated", 33, "R"},
		{"Actual", 33, "R"},
		{"Paid", 33, "R"},
		{"Variance", 33, "R"},
	}

	var totalEst, totalAct, totalPaid float64
	rows := make([][]string, 0, len(items)+1)
	for _, item := range items {
		totalEst += item.Estimated
		totalAct += item.Actual
		totalPaid += item.Paid
		rows = append(rows, []string{
			item.Category,
			FormatCurrency(item.Estimated),
			FormatCurrency(item.Actual),
			FormatCurrency(item.Paid),
			FormatCurrency(item.Estimated - item.Actual),
		})
	}
	rows = append(rows, []string{
		"TOTAL",
		FormatCurrency(totalEst),
		FormatCurrency(totalAct),
		FormatCurrency(totalPaid),
		FormatCurrency(totalEst - totalAct),
	})

	pdf.SetY(40)
	drawTable(pdf, cols, rows, map[int]bool{len(rows) - 1: true})
	return output(pdf)
}

// GuestList builds the guest list report with a summary counts line.
func GuestList(guests []models.Guest, generatedAt time.Time) ([]byte, error) {
	pdf := newDoc("GUEST LIST REPORT", generatedAt)

	var confirmed, pending, declined int
	for _, g := range guests {
		switch g.RSVPStatus {
		case models.RSVPAccepted:
			confirmed++
		case models.RSVPPending:
			pending++
		case models.RSVPDeclined:
			declined++
		}
	}

	pdf.SetY(40)
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(51, 65, 85)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total Guests: %d | Confirmed: %d | Pending: %d | Declined: %d",
		len(guests), confirmed, pending, declined), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	cols := []column{
		{"Name", 36, "L"},
		{"Email", 46, "L"},
		{"RSVP", 22, "L"},
		{"Meal", 26, "L"},
		{"Plus One", 20, "L"},
		{"Details", 32, "L"},
	}
	rows := make([][]string, 0, len(guests))
	for _, g := range guests {
		plusOne := "No"
		if g.PlusOne {
			plusOne = "Yes"
		}
		details := g.MobileOrCity
		if details == "" {
			details = "-"
		}
		rows = append(rows, []string{
			g.Name,
			g.Email,
			strings.ToUpper(string(g.RSVPStatus)),
			string(g.MealPreference),
			plusOne,
			details,
		})
	}

	drawTable(pdf, cols, rows, nil)
	return output(pdf)
}

// Checklist builds the checklist report, incomplete tasks first, with an
// overall progress line.
func Checklist(tasks []models.Task, generatedAt time.Time) ([]byte, error) {
	pdf := newDoc("WEDDING CHECKLIST", generatedAt)

	sorted := make([]models.Task, len(tasks))
	copy(sorted, tasks)
	models.SortTasksByCompletion(sorted)

	var completed int
	for _, task := range tasks {
		if task.Completed {
			completed++
		}
	}
	progress := 0
	if len(tasks) > 0 {
		progress = int(float64(completed)/float64(len(tasks))*100 + 0.5)
	}

	pdf.SetY(40)
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(51, 65, 85)
	pdf.CellFormat(0, 6, fmt.Sprintf("Overall Progress: %d%% Completed", progress), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	cols := []column{
		{"Status", 25, "L"},
		{"Task", 85, "L"},
		{"Category", 40, "L"},
		{"Due Date", 32, "L"},
	}
	rows := make([][]string, 0, len(sorted))
	for _, task := range sorted {
		status := "PENDING"
		if task.Completed {
			status = "DONE"
		}
		due := "-"
		if task.DueDate != "" {
			due = formatDate(task.DueDate)
		}
		rows = append(rows, []string{status, task.Title, task.Category, due})
	}

	drawTable(pdf, cols, rows, nil)
	return output(pdf)
}

// Timeline builds the event timeline report sorted by (date, time) with
// undated events last.
func Timeline(events []models.EventItem, generatedAt time.Time) ([]byte, error) {
	pdf := newDoc("EVENT TIMELINE", generatedAt)

	sorted := make([]models.EventItem, len(events))
	copy(sorted, events)
	models.SortEvents(sorted)

	cols := []column{
		{"Date", 32, "L"},
		{"Time", 22, "L"},
		{"Event Name", 56, "L"},
		{"Details", 72, "L"},
	}
	rows := make([][]string, 0, len(sorted))
	for _, event := range sorted {
		date := "-"
		if event.Date != "" {
			date = formatDate(event.Date)
		}
		details := event.Details
		if details == "" {
			details = "-"
		}
		rows = append(rows, []string{date, event.Time, event.Name, details})
	}

	pdf.SetY(40)
	drawTable(pdf, cols, rows, nil)
	return output(pdf)
}

// Dashboard builds the planning summary report from the derived stats.
func Dashboard(stats models.DashboardStats, generatedAt time.Time) ([]byte, error) {
	pdf := newDoc("PLANNING SUMMARY", generatedAt)

	pdf.SetY(45)
	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 8, "Executive Summary", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	lines := []struct {
		label string
		value string
	}{
		{"Days Until Wedding", fmt.Sprintf("%d", stats.DaysLeft)},
		{"Total Estimated Budget", FormatCurrency(stats.TotalBudget)},
		{"Total Spent So Far", FormatCurrency(stats.SpentBudget)},
		{"Remaining Budget", FormatCurrency(stats.TotalBudget - stats.SpentBudget)},
		{"Total Guests Invited", fmt.Sprintf("%d", stats.TotalGuests)},
		{"Confirmed Guests", fmt.Sprintf("%d", stats.ConfirmedGuests)},
		{"Pending Tasks", fmt.Sprintf("%d", stats.PendingTasks)},
	}

	pdf.SetFont("Helvetica", "", 12)
	for _, line := range lines {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(66, 12, line.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(0, 12, line.value, "", 1, "L", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(14, pdf.GetY(), 196, pdf.GetY())

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 8, "Notes:", "", 1, "L", false, 0, "")

	return output(pdf)
}

// formatDate renders a YYYY-MM-DD date as DD/MM/YYYY, leaving values it
// cannot parse untouched.
func formatDate(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format("02/01/2006")
}
