package models

import "sort"

// undatedSortKey sorts events with no date after every dated event.
const undatedSortKey = "9999-12-31"

// SortEvents orders timeline events by (date, time), undated last.
// Dates (YYYY-MM-DD) and times (HH:MM) compare correctly as strings.
func SortEvents(events []EventItem) {
	sort.SliceStable(events, func(i, j int) bool {
		di, dj := events[i].Date, events[j].Date
		if di == "" {
			di = undatedSortKey
		}
		if dj == "" {
			dj = undatedSortKey
		}
		if di != dj {
			return di < dj
		}
		return events[i].Time < events[j].Time
	})
}

// SortTasksByCompletion orders checklist tasks incomplete-first, keeping
// the existing relative order within each group.
func SortTasksByCompletion(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return !tasks[i].Completed && tasks[j].Completed
	})
}
