package models

// View identifies one of the planner screens. The current view is
// per-session state: any navigation sets it unconditionally and it is
// never persisted.
type View string

const (
	ViewDashboard   View = "DASHBOARD"
	ViewBudget      View = "BUDGET"
	ViewGuests      View = "GUESTS"
	ViewChecklist   View = "CHECKLIST"
	ViewAssistant   View = "ASSISTANT"
	ViewInspiration View = "INSPIRATION"
	ViewContact     View = "CONTACT"
	ViewTimeline    View = "TIMELINE"
)

// IsValid reports whether the view is one of the known screens.
func (v View) IsValid() bool {
	switch v {
	case ViewDashboard, ViewBudget, ViewGuests, ViewChecklist,
		ViewAssistant, ViewInspiration, ViewContact, ViewTimeline:
		return true
	}
	return false
}
