package models

// DefaultWeddingDate is the wedding date a fresh account starts with.
const DefaultWeddingDate = "2025-06-01"

// SeedBudget returns the starter budget a fresh account is shown.
func SeedBudget() []BudgetItem {
	return []BudgetItem{
		{ID: "1", Category: "Venue", Estimated: 200000},
		{ID: "2", Category: "Catering", Estimated: 150000},
		{ID: "3", Category: "Photography", Estimated: 50000},
		{ID: "4", Category: "Attire", Estimated: 50000},
		{ID: "5", Category: "Decor", Estimated: 50000},
	}
}

// SeedGuests returns the starter guest list.
func SeedGuests() []Guest {
	return []Guest{
		{ID: "1", Name: "John Doe", Email: "john@example.com", RSVPStatus: RSVPAccepted, MealPreference: MealStandard, PlusOne: true},
		{ID: "2", Name: "Jane Smith", Email: "jane@example.com", RSVPStatus: RSVPPending, MealPreference: MealVegetarian},
	}
}

// SeedTasks returns the starter checklist.
func SeedTasks() []Task {
	return []Task{
		{ID: "1", Title: "Determine Budget", DueDate: "2024-01-01", Completed: true, Category: "Planning"},
		{ID: "2", Title: "Draft Guest List", DueDate: "2024-01-15", Category: "Guests"},
		{ID: "3", Title: "Book Venue", DueDate: "2024-02-01", Category: "Venue"},
		{ID: "4", Title: "Hire Photographer", DueDate: "2024-02-15", Category: "Vendors"},
		{ID: "5", Title: "Send Save the Dates", DueDate: "2024-03-01", Category: "Guests"},
	}
}

// SeedEvents returns the starter wedding-day timeline.
func SeedEvents() []EventItem {
	return []EventItem{
		{ID: "1", Name: "Getting Ready", Time: "09:00", Date: "2025-06-01", Details: "Bride and Groom prep at separate locations"},
		{ID: "2", Name: "First Look", Time: "14:00", Date: "2025-06-01", Details: "Garden area behind the main hall"},
		{ID: "3", Name: "Ceremony Begins", Time: "16:00", Date: "2025-06-01", Details: "Main Wedding Hall"},
		{ID: "4", Name: "Reception Dinner", Time: "18:30", Date: "2025-06-01", Details: "Ballroom"},
	}
}
