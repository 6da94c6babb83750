package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
)

func TestPlannerFlow_SeededCollections(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "seeded@test.com", "password123")

	// A fresh account starts with the default wedding date and seeded
	// collections, without any prior write.
	rec := app.request("GET", "/api/v1/wedding/date", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if parseJSON(t, rec)["date"] != "2025-06-01" {
		t.Errorf("unexpected default date: %s", rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/budget", "", token)
	items := parseJSON(t, rec)["items"].([]interface{})
	if len(items) != 5 {
		t.Errorf("expected 5 seeded budget items, got %d", len(items))
	}

	rec = app.request("GET", "/api/v1/guests", "", token)
	var guests []interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &guests); err != nil {
		t.Fatalf("failed to parse guests: %v", err)
	}
	if len(guests) != 2 {
		t.Errorf("expected 2 seeded guests, got %d", len(guests))
	}
}

func TestPlannerFlow_BudgetGuestsTasksStats(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "planner@test.com", "password123")

	// Pin the wedding date
	rec := app.request("PUT", "/api/v1/wedding/date", `{"date":"2027-01-30"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("set date failed: %d %s", rec.Code, rec.Body.String())
	}

	// Add a budget line and update its actual spend
	rec = app.request("POST", "/api/v1/budget", `{"category":"Florist","estimated":20000}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add budget item failed: %d %s", rec.Code, rec.Body.String())
	}
	itemID := parseJSON(t, rec)["id"].(string)

	rec = app.request("PUT", "/api/v1/budget/"+itemID, `{"actual":18000,"paid":9000}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("update budget item failed: %d %s", rec.Code, rec.Body.String())
	}

	// Add a guest and confirm them via the quick action
	rec = app.request("POST", "/api/v1/guests", `{"name":"Meera","plusOne":true}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add guest failed: %d %s", rec.Code, rec.Body.String())
	}
	guestID := parseJSON(t, rec)["id"].(string)

	rec = app.request("PATCH", fmt.Sprintf("/api/v1/guests/%s/rsvp", guestID), `{"rsvpStatus":"accepted"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("set rsvp failed: %d %s", rec.Code, rec.Body.String())
	}

	// Add a task and complete it
	rec = app.request("POST", "/api/v1/tasks", `{"title":"Taste cakes","dueDate":"2026-11-01"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add task failed: %d %s", rec.Code, rec.Body.String())
	}
	taskID := parseJSON(t, rec)["id"].(string)

	rec = app.request("PATCH", fmt.Sprintf("/api/v1/tasks/%s/toggle", taskID), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("toggle task failed: %d %s", rec.Code, rec.Body.String())
	}
	if parseJSON(t, rec)["completed"] != true {
		t.Error("expected the task to be completed")
	}

	// Add a timeline event
	rec = app.request("POST", "/api/v1/events",
		`{"name":"Sangeet","time":"19:00","date":"2027-01-29","details":"Family hall"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add event failed: %d %s", rec.Code, rec.Body.String())
	}

	// The dashboard reflects everything above
	rec = app.request("GET", "/api/v1/dashboard/stats", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("stats failed: %d %s", rec.Code, rec.Body.String())
	}
	stats := parseJSON(t, rec)
	// Seed budget (5 x estimated) plus the new Florist line
	if stats["totalBudget"].(float64) != 520000 {
		t.Errorf("expected totalBudget 520000, got %v", stats["totalBudget"])
	}
	if stats["spentBudget"].(float64) != 18000 {
		t.Errorf("expected spentBudget 18000, got %v", stats["spentBudget"])
	}
	// 2 seeded guests + Meera; 1 seeded accepted + Meera accepted
	if stats["totalGuests"].(float64) != 3 || stats["confirmedGuests"].(float64) != 2 {
		t.Errorf("unexpected guest counts: %v/%v", stats["totalGuests"], stats["confirmedGuests"])
	}
	// 4 seeded open tasks + the new task toggled complete
	if stats["pendingTasks"].(float64) != 4 {
		t.Errorf("expected 4 pending tasks, got %v", stats["pendingTasks"])
	}
}

func TestPlannerFlow_UsersAreIsolated(t *testing.T) {
	app := setupApp(t)
	tokenA, _ := app.registerUser(t, "alice@test.com", "password123")
	tokenB, _ := app.registerUser(t, "bob@test.com", "password123")

	rec := app.request("POST", "/api/v1/guests", `{"name":"Only Alices Guest"}`, tokenA)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add guest failed: %d", rec.Code)
	}

	var guestsB []interface{}
	rec = app.request("GET", "/api/v1/guests", "", tokenB)
	if err := json.Unmarshal(rec.Body.Bytes(), &guestsB); err != nil {
		t.Fatalf("failed to parse guests: %v", err)
	}
	// Bob still sees only the seeded pair.
	if len(guestsB) != 2 {
		t.Errorf("expected 2 guests for the other user, got %d", len(guestsB))
	}
}
