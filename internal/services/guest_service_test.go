package services

import (
	"testing"

	"bella/internal/models"
	"bella/internal/store"
	"bella/internal/testutil"
)

func TestAddGuest(t *testing.T) {
	t.Run("defaults_to_pending_standard", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGuestService(store.New(db))
		user := testutil.CreateTestUser(t, db)

		guest, err := svc.AddGuest(user.ID, models.Guest{Name: "Meera"})
		testutil.AssertNoError(t, err)

		if guest.ID == "" {
			t.Fatal("expected a generated guest ID")
		}
		if guest.RSVPStatus != models.RSVPPending {
			t.Errorf("expected pending RSVP by default, got %s", guest.RSVPStatus)
		}
		if guest.MealPreference != models.MealStandard {
			t.Errorf("expected standard meal by default, got %s", guest.MealPreference)
		}
	})

	t.Run("missing_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGuestService(store.New(db))
		user := testutil.CreateTestUser(t, db)

		_, err := svc.AddGuest(user.ID, models.Guest{})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("invalid_rsvp_status", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGuestService(store.New(db))
		user := testutil.CreateTestUser(t, db)

		_, err := svc.AddGuest(user.ID, models.Guest{Name: "Meera", RSVPStatus: "maybe"})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestUpdateGuest(t *testing.T) {
	t.Run("replaces_details_keeps_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGuestService(store.New(db))
		user := testutil.CreateTestUser(t, db)

		guest, err := svc.AddGuest(user.ID, models.Guest{Name: "Meera"})
		testutil.AssertNoError(t, err)

		updated, err := svc.UpdateGuest(user.ID, guest.ID, models.Guest{
			Name:           "Meera Kapoor",
			RSVPStatus:     models.RSVPAccepted,
			MealPreference: models.MealVegan,
			PlusOne:        true,
		})
		testutil.AssertNoError(t, err)

		if updated.ID != guest.ID {
			t.Errorf("expected id %s to survive the update, got %s", guest.ID, updated.ID)
		}
		if updated.Name != "Meera Kapoor" || !updated.PlusOne {
			t.Errorf("update not applied: %+v", updated)
		}
	})

	t.Run("unset_enums_keep_current_values", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGuestService(store.New(db))
		user := testutil.CreateTestUser(t, db)

		guest, err := svc.AddGuest(user.ID, models.Guest{
			Name:           "Meera",
			RSVPStatus:     models.RSVPAccepted,
			MealPreference: models.MealVegan,
		})
		testutil.AssertNoError(t, err)

		// A partial edit leaving the enums blank must not be rejected
		// and must not reset the guest's current status.
		updated, err := svc.UpdateGuest(user.ID, guest.ID, models.Guest{Name: "Meera Kapoor"})
		testutil.AssertNoError(t, err)

		if updated.RSVPStatus != models.RSVPAccepted {
			t.Errorf("expected accepted to survive the update, got %s", updated.RSVPStatus)
		}
		if updated.MealPreference != models.MealVegan {
			t.Errorf("expected vegan to survive the update, got %s", updated.MealPreference)
		}
	})

	t.Run("invalid_enum_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGuestService(store.New(db))
		user := testutil.CreateTestUser(t, db)

		guest, err := svc.AddGuest(user.ID, models.Guest{Name: "Meera"})
		testutil.AssertNoError(t, err)

		_, err = svc.UpdateGuest(user.ID, guest.ID, models.Guest{Name: "Meera", RSVPStatus: "maybe"})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGuestService(store.New(db))
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateGuest(user.ID, "missing-id", models.Guest{Name: "Ghost"})
		testutil.AssertAppError(t, err, "GUEST_NOT_FOUND")
	})
}

func TestSetRSVP(t *testing.T) {
	t.Run("touches_only_target", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGuestService(store.New(db))
		user := testutil.CreateTestUser(t, db)

		first, err := svc.AddGuest(user.ID, models.Guest{Name: "Meera"})
		testutil.AssertNoError(t, err)
		second, err := svc.AddGuest(user.ID, models.Guest{Name: "Arjun"})
		testutil.AssertNoError(t, err)

		updated, err := svc.SetRSVP(user.ID, first.ID, models.RSVPDeclined)
		testutil.AssertNoError(t, err)
		if updated.RSVPStatus != models.RSVPDeclined {
			t.Errorf("expected declined, got %s", updated.RSVPStatus)
		}

		for _, guest := range svc.ListGuests(user.ID) {
			if guest.ID == second.ID && guest.RSVPStatus != models.RSVPPending {
				t.Errorf("other guests must be untouched, got %s", guest.RSVPStatus)
			}
		}
	})

	t.Run("invalid_status", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGuestService(store.New(db))
		user := testutil.CreateTestUser(t, db)

		guest, err := svc.AddGuest(user.ID, models.Guest{Name: "Meera"})
		testutil.AssertNoError(t, err)

		_, err = svc.SetRSVP(user.ID, guest.ID, "maybe")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestDeleteGuest(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGuestService(store.New(db))
		user := testutil.CreateTestUser(t, db)

		guest, err := svc.AddGuest(user.ID, models.Guest{Name: "Meera"})
		testutil.AssertNoError(t, err)
		before := len(svc.ListGuests(user.ID))

		testutil.AssertNoError(t, svc.DeleteGuest(user.ID, guest.ID))

		if got := len(svc.ListGuests(user.ID)); got != before-1 {
			t.Errorf("expected %d guests, got %d", before-1, got)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGuestService(store.New(db))
		user := testutil.CreateTestUser(t, db)

		err := svc.DeleteGuest(user.ID, "missing-id")
		testutil.AssertAppError(t, err, "GUEST_NOT_FOUND")
	})
}
