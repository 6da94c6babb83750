package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "bella/internal/errors"
	"bella/internal/models"
	"bella/internal/services"
)

// --- mock guest service ---

type mockGuestService struct {
	listGuestsFn  func(userID uint) []models.Guest
	addGuestFn    func(userID uint, guest models.Guest) (*models.Guest, error)
	updateGuestFn func(userID uint, guestID string, updated models.Guest) (*models.Guest, error)
	setRSVPFn     func(userID uint, guestID string, status models.RSVPStatus) (*models.Guest, error)
	deleteGuestFn func(userID uint, guestID string) error
}

func (m *mockGuestService) ListGuests(userID uint) []models.Guest {
	if m.listGuestsFn != nil {
		return m.listGuestsFn(userID)
	}
	return []models.Guest{}
}

func (m *mockGuestService) AddGuest(userID uint, guest models.Guest) (*models.Guest, error) {
	if m.addGuestFn != nil {
		return m.addGuestFn(userID, guest)
	}
	return &models.Guest{}, nil
}

func (m *mockGuestService) UpdateGuest(userID uint, guestID string, updated models.Guest) (*models.Guest, error) {
	if m.updateGuestFn != nil {
		return m.updateGuestFn(userID, guestID, updated)
	}
	return &models.Guest{}, nil
}

func (m *mockGuestService) SetRSVP(userID uint, guestID string, status models.RSVPStatus) (*models.Guest, error) {
	if m.setRSVPFn != nil {
		return m.setRSVPFn(userID, guestID, status)
	}
	return &models.Guest{}, nil
}

func (m *mockGuestService) DeleteGuest(userID uint, guestID string) error {
	if m.deleteGuestFn != nil {
		return m.deleteGuestFn(userID, guestID)
	}
	return nil
}

var _ services.GuestServicer = (*mockGuestService)(nil)

func setupGuestRouter(handler *GuestHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.GET("/guests", handler.ListGuests)
	auth.POST("/guests", handler.AddGuest)
	auth.PUT("/guests/:id", handler.UpdateGuest)
	auth.PATCH("/guests/:id/rsvp", handler.SetRSVP)
	auth.DELETE("/guests/:id", handler.DeleteGuest)
	return r
}

// --- tests ---

func TestGuestHandler_AddGuest(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		guestSvc := &mockGuestService{
			addGuestFn: func(userID uint, guest models.Guest) (*models.Guest, error) {
				guest.ID = "g1"
				return &guest, nil
			},
		}
		handler := NewGuestHandler(guestSvc, &mockAuditService{})
		r := setupGuestRouter(handler)

		rec := doRequest(r, "POST", "/guests",
			`{"name":"Meera","rsvpStatus":"accepted","mealPreference":"vegan","plusOne":true}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["name"] != "Meera" || result["rsvpStatus"] != "accepted" {
			t.Errorf("unexpected body: %s", rec.Body.String())
		}
	})

	t.Run("returns 400 on unknown rsvp status", func(t *testing.T) {
		handler := NewGuestHandler(&mockGuestService{}, &mockAuditService{})
		r := setupGuestRouter(handler)

		rec := doRequest(r, "POST", "/guests", `{"name":"Meera","rsvpStatus":"maybe"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		handler := NewGuestHandler(&mockGuestService{}, &mockAuditService{})
		r := setupGuestRouter(handler)

		rec := doRequest(r, "POST", "/guests", `{"plusOne":true}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestGuestHandler_SetRSVP(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		guestSvc := &mockGuestService{
			setRSVPFn: func(userID uint, guestID string, status models.RSVPStatus) (*models.Guest, error) {
				return &models.Guest{ID: guestID, Name: "Meera", RSVPStatus: status}, nil
			},
		}
		handler := NewGuestHandler(guestSvc, &mockAuditService{})
		r := setupGuestRouter(handler)

		rec := doRequest(r, "PATCH", "/guests/g1/rsvp", `{"rsvpStatus":"declined"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if parseJSON(t, rec)["rsvpStatus"] != "declined" {
			t.Errorf("unexpected body: %s", rec.Body.String())
		}
	})

	t.Run("returns 404 for unknown guest", func(t *testing.T) {
		guestSvc := &mockGuestService{
			setRSVPFn: func(_ uint, _ string, _ models.RSVPStatus) (*models.Guest, error) {
				return nil, apperrors.ErrGuestNotFound
			},
		}
		handler := NewGuestHandler(guestSvc, &mockAuditService{})
		r := setupGuestRouter(handler)

		rec := doRequest(r, "PATCH", "/guests/missing/rsvp", `{"rsvpStatus":"declined"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "GUEST_NOT_FOUND")
	})
}

func TestGuestHandler_DeleteGuest(t *testing.T) {
	t.Run("returns 204 on success", func(t *testing.T) {
		handler := NewGuestHandler(&mockGuestService{}, &mockAuditService{})
		r := setupGuestRouter(handler)

		rec := doRequest(r, "DELETE", "/guests/g1", "")

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})
}
