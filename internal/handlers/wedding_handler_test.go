package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"bella/internal/models"
)

func setupWeddingRouter(handler *WeddingHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.GET("/wedding/date", handler.GetDate)
	auth.PUT("/wedding/date", handler.SetDate)
	auth.GET("/dashboard/stats", handler.GetStats)
	return r
}

func TestWeddingHandler_SetDate(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		var saved string
		weddingSvc := &mockWeddingService{
			setDateFn: func(userID uint, date string) error {
				saved = date
				return nil
			},
		}
		handler := NewWeddingHandler(weddingSvc)
		r := setupWeddingRouter(handler)

		rec := doRequest(r, "PUT", "/wedding/date", `{"date":"2026-11-20"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if saved != "2026-11-20" {
			t.Errorf("expected service to receive 2026-11-20, got %s", saved)
		}
	})

	t.Run("returns 400 on malformed date", func(t *testing.T) {
		handler := NewWeddingHandler(&mockWeddingService{})
		r := setupWeddingRouter(handler)

		rec := doRequest(r, "PUT", "/wedding/date", `{"date":"20/11/2026"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestWeddingHandler_GetStats(t *testing.T) {
	t.Run("returns derived figures", func(t *testing.T) {
		weddingSvc := &mockWeddingService{
			statsFn: func(userID uint, now time.Time) models.DashboardStats {
				return models.DashboardStats{DaysLeft: 42, TotalGuests: 150, PendingTasks: 7}
			},
		}
		handler := NewWeddingHandler(weddingSvc)
		r := setupWeddingRouter(handler)

		rec := doRequest(r, "GET", "/dashboard/stats", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["daysLeft"] != float64(42) {
			t.Errorf("expected daysLeft 42, got %v", result["daysLeft"])
		}
	})
}
