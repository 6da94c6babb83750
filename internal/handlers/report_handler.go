package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "bella/internal/errors"
	"bella/internal/report"
	"bella/internal/services"
)

// ReportHandler renders the planner's PDF exports.
type ReportHandler struct {
	budgetService  services.BudgetServicer
	guestService   services.GuestServicer
	taskService    services.TaskServicer
	eventService   services.EventServicer
	weddingService services.WeddingServicer
	auditService   services.AuditServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(
	budgetService services.BudgetServicer,
	guestService services.GuestServicer,
	taskService services.TaskServicer,
	eventService services.EventServicer,
	weddingService services.WeddingServicer,
	auditService services.AuditServicer,
) *ReportHandler {
	return &ReportHandler{
		budgetService:  budgetService,
		guestService:   guestService,
		taskService:    taskService,
		eventService:   eventService,
		weddingService: weddingService,
		auditService:   auditService,
	}
}

// Download renders a report as PDF
// @Summary     Download a PDF report
// @Description Renders the budget, guest list, checklist, timeline or dashboard summary as a PDF document
// @Tags        reports
// @Produce     application/pdf
// @Security    BearerAuth
// @Param       kind path string true "Report kind" Enums(budget, guests, checklist, timeline, dashboard)
// @Success     200 {file} binary "PDF document"
// @Failure     404 {object} ErrorResponse "Unknown report kind"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /reports/{kind} [get]
func (h *ReportHandler) Download(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	kind := report.Kind(c.Param("kind"))
	if !kind.IsValid() {
		respondWithError(c, apperrors.ErrUnknownReport)
		return
	}

	now := time.Now()
	var data []byte
	switch kind {
	case report.KindBudget:
		data, err = report.Budget(h.budgetService.ListItems(userID), now)
	case report.KindGuests:
		data, err = report.GuestList(h.guestService.ListGuests(userID), now)
	case report.KindChecklist:
		data, err = report.Checklist(h.taskService.ListTasks(userID), now)
	case report.KindTimeline:
		data, err = report.Timeline(h.eventService.ListEvents(userID), now)
	case report.KindDashboard:
		data, err = report.Dashboard(h.weddingService.Stats(userID, now), now)
	}
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	h.auditService.Log(userID, "export", "report", string(kind), c.ClientIP(), nil)

	c.Header("Content-Disposition", `attachment; filename="`+kind.Filename()+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
