package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "bella/internal/errors"
	"bella/internal/services"
)

// TaskHandler handles checklist requests.
type TaskHandler struct {
	taskService  services.TaskServicer
	auditService services.AuditServicer
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService services.TaskServicer, auditService services.AuditServicer) *TaskHandler {
	return &TaskHandler{taskService: taskService, auditService: auditService}
}

// AddTaskRequest represents a new checklist task
type AddTaskRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	DueDate  string `json:"dueDate" binding:"omitempty,iso_date"`
	Category string `json:"category" binding:"max=100"`
}

// ListTasks returns the checklist with completion progress
// @Summary     List tasks
// @Tags        checklist
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]any "Tasks and progress percentage"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks":    h.taskService.ListTasks(userID),
		"progress": h.taskService.Progress(userID),
	})
}

// AddTask creates a task
// @Summary     Add task
// @Tags        checklist
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AddTaskRequest true "Task"
// @Success     201 {object} models.Task "Created task"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /tasks [post]
func (h *TaskHandler) AddTask(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	task, err := h.taskService.AddTask(userID, req.Title, req.DueDate, req.Category)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "create", "task", task.ID, c.ClientIP(), map[string]any{"title": task.Title})

	c.JSON(http.StatusCreated, task)
}

// ToggleTask flips a task's completion state
// @Summary     Toggle task completion
// @Tags        checklist
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} models.Task "Updated task"
// @Failure     404 {object} ErrorResponse "Task not found"
// @Router      /tasks/{id}/toggle [patch]
func (h *TaskHandler) ToggleTask(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	task, err := h.taskService.ToggleTask(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "toggle", "task", task.ID, c.ClientIP(), map[string]any{"completed": task.Completed})

	c.JSON(http.StatusOK, task)
}

// DeleteTask removes a task
// @Summary     Delete task
// @Tags        checklist
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Task not found"
// @Router      /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	taskID := c.Param("id")
	if err := h.taskService.DeleteTask(userID, taskID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "delete", "task", taskID, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}
