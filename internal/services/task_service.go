package services

import (
	apperrors "bella/internal/errors"
	"bella/internal/models"
	"bella/internal/store"
	"bella/internal/uuid"
)

// taskService handles the checklist collection.
type taskService struct {
	store *store.Store
}

// NewTaskService creates a new TaskServicer.
func NewTaskService(st *store.Store) TaskServicer {
	return &taskService{store: st}
}

func (s *taskService) load(userID uint) []models.Task {
	return store.Load(s.store, userID, models.CollectionTasks, models.SeedTasks())
}

// loadForWrite surfaces read failures: a mutation must not proceed from
// seed data and save it over the stored collection.
func (s *taskService) loadForWrite(userID uint) ([]models.Task, error) {
	tasks, err := store.Get(s.store, userID, models.CollectionTasks, models.SeedTasks())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return tasks, nil
}

// ListTasks returns the user's checklist.
func (s *taskService) ListTasks(userID uint) []models.Task {
	return s.load(userID)
}

// AddTask appends a checklist task, initially not completed.
func (s *taskService) AddTask(userID uint, title, dueDate, category string) (*models.Task, error) {
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "task title is required")
	}

	task := models.Task{
		ID:       uuid.New(),
		Title:    title,
		DueDate:  dueDate,
		Category: category,
	}

	tasks, err := s.loadForWrite(userID)
	if err != nil {
		return nil, err
	}
	tasks = append(tasks, task)
	if err := store.Save(s.store, userID, models.CollectionTasks, tasks); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &task, nil
}

// ToggleTask flips the completion flag of the addressed task.
func (s *taskService) ToggleTask(userID uint, taskID string) (*models.Task, error) {
	tasks, err := s.loadForWrite(userID)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID != taskID {
			continue
		}
		tasks[i].Completed = !tasks[i].Completed
		if err := store.Save(s.store, userID, models.CollectionTasks, tasks); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		toggled := tasks[i]
		return &toggled, nil
	}
	return nil, apperrors.ErrTaskNotFound
}

// DeleteTask removes a task by id.
func (s *taskService) DeleteTask(userID uint, taskID string) error {
	tasks, err := s.loadForWrite(userID)
	if err != nil {
		return err
	}
	filtered := tasks[:0:0]
	for _, task := range tasks {
		if task.ID != taskID {
			filtered = append(filtered, task)
		}
	}
	if len(filtered) == len(tasks) {
		return apperrors.ErrTaskNotFound
	}
	if err := store.Save(s.store, userID, models.CollectionTasks, filtered); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Progress returns the percentage of completed tasks, rounded to the
// nearest whole percent; an empty checklist reports zero.
func (s *taskService) Progress(userID uint) int {
	tasks := s.load(userID)
	if len(tasks) == 0 {
		return 0
	}
	var completed int
	for _, task := range tasks {
		if task.Completed {
			completed++
		}
	}
	return int(float64(completed)/float64(len(tasks))*100 + 0.5)
}
