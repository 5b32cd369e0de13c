package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/storage"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	GetTask(ctx context.Context, taskID string) (models.Task, error)
	ListTasks(ctx context.Context, board models.BoardID) ([]models.Task, error)
	GetTasksByStatus(ctx context.Context, board models.BoardID) (map[models.Status][]models.Task, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) error
	DeleteTask(ctx context.Context, taskID string) error

	// Task movements
	MoveTaskToStatus(ctx context.Context, taskID string, status models.Status) error
	MoveTaskToNextColumn(ctx context.Context, taskID string) error
	MoveTaskToPrevColumn(ctx context.Context, taskID string) error
}

// Options tunes validation
type Options struct {
	// RequireDescription rejects tasks created without a description
	RequireDescription bool
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	Title       string
	Description string
	Status      models.Status
	Board       models.BoardID
}

// UpdateTaskRequest encapsulates all data needed to update a task
// Fields with pointers are optional - nil means don't update
type UpdateTaskRequest struct {
	TaskID      string
	Title       *string
	Description *string
	Status      *models.Status
	Board       *models.BoardID
}

// service implements Service interface
type service struct {
	store storage.TaskStore
	opts  Options
}

// NewService creates a new task service
func NewService(store storage.TaskStore, opts Options) Service {
	return &service{
		store: store,
		opts:  opts,
	}
}

// CreateTask handles task creation with validation
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (models.Task, error) {
	if err := s.validateCreateTask(req); err != nil {
		return models.Task{}, err
	}

	title := strings.TrimSpace(req.Title)
	task, err := s.store.Create(ctx, models.TaskFields{
		Title:       &title,
		Description: &req.Description,
		Status:      &req.Status,
		Board:       &req.Board,
	})
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// UpdateTask handles task updates with validation
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) error {
	if req.TaskID == "" {
		return ErrInvalidTaskID
	}

	// Validate fields if provided
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return ErrEmptyTitle
		}
		req.Title = &title
	}
	if req.Description != nil && s.opts.RequireDescription && strings.TrimSpace(*req.Description) == "" {
		return ErrEmptyDescription
	}
	if req.Status != nil && !req.Status.Valid() {
		return models.ErrUnknownStatus
	}

	err := s.store.Update(ctx, req.TaskID, models.TaskFields{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Board:       req.Board,
	})
	if errors.Is(err, storage.ErrTaskNotFound) {
		return ErrTaskNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

// DeleteTask removes a task; deleting a missing task is not an error
func (s *service) DeleteTask(ctx context.Context, taskID string) error {
	if taskID == "" {
		return ErrInvalidTaskID
	}
	if err := s.store.Delete(ctx, taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// GetTask returns a single task
func (s *service) GetTask(ctx context.Context, taskID string) (models.Task, error) {
	if taskID == "" {
		return models.Task{}, ErrInvalidTaskID
	}
	task, err := s.store.Get(ctx, taskID)
	if errors.Is(err, storage.ErrTaskNotFound) {
		return models.Task{}, ErrTaskNotFound
	}
	return task, err
}

// ListTasks returns the tasks of a board in stored order.
// NoBoard lists every task. A corrupted collection is returned as empty along
// with the storage error so callers can still render.
func (s *service) ListTasks(ctx context.Context, board models.BoardID) ([]models.Task, error) {
	tasks, err := s.store.List(ctx)
	if !board.IsSet() {
		return tasks, err
	}

	filtered := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Board == board {
			filtered = append(filtered, task)
		}
	}
	return filtered, err
}

// GetTasksByStatus groups a board's tasks into their status columns.
// Every column key is present; tasks with an unknown status are skipped.
func (s *service) GetTasksByStatus(ctx context.Context, board models.BoardID) (map[models.Status][]models.Task, error) {
	tasks, err := s.ListTasks(ctx, board)

	columns := make(map[models.Status][]models.Task, len(models.Columns))
	for _, col := range models.Columns {
		columns[col.Status] = []models.Task{}
	}
	for _, task := range tasks {
		if !task.Status.Valid() {
			slog.Warn("skipping task with unknown status", "id", task.ID, "status", task.Status)
			continue
		}
		columns[task.Status] = append(columns[task.Status], task)
	}
	return columns, err
}

// MoveTaskToStatus moves a task into the given column
func (s *service) MoveTaskToStatus(ctx context.Context, taskID string, status models.Status) error {
	if !status.Valid() {
		return models.ErrUnknownStatus
	}

	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return err
	}
	if task.Status == status {
		return ErrTaskAlreadyInTargetColumn
	}

	return s.UpdateTask(ctx, UpdateTaskRequest{TaskID: taskID, Status: &status})
}

// MoveTaskToNextColumn moves a task one column to the right
func (s *service) MoveTaskToNextColumn(ctx context.Context, taskID string) error {
	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return err
	}

	next, err := task.Status.Next()
	if err != nil {
		return err
	}
	return s.UpdateTask(ctx, UpdateTaskRequest{TaskID: taskID, Status: &next})
}

// MoveTaskToPrevColumn moves a task one column to the left
func (s *service) MoveTaskToPrevColumn(ctx context.Context, taskID string) error {
	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return err
	}

	prev, err := task.Status.Prev()
	if err != nil {
		return err
	}
	return s.UpdateTask(ctx, UpdateTaskRequest{TaskID: taskID, Status: &prev})
}

// validateCreateTask checks the required fields before anything reaches storage
func (s *service) validateCreateTask(req CreateTaskRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return ErrEmptyTitle
	}
	if s.opts.RequireDescription && strings.TrimSpace(req.Description) == "" {
		return ErrEmptyDescription
	}
	if req.Status == "" {
		return ErrEmptyStatus
	}
	if !req.Status.Valid() {
		return models.ErrUnknownStatus
	}
	return nil
}
