package task

import "errors"

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle       = errors.New("task title cannot be empty")
	ErrEmptyDescription = errors.New("task description cannot be empty")
	ErrEmptyStatus      = errors.New("task status cannot be empty")
	ErrInvalidTaskID    = errors.New("invalid task ID")

	// Business logic errors
	ErrTaskNotFound              = errors.New("task not found")
	ErrTaskAlreadyInTargetColumn = errors.New("task is already in target column")
)
