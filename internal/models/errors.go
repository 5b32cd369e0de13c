package models

import "errors"

// Domain-specific errors for task status transitions
var (
	// ErrUnknownStatus indicates a status that is not one of the board columns
	ErrUnknownStatus = errors.New("status must be one of: todo, doing, done")

	// ErrAlreadyFirstColumn indicates an attempt to move left from the first column
	ErrAlreadyFirstColumn = errors.New("task is already in the first column")

	// ErrAlreadyLastColumn indicates an attempt to move right from the last column
	ErrAlreadyLastColumn = errors.New("task is already in the last column")
)
