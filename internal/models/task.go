package models

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strconv"
)

// Task is a single card on the board as it is persisted in the task collection
type Task struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      Status  `json:"status"`
	Board       BoardID `json:"board"`
}

// GetID returns the task id
func (t Task) GetID() string {
	return t.ID
}

// TaskFields carries the caller-supplied fields of a task.
// On create every non-nil field is copied into the new record; on update only
// the non-nil fields replace the stored values.
type TaskFields struct {
	Title       *string
	Description *string
	Status      *Status
	Board       *BoardID
}

// Apply returns a copy of task with the non-nil fields of f applied.
// The ID is never touched.
func (f TaskFields) Apply(task Task) Task {
	if f.Title != nil {
		task.Title = *f.Title
	}
	if f.Description != nil {
		task.Description = *f.Description
	}
	if f.Status != nil {
		task.Status = *f.Status
	}
	if f.Board != nil {
		task.Board = *f.Board
	}
	return task
}

// BoardID identifies the board grouping a task belongs to.
// The zero value means the task is not attached to any board.
type BoardID string

// NoBoard is the zero BoardID
const NoBoard BoardID = ""

// IsSet reports whether the board identifier is present
func (b BoardID) IsSet() bool {
	return b != NoBoard
}

// MarshalJSON writes the identifier as a string, or null when unset
func (b BoardID) MarshalJSON() ([]byte, error) {
	if !b.IsSet() {
		return []byte("null"), nil
	}
	return json.Marshal(string(b))
}

// UnmarshalJSON accepts every board shape found in stored collections:
// a string, a number, null, or a whole board object carrying an "id" member.
// Any other value is read as NoBoard so one odd record cannot hide the rest.
func (b *BoardID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*b = NoBoard
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*b = BoardID(s)
		return nil
	case '{':
		var obj struct {
			ID json.RawMessage `json:"id"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if len(obj.ID) == 0 || obj.ID[0] == '{' {
			*b = NoBoard
			return nil
		}
		return b.UnmarshalJSON(obj.ID)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			slog.Warn("ignoring unreadable board value", "board", string(data), "error", err)
			*b = NoBoard
			return nil
		}
		if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
			*b = BoardID(strconv.FormatInt(i, 10))
			return nil
		}
		*b = BoardID(n.String())
		return nil
	}
}
