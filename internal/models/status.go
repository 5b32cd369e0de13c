package models

import "strings"

// Status is the key of the column a task sits in
type Status string

const (
	StatusTodo  Status = "todo"
	StatusDoing Status = "doing"
	StatusDone  Status = "done"
)

// Column describes one fixed status column of the board
type Column struct {
	Status Status
	Name   string
}

// Columns is the ordered, fixed set of board columns
var Columns = []Column{
	{Status: StatusTodo, Name: "Todo"},
	{Status: StatusDoing, Name: "Doing"},
	{Status: StatusDone, Name: "Done"},
}

// Valid reports whether the status names one of the board columns
func (s Status) Valid() bool {
	return s.Index() >= 0
}

// Index returns the position of the status column, or -1 when unknown
func (s Status) Index() int {
	for i, col := range Columns {
		if col.Status == s {
			return i
		}
	}
	return -1
}

// Name returns the display name of the status column
func (s Status) Name() string {
	if i := s.Index(); i >= 0 {
		return Columns[i].Name
	}
	return string(s)
}

// Next returns the status of the column to the right
func (s Status) Next() (Status, error) {
	i := s.Index()
	if i < 0 {
		return s, ErrUnknownStatus
	}
	if i == len(Columns)-1 {
		return s, ErrAlreadyLastColumn
	}
	return Columns[i+1].Status, nil
}

// Prev returns the status of the column to the left
func (s Status) Prev() (Status, error) {
	i := s.Index()
	if i < 0 {
		return s, ErrUnknownStatus
	}
	if i == 0 {
		return s, ErrAlreadyFirstColumn
	}
	return Columns[i-1].Status, nil
}

// ParseStatus maps a status key or column name to its Status.
// Matching is case-insensitive, so "Doing", "doing" and "DOING" are the same.
func ParseStatus(s string) (Status, error) {
	s = strings.TrimSpace(s)
	for _, col := range Columns {
		if strings.EqualFold(string(col.Status), s) || strings.EqualFold(col.Name, s) {
			return col.Status, nil
		}
	}
	return "", ErrUnknownStatus
}

// StatusKeys returns the column keys in board order
func StatusKeys() []string {
	keys := make([]string, len(Columns))
	for i, col := range Columns {
		keys[i] = string(col.Status)
	}
	return keys
}
