// Package state holds the TUI's navigation and notification state
package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	CreateMode                    // New task form
	EditMode                      // Edit task form
	ViewMode                      // Read-only task details
	DeleteConfirmMode             // Confirming task deletion
	HelpMode                      // Displaying help screen
)

// UIState manages the user interface state.
// This includes navigation (column/task selection), per-column scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedTask is the index of the currently selected task within the selected column
	selectedTask int

	width  int
	height int

	mode Mode

	// taskScrollOffsets tracks the index of the first visible task per column
	taskScrollOffsets map[int]int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              NormalMode,
		taskScrollOffsets: make(map[int]int),
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedTask returns the index of the currently selected task.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask updates the selected task index.
func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask = index
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the height left for columns once the header and
// status bar are drawn, with a minimum of 5.
func (s *UIState) ContentHeight() int {
	const headerHeight = 2    // board title + gap line
	const statusBarHeight = 1 // status bar
	return max(s.height-headerHeight-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ClampSelection keeps the selection inside columnsLen columns whose sizes
// are given by taskCount.
func (s *UIState) ClampSelection(columnsLen int, taskCount func(column int) int) {
	if columnsLen == 0 {
		s.selectedColumn, s.selectedTask = 0, 0
		return
	}
	s.selectedColumn = min(max(s.selectedColumn, 0), columnsLen-1)

	n := taskCount(s.selectedColumn)
	if n == 0 {
		s.selectedTask = 0
		return
	}
	s.selectedTask = min(max(s.selectedTask, 0), n-1)
}

// ResetSelection resets column and task selection and all scroll offsets.
func (s *UIState) ResetSelection() {
	s.selectedColumn = 0
	s.selectedTask = 0
	clear(s.taskScrollOffsets)
}

// TaskScrollOffset returns the vertical scroll offset for a given column.
func (s *UIState) TaskScrollOffset(column int) int {
	return s.taskScrollOffsets[column]
}

// EnsureTaskVisible adjusts the scroll offset so the selected task is one of
// the visibleCount tasks shown.
func (s *UIState) EnsureTaskVisible(column int, selectedTaskIdx int, visibleCount int) {
	visibleCount = max(visibleCount, 1)
	offset := s.taskScrollOffsets[column]

	if selectedTaskIdx < offset {
		offset = selectedTaskIdx
	}
	if selectedTaskIdx >= offset+visibleCount {
		offset = selectedTaskIdx - visibleCount + 1
	}
	s.taskScrollOffsets[column] = max(0, offset)
}
