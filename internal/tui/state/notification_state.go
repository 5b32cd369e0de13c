package state

// NotificationLevel represents the severity of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications
	LevelInfo NotificationLevel = iota
	// LevelError represents error notifications
	LevelError
)

// Notification represents a single notification message with a severity level.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState holds the notification shown in the status bar.
// A new notification replaces the previous one; any key press clears it.
type NotificationState struct {
	current *Notification
}

// NewNotificationState creates a new NotificationState with no notification.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Info shows an informational message.
func (s *NotificationState) Info(message string) {
	s.current = &Notification{Level: LevelInfo, Message: message}
}

// Error shows an error message.
func (s *NotificationState) Error(message string) {
	s.current = &Notification{Level: LevelError, Message: message}
}

// Clear removes the notification.
func (s *NotificationState) Clear() {
	s.current = nil
}

// Current returns the shown notification, if any.
func (s *NotificationState) Current() (Notification, bool) {
	if s.current == nil {
		return Notification{}, false
	}
	return *s.current, true
}
