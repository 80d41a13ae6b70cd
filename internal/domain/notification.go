package domain

import "time"

// NotificationKind distinguishes success and error messages.
type NotificationKind string

const (
	KindSuccess NotificationKind = "success"
	KindError   NotificationKind = "error"
)

// Notification is a transient message shown to the user.
type Notification struct {
	ID        string
	Text      string
	Kind      NotificationKind
	CreatedAt time.Time
}
