package core

import "time"

// NotificationKind is the severity of a user-facing notification.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyInfo    NotificationKind = "info"
	NotifyError   NotificationKind = "error"
)

type (
	// Notification is a short, user-facing message (a "toast").
	Notification struct {
		Kind        NotificationKind `json:"kind"`
		Title       string           `json:"title"`
		Description string           `json:"description"`
		CreatedAt   time.Time        `json:"createdAt"`
	}

	// Notifier is any service that can deliver notifications to the student.
	Notifier interface {
		// Notify delivers notifications; it must not block the caller on slow transports.
		Notify(notifications ...Notification)
	}
)

func NewNotification(kind NotificationKind, title, description string) Notification {
	return Notification{
		Kind:        kind,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}
