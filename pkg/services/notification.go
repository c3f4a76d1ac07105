package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kerbaras/mangareader/pkg/reader"
	"github.com/kerbaras/mangareader/pkg/sources"
)

// NotificationTTL is how long a notification stays on screen.
const NotificationTTL = 3 * time.Second

type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
	NotifyInfo    NotificationKind = "info"
)

// Notification is a transient message for the user. ID lets a dismiss
// timer clear only the notification it was started for.
type Notification struct {
	ID      string
	Kind    NotificationKind
	Message string
}

func NewNotification(kind NotificationKind, message string) Notification {
	return Notification{ID: uuid.NewString(), Kind: kind, Message: message}
}

// ErrorNotification turns any error from the core into user-facing text.
func ErrorNotification(err error) Notification {
	var (
		loadErr    *sources.LoadError
		notFound   *reader.NotFoundError
		locked     *reader.LockedError
		empty      *reader.EmptyPagesError
		invalid    *InvalidCodeError
		imageError *ImageLoadError
	)

	msg := err.Error()
	switch {
	case errors.As(err, &loadErr):
		msg = "Failed to load manga data. Showing fallback data."
	case errors.As(err, &locked):
		msg = "This chapter is still locked!"
	case errors.As(err, &empty):
		msg = "No pages available for this chapter"
	case errors.As(err, &notFound):
		msg = fmt.Sprintf("Not found: %s", notFound.Error())
	case errors.Is(err, ErrEmptyCode):
		msg = "Please enter a code"
	case errors.As(err, &invalid):
		msg = "Invalid code. Please try again."
	case errors.As(err, &imageError):
		msg = fmt.Sprintf("Page %d failed to load", imageError.Key.Page+1)
	}
	return NewNotification(NotifyError, msg)
}
