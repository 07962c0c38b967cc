package services

import (
	"context"
	"io"
	"time"

	"github.com/meinhoongagan/slot-booking/models"
)

// UserDirectory resolves users. Lookups return nil, nil when nothing matches.
type UserDirectory interface {
	// FindProviderByID returns the user only when they are a provider.
	FindProviderByID(ctx context.Context, id uint) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

// UserStore extends the directory with the writes account management needs.
type UserStore interface {
	UserDirectory
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdateAvatar(ctx context.Context, id uint, url string) error
	ListProviders(ctx context.Context) ([]models.User, error)
}

// AppointmentLedger is the durable record of appointments. Reads only see
// active appointments. InsertAtomic returns models.ErrSlotConflict when the
// provider already holds an active appointment in that slot.
type AppointmentLedger interface {
	FindActiveByProviderAndSlot(ctx context.Context, providerID uint, slot time.Time) (*models.Appointment, error)
	FindActiveByProviderAndRange(ctx context.Context, providerID uint, start, end time.Time) ([]models.Appointment, error)
	FindActiveByUser(ctx context.Context, userID uint, offset, limit int) ([]models.Appointment, error)
	InsertAtomic(ctx context.Context, clientID, providerID uint, slot time.Time) (*models.Appointment, error)
}

// ReminderSource lists appointments due for a reminder, with Client and
// Provider loaded.
type ReminderSource interface {
	FindActiveBySlot(ctx context.Context, slot time.Time) ([]models.Appointment, error)
}

type NotificationSink interface {
	Submit(ctx context.Context, targetUserID uint, content string) error
}

// NotificationInbox is the read side of stored notifications.
type NotificationInbox interface {
	ListByUser(ctx context.Context, userID uint, limit int64) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string, userID uint) (*models.Notification, error)
}

// NotificationFormatter renders the text sent to a provider for a new booking.
type NotificationFormatter interface {
	NewAppointment(clientName string, slot time.Time) string
}

type ProviderCache interface {
	GetProviders(ctx context.Context) ([]ProviderSummary, bool, error)
	SetProviders(ctx context.Context, providers []ProviderSummary) error
	InvalidateProviders(ctx context.Context) error
}

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type AvatarStore interface {
	Upload(ctx context.Context, file io.Reader, publicID string) (string, error)
}

type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)
