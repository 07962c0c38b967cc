package services

import (
	"context"

	"github.com/meinhoongagan/slot-booking/models"
)

const inboxSize = 20

// NotificationService exposes a provider's stored notifications.
type NotificationService struct {
	directory UserDirectory
	inbox     NotificationInbox
}

func NewNotificationService(directory UserDirectory, inbox NotificationInbox) *NotificationService {
	return &NotificationService{directory: directory, inbox: inbox}
}

// List returns the caller's latest notifications, newest first.
func (s *NotificationService) List(ctx context.Context, callerID uint) ([]models.Notification, error) {
	provider, err := s.directory.FindProviderByID(ctx, callerID)
	if err != nil {
		return nil, internalError("lookup provider", err)
	}
	if provider == nil {
		return nil, &Error{Kind: KindInvalidProvider, Message: "Only providers can load notifications"}
	}

	items, err := s.inbox.ListByUser(ctx, callerID, inboxSize)
	if err != nil {
		return nil, internalError("list notifications", err)
	}
	return items, nil
}

// MarkRead flags one of the caller's notifications as read.
func (s *NotificationService) MarkRead(ctx context.Context, callerID uint, id string) (*models.Notification, error) {
	n, err := s.inbox.MarkRead(ctx, id, callerID)
	if err != nil {
		return nil, internalError("mark notification", err)
	}
	if n == nil {
		return nil, &Error{Kind: KindNotFound, Message: "Notification not found"}
	}
	return n, nil
}
