package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/markjakearzadon/influencehub-gobackend/internal/models"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type NotificationService struct {
	notifications NotificationRepository
}

func NewNotificationService(notifications NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

type NotificationPage struct {
	Notifications []models.InboxNotification `json:"notifications"`
	TotalPages    int64                      `json:"totalPages"`
	CurrentPage   int64                      `json:"currentPage"`
	TotalResults  int64                      `json:"totalResults"`
}

// List returns one page of the recipient's notifications. page is clamped
// to at least 1 and limit to 1..100, defaulting to 10.
func (s *NotificationService) List(ctx context.Context, recipient primitive.ObjectID, read *bool, page, limit int64) (*NotificationPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	items, total, err := s.notifications.List(ctx, models.NotificationFilter{
		Recipient: recipient,
		Read:      read,
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return nil, err
	}
	return &NotificationPage{
		Notifications: items,
		TotalPages:    (total + limit - 1) / limit,
		CurrentPage:   page,
		TotalResults:  total,
	}, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id, recipient primitive.ObjectID) (*models.Notification, error) {
	return s.notifications.MarkRead(ctx, id, recipient)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, recipient primitive.ObjectID) (int64, error) {
	return s.notifications.MarkAllRead(ctx, recipient)
}

func (s *NotificationService) Delete(ctx context.Context, id, recipient primitive.ObjectID) error {
	return s.notifications.Delete(ctx, id, recipient)
}

// Notify validates and stores a new unread notification.
func (s *NotificationService) Notify(ctx context.Context, n *models.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}
	n.Read = false
	return s.notifications.Create(ctx, n)
}
