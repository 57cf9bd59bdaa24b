package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/markjakearzadon/influencehub-gobackend/internal/mocks"
	"github.com/markjakearzadon/influencehub-gobackend/internal/models"
)

func TestNotificationServiceListPaging(t *testing.T) {
	recipient := primitive.NewObjectID()

	tests := []struct {
		name              string
		page, limit       int64
		wantPage, wantLim int64
		total             int64
		wantPages         int64
	}{
		{name: "defaults", page: 0, limit: 0, wantPage: 1, wantLim: 10, total: 25, wantPages: 3},
		{name: "clamped limit", page: 2, limit: 500, wantPage: 2, wantLim: 100, total: 150, wantPages: 2},
		{name: "empty", page: 1, limit: 10, wantPage: 1, wantLim: 10, total: 0, wantPages: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewNotificationRepository(t)
			svc := NewNotificationService(repo)

			repo.On("List", mock.Anything, models.NotificationFilter{Recipient: recipient, Page: tt.wantPage, Limit: tt.wantLim}).
				Return([]models.InboxNotification{}, tt.total, nil)

			page, err := svc.List(context.Background(), recipient, nil, tt.page, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, page.CurrentPage)
			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, tt.total, page.TotalResults)
			assert.NotNil(t, page.Notifications)
		})
	}
}

func TestNotificationServiceNotify(t *testing.T) {
	repo := mocks.NewNotificationRepository(t)
	svc := NewNotificationService(repo)

	err := svc.Notify(context.Background(), &models.Notification{Type: "birthday", Message: "hi"})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	n := &models.Notification{Type: models.NotificationOfferSent, Message: "offer", Read: true}
	repo.On("Create", mock.Anything, n).Return(nil)
	require.NoError(t, svc.Notify(context.Background(), n))
	assert.False(t, n.Read)
}
