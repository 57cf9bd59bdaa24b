package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/markjakearzadon/influencehub-gobackend/internal/models"
)

func TestGetNotifications(t *testing.T) {
	h := newHarness(t)
	user := newUser(models.RoleUser)
	c := h.signIn(user)
	h.notifications.On("List", mock.Anything, mock.MatchedBy(func(f models.NotificationFilter) bool {
		return f.Recipient == user.ID && f.Read != nil && !*f.Read && f.Page == 2 && f.Limit == 1
	})).Return([]models.InboxNotification{{
		Notification: models.Notification{ID: primitive.NewObjectID(), Message: "hi"},
		Sender:       &models.NotificationSender{ID: primitive.NewObjectID(), Name: "Brand Co", ProfilePhoto: "/uploads/b.png"},
	}}, int64(3), nil).Once()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/notifications?read=false&page=2&limit=1", nil)
	r.AddCookie(c)
	rec := h.do(r)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	require.Len(t, body["notifications"], 1)
	sender := body["notifications"].([]any)[0].(map[string]any)["sender"].(map[string]any)
	assert.Equal(t, "Brand Co", sender["name"])
	assert.Equal(t, "/uploads/b.png", sender["profilePhoto"])
	assert.EqualValues(t, 3, body["totalPages"])
	assert.EqualValues(t, 2, body["currentPage"])
	assert.EqualValues(t, 3, body["totalResults"])
}

func TestGetNotificationsUnknownReadFilterListsAll(t *testing.T) {
	for _, raw := range []string{"maybe", "1", "TRUE", "f"} {
		t.Run(raw, func(t *testing.T) {
			h := newHarness(t)
			user := newUser(models.RoleUser)
			c := h.signIn(user)
			h.notifications.On("List", mock.Anything, mock.MatchedBy(func(f models.NotificationFilter) bool {
				return f.Recipient == user.ID && f.Read == nil
			})).Return([]models.InboxNotification{}, int64(0), nil).Once()

			r := httptest.NewRequest(http.MethodGet, "/api/v1/notifications?read="+raw, nil)
			r.AddCookie(c)
			rec := h.do(r)

			assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		})
	}
}

func TestGetNotificationsReadTrue(t *testing.T) {
	h := newHarness(t)
	user := newUser(models.RoleUser)
	c := h.signIn(user)
	h.notifications.On("List", mock.Anything, mock.MatchedBy(func(f models.NotificationFilter) bool {
		return f.Read != nil && *f.Read
	})).Return([]models.InboxNotification{}, int64(0), nil).Once()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/notifications?read=true", nil)
	r.AddCookie(c)
	rec := h.do(r)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestMarkNotificationRead(t *testing.T) {
	h := newHarness(t)
	user := newUser(models.RoleUser)
	c := h.signIn(user)

	missing := primitive.NewObjectID()
	h.notifications.On("MarkRead", mock.Anything, missing, user.ID).Return(nil, models.ErrNotFound).Once()
	r := httptest.NewRequest(http.MethodPut, "/api/v1/notifications/"+missing.Hex()+"/read", nil)
	r.AddCookie(c)
	rec := h.do(r)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Notification not found or already read.", decodeBody(t, rec)["message"])

	id := primitive.NewObjectID()
	h.notifications.On("MarkRead", mock.Anything, id, user.ID).
		Return(&models.Notification{ID: id, Read: true, Message: "hi"}, nil).Once()
	r = httptest.NewRequest(http.MethodPut, "/api/v1/notifications/"+id.Hex()+"/read", nil)
	r.AddCookie(c)
	rec = h.do(r)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Notification marked as read.", body["message"])
	assert.Equal(t, true, body["notification"].(map[string]any)["read"])
}

func TestMarkAllNotificationsRead(t *testing.T) {
	h := newHarness(t)
	user := newUser(models.RoleUser)
	c := h.signIn(user)
	h.notifications.On("MarkAllRead", mock.Anything, user.ID).Return(int64(4), nil).Once()

	r := httptest.NewRequest(http.MethodPut, "/api/v1/notifications/mark-all-read", nil)
	r.AddCookie(c)
	rec := h.do(r)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "All notifications marked as read.", body["message"])
	assert.EqualValues(t, 4, body["modifiedCount"])
}

func TestDeleteNotification(t *testing.T) {
	h := newHarness(t)
	user := newUser(models.RoleUser)
	c := h.signIn(user)

	foreign := primitive.NewObjectID()
	h.notifications.On("Delete", mock.Anything, foreign, user.ID).Return(models.ErrNotFound).Once()
	r := httptest.NewRequest(http.MethodDelete, "/api/v1/notifications/"+foreign.Hex(), nil)
	r.AddCookie(c)
	rec := h.do(r)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Notification not found.", decodeBody(t, rec)["message"])

	own := primitive.NewObjectID()
	h.notifications.On("Delete", mock.Anything, own, user.ID).Return(nil).Once()
	r = httptest.NewRequest(http.MethodDelete, "/api/v1/notifications/"+own.Hex(), nil)
	r.AddCookie(c)
	rec = h.do(r)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Notification deleted successfully.", decodeBody(t, rec)["message"])
}
