package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationType string

const (
	NotificationCampaignCreated     NotificationType = "campaign_created"
	NotificationNegotiationRequest  NotificationType = "negotiation_request"
	NotificationNegotiationAccepted NotificationType = "negotiation_accepted"
	NotificationNegotiationRejected NotificationType = "negotiation_rejected"
	NotificationInfluencerConfirmed NotificationType = "influencer_confirmed"
	NotificationOfferSent           NotificationType = "offer_sent"
	NotificationOfferAccepted       NotificationType = "offer_accepted"
	NotificationOfferRejected       NotificationType = "offer_rejected"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationCampaignCreated, NotificationNegotiationRequest, NotificationNegotiationAccepted,
		NotificationNegotiationRejected, NotificationInfluencerConfirmed, NotificationOfferSent,
		NotificationOfferAccepted, NotificationOfferRejected:
		return true
	}
	return false
}

// RelatedEntity points at the document that triggered a notification.
type RelatedEntity struct {
	ID   *primitive.ObjectID `bson:"id,omitempty" json:"id,omitempty"`
	Type string              `bson:"type,omitempty" json:"type,omitempty"` // Campaign, Negotiation, Influencer
}

// Notification is addressed to a recipient user. Read is the only field
// mutated after creation.
type Notification struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Recipient     *primitive.ObjectID `bson:"recipient,omitempty" json:"recipient,omitempty"`
	Sender        *primitive.ObjectID `bson:"sender,omitempty" json:"sender,omitempty"`
	Type          NotificationType    `bson:"type" json:"type"`
	Message       string              `bson:"message" json:"message"`
	Brand         string              `bson:"brand,omitempty" json:"brand,omitempty"`
	Campaign      *primitive.ObjectID `bson:"campaign,omitempty" json:"campaign,omitempty"`
	Link          string              `bson:"link,omitempty" json:"link,omitempty"`
	Read          bool                `bson:"read" json:"read"`
	RelatedEntity RelatedEntity       `bson:"relatedEntity" json:"relatedEntity"`
	CreatedAt     time.Time           `bson:"createdAt" json:"createdAt"`
}

func (n *Notification) Validate() error {
	if !n.Type.Valid() {
		return fmt.Errorf("%w: unknown notification type %q", ErrInvalidInput, n.Type)
	}
	if n.Message == "" {
		return fmt.Errorf("%w: notification message is required", ErrInvalidInput)
	}
	return nil
}

// NotificationSender is the public face of the user who sent a notification.
type NotificationSender struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	Name         string             `bson:"name" json:"name"`
	ProfilePhoto string             `bson:"profilePhoto,omitempty" json:"profilePhoto,omitempty"`
}

// InboxNotification is a notification as listed to its recipient, with the
// sender id replaced by the sender's name and photo. Sender is nil when the
// sending user no longer exists.
type InboxNotification struct {
	Notification
	Sender *NotificationSender `json:"sender"`
}

// NotificationFilter selects a recipient's notifications, one page at a time.
type NotificationFilter struct {
	Recipient primitive.ObjectID
	Read      *bool
	Page      int64
	Limit     int64
}
