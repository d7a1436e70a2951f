package domain

import (
	"time"

	"github.com/google/uuid"
)

// Topic names one kind of broadcast event. Ordering is guaranteed per
// topic per subscriber, never across topics.
type Topic string

const (
	TopicIncident         Topic = "incident"
	TopicPanicAlert       Topic = "panic_alert"
	TopicUserSafetyStatus Topic = "user-safety-status"
	TopicSafeZoneCreated  Topic = "safe-zone-created"
	TopicSafeZoneUpdated  Topic = "safe-zone-updated"
	TopicSafeZoneDeleted  Topic = "safe-zone-deleted"
)

func AllTopics() []Topic {
	return []Topic{
		TopicIncident,
		TopicPanicAlert,
		TopicUserSafetyStatus,
		TopicSafeZoneCreated,
		TopicSafeZoneUpdated,
		TopicSafeZoneDeleted,
	}
}

func ParseTopic(s string) (Topic, bool) {
	for _, t := range AllTopics() {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Event is the wire envelope pushed to monitoring sessions.
type Event struct {
	Topic   Topic `json:"event"`
	Payload any   `json:"data"`
}

type NotificationKind string

const (
	NotifyEmergencyContact   NotificationKind = "emergency_contact"
	NotifyLedgerNotarization NotificationKind = "ledger_notarization"
)

// OutboundNotification is the payload queued for the external
// collaborators (emergency contacts, audit ledger). Delivery is
// best-effort and must never roll back the write that produced it.
type OutboundNotification struct {
	Kind       NotificationKind `json:"kind"`
	UserID     uuid.UUID        `json:"user_id"`
	IncidentID *uuid.UUID       `json:"incident_id,omitempty"`
	Lat        float64          `json:"lat"`
	Lng        float64          `json:"lng"`
	Message    string           `json:"message"`
	CreatedAt  time.Time        `json:"created_at"`
}
