package domain

import (
	"time"

	"github.com/google/uuid"
)

type IncidentType string

const (
	IncidentTypeAnomaly  IncidentType = "anomaly"
	IncidentTypeGeofence IncidentType = "geofence"
	IncidentTypePanic    IncidentType = "panic"
	IncidentTypeOther    IncidentType = "other"
)

type IncidentSeverity string

const (
	SeverityLow      IncidentSeverity = "low"
	SeverityMedium   IncidentSeverity = "medium"
	SeverityHigh     IncidentSeverity = "high"
	SeverityCritical IncidentSeverity = "critical"
)

type IncidentStatus string

const (
	IncidentOpen         IncidentStatus = "open"
	IncidentAcknowledged IncidentStatus = "acknowledged"
	IncidentResolved     IncidentStatus = "resolved"
)

// CanTransitionTo encodes the monotonic lifecycle:
// open -> acknowledged -> resolved, open -> resolved.
// Nothing leaves resolved.
func (s IncidentStatus) CanTransitionTo(to IncidentStatus) bool {
	switch s {
	case IncidentOpen:
		return to == IncidentAcknowledged || to == IncidentResolved
	case IncidentAcknowledged:
		return to == IncidentResolved
	default:
		return false
	}
}

type Incident struct {
	ID          uuid.UUID        `json:"id"`
	Type        IncidentType     `json:"type"`
	Severity    IncidentSeverity `json:"severity"`
	Status      IncidentStatus   `json:"status"`
	Description string           `json:"description"`
	Lat         float64          `json:"lat"`
	Lng         float64          `json:"lng"`
	UserID      uuid.UUID        `json:"user_id"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// MaxIncidentPageSize caps list responses so a reconnecting dashboard
// cannot pull an unbounded history.
const MaxIncidentPageSize = 200

type IncidentFilter struct {
	Status   IncidentStatus   `json:"status,omitempty"`
	Severity IncidentSeverity `json:"severity,omitempty"`
	Limit    int              `json:"limit,omitempty"`
}
