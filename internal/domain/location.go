package domain

import (
	"time"

	"github.com/google/uuid"
)

// LocationReport is the normalized form of a telemetry report after
// validation: server timestamp assigned when the client omitted one.
type LocationReport struct {
	UserID    uuid.UUID `json:"user_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Speed     *float64  `json:"speed,omitempty"`    // m/s
	Accuracy  *float64  `json:"accuracy,omitempty"` // meters
	Timestamp time.Time `json:"timestamp"`
}

type LocationRequest struct {
	Latitude  float64    `json:"latitude" validate:"lat"`
	Longitude float64    `json:"longitude" validate:"lng"`
	Speed     *float64   `json:"speed,omitempty" validate:"omitempty,min=0"`
	Accuracy  *float64   `json:"accuracy,omitempty" validate:"omitempty,min=0"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

type GeofenceHit struct {
	ZoneID    uuid.UUID `json:"zone_id"`
	Name      string    `json:"name"`
	DistanceM float64   `json:"distance_m"`
}

// LocationResponse always carries Geofences, empty or not, so clients
// never have to distinguish "no hits" from "field omitted".
type LocationResponse struct {
	Saved     bool          `json:"saved"`
	Anomaly   string        `json:"anomaly,omitempty"`
	Geofences []GeofenceHit `json:"geofences"`
	Incident  *Incident     `json:"incident,omitempty"`
}

type PanicRequest struct {
	Lat       float64    `json:"lat" validate:"lat"`
	Lng       float64    `json:"lng" validate:"lng"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

type PanicAlert struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	Lat            float64    `json:"lat"`
	Lng            float64    `json:"lng"`
	TriggeredAt    time.Time  `json:"triggered_at"`
	Acknowledged   bool       `json:"acknowledged"`
	AcknowledgedBy *uuid.UUID `json:"acknowledged_by,omitempty"`
}
