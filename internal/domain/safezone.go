package domain

import (
	"time"

	"github.com/google/uuid"
)

type SafeZone struct {
	ID                    uuid.UUID `json:"id"`
	Name                  string    `json:"name"`
	Lat                   float64   `json:"lat"`
	Lng                   float64   `json:"lng"`
	RadiusM               float64   `json:"radius_m"`
	AlertThresholdSeconds int       `json:"alert_threshold_seconds"`
	Active                bool      `json:"active"`
	CreatedAt             time.Time `json:"created_at"`
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// HighRiskArea is a known dangerous region, distinct from safe zones.
// Entering one feeds the incident-creation policy; it never affects
// safe-zone membership.
type HighRiskArea struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Lat     float64   `json:"lat"`
	Lng     float64   `json:"lng"`
	RadiusM float64   `json:"radius_m"`
	Risk    RiskLevel `json:"risk"`
	Active  bool      `json:"active"`
}

type CreateSafeZoneRequest struct {
	Name                  string  `json:"name" validate:"required"`
	Lat                   float64 `json:"lat" validate:"lat"`
	Lng                   float64 `json:"lng" validate:"lng"`
	RadiusM               float64 `json:"radius_m" validate:"required,gt=0"`
	AlertThresholdSeconds int     `json:"alert_threshold_seconds" validate:"required,gt=0"`
}

type UpdateSafeZoneRequest struct {
	Name                  *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Lat                   *float64 `json:"lat,omitempty" validate:"omitempty,lat"`
	Lng                   *float64 `json:"lng,omitempty" validate:"omitempty,lng"`
	RadiusM               *float64 `json:"radius_m,omitempty" validate:"omitempty,gt=0"`
	AlertThresholdSeconds *int     `json:"alert_threshold_seconds,omitempty" validate:"omitempty,gt=0"`
	Active                *bool    `json:"active,omitempty"`
}
