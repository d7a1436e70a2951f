package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserSafetyStatus is the live per-user safe-zone state. It is held
// in memory only and rebuilt from the next report after a restart.
// Invariant: AlertSent is only ever true while IsInSafeZone is false.
type UserSafetyStatus struct {
	UserID             uuid.UUID   `json:"user_id"`
	IsInSafeZone       bool        `json:"is_in_safe_zone"`
	CurrentSafeZoneIDs []uuid.UUID `json:"current_safe_zone_ids"`
	OutsideSince       *time.Time  `json:"outside_since,omitempty"`
	AlertSent          bool        `json:"alert_sent"`
	LastUpdate         time.Time   `json:"last_update"`
}
