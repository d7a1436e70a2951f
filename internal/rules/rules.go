// Package rules holds the stateless safety checks: anomaly detection,
// geofence membership and the incident-creation policy. Nothing here
// performs I/O or mutates state; callers decide what to do with the
// verdicts.
package rules

import (
	"fmt"
	"math"
	"strings"

	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/domain"
)

const (
	// MaxRealisticSpeedMS is ~120 km/h; anything above is treated as a
	// GPS glitch or spoofed report.
	MaxRealisticSpeedMS = 33.0
	// MaxUsableAccuracyM is the worst GPS accuracy still considered a
	// usable fix.
	MaxUsableAccuracyM = 100.0

	AnomalyUnrealisticSpeed = "unrealistic_speed"
	AnomalyLowGPSAccuracy   = "low_gps_accuracy"

	// ExternalRiskThreshold is the minimum ML risk score (0..1) that
	// raises an incident on its own.
	ExternalRiskThreshold = 0.7

	earthRadiusM = 6371000.0
)

type RiskHit struct {
	Name string           `json:"name"`
	Risk domain.RiskLevel `json:"risk"`
}

// Evaluation is purely advisory: it never raises incident or alert
// state by itself.
type Evaluation struct {
	Anomaly  string
	ZoneHits []domain.SafeZone
	RiskHits []RiskHit
}

// Evaluate runs every stateless check against one report. At most one
// anomaly is reported; the speed check wins when both trigger. Reports
// without speed and accuracy skip the anomaly checks entirely.
func Evaluate(rep domain.LocationReport, zones []domain.SafeZone, areas []domain.HighRiskArea) Evaluation {
	ev := Evaluation{
		ZoneHits: ZoneHits(rep.Latitude, rep.Longitude, zones),
		RiskHits: riskHits(rep.Latitude, rep.Longitude, areas),
	}

	switch {
	case rep.Speed != nil && *rep.Speed > MaxRealisticSpeedMS:
		ev.Anomaly = AnomalyUnrealisticSpeed
	case rep.Accuracy != nil && *rep.Accuracy > MaxUsableAccuracyM:
		ev.Anomaly = AnomalyLowGPSAccuracy
	}

	return ev
}

// ZoneHits returns every active zone whose boundary contains the point.
// The boundary is inclusive: distance == radius counts as inside.
func ZoneHits(lat, lng float64, zones []domain.SafeZone) []domain.SafeZone {
	hits := make([]domain.SafeZone, 0, 2)
	for _, z := range zones {
		if !z.Active {
			continue
		}
		if Haversine(lat, lng, z.Lat, z.Lng) <= z.RadiusM {
			hits = append(hits, z)
		}
	}
	return hits
}

func riskHits(lat, lng float64, areas []domain.HighRiskArea) []RiskHit {
	hits := make([]RiskHit, 0, 2)
	for _, a := range areas {
		if !a.Active {
			continue
		}
		if Haversine(lat, lng, a.Lat, a.Lng) <= a.RadiusM {
			hits = append(hits, RiskHit{Name: a.Name, Risk: a.Risk})
		}
	}
	return hits
}

type Decision struct {
	Type        domain.IncidentType
	Severity    domain.IncidentSeverity
	Description string
}

// Decide is the incident-creation policy applied to an evaluation.
// extScore is the optional external ML risk signal; hasExt is false
// whenever the collaborator was unreachable (fail open).
func Decide(anomaly string, riskHits []RiskHit, extScore float64, hasExt bool) (Decision, bool) {
	if anomaly != "" {
		return Decision{
			Type:        domain.IncidentTypeAnomaly,
			Severity:    domain.SeverityHigh,
			Description: anomaly,
		}, true
	}

	var highNames []string
	for _, h := range riskHits {
		if h.Risk == domain.RiskHigh {
			highNames = append(highNames, h.Name)
		}
	}
	if len(highNames) > 0 {
		return Decision{
			Type:        domain.IncidentTypeGeofence,
			Severity:    domain.SeverityMedium,
			Description: "Entered " + strings.Join(highNames, ", "),
		}, true
	}

	if hasExt && extScore >= ExternalRiskThreshold {
		return Decision{
			Type:        domain.IncidentTypeOther,
			Severity:    domain.SeverityMedium,
			Description: fmt.Sprintf("Elevated area risk (score %.2f)", extScore),
		}, true
	}

	return Decision{}, false
}

// Haversine returns the great-circle distance in meters. Good enough
// for the sub-10km radii safe zones use.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLng := deg2rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
