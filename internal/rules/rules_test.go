package rules_test

import (
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/domain"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/rules"
)

func f64(v float64) *float64 { return &v }

func report(lat, lng float64) domain.LocationReport {
	return domain.LocationReport{
		UserID:    uuid.New(),
		Latitude:  lat,
		Longitude: lng,
	}
}

func TestEvaluate_Anomalies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		speed    *float64
		accuracy *float64
		want     string
	}{
		{"no signals", nil, nil, ""},
		{"plausible", f64(10), f64(20), ""},
		{"speed at limit", f64(33.0), f64(20), ""},
		{"unrealistic speed", f64(33.5), nil, rules.AnomalyUnrealisticSpeed},
		{"accuracy at limit", nil, f64(100.0), ""},
		{"low accuracy", nil, f64(150), rules.AnomalyLowGPSAccuracy},
		{"speed wins over accuracy", f64(40), f64(150), rules.AnomalyUnrealisticSpeed},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rep := report(12.97, 77.59)
			rep.Speed = tt.speed
			rep.Accuracy = tt.accuracy

			ev := rules.Evaluate(rep, nil, nil)
			if ev.Anomaly != tt.want {
				t.Fatalf("anomaly: got %q want %q", ev.Anomaly, tt.want)
			}
		})
	}
}

func TestZoneHits_BoundaryInclusive(t *testing.T) {
	t.Parallel()

	center := struct{ lat, lng float64 }{12.9716, 77.5946}
	point := struct{ lat, lng float64 }{12.9800, 77.5946}

	d := rules.Haversine(point.lat, point.lng, center.lat, center.lng)

	zone := domain.SafeZone{
		ID:      uuid.New(),
		Name:    "campus",
		Lat:     center.lat,
		Lng:     center.lng,
		RadiusM: d,
		Active:  true,
	}

	hits := rules.ZoneHits(point.lat, point.lng, []domain.SafeZone{zone})
	if len(hits) != 1 {
		t.Fatalf("point on the boundary must count as inside, got %d hits", len(hits))
	}

	zone.RadiusM = d - 0.5
	hits = rules.ZoneHits(point.lat, point.lng, []domain.SafeZone{zone})
	if len(hits) != 0 {
		t.Fatalf("point past the boundary must be outside, got %d hits", len(hits))
	}
}

func TestZoneHits_SkipsInactive(t *testing.T) {
	t.Parallel()

	zone := domain.SafeZone{
		ID:      uuid.New(),
		Lat:     12.97,
		Lng:     77.59,
		RadiusM: 100000,
		Active:  false,
	}

	hits := rules.ZoneHits(12.97, 77.59, []domain.SafeZone{zone})
	if len(hits) != 0 {
		t.Fatalf("inactive zone must never match, got %d hits", len(hits))
	}
}

func TestEvaluate_RiskAreaHit(t *testing.T) {
	t.Parallel()

	areas := []domain.HighRiskArea{
		{ID: uuid.New(), Name: "old quarry", Lat: 12.97, Lng: 77.59, RadiusM: 500, Risk: domain.RiskHigh, Active: true},
		{ID: uuid.New(), Name: "far away", Lat: 28.61, Lng: 77.20, RadiusM: 500, Risk: domain.RiskHigh, Active: true},
	}

	ev := rules.Evaluate(report(12.97, 77.59), nil, areas)
	if len(ev.RiskHits) != 1 {
		t.Fatalf("expected exactly one risk hit, got %d", len(ev.RiskHits))
	}
	if ev.RiskHits[0].Name != "old quarry" {
		t.Fatalf("unexpected risk hit: %+v", ev.RiskHits[0])
	}
}

func TestDecide_AnomalyIsHighSeverity(t *testing.T) {
	t.Parallel()

	d, create := rules.Decide(rules.AnomalyUnrealisticSpeed, nil, 0, false)
	if !create {
		t.Fatal("anomaly must create an incident")
	}
	if d.Type != domain.IncidentTypeAnomaly || d.Severity != domain.SeverityHigh {
		t.Fatalf("unexpected decision: %+v", d)
	}
	if d.Description != rules.AnomalyUnrealisticSpeed {
		t.Fatalf("description must carry the anomaly code, got %q", d.Description)
	}
}

func TestDecide_HighRiskAreaBeatsExternalScore(t *testing.T) {
	t.Parallel()

	hits := []rules.RiskHit{
		{Name: "old quarry", Risk: domain.RiskHigh},
		{Name: "river bank", Risk: domain.RiskMedium},
	}

	d, create := rules.Decide("", hits, 0.9, true)
	if !create {
		t.Fatal("high risk area must create an incident")
	}
	if d.Type != domain.IncidentTypeGeofence || d.Severity != domain.SeverityMedium {
		t.Fatalf("unexpected decision: %+v", d)
	}
	if !strings.Contains(d.Description, "old quarry") {
		t.Fatalf("description must name the area, got %q", d.Description)
	}
	if strings.Contains(d.Description, "river bank") {
		t.Fatalf("medium risk areas must not be named, got %q", d.Description)
	}
}

func TestDecide_ExternalScore(t *testing.T) {
	t.Parallel()

	if _, create := rules.Decide("", nil, 0.70, true); !create {
		t.Fatal("score at threshold must create an incident")
	}
	if _, create := rules.Decide("", nil, 0.69, true); create {
		t.Fatal("score below threshold must not create an incident")
	}
	if _, create := rules.Decide("", nil, 0.99, false); create {
		t.Fatal("score without signal must be ignored")
	}
}

func TestHaversine_KnownDistance(t *testing.T) {
	t.Parallel()

	// Bangalore to Mysore, roughly 125-130 km.
	d := rules.Haversine(12.9716, 77.5946, 12.2958, 76.6394)
	if d < 120000 || d > 135000 {
		t.Fatalf("implausible distance: %f m", d)
	}

	if got := rules.Haversine(12.97, 77.59, 12.97, 77.59); math.Abs(got) > 1e-9 {
		t.Fatalf("zero distance expected, got %f", got)
	}
}
