package service_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/domain"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/service"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/pkg/e"

	mock_service "github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/service/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func f64(v float64) *float64 { return &v }

type telemetryMocks struct {
	incidents *mock_service.MockIncidentRepository
	panics    *mock_service.MockPanicAlertRepository
	zones     *mock_service.MockSafeZoneRepository
	areas     *mock_service.MockRiskAreaRepository
	cache     *mock_service.MockZoneCache
	monitor   *mock_service.MockSafetyMonitor
	risk      *mock_service.MockRiskScorer
	queue     *mock_service.MockNotificationQueue
	pub       *mock_service.MockPublisher
}

func newTelemetry(ctrl *gomock.Controller) (*service.TelemetryService, telemetryMocks) {
	m := telemetryMocks{
		incidents: mock_service.NewMockIncidentRepository(ctrl),
		panics:    mock_service.NewMockPanicAlertRepository(ctrl),
		zones:     mock_service.NewMockSafeZoneRepository(ctrl),
		areas:     mock_service.NewMockRiskAreaRepository(ctrl),
		cache:     mock_service.NewMockZoneCache(ctrl),
		monitor:   mock_service.NewMockSafetyMonitor(ctrl),
		risk:      mock_service.NewMockRiskScorer(ctrl),
		queue:     mock_service.NewMockNotificationQueue(ctrl),
		pub:       mock_service.NewMockPublisher(ctrl),
	}

	svc := service.NewTelemetryService(
		testLogger(),
		m.incidents,
		m.panics,
		m.zones,
		m.areas,
		m.cache,
		m.monitor,
		m.risk,
		m.queue,
		m.pub,
		time.Minute,
	)
	return svc, m
}

// expectZoneLookup wires a cache miss followed by repository reads.
func (m telemetryMocks) expectZoneLookup(zones []domain.SafeZone, areas []domain.HighRiskArea) {
	m.cache.EXPECT().GetSafeZones(gomock.Any()).Return(nil, nil)
	m.zones.EXPECT().ListActive(gomock.Any()).Return(zones, nil)
	m.cache.EXPECT().SetSafeZones(gomock.Any(), zones, gomock.Any()).Return(nil)
	m.cache.EXPECT().GetRiskAreas(gomock.Any()).Return(nil, nil)
	m.areas.EXPECT().ListActive(gomock.Any()).Return(areas, nil)
	m.cache.EXPECT().SetRiskAreas(gomock.Any(), areas, gomock.Any()).Return(nil)
}

func TestHandleLocation_RejectsInvalidCoordinates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTelemetry(ctrl)

	_, err := svc.HandleLocation(context.Background(), uuid.New(), domain.LocationRequest{
		Latitude:  91,
		Longitude: 77.59,
	})
	if !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got %v", err)
	}
}

func TestHandleLocation_CleanReportCreatesNoIncident(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTelemetry(ctrl)
	userID := uuid.New()

	z := domain.SafeZone{ID: uuid.New(), Name: "campus", Lat: 12.97, Lng: 77.59, RadiusM: 500, Active: true}
	m.expectZoneLookup([]domain.SafeZone{z}, nil)
	m.risk.EXPECT().AreaRisk(gomock.Any(), 12.97, 77.59).Return(0.0, false)
	m.monitor.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.UserSafetyStatus{})

	resp, err := svc.HandleLocation(context.Background(), userID, domain.LocationRequest{
		Latitude:  12.97,
		Longitude: 77.59,
		Speed:     f64(5),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !resp.Saved {
		t.Fatal("report must be marked saved")
	}
	if resp.Anomaly != "" {
		t.Fatalf("no anomaly expected, got %q", resp.Anomaly)
	}
	if resp.Incident != nil {
		t.Fatalf("no incident expected, got %+v", resp.Incident)
	}
	if resp.Geofences == nil {
		t.Fatal("geofences must never be nil")
	}
	if len(resp.Geofences) != 1 || resp.Geofences[0].ZoneID != z.ID {
		t.Fatalf("unexpected geofences: %+v", resp.Geofences)
	}
}

func TestHandleLocation_AnomalyCreatesIncident(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTelemetry(ctrl)
	userID := uuid.New()

	m.expectZoneLookup(nil, nil)
	m.risk.EXPECT().AreaRisk(gomock.Any(), gomock.Any(), gomock.Any()).Return(0.0, false)

	m.incidents.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *domain.Incident) error {
			if inc.Type != domain.IncidentTypeAnomaly {
				t.Fatalf("unexpected type %q", inc.Type)
			}
			if inc.Severity != domain.SeverityHigh {
				t.Fatalf("unexpected severity %q", inc.Severity)
			}
			if inc.UserID != userID {
				t.Fatal("incident must carry the reporting user")
			}
			inc.ID = uuid.New()
			return nil
		})
	m.pub.EXPECT().Publish(domain.TopicIncident, gomock.Any())
	m.queue.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n domain.OutboundNotification) error {
			if n.Kind != domain.NotifyLedgerNotarization {
				t.Fatalf("unexpected notification kind %q", n.Kind)
			}
			return nil
		})
	m.monitor.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.UserSafetyStatus{})

	resp, err := svc.HandleLocation(context.Background(), userID, domain.LocationRequest{
		Latitude:  12.97,
		Longitude: 77.59,
		Speed:     f64(50), // way past plausible
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.Anomaly == "" {
		t.Fatal("anomaly expected")
	}
	if resp.Incident == nil {
		t.Fatal("incident expected in response")
	}
}

func TestHandleLocation_ExternalRiskCreatesIncident(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTelemetry(ctrl)

	m.expectZoneLookup(nil, nil)
	m.risk.EXPECT().AreaRisk(gomock.Any(), gomock.Any(), gomock.Any()).Return(0.85, true)

	m.incidents.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *domain.Incident) error {
			if inc.Type != domain.IncidentTypeOther {
				t.Fatalf("unexpected type %q", inc.Type)
			}
			return nil
		})
	m.pub.EXPECT().Publish(domain.TopicIncident, gomock.Any())
	m.queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)
	m.monitor.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.UserSafetyStatus{})

	if _, err := svc.HandleLocation(context.Background(), uuid.New(), domain.LocationRequest{
		Latitude:  12.97,
		Longitude: 77.59,
	}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestHandleLocation_CacheFailureFallsBackToRepo(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTelemetry(ctrl)

	m.cache.EXPECT().GetSafeZones(gomock.Any()).Return(nil, errors.New("redis down"))
	m.zones.EXPECT().ListActive(gomock.Any()).Return(nil, nil)
	m.cache.EXPECT().SetSafeZones(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	m.cache.EXPECT().GetRiskAreas(gomock.Any()).Return(nil, errors.New("redis down"))
	m.areas.EXPECT().ListActive(gomock.Any()).Return(nil, nil)
	m.cache.EXPECT().SetRiskAreas(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	m.risk.EXPECT().AreaRisk(gomock.Any(), gomock.Any(), gomock.Any()).Return(0.0, false)
	m.monitor.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.UserSafetyStatus{})

	resp, err := svc.HandleLocation(context.Background(), uuid.New(), domain.LocationRequest{
		Latitude:  12.97,
		Longitude: 77.59,
	})
	if err != nil {
		t.Fatalf("cache failures must not fail ingest: %v", err)
	}
	if !resp.Saved {
		t.Fatal("report must still be saved")
	}
}

func TestHandlePanic_CreatesAlertAndIncident(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTelemetry(ctrl)
	userID := uuid.New()

	m.panics.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.PanicAlert) error {
			a.ID = uuid.New()
			return nil
		})
	m.incidents.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *domain.Incident) error {
			if inc.Type != domain.IncidentTypePanic {
				t.Fatalf("unexpected type %q", inc.Type)
			}
			if inc.Severity != domain.SeverityCritical {
				t.Fatalf("panic incidents must be critical, got %q", inc.Severity)
			}
			return nil
		})
	m.pub.EXPECT().Publish(domain.TopicIncident, gomock.Any())
	m.pub.EXPECT().Publish(domain.TopicPanicAlert, gomock.Any())
	m.queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	alert, err := svc.HandlePanic(context.Background(), userID, domain.PanicRequest{Lat: 12.97, Lng: 77.59})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if alert.UserID != userID {
		t.Fatal("alert must carry the reporting user")
	}
}

func TestHandlePanic_IncidentFailureDoesNotFailPanic(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTelemetry(ctrl)

	m.panics.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.incidents.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("pg down"))
	m.pub.EXPECT().Publish(domain.TopicPanicAlert, gomock.Any())
	m.queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)

	if _, err := svc.HandlePanic(context.Background(), uuid.New(), domain.PanicRequest{Lat: 12.97, Lng: 77.59}); err != nil {
		t.Fatalf("incident create failure must not fail the panic: %v", err)
	}
}

func TestHandlePanic_RejectsInvalidCoordinates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTelemetry(ctrl)

	_, err := svc.HandlePanic(context.Background(), uuid.New(), domain.PanicRequest{Lat: 12.97, Lng: -181})
	if !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got %v", err)
	}
}
