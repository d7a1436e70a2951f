package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

type IncidentRepository interface {
	Create(ctx context.Context, inc *domain.Incident) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
	List(ctx context.Context, filter domain.IncidentFilter) ([]*domain.Incident, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.IncidentStatus) (*domain.Incident, error)
}

type PanicAlertRepository interface {
	Create(ctx context.Context, alert *domain.PanicAlert) error
	Get(ctx context.Context, id uuid.UUID) (*domain.PanicAlert, error)
	List(ctx context.Context, limit int) ([]*domain.PanicAlert, error)
	Acknowledge(ctx context.Context, id, actorID uuid.UUID) (*domain.PanicAlert, error)
}

type SafeZoneRepository interface {
	Create(ctx context.Context, z *domain.SafeZone) error
	Get(ctx context.Context, id uuid.UUID) (*domain.SafeZone, error)
	Update(ctx context.Context, z *domain.SafeZone) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]domain.SafeZone, error)
	ListActive(ctx context.Context) ([]domain.SafeZone, error)
}

type RiskAreaRepository interface {
	ListActive(ctx context.Context) ([]domain.HighRiskArea, error)
}

type ZoneCache interface {
	GetSafeZones(ctx context.Context) ([]domain.SafeZone, error)
	SetSafeZones(ctx context.Context, zones []domain.SafeZone, ttl time.Duration) error
	GetRiskAreas(ctx context.Context) ([]domain.HighRiskArea, error)
	SetRiskAreas(ctx context.Context, areas []domain.HighRiskArea, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type NotificationQueue interface {
	Enqueue(ctx context.Context, n domain.OutboundNotification) error
}

type Publisher interface {
	Publish(topic domain.Topic, payload any)
}

// RiskScorer is the optional external ML collaborator. ok=false means
// "no signal"; an unreachable service and a disabled one look the same
// to callers.
type RiskScorer interface {
	AreaRisk(ctx context.Context, lat, lng float64) (score float64, ok bool)
}

type SafetyMonitor interface {
	Apply(ctx context.Context, rep domain.LocationReport, zoneHits []domain.SafeZone) domain.UserSafetyStatus
}

type Service struct {
	Telemetry *TelemetryService
	Incidents *IncidentService
	SafeZones *SafeZoneService
}

func NewService(telemetry *TelemetryService, incidents *IncidentService, safeZones *SafeZoneService) *Service {
	return &Service{
		Telemetry: telemetry,
		Incidents: incidents,
		SafeZones: safeZones,
	}
}
