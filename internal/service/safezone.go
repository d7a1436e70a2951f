package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/domain"
)

// SafeZoneService is the admin surface over zone definitions. Writes
// invalidate the read-through cache and broadcast so dashboards redraw
// their map overlays live.
type SafeZoneService struct {
	logger *slog.Logger
	repo   SafeZoneRepository
	areas  RiskAreaRepository
	cache  ZoneCache
	pub    Publisher
}

func NewSafeZoneService(logger *slog.Logger, repo SafeZoneRepository, areas RiskAreaRepository, cache ZoneCache, pub Publisher) *SafeZoneService {
	return &SafeZoneService{
		logger: logger,
		repo:   repo,
		areas:  areas,
		cache:  cache,
		pub:    pub,
	}
}

func (s *SafeZoneService) Create(ctx context.Context, req domain.CreateSafeZoneRequest) (*domain.SafeZone, error) {
	zone := &domain.SafeZone{
		Name:                  req.Name,
		Lat:                   req.Lat,
		Lng:                   req.Lng,
		RadiusM:               req.RadiusM,
		AlertThresholdSeconds: req.AlertThresholdSeconds,
		Active:                true,
	}
	if err := s.repo.Create(ctx, zone); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.pub.Publish(domain.TopicSafeZoneCreated, zone)

	return zone, nil
}

func (s *SafeZoneService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateSafeZoneRequest) (*domain.SafeZone, error) {
	zone, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		zone.Name = *req.Name
	}
	if req.Lat != nil {
		zone.Lat = *req.Lat
	}
	if req.Lng != nil {
		zone.Lng = *req.Lng
	}
	if req.RadiusM != nil {
		zone.RadiusM = *req.RadiusM
	}
	if req.AlertThresholdSeconds != nil {
		zone.AlertThresholdSeconds = *req.AlertThresholdSeconds
	}
	if req.Active != nil {
		zone.Active = *req.Active
	}

	if err := s.repo.Update(ctx, zone); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.pub.Publish(domain.TopicSafeZoneUpdated, zone)

	return zone, nil
}

func (s *SafeZoneService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.pub.Publish(domain.TopicSafeZoneDeleted, map[string]string{"id": id.String()})

	return nil
}

func (s *SafeZoneService) List(ctx context.Context) ([]domain.SafeZone, error) {
	return s.repo.List(ctx)
}

func (s *SafeZoneService) ListRiskAreas(ctx context.Context) ([]domain.HighRiskArea, error) {
	return s.areas.ListActive(ctx)
}

func (s *SafeZoneService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("zone cache invalidation failed", slog.Any("error", err))
	}
}
