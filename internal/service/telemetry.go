package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/domain"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/rules"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/pkg/e"
)

// TelemetryService is the ingest stage: validate, normalize, evaluate
// rules, feed the safe-zone monitor and materialize incidents. All of
// it runs synchronously inside the request; the only async boundaries
// are the broadcast hub and the notification outbox.
type TelemetryService struct {
	logger    *slog.Logger
	incidents IncidentRepository
	panics    PanicAlertRepository
	zones     SafeZoneRepository
	areas     RiskAreaRepository
	cache     ZoneCache
	monitor   SafetyMonitor
	risk      RiskScorer
	queue     NotificationQueue
	pub       Publisher
	cacheTTL  time.Duration
}

func NewTelemetryService(
	logger *slog.Logger,
	incidents IncidentRepository,
	panics PanicAlertRepository,
	zones SafeZoneRepository,
	areas RiskAreaRepository,
	cache ZoneCache,
	monitor SafetyMonitor,
	risk RiskScorer,
	queue NotificationQueue,
	pub Publisher,
	cacheTTL time.Duration,
) *TelemetryService {
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	return &TelemetryService{
		logger:    logger,
		incidents: incidents,
		panics:    panics,
		zones:     zones,
		areas:     areas,
		cache:     cache,
		monitor:   monitor,
		risk:      risk,
		queue:     queue,
		pub:       pub,
		cacheTTL:  cacheTTL,
	}
}

func (s *TelemetryService) HandleLocation(ctx context.Context, userID uuid.UUID, req domain.LocationRequest) (domain.LocationResponse, error) {
	if err := validateCoords(req.Latitude, req.Longitude); err != nil {
		return domain.LocationResponse{}, err
	}

	rep := domain.LocationReport{
		UserID:    userID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Speed:     req.Speed,
		Accuracy:  req.Accuracy,
		Timestamp: time.Now().UTC(),
	}
	if req.Timestamp != nil && !req.Timestamp.IsZero() {
		rep.Timestamp = req.Timestamp.UTC()
	}

	zones, err := s.activeZones(ctx)
	if err != nil {
		return domain.LocationResponse{}, err
	}
	areas, err := s.activeRiskAreas(ctx)
	if err != nil {
		return domain.LocationResponse{}, err
	}

	ev := rules.Evaluate(rep, zones, areas)

	extScore, hasExt := 0.0, false
	if s.risk != nil {
		extScore, hasExt = s.risk.AreaRisk(ctx, rep.Latitude, rep.Longitude)
	}

	resp := domain.LocationResponse{
		Saved:     true,
		Anomaly:   ev.Anomaly,
		Geofences: geofenceHits(rep, ev.ZoneHits),
	}

	if decision, create := rules.Decide(ev.Anomaly, ev.RiskHits, extScore, hasExt); create {
		inc := &domain.Incident{
			Type:        decision.Type,
			Severity:    decision.Severity,
			Status:      domain.IncidentOpen,
			Description: decision.Description,
			Lat:         rep.Latitude,
			Lng:         rep.Longitude,
			UserID:      userID,
		}
		if err := s.incidents.Create(ctx, inc); err != nil {
			return domain.LocationResponse{}, err
		}
		resp.Incident = inc

		// Write committed; everything past here is best-effort.
		s.pub.Publish(domain.TopicIncident, inc)
		s.enqueueLedger(ctx, inc)

		s.logger.Info("incident created from report",
			slog.String("incident_id", inc.ID.String()),
			slog.String("type", string(inc.Type)),
			slog.String("severity", string(inc.Severity)),
			slog.String("user_id", userID.String()))
	}

	s.monitor.Apply(ctx, rep, ev.ZoneHits)

	return resp, nil
}

func (s *TelemetryService) HandlePanic(ctx context.Context, userID uuid.UUID, req domain.PanicRequest) (*domain.PanicAlert, error) {
	if err := validateCoords(req.Lat, req.Lng); err != nil {
		return nil, err
	}

	triggeredAt := time.Now().UTC()
	if req.Timestamp != nil && !req.Timestamp.IsZero() {
		triggeredAt = req.Timestamp.UTC()
	}

	alert := &domain.PanicAlert{
		UserID:      userID,
		Lat:         req.Lat,
		Lng:         req.Lng,
		TriggeredAt: triggeredAt,
	}
	if err := s.panics.Create(ctx, alert); err != nil {
		return nil, err
	}

	inc := &domain.Incident{
		Type:        domain.IncidentTypePanic,
		Severity:    domain.SeverityCritical,
		Status:      domain.IncidentOpen,
		Description: "Panic button pressed",
		Lat:         req.Lat,
		Lng:         req.Lng,
		UserID:      userID,
	}
	if err := s.incidents.Create(ctx, inc); err != nil {
		// The alert row exists and has been accepted; the missing
		// incident record is recoverable, not a reason to fail the
		// panic.
		s.logger.Error("panic incident create failed", slog.Any("error", err))
	} else {
		s.pub.Publish(domain.TopicIncident, inc)
		s.enqueueLedger(ctx, inc)
	}

	s.pub.Publish(domain.TopicPanicAlert, alert)

	n := domain.OutboundNotification{
		Kind:      domain.NotifyEmergencyContact,
		UserID:    userID,
		Lat:       req.Lat,
		Lng:       req.Lng,
		Message:   fmt.Sprintf("panic alert from user %s", userID),
		CreatedAt: triggeredAt,
	}
	if err := s.queue.Enqueue(ctx, n); err != nil {
		s.logger.Error("enqueue panic notification failed", slog.Any("error", err))
	}

	s.logger.Info("panic alert created",
		slog.String("alert_id", alert.ID.String()),
		slog.String("user_id", userID.String()))

	return alert, nil
}

// activeZones reads through the cache; a miss falls back to Postgres
// and repopulates it.
func (s *TelemetryService) activeZones(ctx context.Context) ([]domain.SafeZone, error) {
	zones, err := s.cache.GetSafeZones(ctx)
	if err != nil {
		s.logger.Warn("zone cache read failed", slog.Any("error", err))
	}
	if zones != nil {
		return zones, nil
	}

	zones, err = s.zones.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetSafeZones(ctx, zones, s.cacheTTL); err != nil {
		s.logger.Warn("zone cache write failed", slog.Any("error", err))
	}
	return zones, nil
}

func (s *TelemetryService) activeRiskAreas(ctx context.Context) ([]domain.HighRiskArea, error) {
	areas, err := s.cache.GetRiskAreas(ctx)
	if err != nil {
		s.logger.Warn("risk area cache read failed", slog.Any("error", err))
	}
	if areas != nil {
		return areas, nil
	}

	areas, err = s.areas.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetRiskAreas(ctx, areas, s.cacheTTL); err != nil {
		s.logger.Warn("risk area cache write failed", slog.Any("error", err))
	}
	return areas, nil
}

func (s *TelemetryService) enqueueLedger(ctx context.Context, inc *domain.Incident) {
	n := domain.OutboundNotification{
		Kind:       domain.NotifyLedgerNotarization,
		UserID:     inc.UserID,
		IncidentID: &inc.ID,
		Lat:        inc.Lat,
		Lng:        inc.Lng,
		Message:    string(inc.Type) + ": " + inc.Description,
		CreatedAt:  inc.CreatedAt,
	}
	if err := s.queue.Enqueue(ctx, n); err != nil {
		s.logger.Error("enqueue ledger notarization failed",
			slog.String("incident_id", inc.ID.String()),
			slog.Any("error", err))
	}
}

func validateCoords(lat, lng float64) error {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return e.ErrInvalidCoordinates
	}
	return nil
}

func geofenceHits(rep domain.LocationReport, zones []domain.SafeZone) []domain.GeofenceHit {
	hits := make([]domain.GeofenceHit, 0, len(zones))
	for _, z := range zones {
		hits = append(hits, domain.GeofenceHit{
			ZoneID:    z.ID,
			Name:      z.Name,
			DistanceM: rules.Haversine(rep.Latitude, rep.Longitude, z.Lat, z.Lng),
		})
	}
	return hits
}
