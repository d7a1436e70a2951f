package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/domain"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/pkg/e"
)

// IncidentService owns the incident and panic-alert lifecycles. Every
// successful transition re-publishes the full record so connected
// dashboards reconcile without re-fetching.
type IncidentService struct {
	logger *slog.Logger
	repo   IncidentRepository
	panics PanicAlertRepository
	pub    Publisher
}

func NewIncidentService(logger *slog.Logger, repo IncidentRepository, panics PanicAlertRepository, pub Publisher) *IncidentService {
	return &IncidentService{
		logger: logger,
		repo:   repo,
		panics: panics,
		pub:    pub,
	}
}

func (s *IncidentService) List(ctx context.Context, filter domain.IncidentFilter) ([]*domain.Incident, error) {
	return s.repo.List(ctx, filter)
}

func (s *IncidentService) Acknowledge(ctx context.Context, id uuid.UUID, actor domain.Actor) (*domain.Incident, error) {
	return s.transition(ctx, id, actor, domain.IncidentAcknowledged)
}

func (s *IncidentService) Resolve(ctx context.Context, id uuid.UUID, actor domain.Actor) (*domain.Incident, error) {
	return s.transition(ctx, id, actor, domain.IncidentResolved)
}

// transition reads the current status, validates the move, then
// applies it as a compare-and-swap so a raced concurrent transition is
// detected instead of silently overwritten.
func (s *IncidentService) transition(ctx context.Context, id uuid.UUID, actor domain.Actor, to domain.IncidentStatus) (*domain.Incident, error) {
	const op = "service.Incident.transition"

	if !actor.CanManageIncidents() {
		return nil, fmt.Errorf("%s: role %q: %w", op, actor.Role, e.ErrForbidden)
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(to) {
		return nil, fmt.Errorf("%s: %s -> %s: %w", op, current.Status, to, e.ErrInvalidTransition)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, current.Status, to)
	if err != nil {
		if errors.Is(err, e.ErrConflict) {
			// Lost the race. Re-read to report the real reason.
			latest, getErr := s.repo.Get(ctx, id)
			if getErr != nil {
				return nil, getErr
			}
			return nil, fmt.Errorf("%s: %s -> %s: %w", op, latest.Status, to, e.ErrInvalidTransition)
		}
		return nil, err
	}

	s.pub.Publish(domain.TopicIncident, updated)
	s.logger.Info("incident transitioned",
		slog.String("id", id.String()),
		slog.String("to", string(to)),
		slog.String("actor_id", actor.ID.String()))

	return updated, nil
}

func (s *IncidentService) ListPanicAlerts(ctx context.Context, limit int) ([]*domain.PanicAlert, error) {
	return s.panics.List(ctx, limit)
}

func (s *IncidentService) AcknowledgePanicAlert(ctx context.Context, id uuid.UUID, actor domain.Actor) (*domain.PanicAlert, error) {
	const op = "service.Incident.AcknowledgePanicAlert"

	if !actor.CanManageIncidents() {
		return nil, fmt.Errorf("%s: role %q: %w", op, actor.Role, e.ErrForbidden)
	}

	alert, err := s.panics.Acknowledge(ctx, id, actor.ID)
	if err != nil {
		if errors.Is(err, e.ErrConflict) {
			if _, getErr := s.panics.Get(ctx, id); getErr != nil {
				return nil, getErr
			}
			// Exists but already acknowledged: terminal state.
			return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidTransition)
		}
		return nil, err
	}

	s.pub.Publish(domain.TopicPanicAlert, alert)

	return alert, nil
}
