package monitoring

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/domain"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type IncidentManager interface {
	List(ctx context.Context, filter domain.IncidentFilter) ([]*domain.Incident, error)
	Acknowledge(ctx context.Context, id uuid.UUID, actor domain.Actor) (*domain.Incident, error)
	Resolve(ctx context.Context, id uuid.UUID, actor domain.Actor) (*domain.Incident, error)
	ListPanicAlerts(ctx context.Context, limit int) ([]*domain.PanicAlert, error)
	AcknowledgePanicAlert(ctx context.Context, id uuid.UUID, actor domain.Actor) (*domain.PanicAlert, error)
}

type Handler struct {
	logger    *slog.Logger
	Incidents IncidentManager
}

func NewHandler(logger *slog.Logger, incidents IncidentManager) *Handler {
	return &Handler{
		logger:    logger,
		Incidents: incidents,
	}
}

func (h *Handler) IncidentList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	q := r.URL.Query()
	filter := domain.IncidentFilter{
		Status:   domain.IncidentStatus(q.Get("status")),
		Severity: domain.IncidentSeverity(q.Get("severity")),
		Limit:    parseInt(q.Get("limit"), 50),
	}

	incidents, err := h.Incidents.List(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Debug("incidents listed", slog.Int("count", len(incidents)))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"incidents": incidents,
		"count":     len(incidents),
	})
}

func (h *Handler) IncidentAcknowledge(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Incidents.Acknowledge)
}

func (h *Handler) IncidentResolve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Incidents.Resolve)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID, domain.Actor) (*domain.Incident, error)) {
	l := h.log(r)

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing identity"})
		return
	}

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	inc, err := fn(r.Context(), id, actor)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, inc)
}

func (h *Handler) PanicAlertList(w http.ResponseWriter, r *http.Request) {
	limit := parseInt(r.URL.Query().Get("limit"), 50)

	alerts, err := h.Incidents.ListPanicAlerts(r.Context(), limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"alerts": alerts,
		"count":  len(alerts),
	})
}

func (h *Handler) PanicAlertAcknowledge(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing identity"})
		return
	}

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	alert, err := h.Incidents.AcknowledgePanicAlert(r.Context(), id, actor)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, alert)
}
