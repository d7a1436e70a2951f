package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/domain"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type SafeZoneAdmin interface {
	Create(ctx context.Context, req domain.CreateSafeZoneRequest) (*domain.SafeZone, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateSafeZoneRequest) (*domain.SafeZone, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]domain.SafeZone, error)
	ListRiskAreas(ctx context.Context) ([]domain.HighRiskArea, error)
}

type Handler struct {
	logger *slog.Logger
	Zones  SafeZoneAdmin
}

func NewHandler(logger *slog.Logger, zones SafeZoneAdmin) *Handler {
	return &Handler{
		logger: logger,
		Zones:  zones,
	}
}

func (h *Handler) SafeZoneCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateSafeZoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	zone, err := h.Zones.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("safe zone created", slog.String("id", zone.ID.String()), slog.String("name", zone.Name))
	h.writeJSON(w, http.StatusCreated, zone)
}

func (h *Handler) SafeZoneUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, err := h.parseID(r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.UpdateSafeZoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	zone, err := h.Zones.Update(r.Context(), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, zone)
}

func (h *Handler) SafeZoneDelete(w http.ResponseWriter, r *http.Request) {
	id, err := h.parseID(r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if err := h.Zones.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SafeZoneList(w http.ResponseWriter, r *http.Request) {
	zones, err := h.Zones.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"zones": zones,
		"count": len(zones),
	})
}

func (h *Handler) RiskAreaList(w http.ResponseWriter, r *http.Request) {
	areas, err := h.Zones.ListRiskAreas(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"areas": areas,
		"count": len(areas),
	})
}

func (h *Handler) parseID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}
