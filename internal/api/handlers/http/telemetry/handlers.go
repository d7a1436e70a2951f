package telemetry

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/domain"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/middleware"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type TelemetryIngest interface {
	HandleLocation(ctx context.Context, userID uuid.UUID, req domain.LocationRequest) (domain.LocationResponse, error)
	HandlePanic(ctx context.Context, userID uuid.UUID, req domain.PanicRequest) (*domain.PanicAlert, error)
}

type Handler struct {
	logger *slog.Logger
	Ingest TelemetryIngest
}

func NewHandler(logger *slog.Logger, ingest TelemetryIngest) *Handler {
	return &Handler{
		logger: logger,
		Ingest: ingest,
	}
}

func (h *Handler) ReportLocation(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing identity"})
		return
	}

	var req domain.LocationRequest
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

	resp, err := h.Ingest.HandleLocation(r.Context(), actor.ID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) Panic(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing identity"})
		return
	}

	var req domain.PanicRequest
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

	alert, err := h.Ingest.HandlePanic(r.Context(), actor.ID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("panic accepted", slog.String("alert_id", alert.ID.String()))
	h.writeJSON(w, http.StatusCreated, map[string]any{
		"status": "ok",
		"alert":  alert,
	})
}
