package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/api/handlers/http/admin"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/api/handlers/http/monitoring"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/api/handlers/http/system"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/api/handlers/http/telemetry"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/api/handlers/ws"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/broker"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/config"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/domain"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/middleware"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, hub *broker.Hub) *Server {
	telemetryHandler := telemetry.NewHandler(logger, svc.Telemetry)
	monitoringHandler := monitoring.NewHandler(logger, svc.Incidents)
	adminHandler := admin.NewHandler(logger, svc.SafeZones)
	systemHandler := system.NewHandler(logger)
	wsHandler := ws.NewHandler(logger, hub)

	r := InitRouter(telemetryHandler, monitoringHandler, adminHandler, systemHandler, wsHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(
	telemetryHandler *telemetry.Handler,
	monitoringHandler *monitoring.Handler,
	adminHandler *admin.Handler,
	systemHandler *system.Handler,
	wsHandler *ws.Handler,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// TELEMETRY: high-volume device traffic, loose limits
		api.Group(func(tr chi.Router) {
			tr.Use(middleware.Identity)
			tr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			tr.Post("/location", telemetryHandler.ReportLocation)
			tr.Post("/panic", telemetryHandler.Panic)
		})

		// MONITORING: officer dashboard
		api.Group(func(mr chi.Router) {
			mr.Use(middleware.Identity)

			mr.Get("/incidents", monitoringHandler.IncidentList)
			mr.Get("/panic-alerts", monitoringHandler.PanicAlertList)

			mr.Group(func(or chi.Router) {
				or.Use(middleware.RequireRole(domain.RoleOfficer, domain.RoleAdmin))

				or.Post("/incidents/{id}/ack", monitoringHandler.IncidentAcknowledge)
				or.Post("/incidents/{id}/resolve", monitoringHandler.IncidentResolve)
				or.Post("/panic-alerts/{id}/ack", monitoringHandler.PanicAlertAcknowledge)
			})
		})

		// ADMIN: zone management
		api.Route("/safe-zones", func(ar chi.Router) {
			ar.Use(middleware.Identity)
			ar.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			ar.Get("/", adminHandler.SafeZoneList)

			ar.Group(func(wr chi.Router) {
				wr.Use(middleware.RequireRole(domain.RoleAdmin))

				wr.Post("/", adminHandler.SafeZoneCreate)
				wr.Put("/{id}", adminHandler.SafeZoneUpdate)
				wr.Delete("/{id}", adminHandler.SafeZoneDelete)
			})
		})

		api.Group(func(rr chi.Router) {
			rr.Use(middleware.Identity)
			rr.Get("/risk-areas", adminHandler.RiskAreaList)
		})

		// REALTIME
		api.Group(func(sr chi.Router) {
			sr.Use(middleware.Identity)
			sr.Get("/ws", wsHandler.Serve)
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
