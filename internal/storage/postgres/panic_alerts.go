package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/domain"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/pkg/e"
)

type PanicAlertRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPanicAlertRepo(pool *pgxpool.Pool, logger *slog.Logger) *PanicAlertRepo {
	return &PanicAlertRepo{pool: pool, logger: logger}
}

const panicColumns = `id, user_id, lat, lng, triggered_at, acknowledged, acknowledged_by`

func (p *PanicAlertRepo) Create(ctx context.Context, alert *domain.PanicAlert) error {
	const op = "postgres.PanicAlert.Create"

	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	if alert.TriggeredAt.IsZero() {
		alert.TriggeredAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO panic_alerts (id, user_id, lat, lng, triggered_at, acknowledged, acknowledged_by)
		VALUES ($1, $2, $3, $4, $5, false, NULL)
	`

	_, err := p.pool.Exec(ctx, query,
		alert.ID,
		alert.UserID,
		alert.Lat,
		alert.Lng,
		alert.TriggeredAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *PanicAlertRepo) List(ctx context.Context, limit int) ([]*domain.PanicAlert, error) {
	const op = "postgres.PanicAlert.List"

	if limit <= 0 || limit > domain.MaxIncidentPageSize {
		limit = domain.MaxIncidentPageSize
	}

	const query = `SELECT ` + panicColumns + ` FROM panic_alerts ORDER BY triggered_at DESC LIMIT $1`

	rows, err := p.pool.Query(ctx, query, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	alerts := make([]*domain.PanicAlert, 0, 16)
	for rows.Next() {
		var a domain.PanicAlert
		if err := rows.Scan(&a.ID, &a.UserID, &a.Lat, &a.Lng, &a.TriggeredAt, &a.Acknowledged, &a.AcknowledgedBy); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		alerts = append(alerts, &a)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return alerts, nil
}

// Acknowledge is the terminal transition of the two-state machine:
// pending -> acknowledged, acknowledged_by set in the same write.
func (p *PanicAlertRepo) Acknowledge(ctx context.Context, id, actorID uuid.UUID) (*domain.PanicAlert, error) {
	const op = "postgres.PanicAlert.Acknowledge"

	const query = `
		UPDATE panic_alerts
		SET acknowledged = true, acknowledged_by = $2
		WHERE id = $1 AND acknowledged = false
		RETURNING ` + panicColumns

	var a domain.PanicAlert
	err := p.pool.QueryRow(ctx, query, id, actorID).
		Scan(&a.ID, &a.UserID, &a.Lat, &a.Lng, &a.TriggeredAt, &a.Acknowledged, &a.AcknowledgedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrConflict)
		}
		p.logger.Error("db update failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &a, nil
}

func (p *PanicAlertRepo) Get(ctx context.Context, id uuid.UUID) (*domain.PanicAlert, error) {
	const op = "postgres.PanicAlert.Get"

	const query = `SELECT ` + panicColumns + ` FROM panic_alerts WHERE id = $1`

	var a domain.PanicAlert
	err := p.pool.QueryRow(ctx, query, id).
		Scan(&a.ID, &a.UserID, &a.Lat, &a.Lng, &a.TriggeredAt, &a.Acknowledged, &a.AcknowledgedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &a, nil
}
