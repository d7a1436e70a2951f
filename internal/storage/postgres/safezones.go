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

type SafeZoneRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSafeZoneRepo(pool *pgxpool.Pool, logger *slog.Logger) *SafeZoneRepo {
	return &SafeZoneRepo{pool: pool, logger: logger}
}

const zoneColumns = `id, name, lat, lng, radius_m, alert_threshold_seconds, active, created_at`

func (p *SafeZoneRepo) Create(ctx context.Context, z *domain.SafeZone) error {
	const op = "postgres.SafeZone.Create"

	if z.ID == uuid.Nil {
		z.ID = uuid.New()
	}
	if z.CreatedAt.IsZero() {
		z.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO safe_zones (id, name, lat, lng, radius_m, alert_threshold_seconds, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := p.pool.Exec(ctx, query,
		z.ID, z.Name, z.Lat, z.Lng, z.RadiusM, z.AlertThresholdSeconds, z.Active, z.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *SafeZoneRepo) Get(ctx context.Context, id uuid.UUID) (*domain.SafeZone, error) {
	const op = "postgres.SafeZone.Get"

	const query = `SELECT ` + zoneColumns + ` FROM safe_zones WHERE id = $1`

	var z domain.SafeZone
	err := p.pool.QueryRow(ctx, query, id).
		Scan(&z.ID, &z.Name, &z.Lat, &z.Lng, &z.RadiusM, &z.AlertThresholdSeconds, &z.Active, &z.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &z, nil
}

func (p *SafeZoneRepo) Update(ctx context.Context, z *domain.SafeZone) error {
	const op = "postgres.SafeZone.Update"

	const query = `
		UPDATE safe_zones
		SET name = $2, lat = $3, lng = $4, radius_m = $5, alert_threshold_seconds = $6, active = $7
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query,
		z.ID, z.Name, z.Lat, z.Lng, z.RadiusM, z.AlertThresholdSeconds, z.Active,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", z.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *SafeZoneRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.SafeZone.Delete"

	const query = `DELETE FROM safe_zones WHERE id = $1`

	cmd, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *SafeZoneRepo) List(ctx context.Context) ([]domain.SafeZone, error) {
	return p.list(ctx, "postgres.SafeZone.List", `SELECT `+zoneColumns+` FROM safe_zones ORDER BY created_at DESC`)
}

func (p *SafeZoneRepo) ListActive(ctx context.Context) ([]domain.SafeZone, error) {
	return p.list(ctx, "postgres.SafeZone.ListActive", `SELECT `+zoneColumns+` FROM safe_zones WHERE active ORDER BY created_at DESC`)
}

func (p *SafeZoneRepo) list(ctx context.Context, op, query string) ([]domain.SafeZone, error) {
	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	zones := make([]domain.SafeZone, 0, 8)
	for rows.Next() {
		var z domain.SafeZone
		if err := rows.Scan(&z.ID, &z.Name, &z.Lat, &z.Lng, &z.RadiusM, &z.AlertThresholdSeconds, &z.Active, &z.CreatedAt); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		zones = append(zones, z)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return zones, nil
}

type RiskAreaRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewRiskAreaRepo(pool *pgxpool.Pool, logger *slog.Logger) *RiskAreaRepo {
	return &RiskAreaRepo{pool: pool, logger: logger}
}

func (p *RiskAreaRepo) ListActive(ctx context.Context) ([]domain.HighRiskArea, error) {
	const op = "postgres.RiskArea.ListActive"

	const query = `SELECT id, name, lat, lng, radius_m, risk, active FROM risk_areas WHERE active`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	areas := make([]domain.HighRiskArea, 0, 8)
	for rows.Next() {
		var a domain.HighRiskArea
		if err := rows.Scan(&a.ID, &a.Name, &a.Lat, &a.Lng, &a.RadiusM, &a.Risk, &a.Active); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		areas = append(areas, a)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return areas, nil
}
