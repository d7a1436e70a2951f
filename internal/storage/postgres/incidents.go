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

type IncidentRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewIncidentRepo(pool *pgxpool.Pool, logger *slog.Logger) *IncidentRepo {
	return &IncidentRepo{pool: pool, logger: logger}
}

const incidentColumns = `id, type, severity, status, description, lat, lng, user_id, created_at, updated_at`

func (p *IncidentRepo) Create(ctx context.Context, inc *domain.Incident) error {
	const op = "postgres.Incident.Create"

	if inc.ID == uuid.Nil {
		inc.ID = uuid.New()
	}
	now := time.Now().UTC()
	if inc.CreatedAt.IsZero() {
		inc.CreatedAt = now
	}
	inc.UpdatedAt = inc.CreatedAt
	if inc.Status == "" {
		inc.Status = domain.IncidentOpen
	}

	const query = `
		INSERT INTO incidents (id, type, severity, status, description, lat, lng, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := p.pool.Exec(ctx, query,
		inc.ID,
		inc.Type,
		inc.Severity,
		inc.Status,
		inc.Description,
		inc.Lat,
		inc.Lng,
		inc.UserID,
		inc.CreatedAt,
		inc.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *IncidentRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error) {
	const op = "postgres.Incident.Get"

	const query = `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1`

	inc, err := scanIncident(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return inc, nil
}

// List returns incidents newest first, optionally filtered, capped at
// domain.MaxIncidentPageSize.
func (p *IncidentRepo) List(ctx context.Context, filter domain.IncidentFilter) ([]*domain.Incident, error) {
	const op = "postgres.Incident.List"

	limit := filter.Limit
	if limit <= 0 || limit > domain.MaxIncidentPageSize {
		limit = domain.MaxIncidentPageSize
	}

	query := `SELECT ` + incidentColumns + ` FROM incidents`
	args := make([]any, 0, 3)
	where := ""
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = fmt.Sprintf(" WHERE status = $%d", len(args))
	}
	if filter.Severity != "" {
		args = append(args, filter.Severity)
		if where == "" {
			where = fmt.Sprintf(" WHERE severity = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND severity = $%d", len(args))
		}
	}
	args = append(args, limit)
	query += where + fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	incidents := make([]*domain.Incident, 0, 16)
	for rows.Next() {
		inc, err := scanIncident(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		incidents = append(incidents, inc)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return incidents, nil
}

// UpdateStatus performs a compare-and-swap transition: the row is only
// touched when its current status still equals from. A raced-away row
// surfaces as ErrConflict so the caller can re-read and report the
// real reason.
func (p *IncidentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.IncidentStatus) (*domain.Incident, error) {
	const op = "postgres.Incident.UpdateStatus"

	const query = `
		UPDATE incidents
		SET status = $3, updated_at = $4
		WHERE id = $1 AND status = $2
		RETURNING ` + incidentColumns

	inc, err := scanIncident(p.pool.QueryRow(ctx, query, id, from, to, time.Now().UTC()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrConflict)
		}
		p.logger.Error("db update failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return inc, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIncident(row rowScanner) (*domain.Incident, error) {
	var inc domain.Incident
	err := row.Scan(
		&inc.ID,
		&inc.Type,
		&inc.Severity,
		&inc.Status,
		&inc.Description,
		&inc.Lat,
		&inc.Lng,
		&inc.UserID,
		&inc.CreatedAt,
		&inc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inc, nil
}
