package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/config"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/pkg/e"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

type Postgres struct {
	Pool        *pgxpool.Pool
	Incidents   *IncidentRepo
	PanicAlerts *PanicAlertRepo
	SafeZones   *SafeZoneRepo
	RiskAreas   *RiskAreaRepo
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.SSLMode,
	)

	if err := runMigrations(dsn); err != nil {
		logger.Error("migrations failed", slog.Any("error", err))
		return nil, e.Wrap("storage.pg.NewPostgres.migrate", err)
	}

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}
	poolCfg.MaxConns = cfg.Postgres.MaxConns
	poolCfg.MinConns = cfg.Postgres.MinConns
	poolCfg.MaxConnLifetime = cfg.Postgres.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}
	logger.Info("connected to postgres", slog.String("db", cfg.Postgres.Database))

	return &Postgres{
		Pool:        pool,
		Incidents:   NewIncidentRepo(pool, logger),
		PanicAlerts: NewPanicAlertRepo(pool, logger),
		SafeZones:   NewSafeZoneRepo(pool, logger),
		RiskAreas:   NewRiskAreaRepo(pool, logger),
	}, nil
}

// runMigrations uses a short-lived database/sql connection: goose
// wants *sql.DB, the rest of the app runs on pgxpool.
func runMigrations(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, "migrations")
}
