package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"bikepacking-api/internal/infra/db"
	"bikepacking-api/internal/pkg/config"
	"bikepacking-api/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const dbConnectTimeout = 10 * time.Second

// DBModule opens the pgx pool during app construction and closes it on stop.
var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbConnectTimeout)
	defer cancel()

	pool, closePool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, errs.Wrapf(err, "connect to postgres at %s:%s/%s", cfg.DB.Host, cfg.DB.Port, cfg.DB.DBName)
	}
	slog.Info("database pool ready",
		"host", cfg.DB.Host,
		"database", cfg.DB.DBName,
		"max_conns", pool.Config().MaxConns)

	lc.Append(fx.StopHook(closePool))
	return pool, nil
}

// CheckSchema fails startup when the database is behind the embedded
// migrations. `serve --skip-schema-check` leaves it out.
func CheckSchema(cfg config.Config) error {
	if err := db.CheckSchemaVersion(cfg.DB.BuildDSN()); err != nil {
		return errs.Wrap(err, "schema check")
	}
	return nil
}
