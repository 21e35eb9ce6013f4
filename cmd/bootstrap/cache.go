package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"bikepacking-api/internal/infra/cache"
	"bikepacking-api/internal/pkg/clock"
	"bikepacking-api/internal/pkg/config"
	"bikepacking-api/internal/pkg/errs"
	"bikepacking-api/internal/usecase/queries"
)

const redisKeyPrefix = "bikepacking:"

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCache,
	),
)

// NewCache uses Redis when REDIS_URL is set and an in-process cache otherwise.
func NewCache(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) (queries.Cache, error) {
	if cfg.Redis.URL == "" {
		slog.Info("REDIS_URL not set, using in-memory cache")
		return cache.NewMemoryCache(clk), nil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, errs.Wrap(err, "invalid REDIS_URL")
	}
	client := redis.NewClient(opts)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			defer cancel()
			if err := client.Ping(pingCtx).Err(); err != nil {
				// the blog still works uncached, so a down Redis is not fatal
				slog.Warn("redis ping failed", "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewRedisCache(client, redisKeyPrefix), nil
}
