package bootstrap

import (
	"bikepacking-api/cmd/bootstrap/components"
	"bikepacking-api/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config", fx.Provide(config.LoadConfig))

// InfraModule is everything except config and the database pool, so tests can supply both.
var InfraModule = fx.Options(
	LoggerModule,
	JWTModule,
	CacheModule,
	SquareModule,
	MetricsModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	InfraModule,
)
