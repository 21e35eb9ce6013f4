package components

import (
	"bikepacking-api/internal/infra/feed"
	"bikepacking-api/internal/pkg/accesskey"
	"bikepacking-api/internal/pkg/clock"
	"bikepacking-api/internal/pkg/config"
	"bikepacking-api/internal/usecase"
	"bikepacking-api/internal/usecase/commands"
	"bikepacking-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewSystemClock,
	accesskey.NewRandomGenerator,
	fx.Annotate(
		func(cfg config.Config) *feed.MediumFetcher { return feed.NewMediumFetcher(cfg.Blog) },
		fx.As(new(queries.BlogFetcher)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewNormalizer,
		commands.NewPurchaseCommands,
		commands.NewWebhookCommands,
		commands.NewAuthCommands,
		commands.NewRouteCommands,
		commands.NewCheckoutCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewPurchaseQueries,
		queries.NewCatalogQueries,
		queries.NewWebhookEventQueries,
		func(f queries.BlogFetcher, c queries.Cache, m queries.CacheMetrics, cfg config.Config) queries.BlogQueries {
			return queries.NewBlogQueries(f, c, cfg.Blog.CacheTTL, cfg.Blog.MediumUsernames, m)
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
