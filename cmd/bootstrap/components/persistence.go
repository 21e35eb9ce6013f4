package components

import (
	"bikepacking-api/internal/infra/readstore"
	sqlc "bikepacking-api/internal/infra/sqlc/generated"
	"bikepacking-api/internal/infra/uow"
	"bikepacking-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write repositories are created per transaction by the unit of work, so only
// the read side is provided here.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	fx.Provide(uow.NewPostgresUoW),
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			func(q *sqlc.Queries, db sqlc.DBTX) *readstore.UserReadStore {
				return readstore.NewUserReadStore(q, db)
			},
			fx.As(new(queries.UserReadStore)),
		),
		// Catalog
		fx.Annotate(
			func(q *sqlc.Queries, db sqlc.DBTX) *readstore.CatalogReadStore {
				return readstore.NewCatalogReadStore(q, db)
			},
			fx.As(new(queries.CatalogReadStore)),
		),
		// Purchase
		fx.Annotate(
			func(q *sqlc.Queries, db sqlc.DBTX) *readstore.PurchaseReadStore {
				return readstore.NewPurchaseReadStore(q, db)
			},
			fx.As(new(queries.PurchaseReadStore)),
		),
		// Webhook ledger
		fx.Annotate(
			func(q *sqlc.Queries, db sqlc.DBTX) *readstore.WebhookEventReadStore {
				return readstore.NewWebhookEventReadStore(q, db)
			},
			fx.As(new(queries.WebhookEventReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
