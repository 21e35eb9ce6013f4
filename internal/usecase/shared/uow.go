package shared

import (
	"context"

	"bikepacking-api/internal/domain/payment"
	"bikepacking-api/internal/domain/purchase"
	"bikepacking-api/internal/domain/route"
	"bikepacking-api/internal/domain/user"
	sqlc "bikepacking-api/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Purchases() PurchaseRepository
	WebhookEvents() WebhookEventRepository
	Routes() RouteRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	BookByID(ctx context.Context, id int64) (*BookSnapshot, error)
	WebhookEventByID(ctx context.Context, eventID string) (*WebhookEventRecord, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (int64, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID int64) error
}

type PurchaseRepository interface {
	// InsertOnce stores p unless its payment id was already reconciled, in which
	// case the stored purchase is returned with created=false.
	InsertOnce(ctx context.Context, tx sqlc.DBTX, p *purchase.Purchase) (stored *purchase.Purchase, created bool, err error)
	FindByPaymentID(ctx context.Context, tx sqlc.DBTX, paymentID string) (*purchase.Purchase, error)
}

type WebhookEventRepository interface {
	// Record upserts a delivery and returns how many times it has been seen.
	Record(ctx context.Context, tx sqlc.DBTX, ev WebhookEventInput) (int32, error)
	Mark(ctx context.Context, tx sqlc.DBTX, eventID string, status payment.EventStatus, reason *string, purchaseID *int64) error
}

type RouteRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *route.Route) (*route.Route, error)
	FindByID(ctx context.Context, tx sqlc.DBTX, id int64) (*route.Route, error)
	Update(ctx context.Context, tx sqlc.DBTX, r *route.Route) error
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) error
}
