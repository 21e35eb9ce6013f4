//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TestPassword matches testPasswordHash.
const TestPassword = "password123"

const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

// Books seeded by SeedReferenceData. Ids are stable because ResetDB restarts identities.
const (
	PricedBookID int64 = 1
	FreeBookID   int64 = 2
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) int64 {
	t.Helper()

	ctx := context.Background()
	var userID int64
	err := db.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, first_name, last_name, role, is_active)
		VALUES (LOWER($1), $2, 'Test', 'Rider', $3, true)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id`,
		email, testPasswordHash, role).Scan(&userID)
	require.NoError(t, err)

	return userID
}

func CreateTestBook(t *testing.T, db DBLike, title string, price *int64) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO books (title, price_amount) VALUES ($1, $2) RETURNING id", title, price).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestRoute(t *testing.T, db DBLike, title string, live bool) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO routes (title, live) VALUES ($1, $2) RETURNING id", title, live).Scan(&id)
	require.NoError(t, err)
	return id
}

// CountPurchases counts rows recorded for a provider payment id.
func CountPurchases(t *testing.T, db DBLike, paymentID string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM book_purchases WHERE payment_id = $1", paymentID).Scan(&n)
	require.NoError(t, err)
	return n
}

// WebhookEventStatus returns the ledger status and attempt count of a delivery.
func WebhookEventStatus(t *testing.T, db DBLike, eventID string) (string, int32) {
	t.Helper()

	var (
		status   string
		attempts int32
	)
	err := db.QueryRow(context.Background(),
		"SELECT status, attempts FROM payment_webhook_events WHERE event_id = $1", eventID).Scan(&status, &attempts)
	require.NoError(t, err)
	return status, attempts
}

// inserts the catalogue every e2e scenario starts from
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO books (title, author, price_amount, price_currency) VALUES
		    ('Bikepacking Wales', 'Test Author', 1999, 'GBP'),
		    ('Free Routes Zine', 'Test Author', NULL, 'GBP');
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
