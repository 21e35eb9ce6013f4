//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"bikepacking-api/internal/infra/db"
	"bikepacking-api/internal/pkg/config"
	"bikepacking-api/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = nat.Port("5432/tcp")
)

var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container
	pgErr       error
)

// postgresEndpoint is where the shared container accepts connections.
type postgresEndpoint struct {
	Host string
	Port nat.Port
}

func (e postgresEndpoint) adminDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, e.Host, e.Port.Port())
}

// ------------------------------------------------------------
// PostgreSQLコンテナはプロセス内で一度だけ起動する
// ------------------------------------------------------------
func sharedPostgres(t *testing.T) postgresEndpoint {
	t.Helper()

	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		pgContainer, pgErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{string(pgPort)},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				// データはRAM上に置き、耐久性の設定は切る
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "full_page_writes=off",
					"-c", "synchronous_commit=off",
					"-c", "max_connections=200",
				},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return postgresEndpoint{Host: host, Port: port}.adminDSN()
				}).WithStartupTimeout(60 * time.Second),
				Labels: map[string]string{"purpose": "bikepacking-e2e"},
			},
			Started: true,
		})
	})
	require.NoError(t, pgErr, "PostgreSQLコンテナの起動に失敗")

	ctx := context.Background()
	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, pgPort)
	require.NoError(t, err)

	return postgresEndpoint{Host: host, Port: port}
}

// ------------------------------------------------------------
// スイートごとに専用DBを作成し、マイグレーションと参照データ投入まで行う
// ------------------------------------------------------------
func prepareDatabase(t *testing.T, ep postgresEndpoint) (*pgxpool.Pool, config.DBConfig) {
	t.Helper()

	dbName := "bikepacking_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	createDatabase(t, ep.adminDSN(), dbName)

	dbConfig := config.DBConfig{
		Host:     ep.Host,
		Port:     ep.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "Europe/London",
		MaxConns: 20,
	}

	require.NoError(t, db.RunMigrations(dbConfig.BuildDSN()), "マイグレーションに失敗")

	pool, _, err := db.Connect(context.Background(), dbConfig)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(pool.Close)

	require.NoError(t, dbtest.SeedReferenceData(pool), "参照データの投入に失敗")
	return pool, dbConfig
}

func createDatabase(t *testing.T, adminDSN, name string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	// 並列スイートが同時にCREATE DATABASEするとテンプレートのロックで失敗することがある
	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		backoff := min(time.Duration(attempt)*500*time.Millisecond, 3*time.Second)
		slog.Warn("データベース作成を再試行中", "attempt", attempt, "wait", backoff, "error", err.Error())
		time.Sleep(backoff)
	}
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		cleanup, err := pgxpool.New(ctx, adminDSN)
		if err != nil {
			slog.Warn("クリーンアップ用の接続に失敗しました", "database", name, "error", err.Error())
			return
		}
		defer cleanup.Close()
		if _, err := cleanup.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", name, "error", err.Error())
		}
	})
}
