//go:build e2e

package e2e

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"bikepacking-api/cmd/bootstrap"
	"bikepacking-api/internal/pkg/config"
	"bikepacking-api/tests/common/dbtest"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

const (
	// TestWebhookSecret signs deliveries in e2e scenarios.
	TestWebhookSecret = "e2e-webhook-secret"
	// TestWebhookURL is the notification URL Square would sign.
	TestWebhookURL = "https://api.example.test/api/webhooks/square"
	// TestMediumUser is the default blog account in e2e config.
	TestMediumUser = "e2e-rider"
)

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
	Square *SquareStub
	Feeds  *FeedStub
	Redis  *miniredis.Miniredis
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	pool, dbConfig := prepareDatabase(t, sharedPostgres(t))
	s.DB = pool
	s.Square = newSquareStub(t)
	s.Feeds = newFeedStub(t)
	s.Redis = miniredis.RunT(t)

	s.Config = testConfig(dbConfig, s.Square.URL, s.Feeds.URL, "redis://"+s.Redis.Addr())
	s.Router = startApp(t, pool, s.Config)
}

// SetupSubTest gives every s.Run a clean database, cache and stub state.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "データベースのリセットに失敗")
	s.Square.Reset()
	s.Feeds.Reset()
	s.Redis.FlushAll()
}

// ------------------------------------------------------------
// 本番と同じfxモジュールで起動し、DBと設定だけ差し替える
// ------------------------------------------------------------
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(func() *pgxpool.Pool { return pool }),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.InfraModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})

	require.NotNil(t, router)
	return router
}

func testConfig(dbConfig config.DBConfig, squareURL, feedURL, redisURL string) config.Config {
	cfg := config.NewTestConfig()
	cfg.DB = dbConfig
	cfg.Square.AccessToken = "e2e-access-token"
	cfg.Square.BaseURL = squareURL
	cfg.Square.WebhookSignatureSecret = TestWebhookSecret
	cfg.Square.WebhookURL = TestWebhookURL
	cfg.Blog.FeedBaseURL = feedURL
	cfg.Blog.MediumUsernames = []string{TestMediumUser}
	cfg.Redis.URL = redisURL
	cfg.Metrics.Enabled = true
	return cfg
}
