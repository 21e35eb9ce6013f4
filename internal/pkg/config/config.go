package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Square  SquareConfig
	Redis   RedisConfig
	Blog    BlogConfig
	Metrics MetricsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/London"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	Format         string `envconfig:"LOG_FORMAT" default:""` // "json" or "text"; empty follows GIN_MODE
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/London"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// SquareConfig holds payment provider settings.
// An empty WebhookSignatureSecret disables webhook signature checks. Never leave it empty in production.
type SquareConfig struct {
	AccessToken            string        `envconfig:"SQUARE_ACCESS_TOKEN" default:""`
	Environment            string        `envconfig:"SQUARE_ENVIRONMENT" default:"sandbox"`
	WebhookSignatureSecret string        `envconfig:"SQUARE_WEBHOOK_SIGNATURE_SECRET" default:""`
	WebhookURL             string        `envconfig:"SQUARE_WEBHOOK_URL" default:""`
	LocationID             string        `envconfig:"SQUARE_LOCATION_ID" default:""`
	APIVersion             string        `envconfig:"SQUARE_API_VERSION" default:"2025-01-23"`
	HTTPTimeout            time.Duration `envconfig:"SQUARE_HTTP_TIMEOUT" default:"5s"`
	RateLimit              float64       `envconfig:"SQUARE_RATE_LIMIT" default:"10"` // requests per second
	BaseURL                string        `envconfig:"SQUARE_BASE_URL" default:""`     // overrides Environment when set
}

type RedisConfig struct {
	URL string `envconfig:"REDIS_URL" default:""`
}

type BlogConfig struct {
	MediumUsernames []string      `envconfig:"MEDIUM_USERNAMES" default:"midlifecycles,bivvytobothy,nicky-eds-adventures"`
	FeedBaseURL     string        `envconfig:"MEDIUM_FEED_BASE_URL" default:"https://medium.com/feed/"`
	CacheTTL        time.Duration `envconfig:"BLOG_CACHE_TTL" default:"15m"`
	FetchTimeout    time.Duration `envconfig:"BLOG_FETCH_TIMEOUT" default:"10s"`
}

type MetricsConfig struct {
	Enabled bool `envconfig:"METRICS_ENABLED" default:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// LoadDBConfig reads only the database settings.
func LoadDBConfig() (DBConfig, error) {
	var cfg DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return DBConfig{}, fmt.Errorf("failed to process db env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/London",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			Format:     "text",
			TimeZone:   "Europe/London",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-testing-only",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Square: SquareConfig{
			Environment: "sandbox",
			APIVersion:  "2025-01-23",
			HTTPTimeout: 2 * time.Second,
			RateLimit:   100,
		},
		Blog: BlogConfig{
			MediumUsernames: []string{"testuser"},
			FeedBaseURL:     "https://medium.com/feed/",
			CacheTTL:        time.Minute,
			FetchTimeout:    2 * time.Second,
		},
	}
}
