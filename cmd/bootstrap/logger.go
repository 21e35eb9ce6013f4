package bootstrap

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"bikepacking-api/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger writes JSON in release mode and colored text elsewhere. LOG_FORMAT overrides the choice.
func NewLogger(cfg config.Config) *slog.Logger {
	logger := slog.New(newLogHandler(os.Stdout, cfg.Log, gin.Mode()))
	slog.SetDefault(logger)
	return logger
}

func newLogHandler(w io.Writer, cfg config.LogConfig, mode string) slog.Handler {
	level := parseLevel(cfg.Level)
	zone := logLocation(cfg)

	format := strings.ToLower(cfg.Format)
	if format == "" {
		format = "text"
		if mode == gin.ReleaseMode {
			format = "json"
		}
	}

	if format == "json" {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					if t, ok := a.Value.Any().(time.Time); ok {
						a.Value = slog.StringValue(t.In(zone).Format(cfg.TimeFormat))
					}
				}
				return a
			},
		})
	}

	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: cfg.TimeFormat,
		NoColor:    !isTerminal(w),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			switch {
			case a.Key == slog.TimeKey:
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.TimeValue(t.In(zone))
				}
			case a.Key == "error" && a.Value.Kind() == slog.KindAny:
				if err, ok := a.Value.Any().(error); ok {
					return tint.Err(err)
				}
			}
			return a
		},
	})
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// logLocation prefers the IANA zone and falls back to the fixed offset.
func logLocation(cfg config.LogConfig) *time.Location {
	if cfg.TimeZone != "" {
		if loc, err := time.LoadLocation(cfg.TimeZone); err == nil {
			return loc
		}
	}
	return time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
