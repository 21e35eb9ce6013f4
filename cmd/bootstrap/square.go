package bootstrap

import (
	"log/slog"

	"go.uber.org/fx"

	"bikepacking-api/internal/infra/square"
	"bikepacking-api/internal/pkg/config"
	"bikepacking-api/internal/usecase/commands"
)

var SquareModule = fx.Module("square",
	fx.Provide(
		fx.Annotate(
			NewSquareClient,
			fx.As(new(commands.OrderFetcher)),
			fx.As(new(commands.CheckoutProvider)),
		),
		fx.Annotate(
			NewSignatureVerifier,
			fx.As(new(commands.SignatureVerifier)),
		),
		fx.Annotate(
			func() square.Decoder { return square.Decoder{} },
			fx.As(new(commands.EventDecoder)),
		),
	),
)

func NewSquareClient(cfg config.Config) *square.Client {
	c := square.NewClient(cfg.Square)
	if !c.Configured() {
		slog.Warn("SQUARE_ACCESS_TOKEN not set, checkout and order lookups will fail")
	}
	return c
}

func NewSignatureVerifier(cfg config.Config) *square.Verifier {
	v := square.NewVerifier(cfg.Square.WebhookSignatureSecret)
	if !v.Enabled() {
		slog.Warn("SQUARE_WEBHOOK_SIGNATURE_SECRET not set, webhook signatures will not be verified")
	}
	return v
}
