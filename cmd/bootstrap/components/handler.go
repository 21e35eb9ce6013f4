package components

import (
	"bikepacking-api/internal/handler"
	"bikepacking-api/internal/handler/api"
	"bikepacking-api/internal/handler/middleware"
	"bikepacking-api/internal/pkg/config"
	"bikepacking-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		func(cmds commands.WebhookCommands, cfg config.Config) *api.WebhookHandler {
			return api.NewWebhookHandler(cmds, cfg.Square)
		},
		api.NewAdminHandler,
		api.NewPurchaseHandler,
		api.NewCatalogHandler,
		api.NewBlogHandler,
		api.NewCheckoutHandler,
		newHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth     *api.AuthHandler
	Webhook  *api.WebhookHandler
	Admin    *api.AdminHandler
	Purchase *api.PurchaseHandler
	Catalog  *api.CatalogHandler
	Blog     *api.BlogHandler
	Checkout *api.CheckoutHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:     p.Auth,
		Webhook:  p.Webhook,
		Admin:    p.Admin,
		Purchase: p.Purchase,
		Catalog:  p.Catalog,
		Blog:     p.Blog,
		Checkout: p.Checkout,
	}
}
