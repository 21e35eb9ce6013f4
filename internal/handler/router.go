package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bikepacking-api/internal/domain/user"
	"bikepacking-api/internal/handler/api"
	"bikepacking-api/internal/handler/middleware"
	"bikepacking-api/internal/infra/metrics"
	"bikepacking-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth     *api.AuthHandler
	Webhook  *api.WebhookHandler
	Admin    *api.AdminHandler
	Purchase *api.PurchaseHandler
	Catalog  *api.CatalogHandler
	Blog     *api.BlogHandler
	Checkout *api.CheckoutHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
	collector *metrics.Collector,
	gatherer prometheus.Gatherer,
) {
	setupMiddleware(engine, cfg, logger, collector)
	setupRoutes(engine, cfg, h, authMiddleware, gatherer)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, collector *metrics.Collector) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.RequestLogger(logger))
	if cfg.Metrics.Enabled && collector != nil {
		engine.Use(middleware.Metrics(collector))
	}
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, gatherer prometheus.Gatherer) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled && gatherer != nil {
		engine.GET("/metrics", gin.WrapH(metrics.Handler(gatherer)))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	requireAdmin := authMiddleware.RequireRole(user.RoleAdmin)
	optionalAuth := authMiddleware.OptionalAuth()

	apiGroup := engine.Group("/api")
	{
		webhooks := apiGroup.Group("/webhooks")
		addRoutes(webhooks, []route{
			{Method: http.MethodPost, Path: "/square", Handler: h.Webhook.Square},
			{Method: http.MethodGet, Path: "/health", Handler: h.Webhook.Health},
		})

		auth := apiGroup.Group("/auth")
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/signup", Handler: h.Auth.Signup},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/books", Handler: h.Catalog.ListBooks},
			{Method: http.MethodGet, Path: "/books/:id", Handler: h.Catalog.GetBook},
			{Method: http.MethodGet, Path: "/books/:id/access-key", Handler: h.Purchase.AccessKey, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/books/:id/purchased", Handler: h.Purchase.Purchased, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPost, Path: "/books/:id/payment-link", Handler: h.Checkout.CreatePaymentLink, Mw: []gin.HandlerFunc{requireAuth}},

			{Method: http.MethodGet, Path: "/routes", Handler: h.Catalog.ListRoutes, Mw: []gin.HandlerFunc{optionalAuth}},
			{Method: http.MethodGet, Path: "/routes/:id", Handler: h.Catalog.GetRoute, Mw: []gin.HandlerFunc{optionalAuth}},
			{Method: http.MethodPost, Path: "/routes", Handler: h.Catalog.CreateRoute, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
			{Method: http.MethodPut, Path: "/routes/:id", Handler: h.Catalog.UpdateRoute, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
			{Method: http.MethodDelete, Path: "/routes/:id", Handler: h.Catalog.DeleteRoute, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
			{Method: http.MethodPatch, Path: "/routes/:id/toggle-live", Handler: h.Catalog.ToggleLive, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},

			{Method: http.MethodGet, Path: "/purchases/me", Handler: h.Purchase.Mine, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPost, Path: "/access-keys/validate", Handler: h.Purchase.ValidateAccessKey},

			{Method: http.MethodGet, Path: "/blog-posts", Handler: h.Blog.ListPosts},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(requireAuth, requireAdmin)
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/purchases", Handler: h.Admin.GrantPurchase},
			{Method: http.MethodPost, Path: "/users", Handler: h.Admin.CreateUser},
			{Method: http.MethodGet, Path: "/webhook-events", Handler: h.Admin.ListWebhookEvents},
			{Method: http.MethodPost, Path: "/webhook-events/:event_id/replay", Handler: h.Admin.ReplayWebhookEvent},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

// chainHandlers runs hs in order and stops at the first abort.
func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
