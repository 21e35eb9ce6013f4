package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	resdto "bikepacking-api/internal/handler/dto/response"
	"bikepacking-api/internal/handler/httperr"
	"bikepacking-api/internal/infra/square"
	"bikepacking-api/internal/pkg/config"
	"bikepacking-api/internal/usecase/commands"
)

// MaxWebhookBodyBytes caps the size of an inbound delivery.
const MaxWebhookBodyBytes = 1 << 20

type WebhookHandler struct {
	cmds commands.WebhookCommands
	cfg  config.SquareConfig
}

func NewWebhookHandler(cmds commands.WebhookCommands, cfg config.SquareConfig) *WebhookHandler {
	return &WebhookHandler{cmds: cmds, cfg: cfg}
}

// @Summary Square payment webhook
// @Description Verifies the signature and reconciles completed payments. Every business outcome answers 200.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param X-Square-Hmacsha256-Signature header string false "HMAC-SHA256 signature"
// @Success 200 {object} resdto.WebhookResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /webhooks/square [post]
func (h *WebhookHandler) Square(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxWebhookBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Request body too large", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid JSON", nil)
		return
	}

	out, err := h.cmds.HandleDelivery(c.Request.Context(), commands.Delivery{
		Body:            body,
		Signature:       signatureHeader(c),
		NotificationURL: h.notificationURL(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidSignature):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid signature", nil)
		case errors.Is(err, commands.ErrInvalidPayload):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid JSON", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromWebhookOutcome(out))
}

// @Summary Webhook health
// @Tags webhooks
// @Produce json
// @Success 200 {object} map[string]string
// @Router /webhooks/health [get]
func (h *WebhookHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "webhooks"})
}

func signatureHeader(c *gin.Context) string {
	if sig := c.GetHeader(square.HeaderSignature); sig != "" {
		return sig
	}
	return c.GetHeader(square.HeaderLegacySignature)
}

// notificationURL is the URL Square signed. Behind a proxy the configured
// SQUARE_WEBHOOK_URL is authoritative; otherwise it is rebuilt from the request.
func (h *WebhookHandler) notificationURL(c *gin.Context) string {
	if h.cfg.WebhookURL != "" {
		return h.cfg.WebhookURL
	}
	scheme := "http"
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + c.Request.URL.RequestURI()
}
