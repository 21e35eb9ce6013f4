package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	reqdto "bikepacking-api/internal/handler/dto/request"
	resdto "bikepacking-api/internal/handler/dto/response"
	"bikepacking-api/internal/handler/httperr"
	"bikepacking-api/internal/usecase/commands"
	"bikepacking-api/internal/usecase/queries"
)

type AdminHandler struct {
	purchases commands.PurchaseCommands
	auth      commands.AuthCommands
	webhooks  commands.WebhookCommands
	events    queries.WebhookEventQueries
}

func NewAdminHandler(
	purchases commands.PurchaseCommands,
	auth commands.AuthCommands,
	webhooks commands.WebhookCommands,
	events queries.WebhookEventQueries,
) *AdminHandler {
	return &AdminHandler{purchases: purchases, auth: auth, webhooks: webhooks, events: events}
}

// @Summary Grant a book
// @Description Records a manual purchase and returns the new access key
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.GrantPurchaseRequest true "Grant request"
// @Success 201 {object} resdto.GrantPurchaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/purchases [post]
func (h *AdminHandler) GrantPurchase(c *gin.Context) {
	var req reqdto.GrantPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	res, err := h.purchases.Grant(c.Request.Context(), req.Email, req.BookID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errors.Is(err, commands.ErrBookNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Book not found", nil)
		case errors.Is(err, commands.ErrInvalidPurchase):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid purchase data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReconcileResult(res))
}

// @Summary Create user
// @Description Creates a user with any role
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateUserRequest true "User"
// @Success 201 {object} queries.UserView
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/users [post]
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.auth.CreateUser(c.Request.Context(), req)
	if err != nil {
		writeCreateUserError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary List webhook events
// @Description Recorded deliveries, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "received, processed, skipped or failed"
// @Param limit query int false "Max items (default 50, max 500)"
// @Success 200 {array} queries.WebhookEventView
// @Failure 400 {object} httperr.Response
// @Router /admin/webhook-events [get]
func (h *AdminHandler) ListWebhookEvents(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = n
	}

	events, err := h.events.ListEvents(c.Request.Context(), c.Query("status"), limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidEventStatus) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, events)
}

// @Summary Replay webhook event
// @Description Re-runs a stored delivery without re-checking its signature
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param event_id path string true "Square event id"
// @Success 200 {object} resdto.WebhookResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/webhook-events/{event_id}/replay [post]
func (h *AdminHandler) ReplayWebhookEvent(c *gin.Context) {
	out, err := h.webhooks.Replay(c.Request.Context(), c.Param("event_id"))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrWebhookEventNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Webhook event not found", nil)
		case errors.Is(err, commands.ErrWebhookEventNoPayload):
			httperr.AbortWithError(c, http.StatusConflict, err, "Webhook event has no stored payload", nil)
		case errors.Is(err, commands.ErrInvalidPayload):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Stored payload is not valid JSON", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromWebhookOutcome(out))
}
