package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	resdto "bikepacking-api/internal/handler/dto/response"
	"bikepacking-api/internal/handler/httperr"
	"bikepacking-api/internal/handler/middleware"
	"bikepacking-api/internal/usecase/commands"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
}

func NewCheckoutHandler(cmds commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds}
}

// @Summary Create payment link
// @Description Starts a Square checkout for the caller
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Param id path int true "Book ID"
// @Success 200 {object} resdto.PaymentLinkResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /books/{id}/payment-link [post]
func (h *CheckoutHandler) CreatePaymentLink(c *gin.Context) {
	bookID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	res, err := h.cmds.CreatePaymentLink(c.Request.Context(), userID, bookID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Book not found", nil)
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errors.Is(err, commands.ErrBookNotForSale):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Book is not for sale", nil)
		case errors.Is(err, commands.ErrCheckoutUnavailable):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment provider unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutResult(res))
}
