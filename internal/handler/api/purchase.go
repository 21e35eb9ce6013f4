package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "bikepacking-api/internal/handler/dto/request"
	resdto "bikepacking-api/internal/handler/dto/response"
	"bikepacking-api/internal/handler/httperr"
	"bikepacking-api/internal/handler/middleware"
	"bikepacking-api/internal/usecase/queries"
)

type PurchaseHandler struct {
	q queries.PurchaseQueries
}

func NewPurchaseHandler(q queries.PurchaseQueries) *PurchaseHandler {
	return &PurchaseHandler{q: q}
}

// @Summary My purchased books
// @Tags purchases
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PurchasedBooksResponse
// @Failure 401 {object} httperr.Response
// @Router /purchases/me [get]
func (h *PurchaseHandler) Mine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	ids, err := h.q.PurchasedBookIDs(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	if ids == nil {
		ids = []int64{}
	}
	c.JSON(http.StatusOK, resdto.PurchasedBooksResponse{BookIDs: ids})
}

// @Summary Access key for a purchased book
// @Description Returns the key of the caller's earliest purchase of the book
// @Tags purchases
// @Produce json
// @Security BearerAuth
// @Param id path int true "Book ID"
// @Success 200 {object} resdto.AccessKeyResponse
// @Failure 404 {object} httperr.Response
// @Router /books/{id}/access-key [get]
func (h *PurchaseHandler) AccessKey(c *gin.Context) {
	bookID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	key, err := h.q.AccessKey(c.Request.Context(), userID, bookID)
	if err != nil {
		if errors.Is(err, queries.ErrPurchaseNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Book not purchased", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.AccessKeyResponse{BookID: bookID, AccessKey: key})
}

// @Summary Has the caller purchased the book
// @Tags purchases
// @Produce json
// @Security BearerAuth
// @Param id path int true "Book ID"
// @Success 200 {object} resdto.PurchasedResponse
// @Router /books/{id}/purchased [get]
func (h *PurchaseHandler) Purchased(c *gin.Context) {
	bookID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	purchased, err := h.q.HasPurchased(c.Request.Context(), userID, bookID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.PurchasedResponse{Purchased: purchased})
}

// @Summary Validate an access key
// @Tags purchases
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateAccessKeyRequest true "Key and book"
// @Success 200 {object} queries.AccessKeyValidation
// @Failure 400 {object} httperr.Response
// @Router /access-keys/validate [post]
func (h *PurchaseHandler) ValidateAccessKey(c *gin.Context) {
	var req reqdto.ValidateAccessKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	res, err := h.q.ValidateAccessKey(c.Request.Context(), req.AccessKey, req.BookID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
