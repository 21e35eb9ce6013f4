package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bikepacking-api/internal/handler/httperr"
	"bikepacking-api/internal/usecase/queries"
)

type BlogHandler struct {
	q queries.BlogQueries
}

func NewBlogHandler(q queries.BlogQueries) *BlogHandler {
	return &BlogHandler{q: q}
}

// @Summary Medium blog posts
// @Description Aggregated Medium feeds, newest first
// @Tags blog
// @Produce json
// @Param usernames query string false "Comma separated Medium usernames, at most 10"
// @Param include_content query bool false "Include full HTML content"
// @Success 200 {array} queries.BlogPostView
// @Failure 400 {object} httperr.Response
// @Router /blog-posts [get]
func (h *BlogHandler) ListPosts(c *gin.Context) {
	posts, err := h.q.ListPosts(c.Request.Context(), c.QueryArray("usernames"), queryBool(c, "include_content"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrNoUsernames):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "No Medium usernames provided", nil)
		case errors.Is(err, queries.ErrTooManyUsernames):
			httperr.AbortWithError(c, http.StatusBadRequest, err, fmt.Sprintf("At most %d Medium usernames per request", queries.MaxUsernames), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, posts)
}
