package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "bikepacking-api/internal/handler/dto/request"
	resdto "bikepacking-api/internal/handler/dto/response"
	"bikepacking-api/internal/handler/httperr"
	"bikepacking-api/internal/handler/middleware"
	"bikepacking-api/internal/usecase/commands"
	"bikepacking-api/internal/usecase/queries"
)

type CatalogHandler struct {
	q      queries.CatalogQueries
	routes commands.RouteCommands
}

func NewCatalogHandler(q queries.CatalogQueries, routes commands.RouteCommands) *CatalogHandler {
	return &CatalogHandler{q: q, routes: routes}
}

// @Summary List books
// @Tags catalog
// @Produce json
// @Success 200 {array} queries.BookView
// @Router /books [get]
func (h *CatalogHandler) ListBooks(c *gin.Context) {
	books, err := h.q.ListBooks(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, books)
}

// @Summary Get book
// @Tags catalog
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} queries.BookView
// @Failure 404 {object} httperr.Response
// @Router /books/{id} [get]
func (h *CatalogHandler) GetBook(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	book, err := h.q.GetBook(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrBookNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Book not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, book)
}

// @Summary List routes
// @Description Live routes only; admins may pass include_unpublished=true
// @Tags catalog
// @Produce json
// @Param include_unpublished query bool false "Admin only"
// @Success 200 {array} queries.RouteView
// @Router /routes [get]
func (h *CatalogHandler) ListRoutes(c *gin.Context) {
	includeUnpublished := queryBool(c, "include_unpublished") && middleware.IsAdmin(c)
	routes, err := h.q.ListRoutes(c.Request.Context(), includeUnpublished)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, routes)
}

// @Summary Get route
// @Tags catalog
// @Produce json
// @Param id path int true "Route ID"
// @Success 200 {object} queries.RouteView
// @Failure 404 {object} httperr.Response
// @Router /routes/{id} [get]
func (h *CatalogHandler) GetRoute(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	r, err := h.q.GetRoute(c.Request.Context(), id, middleware.IsAdmin(c))
	if err != nil {
		if errors.Is(err, queries.ErrRouteNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Route not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, r)
}

// @Summary Create route
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRouteRequest true "Route"
// @Success 201 {object} resdto.RouteCreatedResponse
// @Failure 400 {object} httperr.Response
// @Router /routes [post]
func (h *CatalogHandler) CreateRoute(c *gin.Context) {
	var req reqdto.CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.routes.CreateRoute(c.Request.Context(), commands.CreateRouteInput{
		Title:   req.Title,
		Details: req.Details(),
		Live:    req.Live,
	})
	if err != nil {
		writeRouteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.RouteCreatedResponse{ID: id})
}

// @Summary Update route
// @Description Partial update; omitted fields keep their value
// @Tags catalog
// @Accept json
// @Security BearerAuth
// @Param id path int true "Route ID"
// @Param request body reqdto.UpdateRouteRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /routes/{id} [put]
func (h *CatalogHandler) UpdateRoute(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.routes.UpdateRoute(c.Request.Context(), id, req.ToPatch()); err != nil {
		writeRouteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete route
// @Tags catalog
// @Security BearerAuth
// @Param id path int true "Route ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /routes/{id} [delete]
func (h *CatalogHandler) DeleteRoute(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.routes.DeleteRoute(c.Request.Context(), id); err != nil {
		writeRouteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Toggle route visibility
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Route ID"
// @Success 200 {object} resdto.ToggleLiveResponse
// @Failure 404 {object} httperr.Response
// @Router /routes/{id}/toggle-live [patch]
func (h *CatalogHandler) ToggleLive(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	live, err := h.routes.ToggleLive(c.Request.Context(), id)
	if err != nil {
		writeRouteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ToggleLiveResponse{ID: id, Live: live})
}

func writeRouteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrRouteNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Route not found", nil)
	case errors.Is(err, commands.ErrGuidebookNotFound):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Guidebook not found", nil)
	case errors.Is(err, commands.ErrInvalidRoute):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid route data", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
