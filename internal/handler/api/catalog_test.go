//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"bikepacking-api/internal/domain/route"
	"bikepacking-api/internal/domain/user"
	"bikepacking-api/internal/handler/api"
	resdto "bikepacking-api/internal/handler/dto/response"
	"bikepacking-api/internal/usecase/commands"
	"bikepacking-api/internal/usecase/queries"
	"bikepacking-api/tests/common/builder"
	"bikepacking-api/tests/common/httptest"
	commandsmock "bikepacking-api/tests/mock/commands"
	queriesmock "bikepacking-api/tests/mock/queries"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	queries  *queriesmock.MockCatalogQueries
	routes   *commandsmock.MockRouteCommands
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.queries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.routes = commandsmock.NewMockRouteCommands(s.mockCtrl)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) router(role user.Role) *gin.Engine {
	r := gin.New()
	r.Use(fakeAuth(role))
	h := api.NewCatalogHandler(s.queries, s.routes)
	r.GET("/books", h.ListBooks)
	r.GET("/books/:id", h.GetBook)
	r.GET("/routes", h.ListRoutes)
	r.GET("/routes/:id", h.GetRoute)
	r.POST("/routes", h.CreateRoute)
	r.PUT("/routes/:id", h.UpdateRoute)
	r.DELETE("/routes/:id", h.DeleteRoute)
	r.PATCH("/routes/:id/toggle-live", h.ToggleLive)
	return r
}

func (s *CatalogHandlerTestSuite) TestBooks() {
	r := s.router(user.RoleUser)

	s.Run("list", func() {
		s.queries.EXPECT().ListBooks(gomock.Any()).Return([]queries.BookView{*builder.NewBookBuilder().BuildView()}, nil)

		rec := httptest.PerformRequest(s.T(), r, http.MethodGet, "/books", nil, "")

		var res []queries.BookView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Len(res, 1)
	})

	s.Run("get: not found is 404", func() {
		s.queries.EXPECT().GetBook(gomock.Any(), int64(99)).Return(nil, queries.ErrBookNotFound)

		rec := httptest.PerformRequest(s.T(), r, http.MethodGet, "/books/99", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Book not found")
	})

	s.Run("get: malformed id is 400", func() {
		rec := httptest.PerformRequest(s.T(), r, http.MethodGet, "/books/abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *CatalogHandlerTestSuite) TestListRoutesVisibility() {
	cases := []struct {
		name  string
		role  user.Role
		token string
		query string
		want  bool
	}{
		{name: "anonymous never sees unpublished", query: "?include_unpublished=true", want: false},
		{name: "user flag is ignored", role: user.RoleUser, token: "t", query: "?include_unpublished=true", want: false},
		{name: "admin with flag", role: user.RoleAdmin, token: "t", query: "?include_unpublished=true", want: true},
		{name: "admin without flag", role: user.RoleAdmin, token: "t", want: false},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.queries.EXPECT().ListRoutes(gomock.Any(), tc.want).Return([]queries.RouteView{}, nil)

			rec := httptest.PerformRequest(s.T(), s.router(tc.role), http.MethodGet, "/routes"+tc.query, nil, tc.token)
			s.Equal(http.StatusOK, rec.Code)
		})
	}
}

func (s *CatalogHandlerTestSuite) TestGetRoute() {
	s.Run("admin may read unpublished", func() {
		view := builder.NewRouteBuilder().With(func(b *builder.RouteBuilder) { b.Live = false }).BuildView()
		s.queries.EXPECT().GetRoute(gomock.Any(), int64(1), true).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router(user.RoleAdmin), http.MethodGet, "/routes/1", nil, "t")

		var res queries.RouteView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.False(res.Live)
	})

	s.Run("hidden route is 404", func() {
		s.queries.EXPECT().GetRoute(gomock.Any(), int64(2), false).Return(nil, queries.ErrRouteNotFound)

		rec := httptest.PerformRequest(s.T(), s.router(user.RoleUser), http.MethodGet, "/routes/2", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Route not found")
	})
}

func (s *CatalogHandlerTestSuite) TestCreateRoute() {
	r := s.router(user.RoleAdmin)

	s.Run("success: returns 201 with the id", func() {
		country := "Wales"
		s.routes.EXPECT().CreateRoute(gomock.Any(), commands.CreateRouteInput{
			Title:   "Lon Las Cymru",
			Details: route.Details{Country: &country},
			Live:    true,
		}).Return(int64(5), nil)

		body := map[string]any{"title": "Lon Las Cymru", "country": "Wales", "live": true}
		rec := httptest.PerformRequest(s.T(), r, http.MethodPost, "/routes", body, "t")

		var res resdto.RouteCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(int64(5), res.ID)
	})

	s.Run("error: missing title is 400", func() {
		rec := httptest.PerformRequest(s.T(), r, http.MethodPost, "/routes", map[string]any{"country": "Wales"}, "t")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: unknown guidebook is 400", func() {
		s.routes.EXPECT().CreateRoute(gomock.Any(), gomock.Any()).Return(int64(0), commands.ErrGuidebookNotFound)

		body := map[string]any{"title": "Lon Las Cymru", "guidebook_id": 42}
		rec := httptest.PerformRequest(s.T(), r, http.MethodPost, "/routes", body, "t")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Guidebook not found")
	})
}

func (s *CatalogHandlerTestSuite) TestUpdateDeleteToggle() {
	r := s.router(user.RoleAdmin)

	s.Run("update sends only present fields", func() {
		title := "Renamed"
		s.routes.EXPECT().UpdateRoute(gomock.Any(), int64(1), route.Patch{Title: &title}).Return(nil)

		rec := httptest.PerformRequest(s.T(), r, http.MethodPut, "/routes/1", map[string]any{"title": "Renamed"}, "t")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("update of missing route is 404", func() {
		s.routes.EXPECT().UpdateRoute(gomock.Any(), int64(9), gomock.Any()).Return(commands.ErrRouteNotFound)

		rec := httptest.PerformRequest(s.T(), r, http.MethodPut, "/routes/9", map[string]any{}, "t")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Route not found")
	})

	s.Run("delete", func() {
		s.routes.EXPECT().DeleteRoute(gomock.Any(), int64(1)).Return(nil)

		rec := httptest.PerformRequest(s.T(), r, http.MethodDelete, "/routes/1", nil, "t")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("toggle returns the new state", func() {
		s.routes.EXPECT().ToggleLive(gomock.Any(), int64(1)).Return(false, nil)

		rec := httptest.PerformRequest(s.T(), r, http.MethodPatch, "/routes/1/toggle-live", nil, "t")

		var res resdto.ToggleLiveResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(int64(1), res.ID)
		s.False(res.Live)
	})
}
