//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"bikepacking-api/internal/domain/user"
	"bikepacking-api/internal/handler/api"
	reqdto "bikepacking-api/internal/handler/dto/request"
	resdto "bikepacking-api/internal/handler/dto/response"
	"bikepacking-api/internal/usecase/commands"
	"bikepacking-api/internal/usecase/queries"
	"bikepacking-api/tests/common/httptest"
	commandsmock "bikepacking-api/tests/mock/commands"
	queriesmock "bikepacking-api/tests/mock/queries"
)

type PurchaseHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	queries  *queriesmock.MockPurchaseQueries
	checkout *commandsmock.MockCheckoutCommands
}

func (s *PurchaseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(fakeAuth(user.RoleUser))

	s.mockCtrl = gomock.NewController(s.T())
	s.queries = queriesmock.NewMockPurchaseQueries(s.mockCtrl)
	s.checkout = commandsmock.NewMockCheckoutCommands(s.mockCtrl)

	h := api.NewPurchaseHandler(s.queries)
	s.router.GET("/purchases/me", h.Mine)
	s.router.GET("/books/:id/access-key", h.AccessKey)
	s.router.GET("/books/:id/purchased", h.Purchased)
	s.router.POST("/access-keys/validate", h.ValidateAccessKey)

	ch := api.NewCheckoutHandler(s.checkout)
	s.router.POST("/books/:id/payment-link", ch.CreatePaymentLink)
}

func (s *PurchaseHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPurchaseHandlerSuite(t *testing.T) {
	suite.Run(t, new(PurchaseHandlerTestSuite))
}

func (s *PurchaseHandlerTestSuite) TestMine() {
	s.Run("no purchases is an empty array", func() {
		s.queries.EXPECT().PurchasedBookIDs(gomock.Any(), int64(1)).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/purchases/me", nil, "t")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"book_ids":[]}`, rec.Body.String())
	})

	s.Run("missing principal is 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/purchases/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *PurchaseHandlerTestSuite) TestAccessKey() {
	s.Run("success", func() {
		s.queries.EXPECT().AccessKey(gomock.Any(), int64(1), int64(7)).Return("k", nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books/7/access-key", nil, "t")

		var res resdto.AccessKeyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(resdto.AccessKeyResponse{BookID: 7, AccessKey: "k"}, res)
	})

	s.Run("not purchased is 404", func() {
		s.queries.EXPECT().AccessKey(gomock.Any(), int64(1), int64(8)).Return("", queries.ErrPurchaseNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books/8/access-key", nil, "t")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Book not purchased")
	})
}

func (s *PurchaseHandlerTestSuite) TestPurchased() {
	s.queries.EXPECT().HasPurchased(gomock.Any(), int64(1), int64(7)).Return(true, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books/7/purchased", nil, "t")

	var res resdto.PurchasedResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
	s.True(res.Purchased)
}

func (s *PurchaseHandlerTestSuite) TestValidateAccessKey() {
	s.Run("valid key reports the owner", func() {
		owner := int64(4)
		s.queries.EXPECT().ValidateAccessKey(gomock.Any(), "k", int64(7)).
			Return(&queries.AccessKeyValidation{Valid: true, UserID: &owner}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/access-keys/validate",
			reqdto.ValidateAccessKeyRequest{AccessKey: "k", BookID: 7}, "")

		var res queries.AccessKeyValidation
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.Valid)
		s.Equal(owner, *res.UserID)
	})

	s.Run("missing key is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/access-keys/validate", map[string]any{"book_id": 7}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *PurchaseHandlerTestSuite) TestCreatePaymentLink() {
	url := "/books/7/payment-link"

	s.Run("success", func() {
		s.checkout.EXPECT().CreatePaymentLink(gomock.Any(), int64(1), int64(7)).
			Return(&commands.CheckoutResult{URL: "https://square.link/u/abc", PaymentLinkID: "pl-1"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "t")

		var res resdto.PaymentLinkResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("https://square.link/u/abc", res.URL)
	})

	s.Run("error mapping", func() {
		cases := []struct {
			name   string
			err    error
			status int
		}{
			{name: "book not found", err: commands.ErrBookNotFound, status: http.StatusNotFound},
			{name: "not for sale", err: commands.ErrBookNotForSale, status: http.StatusUnprocessableEntity},
			{name: "provider down", err: commands.ErrCheckoutUnavailable, status: http.StatusBadGateway},
			{name: "unexpected", err: errors.New("boom"), status: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.checkout.EXPECT().CreatePaymentLink(gomock.Any(), int64(1), int64(7)).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "t")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			})
		}
	})
}
