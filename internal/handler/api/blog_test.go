//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"bikepacking-api/internal/handler/api"
	"bikepacking-api/internal/usecase/queries"
	"bikepacking-api/tests/common/httptest"
	queriesmock "bikepacking-api/tests/mock/queries"
)

func TestBlogHandler_ListPosts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *queriesmock.MockBlogQueries) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockBlogQueries(ctrl)
		r := gin.New()
		r.GET("/blog-posts", api.NewBlogHandler(q).ListPosts)
		return r, q
	}

	t.Run("passes repeated usernames and content flag", func(t *testing.T) {
		r, q := setup(t)
		q.EXPECT().ListPosts(gomock.Any(), []string{"alice", "bob"}, true).
			Return([]queries.BlogPostView{{Title: "Day one", Username: "alice", Categories: []string{}}}, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/blog-posts?usernames=alice&usernames=bob&include_content=true", nil, "")

		var res []queries.BlogPostView
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
		assert.Len(t, res, 1)
	})

	t.Run("no usernames configured is 400", func(t *testing.T) {
		r, q := setup(t)
		q.EXPECT().ListPosts(gomock.Any(), gomock.Len(0), false).Return(nil, queries.ErrNoUsernames)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/blog-posts", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "No Medium usernames provided")
	})

	t.Run("too many usernames is 400", func(t *testing.T) {
		r, q := setup(t)
		q.EXPECT().ListPosts(gomock.Any(), gomock.Len(11), false).Return(nil, queries.ErrTooManyUsernames)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/blog-posts?usernames=a&usernames=b&usernames=c&usernames=d&usernames=e&usernames=f&usernames=g&usernames=h&usernames=i&usernames=j&usernames=k", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "At most 10 Medium usernames per request")
	})
}
