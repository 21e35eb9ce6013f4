//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"testing"

	"bikepacking-api/internal/domain/user"
	"bikepacking-api/internal/handler/dto/request"
	"bikepacking-api/internal/handler/dto/response"
	"bikepacking-api/tests/common/dbtest"
	"bikepacking-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	loginPath       = "/api/auth/login"
	logoutPath      = "/api/auth/logout"
	accessTokenName = "access_token"
)

// LoginUser signs in through the API. The body token and the cookie must agree.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, loginPath,
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body response.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())

	cookie := httptest.ExtractCookie(w, accessTokenName)
	require.NotNil(t, cookie, "login did not set the %s cookie", accessTokenName)
	require.NotEmpty(t, cookie.Value)
	require.Equal(t, body.AccessToken, cookie.Value)

	return cookie.Value
}

// CreateAndLogin seeds an account with the shared test password and returns
// its id and bearer token.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email string, role user.Role) (int64, string) {
	t.Helper()
	id := dbtest.CreateTestUser(t, db, email, string(role))
	return id, LoginUser(t, router, email, dbtest.TestPassword)
}

// LogoutUser expects the session cookie to come back expired.
func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, logoutPath, nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	cleared := httptest.ExtractCookie(w, accessTokenName)
	require.NotNil(t, cleared, "logout did not reset the %s cookie", accessTokenName)
	require.Empty(t, cleared.Value)
}
