//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"bikepacking-api/internal/domain/user"
	"bikepacking-api/internal/handler/dto/request"
	resdto "bikepacking-api/internal/handler/dto/response"
	"bikepacking-api/tests/common/authtest"
	"bikepacking-api/tests/common/dbtest"
	"bikepacking-api/tests/common/httptest"
	"bikepacking-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	signupURL = "/api/auth/signup"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "test@example.com", string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, "rider@example.com", string(user.RoleUser))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleUser))

	// 非アクティブユーザーを作成
	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			email:          "test@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusOK,
			description:    "有効な認証情報でログインできること",
		},
		{
			name:           "大文字を含むメールアドレス",
			email:          "Rider@Example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusOK,
			description:    "メールアドレスは小文字に正規化されること",
		},
		{
			name:           "存在しないユーザー",
			email:          "nonexistent@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しないユーザーでログインできないこと",
		},
		{
			name:           "間違ったパスワード",
			email:          "test@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "間違ったパスワードでログインできないこと",
		},
		{
			name:           "非アクティブユーザー",
			email:          "inactive@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusForbidden,
			description:    "非アクティブユーザーはログインできないこと",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusBadRequest,
			description:    "空のメールアドレスは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var loginRes resdto.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &loginRes))
				require.NotEmpty(t, loginRes.AccessToken, "アクセストークンが空")
				require.Equal(t, resdto.TokenTypeBearer, loginRes.TokenType)
				require.NotNil(t, httptest.ExtractCookie(w, "access_token"), "クッキーが設定されていない")

				// last_loginが更新されることを確認
				var lastLogin any
				err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE email = LOWER($1)", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_loginが更新されていない")
			}
		})
	}
}

func (s *authSuite) TestSignup() {
	s.Run("新規登録は常にuserロールになる", func() {
		t := s.T()

		body := map[string]any{
			"email": "new@example.com", "password": dbtest.TestPassword,
			"first_name": "New", "last_name": "Rider", "role": "admin",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, body, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		require.Contains(t, w.Body.String(), `"role":"user"`)

		token := authtest.LoginUser(t, s.Router, "new@example.com", dbtest.TestPassword)
		require.NotEmpty(t, token)
	})

	s.Run("重複したメールアドレスは409", func() {
		t := s.T()

		body := request.SignupRequest{Email: "rider@example.com", Password: dbtest.TestPassword, FirstName: "A", LastName: "B"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, body, "")
		require.Equal(t, http.StatusConflict, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("クッキーが削除される", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "test@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, w.Code)

		authtest.LogoutUser(t, s.Router, httptest.ExtractCookies(w))
	})
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		token          func() string
		expectedStatus int
		expectedEmail  string
	}{
		{
			name: "ログイン済みユーザーの情報取得",
			token: func() string {
				return authtest.LoginUser(s.T(), s.Router, "rider@example.com", dbtest.TestPassword)
			},
			expectedStatus: http.StatusOK,
			expectedEmail:  "rider@example.com",
		},
		{
			name:           "無効なトークン",
			token:          func() string { return "invalid-token" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "トークンなし",
			token:          func() string { return "" },
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, tt.token())
			require.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				body := w.Body.String()
				require.Contains(t, body, tt.expectedEmail)
				require.NotContains(t, body, "password", "レスポンスにパスワード情報が含まれている")
			}
		})
	}
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("期限切れトークンの拒否", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleUser))
		expiredToken := s.jwtHelper.CreateExpiredToken(t, userID, "expiry@example.com", user.RoleUser)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expiredToken)
		require.Equal(t, http.StatusUnauthorized, w.Code, "期限切れトークンは拒否されるべき")
	})
}

func (s *authSuite) TestAdminOnly() {
	s.Run("一般ユーザーは管理APIにアクセスできない", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "plain@example.com", string(user.RoleUser))
		token := s.jwtHelper.GenerateToken(t, userID, "plain@example.com", user.RoleUser)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/webhook-events", nil, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
