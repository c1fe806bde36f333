//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"swim-academy-api/internal/handler/dto/request"
	"swim-academy-api/internal/handler/dto/response"
	"swim-academy-api/tests/common/authtest"
	"swim-academy-api/tests/common/dbtest"
	"swim-academy-api/tests/common/httptest"
	"swim-academy-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestLogin() {
	s.Run("Normal case: Member logs in with valid credentials", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "member@example.com", "member", "MALE")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "member@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.LoginResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.NotEmpty(t, res.AccessToken)
		require.Equal(t, "member@example.com", res.User.Email)
		require.Equal(t, "member", res.User.Role)

		cookie := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, cookie, "access_token cookie should be set")
		require.Equal(t, res.AccessToken, cookie.Value)
	})

	s.Run("Error case: Wrong password is rejected", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "member@example.com", "member", "MALE")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "member@example.com", Password: "wrongpass123"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: Unknown email gets the same rejection as a bad password", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "nobody@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *AuthSuite) TestMe() {
	s.Run("Normal case: Authenticated user fetches own profile", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "me@example.com", "member", "FEMALE")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.UserResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, "me@example.com", res.Email)
		require.Equal(t, "FEMALE", res.Gender)
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *AuthSuite) TestLogout() {
	s.Run("Normal case: Logout clears the session cookie", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "bye@example.com", "member", "MALE")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		cookie := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, cookie)
		require.Empty(t, cookie.Value, "cookie should be emptied on logout")
	})
}
