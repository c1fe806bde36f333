//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"swim-academy-api/internal/handler/api"
	resdto "swim-academy-api/internal/handler/dto/response"
	"swim-academy-api/internal/pkg/config"
	"swim-academy-api/internal/pkg/errs"
	"swim-academy-api/internal/usecase"
	"swim-academy-api/tests/common/builder"
	"swim-academy-api/tests/common/httptest"
	usecasemock "swim-academy-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockAuth *usecasemock.MockAuthUseCase
	handler  *api.AuthHandler
	userID   uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockAuth, config.CookieConfig{}, 24*time.Hour)
	s.userID = uuid.New()

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Stands in for the auth middleware.
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := map[string]any{"email": "member@example.com", "password": "password123"}

	s.Run("success: returns 200 OK with token and session cookie", func() {
		u, err := builder.NewUserBuilder().BuildDomain()
		s.Require().NoError(err)
		s.mockAuth.EXPECT().Login(gomock.Any(), "member@example.com", "password123").
			Return("test-jwt-token", u, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-jwt-token", response.AccessToken)
		s.Equal(u.Email().String(), response.User.Email)
		s.Require().NotNil(httptest.ExtractCookie(rec, "access_token"))
	})

	s.Run("error: 400 Bad Request on malformed body", func() {
		for name, body := range map[string]map[string]any{
			"missing email":    {"password": "password123"},
			"invalid email":    {"email": "not-an-email", "password": "password123"},
			"short password":   {"email": "member@example.com", "password": "short"},
			"missing password": {"email": "member@example.com"},
		} {
			s.Run(name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 401 Unauthorized for bad credentials", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", nil, usecase.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 401 Unauthorized for unknown user, indistinguishable from bad password", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", nil, usecase.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 403 Forbidden for a deactivated account", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", nil, usecase.ErrUserInactive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Account is inactive")
	})

	s.Run("error: 500 Internal Server Error on unexpected failures", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", nil, errs.New("connection refused")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 and expires the cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")

		s.Equal(http.StatusNoContent, rec.Code)
		cookie := httptest.ExtractCookie(rec, "access_token")
		s.Require().NotNil(cookie)
		s.Empty(cookie.Value)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns the authenticated user", func() {
		u, err := builder.NewUserBuilder().With(func(b *builder.UserBuilder) {
			b.ID = s.userID
		}).BuildDomain()
		s.Require().NoError(err)
		s.mockAuth.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(u, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.userID, response.ID)
	})

	s.Run("error: 401 Unauthorized without authentication context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})

	s.Run("error: 404 Not Found when the account vanished", func() {
		s.mockAuth.EXPECT().GetCurrentUser(gomock.Any(), s.userID).
			Return(nil, usecase.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}
