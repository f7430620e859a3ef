package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"boatlog-backend/internal/database/models"
	"boatlog-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	resolver *mocks.MockAccountResolver
	service  *AuthService
	router   *gin.Engine
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.resolver = mocks.NewMockAccountResolver(s.ctrl)

	service, err := NewAuthService(&AuthConfig{
		JWTSecret: "test-secret-key",
		Issuer:    "boatlog-backend",
		Audience:  "boatlog",
		TokenTTL:  time.Hour,
	})
	s.Require().NoError(err)
	s.service = service

	middleware := NewAuthMiddleware(service, s.resolver)

	s.router = gin.New()
	s.router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		email, _ := GetUserEmail(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "email": email})
	})

	admin := s.router.Group("/admin")
	admin.Use(middleware.RequireAuth(), middleware.RequireAdmin(func(email string) bool {
		return email == "admin@example.com"
	}))
	admin.GET("/users", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthMiddlewareTestSuite) request(path, authHeader string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)
	return recorder
}

func (s *AuthMiddlewareTestSuite) token(subject, email string) string {
	token, err := s.service.GenerateJWT(subject, email, "Sam Skipper")
	s.Require().NoError(err)
	return token
}

func (s *AuthMiddlewareTestSuite) TestMissingHeader() {
	recorder := s.request("/protected", "")
	s.Equal(http.StatusUnauthorized, recorder.Code)
}

func (s *AuthMiddlewareTestSuite) TestMalformedHeader() {
	recorder := s.request("/protected", "Token abc")
	s.Equal(http.StatusUnauthorized, recorder.Code)
}

func (s *AuthMiddlewareTestSuite) TestGarbageToken() {
	recorder := s.request("/protected", "Bearer not-a-jwt")
	s.Equal(http.StatusUnauthorized, recorder.Code)
}

func (s *AuthMiddlewareTestSuite) TestValidTokenResolvesAccount() {
	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Subject:   "auth0|abc123",
		Email:     "skipper@example.com",
	}
	s.resolver.EXPECT().
		ResolveAccount("auth0|abc123", "skipper@example.com", "Sam Skipper").
		Return(user, nil)

	recorder := s.request("/protected", "Bearer "+s.token("auth0|abc123", "skipper@example.com"))

	s.Equal(http.StatusOK, recorder.Code)
	s.Contains(recorder.Body.String(), user.ID.String())
	s.Contains(recorder.Body.String(), "skipper@example.com")
}

func (s *AuthMiddlewareTestSuite) TestResolverFailure() {
	s.resolver.EXPECT().
		ResolveAccount(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down"))

	recorder := s.request("/protected", "Bearer "+s.token("auth0|abc123", "skipper@example.com"))

	s.Equal(http.StatusInternalServerError, recorder.Code)
}

func (s *AuthMiddlewareTestSuite) TestAdminAllowed() {
	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Subject:   "auth0|admin",
		Email:     "admin@example.com",
	}
	s.resolver.EXPECT().
		ResolveAccount(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(user, nil)

	recorder := s.request("/admin/users", "Bearer "+s.token("auth0|admin", "admin@example.com"))

	s.Equal(http.StatusOK, recorder.Code)
}

func (s *AuthMiddlewareTestSuite) TestAdminForbiddenForRegularAccount() {
	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Subject:   "auth0|abc123",
		Email:     "skipper@example.com",
	}
	s.resolver.EXPECT().
		ResolveAccount(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(user, nil)

	recorder := s.request("/admin/users", "Bearer "+s.token("auth0|abc123", "skipper@example.com"))

	s.Equal(http.StatusForbidden, recorder.Code)
}

func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}
