package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	config  *AuthConfig
	service *AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.config = &AuthConfig{
		JWTSecret: "test-secret-key",
		Issuer:    "boatlog-backend",
		Audience:  "boatlog",
		TokenTTL:  time.Hour,
	}

	service, err := NewAuthService(s.config)
	s.Require().NoError(err)
	s.service = service
}

func (s *AuthServiceTestSuite) TestGenerateAndValidateJWT() {
	token, err := s.service.GenerateJWT("auth0|abc123", "skipper@example.com", "Sam Skipper")
	s.Require().NoError(err)
	s.NotEmpty(token)

	claims, err := s.service.ValidateJWT(token)
	s.Require().NoError(err)
	s.Equal("auth0|abc123", claims.Subject)
	s.Equal("skipper@example.com", claims.Email)
	s.Equal("Sam Skipper", claims.Name)
	s.Equal("boatlog-backend", claims.Issuer)
}

func (s *AuthServiceTestSuite) TestValidateJWTWrongSecret() {
	otherConfig := &AuthConfig{
		JWTSecret: "a-different-secret",
		Issuer:    "boatlog-backend",
		Audience:  "boatlog",
		TokenTTL:  time.Hour,
	}
	other, err := NewAuthService(otherConfig)
	s.Require().NoError(err)

	token, err := other.GenerateJWT("auth0|abc123", "skipper@example.com", "Sam Skipper")
	s.Require().NoError(err)

	_, err = s.service.ValidateJWT(token)
	s.Error(err)
}

func (s *AuthServiceTestSuite) TestValidateJWTWrongIssuer() {
	otherConfig := &AuthConfig{
		JWTSecret: "test-secret-key",
		Issuer:    "some-other-service",
		Audience:  "boatlog",
		TokenTTL:  time.Hour,
	}
	other, err := NewAuthService(otherConfig)
	s.Require().NoError(err)

	token, err := other.GenerateJWT("auth0|abc123", "skipper@example.com", "Sam Skipper")
	s.Require().NoError(err)

	_, err = s.service.ValidateJWT(token)
	s.Error(err)
}

func (s *AuthServiceTestSuite) TestValidateJWTExpired() {
	now := time.Now()
	claims := &AuthClaims{
		Email: "skipper@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			Issuer:    "boatlog-backend",
			Subject:   "auth0|abc123",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	s.Require().NoError(err)

	_, err = s.service.ValidateJWT(signed)
	s.Error(err)
}

func (s *AuthServiceTestSuite) TestValidateJWTMissingSubject() {
	now := time.Now()
	claims := &AuthClaims{
		Email: "skipper@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "boatlog-backend",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	s.Require().NoError(err)

	_, err = s.service.ValidateJWT(signed)
	s.Error(err)
}

func (s *AuthServiceTestSuite) TestValidateJWTGarbage() {
	_, err := s.service.ValidateJWT("not-a-token")
	s.Error(err)
}

func (s *AuthServiceTestSuite) TestConfigValidation() {
	tests := []struct {
		name    string
		config  AuthConfig
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  AuthConfig{JWTSecret: "secret", Issuer: "boatlog-backend", TokenTTL: time.Hour},
			wantErr: false,
		},
		{
			name:    "missing secret",
			config:  AuthConfig{Issuer: "boatlog-backend", TokenTTL: time.Hour},
			wantErr: true,
		},
		{
			name:    "missing issuer",
			config:  AuthConfig{JWTSecret: "secret", TokenTTL: time.Hour},
			wantErr: true,
		},
		{
			name:    "zero TTL",
			config:  AuthConfig{JWTSecret: "secret", Issuer: "boatlog-backend"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := tt.config.ValidateConfig()
			if tt.wantErr {
				s.Error(err)
			} else {
				s.NoError(err)
			}
		})
	}
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
