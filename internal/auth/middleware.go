package auth

import (
	"net/http"
	"strings"

	"boatlog-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

//go:generate mockgen -source=middleware.go -destination=../mocks/auth_mocks.go -package=mocks

// AccountResolver maps validated token claims to a local account row,
// creating the row on first sight of a new subject
type AccountResolver interface {
	ResolveAccount(subject, email, name string) (*models.User, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service  *AuthService
	resolver AccountResolver
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService, resolver AccountResolver) *AuthMiddleware {
	return &AuthMiddleware{service: service, resolver: resolver}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		// Validate token
		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		// Resolve the local account for this subject
		user, err := m.resolver.ResolveAccount(claims.Subject, claims.Email, claims.Name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve account"})
			c.Abort()
			return
		}

		// Set user context
		c.Set("user_id", user.ID)
		c.Set("email", user.Email)
		c.Set("current_user", user)
		c.Set("auth_claims", claims)

		c.Next()
	}
}

// RequireAdmin restricts a route to the configured admin allowlist. It must
// run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin(isAdmin func(email string) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := GetUserEmail(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		if !isAdmin(email) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserID is a helper function to extract the account ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetUserEmail is a helper function to extract user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get("email")
	if !exists {
		return "", false
	}

	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetCurrentUser is a helper function to extract the account row from context
func GetCurrentUser(c *gin.Context) (*models.User, bool) {
	user, exists := c.Get("current_user")
	if !exists {
		return nil, false
	}

	u, ok := user.(*models.User)
	return u, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
