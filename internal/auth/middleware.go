package auth

import (
	"net/http"
	"strings"

	"promptvault-backend/internal/config"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key holding the authenticated user id.
const ContextUserID = "user_id"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	verifier TokenVerifier
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// NewVerifierFromConfig picks JWKS verification when a URL is configured,
// falling back to the shared HS256 secret.
func NewVerifierFromConfig(cfg *config.Config) (TokenVerifier, error) {
	if cfg.SupabaseJWKSURL != "" {
		return NewJWKSVerifier(cfg.SupabaseJWKSURL)
	}
	return NewSecretVerifier(cfg.SupabaseJWTSecret)
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
		claims, err := m.verifier.VerifyToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token subject"})
			c.Abort()
			return
		}

		// Set user context
		c.Set(ContextUserID, userID.String())
		c.Set("email", claims.Email)

		c.Next()
	}
}

// OptionalAuth validates JWT tokens if present but doesn't require them.
// Used on community listings that personalize for signed-in users.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.Next()
			return
		}

		claims, err := m.verifier.VerifyToken(tokenString)
		if err != nil {
			// Invalid token, continue without setting user context
			c.Next()
			return
		}

		if userID, err := claims.UserID(); err == nil {
			c.Set(ContextUserID, userID.String())
			c.Set("email", claims.Email)
		}

		c.Next()
	}
}
