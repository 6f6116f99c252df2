package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/humanity/backend/internal/common"
	"github.com/humanity/backend/internal/domain"
	"github.com/humanity/backend/pkg/jwt"
)

// JWTAuth JWT authentication middleware
func JWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := verifyRequest(c, jwtManager)
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				common.ErrorResponse(c, 401, "Token expired", err)
			} else {
				common.ErrorResponse(c, 401, "Invalid or missing token", err)
			}
			c.Abort()
			return
		}

		setPrincipal(c, claims)
		c.Next()
	}
}

// OptionalJWTAuth resolves the caller when a valid token is present but lets
// anonymous requests through. Used on public endpoints whose output widens
// for administrators.
func OptionalJWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := verifyRequest(c, jwtManager); err == nil {
			setPrincipal(c, claims)
		}
		c.Next()
	}
}

func verifyRequest(c *gin.Context, jwtManager *jwt.Manager) (*jwt.Claims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, jwt.ErrInvalidToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, jwt.ErrInvalidToken
	}

	return jwtManager.VerifyToken(parts[1])
}

func setPrincipal(c *gin.Context, claims *jwt.Claims) {
	c.Set("userID", claims.UserID)
	c.Set("email", claims.Email)
	c.Set("role", claims.Role)
	c.Set("isAuthor", claims.IsAuthor)
}

// GetPrincipal extracts the authenticated caller from context. The zero
// Principal (empty UserID) means the request is anonymous.
func GetPrincipal(c *gin.Context) domain.Principal {
	p := domain.Principal{}
	if v, ok := c.Get("userID"); ok {
		p.UserID, _ = v.(string)
	}
	if v, ok := c.Get("email"); ok {
		p.Email, _ = v.(string)
	}
	if v, ok := c.Get("role"); ok {
		p.Role, _ = v.(string)
	}
	if v, ok := c.Get("isAuthor"); ok {
		p.IsAuthor, _ = v.(bool)
	}
	return p
}

// GetUserID extracts user ID from context
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}
	if str, ok := userID.(string); ok {
		return str
	}
	return ""
}
