package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/humanity/backend/internal/common"
)

// RequireAdmin checks that the authenticated user holds the admin or
// super_admin role. Services still verify the explicit caller they receive;
// this keeps obviously unauthorized requests out of the handler layer.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := GetPrincipal(c)
		if !p.CanModerate() {
			common.ErrorResponse(c, http.StatusForbidden, "Administrator access required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
