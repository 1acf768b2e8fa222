package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/cloud-gallery/pkg/helpers"
	"github.com/oksasatya/cloud-gallery/pkg/response"
)

const CtxUserIDKey = "userID"

// JWTAuth validates the Authorization bearer header and injects the user id
// into the Gin context. Missing or malformed headers are rejected before any
// handler logic runs.
func JWTAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.AbortError(c, http.StatusUnauthorized, "No token provided")
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		claims, err := jwt.Parse(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
