package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/cloud-gallery/internal/container"
	handlers "github.com/oksasatya/cloud-gallery/internal/interface/http"
	"github.com/oksasatya/cloud-gallery/internal/interface/middleware"
)

// AuthModule wires the signup/login/logout endpoints.
// Signup and login are rate limited per IP; private/loopback clients bypass
// the limiter so local development and health probes are unaffected.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	auth := rg.Group("/auth")
	{
		auth.POST("/signup", signupLimiter, m.Handler.Signup)
		auth.POST("/login", loginLimiter, m.Handler.Login)
		auth.POST("/logout", m.Handler.Logout)
	}
}
