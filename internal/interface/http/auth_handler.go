package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/cloud-gallery/config"
	"github.com/oksasatya/cloud-gallery/internal/application"
	"github.com/oksasatya/cloud-gallery/pkg/helpers"
	"github.com/oksasatya/cloud-gallery/pkg/mailer"
	"github.com/oksasatya/cloud-gallery/pkg/response"
	"github.com/oksasatya/cloud-gallery/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
	Cfg    *config.Config
	Pub    *helpers.RabbitPublisher
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger, cfg *config.Config, pub *helpers.RabbitPublisher) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Cfg: cfg, Pub: pub}
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if h.Logger != nil {
			h.Logger.WithField("details", validation.ToDetails(err)).Debug("signup payload rejected")
		}
		response.Error(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	u, err := h.Svc.Signup(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if err == application.ErrEmailTaken {
			response.Error(c, http.StatusBadRequest, "User already exists")
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("signup failed")
		}
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.enqueueWelcomeEmail(c, u.Email)

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"userId":  u.ID,
	})
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	u, token, _, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if err == application.ErrInvalidCredentials {
			response.Error(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("login failed")
		}
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    u.Public(),
	})
}

// Logout POST /auth/logout
// Token invalidation is the client's responsibility; this endpoint only
// acknowledges the request.
func (h *AuthHandler) Logout(c *gin.Context) {
	response.Message(c, http.StatusOK, "Logout successful")
}

func (h *AuthHandler) enqueueWelcomeEmail(c *gin.Context, email string) {
	if h.Pub == nil || h.Cfg == nil || !h.Cfg.MailSendEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       email,
		Template: "welcome",
		Data:     map[string]any{"Email": email, "AppName": h.Cfg.AppName},
	}
	if err := h.Pub.PublishJSON(c.Request.Context(), job); err != nil && h.Logger != nil {
		h.Logger.WithError(err).WithField("email", email).Warn("welcome email enqueue failed")
	}
}
