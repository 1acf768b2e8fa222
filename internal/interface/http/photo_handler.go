package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/cloud-gallery/internal/application"
	"github.com/oksasatya/cloud-gallery/internal/interface/middleware"
	"github.com/oksasatya/cloud-gallery/pkg/response"
)

type PhotoHandler struct {
	Svc    *application.PhotoService
	Logger *logrus.Logger
}

func NewPhotoHandler(svc *application.PhotoService, logger *logrus.Logger) *PhotoHandler {
	return &PhotoHandler{Svc: svc, Logger: logger}
}

type uploadForm struct {
	Title string `form:"title" binding:"max=100"`
}

// Upload POST /photos/upload (multipart: image file, title field)
func (h *PhotoHandler) Upload(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if uid == "" {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var form uploadForm
	if err := c.ShouldBind(&form); err != nil {
		if isTooLarge(err) {
			response.Error(c, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		response.Error(c, http.StatusBadRequest, "Title must be at most 100 characters")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		if isTooLarge(err) {
			response.Error(c, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		response.Error(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		response.Error(c, http.StatusBadRequest, "Only images are allowed")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to upload file")
		return
	}
	defer func() { _ = src.Close() }()

	photo, err := h.Svc.Upload(c.Request.Context(), uid, form.Title, src, file.Filename, contentType)
	if err != nil {
		if errors.Is(err, application.ErrNoOwner) {
			response.Error(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("user_id", uid).Error("photo upload failed")
		}
		response.Error(c, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "File uploaded successfully",
		"photo":   photo,
	})
}

// List GET /photos — all photos, newest first, as a bare array.
func (h *PhotoHandler) List(c *gin.Context) {
	photos, err := h.Svc.List(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("photo list failed")
		}
		response.Error(c, http.StatusInternalServerError, "Failed to fetch photos")
		return
	}
	c.JSON(http.StatusOK, photos)
}

// Delete DELETE /photos/:id — removes the metadata row only. An unknown id
// is a 404, never a 500.
func (h *PhotoHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, application.ErrPhotoNotFound) {
			response.Error(c, http.StatusNotFound, "Photo not found")
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("photo_id", id).Error("photo delete failed")
		}
		response.Error(c, http.StatusInternalServerError, "Failed to delete photo")
		return
	}
	response.Message(c, http.StatusOK, "Photo deleted successfully")
}

// Search GET /photos/search?q=...&size=...
func (h *PhotoHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		response.Error(c, http.StatusBadRequest, "Search query is required")
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	photos, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("photo search failed")
		}
		response.Error(c, http.StatusInternalServerError, "Failed to search photos")
		return
	}
	c.JSON(http.StatusOK, photos)
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
