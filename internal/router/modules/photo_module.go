package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/cloud-gallery/internal/container"
	handlers "github.com/oksasatya/cloud-gallery/internal/interface/http"
	"github.com/oksasatya/cloud-gallery/internal/interface/middleware"
	"github.com/oksasatya/cloud-gallery/pkg/helpers"
)

// PhotoModule wires the photo endpoints. Everything under /photos requires a
// bearer token; the upload route additionally caps the request body.
type PhotoModule struct {
	Handler *handlers.PhotoHandler
	JWT     *helpers.JWTManager
}

func NewPhotoModule(h *handlers.PhotoHandler, jwt *helpers.JWTManager) *PhotoModule {
	return &PhotoModule{Handler: h, JWT: jwt}
}

func (m *PhotoModule) Register(rg *gin.RouterGroup) {
	photos := rg.Group("/photos")
	photos.Use(middleware.JWTAuth(m.JWT))
	{
		photos.POST("/upload", middleware.MaxBodySize(container.GetConfig().UploadMaxBytes), m.Handler.Upload)
		photos.GET("", m.Handler.List)
		photos.GET("/search", m.Handler.Search)
		photos.DELETE("/:id", m.Handler.Delete)
	}
}
