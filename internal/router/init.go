package router

import (
	"github.com/oksasatya/cloud-gallery/internal/application"
	"github.com/oksasatya/cloud-gallery/internal/container"
	"github.com/oksasatya/cloud-gallery/internal/infrastructure/gcs"
	pginfra "github.com/oksasatya/cloud-gallery/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/cloud-gallery/internal/interface/http"
	"github.com/oksasatya/cloud-gallery/internal/router/modules"
)

// InitModules builds the auth and photo modules from the container singletons
// and registers them. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()

	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	photoRepo := pginfra.NewPhotoRepository(container.GetPGPool())
	store := gcs.NewStorage(container.GetGCS(), cfg.GCSBucket, cfg.PublicBaseURL)

	authSvc := application.NewAuthService(userRepo, container.GetJWT(), container.GetLogger(), cfg.BcryptCost)
	photoSvc := application.NewPhotoService(photoRepo, store, container.GetRedis(), container.GetLogger(), container.GetES(), cfg.ESPhotosIndex)

	authHandler := handlers.NewAuthHandler(authSvc, container.GetLogger(), cfg, container.GetRabbitPub())
	photoHandler := handlers.NewPhotoHandler(photoSvc, container.GetLogger())

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewPhotoModule(photoHandler, container.GetJWT()))
}
