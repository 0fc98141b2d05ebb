package wire

import (
	"rate-am/internal/adaptor"
	"rate-am/internal/data/repository"
	"rate-am/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	uploadHandler *adaptor.UploadHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/profile", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.Role, log))

		r.Get("/", userHandler.GetProfile)
		r.Put("/", userHandler.UpdateProfile)
	})

	r.Route("/api/uploads", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.Role, log))

		r.Post("/", uploadHandler.UploadImage)
		r.Delete("/", uploadHandler.DeleteImage)
	})
}
