package wire

import (
	"rate-am/internal/adaptor"
	"rate-am/internal/data/repository"
	"rate-am/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.Role, log))
		r.Use(middleware.RequireAdmin(log))

		r.Get("/users", adminHandler.ListUsers)
		r.Put("/users/{id}/role", adminHandler.UpdateUserRole)
		r.Post("/users/{id}/activate", adminHandler.ActivateUser)
		r.Post("/users/{id}/deactivate", adminHandler.DeactivateUser)

		r.Get("/vendors", adminHandler.ListVendors)
		r.Put("/vendors/{id}/status", adminHandler.UpdateVendorStatus)

		r.Get("/reviews", adminHandler.ListReviews)
		r.Put("/reviews/{id}/status", adminHandler.UpdateReviewStatus)

		r.Get("/polls", adminHandler.ListPolls)
		r.Post("/polls", adminHandler.CreatePoll)
		r.Put("/polls/{id}/status", adminHandler.UpdatePollStatus)
		r.Delete("/polls/{id}", adminHandler.DeletePoll)

		r.Get("/analytics", adminHandler.GetAnalytics)
	})
}
