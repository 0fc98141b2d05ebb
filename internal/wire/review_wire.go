package wire

import (
	"rate-am/internal/adaptor"
	"rate-am/internal/data/repository"
	"rate-am/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Public routes
	r.Get("/api/vendors/{id}/reviews", reviewHandler.ListVendorReviews)
	r.Get("/api/vendors/{id}/reviews/stats", reviewHandler.GetVendorStats)

	// Submitting a review needs a logged-in user
	r.With(middleware.AuthSession(repo.Session, repo.Role, log)).
		Post("/api/reviews", reviewHandler.CreateReview)

	// Vendor-side review management
	r.Route("/api/vendor/reviews", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.Role, log))
		r.Use(middleware.RequireVendor(log))

		r.Get("/", reviewHandler.ListMyVendorReviews)
		r.Post("/{id}/reply", reviewHandler.ReplyToReview)
	})
}
