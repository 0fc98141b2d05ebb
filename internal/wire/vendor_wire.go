package wire

import (
	"rate-am/internal/adaptor"
	"rate-am/internal/data/repository"
	"rate-am/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireVendor(
	r chi.Router,
	vendorHandler *adaptor.VendorHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Public discovery routes
	r.Get("/api/vendors", vendorHandler.ListVendors)
	r.Get("/api/vendors/{id}", vendorHandler.GetVendor)
	r.Get("/api/categories", vendorHandler.ListCategories)

	// Registering a business only needs a logged-in user; the vendor
	// role is granted as part of registration
	r.With(middleware.AuthSession(repo.Session, repo.Role, log)).
		Post("/api/vendors", vendorHandler.RegisterVendor)

	// Vendor self-management
	r.Route("/api/vendor/me", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.Role, log))
		r.Use(middleware.RequireVendor(log))

		r.Get("/", vendorHandler.GetMyVendor)
		r.Put("/", vendorHandler.UpdateMyVendor)
	})
}
