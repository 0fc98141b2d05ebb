package wire

import (
	"rate-am/internal/adaptor"
	"rate-am/internal/data/repository"
	"rate-am/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Public routes
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)
	r.Post("/api/auth/otp", authHandler.SendOTP)
	r.Post("/api/auth/verify-email", authHandler.VerifyEmail)

	// Logout needs an authenticated session
	r.With(middleware.AuthSession(repo.Session, repo.Role, log)).
		Post("/api/auth/logout", authHandler.Logout)
}
