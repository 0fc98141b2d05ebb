package middleware

import (
	"net/http"
	"strings"

	"rate-am/internal/data/entity"
	"rate-am/internal/data/repository"
	"rate-am/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession validates the bearer session token and resolves the caller's
// effective role into the request context.
func AuthSession(sessionRepo repository.SessionRepository, roleRepo repository.RoleRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]

			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session")
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			// role lookup miss falls back to plain user, never an error
			roles, err := roleRepo.FindByUserID(r.Context(), session.UserID)
			if err != nil {
				logger.Warn("Role lookup failed, defaulting to user",
					zap.Error(err),
					zap.String("user_id", session.UserID.String()))
				roles = nil
			}
			role := entity.ResolveRole(roles)

			ctx := utils.SetUserContext(r.Context(), session.UserID, string(role))
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates admin-only routes. Runs after AuthSession.
func RequireAdmin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			role, _ := utils.GetRoleFromContext(r.Context())
			if !entity.Role(role).IsAdmin() {
				logger.Warn("Non-admin access attempt",
					zap.String("user_id", userID.String()),
					zap.String("role", role),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireVendor gates vendor-only routes. Runs after AuthSession.
func RequireVendor(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			role, _ := utils.GetRoleFromContext(r.Context())
			if !entity.Role(role).IsVendor() {
				logger.Warn("Non-vendor access attempt",
					zap.String("user_id", userID.String()),
					zap.String("role", role),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Vendor access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// OptionalAuth resolves the session when a token is present but lets
// anonymous requests through. Used by reads that personalize for signed-in
// callers (e.g. the caller's own poll vote).
func OptionalAuth(sessionRepo repository.SessionRepository, roleRepo repository.RoleRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			parts := strings.Split(authHeader, " ")
			if authHeader == "" || len(parts) != 2 || parts[0] != "Bearer" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := sessionRepo.FindValidSession(r.Context(), parts[1])
			if err != nil || session == nil {
				next.ServeHTTP(w, r)
				return
			}

			roles, err := roleRepo.FindByUserID(r.Context(), session.UserID)
			if err != nil {
				roles = nil
			}
			role := entity.ResolveRole(roles)

			ctx := utils.SetUserContext(r.Context(), session.UserID, string(role))
			ctx = utils.SetTokenContext(ctx, parts[1])

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
