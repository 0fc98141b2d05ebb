package wire

import (
	"net/http"

	"rate-am/internal/adaptor"
	"rate-am/internal/data/repository"
	"rate-am/internal/usecase"
	"rate-am/pkg/middleware"
	"rate-am/pkg/realtime"
	"rate-am/pkg/storage"
	"rate-am/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

func Wiring(repo *repository.Repository, store *storage.LocalStore, hub *realtime.Hub, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, hub, logger)
	handler := adaptor.NewHandler(service, store, hub, config, logger)

	router := setupRouter(handler, repo, store, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	store *storage.LocalStore,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.HTTP.CORSOrigin))
	r.Use(middleware.RateLimit(config.HTTP.RateLimitRPM))

	wireAuth(r, handler.Auth, repo, logger)
	wireUser(r, handler.User, handler.Upload, repo, logger)
	wireVendor(r, handler.Vendor, repo, logger)
	wireReview(r, handler.Review, repo, logger)
	wirePoll(r, handler.Poll, handler.Events, repo, logger)
	wireAdmin(r, handler.Admin, repo, logger)

	// Uploaded objects are served statically under the public base path
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(store.Root())))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
