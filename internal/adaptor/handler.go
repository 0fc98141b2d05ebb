package adaptor

import (
	"net/http"
	"strings"

	"rate-am/internal/usecase"
	"rate-am/pkg/realtime"
	"rate-am/pkg/storage"
	"rate-am/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth   *AuthHandler
	User   *UserHandler
	Vendor *VendorHandler
	Review *ReviewHandler
	Poll   *PollHandler
	Admin  *AdminHandler
	Upload *UploadHandler
	Events *EventsHandler
}

func NewHandler(service *usecase.Service, store storage.Store, hub *realtime.Hub, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(service.Auth, log),
		User:   NewUserHandler(service.User, log),
		Vendor: NewVendorHandler(service.Vendor, log),
		Review: NewReviewHandler(service.Review, log),
		Poll:   NewPollHandler(service.Poll, log),
		Admin:  NewAdminHandler(service.Admin, log),
		Upload: NewUploadHandler(store, config, log),
		Events: NewEventsHandler(hub, log),
	}
}

// handleServiceError maps service error messages to HTTP responses
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "unauthorized"):
		log.Warn(operation+" failed - unauthorized",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "already"):
		log.Warn(operation+" failed - conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "cannot"), strings.Contains(errMsg, "has ended"):
		log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// parsePagination reads page/per_page query params with sane defaults
func parsePagination(r *http.Request, defaultPerPage int) (page, perPage int) {
	query := r.URL.Query()
	page = utils.ParseInt(query.Get("page"), 1)
	perPage = utils.ParseInt(query.Get("per_page"), defaultPerPage)
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	return page, perPage
}
