package adaptor

import (
	"encoding/json"
	"net/http"

	"rate-am/internal/dto/request"
	"rate-am/internal/usecase"
	"rate-am/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PollHandler struct {
	service usecase.PollService
	log     *zap.Logger
}

func NewPollHandler(service usecase.PollService, log *zap.Logger) *PollHandler {
	return &PollHandler{
		service: service,
		log:     log.With(zap.String("handler", "poll")),
	}
}

// contextUserID returns the authenticated user ID or "" for anonymous
func contextUserID(r *http.Request) string {
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		return userID.String()
	}
	return ""
}

// ListPolls handles GET /api/polls
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	page, perPage := parsePagination(r, 10)
	req := &request.PaginatedRequest{Page: page, PerPage: perPage}

	polls, err := h.service.ListActive(r.Context(), contextUserID(r), req)
	if err != nil {
		handleServiceError(h.log, w, err, "list polls")
		return
	}

	utils.ResponseSuccess(w, "Polls retrieved successfully", polls)
}

// GetPoll handles GET /api/polls/{id}
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := chi.URLParam(r, "id")
	if pollID == "" {
		utils.ResponseBadRequest(w, "Poll ID is required", nil)
		return
	}

	poll, err := h.service.GetPoll(r.Context(), contextUserID(r), pollID)
	if err != nil {
		handleServiceError(h.log, w, err, "get poll")
		return
	}

	utils.ResponseSuccess(w, "Poll retrieved successfully", poll)
}

// Vote handles POST /api/polls/{id}/vote
func (h *PollHandler) Vote(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	pollID := chi.URLParam(r, "id")
	if pollID == "" {
		utils.ResponseBadRequest(w, "Poll ID is required", nil)
		return
	}

	var req request.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	poll, err := h.service.Vote(r.Context(), userID.String(), pollID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "vote")
		return
	}

	utils.ResponseSuccess(w, "Vote recorded successfully", poll)
}

// RequestPoll handles POST /api/polls/request
func (h *PollHandler) RequestPoll(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	var req request.RequestPollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	poll, err := h.service.RequestPoll(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "request poll")
		return
	}

	utils.ResponseCreated(w, "Poll request submitted, pending approval", poll)
}
