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

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /api/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.CreateReview(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create review")
		return
	}

	utils.ResponseCreated(w, "Review submitted, pending moderation", review)
}

// ListVendorReviews handles GET /api/vendors/{id}/reviews
func (h *ReviewHandler) ListVendorReviews(w http.ResponseWriter, r *http.Request) {
	vendorID := chi.URLParam(r, "id")
	if vendorID == "" {
		utils.ResponseBadRequest(w, "Vendor ID is required", nil)
		return
	}

	page, perPage := parsePagination(r, 10)
	req := &request.PaginatedRequest{Page: page, PerPage: perPage}

	reviews, err := h.service.ListVendorReviews(r.Context(), vendorID, req)
	if err != nil {
		handleServiceError(h.log, w, err, "list vendor reviews")
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved successfully", reviews)
}

// GetVendorStats handles GET /api/vendors/{id}/reviews/stats
func (h *ReviewHandler) GetVendorStats(w http.ResponseWriter, r *http.Request) {
	vendorID := chi.URLParam(r, "id")
	if vendorID == "" {
		utils.ResponseBadRequest(w, "Vendor ID is required", nil)
		return
	}

	stats, err := h.service.GetVendorStats(r.Context(), vendorID)
	if err != nil {
		handleServiceError(h.log, w, err, "get vendor review stats")
		return
	}

	utils.ResponseSuccess(w, "Review stats retrieved successfully", stats)
}

// ListMyVendorReviews handles GET /api/vendor/reviews
func (h *ReviewHandler) ListMyVendorReviews(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	page, perPage := parsePagination(r, 10)
	req := &request.PaginatedRequest{Page: page, PerPage: perPage}

	reviews, err := h.service.ListMyVendorReviews(r.Context(), userID.String(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "list own vendor reviews")
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved successfully", reviews)
}

// ReplyToReview handles POST /api/vendor/reviews/{id}/reply
func (h *ReviewHandler) ReplyToReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		utils.ResponseBadRequest(w, "Review ID is required", nil)
		return
	}

	var req request.ReplyReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.ReplyToReview(r.Context(), userID.String(), reviewID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "reply to review")
		return
	}

	utils.ResponseSuccess(w, "Reply posted successfully", review)
}
