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

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// ListUsers handles GET /api/admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, perPage := parsePagination(r, 20)
	req := &request.PaginatedRequest{Page: page, PerPage: perPage}

	users, err := h.service.ListUsers(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved successfully", users)
}

// UpdateUserRole handles PUT /api/admin/users/{id}/role
func (h *AdminHandler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	var req request.UpdateUserRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateUserRole(r.Context(), userID, &req); err != nil {
		handleServiceError(h.log, w, err, "update user role")
		return
	}

	utils.ResponseSuccess(w, "User role updated successfully", nil)
}

// DeactivateUser handles POST /api/admin/users/{id}/deactivate
func (h *AdminHandler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	if err := h.service.SetUserActive(r.Context(), userID, false); err != nil {
		handleServiceError(h.log, w, err, "deactivate user")
		return
	}

	utils.ResponseSuccess(w, "User deactivated successfully", nil)
}

// ActivateUser handles POST /api/admin/users/{id}/activate
func (h *AdminHandler) ActivateUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	if err := h.service.SetUserActive(r.Context(), userID, true); err != nil {
		handleServiceError(h.log, w, err, "activate user")
		return
	}

	utils.ResponseSuccess(w, "User activated successfully", nil)
}

// ListVendors handles GET /api/admin/vendors
func (h *AdminHandler) ListVendors(w http.ResponseWriter, r *http.Request) {
	page, perPage := parsePagination(r, 20)
	req := &request.PaginatedRequest{Page: page, PerPage: perPage}

	vendors, err := h.service.ListVendors(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "list vendors")
		return
	}

	utils.ResponseSuccess(w, "Vendors retrieved successfully", vendors)
}

// UpdateVendorStatus handles PUT /api/admin/vendors/{id}/status
func (h *AdminHandler) UpdateVendorStatus(w http.ResponseWriter, r *http.Request) {
	vendorID := chi.URLParam(r, "id")
	if vendorID == "" {
		utils.ResponseBadRequest(w, "Vendor ID is required", nil)
		return
	}

	var req request.UpdateVendorStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateVendorStatus(r.Context(), vendorID, &req); err != nil {
		handleServiceError(h.log, w, err, "update vendor status")
		return
	}

	utils.ResponseSuccess(w, "Vendor status updated successfully", nil)
}

// ListReviews handles GET /api/admin/reviews
func (h *AdminHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	page, perPage := parsePagination(r, 20)
	req := &request.PaginatedRequest{Page: page, PerPage: perPage}

	reviews, err := h.service.ListReviews(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "list reviews")
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved successfully", reviews)
}

// UpdateReviewStatus handles PUT /api/admin/reviews/{id}/status
func (h *AdminHandler) UpdateReviewStatus(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		utils.ResponseBadRequest(w, "Review ID is required", nil)
		return
	}

	var req request.UpdateReviewStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateReviewStatus(r.Context(), reviewID, &req); err != nil {
		handleServiceError(h.log, w, err, "update review status")
		return
	}

	utils.ResponseSuccess(w, "Review status updated successfully", nil)
}

// ListPolls handles GET /api/admin/polls
func (h *AdminHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	page, perPage := parsePagination(r, 20)
	req := &request.PaginatedRequest{Page: page, PerPage: perPage}

	polls, err := h.service.ListPolls(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "list polls")
		return
	}

	utils.ResponseSuccess(w, "Polls retrieved successfully", polls)
}

// CreatePoll handles POST /api/admin/polls
func (h *AdminHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	var req request.CreatePollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	poll, err := h.service.CreatePoll(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create poll")
		return
	}

	utils.ResponseCreated(w, "Poll created successfully", poll)
}

// UpdatePollStatus handles PUT /api/admin/polls/{id}/status
func (h *AdminHandler) UpdatePollStatus(w http.ResponseWriter, r *http.Request) {
	pollID := chi.URLParam(r, "id")
	if pollID == "" {
		utils.ResponseBadRequest(w, "Poll ID is required", nil)
		return
	}

	var req request.UpdatePollStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdatePollStatus(r.Context(), pollID, &req); err != nil {
		handleServiceError(h.log, w, err, "update poll status")
		return
	}

	utils.ResponseSuccess(w, "Poll status updated successfully", nil)
}

// DeletePoll handles DELETE /api/admin/polls/{id}
func (h *AdminHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	pollID := chi.URLParam(r, "id")
	if pollID == "" {
		utils.ResponseBadRequest(w, "Poll ID is required", nil)
		return
	}

	if err := h.service.DeletePoll(r.Context(), pollID); err != nil {
		handleServiceError(h.log, w, err, "delete poll")
		return
	}

	utils.ResponseSuccess(w, "Poll deleted successfully", nil)
}

// GetAnalytics handles GET /api/admin/analytics
func (h *AdminHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.service.GetAnalytics(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get analytics")
		return
	}

	utils.ResponseSuccess(w, "Analytics retrieved successfully", analytics)
}
