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

type VendorHandler struct {
	service usecase.VendorService
	log     *zap.Logger
}

func NewVendorHandler(service usecase.VendorService, log *zap.Logger) *VendorHandler {
	return &VendorHandler{
		service: service,
		log:     log.With(zap.String("handler", "vendor")),
	}
}

// ListVendors handles GET /api/vendors
func (h *VendorHandler) ListVendors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, perPage := parsePagination(r, 12)

	req := &request.ListVendorsRequest{
		Search:   query.Get("search"),
		Category: query.Get("category"),
		SortBy:   query.Get("sort_by"),
		PaginatedRequest: request.PaginatedRequest{
			Page:    page,
			PerPage: perPage,
		},
	}

	vendors, err := h.service.ListApproved(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "list vendors")
		return
	}

	utils.ResponseSuccess(w, "Vendors retrieved successfully", vendors)
}

// GetVendor handles GET /api/vendors/{id}
func (h *VendorHandler) GetVendor(w http.ResponseWriter, r *http.Request) {
	vendorID := chi.URLParam(r, "id")
	if vendorID == "" {
		utils.ResponseBadRequest(w, "Vendor ID is required", nil)
		return
	}

	vendor, err := h.service.GetVendor(r.Context(), vendorID)
	if err != nil {
		handleServiceError(h.log, w, err, "get vendor")
		return
	}

	utils.ResponseSuccess(w, "Vendor retrieved successfully", vendor)
}

// ListCategories handles GET /api/categories
func (h *VendorHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list categories")
		return
	}

	utils.ResponseSuccess(w, "Categories retrieved successfully", categories)
}

// RegisterVendor handles POST /api/vendors
func (h *VendorHandler) RegisterVendor(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	var req request.CreateVendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	vendor, err := h.service.RegisterVendor(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "register vendor")
		return
	}

	utils.ResponseCreated(w, "Vendor registered successfully, pending approval", vendor)
}

// GetMyVendor handles GET /api/vendor/me
func (h *VendorHandler) GetMyVendor(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	vendor, err := h.service.GetMyVendor(r.Context(), userID.String())
	if err != nil {
		handleServiceError(h.log, w, err, "get own vendor")
		return
	}

	utils.ResponseSuccess(w, "Vendor profile retrieved successfully", vendor)
}

// UpdateMyVendor handles PUT /api/vendor/me
func (h *VendorHandler) UpdateMyVendor(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	var req request.UpdateVendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	vendor, err := h.service.UpdateMyVendor(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update own vendor")
		return
	}

	utils.ResponseSuccess(w, "Vendor profile updated successfully", vendor)
}
