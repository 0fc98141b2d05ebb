package usecase

import (
	"context"
	"fmt"
	"time"

	"rate-am/internal/data/entity"
	"rate-am/internal/data/repository"
	"rate-am/internal/dto/request"
	"rate-am/internal/dto/response"
	"rate-am/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VendorService interface {
	RegisterVendor(ctx context.Context, userID string, req *request.CreateVendorRequest) (*response.VendorResponse, error)
	GetMyVendor(ctx context.Context, userID string) (*response.VendorResponse, error)
	UpdateMyVendor(ctx context.Context, userID string, req *request.UpdateVendorRequest) (*response.VendorResponse, error)
	ListApproved(ctx context.Context, req *request.ListVendorsRequest) (*response.PaginatedResponse[response.VendorResponse], error)
	GetVendor(ctx context.Context, id string) (*response.VendorResponse, error)
	ListCategories(ctx context.Context) ([]response.CategoryResponse, error)
}

type vendorService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewVendorService(repo *repository.Repository, log *zap.Logger) VendorService {
	return &vendorService{
		repo: repo,
		log:  log.With(zap.String("service", "vendor")),
	}
}

func (s *vendorService) RegisterVendor(ctx context.Context, userID string, req *request.CreateVendorRequest) (*response.VendorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("RegisterVendor validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID")
	}

	existing, err := s.repo.Vendor.FindByUserID(ctx, uid)
	if err != nil {
		s.log.Error("Failed to check existing vendor", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to check vendor profile")
	}
	if existing != nil {
		return nil, fmt.Errorf("vendor profile already registered")
	}

	now := time.Now()
	vendor := &entity.Vendor{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:           uid,
		BusinessName:     req.BusinessName,
		Category:         req.Category,
		Description:      req.Description,
		Location:         req.Location,
		Phone:            req.Phone,
		Whatsapp:         req.Whatsapp,
		Email:            req.Email,
		PreferredContact: req.PreferredContact,
		Status:           entity.VendorStatusPending,
	}

	if err := s.repo.Vendor.Create(ctx, vendor); err != nil {
		s.log.Error("Failed to create vendor", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to register vendor")
	}

	// registering a business also grants the vendor role
	role := &entity.UserRole{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		UserID:     uid,
		Role:       entity.RoleVendor,
	}
	if err := s.repo.Role.Assign(ctx, role); err != nil {
		s.log.Warn("Failed to assign vendor role", zap.Error(err), zap.String("user_id", userID))
	}

	s.log.Info("Vendor registered", zap.String("vendor_id", vendor.ID.String()), zap.String("user_id", userID))

	resp := response.VendorToResponse(vendor)
	return &resp, nil
}

func (s *vendorService) GetMyVendor(ctx context.Context, userID string) (*response.VendorResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID")
	}

	vendor, err := s.repo.Vendor.FindByUserID(ctx, uid)
	if err != nil {
		s.log.Error("Failed to get vendor", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get vendor profile")
	}
	if vendor == nil {
		return nil, fmt.Errorf("vendor profile not found")
	}

	resp := response.VendorToResponse(vendor)
	return &resp, nil
}

func (s *vendorService) UpdateMyVendor(ctx context.Context, userID string, req *request.UpdateVendorRequest) (*response.VendorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("UpdateMyVendor validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID")
	}

	vendor, err := s.repo.Vendor.FindByUserID(ctx, uid)
	if err != nil {
		s.log.Error("Failed to get vendor", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get vendor profile")
	}
	if vendor == nil {
		return nil, fmt.Errorf("vendor profile not found")
	}

	if req.BusinessName != nil {
		vendor.BusinessName = *req.BusinessName
	}
	if req.Category != nil {
		vendor.Category = req.Category
	}
	if req.Description != nil {
		vendor.Description = req.Description
	}
	if req.Location != nil {
		vendor.Location = req.Location
	}
	if req.Phone != nil {
		vendor.Phone = req.Phone
	}
	if req.Whatsapp != nil {
		vendor.Whatsapp = req.Whatsapp
	}
	if req.Email != nil {
		vendor.Email = req.Email
	}
	if req.PreferredContact != nil {
		vendor.PreferredContact = req.PreferredContact
	}
	if req.ImageURL != nil {
		vendor.ImageURL = req.ImageURL
	}
	if req.Gallery != nil {
		vendor.Gallery = req.Gallery
	}
	vendor.UpdatedAt = time.Now()

	if err := s.repo.Vendor.Update(ctx, vendor); err != nil {
		s.log.Error("Failed to update vendor", zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("failed to update vendor profile")
	}

	s.log.Info("Vendor updated", zap.String("vendor_id", vendor.ID.String()))

	resp := response.VendorToResponse(vendor)
	return &resp, nil
}

func (s *vendorService) ListApproved(ctx context.Context, req *request.ListVendorsRequest) (*response.PaginatedResponse[response.VendorResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("ListApproved validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	filter := repository.VendorFilter{
		Search:   req.Search,
		Category: req.Category,
		SortBy:   req.SortBy,
	}

	vendors, err := s.repo.Vendor.FindApproved(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list vendors", zap.Error(err))
		return nil, fmt.Errorf("failed to list vendors")
	}

	total, err := s.repo.Vendor.CountApproved(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count vendors", zap.Error(err))
		return nil, fmt.Errorf("failed to list vendors")
	}

	items := make([]response.VendorResponse, 0, len(vendors))
	for _, vendor := range vendors {
		items = append(items, response.VendorToResponse(vendor))
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *vendorService) GetVendor(ctx context.Context, id string) (*response.VendorResponse, error) {
	vendorID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid vendor ID")
	}

	vendor, err := s.repo.Vendor.FindByID(ctx, vendorID)
	if err != nil {
		s.log.Error("Failed to get vendor", zap.Error(err), zap.String("vendor_id", id))
		return nil, fmt.Errorf("failed to get vendor")
	}
	// only approved vendors are visible on the public surface
	if vendor == nil || vendor.Status != entity.VendorStatusApproved {
		return nil, fmt.Errorf("vendor not found")
	}

	resp := response.VendorToResponse(vendor)
	return &resp, nil
}

func (s *vendorService) ListCategories(ctx context.Context) ([]response.CategoryResponse, error) {
	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list categories", zap.Error(err))
		return nil, fmt.Errorf("failed to list categories")
	}

	items := make([]response.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		items = append(items, response.CategoryToResponse(category))
	}

	return items, nil
}
