package usecase

import (
	"context"
	"fmt"
	"time"

	"rate-am/internal/data/entity"
	"rate-am/internal/data/repository"
	"rate-am/internal/dto/request"
	"rate-am/internal/dto/response"
	"rate-am/pkg/realtime"
	"rate-am/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, userID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	ListVendorReviews(ctx context.Context, vendorID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	GetVendorStats(ctx context.Context, vendorID string) (*response.VendorReviewStats, error)
	ListMyVendorReviews(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	ReplyToReview(ctx context.Context, userID, reviewID string, req *request.ReplyReviewRequest) (*response.ReviewResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	hub  *realtime.Hub
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, hub *realtime.Hub, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		hub:  hub,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, userID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("CreateReview validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID")
	}
	vendorID, err := uuid.Parse(req.VendorID)
	if err != nil {
		return nil, fmt.Errorf("invalid vendor ID")
	}

	vendor, err := s.repo.Vendor.FindByID(ctx, vendorID)
	if err != nil {
		s.log.Error("Failed to get vendor", zap.Error(err), zap.String("vendor_id", req.VendorID))
		return nil, fmt.Errorf("failed to get vendor")
	}
	if vendor == nil || vendor.Status != entity.VendorStatusApproved {
		return nil, fmt.Errorf("vendor not found")
	}
	if vendor.UserID == uid {
		return nil, fmt.Errorf("cannot review your own business")
	}

	existing, err := s.repo.Review.FindByUserAndVendor(ctx, uid, vendorID)
	if err != nil {
		s.log.Error("Failed to check existing review", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to check existing review")
	}
	if existing != nil {
		return nil, fmt.Errorf("you already reviewed this vendor")
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:         uid,
		VendorID:       vendorID,
		Rating:         req.Rating,
		Comment:        req.Comment,
		Status:         entity.ReviewStatusPending,
		ContactVisible: req.ContactVisible,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review", zap.Error(err), zap.String("vendor_id", req.VendorID))
		return nil, fmt.Errorf("failed to submit review")
	}

	s.hub.Publish(realtime.Event{Table: "reviews", Action: realtime.ActionInsert, ID: review.ID.String()})
	s.log.Info("Review submitted", zap.String("review_id", review.ID.String()), zap.String("vendor_id", req.VendorID))

	resp := response.ReviewToResponse(review, "", vendor.BusinessName)
	return &resp, nil
}

func (s *reviewService) ListVendorReviews(ctx context.Context, vendorID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	vid, err := uuid.Parse(vendorID)
	if err != nil {
		return nil, fmt.Errorf("invalid vendor ID")
	}

	reviews, err := s.repo.Review.FindApprovedByVendorID(ctx, vid, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list reviews", zap.Error(err), zap.String("vendor_id", vendorID))
		return nil, fmt.Errorf("failed to list reviews")
	}

	total, err := s.repo.Review.CountApprovedByVendorID(ctx, vid)
	if err != nil {
		s.log.Error("Failed to count reviews", zap.Error(err), zap.String("vendor_id", vendorID))
		return nil, fmt.Errorf("failed to list reviews")
	}

	items := s.toResponses(ctx, reviews)
	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *reviewService) GetVendorStats(ctx context.Context, vendorID string) (*response.VendorReviewStats, error) {
	vid, err := uuid.Parse(vendorID)
	if err != nil {
		return nil, fmt.Errorf("invalid vendor ID")
	}

	avg, count, err := s.repo.Review.GetVendorReviewStats(ctx, vid)
	if err != nil {
		s.log.Error("Failed to get review stats", zap.Error(err), zap.String("vendor_id", vendorID))
		return nil, fmt.Errorf("failed to get review stats")
	}

	return &response.VendorReviewStats{AverageRating: avg, ReviewCount: count}, nil
}

func (s *reviewService) ListMyVendorReviews(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
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

	reviews, err := s.repo.Review.FindAllByVendorID(ctx, vendor.ID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list reviews", zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("failed to list reviews")
	}

	total, err := s.repo.Review.CountByVendorID(ctx, vendor.ID)
	if err != nil {
		s.log.Error("Failed to count reviews", zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("failed to list reviews")
	}

	items := s.toResponses(ctx, reviews)
	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *reviewService) ReplyToReview(ctx context.Context, userID, reviewID string, req *request.ReplyReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("ReplyToReview validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID")
	}
	rid, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, fmt.Errorf("invalid review ID")
	}

	review, err := s.repo.Review.FindByID(ctx, rid)
	if err != nil {
		s.log.Error("Failed to get review", zap.Error(err), zap.String("review_id", reviewID))
		return nil, fmt.Errorf("failed to get review")
	}
	if review == nil {
		return nil, fmt.Errorf("review not found")
	}
	if review.Status != entity.ReviewStatusApproved {
		return nil, fmt.Errorf("cannot reply to a review that is not approved")
	}

	vendor, err := s.repo.Vendor.FindByID(ctx, review.VendorID)
	if err != nil {
		s.log.Error("Failed to get vendor", zap.Error(err), zap.String("vendor_id", review.VendorID.String()))
		return nil, fmt.Errorf("failed to get vendor")
	}
	if vendor == nil || vendor.UserID != uid {
		return nil, fmt.Errorf("unauthorized to reply to this review")
	}

	if err := s.repo.Review.UpdateReply(ctx, rid, req.Reply); err != nil {
		s.log.Error("Failed to reply to review", zap.Error(err), zap.String("review_id", reviewID))
		return nil, fmt.Errorf("failed to reply to review")
	}

	now := time.Now()
	review.VendorReply = &req.Reply
	review.VendorReplyAt = &now

	s.hub.Publish(realtime.Event{Table: "reviews", Action: realtime.ActionUpdate, ID: review.ID.String()})
	s.log.Info("Vendor replied to review", zap.String("review_id", reviewID), zap.String("vendor_id", vendor.ID.String()))

	resp := response.ReviewToResponse(review, "", vendor.BusinessName)
	return &resp, nil
}

// toResponses resolves reviewer and vendor display names per row
func (s *reviewService) toResponses(ctx context.Context, reviews []*entity.Review) []response.ReviewResponse {
	items := make([]response.ReviewResponse, 0, len(reviews))
	vendorNames := make(map[uuid.UUID]string)

	for _, review := range reviews {
		userName := ""
		if user, err := s.repo.User.FindByID(ctx, review.UserID); err == nil && user != nil {
			userName = user.FullName
		}

		vendorName, ok := vendorNames[review.VendorID]
		if !ok {
			if vendor, err := s.repo.Vendor.FindByID(ctx, review.VendorID); err == nil && vendor != nil {
				vendorName = vendor.BusinessName
			}
			vendorNames[review.VendorID] = vendorName
		}

		items = append(items, response.ReviewToResponse(review, userName, vendorName))
	}

	return items
}

// recomputeVendorRating refreshes the denormalized rating columns from
// the approved reviews. Called after any status change that affects them.
func recomputeVendorRating(ctx context.Context, repo *repository.Repository, vendorID uuid.UUID) error {
	avg, count, err := repo.Review.GetVendorReviewStats(ctx, vendorID)
	if err != nil {
		return fmt.Errorf("failed to compute review stats: %w", err)
	}
	if err := repo.Vendor.UpdateRatingStats(ctx, vendorID, avg, count); err != nil {
		return fmt.Errorf("failed to store review stats: %w", err)
	}
	return nil
}
