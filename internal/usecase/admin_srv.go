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

type AdminService interface {
	ListUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	UpdateUserRole(ctx context.Context, userID string, req *request.UpdateUserRoleRequest) error
	SetUserActive(ctx context.Context, userID string, active bool) error
	ListVendors(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.VendorResponse], error)
	UpdateVendorStatus(ctx context.Context, vendorID string, req *request.UpdateVendorStatusRequest) error
	ListReviews(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	UpdateReviewStatus(ctx context.Context, reviewID string, req *request.UpdateReviewStatusRequest) error
	ListPolls(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PollResponse], error)
	CreatePoll(ctx context.Context, adminID string, req *request.CreatePollRequest) (*response.PollResponse, error)
	UpdatePollStatus(ctx context.Context, pollID string, req *request.UpdatePollStatusRequest) error
	DeletePoll(ctx context.Context, pollID string) error
	GetAnalytics(ctx context.Context) (*response.AnalyticsResponse, error)
}

type adminService struct {
	repo *repository.Repository
	hub  *realtime.Hub
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, hub *realtime.Hub, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		hub:  hub,
		log:  log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) ListUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := s.repo.User.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users")
	}

	total, err := s.repo.User.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users")
	}

	items := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		roles, err := s.repo.Role.FindByUserID(ctx, user.ID)
		if err != nil {
			s.log.Warn("Failed to load roles", zap.Error(err), zap.String("user_id", user.ID.String()))
		}
		items = append(items, response.UserToResponse(user, entity.ResolveRole(roles)))
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *adminService) UpdateUserRole(ctx context.Context, userID string, req *request.UpdateUserRoleRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("UpdateUserRole validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID")
	}

	user, err := s.repo.User.FindByID(ctx, uid)
	if err != nil {
		s.log.Error("Failed to get user", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("failed to get user")
	}
	if user == nil {
		return fmt.Errorf("user not found")
	}

	role := &entity.UserRole{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     uid,
		Role:       entity.Role(req.Role),
	}

	if err := s.repo.Role.Replace(ctx, uid, role); err != nil {
		s.log.Error("Failed to update role", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("failed to update role")
	}

	s.log.Info("User role updated", zap.String("user_id", userID), zap.String("role", req.Role))
	return nil
}

func (s *adminService) SetUserActive(ctx context.Context, userID string, active bool) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID")
	}

	if err := s.repo.User.SetActive(ctx, uid, active); err != nil {
		s.log.Error("Failed to update user status", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("failed to update user status")
	}

	// a deactivated user loses every live session
	if !active {
		if err := s.repo.Session.RevokeAllUserSessions(ctx, uid); err != nil {
			s.log.Warn("Failed to revoke sessions", zap.Error(err), zap.String("user_id", userID))
		}
	}

	s.log.Info("User status updated", zap.String("user_id", userID), zap.Bool("active", active))
	return nil
}

func (s *adminService) ListVendors(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.VendorResponse], error) {
	vendors, err := s.repo.Vendor.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list vendors", zap.Error(err))
		return nil, fmt.Errorf("failed to list vendors")
	}

	total, err := s.repo.Vendor.Count(ctx)
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

func (s *adminService) UpdateVendorStatus(ctx context.Context, vendorID string, req *request.UpdateVendorStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("UpdateVendorStatus validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	vid, err := uuid.Parse(vendorID)
	if err != nil {
		return fmt.Errorf("invalid vendor ID")
	}

	if err := s.repo.Vendor.UpdateStatus(ctx, vid, entity.VendorStatus(req.Status)); err != nil {
		s.log.Error("Failed to update vendor status", zap.Error(err), zap.String("vendor_id", vendorID))
		return fmt.Errorf("failed to update vendor status")
	}

	s.hub.Publish(realtime.Event{Table: "vendors", Action: realtime.ActionUpdate, ID: vendorID})
	s.log.Info("Vendor status updated", zap.String("vendor_id", vendorID), zap.String("status", req.Status))
	return nil
}

func (s *adminService) ListReviews(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	reviews, err := s.repo.Review.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list reviews", zap.Error(err))
		return nil, fmt.Errorf("failed to list reviews")
	}

	total, err := s.repo.Review.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count reviews", zap.Error(err))
		return nil, fmt.Errorf("failed to list reviews")
	}

	items := make([]response.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		userName := ""
		if user, err := s.repo.User.FindByID(ctx, review.UserID); err == nil && user != nil {
			userName = user.FullName
		}
		vendorName := ""
		if vendor, err := s.repo.Vendor.FindByID(ctx, review.VendorID); err == nil && vendor != nil {
			vendorName = vendor.BusinessName
		}
		items = append(items, response.ReviewToResponse(review, userName, vendorName))
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *adminService) UpdateReviewStatus(ctx context.Context, reviewID string, req *request.UpdateReviewStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("UpdateReviewStatus validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	rid, err := uuid.Parse(reviewID)
	if err != nil {
		return fmt.Errorf("invalid review ID")
	}

	review, err := s.repo.Review.FindByID(ctx, rid)
	if err != nil {
		s.log.Error("Failed to get review", zap.Error(err), zap.String("review_id", reviewID))
		return fmt.Errorf("failed to get review")
	}
	if review == nil {
		return fmt.Errorf("review not found")
	}

	if err := s.repo.Review.UpdateStatus(ctx, rid, entity.ReviewStatus(req.Status)); err != nil {
		s.log.Error("Failed to update review status", zap.Error(err), zap.String("review_id", reviewID))
		return fmt.Errorf("failed to update review status")
	}

	if err := recomputeVendorRating(ctx, s.repo, review.VendorID); err != nil {
		s.log.Error("Failed to recompute vendor rating",
			zap.Error(err),
			zap.String("vendor_id", review.VendorID.String()),
		)
	}

	s.hub.Publish(realtime.Event{Table: "reviews", Action: realtime.ActionUpdate, ID: reviewID})
	s.hub.Publish(realtime.Event{Table: "vendors", Action: realtime.ActionUpdate, ID: review.VendorID.String()})
	s.log.Info("Review status updated", zap.String("review_id", reviewID), zap.String("status", req.Status))
	return nil
}

func (s *adminService) ListPolls(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PollResponse], error) {
	polls, err := s.repo.Poll.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list polls", zap.Error(err))
		return nil, fmt.Errorf("failed to list polls")
	}

	total, err := s.repo.Poll.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count polls", zap.Error(err))
		return nil, fmt.Errorf("failed to list polls")
	}

	items := make([]response.PollResponse, 0, len(polls))
	for _, poll := range polls {
		votes, err := s.repo.PollVote.FindByPollID(ctx, poll.ID)
		if err != nil {
			s.log.Error("Failed to list votes", zap.Error(err), zap.String("poll_id", poll.ID.String()))
			return nil, fmt.Errorf("failed to tally poll")
		}
		results, totalVotes := TallyVotes(poll.Options, votes)
		items = append(items, response.PollToResponse(poll, results, totalVotes, nil))
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *adminService) CreatePoll(ctx context.Context, adminID string, req *request.CreatePollRequest) (*response.PollResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("CreatePoll validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	uid, err := uuid.Parse(adminID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID")
	}

	var endsAt *time.Time
	if req.EndsAt != nil && *req.EndsAt != "" {
		parsed, err := time.Parse(time.RFC3339, *req.EndsAt)
		if err != nil {
			return nil, fmt.Errorf("invalid ends_at: must be RFC 3339")
		}
		endsAt = &parsed
	}

	poll := &entity.Poll{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Title:       req.Title,
		Description: req.Description,
		Options:     req.Options,
		Status:      entity.PollStatusActive,
		EndsAt:      endsAt,
		CreatedBy:   uid,
	}

	if err := s.repo.Poll.Create(ctx, poll); err != nil {
		s.log.Error("Failed to create poll", zap.Error(err))
		return nil, fmt.Errorf("failed to create poll")
	}

	s.hub.Publish(realtime.Event{Table: "polls", Action: realtime.ActionInsert, ID: poll.ID.String()})
	s.log.Info("Poll created", zap.String("poll_id", poll.ID.String()))

	results, _ := TallyVotes(poll.Options, nil)
	resp := response.PollToResponse(poll, results, 0, nil)
	return &resp, nil
}

func (s *adminService) UpdatePollStatus(ctx context.Context, pollID string, req *request.UpdatePollStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("UpdatePollStatus validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	pid, err := uuid.Parse(pollID)
	if err != nil {
		return fmt.Errorf("invalid poll ID")
	}

	if err := s.repo.Poll.UpdateStatus(ctx, pid, entity.PollStatus(req.Status)); err != nil {
		s.log.Error("Failed to update poll status", zap.Error(err), zap.String("poll_id", pollID))
		return fmt.Errorf("failed to update poll status")
	}

	s.hub.Publish(realtime.Event{Table: "polls", Action: realtime.ActionUpdate, ID: pollID})
	s.log.Info("Poll status updated", zap.String("poll_id", pollID), zap.String("status", req.Status))
	return nil
}

func (s *adminService) DeletePoll(ctx context.Context, pollID string) error {
	pid, err := uuid.Parse(pollID)
	if err != nil {
		return fmt.Errorf("invalid poll ID")
	}

	if err := s.repo.Poll.Delete(ctx, pid); err != nil {
		s.log.Error("Failed to delete poll", zap.Error(err), zap.String("poll_id", pollID))
		return fmt.Errorf("failed to delete poll")
	}

	s.hub.Publish(realtime.Event{Table: "polls", Action: realtime.ActionDelete, ID: pollID})
	s.log.Info("Poll deleted", zap.String("poll_id", pollID))
	return nil
}

func (s *adminService) GetAnalytics(ctx context.Context) (*response.AnalyticsResponse, error) {
	totalUsers, err := s.repo.User.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("failed to load analytics")
	}

	totalVendors, err := s.repo.Vendor.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count vendors", zap.Error(err))
		return nil, fmt.Errorf("failed to load analytics")
	}

	vendorsByStatus, err := s.repo.Vendor.CountByStatus(ctx)
	if err != nil {
		s.log.Error("Failed to count vendors by status", zap.Error(err))
		return nil, fmt.Errorf("failed to load analytics")
	}

	totalReviews, err := s.repo.Review.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count reviews", zap.Error(err))
		return nil, fmt.Errorf("failed to load analytics")
	}

	reviewsByStatus, err := s.repo.Review.CountByStatus(ctx)
	if err != nil {
		s.log.Error("Failed to count reviews by status", zap.Error(err))
		return nil, fmt.Errorf("failed to load analytics")
	}

	avgRating, err := s.repo.Review.GetAverageApprovedRating(ctx)
	if err != nil {
		s.log.Error("Failed to compute average rating", zap.Error(err))
		return nil, fmt.Errorf("failed to load analytics")
	}

	totalCategories, err := s.repo.Category.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count categories", zap.Error(err))
		return nil, fmt.Errorf("failed to load analytics")
	}

	activePolls, err := s.repo.Poll.CountByStatus(ctx, entity.PollStatusActive)
	if err != nil {
		s.log.Error("Failed to count polls", zap.Error(err))
		return nil, fmt.Errorf("failed to load analytics")
	}

	vendorStats := make(map[string]int64, len(vendorsByStatus))
	for status, count := range vendorsByStatus {
		vendorStats[string(status)] = count
	}
	reviewStats := make(map[string]int64, len(reviewsByStatus))
	for status, count := range reviewsByStatus {
		reviewStats[string(status)] = count
	}

	return &response.AnalyticsResponse{
		TotalUsers:      totalUsers,
		TotalVendors:    totalVendors,
		VendorsByStatus: vendorStats,
		TotalReviews:    totalReviews,
		ReviewsByStatus: reviewStats,
		AverageRating:   avgRating,
		TotalCategories: totalCategories,
		ActivePolls:     activePolls,
	}, nil
}
