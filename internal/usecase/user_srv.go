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

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.UserResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*response.UserResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.repo.User.FindByID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to get profile", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", userID)
	}

	roles, err := s.repo.Role.FindByUserID(ctx, userUUID)
	if err != nil {
		s.log.Warn("Role lookup failed, defaulting to user",
			zap.Error(err), zap.String("user_id", userID))
		roles = nil
	}

	resp := response.UserToResponse(user, entity.ResolveRole(roles))
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.repo.User.FindByID(ctx, userUUID)
	if err != nil || user == nil {
		return nil, fmt.Errorf("user %s not found", userID)
	}

	updated := false

	if req.FullName != nil && *req.FullName != user.FullName {
		user.FullName = *req.FullName
		updated = true
	}
	if req.Phone != nil {
		user.Phone = req.Phone
		updated = true
	}
	if req.Whatsapp != nil {
		user.Whatsapp = req.Whatsapp
		updated = true
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
		updated = true
	}

	if updated {
		user.UpdatedAt = time.Now()
		if err := s.repo.User.Update(ctx, user); err != nil {
			s.log.Error("Failed to update profile", zap.Error(err), zap.String("user_id", userID))
			return nil, fmt.Errorf("update profile: %w", err)
		}

		s.log.Info("Profile updated", zap.String("user_id", userID))
	}

	roles, err := s.repo.Role.FindByUserID(ctx, userUUID)
	if err != nil {
		roles = nil
	}

	resp := response.UserToResponse(user, entity.ResolveRole(roles))
	return &resp, nil
}
