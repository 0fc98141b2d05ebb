package usecase

import (
	"rate-am/internal/data/repository"
	"rate-am/pkg/realtime"
	"rate-am/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth   AuthService
	User   UserService
	Vendor VendorService
	Review ReviewService
	Poll   PollService
	Admin  AdminService
}

func NewService(repo *repository.Repository, config *utils.Config, hub *realtime.Hub, log *zap.Logger) *Service {
	return &Service{
		Auth:   NewAuthService(repo, config, log),
		User:   NewUserService(repo, log),
		Vendor: NewVendorService(repo, log),
		Review: NewReviewService(repo, hub, log),
		Poll:   NewPollService(repo, hub, log),
		Admin:  NewAdminService(repo, hub, log),
	}
}
