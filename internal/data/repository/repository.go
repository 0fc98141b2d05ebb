package repository

import (
	"rate-am/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Role     RoleRepository
	Session  SessionRepository
	OTP      OTPRepository
	Category CategoryRepository
	Vendor   VendorRepository
	Review   ReviewRepository
	Poll     PollRepository
	PollVote PollVoteRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Role:     NewRoleRepository(db, log),
		Session:  NewSessionRepository(db, log),
		OTP:      NewOTPRepository(db, log),
		Category: NewCategoryRepository(db, log),
		Vendor:   NewVendorRepository(db, log),
		Review:   NewReviewRepository(db, log),
		Poll:     NewPollRepository(db, log),
		PollVote: NewPollVoteRepository(db, log),
	}
}
