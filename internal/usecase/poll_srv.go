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

type PollService interface {
	ListActive(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PollResponse], error)
	GetPoll(ctx context.Context, userID, pollID string) (*response.PollResponse, error)
	Vote(ctx context.Context, userID, pollID string, req *request.VoteRequest) (*response.PollResponse, error)
	RequestPoll(ctx context.Context, userID string, req *request.RequestPollRequest) (*response.PollResponse, error)
}

type pollService struct {
	repo *repository.Repository
	hub  *realtime.Hub
	log  *zap.Logger
}

func NewPollService(repo *repository.Repository, hub *realtime.Hub, log *zap.Logger) PollService {
	return &pollService{
		repo: repo,
		hub:  hub,
		log:  log.With(zap.String("service", "poll")),
	}
}

// TallyVotes aggregates raw votes into per-option results. Every option
// gets an entry even with zero votes; with no votes at all every
// percentage is 0. Votes whose index falls outside the option list are
// ignored.
func TallyVotes(options []string, votes []*entity.PollVote) ([]response.PollOptionResult, int64) {
	counts := make([]int64, len(options))
	var total int64

	for _, vote := range votes {
		if vote.OptionIndex < 0 || vote.OptionIndex >= len(options) {
			continue
		}
		counts[vote.OptionIndex]++
		total++
	}

	results := make([]response.PollOptionResult, len(options))
	for i, label := range options {
		percentage := 0.0
		if total > 0 {
			percentage = float64(counts[i]) / float64(total) * 100
		}
		results[i] = response.PollOptionResult{
			Label:      label,
			Votes:      counts[i],
			Percentage: percentage,
		}
	}

	return results, total
}

func (s *pollService) ListActive(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PollResponse], error) {
	polls, err := s.repo.Poll.FindByStatus(ctx, entity.PollStatusActive, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list polls", zap.Error(err))
		return nil, fmt.Errorf("failed to list polls")
	}

	total, err := s.repo.Poll.CountByStatus(ctx, entity.PollStatusActive)
	if err != nil {
		s.log.Error("Failed to count polls", zap.Error(err))
		return nil, fmt.Errorf("failed to list polls")
	}

	items := make([]response.PollResponse, 0, len(polls))
	for _, poll := range polls {
		resp, err := s.buildResponse(ctx, poll, userID)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *pollService) GetPoll(ctx context.Context, userID, pollID string) (*response.PollResponse, error) {
	pid, err := uuid.Parse(pollID)
	if err != nil {
		return nil, fmt.Errorf("invalid poll ID")
	}

	poll, err := s.repo.Poll.FindByID(ctx, pid)
	if err != nil {
		s.log.Error("Failed to get poll", zap.Error(err), zap.String("poll_id", pollID))
		return nil, fmt.Errorf("failed to get poll")
	}
	if poll == nil || poll.Status != entity.PollStatusActive {
		return nil, fmt.Errorf("poll not found")
	}

	return s.buildResponse(ctx, poll, userID)
}

func (s *pollService) Vote(ctx context.Context, userID, pollID string, req *request.VoteRequest) (*response.PollResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Vote validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID")
	}
	pid, err := uuid.Parse(pollID)
	if err != nil {
		return nil, fmt.Errorf("invalid poll ID")
	}

	poll, err := s.repo.Poll.FindByID(ctx, pid)
	if err != nil {
		s.log.Error("Failed to get poll", zap.Error(err), zap.String("poll_id", pollID))
		return nil, fmt.Errorf("failed to get poll")
	}
	if poll == nil || poll.Status != entity.PollStatusActive {
		return nil, fmt.Errorf("poll not found")
	}
	if poll.Ended(time.Now()) {
		return nil, fmt.Errorf("poll has ended")
	}
	if *req.OptionIndex >= len(poll.Options) {
		return nil, fmt.Errorf("invalid option index")
	}

	vote := &entity.PollVote{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		PollID:      pid,
		UserID:      uid,
		OptionIndex: *req.OptionIndex,
	}

	// insert-or-overwrite keeps one row per (poll, user) even under
	// concurrent requests
	if err := s.repo.PollVote.Upsert(ctx, vote); err != nil {
		s.log.Error("Failed to record vote", zap.Error(err), zap.String("poll_id", pollID))
		return nil, fmt.Errorf("failed to record vote")
	}

	s.hub.Publish(realtime.Event{Table: "poll_votes", Action: realtime.ActionInsert, ID: pid.String()})
	s.log.Info("Vote recorded",
		zap.String("poll_id", pollID),
		zap.String("user_id", userID),
		zap.Int("option_index", *req.OptionIndex),
	)

	return s.buildResponse(ctx, poll, userID)
}

func (s *pollService) RequestPoll(ctx context.Context, userID string, req *request.RequestPollRequest) (*response.PollResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("RequestPoll validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID")
	}

	description := fmt.Sprintf("Reason: %s", req.Reason)
	if req.Description != nil && *req.Description != "" {
		description = fmt.Sprintf("%s\n\nReason: %s", *req.Description, req.Reason)
	}

	poll := &entity.Poll{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Title:       req.Title,
		Description: &description,
		Options:     req.Options,
		Status:      entity.PollStatusRequested,
		CreatedBy:   uid,
	}

	if err := s.repo.Poll.Create(ctx, poll); err != nil {
		s.log.Error("Failed to create poll request", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to submit poll request")
	}

	s.log.Info("Poll requested", zap.String("poll_id", poll.ID.String()), zap.String("user_id", userID))

	results, _ := TallyVotes(poll.Options, nil)
	resp := response.PollToResponse(poll, results, 0, nil)
	return &resp, nil
}

func (s *pollService) buildResponse(ctx context.Context, poll *entity.Poll, userID string) (*response.PollResponse, error) {
	votes, err := s.repo.PollVote.FindByPollID(ctx, poll.ID)
	if err != nil {
		s.log.Error("Failed to list votes", zap.Error(err), zap.String("poll_id", poll.ID.String()))
		return nil, fmt.Errorf("failed to tally poll")
	}

	results, total := TallyVotes(poll.Options, votes)

	var userVote *int
	if uid, err := uuid.Parse(userID); err == nil {
		for _, vote := range votes {
			if vote.UserID == uid {
				idx := vote.OptionIndex
				userVote = &idx
				break
			}
		}
	}

	resp := response.PollToResponse(poll, results, total, userVote)
	return &resp, nil
}
