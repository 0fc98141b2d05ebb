package usecase

import (
	"context"
	"testing"
	"time"

	"rate-am/internal/data/entity"
	"rate-am/internal/data/repository"
	"rate-am/internal/dto/request"
	"rate-am/pkg/realtime"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePollRepo struct {
	polls map[uuid.UUID]*entity.Poll
}

func (f *fakePollRepo) Create(ctx context.Context, poll *entity.Poll) error {
	f.polls[poll.ID] = poll
	return nil
}

func (f *fakePollRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Poll, error) {
	return f.polls[id], nil
}

func (f *fakePollRepo) FindByStatus(ctx context.Context, status entity.PollStatus, limit, offset int) ([]*entity.Poll, error) {
	var out []*entity.Poll
	for _, poll := range f.polls {
		if poll.Status == status {
			out = append(out, poll)
		}
	}
	return out, nil
}

func (f *fakePollRepo) CountByStatus(ctx context.Context, status entity.PollStatus) (int64, error) {
	polls, _ := f.FindByStatus(ctx, status, 0, 0)
	return int64(len(polls)), nil
}

func (f *fakePollRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Poll, error) {
	var out []*entity.Poll
	for _, poll := range f.polls {
		out = append(out, poll)
	}
	return out, nil
}

func (f *fakePollRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.polls)), nil
}

func (f *fakePollRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PollStatus) error {
	f.polls[id].Status = status
	return nil
}

func (f *fakePollRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.polls, id)
	return nil
}

// fakePollVoteRepo enforces the one-row-per-(poll, user) constraint the
// real table has.
type fakePollVoteRepo struct {
	votes map[uuid.UUID]map[uuid.UUID]*entity.PollVote
}

func newFakePollVoteRepo() *fakePollVoteRepo {
	return &fakePollVoteRepo{votes: make(map[uuid.UUID]map[uuid.UUID]*entity.PollVote)}
}

func (f *fakePollVoteRepo) Upsert(ctx context.Context, vote *entity.PollVote) error {
	if f.votes[vote.PollID] == nil {
		f.votes[vote.PollID] = make(map[uuid.UUID]*entity.PollVote)
	}
	f.votes[vote.PollID][vote.UserID] = vote
	return nil
}

func (f *fakePollVoteRepo) FindByPollID(ctx context.Context, pollID uuid.UUID) ([]*entity.PollVote, error) {
	var out []*entity.PollVote
	for _, vote := range f.votes[pollID] {
		out = append(out, vote)
	}
	return out, nil
}

func (f *fakePollVoteRepo) FindByPollAndUser(ctx context.Context, pollID, userID uuid.UUID) (*entity.PollVote, error) {
	return f.votes[pollID][userID], nil
}

func (f *fakePollVoteRepo) CountByPollID(ctx context.Context, pollID uuid.UUID) (int64, error) {
	return int64(len(f.votes[pollID])), nil
}

func activePoll(options []string) *entity.Poll {
	return &entity.Poll{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Title:      "Where to eat",
		Options:    options,
		Status:     entity.PollStatusActive,
		CreatedBy:  uuid.New(),
	}
}

func newPollFixture(polls ...*entity.Poll) (PollService, *fakePollVoteRepo) {
	pollRepo := &fakePollRepo{polls: make(map[uuid.UUID]*entity.Poll)}
	for _, poll := range polls {
		pollRepo.polls[poll.ID] = poll
	}
	voteRepo := newFakePollVoteRepo()

	repo := &repository.Repository{
		Poll:     pollRepo,
		PollVote: voteRepo,
	}

	return NewPollService(repo, realtime.NewHub(), zap.NewNop()), voteRepo
}

func intPtr(v int) *int { return &v }

func TestVote_RecordsAndTallies(t *testing.T) {
	poll := activePoll([]string{"Pizza", "Sushi"})
	service, _ := newPollFixture(poll)

	userID := uuid.New()
	resp, err := service.Vote(context.Background(), userID.String(), poll.ID.String(),
		&request.VoteRequest{OptionIndex: intPtr(1)})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.TotalVotes)
	assert.Equal(t, int64(1), resp.Results[1].Votes)
	require.NotNil(t, resp.UserVote)
	assert.Equal(t, 1, *resp.UserVote)
}

func TestVote_RepeatOverwritesInsteadOfAdding(t *testing.T) {
	poll := activePoll([]string{"Pizza", "Sushi"})
	service, voteRepo := newPollFixture(poll)

	userID := uuid.New()
	ctx := context.Background()

	_, err := service.Vote(ctx, userID.String(), poll.ID.String(),
		&request.VoteRequest{OptionIndex: intPtr(0)})
	require.NoError(t, err)

	resp, err := service.Vote(ctx, userID.String(), poll.ID.String(),
		&request.VoteRequest{OptionIndex: intPtr(1)})
	require.NoError(t, err)

	count, _ := voteRepo.CountByPollID(ctx, poll.ID)
	assert.Equal(t, int64(1), count, "revoting must keep a single row")
	assert.Equal(t, int64(1), resp.TotalVotes)
	assert.Equal(t, int64(0), resp.Results[0].Votes)
	assert.Equal(t, int64(1), resp.Results[1].Votes)
}

func TestVote_RejectsOutOfRangeOption(t *testing.T) {
	poll := activePoll([]string{"Pizza", "Sushi"})
	service, _ := newPollFixture(poll)

	_, err := service.Vote(context.Background(), uuid.NewString(), poll.ID.String(),
		&request.VoteRequest{OptionIndex: intPtr(2)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid option")
}

func TestVote_RejectsEndedPoll(t *testing.T) {
	poll := activePoll([]string{"Pizza", "Sushi"})
	past := time.Now().Add(-time.Hour)
	poll.EndsAt = &past
	service, _ := newPollFixture(poll)

	_, err := service.Vote(context.Background(), uuid.NewString(), poll.ID.String(),
		&request.VoteRequest{OptionIndex: intPtr(0)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ended")
}

func TestVote_RejectsRequestedPoll(t *testing.T) {
	poll := activePoll([]string{"Pizza", "Sushi"})
	poll.Status = entity.PollStatusRequested
	service, _ := newPollFixture(poll)

	_, err := service.Vote(context.Background(), uuid.NewString(), poll.ID.String(),
		&request.VoteRequest{OptionIndex: intPtr(0)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetPoll_AnonymousSeesNoUserVote(t *testing.T) {
	poll := activePoll([]string{"Pizza", "Sushi"})
	service, _ := newPollFixture(poll)

	_, err := service.Vote(context.Background(), uuid.NewString(), poll.ID.String(),
		&request.VoteRequest{OptionIndex: intPtr(0)})
	require.NoError(t, err)

	resp, err := service.GetPoll(context.Background(), "", poll.ID.String())
	require.NoError(t, err)
	assert.Nil(t, resp.UserVote)
	assert.Equal(t, int64(1), resp.TotalVotes)
}
