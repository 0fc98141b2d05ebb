package usecase

import (
	"testing"

	"rate-am/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vote(optionIndex int) *entity.PollVote {
	return &entity.PollVote{
		BaseSimple:  entity.BaseSimple{ID: uuid.New()},
		PollID:      uuid.New(),
		UserID:      uuid.New(),
		OptionIndex: optionIndex,
	}
}

func TestTallyVotes_NoVotes(t *testing.T) {
	options := []string{"Pizza", "Sushi", "Burgers"}

	results, total := TallyVotes(options, nil)

	require.Len(t, results, 3)
	assert.Equal(t, int64(0), total)
	for i, result := range results {
		assert.Equal(t, options[i], result.Label)
		assert.Equal(t, int64(0), result.Votes)
		assert.Equal(t, 0.0, result.Percentage)
	}
}

func TestTallyVotes_Distribution(t *testing.T) {
	options := []string{"Pizza", "Sushi"}
	votes := []*entity.PollVote{vote(0), vote(0), vote(1)}

	results, total := TallyVotes(options, votes)

	require.Len(t, results, 2)
	assert.Equal(t, int64(3), total)

	assert.Equal(t, "Pizza", results[0].Label)
	assert.Equal(t, int64(2), results[0].Votes)
	assert.InDelta(t, 66.67, results[0].Percentage, 0.01)

	assert.Equal(t, "Sushi", results[1].Label)
	assert.Equal(t, int64(1), results[1].Votes)
	assert.InDelta(t, 33.33, results[1].Percentage, 0.01)
}

func TestTallyVotes_CountsSumToTotal(t *testing.T) {
	options := []string{"A", "B", "C", "D"}
	votes := []*entity.PollVote{
		vote(0), vote(1), vote(1), vote(2), vote(3), vote(3), vote(3),
	}

	results, total := TallyVotes(options, votes)

	var sum int64
	var pctSum float64
	for _, result := range results {
		sum += result.Votes
		pctSum += result.Percentage
	}

	assert.Equal(t, total, sum)
	assert.InDelta(t, 100.0, pctSum, 0.001)
}

func TestTallyVotes_OutOfRangeIgnored(t *testing.T) {
	options := []string{"Yes", "No"}
	votes := []*entity.PollVote{vote(0), vote(5), vote(-1), vote(1)}

	results, total := TallyVotes(options, votes)

	assert.Equal(t, int64(2), total)
	assert.Equal(t, int64(1), results[0].Votes)
	assert.Equal(t, int64(1), results[1].Votes)
}

func TestTallyVotes_SingleOptionTakesAll(t *testing.T) {
	options := []string{"Only", "Other"}
	votes := []*entity.PollVote{vote(0), vote(0), vote(0)}

	results, _ := TallyVotes(options, votes)

	assert.Equal(t, 100.0, results[0].Percentage)
	assert.Equal(t, 0.0, results[1].Percentage)
}
