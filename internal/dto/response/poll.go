package response

import (
	"time"

	"rate-am/internal/data/entity"
)

type PollOptionResult struct {
	Label      string  `json:"label"`
	Votes      int64   `json:"votes"`
	Percentage float64 `json:"percentage"`
}

type PollResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description *string            `json:"description,omitempty"`
	Status      entity.PollStatus  `json:"status"`
	EndsAt      *time.Time         `json:"ends_at,omitempty"`
	Results     []PollOptionResult `json:"results"`
	TotalVotes  int64              `json:"total_votes"`
	UserVote    *int               `json:"user_vote,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

func PollToResponse(poll *entity.Poll, results []PollOptionResult, totalVotes int64, userVote *int) PollResponse {
	return PollResponse{
		ID:          poll.ID.String(),
		Title:       poll.Title,
		Description: poll.Description,
		Status:      poll.Status,
		EndsAt:      poll.EndsAt,
		Results:     results,
		TotalVotes:  totalVotes,
		UserVote:    userVote,
		CreatedAt:   poll.CreatedAt,
	}
}
