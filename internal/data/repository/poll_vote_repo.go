package repository

import (
	"context"
	"fmt"

	"rate-am/internal/data/entity"
	"rate-am/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PollVoteRepository interface {
	// Upsert inserts the vote or, when the (poll, user) pair already voted,
	// overwrites the recorded option. Atomic at the storage layer.
	Upsert(ctx context.Context, vote *entity.PollVote) error
	FindByPollID(ctx context.Context, pollID uuid.UUID) ([]*entity.PollVote, error)
	FindByPollAndUser(ctx context.Context, pollID, userID uuid.UUID) (*entity.PollVote, error)
	CountByPollID(ctx context.Context, pollID uuid.UUID) (int64, error)
}

type pollVoteRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPollVoteRepository(db database.PgxIface, log *zap.Logger) PollVoteRepository {
	return &pollVoteRepository{
		db:  db,
		log: log.With(zap.String("repository", "poll_vote")),
	}
}

func (r *pollVoteRepository) Upsert(ctx context.Context, vote *entity.PollVote) error {
	// relies on UNIQUE (poll_id, user_id); concurrent duplicate submissions
	// collapse to a single row
	query := `
		INSERT INTO poll_votes (id, poll_id, user_id, option_index, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (poll_id, user_id)
		DO UPDATE SET option_index = EXCLUDED.option_index
	`

	_, err := r.db.Exec(ctx, query,
		vote.ID,
		vote.PollID,
		vote.UserID,
		vote.OptionIndex,
		vote.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to upsert poll vote",
			zap.Error(err),
			zap.String("poll_id", vote.PollID.String()),
			zap.String("user_id", vote.UserID.String()),
			zap.Int("option_index", vote.OptionIndex),
		)
		return fmt.Errorf("upsert vote for poll %s by user %s: %w",
			vote.PollID.String(), vote.UserID.String(), err)
	}

	return nil
}

func (r *pollVoteRepository) FindByPollID(ctx context.Context, pollID uuid.UUID) ([]*entity.PollVote, error) {
	query := `
		SELECT id, poll_id, user_id, option_index, created_at
		FROM poll_votes
		WHERE poll_id = $1
	`

	rows, err := r.db.Query(ctx, query, pollID)
	if err != nil {
		r.log.Error("Failed to find votes by poll ID",
			zap.Error(err),
			zap.String("poll_id", pollID.String()),
		)
		return nil, fmt.Errorf("find votes for poll %s: %w", pollID.String(), err)
	}
	defer rows.Close()

	var votes []*entity.PollVote
	for rows.Next() {
		var vote entity.PollVote
		err := rows.Scan(
			&vote.ID,
			&vote.PollID,
			&vote.UserID,
			&vote.OptionIndex,
			&vote.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan poll vote row", zap.Error(err))
			return nil, fmt.Errorf("scan poll vote row: %w", err)
		}
		votes = append(votes, &vote)
	}

	return votes, nil
}

func (r *pollVoteRepository) FindByPollAndUser(ctx context.Context, pollID, userID uuid.UUID) (*entity.PollVote, error) {
	query := `
		SELECT id, poll_id, user_id, option_index, created_at
		FROM poll_votes
		WHERE poll_id = $1 AND user_id = $2
	`

	var vote entity.PollVote
	err := r.db.QueryRow(ctx, query, pollID, userID).Scan(
		&vote.ID,
		&vote.PollID,
		&vote.UserID,
		&vote.OptionIndex,
		&vote.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find vote by poll and user",
			zap.Error(err),
			zap.String("poll_id", pollID.String()),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find vote for poll %s by user %s: %w",
			pollID.String(), userID.String(), err)
	}

	return &vote, nil
}

func (r *pollVoteRepository) CountByPollID(ctx context.Context, pollID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM poll_votes WHERE poll_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, pollID).Scan(&count); err != nil {
		r.log.Error("Failed to count votes by poll ID",
			zap.Error(err),
			zap.String("poll_id", pollID.String()),
		)
		return 0, fmt.Errorf("count votes for poll %s: %w", pollID.String(), err)
	}

	return count, nil
}
