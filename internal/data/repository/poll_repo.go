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

type PollRepository interface {
	Create(ctx context.Context, poll *entity.Poll) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Poll, error)
	FindByStatus(ctx context.Context, status entity.PollStatus, limit, offset int) ([]*entity.Poll, error)
	CountByStatus(ctx context.Context, status entity.PollStatus) (int64, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Poll, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PollStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type pollRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPollRepository(db database.PgxIface, log *zap.Logger) PollRepository {
	return &pollRepository{
		db:  db,
		log: log.With(zap.String("repository", "poll")),
	}
}

const pollColumns = `id, title, description, options, status, ends_at, created_by, created_at`

func scanPoll(row pgx.Row) (*entity.Poll, error) {
	var poll entity.Poll
	err := row.Scan(
		&poll.ID,
		&poll.Title,
		&poll.Description,
		&poll.Options,
		&poll.Status,
		&poll.EndsAt,
		&poll.CreatedBy,
		&poll.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &poll, nil
}

func (r *pollRepository) Create(ctx context.Context, poll *entity.Poll) error {
	query := `
		INSERT INTO polls (id, title, description, options, status, ends_at, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		poll.ID,
		poll.Title,
		poll.Description,
		poll.Options,
		poll.Status,
		poll.EndsAt,
		poll.CreatedBy,
		poll.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create poll",
			zap.Error(err),
			zap.String("title", poll.Title),
			zap.String("status", string(poll.Status)),
		)
		return fmt.Errorf("create poll %q: %w", poll.Title, err)
	}

	return nil
}

func (r *pollRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Poll, error) {
	query := `SELECT ` + pollColumns + ` FROM polls WHERE id = $1`

	poll, err := scanPoll(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find poll by ID",
			zap.Error(err),
			zap.String("poll_id", id.String()),
		)
		return nil, fmt.Errorf("find poll by ID %s: %w", id.String(), err)
	}

	return poll, nil
}

func (r *pollRepository) FindByStatus(ctx context.Context, status entity.PollStatus, limit, offset int) ([]*entity.Poll, error) {
	query := `
		SELECT ` + pollColumns + `
		FROM polls
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	return r.queryPolls(ctx, query, status, limit, offset)
}

func (r *pollRepository) CountByStatus(ctx context.Context, status entity.PollStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM polls WHERE status = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, status).Scan(&count); err != nil {
		r.log.Error("Failed to count polls by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return 0, fmt.Errorf("count polls with status %s: %w", status, err)
	}

	return count, nil
}

func (r *pollRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Poll, error) {
	query := `
		SELECT ` + pollColumns + `
		FROM polls
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	return r.queryPolls(ctx, query, limit, offset)
}

func (r *pollRepository) queryPolls(ctx context.Context, query string, args ...any) ([]*entity.Poll, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query polls", zap.Error(err))
		return nil, fmt.Errorf("query polls: %w", err)
	}
	defer rows.Close()

	var polls []*entity.Poll
	for rows.Next() {
		poll, err := scanPoll(rows)
		if err != nil {
			r.log.Error("Failed to scan poll row", zap.Error(err))
			return nil, fmt.Errorf("scan poll row: %w", err)
		}
		polls = append(polls, poll)
	}

	return polls, nil
}

func (r *pollRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM polls`).Scan(&count); err != nil {
		r.log.Error("Failed to count polls", zap.Error(err))
		return 0, fmt.Errorf("count polls: %w", err)
	}

	return count, nil
}

func (r *pollRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PollStatus) error {
	query := `
		UPDATE polls
		SET status = $2
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update poll status",
			zap.Error(err),
			zap.String("poll_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update poll %s status: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("poll %s not found", id.String())
	}

	return nil
}

func (r *pollRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM polls WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete poll",
			zap.Error(err),
			zap.String("poll_id", id.String()),
		)
		return fmt.Errorf("delete poll %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("poll %s not found", id.String())
	}

	r.log.Info("Poll deleted", zap.String("poll_id", id.String()))
	return nil
}
