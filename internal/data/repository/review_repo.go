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

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindByUserAndVendor(ctx context.Context, userID, vendorID uuid.UUID) (*entity.Review, error)
	FindApprovedByVendorID(ctx context.Context, vendorID uuid.UUID, limit, offset int) ([]*entity.Review, error)
	CountApprovedByVendorID(ctx context.Context, vendorID uuid.UUID) (int64, error)
	FindAllByVendorID(ctx context.Context, vendorID uuid.UUID, limit, offset int) ([]*entity.Review, error)
	CountByVendorID(ctx context.Context, vendorID uuid.UUID) (int64, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Review, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[entity.ReviewStatus]int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) error
	UpdateReply(ctx context.Context, id uuid.UUID, reply string) error

	// Business queries
	GetVendorReviewStats(ctx context.Context, vendorID uuid.UUID) (float64, int64, error) // avg rating, count over approved
	GetAverageApprovedRating(ctx context.Context) (float64, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

const reviewColumns = `id, user_id, vendor_id, rating, comment, status,
	       vendor_reply, vendor_reply_at, customer_contact_visible, created_at`

func scanReview(row pgx.Row) (*entity.Review, error) {
	var review entity.Review
	err := row.Scan(
		&review.ID,
		&review.UserID,
		&review.VendorID,
		&review.Rating,
		&review.Comment,
		&review.Status,
		&review.VendorReply,
		&review.VendorReplyAt,
		&review.ContactVisible,
		&review.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, vendor_id, rating, comment, status,
		                     customer_contact_visible, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.VendorID,
		review.Rating,
		review.Comment,
		review.Status,
		review.ContactVisible,
		review.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.String("vendor_id", review.VendorID.String()),
		)
		return fmt.Errorf("create review for vendor %s by user %s: %w",
			review.VendorID.String(), review.UserID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	review, err := scanReview(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return review, nil
}

func (r *reviewRepository) FindByUserAndVendor(ctx context.Context, userID, vendorID uuid.UUID) (*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE user_id = $1 AND vendor_id = $2
		LIMIT 1
	`

	review, err := scanReview(r.db.QueryRow(ctx, query, userID, vendorID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by user and vendor",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("vendor_id", vendorID.String()),
		)
		return nil, fmt.Errorf("find review by user %s and vendor %s: %w",
			userID.String(), vendorID.String(), err)
	}

	return review, nil
}

func (r *reviewRepository) FindApprovedByVendorID(ctx context.Context, vendorID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE vendor_id = $1 AND status = $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	return r.queryReviews(ctx, query, vendorID, entity.ReviewStatusApproved, limit, offset)
}

func (r *reviewRepository) CountByVendorID(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE vendor_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, vendorID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reviews",
			zap.Error(err),
			zap.String("vendor_id", vendorID.String()),
		)
		return 0, fmt.Errorf("count reviews for vendor %s: %w", vendorID.String(), err)
	}

	return count, nil
}

func (r *reviewRepository) CountApprovedByVendorID(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE vendor_id = $1 AND status = $2`

	var count int64
	err := r.db.QueryRow(ctx, query, vendorID, entity.ReviewStatusApproved).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count approved reviews",
			zap.Error(err),
			zap.String("vendor_id", vendorID.String()),
		)
		return 0, fmt.Errorf("count approved reviews for vendor %s: %w", vendorID.String(), err)
	}

	return count, nil
}

func (r *reviewRepository) FindAllByVendorID(ctx context.Context, vendorID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE vendor_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	return r.queryReviews(ctx, query, vendorID, limit, offset)
}

func (r *reviewRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	return r.queryReviews(ctx, query, limit, offset)
}

func (r *reviewRepository) queryReviews(ctx context.Context, query string, args ...any) ([]*entity.Review, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query reviews", zap.Error(err))
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}

func (r *reviewRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reviews`).Scan(&count); err != nil {
		r.log.Error("Failed to count reviews", zap.Error(err))
		return 0, fmt.Errorf("count reviews: %w", err)
	}

	return count, nil
}

func (r *reviewRepository) CountByStatus(ctx context.Context) (map[entity.ReviewStatus]int64, error) {
	query := `SELECT status, COUNT(*) FROM reviews GROUP BY status`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to count reviews by status", zap.Error(err))
		return nil, fmt.Errorf("count reviews by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[entity.ReviewStatus]int64)
	for rows.Next() {
		var status entity.ReviewStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			r.log.Error("Failed to scan review status count", zap.Error(err))
			return nil, fmt.Errorf("scan review status count: %w", err)
		}
		counts[status] = count
	}

	return counts, nil
}

func (r *reviewRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) error {
	query := `
		UPDATE reviews
		SET status = $2
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update review status",
			zap.Error(err),
			zap.String("review_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update review %s status: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", id.String())
	}

	return nil
}

func (r *reviewRepository) UpdateReply(ctx context.Context, id uuid.UUID, reply string) error {
	query := `
		UPDATE reviews
		SET vendor_reply = $2, vendor_reply_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, reply)
	if err != nil {
		r.log.Error("Failed to update review reply",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("update review %s reply: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", id.String())
	}

	return nil
}

func (r *reviewRepository) GetVendorReviewStats(ctx context.Context, vendorID uuid.UUID) (float64, int64, error) {
	query := `
		SELECT
			COALESCE(AVG(rating), 0) as avg_rating,
			COUNT(*) as review_count
		FROM reviews
		WHERE vendor_id = $1 AND status = $2
	`

	var avgRating float64
	var reviewCount int64
	err := r.db.QueryRow(ctx, query, vendorID, entity.ReviewStatusApproved).Scan(&avgRating, &reviewCount)
	if err != nil {
		r.log.Error("Failed to get vendor review stats",
			zap.Error(err),
			zap.String("vendor_id", vendorID.String()),
		)
		return 0, 0, fmt.Errorf("get vendor review stats for %s: %w", vendorID.String(), err)
	}

	return avgRating, reviewCount, nil
}

func (r *reviewRepository) GetAverageApprovedRating(ctx context.Context) (float64, error) {
	query := `SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE status = $1`

	var avgRating float64
	err := r.db.QueryRow(ctx, query, entity.ReviewStatusApproved).Scan(&avgRating)
	if err != nil {
		r.log.Error("Failed to get average approved rating", zap.Error(err))
		return 0, fmt.Errorf("get average approved rating: %w", err)
	}

	return avgRating, nil
}
