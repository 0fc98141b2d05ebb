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

// VendorFilter narrows public vendor listings
type VendorFilter struct {
	Search   string
	Category string
	SortBy   string // rating | reviews | name | newest
}

type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error)
	FindApproved(ctx context.Context, filter VendorFilter, limit, offset int) ([]*entity.Vendor, error)
	CountApproved(ctx context.Context, filter VendorFilter) (int64, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Vendor, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[entity.VendorStatus]int64, error)
	Update(ctx context.Context, vendor *entity.Vendor) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.VendorStatus) error
	UpdateRatingStats(ctx context.Context, id uuid.UUID, rating float64, reviewCount int64) error
}

type vendorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVendorRepository(db database.PgxIface, log *zap.Logger) VendorRepository {
	return &vendorRepository{
		db:  db,
		log: log.With(zap.String("repository", "vendor")),
	}
}

const vendorColumns = `id, user_id, business_name, category, description, location,
	       phone, whatsapp, email, preferred_contact, image_url, gallery,
	       rating, review_count, status, created_at, updated_at`

func scanVendor(row pgx.Row) (*entity.Vendor, error) {
	var vendor entity.Vendor
	err := row.Scan(
		&vendor.ID,
		&vendor.UserID,
		&vendor.BusinessName,
		&vendor.Category,
		&vendor.Description,
		&vendor.Location,
		&vendor.Phone,
		&vendor.Whatsapp,
		&vendor.Email,
		&vendor.PreferredContact,
		&vendor.ImageURL,
		&vendor.Gallery,
		&vendor.Rating,
		&vendor.ReviewCount,
		&vendor.Status,
		&vendor.CreatedAt,
		&vendor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) Create(ctx context.Context, vendor *entity.Vendor) error {
	query := `
		INSERT INTO vendors (id, user_id, business_name, category, description, location,
		                     phone, whatsapp, email, preferred_contact, image_url, gallery,
		                     rating, review_count, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.db.Exec(ctx, query,
		vendor.ID,
		vendor.UserID,
		vendor.BusinessName,
		vendor.Category,
		vendor.Description,
		vendor.Location,
		vendor.Phone,
		vendor.Whatsapp,
		vendor.Email,
		vendor.PreferredContact,
		vendor.ImageURL,
		vendor.Gallery,
		vendor.Rating,
		vendor.ReviewCount,
		vendor.Status,
		vendor.CreatedAt,
		vendor.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create vendor",
			zap.Error(err),
			zap.String("user_id", vendor.UserID.String()),
			zap.String("business_name", vendor.BusinessName),
		)
		return fmt.Errorf("create vendor %s: %w", vendor.BusinessName, err)
	}

	return nil
}

func (r *vendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE id = $1`

	vendor, err := scanVendor(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find vendor by ID",
			zap.Error(err),
			zap.String("vendor_id", id.String()),
		)
		return nil, fmt.Errorf("find vendor by ID %s: %w", id.String(), err)
	}

	return vendor, nil
}

func (r *vendorRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE user_id = $1 LIMIT 1`

	vendor, err := scanVendor(r.db.QueryRow(ctx, query, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find vendor by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find vendor by user ID %s: %w", userID.String(), err)
	}

	return vendor, nil
}

// filterClause builds the WHERE tail and args shared by FindApproved and CountApproved
func (r *vendorRepository) filterClause(filter VendorFilter, args []any) (string, []any) {
	clause := ""

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		clause += fmt.Sprintf(" AND (business_name ILIKE $%d OR description ILIKE $%d)", n, n)
	}

	if filter.Category != "" {
		args = append(args, filter.Category)
		clause += fmt.Sprintf(" AND category = $%d", len(args))
	}

	return clause, args
}

func sortClause(sortBy string) string {
	switch sortBy {
	case "rating":
		return "ORDER BY rating DESC"
	case "reviews":
		return "ORDER BY review_count DESC"
	case "name":
		return "ORDER BY business_name ASC"
	default:
		return "ORDER BY created_at DESC"
	}
}

func (r *vendorRepository) FindApproved(ctx context.Context, filter VendorFilter, limit, offset int) ([]*entity.Vendor, error) {
	args := []any{entity.VendorStatusApproved}
	clause, args := r.filterClause(filter, args)

	args = append(args, limit, offset)
	query := fmt.Sprintf(`
		SELECT `+vendorColumns+`
		FROM vendors
		WHERE status = $1%s
		%s
		LIMIT $%d OFFSET $%d
	`, clause, sortClause(filter.SortBy), len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list approved vendors",
			zap.Error(err),
			zap.String("search", filter.Search),
			zap.String("category", filter.Category),
		)
		return nil, fmt.Errorf("list approved vendors: %w", err)
	}
	defer rows.Close()

	var vendors []*entity.Vendor
	for rows.Next() {
		vendor, err := scanVendor(rows)
		if err != nil {
			r.log.Error("Failed to scan vendor row", zap.Error(err))
			return nil, fmt.Errorf("scan vendor row: %w", err)
		}
		vendors = append(vendors, vendor)
	}

	return vendors, nil
}

func (r *vendorRepository) CountApproved(ctx context.Context, filter VendorFilter) (int64, error) {
	args := []any{entity.VendorStatusApproved}
	clause, args := r.filterClause(filter, args)

	query := fmt.Sprintf(`SELECT COUNT(*) FROM vendors WHERE status = $1%s`, clause)

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count approved vendors", zap.Error(err))
		return 0, fmt.Errorf("count approved vendors: %w", err)
	}

	return count, nil
}

func (r *vendorRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Vendor, error) {
	query := `
		SELECT ` + vendorColumns + `
		FROM vendors
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list vendors",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()

	var vendors []*entity.Vendor
	for rows.Next() {
		vendor, err := scanVendor(rows)
		if err != nil {
			r.log.Error("Failed to scan vendor row", zap.Error(err))
			return nil, fmt.Errorf("scan vendor row: %w", err)
		}
		vendors = append(vendors, vendor)
	}

	return vendors, nil
}

func (r *vendorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM vendors`).Scan(&count); err != nil {
		r.log.Error("Failed to count vendors", zap.Error(err))
		return 0, fmt.Errorf("count vendors: %w", err)
	}

	return count, nil
}

func (r *vendorRepository) CountByStatus(ctx context.Context) (map[entity.VendorStatus]int64, error) {
	query := `SELECT status, COUNT(*) FROM vendors GROUP BY status`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to count vendors by status", zap.Error(err))
		return nil, fmt.Errorf("count vendors by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[entity.VendorStatus]int64)
	for rows.Next() {
		var status entity.VendorStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			r.log.Error("Failed to scan vendor status count", zap.Error(err))
			return nil, fmt.Errorf("scan vendor status count: %w", err)
		}
		counts[status] = count
	}

	return counts, nil
}

func (r *vendorRepository) Update(ctx context.Context, vendor *entity.Vendor) error {
	query := `
		UPDATE vendors
		SET business_name = $2, category = $3, description = $4, location = $5,
		    phone = $6, whatsapp = $7, email = $8, preferred_contact = $9,
		    image_url = $10, gallery = $11, updated_at = $12
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		vendor.ID,
		vendor.BusinessName,
		vendor.Category,
		vendor.Description,
		vendor.Location,
		vendor.Phone,
		vendor.Whatsapp,
		vendor.Email,
		vendor.PreferredContact,
		vendor.ImageURL,
		vendor.Gallery,
		vendor.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update vendor",
			zap.Error(err),
			zap.String("vendor_id", vendor.ID.String()),
		)
		return fmt.Errorf("update vendor %s: %w", vendor.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vendor %s not found", vendor.ID.String())
	}

	return nil
}

func (r *vendorRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.VendorStatus) error {
	query := `
		UPDATE vendors
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update vendor status",
			zap.Error(err),
			zap.String("vendor_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update vendor %s status: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vendor %s not found", id.String())
	}

	return nil
}

func (r *vendorRepository) UpdateRatingStats(ctx context.Context, id uuid.UUID, rating float64, reviewCount int64) error {
	query := `
		UPDATE vendors
		SET rating = $2, review_count = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, rating, reviewCount)
	if err != nil {
		r.log.Error("Failed to update vendor rating stats",
			zap.Error(err),
			zap.String("vendor_id", id.String()),
		)
		return fmt.Errorf("update vendor %s rating stats: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vendor %s not found", id.String())
	}

	return nil
}
