package repository

import (
	"context"
	"fmt"

	"rate-am/internal/data/entity"
	"rate-am/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RoleRepository interface {
	Assign(ctx context.Context, role *entity.UserRole) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.UserRole, error)
	// Replace removes every existing role row for the user and assigns one new role
	Replace(ctx context.Context, userID uuid.UUID, role *entity.UserRole) error
}

type roleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoleRepository(db database.PgxIface, log *zap.Logger) RoleRepository {
	return &roleRepository{
		db:  db,
		log: log.With(zap.String("repository", "role")),
	}
}

func (r *roleRepository) Assign(ctx context.Context, role *entity.UserRole) error {
	query := `
		INSERT INTO user_roles (id, user_id, role, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		role.ID,
		role.UserID,
		role.Role,
		role.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to assign role",
			zap.Error(err),
			zap.String("user_id", role.UserID.String()),
			zap.String("role", string(role.Role)),
		)
		return fmt.Errorf("assign role %s to user %s: %w", role.Role, role.UserID.String(), err)
	}

	return nil
}

func (r *roleRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.UserRole, error) {
	query := `
		SELECT id, user_id, role, created_at
		FROM user_roles
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find roles by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find roles for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var roles []*entity.UserRole
	for rows.Next() {
		var role entity.UserRole
		err := rows.Scan(
			&role.ID,
			&role.UserID,
			&role.Role,
			&role.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan role row", zap.Error(err))
			return nil, fmt.Errorf("scan role row: %w", err)
		}
		roles = append(roles, &role)
	}

	return roles, nil
}

func (r *roleRepository) Replace(ctx context.Context, userID uuid.UUID, role *entity.UserRole) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin role replace for user %s: %w", userID.String(), err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1`, userID); err != nil {
		r.log.Error("Failed to clear roles",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("clear roles for user %s: %w", userID.String(), err)
	}

	insert := `
		INSERT INTO user_roles (id, user_id, role, created_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := tx.Exec(ctx, insert, role.ID, role.UserID, role.Role, role.CreatedAt); err != nil {
		r.log.Error("Failed to insert replacement role",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("role", string(role.Role)),
		)
		return fmt.Errorf("insert role %s for user %s: %w", role.Role, userID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit role replace for user %s: %w", userID.String(), err)
	}

	return nil
}
