package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"startify/internal/domain"
	"startify/internal/infra"
	"startify/internal/sqlinline"
)

// UserRepositoryPG implements domain.UserRepository on PostgreSQL.
type UserRepositoryPG struct {
	db infra.SQLExecutor
}

// NewUserRepository creates a user repository backed by the SQL runner.
func NewUserRepository(db infra.SQLExecutor) *UserRepositoryPG {
	return &UserRepositoryPG{db: db}
}

// UpsertByEmail creates the account on first submission and returns it.
func (r *UserRepositoryPG) UpsertByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, sqlinline.QUpsertUserByEmail, uuid.NewString(), email)
	return scanUser(row)
}

// GetByEmail fetches an account by email.
func (r *UserRepositoryPG) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, sqlinline.QSelectUserByEmail, email)
	return scanUser(row)
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Company, &u.Role, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

var _ domain.UserRepository = (*UserRepositoryPG)(nil)
