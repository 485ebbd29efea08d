package repository

import (
	"context"

	"course-market/internal/domain/user"
	"course-market/internal/infra"
	"course-market/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	const query = `
		INSERT INTO users (id, email, password_hash, role, referred_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		u.ID(), u.Email().String(), u.PasswordHash(), string(u.Role()),
		u.ReferredBy(), u.CreatedAt(), u.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*commands.UserSnapshot, string, error) {
	const query = `
		SELECT id, email, password_hash, role, referred_by, created_at
		FROM users
		WHERE email = $1`

	var (
		snapshot commands.UserSnapshot
		hash     string
	)
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&snapshot.ID, &snapshot.Email, &hash, &snapshot.Role,
		&snapshot.ReferredBy, &snapshot.CreatedAt,
	)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &snapshot, hash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.UserSnapshot, error) {
	const query = `
		SELECT id, email, role, referred_by, created_at
		FROM users
		WHERE id = $1`

	var snapshot commands.UserSnapshot
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&snapshot.ID, &snapshot.Email, &snapshot.Role,
		&snapshot.ReferredBy, &snapshot.CreatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return &snapshot, nil
}
