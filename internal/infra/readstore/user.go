package readstore

import (
	"context"

	"course-market/internal/infra"
	"course-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, role, referred_by, created_at
		FROM users
		WHERE id = $1`

	var view queries.AuthorizedUserView
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Email, &view.Role, &view.ReferredBy, &view.CreatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &view, nil
}
