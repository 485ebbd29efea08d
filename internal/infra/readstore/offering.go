package readstore

import (
	"context"

	"course-market/internal/infra"
	"course-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OfferingReadStore struct {
	pool *pgxpool.Pool
}

func NewOfferingReadStore(pool *pgxpool.Pool) *OfferingReadStore {
	return &OfferingReadStore{pool: pool}
}

const offeringColumns = `
	id, title, capacity, enrolled_count,
	regular_price_cents, early_bird_price_cents, early_bird_end_at,
	created_at, updated_at`

func scanOffering(row pgx.Row) (*queries.OfferingView, error) {
	var view queries.OfferingView
	err := row.Scan(
		&view.ID, &view.Title, &view.Capacity, &view.EnrolledCount,
		&view.RegularPriceCents, &view.EarlyBirdPriceCents, &view.EarlyBirdEndAt,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *OfferingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OfferingView, error) {
	view, err := scanOffering(s.pool.QueryRow(ctx,
		`SELECT`+offeringColumns+` FROM offerings WHERE id = $1`, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find offering", err)
	}
	return view, nil
}

func (s *OfferingReadStore) List(ctx context.Context) ([]*queries.OfferingView, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT`+offeringColumns+` FROM offerings ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offerings", err)
	}
	defer rows.Close()

	views := make([]*queries.OfferingView, 0)
	for rows.Next() {
		view, scanErr := scanOffering(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan offering", scanErr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate offerings", err)
	}
	return views, nil
}
