package readstore

import (
	"context"

	"course-market/internal/infra"
	"course-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EnrollmentReadStore struct {
	pool *pgxpool.Pool
}

func NewEnrollmentReadStore(pool *pgxpool.Pool) *EnrollmentReadStore {
	return &EnrollmentReadStore{pool: pool}
}

func (s *EnrollmentReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.EnrollmentView, error) {
	const query = `
		SELECT e.id, e.offering_id, o.title, e.user_id, e.enrolled_at
		FROM enrollments e
		JOIN offerings o ON o.id = e.offering_id
		WHERE e.user_id = $1
		ORDER BY e.enrolled_at DESC`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list enrollments", err)
	}
	defer rows.Close()

	views := make([]*queries.EnrollmentView, 0)
	for rows.Next() {
		var view queries.EnrollmentView
		if scanErr := rows.Scan(
			&view.ID, &view.OfferingID, &view.OfferingTitle, &view.UserID, &view.EnrolledAt,
		); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan enrollment", scanErr)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate enrollments", err)
	}
	return views, nil
}

func (s *EnrollmentReadStore) FindWaitlistEntry(ctx context.Context, offeringID, userID uuid.UUID) (*queries.WaitlistEntryView, error) {
	const query = `
		SELECT id, offering_id, user_id, position, joined_at
		FROM waitlist_entries
		WHERE offering_id = $1 AND user_id = $2`

	var view queries.WaitlistEntryView
	err := s.pool.QueryRow(ctx, query, offeringID, userID).Scan(
		&view.ID, &view.OfferingID, &view.UserID, &view.Position, &view.CreatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find waitlist entry", err)
	}
	return &view, nil
}
