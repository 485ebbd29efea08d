package queries

import (
	"context"

	"course-market/internal/infra"
	"course-market/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrWaitlistEntryNotFound = errs.New("waitlist entry not found")

type EnrollmentReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*EnrollmentView, error)
	FindWaitlistEntry(ctx context.Context, offeringID, userID uuid.UUID) (*WaitlistEntryView, error)
}

type EnrollmentQueries interface {
	GetUserEnrollments(ctx context.Context, userID uuid.UUID) ([]*EnrollmentView, error)
	GetWaitlistPosition(ctx context.Context, offeringID, userID uuid.UUID) (*WaitlistEntryView, error)
}

type enrollmentQueriesImpl struct {
	store EnrollmentReadStore
}

func NewEnrollmentQueries(store EnrollmentReadStore) EnrollmentQueries {
	return &enrollmentQueriesImpl{store: store}
}

func (q *enrollmentQueriesImpl) GetUserEnrollments(ctx context.Context, userID uuid.UUID) ([]*EnrollmentView, error) {
	views, err := q.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list enrollments")
	}
	return views, nil
}

func (q *enrollmentQueriesImpl) GetWaitlistPosition(ctx context.Context, offeringID, userID uuid.UUID) (*WaitlistEntryView, error) {
	view, err := q.store.FindWaitlistEntry(ctx, offeringID, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrWaitlistEntryNotFound
		}
		return nil, errs.Wrap(err, "failed to find waitlist entry")
	}
	return view, nil
}
