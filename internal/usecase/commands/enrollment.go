package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"course-market/internal/infra"
	"course-market/internal/pkg/clock"
	"course-market/internal/pkg/errs"

	"github.com/google/uuid"
)

type EnrollOrWaitlistResult struct {
	Outcome          string     `json:"outcome"`
	EnrollmentID     *uuid.UUID `json:"enrollment_id,omitempty"`
	WaitlistPosition *int32     `json:"waitlist_position,omitempty"`
}

type EnrollmentCommands interface {
	EnrollOrWaitlist(ctx context.Context, offeringID, userID uuid.UUID) (*EnrollOrWaitlistResult, error)
}

type enrollmentCommandsImpl struct {
	enrollments   EnrollmentRepository
	waitlist      WaitlistRepository
	notifications NotificationRepository
	clock         clock.Clock
	logger        *slog.Logger
}

func NewEnrollmentCommands(
	enrollments EnrollmentRepository,
	waitlist WaitlistRepository,
	notifications NotificationRepository,
	clk clock.Clock,
	logger *slog.Logger,
) EnrollmentCommands {
	return &enrollmentCommandsImpl{
		enrollments:   enrollments,
		waitlist:      waitlist,
		notifications: notifications,
		clock:         clk,
		logger:        logger,
	}
}

// EnrollOrWaitlist grabs a seat when one is left, otherwise queues the user.
// Both paths are single conditional writes in the store; this method never
// decides based on a previously read count.
func (e *enrollmentCommandsImpl) EnrollOrWaitlist(ctx context.Context, offeringID, userID uuid.UUID) (*EnrollOrWaitlistResult, error) {
	now := e.clock.Now()

	record, err := e.enrollments.TryEnroll(ctx, offeringID, userID, now)
	if err == nil {
		enrollmentID := record.ID
		return &EnrollOrWaitlistResult{
			Outcome:      OutcomeEnrolled,
			EnrollmentID: &enrollmentID,
		}, nil
	}

	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return nil, ErrOfferingNotFound
	case infra.IsKind(err, infra.KindDuplicateKey):
		return nil, ErrAlreadyEnrolled
	case infra.IsKind(err, infra.KindConflict):
		// Offering is full: fall through to the waitlist.
	default:
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}

	position, err := e.waitlist.Join(ctx, offeringID, userID, now)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrAlreadyWaitlisted
		}
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}

	if payload, marshalErr := json.Marshal(map[string]any{
		"offering_id": offeringID,
		"user_id":     userID,
		"position":    position,
	}); marshalErr == nil {
		if notifyErr := e.notifications.CreateJob(ctx, "email", "waitlist_joined", payload, now); notifyErr != nil {
			e.logger.Warn("failed to enqueue waitlist notification", "error", notifyErr.Error())
		}
	}

	return &EnrollOrWaitlistResult{
		Outcome:          OutcomeWaitlisted,
		WaitlistPosition: &position,
	}, nil
}
