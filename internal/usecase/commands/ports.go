package commands

import (
	"context"
	"time"

	"course-market/internal/domain/coupon"
	"course-market/internal/domain/offering"
	"course-market/internal/domain/referral"
	"course-market/internal/domain/user"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

// OfferingSnapshot is the offering row as loaded for a command.
type OfferingSnapshot struct {
	ID                  uuid.UUID
	Title               string
	Capacity            *int32
	EnrolledCount       int32
	RegularPriceCents   int64
	EarlyBirdPriceCents *int64
	EarlyBirdEndAt      *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (s *OfferingSnapshot) ToDomain() *offering.Offering {
	return offering.Restore(
		s.ID, s.Title, s.Capacity, s.EnrolledCount,
		s.RegularPriceCents, s.EarlyBirdPriceCents, s.EarlyBirdEndAt,
		s.CreatedAt, s.UpdatedAt,
	)
}

type CouponSnapshot struct {
	ID          uuid.UUID
	Code        string
	AmountCents int64
	Status      string
	ExpiresAt   time.Time
	UsedBy      *uuid.UUID
	UsedAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (s *CouponSnapshot) ToDomain() *coupon.Coupon {
	return coupon.Restore(
		s.ID, s.Code, s.AmountCents, coupon.Status(s.Status),
		s.ExpiresAt, s.UsedBy, s.UsedAt, s.CreatedAt, s.UpdatedAt,
	)
}

type UserSnapshot struct {
	ID         uuid.UUID
	Email      string
	Role       string
	ReferredBy *uuid.UUID
	CreatedAt  time.Time
}

// EnrollmentRecord is returned by a successful seat grab.
type EnrollmentRecord struct {
	ID         uuid.UUID
	OfferingID uuid.UUID
	UserID     uuid.UUID
	EnrolledAt time.Time
}

type OfferingStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OfferingSnapshot, error)
	Create(ctx context.Context, o *offering.Offering) (uuid.UUID, error)
}

type CouponStore interface {
	FindByCode(ctx context.Context, code string) (*CouponSnapshot, error)
}

// EnrollmentRepository is the seat ledger. TryEnroll runs one transaction:
// enrollment insert plus a conditional enrolled_count increment, so the store
// itself serializes conflicting attempts. Error kinds: KindNotFound (unknown
// offering), KindConflict (offering full), KindDuplicateKey (already enrolled).
type EnrollmentRepository interface {
	TryEnroll(ctx context.Context, offeringID, userID uuid.UUID, now time.Time) (*EnrollmentRecord, error)
	// ReleaseSeat compensates a checkout that failed after the seat was taken:
	// deletes the enrollment and decrements the counter.
	ReleaseSeat(ctx context.Context, enrollmentID uuid.UUID) error
}

// WaitlistRepository assigns gapless FIFO positions via the offering's
// waitlist sequence. Error kinds: KindNotFound, KindDuplicateKey (already
// waitlisted).
type WaitlistRepository interface {
	Join(ctx context.Context, offeringID, userID uuid.UUID, now time.Time) (int32, error)
}

// CouponRepository owns the single-use lifecycle. Redeem is one conditional
// update (status ACTIVE and unexpired); KindConflict when zero rows matched.
type CouponRepository interface {
	Create(ctx context.Context, c *coupon.Coupon) error
	Redeem(ctx context.Context, code string, userID uuid.UUID, now time.Time) error
}

// ReferralRepository relies on the (referrer, referee, kind) uniqueness
// constraint: both insert methods report inserted=false when the reward
// already existed, which keeps repeated calls idempotent.
type ReferralRepository interface {
	CreateAccount(ctx context.Context, account *referral.Account) error
	FindReferrerByCode(ctx context.Context, code string) (uuid.UUID, error)
	InsertSignupReward(ctx context.Context, reward *referral.Reward) (inserted bool, err error)
	// ConfirmFirstPurchase inserts the CONFIRMED FIRST_PURCHASE reward and
	// flips the matching PENDING SIGNUP reward in one transaction.
	ConfirmFirstPurchase(ctx context.Context, reward *referral.Reward) (inserted bool, err error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email string) (*UserSnapshot, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

// PaymentOutcome is what the payment collaborator reports back. The core only
// reacts to Success; it never initiates settlement details itself.
type PaymentOutcome struct {
	PaymentID   string
	UserID      uuid.UUID
	OfferingID  uuid.UUID
	AmountCents int64
	Success     bool
}

type PaymentGateway interface {
	Charge(ctx context.Context, userID, offeringID uuid.UUID, amountCents int64) (*PaymentOutcome, error)
	Refund(ctx context.Context, paymentID string) error
}

// NotificationRepository enqueues fire-and-forget dispatch jobs. Callers log
// and swallow its failures.
type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}

type IdempotencyRecord struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Endpoint    string
	RequestHash string
	Status      string
	Result      []byte
	ExpiresAt   time.Time
}

// IdempotencyRepository claims checkout idempotency keys. TryInsert reports
// whether this request won the key; losers consult Get for the prior state.
type IdempotencyRepository interface {
	TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (inserted bool, err error)
	Get(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	MarkCompleted(ctx context.Context, key, userID uuid.UUID, result []byte) error
}
