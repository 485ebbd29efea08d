package referral

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrSelfReferral = errors.New("users cannot refer themselves")

type RewardKind string

const (
	KindSignup        RewardKind = "SIGNUP"
	KindFirstPurchase RewardKind = "FIRST_PURCHASE"
)

type RewardStatus string

const (
	StatusPending   RewardStatus = "PENDING"
	StatusConfirmed RewardStatus = "CONFIRMED"
)

// Account links a user to their shareable referral code. ReferredBy is fixed
// at signup.
type Account struct {
	userID     uuid.UUID
	code       Code
	referredBy *uuid.UUID
	createdAt  time.Time
}

func NewAccount(userID uuid.UUID, code Code, referredBy *uuid.UUID) (*Account, error) {
	if referredBy != nil && *referredBy == userID {
		return nil, ErrSelfReferral
	}
	return &Account{
		userID:     userID,
		code:       code,
		referredBy: referredBy,
	}, nil
}

func (a *Account) UserID() uuid.UUID      { return a.userID }
func (a *Account) Code() Code             { return a.code }
func (a *Account) ReferredBy() *uuid.UUID { return a.referredBy }
func (a *Account) CreatedAt() time.Time   { return a.createdAt }

// Reward is a credit owed to a referrer for a referee's signup or first
// purchase. At most one reward exists per (referrer, referee, kind); the store
// enforces that with a uniqueness constraint so concurrent issuance cannot
// double-create.
type Reward struct {
	id          uuid.UUID
	referrerID  uuid.UUID
	refereeID   uuid.UUID
	kind        RewardKind
	amountCents int64
	status      RewardStatus
	createdAt   time.Time
	updatedAt   time.Time
}

func NewSignupReward(referrerID, refereeID uuid.UUID, amountCents int64) (*Reward, error) {
	return newReward(referrerID, refereeID, KindSignup, amountCents, StatusPending)
}

func NewFirstPurchaseReward(referrerID, refereeID uuid.UUID, amountCents int64) (*Reward, error) {
	return newReward(referrerID, refereeID, KindFirstPurchase, amountCents, StatusConfirmed)
}

func newReward(referrerID, refereeID uuid.UUID, kind RewardKind, amountCents int64, status RewardStatus) (*Reward, error) {
	if referrerID == refereeID {
		return nil, ErrSelfReferral
	}
	return &Reward{
		id:          uuid.New(),
		referrerID:  referrerID,
		refereeID:   refereeID,
		kind:        kind,
		amountCents: amountCents,
		status:      status,
	}, nil
}

func (r *Reward) ID() uuid.UUID         { return r.id }
func (r *Reward) ReferrerID() uuid.UUID { return r.referrerID }
func (r *Reward) RefereeID() uuid.UUID  { return r.refereeID }
func (r *Reward) Kind() RewardKind      { return r.kind }
func (r *Reward) AmountCents() int64    { return r.amountCents }
func (r *Reward) Status() RewardStatus  { return r.status }
func (r *Reward) CreatedAt() time.Time  { return r.createdAt }
func (r *Reward) UpdatedAt() time.Time  { return r.updatedAt }
