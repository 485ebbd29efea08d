//go:build unit

package referral_test

import (
	"testing"

	"course-market/internal/domain/referral"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	testCases := []struct {
		name  string
		raw   string
		want  string
		errIs error
	}{
		{name: "valid", raw: "AB12CD", want: "AB12CD"},
		{name: "lowercase normalized", raw: "ab12cd", want: "AB12CD"},
		{name: "whitespace trimmed", raw: " AB12CD ", want: "AB12CD"},
		{name: "too short", raw: "AB1", errIs: referral.ErrInvalidReferralCode},
		{name: "too long", raw: "AB12CD9", errIs: referral.ErrInvalidReferralCode},
		{name: "empty", raw: "", errIs: referral.ErrInvalidReferralCode},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, err := referral.NewCode(tc.raw)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, code.String())
		})
	}
}

func TestRewards(t *testing.T) {
	referrer := uuid.New()
	referee := uuid.New()

	t.Run("signup reward starts pending", func(t *testing.T) {
		reward, err := referral.NewSignupReward(referrer, referee, 50000)
		require.NoError(t, err)
		assert.Equal(t, referral.KindSignup, reward.Kind())
		assert.Equal(t, referral.StatusPending, reward.Status())
		assert.Equal(t, int64(50000), reward.AmountCents())
	})

	t.Run("first purchase reward is confirmed immediately", func(t *testing.T) {
		reward, err := referral.NewFirstPurchaseReward(referrer, referee, 100000)
		require.NoError(t, err)
		assert.Equal(t, referral.KindFirstPurchase, reward.Kind())
		assert.Equal(t, referral.StatusConfirmed, reward.Status())
	})

	t.Run("self referral rejected", func(t *testing.T) {
		_, err := referral.NewSignupReward(referrer, referrer, 50000)
		assert.ErrorIs(t, err, referral.ErrSelfReferral)
	})

	t.Run("account cannot be referred by itself", func(t *testing.T) {
		code, err := referral.NewCode("AB12CD")
		require.NoError(t, err)

		userID := uuid.New()
		_, err = referral.NewAccount(userID, code, &userID)
		assert.ErrorIs(t, err, referral.ErrSelfReferral)
	})
}
