//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"course-market/internal/domain/coupon"

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
		{name: "valid uppercase", raw: "SAVE1000", want: "SAVE1000"},
		{name: "lowercase is normalized", raw: "save1000", want: "SAVE1000"},
		{name: "surrounding whitespace trimmed", raw: "  SAVE1000  ", want: "SAVE1000"},
		{name: "too short", raw: "SAVE10", errIs: coupon.ErrInvalidCouponCode},
		{name: "too long", raw: "SAVE10000", errIs: coupon.ErrInvalidCouponCode},
		{name: "non-alphanumeric", raw: "SAVE-100", errIs: coupon.ErrInvalidCouponCode},
		{name: "empty", raw: "", errIs: coupon.ErrInvalidCouponCode},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, err := coupon.NewCode(tc.raw)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, code.String())
		})
	}
}

func TestAmount(t *testing.T) {
	t.Run("discount never drives the price below zero", func(t *testing.T) {
		amount, err := coupon.NewAmount(10000)
		require.NoError(t, err)

		assert.Equal(t, int64(40000), amount.ApplyTo(50000))
		assert.Equal(t, int64(0), amount.ApplyTo(10000))
		assert.Equal(t, int64(0), amount.ApplyTo(5000))
	})

	t.Run("non-positive amounts rejected", func(t *testing.T) {
		_, err := coupon.NewAmount(0)
		assert.ErrorIs(t, err, coupon.ErrInvalidDiscountAmount)

		_, err = coupon.NewAmount(-100)
		assert.ErrorIs(t, err, coupon.ErrInvalidDiscountAmount)
	})
}

func TestValidateUsage(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	newCoupon := func(t *testing.T, expiresAt time.Time) *coupon.Coupon {
		t.Helper()
		code, err := coupon.NewCode("SAVE1000")
		require.NoError(t, err)
		amount, err := coupon.NewAmount(10000)
		require.NoError(t, err)
		return coupon.NewCoupon(code, amount, expiresAt)
	}

	t.Run("active and unexpired", func(t *testing.T) {
		c := newCoupon(t, now.Add(24*time.Hour))
		assert.NoError(t, c.ValidateUsage(now))
		assert.Equal(t, coupon.StatusActive, c.Status())
	})

	t.Run("past expiry", func(t *testing.T) {
		c := newCoupon(t, now.Add(-time.Second))
		assert.ErrorIs(t, c.ValidateUsage(now), coupon.ErrCouponExpired)
	})

	t.Run("expiry instant itself counts as expired", func(t *testing.T) {
		c := newCoupon(t, now)
		assert.ErrorIs(t, c.ValidateUsage(now), coupon.ErrCouponExpired)
	})

	t.Run("used coupon is reported consumed even before expiry", func(t *testing.T) {
		c := coupon.Restore(
			uuid.New(), "SAVE1000", 10000, coupon.StatusUsed,
			now.Add(24*time.Hour), nil, nil, now, now,
		)
		assert.ErrorIs(t, c.ValidateUsage(now), coupon.ErrCouponConsumed)
	})
}
