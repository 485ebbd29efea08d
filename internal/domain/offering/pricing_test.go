//go:build unit

package offering_test

import (
	"testing"
	"time"

	"course-market/internal/domain/offering"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEarlyBirdOffering(t *testing.T, regular, earlyBird int64, endAt time.Time) *offering.Offering {
	t.Helper()
	o, err := offering.NewOffering("Go Bootcamp", nil, regular, &earlyBird, &endAt)
	require.NoError(t, err)
	return o
}

func TestEffectivePriceCents(t *testing.T) {
	cutoff := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("early bird applies up to and including the cutoff", func(t *testing.T) {
		o := newEarlyBirdOffering(t, 150000, 120000, cutoff)

		assert.Equal(t, int64(120000), o.EffectivePriceCents(cutoff.Add(-24*time.Hour)))
		assert.Equal(t, int64(120000), o.EffectivePriceCents(cutoff))
	})

	t.Run("regular price one second after the cutoff", func(t *testing.T) {
		o := newEarlyBirdOffering(t, 150000, 120000, cutoff)

		assert.Equal(t, int64(150000), o.EffectivePriceCents(cutoff.Add(time.Second)))
	})

	t.Run("no early bird price configured", func(t *testing.T) {
		o, err := offering.NewOffering("Go Bootcamp", nil, 150000, nil, nil)
		require.NoError(t, err)

		assert.Equal(t, int64(150000), o.EffectivePriceCents(cutoff.Add(-24*time.Hour)))
		assert.False(t, o.IsEarlyBirdActive(cutoff))
	})

	t.Run("pure: repeated calls with the same instant agree", func(t *testing.T) {
		o := newEarlyBirdOffering(t, 150000, 120000, cutoff)
		at := cutoff.Add(-time.Minute)

		first := o.EffectivePriceCents(at)
		for range 10 {
			assert.Equal(t, first, o.EffectivePriceCents(at))
		}
	})
}

func TestNewOffering(t *testing.T) {
	cutoff := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	earlyBird := int64(120000)
	capacity := int32(20)

	testCases := []struct {
		name      string
		title     string
		capacity  *int32
		regular   int64
		earlyBird *int64
		endAt     *time.Time
		errIs     error
	}{
		{name: "valid with capacity", title: "Go Bootcamp", capacity: &capacity, regular: 150000, earlyBird: &earlyBird, endAt: &cutoff},
		{name: "valid unlimited", title: "Go Bootcamp", regular: 150000},
		{name: "empty title", title: "   ", regular: 150000, errIs: offering.ErrEmptyTitle},
		{name: "negative price", title: "Go Bootcamp", regular: -1, errIs: offering.ErrInvalidPrice},
		{name: "zero capacity", title: "Go Bootcamp", capacity: new(int32), regular: 150000, errIs: offering.ErrInvalidCapacity},
		{name: "early bird without end date", title: "Go Bootcamp", regular: 150000, earlyBird: &earlyBird, errIs: offering.ErrEarlyBirdWithoutEndDate},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o, err := offering.NewOffering(tc.title, tc.capacity, tc.regular, tc.earlyBird, tc.endAt)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int32(0), o.EnrolledCount())
		})
	}
}

func TestSeatsLeft(t *testing.T) {
	capacity := int32(2)

	t.Run("unlimited offering is never full", func(t *testing.T) {
		o := offering.Restore(uuid.New(), "Go Bootcamp", nil, 1000, 150000, nil, nil, time.Now(), time.Now())
		assert.Nil(t, o.SeatsLeft())
		assert.False(t, o.IsFull())
	})

	t.Run("full offering reports zero seats", func(t *testing.T) {
		o := offering.Restore(uuid.New(), "Go Bootcamp", &capacity, 2, 150000, nil, nil, time.Now(), time.Now())
		require.NotNil(t, o.SeatsLeft())
		assert.Equal(t, int32(0), *o.SeatsLeft())
		assert.True(t, o.IsFull())
	})
}
