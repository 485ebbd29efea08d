//go:build unit

package randcode_test

import (
	"regexp"
	"testing"

	"course-market/internal/pkg/randcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]+$`)

func TestGenerate(t *testing.T) {
	t.Run("coupon code has 8 uppercase alphanumeric characters", func(t *testing.T) {
		code, err := randcode.GenerateCouponCode()
		require.NoError(t, err)
		assert.Len(t, code, randcode.CouponCodeLength)
		assert.Regexp(t, codePattern, code)
	})

	t.Run("referral code has 6 uppercase alphanumeric characters", func(t *testing.T) {
		code, err := randcode.GenerateReferralCode()
		require.NoError(t, err)
		assert.Len(t, code, randcode.ReferralCodeLength)
		assert.Regexp(t, codePattern, code)
	})

	t.Run("invalid length", func(t *testing.T) {
		_, err := randcode.Generate(0)
		assert.ErrorIs(t, err, randcode.ErrInvalidLength)
	})

	t.Run("every alphabet character is reachable", func(t *testing.T) {
		counts := make(map[byte]int)
		for range 500 {
			code, err := randcode.Generate(randcode.CouponCodeLength)
			require.NoError(t, err)
			for i := 0; i < len(code); i++ {
				counts[code[i]]++
			}
		}

		// 4000 uniform draws from 36 characters miss a given one with
		// probability (35/36)^4000, far below any flake threshold. A
		// rejection loop that skips or starves part of the alphabet shows
		// up here as missing or rare characters.
		assert.Len(t, counts, 36)
		for ch, n := range counts {
			assert.Greater(t, n, 20, "character %c drawn suspiciously rarely", ch)
		}
	})

	t.Run("consecutive codes differ", func(t *testing.T) {
		seen := make(map[string]struct{})
		for range 50 {
			code, err := randcode.Generate(randcode.CouponCodeLength)
			require.NoError(t, err)
			seen[code] = struct{}{}
		}
		// 50 draws from a 36^8 space colliding would indicate a broken generator.
		assert.Len(t, seen, 50)
	})
}
