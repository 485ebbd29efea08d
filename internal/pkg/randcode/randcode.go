package randcode

import (
	"crypto/rand"
	"errors"
)

// Uppercase alphanumeric alphabet used for coupon and referral codes.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	CouponCodeLength   = 8
	ReferralCodeLength = 6
)

// Largest multiple of len(alphabet) that fits in a byte. Bytes at or above
// this are rejected so every alphabet character is equally likely.
const maxUnbiased = 256 - 256%len(alphabet)

var ErrInvalidLength = errors.New("code length must be positive")

// Generate returns a random uppercase alphanumeric code of the given length.
// Uniqueness is not guaranteed here; callers insert under a unique constraint
// and retry on collision.
func Generate(length int) (string, error) {
	if length <= 0 {
		return "", ErrInvalidLength
	}

	code := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(code) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= maxUnbiased {
				continue
			}
			code = append(code, alphabet[int(b)%len(alphabet)])
			if len(code) == length {
				break
			}
		}
	}
	return string(code), nil
}

func GenerateCouponCode() (string, error) {
	return Generate(CouponCodeLength)
}

func GenerateReferralCode() (string, error) {
	return Generate(ReferralCodeLength)
}
