package coupon

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode     = errors.New("invalid coupon code format")
	ErrInvalidDiscountAmount = errors.New("discount amount must be positive")
)

// Coupon codes are exactly 8 uppercase alphanumeric characters.
var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{8}$`)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

// Amount is the fixed discount carried by a coupon, in cents.
type Amount int64

func NewAmount(cents int64) (Amount, error) {
	if cents <= 0 {
		return 0, ErrInvalidDiscountAmount
	}
	return Amount(cents), nil
}

func (a Amount) Cents() int64 {
	return int64(a)
}

// ApplyTo returns the price after the discount, floored at zero.
func (a Amount) ApplyTo(priceCents int64) int64 {
	result := priceCents - int64(a)
	if result < 0 {
		return 0
	}
	return result
}
