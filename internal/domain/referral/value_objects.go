package referral

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidReferralCode = errors.New("invalid referral code format")

// Referral codes are exactly 6 uppercase alphanumeric characters.
var referralCodeRegex = regexp.MustCompile(`^[A-Z0-9]{6}$`)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !referralCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidReferralCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}
