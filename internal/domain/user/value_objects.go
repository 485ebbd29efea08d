package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidPassword = errors.New("password must be at least 8 characters")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email string

func NewEmail(raw string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if !emailRegex.MatchString(normalized) {
		return "", ErrInvalidEmail
	}
	return Email(normalized), nil
}

func (e Email) String() string {
	return string(e)
}

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

func NewRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleStudent, RoleAdmin:
		return Role(raw), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

type Password string

func NewPassword(raw string) (Password, error) {
	if len(raw) < 8 {
		return "", ErrInvalidPassword
	}
	return Password(raw), nil
}

func (p Password) Value() string {
	return string(p)
}
