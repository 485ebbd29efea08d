package usecase

import (
	"course-market/internal/domain/user"
	"course-market/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator turns a raw bearer token into an authenticated identity.
// Lives in the usecase layer so middleware depends on it rather than on the
// jwt package directly.
type TokenValidator interface {
	Validate(token string) (uuid.UUID, user.Role, error)
}

type tokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidator{jwtService: jwtService}
}

func (v *tokenValidator) Validate(token string) (uuid.UUID, user.Role, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", err
	}

	// The role claim is attacker-controlled input until re-validated here.
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}

	return claims.UserID, role, nil
}
