//go:build e2e

package auth_test

import (
	"net/http"
	"regexp"
	"testing"

	"course-market/internal/domain/user"
	"course-market/internal/handler/dto/request"
	"course-market/tests/common/authtest"
	"course-market/tests/common/httptest"
	"course-market/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	signupURL = "/api/auth/signup"
	loginURL  = "/api/auth/login"
	meURL     = "/api/auth/me"
)

var referralCodePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

type AuthSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *AuthSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func (s *AuthSuite) TestSignup() {
	s.Run("Normal case: Signup issues a token and a referral code", func() {
		t := s.T()

		result := authtest.SignupUser(t, s.Router, "fresh@example.com", "password123")
		require.NotEqual(t, uuid.Nil, result.UserID)
		require.Regexp(t, referralCodePattern, result.ReferralCode)
	})

	s.Run("Error case: Duplicate email is rejected", func() {
		t := s.T()

		authtest.SignupUser(t, s.Router, "taken@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, request.SignupRequest{
			Email:    "taken@example.com",
			Password: "password123",
		}, "")
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Error case: Unknown referral code is rejected", func() {
		t := s.T()

		code := "ZZZZZZ"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, request.SignupRequest{
			Email:        "orphan@example.com",
			Password:     "password123",
			ReferralCode: &code,
		}, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Error case: Malformed payloads fail validation", func() {
		t := s.T()

		tests := []struct {
			name     string
			email    string
			password string
		}{
			{"invalid email", "not-an-email", "password123"},
			{"short password", "short@example.com", "tiny"},
			{"empty email", "", "password123"},
		}
		for _, tt := range tests {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, request.SignupRequest{
				Email:    tt.email,
				Password: tt.password,
			}, "")
			require.Equal(t, http.StatusBadRequest, w.Code, tt.name)
		}
	})
}

func (s *AuthSuite) TestLogin() {
	s.Run("Normal case: Registered user can log in again", func() {
		t := s.T()

		authtest.SignupUser(t, s.Router, "returning@example.com", "password123")

		token := authtest.LoginUser(t, s.Router, "returning@example.com", "password123")
		require.NotEmpty(t, token)
	})

	s.Run("Error case: Wrong password is unauthorized", func() {
		t := s.T()

		authtest.SignupUser(t, s.Router, "victim@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, request.LoginRequest{
			Email:    "victim@example.com",
			Password: "wrongpassword",
		}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: Unknown email is unauthorized", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, request.LoginRequest{
			Email:    "nobody@example.com",
			Password: "password123",
		}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *AuthSuite) TestMe() {
	s.Run("Normal case: Token resolves to the current user", func() {
		t := s.T()

		result := authtest.SignupUser(t, s.Router, "whoami@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, result.AccessToken)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.Equal(t, "whoami@example.com", body["email"])
	})

	s.Run("Auth test - Missing token is unauthorized", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Auth test - Expired token is unauthorized", func() {
		t := s.T()

		result := authtest.SignupUser(t, s.Router, "expired@example.com", "password123")
		expired := s.jwtHelper.CreateExpiredToken(t, result.UserID, user.RoleStudent)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
