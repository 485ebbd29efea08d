//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"course-market/internal/handler/dto/request"
	"course-market/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// SignupResult carries the fields e2e tests typically need after registering.
type SignupResult struct {
	AccessToken  string    `json:"access_token"`
	UserID       uuid.UUID `json:"user_id"`
	ReferralCode string    `json:"referral_code"`
}

// SignupUser registers a fresh account through the API.
func SignupUser(t *testing.T, router *gin.Engine, email, password string) SignupResult {
	t.Helper()
	return signup(t, router, request.SignupRequest{Email: email, Password: password})
}

// SignupUserWithReferral registers an account under a referral code.
func SignupUserWithReferral(t *testing.T, router *gin.Engine, email, password, referralCode string) SignupResult {
	t.Helper()
	return signup(t, router, request.SignupRequest{
		Email:        email,
		Password:     password,
		ReferralCode: &referralCode,
	})
}

func signup(t *testing.T, router *gin.Engine, req request.SignupRequest) SignupResult {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/signup", req, "")
	require.Equal(t, http.StatusCreated, w.Code, "signup failed: %s", w.Body.String())

	var body SignupResult
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
	require.NotEmpty(t, body.AccessToken)
	return body
}

// LoginUser authenticates through the API and returns the access token.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login", request.LoginRequest{
		Email:    email,
		Password: password,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var body struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
	return body.AccessToken
}
