package api

import (
	"errors"
	"net/http"

	"course-market/internal/handler/dto/request"
	"course-market/internal/handler/dto/response"
	"course-market/internal/handler/httperr"
	"course-market/internal/handler/middleware"
	"course-market/internal/pkg/config"
	"course-market/internal/pkg/cookie"
	"course-market/internal/pkg/jwt"
	"course-market/internal/usecase/commands"
	"course-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
	cookieCfg    config.CookieConfig
	jwtService   *jwt.Service
}

func NewAuthHandler(
	authCommands commands.AuthCommands,
	userQueries queries.UserQueries,
	cfg config.Config,
	jwtService *jwt.Service,
) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
		cookieCfg:    cfg.Cookie,
		jwtService:   jwtService,
	}
}

// @Summary Sign up
// @Description Register a new account, optionally under a referral code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.SignupRequest true "Signup request"
// @Success 201 {object} response.SignupResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req request.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.authCommands.Signup(c.Request.Context(), commands.SignupParams{
		Email:        req.Email,
		Password:     req.Password,
		ReferralCode: req.GetReferralCode(),
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid email or password format", nil)
		case errors.Is(err, commands.ErrReferralCodeUnknown):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown referral code", nil)
		case errors.Is(err, commands.ErrEmailTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Signup failed", nil)
		}
		return
	}

	cookie.SetTokenCookie(c, h.cookieCfg, result.Token, h.jwtService.TokenDuration())
	c.JSON(http.StatusCreated, response.SignupResponse{
		AccessToken:  result.Token,
		UserID:       result.UserID,
		Email:        result.Email,
		ReferralCode: result.ReferralCode,
	})
}

// @Summary Log in
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Login request"
// @Success 200 {object} response.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Login failed", nil)
		}
		return
	}

	cookie.SetTokenCookie(c, h.cookieCfg, result.Token, h.jwtService.TokenDuration())
	c.JSON(http.StatusOK, response.LoginResponse{
		AccessToken: result.Token,
		UserID:      result.UserID,
		Email:       result.Email,
		Role:        result.Role,
	})
}

// @Summary Log out
// @Description Clear the session cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AuthorizedUserView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrAuthenticationFailed, "Unauthorized", nil)
		return
	}

	view, err := h.userQueries.GetAuthorizedUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserViewNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load user", nil)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}
