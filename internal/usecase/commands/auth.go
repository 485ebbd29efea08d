package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"course-market/internal/domain/referral"
	"course-market/internal/domain/user"
	"course-market/internal/infra"
	"course-market/internal/pkg/clock"
	"course-market/internal/pkg/config"
	"course-market/internal/pkg/errs"
	"course-market/internal/pkg/jwt"
	"course-market/internal/pkg/password"
	"course-market/internal/pkg/randcode"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid email or password")
	ErrEmailTaken           = errs.New("email already registered")
	ErrReferralCodeUnknown  = errs.New("referral code not found")
	ErrUserNotFound         = errs.New("user not found")
	ErrAuthenticationFailed = errs.New("authentication failed")
)

type SignupParams struct {
	Email        string
	Password     string
	ReferralCode *string
}

type SignupResult struct {
	UserID       uuid.UUID
	Email        string
	ReferralCode string
	Token        string
}

type LoginResult struct {
	UserID uuid.UUID
	Email  string
	Role   string
	Token  string
}

type AuthCommands interface {
	Signup(ctx context.Context, params SignupParams) (*SignupResult, error)
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	userRepo      UserRepository
	referralRepo  ReferralRepository
	notifications NotificationRepository
	jwtService    *jwt.Service
	clock         clock.Clock
	rewards       config.CheckoutConfig
	logger        *slog.Logger
}

func NewAuthCommands(
	userRepo UserRepository,
	referralRepo ReferralRepository,
	notifications NotificationRepository,
	jwtService *jwt.Service,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) AuthCommands {
	return &authCommandsImpl{
		userRepo:      userRepo,
		referralRepo:  referralRepo,
		notifications: notifications,
		jwtService:    jwtService,
		clock:         clk,
		rewards:       cfg.Checkout,
		logger:        logger,
	}
}

// Signup creates the account and its referral code. When a referral code was
// supplied it also stores the immutable referred-by link and the PENDING
// signup reward. The reward insert is idempotent under the store's uniqueness
// constraint.
func (a *authCommandsImpl) Signup(ctx context.Context, params SignupParams) (*SignupResult, error) {
	credentials, err := user.NewCredentials(params.Email, params.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	var referrerID *uuid.UUID
	if params.ReferralCode != nil {
		code, codeErr := referral.NewCode(*params.ReferralCode)
		if codeErr != nil {
			return nil, ErrReferralCodeUnknown
		}
		id, findErr := a.referralRepo.FindReferrerByCode(ctx, code.String())
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return nil, ErrReferralCodeUnknown
			}
			return nil, errs.Mark(findErr, ErrDatabaseFailure)
		}
		referrerID = &id
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	newUser := user.NewUser(credentials.Email(), hash, user.RoleStudent, referrerID)
	if err := a.userRepo.Create(ctx, newUser); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}

	accountCode, err := a.createReferralAccount(ctx, newUser.ID(), referrerID)
	if err != nil {
		return nil, err
	}

	if referrerID != nil {
		a.issueSignupReward(ctx, *referrerID, newUser.ID())
	}

	token, err := a.jwtService.GenerateToken(newUser.ID(), newUser.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	return &SignupResult{
		UserID:       newUser.ID(),
		Email:        newUser.Email().String(),
		ReferralCode: accountCode,
		Token:        token,
	}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	credentials, err := user.NewCredentials(email, rawPassword)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	snapshot, hash, err := a.userRepo.FindByEmail(ctx, credentials.Email().String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}

	if compareErr := password.ComparePassword(hash, credentials.Password().Value()); compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(snapshot.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(snapshot.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	return &LoginResult{
		UserID: snapshot.ID,
		Email:  snapshot.Email,
		Role:   snapshot.Role,
		Token:  token,
	}, nil
}

func (a *authCommandsImpl) createReferralAccount(ctx context.Context, userID uuid.UUID, referrerID *uuid.UUID) (string, error) {
	for range codeRetryLimit {
		raw, err := randcode.GenerateReferralCode()
		if err != nil {
			return "", errs.Mark(err, ErrCodeGeneration)
		}
		code, err := referral.NewCode(raw)
		if err != nil {
			return "", errs.Mark(err, ErrCodeGeneration)
		}

		account, err := referral.NewAccount(userID, code, referrerID)
		if err != nil {
			return "", errs.Mark(err, ErrDatabaseFailure)
		}

		insertErr := a.referralRepo.CreateAccount(ctx, account)
		if insertErr == nil {
			return code.String(), nil
		}
		if !infra.IsKind(insertErr, infra.KindDuplicateKey) {
			return "", errs.Mark(insertErr, ErrDatabaseFailure)
		}
	}
	return "", ErrCodeGeneration
}

func (a *authCommandsImpl) issueSignupReward(ctx context.Context, referrerID, refereeID uuid.UUID) {
	reward, err := referral.NewSignupReward(referrerID, refereeID, a.rewards.SignupRewardCents)
	if err != nil {
		return
	}

	inserted, err := a.referralRepo.InsertSignupReward(ctx, reward)
	if err != nil {
		a.logger.Error("failed to issue signup reward", "referrer_id", referrerID, "referee_id", refereeID, "error", err.Error())
		return
	}
	if !inserted {
		return
	}

	if payload, marshalErr := json.Marshal(map[string]any{
		"referrer_id":  referrerID,
		"referee_id":   refereeID,
		"amount_cents": a.rewards.SignupRewardCents,
	}); marshalErr == nil {
		if notifyErr := a.notifications.CreateJob(ctx, "email", "referral_signup_pending", payload, a.clock.Now()); notifyErr != nil {
			a.logger.Warn("failed to enqueue referral notification", "error", notifyErr.Error())
		}
	}
}
