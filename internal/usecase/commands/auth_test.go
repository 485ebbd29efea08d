//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"course-market/internal/infra"
	"course-market/internal/pkg/clock"
	"course-market/internal/pkg/config"
	"course-market/internal/pkg/jwt"
	"course-market/internal/pkg/password"
	"course-market/internal/usecase/commands"
	commandsmock "course-market/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	userRepo      *commandsmock.MockUserRepository
	referralRepo  *commandsmock.MockReferralRepository
	notifications *commandsmock.MockNotificationRepository
	auth          commands.AuthCommands
	now           time.Time
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userRepo = commandsmock.NewMockUserRepository(s.ctrl)
	s.referralRepo = commandsmock.NewMockReferralRepository(s.ctrl)
	s.notifications = commandsmock.NewMockNotificationRepository(s.ctrl)
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cfg := config.Config{
		Checkout: config.CheckoutConfig{
			ExpiredCouponPolicy: config.ExpiredCouponReject,
			SignupRewardCents:   50000,
			PurchaseRewardCents: 100000,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.auth = commands.NewAuthCommands(
		s.userRepo, s.referralRepo, s.notifications,
		jwt.NewService("test-secret-key", time.Hour),
		clock.NewMockClock(s.now), cfg, logger,
	)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthCommandsTestSuite) TestSignupWithoutReferral() {
	s.userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.referralRepo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil)

	result, err := s.auth.Signup(context.Background(), commands.SignupParams{
		Email:    "student@example.com",
		Password: "correct-horse-battery",
	})

	s.Require().NoError(err)
	s.Equal("student@example.com", result.Email)
	s.Len(result.ReferralCode, 6)
	s.NotEmpty(result.Token)
}

func (s *AuthCommandsTestSuite) TestSignupWithReferralIssuesPendingReward() {
	referrerID := uuid.New()
	code := "ABC123"

	s.referralRepo.EXPECT().FindReferrerByCode(gomock.Any(), code).Return(referrerID, nil)
	s.userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.referralRepo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil)
	s.referralRepo.EXPECT().InsertSignupReward(gomock.Any(), gomock.Any()).Return(true, nil)
	s.notifications.EXPECT().
		CreateJob(gomock.Any(), "email", "referral_signup_pending", gomock.Any(), s.now).
		Return(nil)

	result, err := s.auth.Signup(context.Background(), commands.SignupParams{
		Email:        "referee@example.com",
		Password:     "correct-horse-battery",
		ReferralCode: &code,
	})

	s.Require().NoError(err)
	s.NotEmpty(result.ReferralCode)
}

func (s *AuthCommandsTestSuite) TestSignupRewardReplayStaysSilent() {
	referrerID := uuid.New()
	code := "ABC123"

	s.referralRepo.EXPECT().FindReferrerByCode(gomock.Any(), code).Return(referrerID, nil)
	s.userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.referralRepo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil)
	// inserted=false means the reward already existed; no notification follows
	s.referralRepo.EXPECT().InsertSignupReward(gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := s.auth.Signup(context.Background(), commands.SignupParams{
		Email:        "referee@example.com",
		Password:     "correct-horse-battery",
		ReferralCode: &code,
	})

	s.Require().NoError(err)
}

func (s *AuthCommandsTestSuite) TestSignupUnknownReferralCode() {
	code := "ZZZ999"
	s.referralRepo.EXPECT().
		FindReferrerByCode(gomock.Any(), code).
		Return(uuid.Nil, infra.WrapRepoErr("no referrer", nil, infra.KindNotFound))

	_, err := s.auth.Signup(context.Background(), commands.SignupParams{
		Email:        "referee@example.com",
		Password:     "correct-horse-battery",
		ReferralCode: &code,
	})

	s.Require().ErrorIs(err, commands.ErrReferralCodeUnknown)
}

func (s *AuthCommandsTestSuite) TestSignupMalformedReferralCode() {
	code := "!!"
	_, err := s.auth.Signup(context.Background(), commands.SignupParams{
		Email:        "referee@example.com",
		Password:     "correct-horse-battery",
		ReferralCode: &code,
	})

	s.Require().ErrorIs(err, commands.ErrReferralCodeUnknown)
}

func (s *AuthCommandsTestSuite) TestSignupEmailTaken() {
	s.userRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(infra.WrapRepoErr("duplicate email", nil, infra.KindDuplicateKey))

	_, err := s.auth.Signup(context.Background(), commands.SignupParams{
		Email:    "taken@example.com",
		Password: "correct-horse-battery",
	})

	s.Require().ErrorIs(err, commands.ErrEmailTaken)
}

func (s *AuthCommandsTestSuite) TestSignupInvalidEmail() {
	_, err := s.auth.Signup(context.Background(), commands.SignupParams{
		Email:    "not-an-email",
		Password: "correct-horse-battery",
	})

	s.Require().ErrorIs(err, commands.ErrInvalidCredentials)
}

func (s *AuthCommandsTestSuite) TestSignupRetriesReferralCodeCollision() {
	s.userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	collision := s.referralRepo.EXPECT().
		CreateAccount(gomock.Any(), gomock.Any()).
		Return(infra.WrapRepoErr("code taken", nil, infra.KindDuplicateKey))
	s.referralRepo.EXPECT().
		CreateAccount(gomock.Any(), gomock.Any()).
		Return(nil).
		After(collision)

	result, err := s.auth.Signup(context.Background(), commands.SignupParams{
		Email:    "student@example.com",
		Password: "correct-horse-battery",
	})

	s.Require().NoError(err)
	s.Len(result.ReferralCode, 6)
}

func (s *AuthCommandsTestSuite) TestLoginSuccess() {
	userID := uuid.New()
	hash, err := password.HashPassword("correct-horse-battery")
	s.Require().NoError(err)

	s.userRepo.EXPECT().
		FindByEmail(gomock.Any(), "student@example.com").
		Return(&commands.UserSnapshot{ID: userID, Email: "student@example.com", Role: "student"}, hash, nil)

	result, err := s.auth.Login(context.Background(), "student@example.com", "correct-horse-battery")

	s.Require().NoError(err)
	s.Equal(userID, result.UserID)
	s.Equal("student", result.Role)
	s.NotEmpty(result.Token)
}

func (s *AuthCommandsTestSuite) TestLoginWrongPassword() {
	hash, err := password.HashPassword("correct-horse-battery")
	s.Require().NoError(err)

	s.userRepo.EXPECT().
		FindByEmail(gomock.Any(), "student@example.com").
		Return(&commands.UserSnapshot{ID: uuid.New(), Email: "student@example.com", Role: "student"}, hash, nil)

	_, err = s.auth.Login(context.Background(), "student@example.com", "wrong-password-entirely")

	s.Require().ErrorIs(err, commands.ErrInvalidCredentials)
}

func (s *AuthCommandsTestSuite) TestLoginUnknownEmail() {
	s.userRepo.EXPECT().
		FindByEmail(gomock.Any(), "ghost@example.com").
		Return(nil, "", infra.WrapRepoErr("no user", nil, infra.KindNotFound))

	_, err := s.auth.Login(context.Background(), "ghost@example.com", "correct-horse-battery")

	s.Require().ErrorIs(err, commands.ErrInvalidCredentials)
}
