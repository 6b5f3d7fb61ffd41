package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"newsportal/internal/auth"
	"newsportal/internal/models"
	"newsportal/internal/repository"
	"newsportal/internal/utils"
	"newsportal/internal/validation"
)

const MinPasswordLength = 6

type RegisterInput struct {
	Username        string `json:"username" example:"asha"`
	Email           string `json:"email" example:"asha@example.com"`
	Password        string `json:"password" example:"s3cretpass"`
	Role            string `json:"role" example:"Reader"`
	InstitutionName string `json:"institutionName" example:"Govt PU College"`
}

// AuthService covers registration, login, email verification and
// password reset.
type AuthService struct {
	users       repository.UserRepository
	strategy    VerificationStrategy
	mailer      utils.Mailer
	tokens      *auth.TokenManager
	resetTTL    time.Duration
	frontendURL string
	log         *logrus.Logger
	now         func() time.Time
}

func NewAuthService(users repository.UserRepository, strategy VerificationStrategy, mailer utils.Mailer, tokens *auth.TokenManager, resetTTL time.Duration, frontendURL string, log *logrus.Logger) *AuthService {
	return &AuthService{
		users:       users,
		strategy:    strategy,
		mailer:      mailer,
		tokens:      tokens,
		resetTTL:    resetTTL,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		log:         log,
		now:         time.Now,
	}
}

// VerificationKind reports which credential the active strategy accepts.
func (s *AuthService) VerificationKind() VerificationKind {
	return s.strategy.Kind()
}

func validateRegistration(in *RegisterInput) error {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.InstitutionName = strings.TrimSpace(in.InstitutionName)

	if in.Username == "" {
		return validation.New(validation.CodeInvalidRequest, "Username is required")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil || !strings.Contains(in.Email, "@") {
		return validation.New(validation.CodeInvalidRequest, "A valid email is required")
	}
	if len(in.Password) < MinPasswordLength {
		return validation.New(validation.CodeInvalidRequest, "Password must be at least 6 characters")
	}

	role := models.Role(strings.TrimSpace(in.Role))
	if role == "" {
		role = models.RoleReader
	}
	if role != models.RoleReader && role != models.RoleInstitution {
		return validation.New(validation.CodeInvalidRequest, "Role must be Reader or Institution")
	}
	if role == models.RoleInstitution && in.InstitutionName == "" {
		return validation.New(validation.CodeInvalidRequest, "Institution name is required for institution accounts")
	}
	in.Role = string(role)
	return nil
}

// Register creates an unverified account and mails its verification
// challenge. Mail failures are logged and do not fail registration.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validateRegistration(&in); err != nil {
		return nil, err
	}

	taken, err := s.users.EmailExists(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:        in.Username,
		InstitutionName: in.InstitutionName,
		Email:           in.Email,
		Password:        hash,
		Role:            models.Role(in.Role),
	}
	challenge, err := s.strategy.Issue(user, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.sendChallenge(ctx, user, challenge)
	s.log.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("user registered")
	return user, nil
}

// Login checks credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !CheckPassword(user.Password, password) {
		return "", nil, ErrInvalidCredentials
	}
	if !user.EmailVerified {
		return "", nil, ErrEmailNotVerified
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// VerifyOTP checks a code typed by the user.
func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) (string, *models.User, error) {
	if s.strategy.Kind() != VerificationOTP {
		return "", nil, ErrVerificationMethodUnsupported
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidVerification
		}
		return "", nil, err
	}
	return s.completeVerification(ctx, user, code)
}

// VerifyLink checks the token carried by a verification link.
func (s *AuthService) VerifyLink(ctx context.Context, token string) (string, *models.User, error) {
	if s.strategy.Kind() != VerificationLink {
		return "", nil, ErrVerificationMethodUnsupported
	}

	user, err := s.users.FindByVerificationCode(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidVerification
		}
		return "", nil, err
	}
	return s.completeVerification(ctx, user, token)
}

func (s *AuthService) completeVerification(ctx context.Context, user *models.User, credential string) (string, *models.User, error) {
	if user.EmailVerified {
		return "", nil, ErrAlreadyVerified
	}
	if !s.strategy.Verify(user, credential, s.now()) {
		return "", nil, ErrInvalidVerification
	}

	user.EmailVerified = true
	user.VerificationCode = ""
	user.VerificationExpiresAt = nil
	if err := s.users.UpdateFields(ctx, user, "email_verified", "verification_code", "verification_expires_at"); err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}
	s.log.WithField("user_id", user.ID).Info("email verified")
	return token, user, nil
}

// ResendVerification issues a fresh challenge. Unknown addresses succeed
// silently.
func (s *AuthService) ResendVerification(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if user.EmailVerified {
		return ErrAlreadyVerified
	}

	challenge, err := s.strategy.Issue(user, s.now())
	if err != nil {
		return err
	}
	if err := s.users.UpdateFields(ctx, user, "verification_code", "verification_expires_at"); err != nil {
		return err
	}

	s.sendChallenge(ctx, user, challenge)
	return nil
}

// ForgotPassword mails a reset link. Unknown addresses succeed silently.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	expires := s.now().Add(s.resetTTL)
	user.ResetPasswordToken = utils.GenerateToken()
	user.ResetPasswordExpiresAt = &expires
	if err := s.users.UpdateFields(ctx, user, "reset_password_token", "reset_password_expires_at"); err != nil {
		return err
	}

	link := s.frontendURL + "/reset-password/" + user.ResetPasswordToken
	body := fmt.Sprintf("Hello %s,\n\nReset your password by opening this link within %d minutes:\n%s\n\nIf you did not ask for this, ignore this email.\n",
		user.DisplayName(), int(s.resetTTL.Minutes()), link)
	if err := s.mailer.Send(ctx, user.Email, "Reset your password", body); err != nil {
		return fmt.Errorf("send reset email: %w", err)
	}
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, password string) error {
	if len(password) < MinPasswordLength {
		return validation.New(validation.CodeInvalidRequest, "Password must be at least 6 characters")
	}

	user, err := s.users.FindByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}
	if user.ResetPasswordExpiresAt == nil || s.now().After(*user.ResetPasswordExpiresAt) {
		return ErrInvalidResetToken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	user.Password = hash
	user.ResetPasswordToken = ""
	user.ResetPasswordExpiresAt = nil
	return s.users.UpdateFields(ctx, user, "password", "reset_password_token", "reset_password_expires_at")
}

func (s *AuthService) sendChallenge(ctx context.Context, user *models.User, challenge Challenge) {
	if err := s.mailer.Send(ctx, user.Email, challenge.Subject, challenge.Body); err != nil {
		s.log.WithError(err).WithField("user_id", user.ID).Warn("failed to send verification email")
	}
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
