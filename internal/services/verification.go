package services

import (
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"newsportal/internal/models"
	"newsportal/internal/utils"
)

type VerificationKind string

const (
	VerificationOTP  VerificationKind = "otp"
	VerificationLink VerificationKind = "link"
)

// Challenge is the message that carries a verification credential.
type Challenge struct {
	Subject string
	Body    string
}

// VerificationStrategy issues and checks the email verification credential
// stored on a user.
type VerificationStrategy interface {
	Kind() VerificationKind
	Issue(user *models.User, now time.Time) (Challenge, error)
	Verify(user *models.User, credential string, now time.Time) bool
}

// NewVerificationStrategy returns the strategy named by method.
func NewVerificationStrategy(method string, otpTTL, linkTTL time.Duration, frontendURL string) (VerificationStrategy, error) {
	switch VerificationKind(method) {
	case VerificationOTP:
		return &OTPStrategy{TTL: otpTTL}, nil
	case VerificationLink:
		return &LinkStrategy{TTL: linkTTL, FrontendURL: frontendURL}, nil
	default:
		return nil, fmt.Errorf("unknown verification method %q", method)
	}
}

// OTPStrategy mails a six-digit code the user types back.
type OTPStrategy struct {
	TTL      time.Duration
	generate func() (string, error)
}

func (s *OTPStrategy) Kind() VerificationKind { return VerificationOTP }

func (s *OTPStrategy) Issue(user *models.User, now time.Time) (Challenge, error) {
	generate := s.generate
	if generate == nil {
		generate = utils.GenerateVerificationCode
	}
	code, err := generate()
	if err != nil {
		return Challenge{}, err
	}

	setChallenge(user, code, now.Add(s.TTL))
	return Challenge{
		Subject: "Your verification code",
		Body: fmt.Sprintf("Hello %s,\n\nYour verification code is %s. It expires in %d minutes.\n",
			user.DisplayName(), code, int(s.TTL.Minutes())),
	}, nil
}

func (s *OTPStrategy) Verify(user *models.User, credential string, now time.Time) bool {
	return matchChallenge(user, strings.TrimSpace(credential), now)
}

// LinkStrategy mails a link holding an opaque token.
type LinkStrategy struct {
	TTL         time.Duration
	FrontendURL string
}

func (s *LinkStrategy) Kind() VerificationKind { return VerificationLink }

func (s *LinkStrategy) Issue(user *models.User, now time.Time) (Challenge, error) {
	token := utils.GenerateToken()
	setChallenge(user, token, now.Add(s.TTL))

	link := strings.TrimRight(s.FrontendURL, "/") + "/verify-email/" + token
	return Challenge{
		Subject: "Verify your email address",
		Body: fmt.Sprintf("Hello %s,\n\nConfirm your email address by opening this link within %d hours:\n%s\n",
			user.DisplayName(), int(s.TTL.Hours()), link),
	}, nil
}

func (s *LinkStrategy) Verify(user *models.User, credential string, now time.Time) bool {
	return matchChallenge(user, credential, now)
}

func setChallenge(user *models.User, credential string, expiresAt time.Time) {
	user.VerificationCode = credential
	user.VerificationExpiresAt = &expiresAt
}

func matchChallenge(user *models.User, credential string, now time.Time) bool {
	if user.VerificationCode == "" || credential == "" || user.VerificationExpiresAt == nil {
		return false
	}
	if now.After(*user.VerificationExpiresAt) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(user.VerificationCode), []byte(credential)) == 1
}
