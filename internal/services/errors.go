package services

import (
	"context"
	"errors"
)

var (
	ErrNotFound                      = errors.New("not found")
	ErrAlreadyPublished              = errors.New("already published")
	ErrPermissionDenied              = errors.New("permission denied")
	ErrInvalidStatus                 = errors.New("invalid status transition")
	ErrExtractionFailed              = errors.New("document extraction failed")
	ErrEmailTaken                    = errors.New("email already registered")
	ErrInvalidCredentials            = errors.New("invalid email or password")
	ErrEmailNotVerified              = errors.New("email not verified")
	ErrAlreadyVerified               = errors.New("email already verified")
	ErrInvalidVerification           = errors.New("invalid or expired verification credential")
	ErrVerificationMethodUnsupported = errors.New("verification method not supported")
	ErrInvalidResetToken             = errors.New("invalid or expired reset token")
)

// Transactor runs fn inside one database transaction.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
