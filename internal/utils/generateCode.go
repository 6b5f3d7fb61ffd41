package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

var otpUpperBound = big.NewInt(1000000)

// GenerateVerificationCode returns a six-digit numeric one-time code.
func GenerateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, otpUpperBound)
	if err != nil {
		return "", fmt.Errorf("generate verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// GenerateToken returns an opaque token suitable for links sent by email.
func GenerateToken() string {
	return uuid.NewString()
}
