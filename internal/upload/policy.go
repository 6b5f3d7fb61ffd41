// Package upload validates, compresses and stores files sent to the API.
package upload

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gabriel-vasile/mimetype"

	"newsportal/internal/config"
)

type Kind string

const (
	KindImage    Kind = "image"
	KindDocument Kind = "document"
)

type Backend string

const (
	BackendImgBB    Backend = "imgbb"
	BackendLocal    Backend = "local"
	BackendDatabase Backend = "database"
)

const (
	MIMEJPEG = "image/jpeg"
	MIMEPNG  = "image/png"
	MIMEGIF  = "image/gif"
	MIMEWebP = "image/webp"
	MIMEDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	ErrFileRequired    = errors.New("file is required")
	ErrFileTooLarge    = errors.New("file exceeds the size limit")
	ErrUnsupportedType = errors.New("file type is not allowed")
)

// Policy bounds what one kind of upload may contain and where it goes.
type Policy struct {
	MaxBytes     int64
	AllowedMIMEs []string
	Backend      Backend
}

// Policies builds the policy table from configuration.
func Policies(cfg config.UploadConfig) map[Kind]Policy {
	return map[Kind]Policy{
		KindImage: {
			MaxBytes:     cfg.ImageMaxBytes,
			AllowedMIMEs: []string{MIMEJPEG, MIMEPNG, MIMEGIF, MIMEWebP},
			Backend:      Backend(cfg.ImageBackend),
		},
		KindDocument: {
			MaxBytes:     cfg.DocumentMaxBytes,
			AllowedMIMEs: []string{MIMEDocx},
			Backend:      BackendDatabase,
		},
	}
}

// Check sniffs the content type of data and enforces the size and type
// limits. It returns the detected MIME type without parameters.
func (p Policy) Check(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrFileRequired
	}
	if p.MaxBytes > 0 && int64(len(data)) > p.MaxBytes {
		return "", fmt.Errorf("%w: %d bytes over a %d byte limit", ErrFileTooLarge, len(data), p.MaxBytes)
	}

	detected := mimetype.Detect(data)
	for m := detected; m != nil; m = m.Parent() {
		if slices.Contains(p.AllowedMIMEs, m.String()) {
			return m.String(), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedType, detected.String())
}
