package upload

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Uploader applies the image policy, compresses and stores the result.
type Uploader struct {
	policies   map[Kind]Policy
	store      ImageStore
	compressor Compressor
	log        *logrus.Logger
}

func NewUploader(policies map[Kind]Policy, store ImageStore, compressor Compressor, log *logrus.Logger) *Uploader {
	return &Uploader{policies: policies, store: store, compressor: compressor, log: log}
}

// Policy returns the policy registered for kind.
func (u *Uploader) Policy(kind Kind) Policy {
	return u.policies[kind]
}

// UploadImage returns the public URL of the stored image.
func (u *Uploader) UploadImage(ctx context.Context, filename string, data []byte) (string, error) {
	mime, err := u.policies[KindImage].Check(data)
	if err != nil {
		return "", err
	}

	compressed, err := u.compressor.Compress(data, mime)
	if err != nil {
		return "", err
	}

	url, err := u.store.Store(ctx, filename, compressed, mime)
	if err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}

	u.log.WithFields(logrus.Fields{
		"file":           filename,
		"mime":           mime,
		"original_bytes": len(data),
		"stored_bytes":   len(compressed),
	}).Info("image uploaded")
	return url, nil
}

// CheckDocument validates a document upload and returns its MIME type.
func (u *Uploader) CheckDocument(data []byte) (string, error) {
	return u.policies[KindDocument].Check(data)
}
