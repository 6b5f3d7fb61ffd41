package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"newsportal/internal/config"
)

// ImageStore persists an image and returns its public URL.
type ImageStore interface {
	Store(ctx context.Context, filename string, data []byte, mime string) (string, error)
}

// NewImageStore picks the backend named in the image policy.
func NewImageStore(cfg config.UploadConfig) (ImageStore, error) {
	switch Backend(cfg.ImageBackend) {
	case BackendImgBB:
		if cfg.ImgBBAPIKey == "" {
			return nil, fmt.Errorf("imgbb backend requires an API key")
		}
		return NewImgBBStore(cfg.ImgBBEndpoint, cfg.ImgBBAPIKey, &http.Client{Timeout: cfg.ImgBBTimeout}), nil
	case BackendLocal:
		return NewLocalStore(cfg.LocalDir, cfg.PublicBaseURL)
	default:
		return nil, fmt.Errorf("unknown image backend %q", cfg.ImageBackend)
	}
}

// ImgBBStore uploads images to the ImgBB hosting API.
type ImgBBStore struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewImgBBStore(endpoint, apiKey string, client *http.Client) *ImgBBStore {
	return &ImgBBStore{endpoint: endpoint, apiKey: apiKey, client: client}
}

type imgbbResponse struct {
	Success bool `json:"success"`
	Status  int  `json:"status"`
	Data    struct {
		URL        string `json:"url"`
		DisplayURL string `json:"display_url"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (s *ImgBBStore) Store(ctx context.Context, filename string, data []byte, _ string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("key", s.apiKey); err != nil {
		return "", fmt.Errorf("write imgbb form: %w", err)
	}
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("write imgbb form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("write imgbb form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("write imgbb form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("build imgbb request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("imgbb upload: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read imgbb response: %w", err)
	}

	var parsed imgbbResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode imgbb response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK || !parsed.Success || parsed.Data.URL == "" {
		return "", fmt.Errorf("imgbb upload failed with status %d: %s", resp.StatusCode, parsed.Error.Message)
	}

	return parsed.Data.URL, nil
}

// LocalStore writes images to a directory served under a public base URL.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *LocalStore) Dir() string {
	return s.dir
}

func (s *LocalStore) Store(ctx context.Context, filename string, data []byte, mime string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.NewString() + extensionFor(mime, filename)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return s.baseURL + "/" + name, nil
}

func extensionFor(mime, filename string) string {
	switch mime {
	case MIMEJPEG:
		return ".jpg"
	case MIMEPNG:
		return ".png"
	case MIMEGIF:
		return ".gif"
	case MIMEWebP:
		return ".webp"
	}
	return strings.ToLower(filepath.Ext(filename))
}
