package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsportal/internal/config"
	"newsportal/internal/logging"
	"newsportal/internal/testutil"
)

func pngImage(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 90, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testPolicies() map[Kind]Policy {
	return Policies(config.UploadConfig{ImageBackend: "local", ImageMaxBytes: 5 << 20, DocumentMaxBytes: 10 << 20})
}

func TestPolicies_Table(t *testing.T) {
	p := testPolicies()

	assert.Equal(t, int64(5<<20), p[KindImage].MaxBytes)
	assert.Equal(t, BackendLocal, p[KindImage].Backend)
	assert.ElementsMatch(t, []string{MIMEJPEG, MIMEPNG, MIMEGIF, MIMEWebP}, p[KindImage].AllowedMIMEs)
	assert.Equal(t, int64(10<<20), p[KindDocument].MaxBytes)
	assert.Equal(t, BackendDatabase, p[KindDocument].Backend)
}

func TestPolicy_Check(t *testing.T) {
	p := testPolicies()

	mime, err := p[KindImage].Check(pngImage(t, 4, 4))
	require.NoError(t, err)
	assert.Equal(t, MIMEPNG, mime)

	_, err = p[KindImage].Check(nil)
	assert.ErrorIs(t, err, ErrFileRequired)

	_, err = p[KindImage].Check([]byte("plain text is not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	small := Policy{MaxBytes: 10, AllowedMIMEs: []string{MIMEPNG}}
	_, err = small.Check(pngImage(t, 4, 4))
	assert.ErrorIs(t, err, ErrFileTooLarge)

	mime, err = p[KindDocument].Check(testutil.BuildDocx("Heading", "Body"))
	require.NoError(t, err)
	assert.Equal(t, MIMEDocx, mime)

	_, err = p[KindDocument].Check(pngImage(t, 4, 4))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestCompressor_ResizesWideImages(t *testing.T) {
	c := Compressor{MaxWidth: 100, JPEGQuality: 80}

	out, err := c.Compress(pngImage(t, 300, 150), MIMEPNG)
	require.NoError(t, err)

	img, err := imaging.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())
}

func TestCompressor_PassesThroughGIF(t *testing.T) {
	data := []byte("GIF89a-not-really")
	out, err := Compressor{MaxWidth: 10}.Compress(data, MIMEGIF)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestCompressor_RejectsCorruptJPEG(t *testing.T) {
	_, err := Compressor{MaxWidth: 10}.Compress([]byte{0xFF, 0xD8, 0xFF, 0x00}, MIMEJPEG)
	assert.Error(t, err)
}

func TestImgBBStore_Store(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "secret", r.FormValue("key"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		body, _ := io.ReadAll(file)
		assert.Equal(t, "photo.png", header.Filename)
		assert.Equal(t, []byte("bytes"), body)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"status":  200,
			"data":    map[string]string{"url": "https://i.ibb.co/x/photo.png"},
		})
	}))
	defer server.Close()

	store := NewImgBBStore(server.URL, "secret", &http.Client{Timeout: 5 * time.Second})
	url, err := store.Store(context.Background(), "photo.png", []byte("bytes"), MIMEPNG)
	require.NoError(t, err)
	assert.Equal(t, "https://i.ibb.co/x/photo.png", url)
}

func TestImgBBStore_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"status":400,"error":{"message":"Invalid API v1 key."}}`))
	}))
	defer server.Close()

	store := NewImgBBStore(server.URL, "bad", server.Client())
	_, err := store.Store(context.Background(), "photo.png", []byte("bytes"), MIMEPNG)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API v1 key.")
}

func TestLocalStore_Store(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewLocalStore(dir, "http://localhost:5000/uploads/")
	require.NoError(t, err)

	url, err := store.Store(context.Background(), "photo.PNG", []byte("data"), MIMEPNG)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "http://localhost:5000/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	written, err := os.ReadFile(filepath.Join(dir, filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), written)
}

func TestNewImageStore(t *testing.T) {
	_, err := NewImageStore(config.UploadConfig{ImageBackend: "imgbb"})
	assert.Error(t, err)

	store, err := NewImageStore(config.UploadConfig{ImageBackend: "imgbb", ImgBBAPIKey: "k", ImgBBEndpoint: "http://x"})
	require.NoError(t, err)
	assert.IsType(t, &ImgBBStore{}, store)

	_, err = NewImageStore(config.UploadConfig{ImageBackend: "s3"})
	assert.Error(t, err)
}

type recordingStore struct {
	data []byte
	mime string
}

func (s *recordingStore) Store(_ context.Context, _ string, data []byte, mime string) (string, error) {
	s.data, s.mime = data, mime
	return "https://cdn.example/img", nil
}

func TestUploader_UploadImage(t *testing.T) {
	store := &recordingStore{}
	u := NewUploader(testPolicies(), store, Compressor{MaxWidth: 50}, logging.Discard())

	url, err := u.UploadImage(context.Background(), "wide.png", pngImage(t, 200, 20))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/img", url)
	assert.Equal(t, MIMEPNG, store.mime)

	img, err := imaging.Decode(bytes.NewReader(store.data))
	require.NoError(t, err)
	assert.Equal(t, 50, img.Bounds().Dx())

	_, err = u.UploadImage(context.Background(), "notes.txt", []byte("hello"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
