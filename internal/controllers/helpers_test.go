package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"newsportal/internal/middleware"
	"newsportal/internal/models"
	"newsportal/internal/services"
)

type passthroughTx struct{}

func (passthroughTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type sentMail struct {
	recipient, subject, body string
}

type recordingMailer struct {
	sent []sentMail
	err  error
}

func (m *recordingMailer) Send(_ context.Context, recipient, subject, body string) error {
	m.sent = append(m.sent, sentMail{recipient, subject, body})
	return m.err
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func asUser(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetCurrentUser(c, user)
		c.Next()
	}
}

func adminUser() *models.User {
	return &models.User{ID: 1, Username: "admin", Email: "admin@example.com", Role: models.RoleAdmin, EmailVerified: true}
}

func institutionUser() *models.User {
	return &models.User{ID: 4, Username: "gpuc", InstitutionName: "Govt PU College", Email: "gpuc@example.com", Role: models.RoleInstitution, EmailVerified: true}
}

func performJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		data, _ := json.Marshal(v)
		reader = bytes.NewReader(data)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func performUpload(t *testing.T, router *gin.Engine, path, field, filename string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if field != "" {
		part, err := writer.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req, _ := http.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func validArticleInput() services.ArticleInput {
	return services.ArticleInput{
		Title:    "SSLC Exam Results 2024 Announced",
		Summary:  "The board has published the SSLC results for 2024.",
		Content:  strings.Repeat("<p>word </p>", 60),
		ImageURL: "https://i.ibb.co/abc/results.jpg",
		Category: "Exams",
	}
}
