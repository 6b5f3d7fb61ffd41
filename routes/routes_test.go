package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"newsportal/internal/auth"
	"newsportal/internal/config"
	"newsportal/internal/controllers"
	"newsportal/internal/logging"
	"newsportal/internal/middleware"
	"newsportal/internal/models"
	"newsportal/internal/publisher"
	"newsportal/internal/repository/mocks"
	"newsportal/internal/services"
	"newsportal/internal/upload"
	"newsportal/internal/utils"
)

type noTx struct{}

func (noTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var testUsers = map[uint]*models.User{
	1: {ID: 1, Username: "admin", Role: models.RoleAdmin, EmailVerified: true},
	2: {ID: 2, Username: "reader", Role: models.RoleReader, EmailVerified: true},
	3: {ID: 3, Username: "gpuc", Role: models.RoleInstitution, EmailVerified: true},
	4: {ID: 4, Username: "pending", Role: models.RoleAdmin, EmailVerified: false},
}

func setupRouter(t *testing.T) (*gin.Engine, *auth.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logging.Discard()

	users := new(mocks.MockUserRepository)
	for id, u := range testUsers {
		users.On("FindByID", mock.Anything, id).Return(u, nil)
	}
	articles := new(mocks.MockArticleRepository)
	events := new(mocks.MockEventRepository)
	events.On("ListUpcoming", mock.Anything, mock.Anything).Return([]models.Event{}, nil)

	tokens := auth.NewTokenManager("routes-secret", time.Hour)
	strategy, err := services.NewVerificationStrategy("otp", time.Minute, time.Hour, "http://localhost:3000")
	require.NoError(t, err)

	curation := services.NewCurationService(noTx{}, services.CurationRepositories{
		Articles:        articles,
		Submissions:     new(mocks.MockSubmissionRepository),
		RawArticles:     new(mocks.MockRawArticleRepository),
		WordSubmissions: new(mocks.MockWordSubmissionRepository),
	}, nil, publisher.Nop{}, log)
	store, err := upload.NewLocalStore(t.TempDir(), "http://localhost/uploads")
	require.NoError(t, err)
	uploader := upload.NewUploader(upload.Policies(config.UploadConfig{ImageMaxBytes: 1 << 20, DocumentMaxBytes: 1 << 20}), store, upload.Compressor{MaxWidth: 100, JPEGQuality: 80}, log)
	authService := services.NewAuthService(users, strategy, utils.NewLogMailer(log), tokens, time.Hour, "http://localhost:3000", log)

	authMiddleware := middleware.AuthMiddleware(tokens, users, log)
	router := gin.New()
	RegisterArticleRoutes(router, controllers.NewArticleController(articles, services.NewArticleService(articles, publisher.Nop{}, log), users, log), authMiddleware)
	RegisterUserRoutes(router, controllers.NewUserController(authService, users, articles, log), authMiddleware)
	RegisterSubmissionRoutes(router, controllers.NewSubmissionController(curation, log), authMiddleware)
	RegisterWordSubmissionRoutes(router, controllers.NewWordSubmissionController(curation, uploader, log), authMiddleware)
	RegisterUploadRoutes(router, controllers.NewUploadController(uploader, log), authMiddleware, "")
	RegisterEventRoutes(router, controllers.NewEventController(events, log), authMiddleware)
	RegisterHealthRoutes(router, controllers.NewHealthController(func() error { return nil }, log))
	return router, tokens
}

func request(t *testing.T, router *gin.Engine, tokens *auth.TokenManager, userID uint, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		token, err := tokens.Issue(testUsers[userID])
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPermissionMatrix(t *testing.T) {
	router, tokens := setupRouter(t)

	tests := []struct {
		name   string
		userID uint
		method string
		path   string
		body   string
		status int
		code   string
	}{
		{"anonymous cannot create articles", 0, http.MethodPost, "/api/articles", `{}`, http.StatusUnauthorized, middleware.CodeUnauthorized},
		{"reader cannot create articles", 2, http.MethodPost, "/api/articles", `{}`, http.StatusForbidden, middleware.CodePermissionDenied},
		{"institution cannot create articles", 3, http.MethodPost, "/api/articles", `{}`, http.StatusForbidden, middleware.CodePermissionDenied},
		{"admin reaches article validation", 1, http.MethodPost, "/api/articles", `{}`, http.StatusBadRequest, "TITLE_REQUIRED"},
		{"unverified token holder is blocked", 4, http.MethodPost, "/api/articles", `{}`, http.StatusForbidden, middleware.CodeEmailNotVerified},
		{"reader cannot submit", 2, http.MethodPost, "/api/submissions", `{}`, http.StatusForbidden, middleware.CodePermissionDenied},
		{"admin cannot submit", 1, http.MethodPost, "/api/submissions", `{}`, http.StatusForbidden, middleware.CodePermissionDenied},
		{"institution reaches submission validation", 3, http.MethodPost, "/api/submissions", `{}`, http.StatusBadRequest, "TITLE_REQUIRED"},
		{"institution cannot review", 3, http.MethodGet, "/api/word-submissions?status=bogus", "", http.StatusForbidden, middleware.CodePermissionDenied},
		{"admin reaches review", 1, http.MethodGet, "/api/word-submissions?status=bogus", "", http.StatusBadRequest, controllers.CodeInvalidStatus},
		{"reader cannot upload images", 2, http.MethodPost, "/api/upload", "", http.StatusForbidden, middleware.CodePermissionDenied},
		{"admin upload without file", 1, http.MethodPost, "/api/upload", "", http.StatusBadRequest, controllers.CodeFileRequired},
		{"reader cannot list users", 2, http.MethodGet, "/api/users", "", http.StatusForbidden, middleware.CodePermissionDenied},
		{"reader cannot create events", 2, http.MethodPost, "/api/events", `{}`, http.StatusForbidden, middleware.CodePermissionDenied},
		{"malformed article id", 0, http.MethodGet, "/api/articles/abc", "", http.StatusBadRequest, controllers.CodeInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := request(t, router, tokens, tt.userID, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			assert.Contains(t, w.Body.String(), `"code":"`+tt.code+`"`)
		})
	}
}

func TestPublicRoutes(t *testing.T) {
	router, tokens := setupRouter(t)

	assert.Equal(t, http.StatusOK, request(t, router, tokens, 0, http.MethodGet, "/api/events", "").Code)
	assert.Equal(t, http.StatusOK, request(t, router, tokens, 0, http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusOK, request(t, router, tokens, 2, http.MethodGet, "/api/users/me", "").Code)
}
