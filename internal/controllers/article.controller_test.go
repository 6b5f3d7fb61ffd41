package controllers

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"newsportal/internal/language"
	"newsportal/internal/logging"
	"newsportal/internal/models"
	"newsportal/internal/publisher"
	"newsportal/internal/repository"
	"newsportal/internal/repository/mocks"
	"newsportal/internal/services"
	"newsportal/internal/validation"
)

func setupArticleController() (*ArticleController, *mocks.MockArticleRepository, *mocks.MockUserRepository) {
	articles := new(mocks.MockArticleRepository)
	users := new(mocks.MockUserRepository)
	log := logging.Discard()
	service := services.NewArticleService(articles, publisher.Nop{}, log)
	return NewArticleController(articles, service, users, log), articles, users
}

func TestListArticles(t *testing.T) {
	controller, articles, _ := setupArticleController()
	router := setupTestRouter()
	router.GET("/api/articles", controller.ListArticles)

	expected := repository.ArticleQuery{
		Filter:   language.NewFilter("kn"),
		Category: "Exams",
		Page:     2,
		Limit:    repository.MaxPageSize,
	}
	articles.On("List", mock.Anything, expected).
		Return([]models.Article{{ID: 7, Title: "ಫಲಿತಾಂಶ ಪ್ರಕಟ", ContentLanguage: "kn"}}, int64(150), nil)

	w := performJSON(router, http.MethodGet, "/api/articles?language=kn&category=Exams&page=2&limit=500", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]any)
	pagination := data["pagination"].(map[string]any)
	assert.Equal(t, float64(2), pagination["page"])
	assert.Equal(t, float64(100), pagination["limit"])
	assert.Equal(t, float64(150), pagination["total"])
	assert.Equal(t, float64(2), pagination["pages"])
	assert.Len(t, data["articles"], 1)
	articles.AssertExpectations(t)
}

func TestListArticles_DefaultsAndInfraError(t *testing.T) {
	controller, articles, _ := setupArticleController()
	router := setupTestRouter()
	router.GET("/api/articles", controller.ListArticles)

	expected := repository.ArticleQuery{Filter: language.NewFilter(""), Page: 1, Limit: repository.DefaultPageSize}
	articles.On("List", mock.Anything, expected).
		Return([]models.Article{}, int64(0), errors.New("connection refused"))

	w := performJSON(router, http.MethodGet, "/api/articles?page=abc", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, CodeInternal, body["code"])
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestGetArticleByID(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMocks     func(*mocks.MockArticleRepository)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "malformed id",
			path:           "/api/articles/not-a-number",
			setupMocks:     func(*mocks.MockArticleRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeInvalidID,
		},
		{
			name: "missing article",
			path: "/api/articles/99",
			setupMocks: func(r *mocks.MockArticleRepository) {
				r.On("IncrementViews", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   CodeNotFound,
		},
		{
			name: "counts the view",
			path: "/api/articles/3",
			setupMocks: func(r *mocks.MockArticleRepository) {
				r.On("IncrementViews", mock.Anything, uint(3)).Return(&models.Article{ID: 3, ViewCount: 11}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, articles, _ := setupArticleController()
			tt.setupMocks(articles)
			router := setupTestRouter()
			router.GET("/api/articles/:id", controller.GetArticleByID)

			w := performJSON(router, http.MethodGet, tt.path, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			body := decodeBody(t, w)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, body["code"])
			} else {
				assert.Equal(t, float64(11), body["data"].(map[string]any)["viewCount"])
			}
			articles.AssertExpectations(t)
		})
	}
}

func TestCreateArticle(t *testing.T) {
	tests := []struct {
		name           string
		mutate         func(*services.ArticleInput)
		expectCreate   bool
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "short title is reported first",
			mutate: func(in *services.ArticleInput) {
				in.Title = "Hi"
				in.Summary = "short"
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   validation.CodeTitleTooShort,
		},
		{
			name:           "too few words",
			mutate:         func(in *services.ArticleInput) { in.Content = "<p>only a few words</p>" },
			expectedStatus: http.StatusBadRequest,
			expectedCode:   validation.CodeContentTooShort,
		},
		{
			name:           "missing category",
			mutate:         func(in *services.ArticleInput) { in.Category = "" },
			expectedStatus: http.StatusBadRequest,
			expectedCode:   validation.CodeCategoryRequired,
		},
		{
			name: "valid article is sanitized and stored",
			mutate: func(in *services.ArticleInput) {
				in.Content += `<script>alert(1)</script>`
				in.ContentLanguage = "all"
			},
			expectCreate:   true,
			expectedStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, articles, _ := setupArticleController()
			if tt.expectCreate {
				articles.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Article) bool {
					return !strings.Contains(a.Content, "<script") &&
						a.ContentLanguage == string(language.English) &&
						a.AuthorID != nil && *a.AuthorID == 1 &&
						a.Source == "admin"
				})).Run(func(args mock.Arguments) {
					args.Get(1).(*models.Article).ID = 12
				}).Return(nil)
			}
			router := setupTestRouter()
			router.POST("/api/articles", asUser(adminUser()), controller.CreateArticle)

			input := validArticleInput()
			tt.mutate(&input)
			w := performJSON(router, http.MethodPost, "/api/articles", input)

			assert.Equal(t, tt.expectedStatus, w.Code)
			body := decodeBody(t, w)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, body["code"])
				articles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.Equal(t, float64(12), body["data"].(map[string]any)["id"])
			}
			articles.AssertExpectations(t)
		})
	}
}

func TestCreateArticle_InvalidJSON(t *testing.T) {
	controller, _, _ := setupArticleController()
	router := setupTestRouter()
	router.POST("/api/articles", asUser(adminUser()), controller.CreateArticle)

	w := performJSON(router, http.MethodPost, "/api/articles", `{"title":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, CodeInvalidRequest, decodeBody(t, w)["code"])
}

func TestUpdateArticle(t *testing.T) {
	t.Run("revalidates like create", func(t *testing.T) {
		controller, articles, _ := setupArticleController()
		router := setupTestRouter()
		router.PUT("/api/articles/:id", controller.UpdateArticle)

		input := validArticleInput()
		input.Content = "<p>too short</p>"
		w := performJSON(router, http.MethodPut, "/api/articles/5", input)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, validation.CodeContentTooShort, decodeBody(t, w)["code"])
		articles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("missing article", func(t *testing.T) {
		controller, articles, _ := setupArticleController()
		articles.On("Update", mock.Anything, mock.MatchedBy(func(a *models.Article) bool { return a.ID == 5 })).
			Return(gorm.ErrRecordNotFound)
		router := setupTestRouter()
		router.PUT("/api/articles/:id", controller.UpdateArticle)

		w := performJSON(router, http.MethodPut, "/api/articles/5", validArticleInput())

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, CodeNotFound, decodeBody(t, w)["code"])
	})

	t.Run("updated", func(t *testing.T) {
		controller, articles, _ := setupArticleController()
		articles.On("Update", mock.Anything, mock.MatchedBy(func(a *models.Article) bool { return a.ID == 5 })).Return(nil)
		router := setupTestRouter()
		router.PUT("/api/articles/:id", controller.UpdateArticle)

		w := performJSON(router, http.MethodPut, "/api/articles/5", validArticleInput())

		assert.Equal(t, http.StatusOK, w.Code)
		articles.AssertExpectations(t)
	})
}

func TestDeleteArticle(t *testing.T) {
	controller, articles, _ := setupArticleController()
	articles.On("Delete", mock.Anything, uint(8)).Return(nil)
	articles.On("Delete", mock.Anything, uint(9)).Return(gorm.ErrRecordNotFound)
	router := setupTestRouter()
	router.DELETE("/api/articles/:id", controller.DeleteArticle)

	assert.Equal(t, http.StatusOK, performJSON(router, http.MethodDelete, "/api/articles/8", nil).Code)
	assert.Equal(t, http.StatusNotFound, performJSON(router, http.MethodDelete, "/api/articles/9", nil).Code)
	assert.Equal(t, http.StatusBadRequest, performJSON(router, http.MethodDelete, "/api/articles/0", nil).Code)
}

func TestTrendingAndSearch(t *testing.T) {
	controller, articles, _ := setupArticleController()
	articles.On("Trending", mock.Anything, language.NewFilter("all")).
		Return([]models.Article{{ID: 1, ViewCount: 90}, {ID: 2, ViewCount: 40}}, nil)
	articles.On("Search", mock.Anything, "exam results", language.NewFilter("en")).
		Return([]models.ArticleSearchResult{{Article: models.Article{ID: 4}, Score: 0.6}}, nil)
	router := setupTestRouter()
	router.GET("/api/articles/trending", controller.GetTrendingArticles)
	router.GET("/api/search", controller.SearchArticles)

	w := performJSON(router, http.MethodGet, "/api/articles/trending?language=all", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["data"], 2)

	w = performJSON(router, http.MethodGet, "/api/search?q=%20%20", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performJSON(router, http.MethodGet, "/api/search?q=exam+results", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	results := decodeBody(t, w)["data"].([]any)
	if assert.Len(t, results, 1) {
		assert.Equal(t, 0.6, results[0].(map[string]any)["score"])
	}
	articles.AssertExpectations(t)
}

func TestToggleBookmark(t *testing.T) {
	t.Run("adds an existing article", func(t *testing.T) {
		controller, articles, users := setupArticleController()
		reader := &models.User{ID: 20, Role: models.RoleReader, EmailVerified: true}
		articles.On("FindByID", mock.Anything, uint(5)).Return(&models.Article{ID: 5}, nil)
		users.On("ToggleBookmark", mock.Anything, uint(20), uint(5)).Return(pq.Int64Array{5}, true, nil)
		router := setupTestRouter()
		router.POST("/api/articles/:id/bookmark", asUser(reader), controller.ToggleBookmark)

		w := performJSON(router, http.MethodPost, "/api/articles/5/bookmark", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeBody(t, w)["data"].(map[string]any)
		assert.Equal(t, true, data["bookmarked"])
		assert.Equal(t, []any{float64(5)}, data["bookmarks"])
	})

	t.Run("removes without looking up the article", func(t *testing.T) {
		controller, articles, users := setupArticleController()
		reader := &models.User{ID: 20, Role: models.RoleReader, EmailVerified: true, Bookmarks: pq.Int64Array{5}}
		users.On("ToggleBookmark", mock.Anything, uint(20), uint(5)).Return(pq.Int64Array{}, false, nil)
		router := setupTestRouter()
		router.POST("/api/articles/:id/bookmark", asUser(reader), controller.ToggleBookmark)

		w := performJSON(router, http.MethodPost, "/api/articles/5/bookmark", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeBody(t, w)["data"].(map[string]any)
		assert.Equal(t, false, data["bookmarked"])
		assert.Equal(t, []any{}, data["bookmarks"])
		articles.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown article", func(t *testing.T) {
		controller, articles, users := setupArticleController()
		articles.On("FindByID", mock.Anything, uint(6)).Return(nil, gorm.ErrRecordNotFound)
		router := setupTestRouter()
		router.POST("/api/articles/:id/bookmark", asUser(&models.User{ID: 20}), controller.ToggleBookmark)

		w := performJSON(router, http.MethodPost, "/api/articles/6/bookmark", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		users.AssertNotCalled(t, "ToggleBookmark", mock.Anything, mock.Anything, mock.Anything)
	})
}
