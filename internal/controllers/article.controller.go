package controllers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"newsportal/internal/language"
	"newsportal/internal/middleware"
	"newsportal/internal/models"
	"newsportal/internal/repository"
	"newsportal/internal/services"
)

// Bookmarker flips an article in or out of a user's bookmark list.
type Bookmarker interface {
	ToggleBookmark(ctx context.Context, userID, articleID uint) (pq.Int64Array, bool, error)
}

type ArticleController struct {
	repo       repository.ArticleRepository
	service    *services.ArticleService
	bookmarker Bookmarker
	log        *logrus.Logger
}

func NewArticleController(repo repository.ArticleRepository, service *services.ArticleService, bookmarker Bookmarker, log *logrus.Logger) *ArticleController {
	return &ArticleController{repo: repo, service: service, bookmarker: bookmarker, log: log}
}

type Pagination struct {
	Page  int   `json:"page" example:"1"`
	Limit int   `json:"limit" example:"30"`
	Total int64 `json:"total" example:"120"`
	Pages int   `json:"pages" example:"4"`
}

type ArticleListResponse struct {
	Articles   []models.Article `json:"articles"`
	Pagination Pagination       `json:"pagination"`
}

type BookmarkResponse struct {
	Bookmarked bool    `json:"bookmarked" example:"true"`
	Bookmarks  []int64 `json:"bookmarks"`
}

// ListArticles godoc
// @Summary List articles
// @Description Paginated articles, newest first, filtered by language and category
// @Tags article
// @Produce json
// @Param language query string false "en, kn or all" default(en)
// @Param category query string false "Category (case-insensitive)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (max 100)" default(30)
// @Success 200 {object} map[string]interface{} "Articles retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve articles"
// @Router /api/articles [get]
func (ac *ArticleController) ListArticles(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	query := repository.ArticleQuery{
		Filter:   language.NewFilter(c.Query("language")),
		Category: c.Query("category"),
		Page:     page,
		Limit:    limit,
	}.Normalize()

	articles, total, err := ac.repo.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, ac.log, err, "Failed to retrieve articles")
		return
	}

	pages := int((total + int64(query.Limit) - 1) / int64(query.Limit))
	success(c, http.StatusOK, "Articles retrieved successfully", ArticleListResponse{
		Articles: articles,
		Pagination: Pagination{
			Page:  query.Page,
			Limit: query.Limit,
			Total: total,
			Pages: pages,
		},
	})
}

// GetTrendingArticles godoc
// @Summary Trending articles
// @Description Top five articles by view count for a language
// @Tags article
// @Produce json
// @Param language query string false "en, kn or all" default(en)
// @Success 200 {object} map[string]interface{} "Trending articles retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve trending articles"
// @Router /api/articles/trending [get]
func (ac *ArticleController) GetTrendingArticles(c *gin.Context) {
	articles, err := ac.repo.Trending(c.Request.Context(), language.NewFilter(c.Query("language")))
	if err != nil {
		respondError(c, ac.log, err, "Failed to retrieve trending articles")
		return
	}
	success(c, http.StatusOK, "Trending articles retrieved successfully", articles)
}

// GetArticleByID godoc
// @Summary Get an article by ID
// @Description Retrieve an article and count the view
// @Tags article
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} map[string]interface{} "Article retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid article ID"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /api/articles/{id} [get]
func (ac *ArticleController) GetArticleByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	article, err := ac.repo.IncrementViews(c.Request.Context(), id)
	if err != nil {
		respondError(c, ac.log, err, "Failed to retrieve article")
		return
	}
	success(c, http.StatusOK, "Article retrieved successfully", article)
}

// SearchArticles godoc
// @Summary Search articles
// @Description Full-text search over title, summary and content, ranked by relevance
// @Tags article
// @Produce json
// @Param q query string true "Search text"
// @Param language query string false "en, kn or all" default(en)
// @Success 200 {object} map[string]interface{} "Search completed successfully"
// @Failure 400 {object} map[string]interface{} "Search query is required"
// @Failure 500 {object} map[string]interface{} "Search failed"
// @Router /api/search [get]
func (ac *ArticleController) SearchArticles(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		badRequest(c, "Search query is required", nil)
		return
	}

	results, err := ac.repo.Search(c.Request.Context(), q, language.NewFilter(c.Query("language")))
	if err != nil {
		respondError(c, ac.log, err, "Search failed")
		return
	}
	success(c, http.StatusOK, "Search completed successfully", results)
}

// CreateArticle godoc
// @Summary Create a new article
// @Description Validate, sanitize and publish an article
// @Tags article
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param article body services.ArticleInput true "Article data"
// @Success 201 {object} map[string]interface{} "Article created successfully"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 500 {object} map[string]interface{} "Failed to create article"
// @Router /api/articles [post]
func (ac *ArticleController) CreateArticle(c *gin.Context) {
	var input services.ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Invalid request data", err)
		return
	}

	author, _ := middleware.CurrentUser(c)
	article, err := ac.service.Create(c.Request.Context(), author, input)
	if err != nil {
		respondError(c, ac.log, err, "Failed to create article")
		return
	}
	success(c, http.StatusCreated, "Article created successfully", article)
}

// UpdateArticle godoc
// @Summary Update an article
// @Description Replace the editable fields of an article; validated like create
// @Tags article
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Param article body services.ArticleInput true "Article data"
// @Success 200 {object} map[string]interface{} "Article updated successfully"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Failure 500 {object} map[string]interface{} "Failed to update article"
// @Router /api/articles/{id} [put]
func (ac *ArticleController) UpdateArticle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input services.ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Invalid request data", err)
		return
	}

	article, err := ac.service.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, ac.log, err, "Failed to update article")
		return
	}
	success(c, http.StatusOK, "Article updated successfully", article)
}

// DeleteArticle godoc
// @Summary Delete an article
// @Tags article
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 200 {object} map[string]interface{} "Article deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid article ID"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Failure 500 {object} map[string]interface{} "Failed to delete article"
// @Router /api/articles/{id} [delete]
func (ac *ArticleController) DeleteArticle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ac.repo.Delete(c.Request.Context(), id); err != nil {
		respondError(c, ac.log, err, "Failed to delete article")
		return
	}
	success(c, http.StatusOK, "Article deleted successfully", nil)
}

// ToggleBookmark godoc
// @Summary Toggle a bookmark
// @Description Adds the article to the caller's bookmarks, or removes it if already present
// @Tags article
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 200 {object} map[string]interface{} "Bookmark updated"
// @Failure 400 {object} map[string]interface{} "Invalid article ID"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /api/articles/{id}/bookmark [post]
func (ac *ArticleController) ToggleBookmark(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, _ := middleware.CurrentUser(c)

	// Removing a bookmark of a deleted article must still work.
	if !user.HasBookmark(id) {
		if _, err := ac.repo.FindByID(c.Request.Context(), id); err != nil {
			respondError(c, ac.log, err, "Failed to update bookmark")
			return
		}
	}

	bookmarks, bookmarked, err := ac.bookmarker.ToggleBookmark(c.Request.Context(), user.ID, id)
	if err != nil {
		respondError(c, ac.log, err, "Failed to update bookmark")
		return
	}

	message := "Bookmark removed"
	if bookmarked {
		message = "Bookmark added"
	}
	if bookmarks == nil {
		bookmarks = pq.Int64Array{}
	}
	success(c, http.StatusOK, message, BookmarkResponse{Bookmarked: bookmarked, Bookmarks: bookmarks})
}
