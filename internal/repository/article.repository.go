package repository

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"newsportal/database"
	"newsportal/internal/language"
	"newsportal/internal/models"
)

const (
	DefaultPageSize = 30
	MaxPageSize     = 100
	TrendingLimit   = 5

	trendingCacheKeyPrefix = "trending:"
)

// trendingColumns is the projection served by the trending widget.
var trendingColumns = []string{"id", "created_at", "title", "summary", "image_url", "category", "source", "content_language", "view_count"}

// ArticleQuery describes one page of the article listing.
type ArticleQuery struct {
	Filter   language.Filter
	Category string
	Page     int
	Limit    int
}

// Normalize clamps page and limit into their valid ranges.
func (q ArticleQuery) Normalize() ArticleQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultPageSize
	}
	if q.Limit > MaxPageSize {
		q.Limit = MaxPageSize
	}
	q.Category = strings.TrimSpace(q.Category)
	return q
}

type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Article, error)
	FindByIDs(ctx context.Context, ids []int64) ([]models.Article, error)
	IncrementViews(ctx context.Context, id uint) (*models.Article, error)
	List(ctx context.Context, query ArticleQuery) ([]models.Article, int64, error)
	Trending(ctx context.Context, filter language.Filter) ([]models.Article, error)
	Search(ctx context.Context, text string, filter language.Filter) ([]models.ArticleSearchResult, error)
}

// JSONCache is the subset of the Redis client the article repository uses.
type JSONCache interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type articleRepository struct {
	db    *gorm.DB
	cache JSONCache
	ttl   time.Duration
	log   *logrus.Logger
}

func NewArticleRepository(db *gorm.DB, log *logrus.Logger) ArticleRepository {
	return &articleRepository{db: db, log: log}
}

// NewCachedArticleRepository caches trending results per language for ttl.
func NewCachedArticleRepository(db *gorm.DB, cache JSONCache, ttl time.Duration, log *logrus.Logger) ArticleRepository {
	return &articleRepository{db: db, cache: cache, ttl: ttl, log: log}
}

func trendingCacheKey(filter language.Filter) string {
	return trendingCacheKeyPrefix + string(filter.Language())
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	if err := database.Conn(ctx, r.db).Create(article).Error; err != nil {
		return err
	}
	r.invalidateTrending(ctx)
	return nil
}

// Update overwrites the editable columns of an existing article and loads
// the stored row back into article.
func (r *articleRepository) Update(ctx context.Context, article *models.Article) error {
	result := database.Conn(ctx, r.db).
		Model(article).
		Clauses(clause.Returning{}).
		Select("title", "summary", "content", "image_url", "video_url", "category", "source", "content_language", "updated_at").
		Updates(article)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	r.invalidateTrending(ctx)
	return nil
}

func (r *articleRepository) Delete(ctx context.Context, id uint) error {
	result := database.Conn(ctx, r.db).Delete(&models.Article{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	r.invalidateTrending(ctx)
	return nil
}

func (r *articleRepository) FindByID(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	if err := database.Conn(ctx, r.db).First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// FindByIDs returns the articles in the order of ids, skipping ids that no
// longer resolve to a row.
func (r *articleRepository) FindByIDs(ctx context.Context, ids []int64) ([]models.Article, error) {
	if len(ids) == 0 {
		return []models.Article{}, nil
	}

	var found []models.Article
	if err := database.Conn(ctx, r.db).Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, err
	}

	byID := make(map[int64]models.Article, len(found))
	for _, a := range found {
		byID[int64(a.ID)] = a
	}

	ordered := make([]models.Article, 0, len(found))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			ordered = append(ordered, a)
		}
	}
	return ordered, nil
}

// IncrementViews bumps view_count in a single statement and returns the
// updated row.
func (r *articleRepository) IncrementViews(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	result := database.Conn(ctx, r.db).
		Model(&article).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &article, nil
}

func (r *articleRepository) List(ctx context.Context, query ArticleQuery) ([]models.Article, int64, error) {
	query = query.Normalize()

	base := database.Conn(ctx, r.db).Model(&models.Article{}).Scopes(query.Filter.Scope())
	if query.Category != "" {
		base = base.Where("LOWER(category) = LOWER(?)", query.Category)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	articles := []models.Article{}
	err := base.Session(&gorm.Session{}).
		Order("created_at DESC").
		Order("id DESC").
		Offset((query.Page - 1) * query.Limit).
		Limit(query.Limit).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *articleRepository) Trending(ctx context.Context, filter language.Filter) ([]models.Article, error) {
	key := trendingCacheKey(filter)
	if r.cache != nil {
		var cached []models.Article
		hit, err := r.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			r.log.WithError(err).Warn("trending cache read failed")
		} else if hit {
			return cached, nil
		}
	}

	articles := []models.Article{}
	err := database.Conn(ctx, r.db).
		Select(trendingColumns).
		Scopes(filter.Scope()).
		Order("view_count DESC").
		Order("id DESC").
		Limit(TrendingLimit).
		Find(&articles).Error
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.SetJSON(ctx, key, articles, r.ttl); err != nil {
			r.log.WithError(err).Warn("trending cache write failed")
		}
	}
	return articles, nil
}

// Search ranks articles whose title, summary or content match text.
func (r *articleRepository) Search(ctx context.Context, text string, filter language.Filter) ([]models.ArticleSearchResult, error) {
	results := []models.ArticleSearchResult{}
	err := database.Conn(ctx, r.db).
		Model(&models.Article{}).
		Select("articles.*, ts_rank("+database.ArticleSearchDocument+", plainto_tsquery('simple', ?)) AS score", text).
		Where(database.ArticleSearchDocument+" @@ plainto_tsquery('simple', ?)", text).
		Scopes(filter.Scope()).
		Order("score DESC").
		Order("id DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *articleRepository) invalidateTrending(ctx context.Context) {
	if r.cache == nil {
		return
	}
	keys := []string{
		trendingCacheKey(language.NewFilter(string(language.English))),
		trendingCacheKey(language.NewFilter(string(language.Kannada))),
		trendingCacheKey(language.NewFilter(string(language.All))),
	}
	if err := r.cache.Delete(ctx, keys...); err != nil {
		r.log.WithError(err).Warn("trending cache invalidation failed")
	}
}
