package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"newsportal/internal/language"
)

func TestArticleQuery_Normalize(t *testing.T) {
	tests := []struct {
		name      string
		in        ArticleQuery
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", in: ArticleQuery{}, wantPage: 1, wantLimit: DefaultPageSize},
		{name: "negative page", in: ArticleQuery{Page: -3, Limit: 10}, wantPage: 1, wantLimit: 10},
		{name: "limit capped", in: ArticleQuery{Page: 2, Limit: 5000}, wantPage: 2, wantLimit: MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantLimit, got.Limit)
		})
	}
}

func TestArticleQuery_NormalizeTrimsCategory(t *testing.T) {
	got := ArticleQuery{Category: "  Exams "}.Normalize()
	assert.Equal(t, "Exams", got.Category)
}

func TestTrendingCacheKey_PerLanguage(t *testing.T) {
	assert.Equal(t, "trending:en", trendingCacheKey(language.NewFilter("")))
	assert.Equal(t, "trending:kn", trendingCacheKey(language.NewFilter("KN")))
	assert.Equal(t, "trending:all", trendingCacheKey(language.NewFilter("all")))
}
