//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/datatypes"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"newsportal/database"
	"newsportal/internal/language"
	"newsportal/internal/logging"
	"newsportal/internal/models"
)

type RepositoryIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (s *RepositoryIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(connStr), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	s.Require().NoError(err)
	s.db = db

	s.Require().NoError(database.Migrate(db, logging.Discard()))
}

func (s *RepositoryIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *RepositoryIntegrationSuite) SetupTest() {
	s.db.Exec("TRUNCATE articles, raw_articles, submissions, word_submissions, users, events RESTART IDENTITY")
}

func TestRepositoryIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RepositoryIntegrationSuite))
}

func (s *RepositoryIntegrationSuite) newArticle(title, lang, category string, views int64) *models.Article {
	return &models.Article{
		Title:           title,
		Summary:         "A summary that is long enough for the rules",
		Content:         "<p>" + title + " body text about admissions and examinations</p>",
		ImageURL:        "https://img.example/x.jpg",
		Category:        category,
		Source:          "Board",
		ContentLanguage: lang,
		ViewCount:       views,
	}
}

func (s *RepositoryIntegrationSuite) TestArticleList_LanguageAndCategoryFilters() {
	repo := NewArticleRepository(s.db, logging.Discard())

	s.Require().NoError(repo.Create(s.ctx, s.newArticle("English exams", "en", "Exams", 0)))
	s.Require().NoError(repo.Create(s.ctx, s.newArticle("Kannada exams", "kn", "Exams", 0)))
	s.Require().NoError(repo.Create(s.ctx, s.newArticle("English jobs", "en", "Jobs", 0)))
	s.Require().NoError(s.db.Exec(
		"INSERT INTO articles (title, summary, content, image_url, category, source, content_language, view_count, created_at, updated_at) VALUES ('Legacy', 's', 'c', 'i', 'exams', 'x', NULL, 0, now(), now())",
	).Error)

	english, total, err := repo.List(s.ctx, ArticleQuery{Filter: language.NewFilter("en"), Category: "EXAMS"})
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	for _, a := range english {
		s.True(language.NewFilter("en").Matches(a.ContentLanguage))
	}

	kannada, total, err := repo.List(s.ctx, ArticleQuery{Filter: language.NewFilter("kn")})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Equal("Kannada exams", kannada[0].Title)

	_, total, err = repo.List(s.ctx, ArticleQuery{Filter: language.NewFilter("all")})
	s.Require().NoError(err)
	s.Equal(int64(4), total)
}

func (s *RepositoryIntegrationSuite) TestArticleList_PaginatesNewestFirst() {
	repo := NewArticleRepository(s.db, logging.Discard())
	for _, title := range []string{"First item", "Second item", "Third item"} {
		s.Require().NoError(repo.Create(s.ctx, s.newArticle(title, "en", "News", 0)))
	}

	page, total, err := repo.List(s.ctx, ArticleQuery{Filter: language.NewFilter(""), Page: 1, Limit: 2})
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Require().Len(page, 2)
	s.Equal("Third item", page[0].Title)

	page, _, err = repo.List(s.ctx, ArticleQuery{Filter: language.NewFilter(""), Page: 2, Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal("First item", page[0].Title)
}

func (s *RepositoryIntegrationSuite) TestArticleIncrementViews() {
	repo := NewArticleRepository(s.db, logging.Discard())
	article := s.newArticle("Viewed article", "en", "News", 4)
	s.Require().NoError(repo.Create(s.ctx, article))

	updated, err := repo.IncrementViews(s.ctx, article.ID)
	s.Require().NoError(err)
	s.Equal(int64(5), updated.ViewCount)
	s.Equal("Viewed article", updated.Title)

	_, err = repo.IncrementViews(s.ctx, 9999)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *RepositoryIntegrationSuite) TestArticleTrending_OrdersByViews() {
	repo := NewArticleRepository(s.db, logging.Discard())
	for i, views := range []int64{3, 50, 7, 1, 20, 9} {
		s.Require().NoError(repo.Create(s.ctx, s.newArticle("Trending "+string(rune('A'+i)), "en", "News", views)))
	}
	s.Require().NoError(repo.Create(s.ctx, s.newArticle("Kannada hit", "kn", "News", 1000)))

	trending, err := repo.Trending(s.ctx, language.NewFilter("en"))
	s.Require().NoError(err)
	s.Require().Len(trending, TrendingLimit)
	s.Equal(int64(50), trending[0].ViewCount)
	s.Equal(int64(20), trending[1].ViewCount)
	s.Empty(trending[0].Content)
}

func (s *RepositoryIntegrationSuite) TestArticleSearch_RanksAndFilters() {
	repo := NewArticleRepository(s.db, logging.Discard())
	s.Require().NoError(repo.Create(s.ctx, s.newArticle("Scholarship scholarship deadline", "en", "News", 0)))
	s.Require().NoError(repo.Create(s.ctx, s.newArticle("Hostel scholarship", "en", "News", 0)))
	s.Require().NoError(repo.Create(s.ctx, s.newArticle("Scholarship in Kannada", "kn", "News", 0)))
	s.Require().NoError(repo.Create(s.ctx, s.newArticle("Sports day", "en", "News", 0)))

	results, err := repo.Search(s.ctx, "scholarship", language.NewFilter("en"))
	s.Require().NoError(err)
	s.Require().Len(results, 2)
	s.Equal("Scholarship scholarship deadline", results[0].Title)
	s.GreaterOrEqual(results[0].Score, results[1].Score)
}

func (s *RepositoryIntegrationSuite) TestArticleUpdateAndDelete() {
	repo := NewArticleRepository(s.db, logging.Discard())
	article := s.newArticle("Original title", "en", "News", 0)
	s.Require().NoError(repo.Create(s.ctx, article))

	edit := *article
	edit.Title = "Edited title"
	s.Require().NoError(repo.Update(s.ctx, &edit))
	s.Equal("Edited title", edit.Title)

	s.Require().NoError(repo.Delete(s.ctx, article.ID))
	s.ErrorIs(repo.Delete(s.ctx, article.ID), gorm.ErrRecordNotFound)
}

func (s *RepositoryIntegrationSuite) TestUserToggleBookmark_IsItsOwnInverse() {
	users := NewUserRepository(s.db)
	articles := NewArticleRepository(s.db, logging.Discard())

	user := &models.User{Username: "reader", Email: "Reader@Example.com", Password: "x", Role: models.RoleReader}
	s.Require().NoError(users.Create(s.ctx, user))
	s.Equal("reader@example.com", user.Email)

	first := s.newArticle("First bookmark", "en", "News", 0)
	second := s.newArticle("Second bookmark", "en", "News", 0)
	s.Require().NoError(articles.Create(s.ctx, first))
	s.Require().NoError(articles.Create(s.ctx, second))

	_, added, err := users.ToggleBookmark(s.ctx, user.ID, first.ID)
	s.Require().NoError(err)
	s.True(added)

	list, added, err := users.ToggleBookmark(s.ctx, user.ID, second.ID)
	s.Require().NoError(err)
	s.True(added)
	s.Equal([]int64{int64(first.ID), int64(second.ID)}, []int64(list))

	ordered, err := articles.FindByIDs(s.ctx, list)
	s.Require().NoError(err)
	s.Equal("First bookmark", ordered[0].Title)

	list, added, err = users.ToggleBookmark(s.ctx, user.ID, second.ID)
	s.Require().NoError(err)
	s.False(added)
	s.Equal([]int64{int64(first.ID)}, []int64(list))
}

func (s *RepositoryIntegrationSuite) TestSubmissionMarkPublished_OnlyOnce() {
	repo := NewSubmissionRepository(s.db)
	sub := &models.Submission{Title: "t", Summary: "s", Content: "c", ImageURL: "i", InstitutionID: 1, Status: models.StatusPending}
	s.Require().NoError(repo.Create(s.ctx, sub))

	ok, err := repo.MarkPublished(s.ctx, sub.ID)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = repo.MarkPublished(s.ctx, sub.ID)
	s.Require().NoError(err)
	s.False(ok)

	pending, err := repo.ListPending(s.ctx)
	s.Require().NoError(err)
	s.Empty(pending)
}

func (s *RepositoryIntegrationSuite) TestRawArticleInsertIfAbsent_SkipsDuplicateURL() {
	repo := NewRawArticleRepository(s.db)

	inserted, err := repo.InsertIfAbsent(s.ctx, &models.RawArticle{Title: "Original", URL: "https://x.example/a"})
	s.Require().NoError(err)
	s.True(inserted)

	inserted, err = repo.InsertIfAbsent(s.ctx, &models.RawArticle{Title: "Overwrite attempt", URL: "https://x.example/a"})
	s.Require().NoError(err)
	s.False(inserted)

	pending, err := repo.ListPending(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(pending, 1)
	s.Equal("Original", pending[0].Title)
}

func (s *RepositoryIntegrationSuite) TestWordSubmission_DetailOmitsFileBytes() {
	repo := NewWordSubmissionRepository(s.db)
	sub := &models.WordSubmission{
		InstitutionID: 2,
		FileName:      "notice.docx",
		FileData:      []byte("PK\x03\x04data"),
		MimeType:      "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		Status:        models.StatusPending,
	}
	sub.ExtractedData = datatypes.NewJSONType(models.ExtractedData{Title: "Exam notice"})
	s.Require().NoError(repo.Create(s.ctx, sub))

	detail, err := repo.FindByID(s.ctx, sub.ID)
	s.Require().NoError(err)
	s.Empty(detail.FileData)
	s.Equal("notice.docx", detail.FileName)
	s.Equal("Exam notice", detail.ExtractedData.Data().Title)

	file, err := repo.FindFile(s.ctx, sub.ID)
	s.Require().NoError(err)
	s.Equal(sub.FileData, file.FileData)

	notes := "checking facts"
	ok, err := repo.UpdateStatus(s.ctx, sub.ID, []models.IntakeStatus{models.StatusPending}, models.StatusReviewing, &notes)
	s.Require().NoError(err)
	s.True(ok)

	reviewing, err := repo.List(s.ctx, models.StatusReviewing)
	s.Require().NoError(err)
	s.Require().Len(reviewing, 1)
	s.Equal("checking facts", reviewing[0].AdminNotes)
}

func (s *RepositoryIntegrationSuite) TestEventListUpcoming() {
	repo := NewEventRepository(s.db)
	now := time.Now()
	s.Require().NoError(repo.Create(s.ctx, &models.Event{Title: "Past", Date: now.Add(-48 * time.Hour)}))
	s.Require().NoError(repo.Create(s.ctx, &models.Event{Title: "Later", Date: now.Add(72 * time.Hour)}))
	s.Require().NoError(repo.Create(s.ctx, &models.Event{Title: "Soon", Date: now.Add(24 * time.Hour)}))

	events, err := repo.ListUpcoming(s.ctx, now)
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal("Soon", events[0].Title)
}

func (s *RepositoryIntegrationSuite) TestUserUpdateFields_KeepsConcurrentBookmark() {
	users := NewUserRepository(s.db)
	articles := NewArticleRepository(s.db, logging.Discard())

	user := &models.User{Username: "writer", Email: "writer@example.com", Password: "x", Role: models.RoleReader}
	s.Require().NoError(users.Create(s.ctx, user))
	article := s.newArticle("Saved while resetting", "en", "News", 0)
	s.Require().NoError(articles.Create(s.ctx, article))

	stale, err := users.FindByID(s.ctx, user.ID)
	s.Require().NoError(err)
	_, _, err = users.ToggleBookmark(s.ctx, user.ID, article.ID)
	s.Require().NoError(err)

	stale.ResetPasswordToken = "reset-token"
	s.Require().NoError(users.UpdateFields(s.ctx, stale, "reset_password_token"))

	stored, err := users.FindByID(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal("reset-token", stored.ResetPasswordToken)
	s.Equal([]int64{int64(article.ID)}, []int64(stored.Bookmarks))
}
