package services

import (
	"context"
	"errors"
	"html"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"newsportal/internal/language"
	"newsportal/internal/models"
	"newsportal/internal/publisher"
	"newsportal/internal/repository"
	"newsportal/internal/sanitize"
	"newsportal/internal/validation"
)

// ArticleInput is the editable article payload.
type ArticleInput struct {
	Title           string `json:"title" example:"SSLC Exam Results 2024 Announced"`
	Summary         string `json:"summary" example:"The board has published the SSLC results for 2024."`
	Content         string `json:"content" example:"<p>Full article body</p>"`
	ImageURL        string `json:"imageUrl" example:"https://i.ibb.co/abc/results.jpg"`
	VideoURL        string `json:"videoUrl" example:"https://www.youtube.com/embed/xyz"`
	Category        string `json:"category" example:"Exams"`
	Source          string `json:"source" example:"Karnataka School Examination Board"`
	ContentLanguage string `json:"contentLanguage" example:"en"`
}

// BuildArticle validates input under rules and returns an unsaved article
// with sanitized content and a concrete language. A validation failure is
// returned as *validation.Error.
func BuildArticle(in ArticleInput, rules validation.Rules) (*models.Article, error) {
	fields := validation.Fields{
		Title:    in.Title,
		Summary:  in.Summary,
		Content:  in.Content,
		ImageURL: in.ImageURL,
		Category: in.Category,
	}
	if verr := validation.Check(fields, rules); verr != nil {
		return nil, verr
	}

	// Sanitizing can drop text, so the word checks are repeated on what will be stored.
	content := sanitize.HTML(in.Content)
	words := validation.WordCount(content)
	if words == 0 {
		return nil, validation.New(validation.CodeContentRequired, "Content is required")
	}
	if rules.MinContentWords > 0 && words < rules.MinContentWords {
		return nil, validation.New(validation.CodeContentTooShort, "Content must be at least 50 words")
	}

	return &models.Article{
		Title:           strings.TrimSpace(in.Title),
		Summary:         strings.TrimSpace(in.Summary),
		Content:         content,
		ImageURL:        strings.TrimSpace(in.ImageURL),
		VideoURL:        strings.TrimSpace(in.VideoURL),
		Category:        strings.TrimSpace(in.Category),
		Source:          strings.TrimSpace(in.Source),
		ContentLanguage: string(language.Resolve(in.ContentLanguage)),
	}, nil
}

// PlainTextToHTML wraps each non-empty line of text in a paragraph.
func PlainTextToHTML(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(line))
		b.WriteString("</p>")
	}
	return b.String()
}

// ArticleService handles admin-authored articles.
type ArticleService struct {
	articles repository.ArticleRepository
	notifier publisher.Notifier
	log      *logrus.Logger
}

func NewArticleService(articles repository.ArticleRepository, notifier publisher.Notifier, log *logrus.Logger) *ArticleService {
	return &ArticleService{articles: articles, notifier: notifier, log: log}
}

func (s *ArticleService) Create(ctx context.Context, author *models.User, in ArticleInput) (*models.Article, error) {
	article, err := BuildArticle(in, validation.ArticleRules)
	if err != nil {
		return nil, err
	}
	if article.Source == "" {
		article.Source = author.DisplayName()
	}
	article.AuthorID = &author.ID

	if err := s.articles.Create(ctx, article); err != nil {
		return nil, err
	}

	notify(ctx, s.notifier, s.log, article, publisher.OriginAdmin, 0)
	return article, nil
}

// Update re-validates and re-sanitizes like Create.
func (s *ArticleService) Update(ctx context.Context, id uint, in ArticleInput) (*models.Article, error) {
	article, err := BuildArticle(in, validation.ArticleRules)
	if err != nil {
		return nil, err
	}
	article.ID = id

	if err := s.articles.Update(ctx, article); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return article, nil
}

func notify(ctx context.Context, notifier publisher.Notifier, log *logrus.Logger, article *models.Article, origin publisher.Origin, sourceID uint) {
	if notifier == nil {
		return
	}
	event := publisher.Event{
		Action:          "published",
		ArticleID:       article.ID,
		Origin:          origin,
		SourceID:        sourceID,
		Category:        article.Category,
		ContentLanguage: article.ContentLanguage,
		Timestamp:       time.Now().UTC(),
	}
	if err := notifier.Notify(ctx, event); err != nil {
		log.WithError(err).WithField("article_id", article.ID).Warn("failed to publish article event")
	}
}
