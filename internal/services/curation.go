package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"newsportal/internal/extract"
	"newsportal/internal/language"
	"newsportal/internal/models"
	"newsportal/internal/publisher"
	"newsportal/internal/repository"
	"newsportal/internal/validation"
)

// SubmissionInput is what an institution sends when proposing an article.
type SubmissionInput struct {
	Title           string `json:"title"`
	Summary         string `json:"summary"`
	Content         string `json:"content"`
	ImageURL        string `json:"imageUrl"`
	VideoURL        string `json:"videoUrl"`
	ContentLanguage string `json:"contentLanguage" example:"kn"`
}

// WordPublishInput overrides the data extracted from a Word upload.
// Empty fields fall back to the extracted values.
type WordPublishInput struct {
	Title           string `json:"title"`
	Summary         string `json:"summary"`
	Content         string `json:"content"`
	ImageURL        string `json:"imageUrl"`
	VideoURL        string `json:"videoUrl"`
	Category        string `json:"category"`
	Source          string `json:"source"`
	ContentLanguage string `json:"contentLanguage"`
}

// IntakeOrigin tags an entry of the merged pending list.
type IntakeOrigin string

const (
	IntakeSubmission IntakeOrigin = "submission"
	IntakeRawArticle IntakeOrigin = "raw_article"
)

// IntakeItem is one row of the admin's merged pending list.
type IntakeItem struct {
	Origin    IntakeOrigin `json:"origin"`
	ID        uint         `json:"id"`
	Title     string       `json:"title"`
	Source    string       `json:"source"`
	URL       string       `json:"url,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

// PendingIntake groups everything awaiting curation.
type PendingIntake struct {
	Submissions []models.Submission `json:"submissions"`
	RawArticles []models.RawArticle `json:"rawArticles"`
	Items       []IntakeItem        `json:"items"`
}

type CurationRepositories struct {
	Articles        repository.ArticleRepository
	Submissions     repository.SubmissionRepository
	RawArticles     repository.RawArticleRepository
	WordSubmissions repository.WordSubmissionRepository
}

// CurationService moves intake records into published articles.
type CurationService struct {
	tx        Transactor
	repos     CurationRepositories
	extractor *extract.Extractor
	notifier  publisher.Notifier
	log       *logrus.Logger
}

func NewCurationService(tx Transactor, repos CurationRepositories, extractor *extract.Extractor, notifier publisher.Notifier, log *logrus.Logger) *CurationService {
	if extractor == nil {
		extractor = extract.NewExtractor(nil)
	}
	return &CurationService{tx: tx, repos: repos, extractor: extractor, notifier: notifier, log: log}
}

func (s *CurationService) CreateSubmission(ctx context.Context, actor *models.User, in SubmissionInput) (*models.Submission, error) {
	if actor == nil || actor.Role != models.RoleInstitution {
		return nil, ErrPermissionDenied
	}

	fields := validation.Fields{Title: in.Title, Summary: in.Summary, Content: in.Content, ImageURL: in.ImageURL}
	if verr := validation.Check(fields, validation.SubmissionRules); verr != nil {
		return nil, verr
	}

	submission := &models.Submission{
		Title:           strings.TrimSpace(in.Title),
		Summary:         strings.TrimSpace(in.Summary),
		Content:         in.Content,
		ImageURL:        strings.TrimSpace(in.ImageURL),
		VideoURL:        strings.TrimSpace(in.VideoURL),
		ContentLanguage: string(language.Resolve(in.ContentLanguage)),
		Source:          actor.Username,
		InstitutionID:   actor.ID,
		Status:          models.StatusPending,
	}
	if err := s.repos.Submissions.Create(ctx, submission); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"submission_id": submission.ID, "institution_id": actor.ID}).Info("submission created")
	return submission, nil
}

func (s *CurationService) ListOwnSubmissions(ctx context.Context, actor *models.User) ([]models.Submission, error) {
	return s.repos.Submissions.ListByInstitution(ctx, actor.ID)
}

// PendingIntake returns pending submissions and raw articles, plus both
// merged into one list tagged by origin, newest first.
func (s *CurationService) PendingIntake(ctx context.Context) (*PendingIntake, error) {
	submissions, err := s.repos.Submissions.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	raw, err := s.repos.RawArticles.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]IntakeItem, 0, len(submissions)+len(raw))
	for _, sub := range submissions {
		items = append(items, IntakeItem{Origin: IntakeSubmission, ID: sub.ID, Title: sub.Title, Source: sub.Source, CreatedAt: sub.CreatedAt})
	}
	for _, r := range raw {
		items = append(items, IntakeItem{Origin: IntakeRawArticle, ID: r.ID, Title: r.Title, Source: r.Source, URL: r.URL, CreatedAt: r.CreatedAt})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	return &PendingIntake{Submissions: submissions, RawArticles: raw, Items: items}, nil
}

func (s *CurationService) PendingRawArticles(ctx context.Context) ([]models.RawArticle, error) {
	return s.repos.RawArticles.ListPending(ctx)
}

// PublishSubmission turns a pending submission into an article attributed
// to the submitting institution. The status flip and the article insert
// commit together; the flip is conditional so a concurrent publish of the
// same submission fails with ErrAlreadyPublished.
func (s *CurationService) PublishSubmission(ctx context.Context, id uint, category string) (*models.Article, error) {
	var (
		article    *models.Article
		submission *models.Submission
	)

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		submission, err = s.repos.Submissions.FindByID(ctx, id)
		if err != nil {
			return notFound(err)
		}
		if submission.Status == models.StatusPublished {
			return ErrAlreadyPublished
		}

		article, err = BuildArticle(ArticleInput{
			Title:           submission.Title,
			Summary:         submission.Summary,
			Content:         submission.Content,
			ImageURL:        submission.ImageURL,
			VideoURL:        submission.VideoURL,
			Category:        category,
			Source:          submission.Source,
			ContentLanguage: submission.ContentLanguage,
		}, validation.CurationRules)
		if err != nil {
			return err
		}
		article.AuthorID = &submission.InstitutionID

		flipped, err := s.repos.Submissions.MarkPublished(ctx, id)
		if err != nil {
			return err
		}
		if !flipped {
			return ErrAlreadyPublished
		}
		return s.repos.Articles.Create(ctx, article)
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"submission_id": id, "article_id": article.ID}).Info("submission published")
	notify(ctx, s.notifier, s.log, article, publisher.OriginSubmission, id)
	return article, nil
}

// PublishRawArticle publishes an admin-authored article for a scraped
// stub and marks the stub consumed.
func (s *CurationService) PublishRawArticle(ctx context.Context, id uint, in ArticleInput) (*models.Article, error) {
	var article *models.Article

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		raw, err := s.repos.RawArticles.FindByID(ctx, id)
		if err != nil {
			return notFound(err)
		}
		if raw.Status == models.StatusPublished {
			return ErrAlreadyPublished
		}

		if strings.TrimSpace(in.Source) == "" {
			in.Source = raw.Source
		}
		if strings.TrimSpace(in.VideoURL) == "" {
			in.VideoURL = raw.VideoURL
		}
		article, err = BuildArticle(in, validation.ArticleRules)
		if err != nil {
			return err
		}

		flipped, err := s.repos.RawArticles.MarkPublished(ctx, id)
		if err != nil {
			return err
		}
		if !flipped {
			return ErrAlreadyPublished
		}
		return s.repos.Articles.Create(ctx, article)
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"raw_article_id": id, "article_id": article.ID}).Info("raw article published")
	notify(ctx, s.notifier, s.log, article, publisher.OriginRawArticle, id)
	return article, nil
}

// SubmitWordDocument extracts a Word upload and stores it for review.
// The document must already have passed the upload policy.
func (s *CurationService) SubmitWordDocument(ctx context.Context, actor *models.User, fileName string, data []byte, mime string) (*models.WordSubmission, error) {
	if actor == nil || actor.Role != models.RoleInstitution {
		return nil, ErrPermissionDenied
	}

	result := s.extractor.Extract(data)
	if !result.Success {
		if errors.Is(result.Err, extract.ErrDocumentTooLarge) {
			return nil, result.Err
		}
		return nil, fmt.Errorf("%w: %s", ErrExtractionFailed, result.Error)
	}

	submission := &models.WordSubmission{
		InstitutionID:   actor.ID,
		InstitutionName: actor.DisplayName(),
		FileName:        fileName,
		FileData:        data,
		MimeType:        mime,
		ExtractedData:   datatypes.NewJSONType(result.Data),
		Status:          models.StatusPending,
	}
	if err := s.repos.WordSubmissions.Create(ctx, submission); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"word_submission_id": submission.ID,
		"institution_id":     actor.ID,
		"language":           result.Data.ContentLanguage,
	}).Info("word submission stored")
	return submission, nil
}

func (s *CurationService) ListWordSubmissions(ctx context.Context, status string) ([]models.WordSubmission, error) {
	st := models.IntakeStatus(strings.ToLower(strings.TrimSpace(status)))
	switch st {
	case "", models.StatusPending, models.StatusReviewing, models.StatusPublished, models.StatusRejected:
	default:
		return nil, ErrInvalidStatus
	}
	return s.repos.WordSubmissions.List(ctx, st)
}

func (s *CurationService) GetWordSubmission(ctx context.Context, id uint) (*models.WordSubmission, error) {
	submission, err := s.repos.WordSubmissions.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return submission, nil
}

func (s *CurationService) GetWordSubmissionFile(ctx context.Context, id uint) (*models.WordSubmission, error) {
	submission, err := s.repos.WordSubmissions.FindFile(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return submission, nil
}

// ReviewWordSubmission moves a pending or reviewing upload to reviewing or
// rejected. Published and rejected uploads are final.
func (s *CurationService) ReviewWordSubmission(ctx context.Context, id uint, status string, notes *string) (*models.WordSubmission, error) {
	target := models.IntakeStatus(strings.ToLower(strings.TrimSpace(status)))
	if target != models.StatusReviewing && target != models.StatusRejected {
		return nil, ErrInvalidStatus
	}

	from := []models.IntakeStatus{models.StatusPending, models.StatusReviewing}
	updated, err := s.repos.WordSubmissions.UpdateStatus(ctx, id, from, target, notes)
	if err != nil {
		return nil, err
	}

	current, err := s.repos.WordSubmissions.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if !updated {
		if current.Status == models.StatusPublished {
			return nil, ErrAlreadyPublished
		}
		return nil, ErrInvalidStatus
	}
	return current, nil
}

// PublishWordSubmission publishes the extracted data of a Word upload,
// overridden by whatever the admin edited.
func (s *CurationService) PublishWordSubmission(ctx context.Context, id uint, in WordPublishInput) (*models.Article, error) {
	var article *models.Article

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		submission, err := s.repos.WordSubmissions.FindByID(ctx, id)
		if err != nil {
			return notFound(err)
		}
		switch submission.Status {
		case models.StatusPublished:
			return ErrAlreadyPublished
		case models.StatusRejected:
			return ErrInvalidStatus
		}

		extracted := submission.ExtractedData.Data()
		content := in.Content
		if strings.TrimSpace(content) == "" {
			content = PlainTextToHTML(extracted.Content)
		}

		article, err = BuildArticle(ArticleInput{
			Title:           firstNonBlank(in.Title, extracted.Title),
			Summary:         firstNonBlank(in.Summary, extracted.Summary),
			Content:         content,
			ImageURL:        in.ImageURL,
			VideoURL:        in.VideoURL,
			Category:        in.Category,
			Source:          firstNonBlank(in.Source, submission.InstitutionName),
			ContentLanguage: firstNonBlank(in.ContentLanguage, extracted.ContentLanguage),
		}, validation.CurationRules)
		if err != nil {
			return err
		}
		article.AuthorID = &submission.InstitutionID
		article.WordSubmissionID = &submission.ID

		from := []models.IntakeStatus{models.StatusPending, models.StatusReviewing}
		flipped, err := s.repos.WordSubmissions.UpdateStatus(ctx, id, from, models.StatusPublished, nil)
		if err != nil {
			return err
		}
		if !flipped {
			return ErrAlreadyPublished
		}
		return s.repos.Articles.Create(ctx, article)
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"word_submission_id": id, "article_id": article.ID}).Info("word submission published")
	notify(ctx, s.notifier, s.log, article, publisher.OriginWordSubmission, id)
	return article, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
