package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"newsportal/database"
	"newsportal/internal/models"
)

type SubmissionRepository interface {
	Create(ctx context.Context, submission *models.Submission) error
	FindByID(ctx context.Context, id uint) (*models.Submission, error)
	ListPending(ctx context.Context) ([]models.Submission, error)
	ListByInstitution(ctx context.Context, institutionID uint) ([]models.Submission, error)
	// MarkPublished flips a pending submission to published. It reports
	// false when the row was not pending.
	MarkPublished(ctx context.Context, id uint) (bool, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	return database.Conn(ctx, r.db).Create(submission).Error
}

func (r *submissionRepository) FindByID(ctx context.Context, id uint) (*models.Submission, error) {
	var submission models.Submission
	if err := database.Conn(ctx, r.db).First(&submission, id).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) ListPending(ctx context.Context) ([]models.Submission, error) {
	submissions := []models.Submission{}
	err := database.Conn(ctx, r.db).
		Where("status = ?", models.StatusPending).
		Order("created_at DESC").
		Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepository) ListByInstitution(ctx context.Context, institutionID uint) ([]models.Submission, error) {
	submissions := []models.Submission{}
	err := database.Conn(ctx, r.db).
		Where("institution_id = ?", institutionID).
		Order("created_at DESC").
		Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepository) MarkPublished(ctx context.Context, id uint) (bool, error) {
	result := database.Conn(ctx, r.db).
		Model(&models.Submission{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Update("status", models.StatusPublished)
	return result.RowsAffected > 0, result.Error
}

type RawArticleRepository interface {
	// InsertIfAbsent stores article unless its URL is already known. It
	// reports whether a row was inserted.
	InsertIfAbsent(ctx context.Context, article *models.RawArticle) (bool, error)
	FindByID(ctx context.Context, id uint) (*models.RawArticle, error)
	ListPending(ctx context.Context) ([]models.RawArticle, error)
	MarkPublished(ctx context.Context, id uint) (bool, error)
}

type rawArticleRepository struct {
	db *gorm.DB
}

func NewRawArticleRepository(db *gorm.DB) RawArticleRepository {
	return &rawArticleRepository{db: db}
}

func (r *rawArticleRepository) InsertIfAbsent(ctx context.Context, article *models.RawArticle) (bool, error) {
	if article.Status == "" {
		article.Status = models.StatusPending
	}
	result := database.Conn(ctx, r.db).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "url"}}, DoNothing: true}).
		Create(article)
	return result.RowsAffected > 0, result.Error
}

func (r *rawArticleRepository) FindByID(ctx context.Context, id uint) (*models.RawArticle, error) {
	var article models.RawArticle
	if err := database.Conn(ctx, r.db).First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *rawArticleRepository) ListPending(ctx context.Context) ([]models.RawArticle, error) {
	articles := []models.RawArticle{}
	err := database.Conn(ctx, r.db).
		Where("status = ?", models.StatusPending).
		Order("created_at DESC").
		Find(&articles).Error
	return articles, err
}

func (r *rawArticleRepository) MarkPublished(ctx context.Context, id uint) (bool, error) {
	result := database.Conn(ctx, r.db).
		Model(&models.RawArticle{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Update("status", models.StatusPublished)
	return result.RowsAffected > 0, result.Error
}
