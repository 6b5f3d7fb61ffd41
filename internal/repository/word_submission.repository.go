package repository

import (
	"context"

	"gorm.io/gorm"

	"newsportal/database"
	"newsportal/internal/models"
)

// wordSubmissionSummaryColumns leaves out the stored file bytes.
var wordSubmissionSummaryColumns = []string{
	"id", "created_at", "updated_at", "institution_id", "institution_name",
	"file_name", "mime_type", "extracted_data", "status", "admin_notes",
}

type WordSubmissionRepository interface {
	Create(ctx context.Context, submission *models.WordSubmission) error
	FindByID(ctx context.Context, id uint) (*models.WordSubmission, error)
	FindFile(ctx context.Context, id uint) (*models.WordSubmission, error)
	List(ctx context.Context, status models.IntakeStatus) ([]models.WordSubmission, error)
	// UpdateStatus moves a row to status when its current status is one of
	// from. It reports false when no row matched.
	UpdateStatus(ctx context.Context, id uint, from []models.IntakeStatus, status models.IntakeStatus, notes *string) (bool, error)
}

type wordSubmissionRepository struct {
	db *gorm.DB
}

func NewWordSubmissionRepository(db *gorm.DB) WordSubmissionRepository {
	return &wordSubmissionRepository{db: db}
}

func (r *wordSubmissionRepository) Create(ctx context.Context, submission *models.WordSubmission) error {
	return database.Conn(ctx, r.db).Create(submission).Error
}

func (r *wordSubmissionRepository) FindByID(ctx context.Context, id uint) (*models.WordSubmission, error) {
	var submission models.WordSubmission
	err := database.Conn(ctx, r.db).Select(wordSubmissionSummaryColumns).First(&submission, id).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// FindFile loads the row including the original document bytes.
func (r *wordSubmissionRepository) FindFile(ctx context.Context, id uint) (*models.WordSubmission, error) {
	var submission models.WordSubmission
	err := database.Conn(ctx, r.db).
		Select("id", "file_name", "file_data", "mime_type").
		First(&submission, id).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// List returns submissions newest first, optionally restricted to status.
func (r *wordSubmissionRepository) List(ctx context.Context, status models.IntakeStatus) ([]models.WordSubmission, error) {
	query := database.Conn(ctx, r.db).Select(wordSubmissionSummaryColumns)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	submissions := []models.WordSubmission{}
	err := query.Order("created_at DESC").Find(&submissions).Error
	return submissions, err
}

func (r *wordSubmissionRepository) UpdateStatus(ctx context.Context, id uint, from []models.IntakeStatus, status models.IntakeStatus, notes *string) (bool, error) {
	updates := map[string]interface{}{"status": status}
	if notes != nil {
		updates["admin_notes"] = *notes
	}

	result := database.Conn(ctx, r.db).
		Model(&models.WordSubmission{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(updates)
	return result.RowsAffected > 0, result.Error
}
