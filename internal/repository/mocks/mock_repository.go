package mocks

import (
	"context"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/mock"

	"newsportal/internal/language"
	"newsportal/internal/models"
	"newsportal/internal/repository"
)

// Shared MockArticleRepository
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) Update(ctx context.Context, article *models.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArticleRepository) FindByID(ctx context.Context, id uint) (*models.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) FindByIDs(ctx context.Context, ids []int64) ([]models.Article, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]models.Article), args.Error(1)
}

func (m *MockArticleRepository) IncrementViews(ctx context.Context, id uint) (*models.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) List(ctx context.Context, query repository.ArticleQuery) ([]models.Article, int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]models.Article), args.Get(1).(int64), args.Error(2)
}

func (m *MockArticleRepository) Trending(ctx context.Context, filter language.Filter) ([]models.Article, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Article), args.Error(1)
}

func (m *MockArticleRepository) Search(ctx context.Context, text string, filter language.Filter) ([]models.ArticleSearchResult, error) {
	args := m.Called(ctx, text, filter)
	return args.Get(0).([]models.ArticleSearchResult), args.Error(1)
}

// Shared MockSubmissionRepository
type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockSubmissionRepository) FindByID(ctx context.Context, id uint) (*models.Submission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) ListPending(ctx context.Context) ([]models.Submission, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) ListByInstitution(ctx context.Context, institutionID uint) ([]models.Submission, error) {
	args := m.Called(ctx, institutionID)
	return args.Get(0).([]models.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) MarkPublished(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// Shared MockRawArticleRepository
type MockRawArticleRepository struct {
	mock.Mock
}

func (m *MockRawArticleRepository) InsertIfAbsent(ctx context.Context, article *models.RawArticle) (bool, error) {
	args := m.Called(ctx, article)
	return args.Bool(0), args.Error(1)
}

func (m *MockRawArticleRepository) FindByID(ctx context.Context, id uint) (*models.RawArticle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RawArticle), args.Error(1)
}

func (m *MockRawArticleRepository) ListPending(ctx context.Context) ([]models.RawArticle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.RawArticle), args.Error(1)
}

func (m *MockRawArticleRepository) MarkPublished(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// Shared MockWordSubmissionRepository
type MockWordSubmissionRepository struct {
	mock.Mock
}

func (m *MockWordSubmissionRepository) Create(ctx context.Context, submission *models.WordSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockWordSubmissionRepository) FindByID(ctx context.Context, id uint) (*models.WordSubmission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WordSubmission), args.Error(1)
}

func (m *MockWordSubmissionRepository) FindFile(ctx context.Context, id uint) (*models.WordSubmission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WordSubmission), args.Error(1)
}

func (m *MockWordSubmissionRepository) List(ctx context.Context, status models.IntakeStatus) ([]models.WordSubmission, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]models.WordSubmission), args.Error(1)
}

func (m *MockWordSubmissionRepository) UpdateStatus(ctx context.Context, id uint, from []models.IntakeStatus, status models.IntakeStatus, notes *string) (bool, error) {
	args := m.Called(ctx, id, from, status, notes)
	return args.Bool(0), args.Error(1)
}

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByVerificationCode(ctx context.Context, code string) (*models.User, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByResetToken(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateFields(ctx context.Context, user *models.User, columns ...string) error {
	args := m.Called(ctx, user, columns)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id uint, role models.Role) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) ToggleBookmark(ctx context.Context, userID, articleID uint) (pq.Int64Array, bool, error) {
	args := m.Called(ctx, userID, articleID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(pq.Int64Array), args.Bool(1), args.Error(2)
}

// Shared MockEventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *models.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) ListUpcoming(ctx context.Context, since time.Time) ([]models.Event, error) {
	args := m.Called(ctx, since)
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockEventRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var (
	_ repository.ArticleRepository        = (*MockArticleRepository)(nil)
	_ repository.SubmissionRepository     = (*MockSubmissionRepository)(nil)
	_ repository.RawArticleRepository     = (*MockRawArticleRepository)(nil)
	_ repository.WordSubmissionRepository = (*MockWordSubmissionRepository)(nil)
	_ repository.UserRepository           = (*MockUserRepository)(nil)
	_ repository.EventRepository          = (*MockEventRepository)(nil)
)
