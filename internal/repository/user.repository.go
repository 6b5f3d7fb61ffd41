package repository

import (
	"context"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"newsportal/database"
	"newsportal/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	EmailExists(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByVerificationCode(ctx context.Context, code string) (*models.User, error)
	FindByResetToken(ctx context.Context, token string) (*models.User, error)
	// UpdateFields writes only the named columns of user, leaving the
	// rest of the row (bookmarks included) as stored.
	UpdateFields(ctx context.Context, user *models.User, columns ...string) error
	List(ctx context.Context) ([]models.User, error)
	UpdateRole(ctx context.Context, id uint, role models.Role) error
	Delete(ctx context.Context, id uint) error
	// ToggleBookmark adds or removes articleID from the user's bookmarks
	// and returns the resulting list and whether the article is now
	// bookmarked.
	ToggleBookmark(ctx context.Context, userID, articleID uint) (pq.Int64Array, bool, error)
}

type userRepository struct {
	db *gorm.DB
	tm *database.TransactionManager
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db, tm: database.NewTransactionManager(db)}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	user.Email = normalizeEmail(user.Email)
	return database.Conn(ctx, r.db).Create(user).Error
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := database.Conn(ctx, r.db).
		Model(&models.User{}).
		Where("email = ?", normalizeEmail(email)).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := database.Conn(ctx, r.db).Where("email = ?", normalizeEmail(email)).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := database.Conn(ctx, r.db).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByVerificationCode(ctx context.Context, code string) (*models.User, error) {
	var user models.User
	err := database.Conn(ctx, r.db).Where("verification_code = ? AND verification_code <> ''", code).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByResetToken(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	err := database.Conn(ctx, r.db).Where("reset_password_token = ? AND reset_password_token <> ''", token).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateFields(ctx context.Context, user *models.User, columns ...string) error {
	if len(columns) == 0 {
		return nil
	}
	return database.Conn(ctx, r.db).Model(user).Select(columns).Updates(user).Error
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	err := database.Conn(ctx, r.db).Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *userRepository) UpdateRole(ctx context.Context, id uint, role models.Role) error {
	result := database.Conn(ctx, r.db).Model(&models.User{}).Where("id = ?", id).Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	result := database.Conn(ctx, r.db).Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) ToggleBookmark(ctx context.Context, userID, articleID uint) (pq.Int64Array, bool, error) {
	var (
		bookmarks  pq.Int64Array
		bookmarked bool
	)

	err := r.tm.WithTransaction(ctx, func(ctx context.Context) error {
		tx := database.Conn(ctx, r.db)

		var user models.User
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "bookmarks").
			First(&user, userID).Error
		if err != nil {
			return err
		}

		bookmarked = user.ToggleBookmark(articleID)
		if user.Bookmarks == nil {
			user.Bookmarks = pq.Int64Array{}
		}
		bookmarks = user.Bookmarks

		return tx.Model(&models.User{}).Where("id = ?", userID).Update("bookmarks", user.Bookmarks).Error
	})
	if err != nil {
		return nil, false, err
	}
	return bookmarks, bookmarked, nil
}
