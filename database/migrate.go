package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"newsportal/internal/models"
)

// ArticleSearchDocument is the tsvector expression the full-text index is
// built on. Search queries must use the same expression to hit the index.
const ArticleSearchDocument = `to_tsvector('simple', coalesce(title, '') || ' ' || coalesce(summary, '') || ' ' || coalesce(content, ''))`

func Migrate(db *gorm.DB, log *logrus.Logger) error {
	log.Info("running database migrations")

	err := db.AutoMigrate(
		&models.User{},
		&models.Article{},
		&models.RawArticle{},
		&models.Submission{},
		&models.WordSubmission{},
		&models.Event{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	stmt := "CREATE INDEX IF NOT EXISTS idx_articles_fts ON articles USING GIN (" + ArticleSearchDocument + ")"
	if err := db.Exec(stmt).Error; err != nil {
		return fmt.Errorf("create full-text index: %w", err)
	}

	log.Info("database migrations completed")
	return nil
}
