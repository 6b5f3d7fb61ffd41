package models

import (
	"time"
)

type Article struct {
	ID               uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt        time.Time `gorm:"index" json:"createdAt" example:"2024-06-01T00:00:00Z"`
	UpdatedAt        time.Time `json:"updatedAt" example:"2024-06-01T00:00:00Z"`
	Title            string    `gorm:"not null" json:"title" example:"SSLC Exam Results 2024 Announced"`
	Summary          string    `gorm:"type:text;not null" json:"summary" example:"The board has published the SSLC results for 2024."`
	Content          string    `gorm:"type:text;not null" json:"content,omitempty" example:"<p>Full article body</p>"`
	ImageURL         string    `gorm:"not null" json:"imageUrl" example:"https://i.ibb.co/abc/results.jpg"`
	VideoURL         string    `json:"videoUrl,omitempty" example:"https://www.youtube.com/embed/xyz"`
	Category         string    `gorm:"index;not null" json:"category" example:"Exams"`
	Source           string    `json:"source" example:"Karnataka School Examination Board"`
	ContentLanguage  string    `gorm:"size:8;index;default:en" json:"contentLanguage" example:"en"`
	AuthorID         *uint     `gorm:"index" json:"author,omitempty" example:"3"`
	WordSubmissionID *uint     `json:"wordSubmissionId,omitempty" example:"7"`
	ViewCount        int64     `gorm:"not null;default:0;index" json:"viewCount" example:"42"`
}

// ArticleSearchResult is an article row annotated with its text-relevance score.
type ArticleSearchResult struct {
	Article
	Score float64 `gorm:"column:score" json:"score"`
}
