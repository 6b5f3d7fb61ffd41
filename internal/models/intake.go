package models

import (
	"time"

	"gorm.io/datatypes"
)

// IntakeStatus is the curation state of an intake record.
type IntakeStatus string

const (
	StatusPending   IntakeStatus = "pending"
	StatusReviewing IntakeStatus = "reviewing"
	StatusPublished IntakeStatus = "published"
	StatusRejected  IntakeStatus = "rejected"
)

// RawArticle is an externally scraped stub awaiting curation.
type RawArticle struct {
	ID        uint         `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time    `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
	Title     string       `gorm:"not null" json:"title" example:"CET counselling schedule released"`
	URL       string       `gorm:"uniqueIndex;not null" json:"url" example:"https://example.org/cet-schedule"`
	Source    string       `json:"source" example:"KEA"`
	VideoURL  string       `json:"videoUrl,omitempty"`
	Status    IntakeStatus `gorm:"size:16;index;not null;default:pending" json:"status" example:"pending"`
}

// Submission is a structured article written by an institution.
type Submission struct {
	ID              uint         `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt       time.Time    `gorm:"index" json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
	Title           string       `gorm:"not null" json:"title"`
	Summary         string       `gorm:"type:text;not null" json:"summary"`
	Content         string       `gorm:"type:text;not null" json:"content"`
	ImageURL        string       `gorm:"not null" json:"imageUrl"`
	VideoURL        string       `json:"videoUrl,omitempty"`
	ContentLanguage string       `gorm:"size:8;not null;default:en" json:"contentLanguage" example:"kn"`
	Source          string       `json:"source" example:"govt-pu-college"`
	InstitutionID   uint         `gorm:"index;not null" json:"institutionId" example:"4"`
	Status          IntakeStatus `gorm:"size:16;index;not null;default:pending" json:"status" example:"pending"`
}

// ExtractedData is the best-effort structure recovered from a Word upload.
type ExtractedData struct {
	Title           string `json:"title"`
	Summary         string `json:"summary"`
	Content         string `json:"content"`
	ContentLanguage string `json:"contentLanguage"`
}

// WordSubmission is an institution upload of a .docx file.
type WordSubmission struct {
	ID              uint                             `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt       time.Time                        `gorm:"index" json:"createdAt"`
	UpdatedAt       time.Time                        `json:"updatedAt"`
	InstitutionID   uint                             `gorm:"index;not null" json:"institutionId"`
	InstitutionName string                           `json:"institutionName"`
	FileName        string                           `gorm:"not null" json:"fileName" example:"results.docx"`
	FileData        []byte                           `gorm:"type:bytea" json:"-"`
	MimeType        string                           `json:"mimetype"`
	ExtractedData   datatypes.JSONType[ExtractedData] `json:"extractedData" swaggertype:"object"`
	Status          IntakeStatus                     `gorm:"size:16;index;not null;default:pending" json:"status" example:"pending"`
	AdminNotes      string                           `gorm:"type:text" json:"adminNotes,omitempty"`
}
