package models

import "time"

// Event is an admin-managed deadline shown in the deadline widget.
type Event struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time `json:"createdAt"`
	Title     string    `gorm:"not null" json:"title" example:"NEET registration closes"`
	Date      time.Time `gorm:"index;not null" json:"date" example:"2024-03-15T00:00:00Z"`
	Link      string    `json:"link,omitempty" example:"https://neet.nta.nic.in"`
}
