package models

import (
	"time"

	"github.com/lib/pq"
)

type Role string

const (
	RoleReader      Role = "Reader"
	RoleAdmin       Role = "Admin"
	RoleInstitution Role = "Institution"
)

// ValidRoles lists every role an account may hold.
var ValidRoles = []Role{RoleReader, RoleAdmin, RoleInstitution}

func (r Role) Valid() bool {
	for _, v := range ValidRoles {
		if r == v {
			return true
		}
	}
	return false
}

type User struct {
	ID                     uint          `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt              time.Time     `json:"createdAt"`
	UpdatedAt              time.Time     `json:"updatedAt"`
	Username               string        `gorm:"not null" json:"username" example:"asha"`
	InstitutionName        string        `json:"institutionName,omitempty" example:"Govt PU College"`
	Email                  string        `gorm:"uniqueIndex;not null" json:"email" example:"asha@example.com"`
	Password               string        `gorm:"not null" json:"-"`
	Role                   Role          `gorm:"size:16;not null;default:Reader" json:"role" example:"Reader"`
	EmailVerified          bool          `gorm:"not null;default:false" json:"emailVerified"`
	VerificationCode       string        `gorm:"index" json:"-"`
	VerificationExpiresAt  *time.Time    `json:"-"`
	ResetPasswordToken     string        `gorm:"index" json:"-"`
	ResetPasswordExpiresAt *time.Time    `json:"-"`
	Bookmarks              pq.Int64Array `gorm:"type:bigint[]" json:"bookmarks" swaggertype:"array,integer"`
}

// DisplayName is the institution name for institutions and the username otherwise.
func (u *User) DisplayName() string {
	if u.Role == RoleInstitution && u.InstitutionName != "" {
		return u.InstitutionName
	}
	return u.Username
}

// HasBookmark reports whether articleID is in the user's bookmark list.
func (u *User) HasBookmark(articleID uint) bool {
	for _, id := range u.Bookmarks {
		if id == int64(articleID) {
			return true
		}
	}
	return false
}

// ToggleBookmark removes articleID if present, otherwise appends it.
// It reports whether the article is bookmarked afterwards.
func (u *User) ToggleBookmark(articleID uint) bool {
	for i, id := range u.Bookmarks {
		if id == int64(articleID) {
			u.Bookmarks = append(u.Bookmarks[:i:i], u.Bookmarks[i+1:]...)
			return false
		}
	}
	u.Bookmarks = append(u.Bookmarks, int64(articleID))
	return true
}
