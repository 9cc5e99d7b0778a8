package domain

import "time"

// User represents a registered account. A user holds at most one active
// API token at a time; re-login replaces it.
type User struct {
	BaseModel
	FullName       string     `gorm:"type:varchar(150);not null" json:"fullname"`
	Email          string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash   string     `gorm:"type:varchar(255);not null" json:"-"`
	Token          *string    `gorm:"type:text" json:"-"`
	TokenExpiresAt *time.Time `gorm:"type:timestamp" json:"-"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
