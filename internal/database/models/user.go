package models

import (
	"time"

	"gorm.io/gorm"
)

// User is created on first login and keyed by a provider-qualified id such as "github-1234".
type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null;autoCreateTime:false"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "user"
}

// AfterFind normalizes timestamps to UTC
func (u *User) AfterFind(tx *gorm.DB) error {
	u.CreatedAt = u.CreatedAt.UTC()
	return nil
}

// Session ties a hashed session token to a user.
type Session struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"userId" gorm:"not null;index"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"not null"`
}

// TableName returns the table name for Session
func (Session) TableName() string {
	return "session"
}

// AfterFind normalizes timestamps to UTC
func (s *Session) AfterFind(tx *gorm.DB) error {
	s.ExpiresAt = s.ExpiresAt.UTC()
	return nil
}

// Expired reports whether the session is no longer valid at now
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
