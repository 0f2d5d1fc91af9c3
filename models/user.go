package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// User represents a community member account. Passwords are stored as bcrypt hashes only.
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Username     string         `gorm:"size:64;not null;uniqueIndex" json:"username"`
	Email        string         `gorm:"size:255" json:"email"`
	PasswordHash string         `gorm:"size:255" json:"-"`
	FirstName    string         `gorm:"size:64" json:"first_name"`
	LastName     string         `gorm:"size:64" json:"last_name"`
	Provider     string         `gorm:"size:32" json:"provider"`
	ProviderID   string         `gorm:"size:255" json:"provider_id"`
	AvatarURL    string         `gorm:"size:512" json:"avatar_url"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate hook ensures timestamps are set even when not provided.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	return nil
}

// BeforeUpdate ensures the UpdatedAt timestamp is refreshed.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}

// DisplayName resolves the name shown next to user generated content.
func (u User) DisplayName(fallbackName string) string {
	return ResolveDisplayName(u.FirstName, u.LastName, u.Email, fallbackName)
}

// ResolveDisplayName implements the three tier name fallback shared by board
// authorship and directory listing ownership: first+last name, then the local
// part of the email address, then fallbackName.
func ResolveDisplayName(first, last, email, fallbackName string) string {
	var parts []string
	if s := strings.TrimSpace(first); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(last); s != "" {
		parts = append(parts, s)
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return fallbackName
}
