package models

import "time"

// Moderation states shared by events, business listings and devotional gatherings.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	// StatusFeatured applies to business listings only.
	StatusFeatured = "featured"
)

// Event represents a calendar entry. Community submissions start out pending
// and become publicly visible only after an admin approves them.
type Event struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description *string    `gorm:"type:text" json:"description"`
	Location    *string    `gorm:"size:255" json:"location"`
	StartTime   time.Time  `gorm:"index;not null" json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Status      string     `gorm:"size:16;not null;default:'pending';index" json:"status"`
	SubmittedBy *uint      `gorm:"index" json:"submitted_by"`
	IsHolyDay   bool       `gorm:"not null;default:false" json:"is_holy_day"`
	CreatedAt   time.Time  `json:"created_at"`
}
