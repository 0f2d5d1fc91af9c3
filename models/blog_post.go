package models

import "time"

// BlogPost is an admin-authored news article. Content is stored as markdown
// and rendered to HTML on read. Visibility is a plain published flag rather
// than the pending/approved lifecycle used by community submissions.
type BlogPost struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Title            string    `gorm:"size:255;not null" json:"title"`
	Slug             string    `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Content          *string   `gorm:"type:text" json:"content"`
	Excerpt          *string   `gorm:"type:text" json:"excerpt"`
	FeaturedImageURL *string   `gorm:"size:512" json:"featured_image_url"`
	Published        bool      `gorm:"not null;default:false;index" json:"published"`
	AuthorID         *uint     `gorm:"index" json:"author_id"`
	AuthorName       *string   `gorm:"size:128" json:"author_name"`
	CreatedAt        time.Time `json:"created_at"`
}
