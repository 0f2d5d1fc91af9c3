package models

// Resource is a curated link shown on the resources page, managed directly
// in the database and ordered by sort_order.
type Resource struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	URL         string  `gorm:"size:512;not null" json:"url"`
	Description *string `gorm:"type:text" json:"description"`
	Category    *string `gorm:"size:64" json:"category"`
	SortOrder   int     `gorm:"not null;default:0;index" json:"sort_order"`
}
