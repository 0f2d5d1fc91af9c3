package models

import "time"

// BusinessCategories is the fixed set of accepted directory categories.
var BusinessCategories = []string{
	"Contractor",
	"Legal",
	"Medical/Health",
	"Financial",
	"Real Estate",
	"Food/Restaurant",
	"Technology",
	"IT Services",
	"Education",
	"Arts/Creative",
	"Retail",
	"Other",
}

// ValidBusinessCategory reports whether c is a member of the fixed category set.
func ValidBusinessCategory(c string) bool {
	for _, v := range BusinessCategories {
		if c == v {
			return true
		}
	}
	return false
}

// BusinessListing is a community directory entry. Listings start pending;
// admins approve them, and may further promote a listing to featured.
type BusinessListing struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	BusinessName string    `gorm:"size:255;not null" json:"business_name"`
	OwnerID      uint      `gorm:"index;not null" json:"owner_id"`
	OwnerName    *string   `gorm:"size:128" json:"owner_name"`
	Category     string    `gorm:"size:64;not null;index" json:"category"`
	Description  *string   `gorm:"type:text" json:"description"`
	WebsiteURL   *string   `gorm:"size:512" json:"website_url"`
	Phone        *string   `gorm:"size:32" json:"phone"`
	Email        *string   `gorm:"size:255" json:"email"`
	Location     *string   `gorm:"size:255" json:"location"`
	Status       string    `gorm:"size:16;not null;default:'pending';index" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
