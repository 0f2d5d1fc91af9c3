package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmailSubscriber holds one newsletter recipient. The unsubscribe token is
// the sole credential for opting out: it is generated once at first insert
// and survives unsubscribe/resubscribe cycles.
type EmailSubscriber struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Email            string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Name             *string   `gorm:"size:128" json:"name"`
	UnsubscribeToken string    `gorm:"size:64;not null;uniqueIndex" json:"-"`
	Subscribed       bool      `gorm:"not null;default:true" json:"subscribed"`
	CreatedAt        time.Time `json:"created_at"`
}

// BeforeCreate assigns the durable unsubscribe token. Updates never touch it.
func (s *EmailSubscriber) BeforeCreate(tx *gorm.DB) error {
	if s.UnsubscribeToken == "" {
		s.UnsubscribeToken = uuid.NewString()
	}
	return nil
}
