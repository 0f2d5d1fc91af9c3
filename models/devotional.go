package models

import "time"

// DevotionalTypes is the fixed set of accepted gathering types.
var DevotionalTypes = []string{
	"Devotional",
	"Study Circle",
	"Children's Class",
	"Junior Youth",
	"Other",
}

// ValidDevotionalType reports whether t is a member of the fixed type set.
func ValidDevotionalType(t string) bool {
	for _, v := range DevotionalTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Recurrence values accepted for gatherings. Weekly is the default.
const (
	RecurrenceWeekly   = "weekly"
	RecurrenceBiweekly = "biweekly"
	RecurrenceMonthly  = "monthly"
	RecurrenceOneTime  = "one-time"
)

// DevotionalGathering is a recurring community gathering listing, moderated
// through the same pending/approved lifecycle as events.
type DevotionalGathering struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Type        string    `gorm:"size:32;not null;index" json:"type"`
	Description *string   `gorm:"type:text" json:"description"`
	Location    *string   `gorm:"size:255" json:"location"`
	Address     *string   `gorm:"size:255" json:"address"`
	Schedule    string    `gorm:"size:255;not null" json:"schedule"`
	Recurrence  string    `gorm:"size:16;not null;default:'weekly'" json:"recurrence"`
	DayOfWeek   *string   `gorm:"size:16" json:"day_of_week"`
	TimeOfDay   *string   `gorm:"size:32" json:"time_of_day"`
	HostName    *string   `gorm:"size:128" json:"host_name"`
	HostContact *string   `gorm:"size:255" json:"host_contact"`
	Status      string    `gorm:"size:16;not null;default:'pending';index" json:"status"`
	SubmittedBy *uint     `gorm:"index" json:"submitted_by"`
	CreatedAt   time.Time `json:"created_at"`
}
