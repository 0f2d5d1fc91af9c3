package models

import (
	"fmt"

	"gorm.io/gorm"
)

// ModerationKind enumerates the entity kinds the generic moderation endpoint
// may touch. Each variant is bound at compile time to its concrete model, so
// no caller supplied table name ever reaches the store layer.
type ModerationKind int

const (
	ModerateEvents ModerationKind = iota
	ModerateBusinessListings
	ModerateDevotionalGatherings
)

var moderationKindNames = map[string]ModerationKind{
	"events":                ModerateEvents,
	"business_listings":     ModerateBusinessListings,
	"devotional_gatherings": ModerateDevotionalGatherings,
}

// ParseModerationKind maps the wire name onto the closed enumeration.
// Anything outside the allow-list is an error.
func ParseModerationKind(s string) (ModerationKind, error) {
	k, ok := moderationKindNames[s]
	if !ok {
		return 0, fmt.Errorf("invalid table")
	}
	return k, nil
}

// String returns the wire name of the kind.
func (k ModerationKind) String() string {
	for name, v := range moderationKindNames {
		if v == k {
			return name
		}
	}
	return "unknown"
}

// model returns a pointer to the bound row type.
func (k ModerationKind) model() interface{} {
	switch k {
	case ModerateEvents:
		return &Event{}
	case ModerateBusinessListings:
		return &BusinessListing{}
	case ModerateDevotionalGatherings:
		return &DevotionalGathering{}
	}
	return nil
}

// Approve moves the row out of pending. Approving an already approved row is
// a no-op write.
func (k ModerationKind) Approve(db *gorm.DB, id uint) error {
	res := db.Model(k.model()).Where("id = ?", id).Update("status", StatusApproved)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Either absent or already approved; distinguish so callers can 404.
		var count int64
		if err := db.Model(k.model()).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}

// Reject removes the row permanently. There is no trash state.
func (k ModerationKind) Reject(db *gorm.DB, id uint) error {
	res := db.Where("id = ?", id).Delete(k.model())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// PendingRows loads the pending queue for the kind, oldest first, for the
// admin review screens.
func (k ModerationKind) PendingRows(db *gorm.DB) (interface{}, error) {
	q := db.Where("status = ?", StatusPending).Order("created_at ASC")
	switch k {
	case ModerateEvents:
		var rows []Event
		return rows, q.Find(&rows).Error
	case ModerateBusinessListings:
		var rows []BusinessListing
		return rows, q.Find(&rows).Error
	case ModerateDevotionalGatherings:
		var rows []DevotionalGathering
		return rows, q.Find(&rows).Error
	}
	return nil, fmt.Errorf("invalid table")
}
