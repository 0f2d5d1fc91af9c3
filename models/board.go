package models

import "time"

// BoardThread is a discussion topic. Author name is denormalized at creation
// time via the display name fallback so deleted accounts keep their posts
// readable.
type BoardThread struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	Body       string    `gorm:"type:text;not null" json:"body"`
	AuthorID   uint      `gorm:"index;not null" json:"author_id"`
	AuthorName string    `gorm:"size:128" json:"author_name"`
	Pinned     bool      `gorm:"not null;default:false" json:"pinned"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
	Replies    []BoardReply `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:ThreadID" json:"-"`
}

// BoardReply belongs to a thread. Replies are immutable once posted: there is
// no edit path, only admin deletion.
type BoardReply struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ThreadID   uint      `gorm:"index;not null" json:"thread_id"`
	Body       string    `gorm:"type:text;not null" json:"body"`
	AuthorID   uint      `gorm:"index;not null" json:"author_id"`
	AuthorName string    `gorm:"size:128" json:"author_name"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}
