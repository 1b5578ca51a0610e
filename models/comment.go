// File: /models/comment.go
package models

import (
	"time"
)

// Comment carries its author's display info directly; comment rows never
// link back to a full profile. Insertion order is display order.
type Comment struct {
	ID           string    `json:"id" gorm:"primaryKey;size:191"`
	PostID       string    `json:"post_id" gorm:"not null;size:191;index"`
	AuthorName   string    `json:"author_name" gorm:"size:255"`
	AuthorAvatar string    `json:"author_avatar" gorm:"size:500"`
	Text         string    `json:"text" gorm:"not null"`
	TimeLabel    string    `json:"timestamp" gorm:"size:50"`
	CreatedAt    time.Time `json:"created_at"`
}
