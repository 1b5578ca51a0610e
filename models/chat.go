// File: /models/chat.go
package models

import (
	"time"
)

// Message senders. Conversations are keyed by the counterpart's user id, so
// "other" always means that counterpart.
const (
	SenderSelf        = "me"
	SenderCounterpart = "other"
)

// SystemNoticeID is the pseudo-user whose conversation carries in-app
// notifications (likes, comments, follows, editorial picks).
const SystemNoticeID = "sys_notify"

// Conversation id doubles as the counterpart user id.
type Conversation struct {
	ID          string    `json:"user_id" gorm:"primaryKey;size:191"`
	UserName    string    `json:"user_name" gorm:"size:255"`
	UserAvatar  string    `json:"user_avatar" gorm:"size:500"`
	LastMessage string    `json:"last_message"`
	TimeLabel   string    `json:"timestamp" gorm:"size:50"`
	UnreadCount int       `json:"unread_count" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Messages []ChatMessage `json:"messages,omitempty" gorm:"foreignKey:ConversationID"`
}

type ChatMessage struct {
	ID             string    `json:"id" gorm:"primaryKey;size:191"`
	ConversationID string    `json:"conversation_id" gorm:"not null;size:191;index"`
	Sender         string    `json:"sender" gorm:"not null;size:10"`
	Text           string    `json:"text" gorm:"not null"`
	TimeLabel      string    `json:"timestamp" gorm:"size:50"`
	CreatedAt      time.Time `json:"created_at"`
}
