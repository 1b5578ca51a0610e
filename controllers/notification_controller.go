// File: /controllers/notification_controller.go
package controllers

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anglerhub-api/models"
)

// NotificationController delivers in-app notices through the system notice
// conversation. Failures are logged and swallowed; a notification must never
// fail the action that triggered it.
type NotificationController struct {
	db *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{db: db}
}

func (nc *NotificationController) CreateLikeNotification(likerName, postID string) {
	nc.deliver(fmt.Sprintf("%s 赞了你的动态", likerName))
}

func (nc *NotificationController) CreateCommentNotification(commenterName, postID string) {
	nc.deliver(fmt.Sprintf("%s 评论了你的动态", commenterName))
}

func (nc *NotificationController) CreateFollowNotification(followerName string) {
	nc.deliver(fmt.Sprintf("%s 关注了你", followerName))
}

func (nc *NotificationController) deliver(text string) {
	message := models.ChatMessage{
		ID:             uuid.New().String(),
		ConversationID: models.SystemNoticeID,
		Sender:         models.SenderCounterpart,
		Text:           text,
		TimeLabel:      "刚刚",
		CreatedAt:      time.Now(),
	}

	err := nc.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&message).Error; err != nil {
			return err
		}
		return tx.Model(&models.Conversation{}).
			Where("id = ?", models.SystemNoticeID).
			Updates(map[string]interface{}{
				"last_message": text,
				"time_label":   "刚刚",
				"unread_count": gorm.Expr("unread_count + ?", 1),
				"updated_at":   time.Now(),
			}).Error
	})
	if err != nil {
		fmt.Printf("Failed to deliver notification: %v\n", err)
	}
}
