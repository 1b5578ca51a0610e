// File: /controllers/chat_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"anglerhub-api/models"
	"anglerhub-api/utils"
)

// AutoReplyText is the counterpart's canned response. There is no real-time
// transport; replies are simulated on a timer.
const AutoReplyText = "好的，祝你爆护！🎣"

type ChatController struct {
	db         *gorm.DB
	navigator  *NavigatorController
	replyDelay time.Duration
}

func NewChatController(db *gorm.DB, navigator *NavigatorController, replyDelay time.Duration) *ChatController {
	return &ChatController{
		db:         db,
		navigator:  navigator,
		replyDelay: replyDelay,
	}
}

type SendMessageRequest struct {
	Text string `json:"text"`
}

// GetConversations handles GET /chats, most recently active first.
func (cc *ChatController) GetConversations(c *gin.Context) {
	var conversations []models.Conversation
	if err := cc.db.Order("updated_at DESC").Find(&conversations).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch conversations")
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversations": conversations})
}

// GetConversation handles GET /chats/:id. Opening a conversation clears its
// unread counter.
func (cc *ChatController) GetConversation(c *gin.Context) {
	conversationID := c.Param("id")

	var conversation models.Conversation
	err := cc.db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).First(&conversation, "id = ?", conversationID).Error
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Conversation not found")
		return
	}

	if conversation.UnreadCount > 0 {
		cc.db.Model(&models.Conversation{}).
			Where("id = ?", conversationID).
			UpdateColumn("unread_count", 0)
		conversation.UnreadCount = 0
	}

	c.JSON(http.StatusOK, conversation)
}

// SendMessage handles POST /chats/:id/messages. A reply is scheduled after
// a fixed delay and dropped if the session navigates away before it fires.
// The system notice conversation never replies.
func (cc *ChatController) SendMessage(c *gin.Context) {
	conversationID := c.Param("id")

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if utils.IsBlank(req.Text) {
		utils.SendValidationError(c, "Message text cannot be empty")
		return
	}

	var conversation models.Conversation
	if err := cc.db.First(&conversation, "id = ?", conversationID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Conversation not found")
		return
	}

	message := models.ChatMessage{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		Sender:         models.SenderSelf,
		Text:           req.Text,
		TimeLabel:      "刚刚",
		CreatedAt:      time.Now(),
	}

	err := cc.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&message).Error; err != nil {
			return err
		}
		return tx.Model(&models.Conversation{}).
			Where("id = ?", conversationID).
			Updates(map[string]interface{}{
				"last_message": req.Text,
				"time_label":   "刚刚",
				"updated_at":   time.Now(),
			}).Error
	})
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to send message")
		return
	}

	if conversationID != models.SystemNoticeID {
		generation := cc.navigator.Generation()
		time.AfterFunc(cc.replyDelay, func() {
			cc.DeliverReply(conversationID, generation)
		})
	}

	c.JSON(http.StatusCreated, message)
}

// DeliverReply appends the canned counterpart reply unless the session has
// navigated since the triggering message was sent.
func (cc *ChatController) DeliverReply(conversationID string, generation uint64) bool {
	if cc.navigator.Generation() != generation {
		return false
	}

	reply := models.ChatMessage{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		Sender:         models.SenderCounterpart,
		Text:           AutoReplyText,
		TimeLabel:      "刚刚",
		CreatedAt:      time.Now(),
	}

	err := cc.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&reply).Error; err != nil {
			return err
		}
		return tx.Model(&models.Conversation{}).
			Where("id = ?", conversationID).
			Updates(map[string]interface{}{
				"last_message": AutoReplyText,
				"time_label":   "刚刚",
				"updated_at":   time.Now(),
			}).Error
	})
	return err == nil
}
