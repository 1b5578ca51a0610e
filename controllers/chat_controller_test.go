// File: /controllers/chat_controller_test.go
package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anglerhub-api/models"
)

func TestGetConversationsMostRecentFirst(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, "GET", "/api/v1/chats", nil)
	statusOK(t, w)

	var resp struct {
		Conversations []models.Conversation `json:"conversations"`
	}
	decodeJSON(t, w, &resp)
	require.Len(t, resp.Conversations, 3)
	assert.Equal(t, "user_1", resp.Conversations[0].ID)
	assert.Equal(t, "u2", resp.Conversations[1].ID)
	assert.Equal(t, models.SystemNoticeID, resp.Conversations[2].ID)
}

func TestOpenConversationClearsUnread(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, "GET", "/api/v1/chats/u2", nil)
	statusOK(t, w)

	var conversation models.Conversation
	decodeJSON(t, w, &conversation)
	assert.Equal(t, 0, conversation.UnreadCount)
	require.Len(t, conversation.Messages, 1)

	var stored models.Conversation
	require.NoError(t, env.db.First(&stored, "id = ?", "u2").Error)
	assert.Equal(t, 0, stored.UnreadCount)
}

func TestSendMessageUpdatesConversation(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, "POST", "/api/v1/chats/u2/messages", map[string]interface{}{
		"text": "新塘口在哪？发个定位",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var message models.ChatMessage
	decodeJSON(t, w, &message)
	assert.Equal(t, models.SenderSelf, message.Sender)
	assert.Equal(t, "刚刚", message.TimeLabel)

	var conversation models.Conversation
	require.NoError(t, env.db.First(&conversation, "id = ?", "u2").Error)
	assert.Equal(t, "新塘口在哪？发个定位", conversation.LastMessage)
	assert.Equal(t, "刚刚", conversation.TimeLabel)
}

func TestSendMessageRejectsBlankText(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, "POST", "/api/v1/chats/u2/messages", map[string]interface{}{
		"text": "  ",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.request(t, "POST", "/api/v1/chats/ghost/messages", map[string]interface{}{
		"text": "在吗",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeliverReplyAppliedOnSameGeneration(t *testing.T) {
	env := newTestEnv(t)
	cc := NewChatController(env.db, env.navigator, 0)

	generation := env.navigator.Generation()
	require.True(t, cc.DeliverReply("user_1", generation))

	var conversation models.Conversation
	require.NoError(t, env.db.Preload("Messages").First(&conversation, "id = ?", "user_1").Error)
	assert.Equal(t, AutoReplyText, conversation.LastMessage)

	last := conversation.Messages[len(conversation.Messages)-1]
	assert.Equal(t, models.SenderCounterpart, last.Sender)
	assert.Equal(t, AutoReplyText, last.Text)
}

func TestDeliverReplyDroppedAfterNavigation(t *testing.T) {
	env := newTestEnv(t)
	cc := NewChatController(env.db, env.navigator, 0)

	generation := env.navigator.Generation()
	var before int64
	env.db.Model(&models.ChatMessage{}).Where("conversation_id = ?", "user_1").Count(&before)

	// Navigating away between send and reply invalidates the generation.
	statusOK(t, env.request(t, "POST", "/api/v1/navigator/tab", map[string]interface{}{"screen": "dashboard"}))

	require.False(t, cc.DeliverReply("user_1", generation))

	var after int64
	env.db.Model(&models.ChatMessage{}).Where("conversation_id = ?", "user_1").Count(&after)
	assert.Equal(t, before, after)
}
