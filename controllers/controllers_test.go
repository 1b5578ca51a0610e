// File: /controllers/controllers_test.go
package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"anglerhub-api/database"
	"anglerhub-api/middleware"
	"anglerhub-api/repositories"
)

var testDBCounter int64

// newTestDB opens a fresh in-memory database, migrated and seeded. Each
// test gets its own DSN so state never leaks between tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := database.Initialize(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.SeedData(db))

	return db
}

type testEnv struct {
	db        *gorm.DB
	router    *gin.Engine
	navigator *NavigatorController
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	engagements := repositories.NewEngagementRepository(db)

	navigatorController := NewNavigatorController()
	notificationController := NewNotificationController(db)
	postController := NewPostController(db, engagements, notificationController)
	commentController := NewCommentController(db, notificationController)
	profileController := NewProfileController(db, engagements, postController, notificationController)
	journalController := NewJournalController(db)
	spotController := NewSpotController(db)
	// The reply delay is long enough that timers never fire mid-test;
	// reply behavior is exercised through DeliverReply directly.
	chatController := NewChatController(db, navigatorController, time.Hour)

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Identity())

	navigator := v1.Group("/navigator")
	navigator.GET("", navigatorController.GetState)
	navigator.POST("/tab", navigatorController.SwitchTab)
	navigator.POST("/users/:id", navigatorController.OpenProfile)
	navigator.POST("/spots/:id", navigatorController.OpenSpot)
	navigator.POST("/posts/:id", navigatorController.OpenPost)
	navigator.POST("/chats/:id", navigatorController.OpenChat)
	navigator.POST("/back", navigatorController.GoBack)

	posts := v1.Group("/posts")
	posts.GET("", postController.GetFeed)
	posts.POST("", postController.CreatePost)
	posts.GET("/:id", postController.GetPost)
	posts.POST("/:id/like", postController.ToggleLike)
	posts.POST("/:id/bookmark", postController.ToggleBookmark)
	posts.POST("/:id/expand", postController.ToggleExpand)
	posts.GET("/:id/comments", commentController.GetComments)
	posts.POST("/:id/comments", commentController.CreateComment)

	users := v1.Group("/users")
	users.GET("/me/bookmarks", profileController.GetBookmarks)
	users.GET("/me/history", profileController.GetHistory)
	users.PUT("/me", profileController.UpdateProfile)
	users.GET("/:id", profileController.GetProfile)
	users.POST("/:id/follow", profileController.ToggleFollow)
	users.GET("/:id/followers", profileController.GetFollowers)
	users.GET("/:id/following", profileController.GetFollowing)
	users.GET("/:id/posts", profileController.GetUserPosts)

	journal := v1.Group("/journal")
	journal.GET("", journalController.GetLogs)
	journal.POST("", journalController.SaveLog)
	journal.GET("/:id", journalController.GetLog)
	journal.DELETE("/:id", journalController.DeleteLog)

	spots := v1.Group("/spots")
	spots.GET("", spotController.GetSpots)
	spots.GET("/:id", spotController.GetSpot)

	chats := v1.Group("/chats")
	chats.GET("", chatController.GetConversations)
	chats.GET("/:id", chatController.GetConversation)
	chats.POST("/:id/messages", chatController.SendMessage)

	return &testEnv{db: db, router: router, navigator: navigatorController}
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func statusOK(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
