// File: /controllers/post_controller_test.go
package controllers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anglerhub-api/models"
)

type feedResponse struct {
	Posts []models.PostView `json:"posts"`
}

func findPost(t *testing.T, views []models.PostView, id string) models.PostView {
	t.Helper()
	for _, v := range views {
		if v.ID == id {
			return v
		}
	}
	t.Fatalf("post %s not in feed", id)
	return models.PostView{}
}

func TestGetFeedOrderAndInteractions(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, "GET", "/api/v1/posts", nil)
	statusOK(t, w)

	var resp feedResponse
	decodeJSON(t, w, &resp)
	require.GreaterOrEqual(t, len(resp.Posts), 4)

	// Newest first
	assert.Equal(t, "1", resp.Posts[0].ID)
	assert.Equal(t, "vid_1", resp.Posts[1].ID)
	assert.Equal(t, "2", resp.Posts[2].ID)
	assert.Equal(t, "3", resp.Posts[3].ID)

	// Seeded interaction state for the session user
	video := findPost(t, resp.Posts, "vid_1")
	assert.True(t, video.Interactions.IsLiked)
	assert.False(t, video.Interactions.IsAuthorFollowed)

	saved := findPost(t, resp.Posts, "2")
	assert.True(t, saved.Interactions.IsBookmarked)

	top := findPost(t, resp.Posts, "1")
	assert.False(t, top.Interactions.IsLiked)
	assert.True(t, top.Interactions.IsAuthorFollowed)
}

func TestToggleLikeRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	var before models.Post
	require.NoError(t, env.db.First(&before, "id = ?", "1").Error)
	assert.Equal(t, 128, before.LikesCount)

	w := env.request(t, "POST", "/api/v1/posts/1/like", nil)
	statusOK(t, w)
	var resp struct {
		IsLiked bool `json:"is_liked"`
		Likes   int  `json:"likes"`
	}
	decodeJSON(t, w, &resp)
	assert.True(t, resp.IsLiked)
	assert.Equal(t, 129, resp.Likes)

	// The second toggle restores the original count exactly.
	w = env.request(t, "POST", "/api/v1/posts/1/like", nil)
	statusOK(t, w)
	decodeJSON(t, w, &resp)
	assert.False(t, resp.IsLiked)
	assert.Equal(t, 128, resp.Likes)

	var after models.Post
	require.NoError(t, env.db.First(&after, "id = ?", "1").Error)
	assert.Equal(t, before.LikesCount, after.LikesCount)
}

func TestToggleLikeMovesAuthorCounter(t *testing.T) {
	env := newTestEnv(t)

	var author models.User
	require.NoError(t, env.db.First(&author, "id = ?", "user_1").Error)
	likesBefore := author.LikesCount

	statusOK(t, env.request(t, "POST", "/api/v1/posts/1/like", nil))

	require.NoError(t, env.db.First(&author, "id = ?", "user_1").Error)
	assert.Equal(t, likesBefore+1, author.LikesCount)
}

func TestToggleBookmarkLeavesCountersAlone(t *testing.T) {
	env := newTestEnv(t)

	var before models.Post
	require.NoError(t, env.db.First(&before, "id = ?", "3").Error)

	w := env.request(t, "POST", "/api/v1/posts/3/bookmark", nil)
	statusOK(t, w)
	var resp struct {
		IsBookmarked bool `json:"is_bookmarked"`
	}
	decodeJSON(t, w, &resp)
	assert.True(t, resp.IsBookmarked)

	var after models.Post
	require.NoError(t, env.db.First(&after, "id = ?", "3").Error)
	assert.Equal(t, before.LikesCount, after.LikesCount)
	assert.Equal(t, before.CommentsCount, after.CommentsCount)
}

func TestCreatePostValidation(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, "POST", "/api/v1/posts", map[string]interface{}{
		"content": "   ",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Media alone is enough.
	w = env.request(t, "POST", "/api/v1/posts", map[string]interface{}{
		"image_urls": []string{"https://picsum.photos/400/400?random=9"},
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreatePostVideoClearsImages(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, "POST", "/api/v1/posts", map[string]interface{}{
		"content":    "开竿视频",
		"video_url":  "https://example.com/clip.mp4",
		"image_urls": []string{"https://picsum.photos/400/400?random=9"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var view models.PostView
	decodeJSON(t, w, &view)
	assert.Empty(t, view.ImageUrls)
	assert.Equal(t, models.MediaVideo, view.Media.Mode)
	assert.Equal(t, "刚刚", view.TimeLabel)
}

func TestFeedTruncationAndExpand(t *testing.T) {
	env := newTestEnv(t)

	long := strings.Repeat("鱼", models.FeedContentLimit+10)
	w := env.request(t, "POST", "/api/v1/posts", map[string]interface{}{
		"content": long,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.PostView
	decodeJSON(t, w, &created)
	assert.True(t, created.Truncated)
	assert.False(t, created.Expanded)
	assert.Equal(t, models.FeedContentLimit+3, len([]rune(created.DisplayContent)))

	w = env.request(t, "POST", "/api/v1/posts/"+created.ID+"/expand", nil)
	statusOK(t, w)
	var toggled struct {
		Expanded       bool   `json:"expanded"`
		DisplayContent string `json:"display_content"`
		Truncated      bool   `json:"truncated"`
	}
	decodeJSON(t, w, &toggled)
	assert.True(t, toggled.Expanded)
	assert.Equal(t, long, toggled.DisplayContent)
	assert.True(t, toggled.Truncated)

	// Detail view always carries the full text regardless of the toggle.
	w = env.request(t, "GET", "/api/v1/posts/"+created.ID, nil)
	statusOK(t, w)
	var detail models.PostView
	decodeJSON(t, w, &detail)
	assert.Equal(t, long, detail.DisplayContent)
}

func TestGetPostRecordsHistory(t *testing.T) {
	env := newTestEnv(t)

	statusOK(t, env.request(t, "GET", "/api/v1/posts/1", nil))
	statusOK(t, env.request(t, "GET", "/api/v1/posts/2", nil))
	statusOK(t, env.request(t, "GET", "/api/v1/posts/1", nil))

	w := env.request(t, "GET", "/api/v1/users/me/history", nil)
	statusOK(t, w)

	var resp feedResponse
	decodeJSON(t, w, &resp)
	require.Len(t, resp.Posts, 2)
	// Most recent view first, each post once.
	assert.Equal(t, "1", resp.Posts[0].ID)
	assert.Equal(t, "2", resp.Posts[1].ID)
}

func TestGetPostNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, "GET", "/api/v1/posts/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
