// File: /controllers/post_controller.go
package controllers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"anglerhub-api/models"
	"anglerhub-api/repositories"
	"anglerhub-api/utils"
)

type PostController struct {
	db                     *gorm.DB
	engagements            *repositories.EngagementRepository
	notificationController *NotificationController

	// Expanded state is a per-session display toggle, keyed by user and
	// post. It never touches the stored post.
	expandedMutex sync.RWMutex
	expanded      map[string]bool
}

func NewPostController(db *gorm.DB, engagements *repositories.EngagementRepository, notificationController *NotificationController) *PostController {
	return &PostController{
		db:                     db,
		engagements:            engagements,
		notificationController: notificationController,
		expanded:               make(map[string]bool),
	}
}

type CreatePostRequest struct {
	Content   string   `json:"content"`
	ImageUrls []string `json:"image_urls"`
	VideoUrl  string   `json:"video_url"`
	Location  string   `json:"location"`
	Tags      []string `json:"tags"`
}

func (pc *PostController) isExpanded(userID, postID string) bool {
	pc.expandedMutex.RLock()
	defer pc.expandedMutex.RUnlock()
	return pc.expanded[userID+"/"+postID]
}

func (pc *PostController) getUserInteractions(userID, postID, authorID string) models.PostInteractions {
	isLiked, _ := pc.engagements.IsSet(&models.PostLike{}, map[string]interface{}{
		"post_id": postID, "user_id": userID,
	})
	isBookmarked, _ := pc.engagements.IsSet(&models.PostBookmark{}, map[string]interface{}{
		"post_id": postID, "user_id": userID,
	})
	isFollowed, _ := pc.engagements.IsSet(&models.Follow{}, map[string]interface{}{
		"follower_id": userID, "following_id": authorID,
	})

	return models.PostInteractions{
		IsLiked:          isLiked,
		IsBookmarked:     isBookmarked,
		IsAuthorFollowed: isFollowed,
	}
}

func (pc *PostController) buildView(userID string, post models.Post, detail bool) models.PostView {
	expanded := detail || pc.isExpanded(userID, post.ID)
	text, truncated := post.DisplayText(expanded)

	return models.PostView{
		Post:           post,
		Interactions:   pc.getUserInteractions(userID, post.ID, post.UserID),
		DisplayContent: text,
		Truncated:      truncated,
		Expanded:       expanded,
		Media:          models.LayoutFor(post),
	}
}

// GetFeed handles GET /posts. Newest first, no pagination; the session
// dataset is small by construction.
func (pc *PostController) GetFeed(c *gin.Context) {
	userID := c.GetString("user_id")

	var posts []models.Post
	if err := pc.db.Preload("User").Order("created_at DESC").Find(&posts).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	views := make([]models.PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, pc.buildView(userID, post, false))
	}

	c.JSON(http.StatusOK, gin.H{"posts": views})
}

// GetPost handles GET /posts/:id. Detail views always carry the full text
// and the comment list, and are recorded in the viewer's history.
func (pc *PostController) GetPost(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("id")

	var post models.Post
	err := pc.db.Preload("User").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&post, "id = ?", postID).Error
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Post not found")
		return
	}

	pc.db.Create(&models.ViewRecord{UserID: userID, PostID: post.ID})

	c.JSON(http.StatusOK, pc.buildView(userID, post, true))
}

// CreatePost handles POST /posts
func (pc *PostController) CreatePost(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	hasMedia := req.VideoUrl != "" || len(req.ImageUrls) > 0
	if utils.IsBlank(req.Content) && !hasMedia {
		utils.SendValidationError(c, "A post needs text or at least one image or video")
		return
	}
	if len(req.ImageUrls) > models.MaxGridTiles {
		utils.SendValidationError(c, "A post can include at most 9 images")
		return
	}

	// A video post carries no images; the video replaces them.
	imageUrls := req.ImageUrls
	if req.VideoUrl != "" {
		imageUrls = nil
	}

	post := models.Post{
		ID:        uuid.New().String(),
		UserID:    userID,
		Content:   req.Content,
		ImageUrls: models.StringSlice(imageUrls),
		VideoUrl:  req.VideoUrl,
		Location:  req.Location,
		Tags:      models.StringSlice(req.Tags),
		TimeLabel: "刚刚",
		CreatedAt: time.Now(),
	}

	if err := pc.db.Create(&post).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create post")
		return
	}

	pc.db.Preload("User").First(&post, "id = ?", post.ID)

	c.JSON(http.StatusCreated, pc.buildView(userID, post, false))
}

// ToggleLike handles POST /posts/:id/like. The post counter and the
// author's received-likes counter move together with the flag.
func (pc *PostController) ToggleLike(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("id")

	var post models.Post
	if err := pc.db.First(&post, "id = ?", postID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Post not found")
		return
	}

	nowOn, err := pc.engagements.Toggle(
		&models.PostLike{},
		map[string]interface{}{"post_id": postID, "user_id": userID},
		repositories.CounterRef{Model: &models.Post{}, ID: postID, Column: "likes_count"},
		repositories.CounterRef{Model: &models.User{}, ID: post.UserID, Column: "likes_count"},
	)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to toggle like")
		return
	}

	if nowOn && post.UserID != userID {
		var liker models.User
		if pc.db.First(&liker, "id = ?", userID).Error == nil {
			pc.notificationController.CreateLikeNotification(liker.Name, postID)
		}
	}

	pc.db.First(&post, "id = ?", postID)
	c.JSON(http.StatusOK, gin.H{"is_liked": nowOn, "likes": post.LikesCount})
}

// ToggleBookmark handles POST /posts/:id/bookmark. Bookmarks are private;
// no counter moves and no notification is sent.
func (pc *PostController) ToggleBookmark(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("id")

	var post models.Post
	if err := pc.db.First(&post, "id = ?", postID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Post not found")
		return
	}

	nowOn, err := pc.engagements.Toggle(
		&models.PostBookmark{},
		map[string]interface{}{"post_id": postID, "user_id": userID},
	)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to toggle bookmark")
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_bookmarked": nowOn})
}

// ToggleExpand handles POST /posts/:id/expand
func (pc *PostController) ToggleExpand(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("id")

	var post models.Post
	if err := pc.db.First(&post, "id = ?", postID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Post not found")
		return
	}

	key := userID + "/" + postID
	pc.expandedMutex.Lock()
	pc.expanded[key] = !pc.expanded[key]
	expanded := pc.expanded[key]
	pc.expandedMutex.Unlock()

	text, truncated := post.DisplayText(expanded)
	c.JSON(http.StatusOK, gin.H{
		"expanded":        expanded,
		"display_content": text,
		"truncated":       truncated,
	})
}
