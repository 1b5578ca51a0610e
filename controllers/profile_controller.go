// File: /controllers/profile_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"anglerhub-api/models"
	"anglerhub-api/repositories"
	"anglerhub-api/utils"
)

type ProfileController struct {
	db                     *gorm.DB
	engagements            *repositories.EngagementRepository
	postController         *PostController
	notificationController *NotificationController
}

func NewProfileController(db *gorm.DB, engagements *repositories.EngagementRepository, postController *PostController, notificationController *NotificationController) *ProfileController {
	return &ProfileController{
		db:                     db,
		engagements:            engagements,
		postController:         postController,
		notificationController: notificationController,
	}
}

type UpdateProfileRequest struct {
	Name    *string `json:"name"`
	Avatar  *string `json:"avatar"`
	Bio     *string `json:"bio"`
	BgImage *string `json:"bg_image"`
	Level   *string `json:"level"`
}

func (pc *ProfileController) isFollowing(followerID, followingID string) bool {
	on, _ := pc.engagements.IsSet(&models.Follow{}, map[string]interface{}{
		"follower_id": followerID, "following_id": followingID,
	})
	return on
}

// GetProfile handles GET /users/:id
func (pc *ProfileController) GetProfile(c *gin.Context) {
	viewerID := c.GetString("user_id")
	userID := c.Param("id")

	var user models.User
	if err := pc.db.First(&user, "id = ?", userID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, models.ProfileView{
		User:        user,
		IsFollowing: pc.isFollowing(viewerID, userID),
	})
}

// UpdateProfile handles PUT /users/me. Only provided fields change.
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	var user models.User
	if err := pc.db.First(&user, "id = ?", userID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		if utils.IsBlank(*req.Name) {
			utils.SendValidationError(c, "Name cannot be empty")
			return
		}
		updates["name"] = *req.Name
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.BgImage != nil {
		updates["bg_image"] = *req.BgImage
	}
	if req.Level != nil {
		updates["level"] = *req.Level
	}

	if len(updates) > 0 {
		if err := pc.db.Model(&user).Updates(updates).Error; err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to update profile")
			return
		}
	}

	pc.db.First(&user, "id = ?", userID)
	c.JSON(http.StatusOK, user)
}

// ToggleFollow handles POST /users/:id/follow. The follows table is the
// single source of truth; both users' counters move with the same row.
func (pc *ProfileController) ToggleFollow(c *gin.Context) {
	followerID := c.GetString("user_id")
	followingID := c.Param("id")

	if followerID == followingID {
		utils.SendError(c, http.StatusBadRequest, "You cannot follow yourself")
		return
	}

	var target models.User
	if err := pc.db.First(&target, "id = ?", followingID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	nowOn, err := pc.engagements.Toggle(
		&models.Follow{},
		map[string]interface{}{"follower_id": followerID, "following_id": followingID},
		repositories.CounterRef{Model: &models.User{}, ID: followingID, Column: "followers_count"},
		repositories.CounterRef{Model: &models.User{}, ID: followerID, Column: "following_count"},
	)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to toggle follow")
		return
	}

	if nowOn && followingID == models.SelfUserID {
		var follower models.User
		if pc.db.First(&follower, "id = ?", followerID).Error == nil {
			pc.notificationController.CreateFollowNotification(follower.Name)
		}
	}

	pc.db.First(&target, "id = ?", followingID)
	c.JSON(http.StatusOK, gin.H{
		"is_following":    nowOn,
		"followers_count": target.FollowersCount,
	})
}

func (pc *ProfileController) listEntries(viewerID string, users []models.User) []models.UserListEntry {
	entries := make([]models.UserListEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, models.UserListEntry{
			ID:          u.ID,
			Name:        u.Name,
			Avatar:      u.Avatar,
			Bio:         u.Bio,
			IsFollowing: pc.isFollowing(viewerID, u.ID),
			IsMutual:    pc.isFollowing(viewerID, u.ID) && pc.isFollowing(u.ID, viewerID),
		})
	}
	return entries
}

// GetFollowers handles GET /users/:id/followers
func (pc *ProfileController) GetFollowers(c *gin.Context) {
	viewerID := c.GetString("user_id")
	userID := c.Param("id")

	var users []models.User
	err := pc.db.
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.following_id = ?", userID).
		Order("follows.created_at DESC").
		Find(&users).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch followers")
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": pc.listEntries(viewerID, users)})
}

// GetFollowing handles GET /users/:id/following
func (pc *ProfileController) GetFollowing(c *gin.Context) {
	viewerID := c.GetString("user_id")
	userID := c.Param("id")

	var users []models.User
	err := pc.db.
		Joins("JOIN follows ON follows.following_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("follows.created_at DESC").
		Find(&users).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch following")
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": pc.listEntries(viewerID, users)})
}

// GetUserPosts handles GET /users/:id/posts
func (pc *ProfileController) GetUserPosts(c *gin.Context) {
	viewerID := c.GetString("user_id")
	userID := c.Param("id")

	var posts []models.Post
	err := pc.db.Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	views := make([]models.PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, pc.postController.buildView(viewerID, post, false))
	}

	c.JSON(http.StatusOK, gin.H{"posts": views})
}

// GetBookmarks handles GET /users/me/bookmarks, most recently saved first.
func (pc *ProfileController) GetBookmarks(c *gin.Context) {
	viewerID := c.GetString("user_id")

	var posts []models.Post
	err := pc.db.Preload("User").
		Joins("JOIN post_bookmarks ON post_bookmarks.post_id = posts.id").
		Where("post_bookmarks.user_id = ?", viewerID).
		Order("post_bookmarks.created_at DESC").
		Find(&posts).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch bookmarks")
		return
	}

	views := make([]models.PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, pc.postController.buildView(viewerID, post, false))
	}

	c.JSON(http.StatusOK, gin.H{"posts": views})
}

// GetHistory handles GET /users/me/history. Each post appears once, at its
// most recent view.
func (pc *ProfileController) GetHistory(c *gin.Context) {
	viewerID := c.GetString("user_id")

	var records []models.ViewRecord
	err := pc.db.Where("user_id = ?", viewerID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch history")
		return
	}

	seen := make(map[string]bool)
	views := make([]models.PostView, 0, len(records))
	for _, record := range records {
		if seen[record.PostID] {
			continue
		}
		seen[record.PostID] = true

		var post models.Post
		if pc.db.Preload("User").First(&post, "id = ?", record.PostID).Error != nil {
			continue
		}
		views = append(views, pc.postController.buildView(viewerID, post, false))
	}

	c.JSON(http.StatusOK, gin.H{"posts": views})
}
