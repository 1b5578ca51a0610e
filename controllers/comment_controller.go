// File: /controllers/comment_controller.go
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

type CommentController struct {
	db                     *gorm.DB
	notificationController *NotificationController
}

func NewCommentController(db *gorm.DB, notificationController *NotificationController) *CommentController {
	return &CommentController{
		db:                     db,
		notificationController: notificationController,
	}
}

type CreateCommentRequest struct {
	Text string `json:"text"`
}

// GetComments handles GET /posts/:id/comments, oldest first.
func (cc *CommentController) GetComments(c *gin.Context) {
	postID := c.Param("id")

	var post models.Post
	if err := cc.db.First(&post, "id = ?", postID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Post not found")
		return
	}

	var comments []models.Comment
	if err := cc.db.Where("post_id = ?", postID).Order("created_at ASC").Find(&comments).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch comments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments, "count": post.CommentsCount})
}

// CreateComment handles POST /posts/:id/comments. Blank text is rejected
// before anything is written, so the comment counter never moves for a
// no-op submission.
func (cc *CommentController) CreateComment(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("id")

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if utils.IsBlank(req.Text) {
		utils.SendValidationError(c, "Comment text cannot be empty")
		return
	}

	var post models.Post
	if err := cc.db.First(&post, "id = ?", postID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Post not found")
		return
	}

	var author models.User
	if err := cc.db.First(&author, "id = ?", userID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	comment := models.Comment{
		ID:           uuid.New().String(),
		PostID:       postID,
		AuthorName:   author.Name,
		AuthorAvatar: author.Avatar,
		Text:         req.Text,
		TimeLabel:    "刚刚",
		CreatedAt:    time.Now(),
	}

	// The comment row and the post counter move in the same transaction.
	err := cc.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).Where("id = ?", postID).
			UpdateColumn("comments_count", gorm.Expr("comments_count + ?", 1)).Error
	})
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create comment")
		return
	}

	if post.UserID != userID {
		cc.notificationController.CreateCommentNotification(author.Name, postID)
	}

	c.JSON(http.StatusCreated, comment)
}
