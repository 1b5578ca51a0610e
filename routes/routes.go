// File: /routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"anglerhub-api/config"
	"anglerhub-api/controllers"
	"anglerhub-api/middleware"
	"anglerhub-api/repositories"
	"anglerhub-api/services"
)

// SetupCORS configures permissive cross-origin access for the app client.
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-User-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, geminiService *services.GeminiService, weatherService *services.WeatherService) *controllers.NavigatorController {
	// Shared infrastructure
	engagements := repositories.NewEngagementRepository(db)

	// Controllers
	navigatorController := controllers.NewNavigatorController()
	notificationController := controllers.NewNotificationController(db)
	postController := controllers.NewPostController(db, engagements, notificationController)
	commentController := controllers.NewCommentController(db, notificationController)
	profileController := controllers.NewProfileController(db, engagements, postController, notificationController)
	journalController := controllers.NewJournalController(db)
	spotController := controllers.NewSpotController(db)
	chatController := controllers.NewChatController(db, navigatorController, cfg.ChatReplyDelay)
	weatherController := controllers.NewWeatherController(weatherService)
	assistantController := controllers.NewAssistantController(geminiService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
			"ai":      geminiService.Available(),
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")
	v1.Use(middleware.Identity())
	{
		// Navigator routes
		navigator := v1.Group("/navigator")
		{
			navigator.GET("", navigatorController.GetState)
			navigator.POST("/tab", navigatorController.SwitchTab)
			navigator.POST("/users/:id", navigatorController.OpenProfile)
			navigator.POST("/spots/:id", navigatorController.OpenSpot)
			navigator.POST("/posts/:id", navigatorController.OpenPost)
			navigator.POST("/chats/:id", navigatorController.OpenChat)
			navigator.POST("/back", navigatorController.GoBack)
		}

		// Post routes
		posts := v1.Group("/posts")
		{
			posts.GET("", postController.GetFeed)
			posts.POST("", postController.CreatePost)
			posts.GET("/:id", postController.GetPost)
			posts.POST("/:id/like", postController.ToggleLike)
			posts.POST("/:id/bookmark", postController.ToggleBookmark)
			posts.POST("/:id/expand", postController.ToggleExpand)
			posts.GET("/:id/comments", commentController.GetComments)
			posts.POST("/:id/comments", commentController.CreateComment)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.GET("/me/bookmarks", profileController.GetBookmarks)
			users.GET("/me/history", profileController.GetHistory)
			users.PUT("/me", profileController.UpdateProfile)
			users.GET("/:id", profileController.GetProfile)
			users.POST("/:id/follow", profileController.ToggleFollow)
			users.GET("/:id/followers", profileController.GetFollowers)
			users.GET("/:id/following", profileController.GetFollowing)
			users.GET("/:id/posts", profileController.GetUserPosts)
		}

		// Journal routes
		journal := v1.Group("/journal")
		{
			journal.GET("", journalController.GetLogs)
			journal.POST("", journalController.SaveLog)
			journal.GET("/:id", journalController.GetLog)
			journal.DELETE("/:id", journalController.DeleteLog)
		}

		// Spot routes
		spots := v1.Group("/spots")
		{
			spots.GET("", spotController.GetSpots)
			spots.GET("/:id", spotController.GetSpot)
		}

		// Chat routes
		chats := v1.Group("/chats")
		{
			chats.GET("", chatController.GetConversations)
			chats.GET("/:id", chatController.GetConversation)
			chats.POST("/:id/messages", chatController.SendMessage)
		}

		// Weather route
		v1.GET("/weather", weatherController.GetWeather)

		// AI routes proxy a metered upstream, so they carry a rate limit.
		ai := v1.Group("/")
		ai.Use(middleware.RateLimit(20, 5))
		{
			ai.POST("/fish/identify", assistantController.IdentifyFish)
			ai.POST("/assistant/advice", assistantController.Advice)
		}
	}

	return navigatorController
}
