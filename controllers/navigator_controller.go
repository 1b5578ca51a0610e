// File: /controllers/navigator_controller.go
package controllers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"anglerhub-api/models"
	"anglerhub-api/utils"
)

// NavigatorController holds the single current screen for the session.
// Navigation replaces the screen outright; there is no stack, and back
// follows a fixed target table.
//
// The generation counter increments on every transition. Delayed work
// scheduled on a screen (the simulated chat reply) captures the generation
// and is dropped if the session has since navigated.
type NavigatorController struct {
	mutex      sync.Mutex
	screen     models.Screen
	generation uint64
}

func NewNavigatorController() *NavigatorController {
	return &NavigatorController{
		screen: models.DefaultScreen(),
	}
}

type NavigatorState struct {
	Screen     models.Screen     `json:"screen"`
	ResolvedID string            `json:"resolved_id,omitempty"`
	NavVisible bool              `json:"nav_visible"`
	BackTarget models.ScreenKind `json:"back_target"`
	Generation uint64            `json:"generation"`
}

func (nc *NavigatorController) state() NavigatorState {
	return NavigatorState{
		Screen:     nc.screen,
		ResolvedID: nc.screen.ResolvedID(),
		NavVisible: nc.screen.Kind.NavVisible(),
		BackTarget: nc.screen.Kind.BackTarget(),
		Generation: nc.generation,
	}
}

func (nc *NavigatorController) setScreen(s models.Screen) NavigatorState {
	nc.mutex.Lock()
	defer nc.mutex.Unlock()

	nc.screen = s
	nc.generation++
	return nc.state()
}

// Generation returns the current navigation generation.
func (nc *NavigatorController) Generation() uint64 {
	nc.mutex.Lock()
	defer nc.mutex.Unlock()
	return nc.generation
}

// GetState handles GET /navigator
func (nc *NavigatorController) GetState(c *gin.Context) {
	nc.mutex.Lock()
	state := nc.state()
	nc.mutex.Unlock()

	c.JSON(http.StatusOK, state)
}

type SwitchTabRequest struct {
	Screen string `json:"screen" binding:"required"`
}

// SwitchTab handles POST /navigator/tab
func (nc *NavigatorController) SwitchTab(c *gin.Context) {
	var req SwitchTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	kind := models.ScreenKind(req.Screen)
	if !kind.Valid() {
		utils.SendError(c, http.StatusBadRequest, "Unknown screen: "+req.Screen)
		return
	}

	c.JSON(http.StatusOK, nc.setScreen(models.Screen{Kind: kind}))
}

// OpenProfile handles POST /navigator/users/:id
func (nc *NavigatorController) OpenProfile(c *gin.Context) {
	userID := c.Param("id")
	screen := models.Screen{Kind: models.ScreenProfile, EntityID: userID}
	if userID == models.SelfUserID {
		screen = models.Screen{Kind: models.ScreenMine}
	}
	c.JSON(http.StatusOK, nc.setScreen(screen))
}

// OpenSpot handles POST /navigator/spots/:id
func (nc *NavigatorController) OpenSpot(c *gin.Context) {
	c.JSON(http.StatusOK, nc.setScreen(models.Screen{
		Kind:     models.ScreenSpotDetail,
		EntityID: c.Param("id"),
	}))
}

// OpenPost handles POST /navigator/posts/:id
func (nc *NavigatorController) OpenPost(c *gin.Context) {
	c.JSON(http.StatusOK, nc.setScreen(models.Screen{
		Kind:     models.ScreenPostDetail,
		EntityID: c.Param("id"),
	}))
}

// OpenChat handles POST /navigator/chats/:id
func (nc *NavigatorController) OpenChat(c *gin.Context) {
	c.JSON(http.StatusOK, nc.setScreen(models.Screen{
		Kind:     models.ScreenChat,
		EntityID: c.Param("id"),
	}))
}

// GoBack handles POST /navigator/back
func (nc *NavigatorController) GoBack(c *gin.Context) {
	nc.mutex.Lock()
	target := nc.screen.Kind.BackTarget()
	nc.screen = models.Screen{Kind: target}
	nc.generation++
	state := nc.state()
	nc.mutex.Unlock()

	c.JSON(http.StatusOK, state)
}
