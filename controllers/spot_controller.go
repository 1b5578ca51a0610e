// File: /controllers/spot_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"anglerhub-api/models"
	"anglerhub-api/utils"
)

type SpotController struct {
	db *gorm.DB
}

func NewSpotController(db *gorm.DB) *SpotController {
	return &SpotController{db: db}
}

// GetSpots handles GET /spots, best rated first.
func (sc *SpotController) GetSpots(c *gin.Context) {
	var spots []models.FishingSpot
	if err := sc.db.Order("rating DESC").Find(&spots).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch fishing spots")
		return
	}

	c.JSON(http.StatusOK, gin.H{"spots": spots})
}

// GetSpot handles GET /spots/:id
func (sc *SpotController) GetSpot(c *gin.Context) {
	var spot models.FishingSpot
	if err := sc.db.First(&spot, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Fishing spot not found")
		return
	}

	c.JSON(http.StatusOK, spot)
}
