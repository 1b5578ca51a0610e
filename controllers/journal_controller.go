// File: /controllers/journal_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"anglerhub-api/models"
	"anglerhub-api/utils"
)

type JournalController struct {
	db *gorm.DB
}

func NewJournalController(db *gorm.DB) *JournalController {
	return &JournalController{db: db}
}

// SaveLogRequest takes weight and length as free-form strings; the form
// accepts anything and unparseable input counts as zero.
type SaveLogRequest struct {
	ID       string `json:"id"`
	Species  string `json:"species" binding:"required"`
	Weight   string `json:"weight"`
	Length   string `json:"length"`
	Location string `json:"location"`
	Date     string `json:"date"`
	Note     string `json:"note"`
	Image    string `json:"image"`
}

// GetLogs handles GET /journal. An optional q parameter filters by species,
// location or note, case-insensitively.
func (jc *JournalController) GetLogs(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	db := jc.db.Order("created_at DESC")
	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		db = db.Where(
			"LOWER(species) LIKE ? OR LOWER(location) LIKE ? OR LOWER(note) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var logs []models.CatchLog
	if err := db.Find(&logs).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch catch logs")
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// GetLog handles GET /journal/:id
func (jc *JournalController) GetLog(c *gin.Context) {
	var log models.CatchLog
	if err := jc.db.First(&log, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Catch log not found")
		return
	}

	c.JSON(http.StatusOK, log)
}

// SaveLog handles POST /journal. A request carrying the id of an existing
// log replaces it; anything else creates a new entry.
func (jc *JournalController) SaveLog(c *gin.Context) {
	var req SaveLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	log := models.CatchLog{
		ID:       req.ID,
		Species:  req.Species,
		Weight:   utils.ParseFloatOrZero(req.Weight),
		Length:   utils.ParseFloatOrZero(req.Length),
		Location: req.Location,
		Date:     req.Date,
		Note:     req.Note,
		Image:    req.Image,
	}

	if utils.IsBlank(log.Location) {
		log.Location = "未知地点"
	}
	if utils.IsBlank(log.Date) {
		log.Date = time.Now().Format("2006-01-02")
	}
	if utils.IsBlank(log.Image) {
		log.Image = fmt.Sprintf("https://picsum.photos/400/300?random=%d", time.Now().UnixMilli()%100)
	}

	if log.ID != "" {
		var existing models.CatchLog
		if err := jc.db.First(&existing, "id = ?", log.ID).Error; err == nil {
			log.CreatedAt = existing.CreatedAt
			if err := jc.db.Save(&log).Error; err != nil {
				utils.SendError(c, http.StatusInternalServerError, "Failed to update catch log")
				return
			}
			c.JSON(http.StatusOK, log)
			return
		}
	}

	// New entries get a millisecond timestamp id, matching the seeded
	// numeric id style.
	log.ID = fmt.Sprintf("%d", time.Now().UnixMilli())
	log.CreatedAt = time.Now()

	if err := jc.db.Create(&log).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create catch log")
		return
	}

	c.JSON(http.StatusCreated, log)
}

// DeleteLog handles DELETE /journal/:id
func (jc *JournalController) DeleteLog(c *gin.Context) {
	logID := c.Param("id")

	var log models.CatchLog
	if err := jc.db.First(&log, "id = ?", logID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Catch log not found")
		return
	}

	if err := jc.db.Delete(&log).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete catch log")
		return
	}

	utils.SendSuccess(c, "Catch log deleted successfully", nil)
}
