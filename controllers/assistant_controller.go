// File: /controllers/assistant_controller.go
package controllers

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"anglerhub-api/services"
	"anglerhub-api/utils"
)

type AssistantController struct {
	geminiService *services.GeminiService
}

func NewAssistantController(geminiService *services.GeminiService) *AssistantController {
	return &AssistantController{geminiService: geminiService}
}

type IdentifyFishRequest struct {
	Image    string `json:"image" binding:"required"`
	MimeType string `json:"mime_type"`
}

type AdviceRequest struct {
	Query string `json:"query"`
}

// IdentifyFish handles POST /fish/identify. The image arrives base64
// encoded, with or without a data URL prefix. Upstream failures surface as
// errors here; the identifier has no canned fallback.
func (ac *AssistantController) IdentifyFish(c *gin.Context) {
	var req IdentifyFishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	encoded := req.Image
	mimeType := req.MimeType
	if strings.HasPrefix(encoded, "data:") {
		parts := strings.SplitN(encoded, ",", 2)
		if len(parts) != 2 {
			utils.SendValidationError(c, "Malformed data URL")
			return
		}
		if mimeType == "" {
			mimeType = strings.TrimSuffix(strings.TrimPrefix(parts[0], "data:"), ";base64")
		}
		encoded = parts[1]
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		utils.SendValidationError(c, "Image must be valid base64")
		return
	}

	result, err := ac.geminiService.IdentifyFish(c.Request.Context(), data, mimeType)
	if err != nil {
		utils.SendError(c, http.StatusBadGateway, "Fish identification failed")
		return
	}

	c.JSON(http.StatusOK, result)
}

// Advice handles POST /assistant/advice. This endpoint never fails once the
// request parses; degraded AI paths come back as canned advice text.
func (ac *AssistantController) Advice(c *gin.Context) {
	var req AdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if utils.IsBlank(req.Query) {
		utils.SendValidationError(c, "Query cannot be empty")
		return
	}

	advice := ac.geminiService.FishingAdvice(c.Request.Context(), req.Query)
	c.JSON(http.StatusOK, gin.H{"advice": advice})
}
