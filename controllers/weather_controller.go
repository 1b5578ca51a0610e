// File: /controllers/weather_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anglerhub-api/services"
)

type WeatherController struct {
	weatherService *services.WeatherService
}

func NewWeatherController(weatherService *services.WeatherService) *WeatherController {
	return &WeatherController{weatherService: weatherService}
}

// GetWeather handles GET /weather
func (wc *WeatherController) GetWeather(c *gin.Context) {
	c.JSON(http.StatusOK, wc.weatherService.Current())
}
