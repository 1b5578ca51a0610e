// File: /services/weather_service.go
package services

import (
	"math"
	"math/rand"
	"time"

	"github.com/patrickmn/go-cache"

	"anglerhub-api/models"
)

const weatherCacheKey = "current"

var weekdayNames = []string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"}

// WeatherService produces simulated conditions for the dashboard. There is
// no upstream provider; each snapshot is randomized around plausible values
// and cached until the TTL expires or Refresh replaces it.
type WeatherService struct {
	cache   *cache.Cache
	latency time.Duration
}

func NewWeatherService(ttl, latency time.Duration) *WeatherService {
	return &WeatherService{
		cache:   cache.New(ttl, ttl*2),
		latency: latency,
	}
}

// Current returns the cached snapshot, generating a fresh one on a miss.
// The generation path sleeps to mimic provider latency; cache hits return
// immediately.
func (s *WeatherService) Current() models.WeatherSnapshot {
	if cached, found := s.cache.Get(weatherCacheKey); found {
		return cached.(models.WeatherSnapshot)
	}

	time.Sleep(s.latency)
	snapshot := s.generate()
	s.cache.Set(weatherCacheKey, snapshot, cache.DefaultExpiration)
	return snapshot
}

// Refresh replaces the cached snapshot wholesale.
func (s *WeatherService) Refresh() models.WeatherSnapshot {
	snapshot := s.generate()
	s.cache.Set(weatherCacheKey, snapshot, cache.DefaultExpiration)
	return snapshot
}

func (s *WeatherService) generate() models.WeatherSnapshot {
	baseTemp := 20 + rand.Intn(5)

	return models.WeatherSnapshot{
		Temp:          baseTemp,
		Condition:     "多云转晴",
		Pressure:      1012 + rand.Intn(10),
		WindSpeed:     math.Round((2+rand.Float64()*3)*10) / 10,
		Humidity:      60 + rand.Intn(20),
		LocationName:  "杭州市 · 余杭区",
		FishingIndex:  8.5,
		FishingLevel:  "高",
		FishingAdvice: "气压稳定，鱼口活跃，适宜下竿",
		DailyForecast: s.forecast(baseTemp),
	}
}

func (s *WeatherService) forecast(baseTemp int) []models.DailyForecast {
	days := []struct {
		condition  string
		precipProb int
	}{
		{"多云", 15},
		{"小雨", 80},
		{"晴", 0},
	}

	forecast := make([]models.DailyForecast, 0, len(days))
	now := time.Now()
	for i, d := range days {
		date := "今天"
		switch i {
		case 1:
			date = "明天"
		case 2:
			date = weekdayNames[int(now.AddDate(0, 0, 2).Weekday())]
		}
		forecast = append(forecast, models.DailyForecast{
			Date:       date,
			Condition:  d.condition,
			TempMin:    baseTemp - 4 + i,
			TempMax:    baseTemp + 3 - i,
			PrecipProb: d.precipProb,
		})
	}
	return forecast
}
