// File: /config/config.go
package config

import (
	"os"
	"time"
)

type Config struct {
	Port string

	// Gemini settings
	GeminiAPIKey string
	GeminiModel  string

	// Simulated latency and refresh knobs
	WeatherLatency  time.Duration
	WeatherTTL      time.Duration
	WeatherInterval time.Duration
	ChatReplyDelay  time.Duration
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8080"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		WeatherLatency:  getDurationEnv("WEATHER_LATENCY", time.Second),
		WeatherTTL:      getDurationEnv("WEATHER_TTL", 10*time.Minute),
		WeatherInterval: getDurationEnv("WEATHER_REFRESH_INTERVAL", 30*time.Minute),
		ChatReplyDelay:  getDurationEnv("CHAT_REPLY_DELAY", 2*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
