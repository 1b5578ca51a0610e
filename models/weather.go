// File: /models/weather.go
package models

// WeatherSnapshot is immutable once produced; a refresh replaces the whole
// value, never individual fields.
type WeatherSnapshot struct {
	Temp          int             `json:"temp"`
	Condition     string          `json:"condition"`
	Pressure      int             `json:"pressure"`
	WindSpeed     float64         `json:"wind_speed"`
	Humidity      int             `json:"humidity"`
	LocationName  string          `json:"location_name"`
	FishingIndex  float64         `json:"fishing_index"`
	FishingLevel  string          `json:"fishing_level"`
	FishingAdvice string          `json:"fishing_advice"`
	DailyForecast []DailyForecast `json:"daily_forecast"`
}

type DailyForecast struct {
	Date       string `json:"date"`
	Condition  string `json:"condition"`
	TempMin    int    `json:"temp_min"`
	TempMax    int    `json:"temp_max"`
	PrecipProb int    `json:"precip_prob"`
}

// FishAnalysisResult is produced by the AI gateway and never persisted.
type FishAnalysisResult struct {
	Name           string `json:"name"`
	ScientificName string `json:"scientificName"`
	Edibility      string `json:"edibility"`
	Description    string `json:"description"`
	IsProtected    bool   `json:"isProtected"`
}
