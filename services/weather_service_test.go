// File: /services/weather_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentSnapshotRanges(t *testing.T) {
	svc := NewWeatherService(time.Minute, 0)
	snapshot := svc.Current()

	assert.GreaterOrEqual(t, snapshot.Temp, 20)
	assert.Less(t, snapshot.Temp, 25)
	assert.GreaterOrEqual(t, snapshot.Pressure, 1012)
	assert.Less(t, snapshot.Pressure, 1022)
	assert.GreaterOrEqual(t, snapshot.WindSpeed, 2.0)
	assert.LessOrEqual(t, snapshot.WindSpeed, 5.0)
	assert.GreaterOrEqual(t, snapshot.Humidity, 60)
	assert.Less(t, snapshot.Humidity, 80)

	assert.Equal(t, "杭州市 · 余杭区", snapshot.LocationName)
	assert.Equal(t, 8.5, snapshot.FishingIndex)
	assert.Equal(t, "高", snapshot.FishingLevel)

	require.Len(t, snapshot.DailyForecast, 3)
	assert.Equal(t, "今天", snapshot.DailyForecast[0].Date)
	assert.Equal(t, "明天", snapshot.DailyForecast[1].Date)
	assert.Equal(t, 80, snapshot.DailyForecast[1].PrecipProb)
	for _, day := range snapshot.DailyForecast {
		assert.Less(t, day.TempMin, day.TempMax)
	}
}

func TestCurrentServesFromCache(t *testing.T) {
	svc := NewWeatherService(time.Minute, 0)

	first := svc.Current()
	second := svc.Current()
	assert.Equal(t, first, second)
}

func TestRefreshReplacesSnapshot(t *testing.T) {
	svc := NewWeatherService(time.Minute, 0)

	svc.Current()
	refreshed := svc.Refresh()

	// The refreshed snapshot is what Current now serves.
	assert.Equal(t, refreshed, svc.Current())
}
