// File: /jobs/weather_refresh_job.go
package jobs

import (
	"fmt"
	"time"

	"anglerhub-api/services"
)

// WeatherRefreshJob handles periodic regeneration of the weather snapshot
type WeatherRefreshJob struct {
	weatherService *services.WeatherService
	ticker         *time.Ticker
	done           chan bool
}

// NewWeatherRefreshJob creates a new weather refresh job
func NewWeatherRefreshJob(weatherService *services.WeatherService, interval time.Duration) *WeatherRefreshJob {
	return &WeatherRefreshJob{
		weatherService: weatherService,
		ticker:         time.NewTicker(interval),
		done:           make(chan bool),
	}
}

// Start begins the refresh job
func (j *WeatherRefreshJob) Start() {
	fmt.Println("Weather refresh job started")

	go func() {
		// Run immediately on start
		j.refresh()

		// Then run on schedule
		for {
			select {
			case <-j.ticker.C:
				j.refresh()
			case <-j.done:
				fmt.Println("Weather refresh job stopped")
				return
			}
		}
	}()
}

// Stop stops the refresh job
func (j *WeatherRefreshJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *WeatherRefreshJob) refresh() {
	snapshot := j.weatherService.Refresh()
	fmt.Printf("Weather snapshot refreshed: %d°C %s\n", snapshot.Temp, snapshot.Condition)
}
