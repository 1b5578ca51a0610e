// File: /controllers/spot_controller_test.go
package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anglerhub-api/models"
)

func TestGetSpotsBestRatedFirst(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, "GET", "/api/v1/spots", nil)
	statusOK(t, w)

	var resp struct {
		Spots []models.FishingSpot `json:"spots"`
	}
	decodeJSON(t, w, &resp)
	require.Len(t, resp.Spots, 3)
	assert.Equal(t, "3", resp.Spots[0].ID)
	assert.Equal(t, "1", resp.Spots[1].ID)
	assert.Equal(t, "2", resp.Spots[2].ID)
}

func TestGetSpotDetail(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, "GET", "/api/v1/spots/1", nil)
	statusOK(t, w)

	var spot models.FishingSpot
	decodeJSON(t, w, &spot)
	assert.Equal(t, "青山湖路亚基地 No.1", spot.Name)
	assert.Equal(t, "¥100/4小时", spot.Price)
	assert.Contains(t, []string(spot.Features), "渔具租赁")
	assert.Contains(t, []string(spot.FishSpecies), "翘嘴")

	w = env.request(t, "GET", "/api/v1/spots/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
