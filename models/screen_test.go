// File: /models/screen_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreenKindValid(t *testing.T) {
	assert.True(t, ScreenDashboard.Valid())
	assert.True(t, ScreenChat.Valid())
	assert.False(t, ScreenKind("settings").Valid())
	assert.False(t, ScreenKind("").Valid())
}

func TestNavVisibility(t *testing.T) {
	visible := []ScreenKind{ScreenDashboard, ScreenFishID, ScreenCommunity, ScreenJournal, ScreenMine}
	for _, k := range visible {
		assert.True(t, k.NavVisible(), string(k))
	}

	hidden := []ScreenKind{
		ScreenCreatePost, ScreenProfile, ScreenAssistant, ScreenSpotDetail,
		ScreenPostDetail, ScreenChat, ScreenMessageList,
	}
	for _, k := range hidden {
		assert.False(t, k.NavVisible(), string(k))
	}
}

func TestBackTargets(t *testing.T) {
	targets := map[ScreenKind]ScreenKind{
		ScreenAssistant:   ScreenDashboard,
		ScreenCreatePost:  ScreenCommunity,
		ScreenProfile:     ScreenCommunity,
		ScreenMine:        ScreenDashboard,
		ScreenSpotDetail:  ScreenDashboard,
		ScreenPostDetail:  ScreenMine,
		ScreenMessageList: ScreenCommunity,
		ScreenChat:        ScreenMessageList,
	}
	for from, want := range targets {
		assert.Equal(t, want, from.BackTarget(), string(from))
	}

	// Tab screens fall back to the dashboard.
	assert.Equal(t, ScreenDashboard, ScreenCommunity.BackTarget())
}

func TestResolvedIDFallbacks(t *testing.T) {
	assert.Equal(t, "user_1", Screen{Kind: ScreenProfile}.ResolvedID())
	assert.Equal(t, "user_1", Screen{Kind: ScreenChat}.ResolvedID())
	assert.Equal(t, "1", Screen{Kind: ScreenSpotDetail}.ResolvedID())
	assert.Equal(t, "1", Screen{Kind: ScreenPostDetail}.ResolvedID())

	// An explicit id wins.
	assert.Equal(t, "u5", Screen{Kind: ScreenProfile, EntityID: "u5"}.ResolvedID())

	// Mine always renders the session user, whatever id it carries.
	assert.Equal(t, SelfUserID, Screen{Kind: ScreenMine, EntityID: "user_1"}.ResolvedID())

	// Tab screens carry no entity.
	assert.Equal(t, "", Screen{Kind: ScreenDashboard}.ResolvedID())
}
