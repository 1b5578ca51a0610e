// File: /models/screen.go
package models

// ScreenKind enumerates the top-level views.
type ScreenKind string

const (
	ScreenDashboard   ScreenKind = "dashboard"
	ScreenFishID      ScreenKind = "fish_id"
	ScreenCommunity   ScreenKind = "community"
	ScreenJournal     ScreenKind = "journal"
	ScreenAssistant   ScreenKind = "assistant"
	ScreenCreatePost  ScreenKind = "create_post"
	ScreenProfile     ScreenKind = "profile"
	ScreenMine        ScreenKind = "mine"
	ScreenSpotDetail  ScreenKind = "spot_detail"
	ScreenPostDetail  ScreenKind = "post_detail"
	ScreenChat        ScreenKind = "chat"
	ScreenMessageList ScreenKind = "message_list"
)

// Screen is the single source of truth for what is on screen: a kind plus
// the one entity id that kind needs. Detail screens reached without an id
// fall back to fixed defaults via ResolvedID.
type Screen struct {
	Kind     ScreenKind `json:"kind"`
	EntityID string     `json:"entity_id,omitempty"`
}

func DefaultScreen() Screen {
	return Screen{Kind: ScreenDashboard}
}

func (k ScreenKind) Valid() bool {
	switch k {
	case ScreenDashboard, ScreenFishID, ScreenCommunity, ScreenJournal,
		ScreenAssistant, ScreenCreatePost, ScreenProfile, ScreenMine,
		ScreenSpotDetail, ScreenPostDetail, ScreenChat, ScreenMessageList:
		return true
	}
	return false
}

// ResolvedID returns the entity id the screen renders with, applying the
// hardcoded fallbacks used when a detail screen is reached with no id.
func (s Screen) ResolvedID() string {
	if s.Kind == ScreenMine {
		return SelfUserID
	}
	if s.EntityID != "" {
		return s.EntityID
	}
	switch s.Kind {
	case ScreenProfile, ScreenChat:
		return "user_1"
	case ScreenSpotDetail, ScreenPostDetail:
		return "1"
	}
	return ""
}

// NavVisible reports whether the bottom navigation bar shows on this
// screen. It is a static policy table, not a stack.
func (k ScreenKind) NavVisible() bool {
	switch k {
	case ScreenCreatePost, ScreenProfile, ScreenAssistant, ScreenSpotDetail,
		ScreenPostDetail, ScreenChat, ScreenMessageList:
		return false
	}
	return true
}

// BackTarget is the fixed screen a back action lands on. There is no
// navigation history, so this is not necessarily the previous screen.
func (k ScreenKind) BackTarget() ScreenKind {
	switch k {
	case ScreenAssistant:
		return ScreenDashboard
	case ScreenCreatePost:
		return ScreenCommunity
	case ScreenProfile:
		return ScreenCommunity
	case ScreenMine:
		return ScreenDashboard
	case ScreenSpotDetail:
		return ScreenDashboard
	case ScreenPostDetail:
		return ScreenMine
	case ScreenMessageList:
		return ScreenCommunity
	case ScreenChat:
		return ScreenMessageList
	}
	return ScreenDashboard
}
