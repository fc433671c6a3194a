package models

import (
	"time"
)

// Tracker is a container of players and games for one group of people
// playing one game type.
type Tracker struct {
	// ID is the unique identifier for the tracker
	ID string `json:"id"`

	// Name is the user-chosen tracker name
	Name string `json:"name"`

	// Type is the game type played in this tracker
	Type string `json:"type"`

	// CreatorID is the user who created the tracker
	CreatorID string `json:"creatorId"`

	// Archived trackers reject new games but keep their history
	Archived bool `json:"archived"`

	// Players is the roster, display names unique within the tracker
	Players []*Player `json:"players"`

	// CreatedAt is when the tracker was created
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the tracker was last updated
	UpdatedAt time.Time `json:"updatedAt"`
}

// PlayerByID returns the roster entry with the given ID, or nil.
func (t *Tracker) PlayerByID(id string) *Player {
	for _, p := range t.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// HasDisplayName reports whether any roster entry other than excludeID
// already uses the given display name.
func (t *Tracker) HasDisplayName(name, excludeID string) bool {
	for _, p := range t.Players {
		if p.ID != excludeID && p.DisplayName == name {
			return true
		}
	}
	return false
}
