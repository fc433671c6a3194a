package models

import (
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusActive indicates a game is in progress
	GameStatusActive GameStatus = "ACTIVE"

	// GameStatusCompleted indicates a game ended with a winner
	GameStatusCompleted GameStatus = "COMPLETED"

	// GameStatusCancelled indicates a game was abandoned by the user
	GameStatusCancelled GameStatus = "CANCELLED"
)

// GameTypeSchwimmen is the tracker/game type tag for Schwimmen games.
const GameTypeSchwimmen = "schwimmen"

// GameData is the summary written when a game completes.
type GameData struct {
	// Type is the game type the summary belongs to
	Type string `json:"type"`

	// Winner is the participant ID of the last player standing
	Winner string `json:"winner"`

	// Swimming is the participant holding the grace in the final round,
	// empty when nobody was swimming
	Swimming string `json:"swimming,omitempty"`

	// WinByNuke indicates the final round was produced by a nuke
	WinByNuke bool `json:"winByNuke"`
}

// Game represents one played game inside a tracker
type Game struct {
	// ID is the unique identifier for the game
	ID string `json:"id"`

	// TrackerID is the tracker the game belongs to
	TrackerID string `json:"trackerId"`

	// Type is the game type, currently always "schwimmen"
	Type string `json:"type"`

	// Status is the current state of the game
	Status GameStatus `json:"status"`

	// Participants are the players of this game, in seating order
	Participants []*Participant `json:"participants"`

	// GameData is the completion summary, nil until the game completes
	GameData *GameData `json:"gameData,omitempty"`

	// CreatedAt is when the game was created
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time `json:"updatedAt"`
}

// ParticipantByID returns the participant with the given ID, or nil.
func (g *Game) ParticipantByID(id string) *Participant {
	for _, p := range g.Participants {
		if p.ID == id {
			return p
		}
	}
	return nil
}
