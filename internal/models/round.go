package models

// StartingLives is the number of lives every player holds at round 0.
const StartingLives = 3

// RoundPlayer is one seat in a round snapshot. The seating order of the
// players slice is fixed for the lifetime of a game.
type RoundPlayer struct {
	// PlayerID is the participant ID occupying this seat
	PlayerID string `json:"playerId"`

	// Lives is the number of lives remaining, never negative
	Lives int `json:"lives"`
}

// RoundSnapshot is the complete state of a game at one round boundary.
type RoundSnapshot struct {
	// RoundNumber starts at 0 and increases by one per accepted action
	RoundNumber int `json:"roundNumber"`

	// Players holds every seat in seating order, dead players included
	Players []RoundPlayer `json:"players"`

	// PlayerSwimming is the participant currently holding the last-life
	// grace, empty when nobody is swimming
	PlayerSwimming string `json:"playerSwimming,omitempty"`

	// Dealer is the participant whose turn is next, empty on round 0
	Dealer string `json:"dealer,omitempty"`

	// NukeBy is set only on rounds produced by a nuke, for attribution
	NukeBy string `json:"nukeBy,omitempty"`
}

// Clone returns a deep copy of the snapshot.
func (r RoundSnapshot) Clone() RoundSnapshot {
	out := r
	out.Players = make([]RoundPlayer, len(r.Players))
	copy(out.Players, r.Players)
	return out
}

// Lives returns the life count of the given participant, or -1 if the
// participant holds no seat in this round.
func (r RoundSnapshot) Lives(playerID string) int {
	for _, p := range r.Players {
		if p.PlayerID == playerID {
			return p.Lives
		}
	}
	return -1
}

// GameRound is the persisted form of a round snapshot, unique per
// (GameID, Round).
type GameRound struct {
	GameID string        `json:"gameId"`
	Round  int           `json:"round"`
	Data   RoundSnapshot `json:"data"`
}
