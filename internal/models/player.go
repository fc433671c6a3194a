package models

// Player is a member of a tracker's roster. Display names are unique
// within a tracker and may be edited; everything else is immutable.
type Player struct {
	// ID is the unique identifier for the roster entry
	ID string `json:"id"`

	// TrackerID is the tracker this player belongs to
	TrackerID string `json:"trackerId"`

	// DisplayName is the name shown on scoreboards
	DisplayName string `json:"displayName"`

	// UserID links the player to a registered account, empty for guests
	UserID string `json:"userId,omitempty"`
}

// Participant is the snapshot of a roster player taken when a game is
// created. Round snapshots and game summaries refer to participant IDs.
type Participant struct {
	// ID is the unique identifier for this participation
	ID string `json:"id"`

	// GameID is the game this participation belongs to
	GameID string `json:"gameId"`

	// DisplayName is the player's name at the time the game started
	DisplayName string `json:"displayName"`

	// UserID links the participant to a registered account, empty for guests
	UserID string `json:"userId,omitempty"`
}
