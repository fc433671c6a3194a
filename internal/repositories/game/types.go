package game

import (
	"github.com/seebach/spieltracker/internal/models"
)

// CreateGameInput contains a fully built game and its round 0 snapshot
type CreateGameInput struct {
	// Game carries ID, tracker, participants and timestamps, all set by
	// the caller
	Game *models.Game

	// InitialRound is round 0 (every player at full lives)
	InitialRound models.RoundSnapshot
}

// GetGameInput defines the input for retrieving a game by ID
type GetGameInput struct {
	GameID string
}

// GetRoundsInput defines the input for retrieving a game's round log
type GetRoundsInput struct {
	GameID string
}

// CreateRoundInput contains parameters for appending a round
type CreateRoundInput struct {
	// GameID is the game the round belongs to
	GameID string

	// Round is the snapshot to append; its round number must be unused
	Round models.RoundSnapshot
}

// DeleteRoundsAfterInput contains parameters for truncating the round log
type DeleteRoundsAfterInput struct {
	// GameID is the game whose log is truncated
	GameID string

	// RoundNumber is the last round to keep
	RoundNumber int
}

// DeleteRoundsAfterOutput contains the result of truncating the round log
type DeleteRoundsAfterOutput struct {
	// Deleted is the number of rounds removed
	Deleted int
}

// UpdateGameStatusInput contains parameters for a status transition
type UpdateGameStatusInput struct {
	// GameID is the game to transition
	GameID string

	// Status is the new status
	Status models.GameStatus

	// GameData is the completion summary, set only with COMPLETED
	GameData *models.GameData
}

// ListCompletedGamesInput defines the input for leaderboard replay reads
type ListCompletedGamesInput struct {
	// TrackerType selects the game type, e.g. "schwimmen"
	TrackerType string

	// TrackerIDs optionally restricts the result to these trackers
	TrackerIDs []string
}

// CompletedGame pairs a completed game with its full round log
type CompletedGame struct {
	Game   *models.Game
	Rounds []models.RoundSnapshot
}

// ListCompletedGamesOutput contains the games eligible for replay
type ListCompletedGamesOutput struct {
	Games []*CompletedGame
}
