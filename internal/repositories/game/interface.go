package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/seebach/spieltracker/internal/repositories/game Repository

import (
	"context"

	"github.com/seebach/spieltracker/internal/models"
)

// Repository defines the interface for game and round persistence.
// Round mutations (CreateRound, DeleteRoundsAfter) are accepted for
// ACTIVE games only; that guard lives here, at the persistence boundary.
type Repository interface {
	// CreateGame persists a new game, its participants and round 0
	CreateGame(ctx context.Context, input *CreateGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// GetRounds retrieves a game's round log ordered by round number
	GetRounds(ctx context.Context, input *GetRoundsInput) ([]models.RoundSnapshot, error)

	// CreateRound appends one round to an ACTIVE game's log
	CreateRound(ctx context.Context, input *CreateRoundInput) error

	// DeleteRoundsAfter removes every round with a higher round number
	// from an ACTIVE game's log
	DeleteRoundsAfter(ctx context.Context, input *DeleteRoundsAfterInput) (*DeleteRoundsAfterOutput, error)

	// UpdateGameStatus transitions a game's status, optionally writing
	// the completion summary
	UpdateGameStatus(ctx context.Context, input *UpdateGameStatusInput) error

	// ListCompletedGames retrieves completed games with participants and
	// full round logs for leaderboard replay
	ListCompletedGames(ctx context.Context, input *ListCompletedGamesInput) (*ListCompletedGamesOutput, error)
}
