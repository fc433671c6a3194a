package session

import (
	"github.com/seebach/spieltracker/internal/logger"
	"github.com/seebach/spieltracker/internal/models"
	gameRepo "github.com/seebach/spieltracker/internal/repositories/game"
)

// ActionMode is the session's action state machine
type ActionMode string

const (
	// ModeIdle means no action is armed
	ModeIdle ActionMode = "idle"

	// ModeSubtract means the next target click subtracts a life
	ModeSubtract ActionMode = "subtract"

	// ModeNuke means the next target click detonates a nuke
	ModeNuke ActionMode = "nuke"
)

// Config holds configuration for the session service
type Config struct {
	// Repository dependencies
	GameRepo gameRepo.Repository

	// Service dependencies
	Logger logger.Logger
}

// OpenInput defines the input for opening a game session
type OpenInput struct {
	GameID string
}

// OpenOutput describes the session state after opening
type OpenOutput struct {
	Game   *models.Game
	Rounds []models.RoundSnapshot
	Cursor int
	Mode   ActionMode
}

// SetModeInput contains parameters for arming or clearing an action mode
type SetModeInput struct {
	GameID string
	Mode   ActionMode
}

// SetModeOutput contains the mode in effect after the call
type SetModeOutput struct {
	Mode ActionMode
}

// SubtractLifeInput contains parameters for a subtract-life action
type SubtractLifeInput struct {
	GameID   string
	TargetID string
}

// SubtractLifeOutput contains the result of a subtract-life action
type SubtractLifeOutput struct {
	// NoOp indicates the action produced no round (dead target)
	NoOp bool

	// Round is the appended snapshot, nil on NoOp
	Round *models.RoundSnapshot

	// Cursor is the cursor position after the action
	Cursor int

	// GameCompleted indicates the action ended the game
	GameCompleted bool

	// GameData is the completion summary when GameCompleted is set
	GameData *models.GameData
}

// DetonateNukeInput contains parameters for a nuke action.
// SurvivorID is empty on the first attempt; when the engine reports a
// conflict the caller re-invokes with the chosen survivor.
type DetonateNukeInput struct {
	GameID      string
	DetonatorID string
	SurvivorID  string
}

// DetonateNukeOutput contains the result of a nuke action
type DetonateNukeOutput struct {
	// NoOp indicates the action produced no round (dead detonator)
	NoOp bool

	// ConflictPlayers lists the players a survivor must be chosen from;
	// non-empty means nothing was committed yet
	ConflictPlayers []string

	// Round is the appended snapshot, nil on NoOp or conflict
	Round *models.RoundSnapshot

	// Cursor is the cursor position after the action
	Cursor int

	// GameCompleted indicates the action ended the game
	GameCompleted bool

	// GameData is the completion summary when GameCompleted is set
	GameData *models.GameData
}

// UndoInput defines the input for moving the cursor back
type UndoInput struct {
	GameID string
}

// UndoOutput contains the cursor position and round after the move
type UndoOutput struct {
	Cursor int
	Round  models.RoundSnapshot
}

// RedoInput defines the input for moving the cursor forward
type RedoInput struct {
	GameID string
}

// RedoOutput contains the cursor position and round after the move
type RedoOutput struct {
	Cursor int
	Round  models.RoundSnapshot
}

// ResetInput defines the input for discarding all rounds beyond round 0
type ResetInput struct {
	GameID string
}

// ResetOutput contains the number of discarded rounds
type ResetOutput struct {
	Deleted int
}

// CancelInput defines the input for cancelling a game
type CancelInput struct {
	GameID string
}

// CancelOutput contains the cancelled game
type CancelOutput struct {
	Game *models.Game
}
