package session

import "context"

// Service is the game session controller. It owns the round cursor and
// the action-mode state machine for each open game and funnels every
// mutation through the rule engine before persisting it.
type Service interface {
	// Open loads (or returns the already open) session for a game
	Open(ctx context.Context, input *OpenInput) (*OpenOutput, error)

	// SetMode arms or clears an action mode
	SetMode(ctx context.Context, input *SetModeInput) (*SetModeOutput, error)

	// SubtractLife applies a subtract-life action to the target player
	SubtractLife(ctx context.Context, input *SubtractLifeInput) (*SubtractLifeOutput, error)

	// DetonateNuke applies a nuke, detecting conflicts that need a
	// survivor choice before anything is committed
	DetonateNuke(ctx context.Context, input *DetonateNukeInput) (*DetonateNukeOutput, error)

	// Undo moves the round cursor one round back
	Undo(ctx context.Context, input *UndoInput) (*UndoOutput, error)

	// Redo moves the round cursor one round forward
	Redo(ctx context.Context, input *RedoInput) (*RedoOutput, error)

	// Reset discards every round except round 0
	Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error)

	// Cancel abandons an active game for good
	Cancel(ctx context.Context, input *CancelInput) (*CancelOutput, error)
}
