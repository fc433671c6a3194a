package tracker

import "context"

// Service defines the interface for tracker operations
type Service interface {
	// CreateTracker creates a tracker with its initial roster
	CreateTracker(ctx context.Context, input *CreateTrackerInput) (*CreateTrackerOutput, error)

	// GetTracker retrieves a tracker by ID
	GetTracker(ctx context.Context, input *GetTrackerInput) (*GetTrackerOutput, error)

	// ListTrackers retrieves the caller's trackers
	ListTrackers(ctx context.Context, input *ListTrackersInput) (*ListTrackersOutput, error)

	// AddPlayer adds a player to a tracker's roster
	AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error)

	// RenamePlayer changes a roster player's display name
	RenamePlayer(ctx context.Context, input *RenamePlayerInput) (*RenamePlayerOutput, error)

	// SetArchived archives or unarchives a tracker
	SetArchived(ctx context.Context, input *SetArchivedInput) (*SetArchivedOutput, error)

	// StartGame creates a new game from tracker roster players
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)
}
