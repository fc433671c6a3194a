package tracker

import (
	"github.com/seebach/spieltracker/internal/common/clock"
	"github.com/seebach/spieltracker/internal/common/uuid"
	"github.com/seebach/spieltracker/internal/logger"
	"github.com/seebach/spieltracker/internal/models"
	gameRepo "github.com/seebach/spieltracker/internal/repositories/game"
	trackerRepo "github.com/seebach/spieltracker/internal/repositories/tracker"
)

// Config holds configuration for the tracker service
type Config struct {
	// Repository dependencies
	TrackerRepo trackerRepo.Repository
	GameRepo    gameRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        logger.Logger
}

// NewPlayer describes a roster entry to create
type NewPlayer struct {
	// DisplayName is the name shown on scoreboards, unique per tracker
	DisplayName string

	// UserID links the player to a registered account, empty for guests
	UserID string
}

// CreateTrackerInput contains parameters for creating a tracker
type CreateTrackerInput struct {
	// Name is the tracker name
	Name string

	// CreatorID is the authenticated user creating the tracker
	CreatorID string

	// Players is the initial roster
	Players []NewPlayer
}

// CreateTrackerOutput contains the result of creating a tracker
type CreateTrackerOutput struct {
	Tracker *models.Tracker
}

// GetTrackerInput defines the input for retrieving a tracker
type GetTrackerInput struct {
	TrackerID string
}

// GetTrackerOutput contains the retrieved tracker
type GetTrackerOutput struct {
	Tracker *models.Tracker
}

// ListTrackersInput defines the input for listing a user's trackers
type ListTrackersInput struct {
	CreatorID string
}

// ListTrackersOutput contains the user's trackers
type ListTrackersOutput struct {
	Trackers []*models.Tracker
}

// AddPlayerInput contains parameters for adding a roster player
type AddPlayerInput struct {
	TrackerID   string
	DisplayName string
	UserID      string
}

// AddPlayerOutput contains the created roster entry
type AddPlayerOutput struct {
	Player *models.Player
}

// RenamePlayerInput contains parameters for renaming a roster player
type RenamePlayerInput struct {
	TrackerID   string
	PlayerID    string
	DisplayName string
}

// RenamePlayerOutput contains the renamed roster entry
type RenamePlayerOutput struct {
	Player *models.Player
}

// SetArchivedInput contains parameters for archiving a tracker
type SetArchivedInput struct {
	TrackerID string
	Archived  bool
}

// SetArchivedOutput contains the updated tracker
type SetArchivedOutput struct {
	Tracker *models.Tracker
}

// StartGameInput contains parameters for starting a game.
// PlayerIDs is the seating order and must reference roster entries.
type StartGameInput struct {
	TrackerID string
	PlayerIDs []string
}

// StartGameOutput contains the created game and its round 0
type StartGameOutput struct {
	Game         *models.Game
	InitialRound models.RoundSnapshot
}
