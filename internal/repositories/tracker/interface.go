package tracker

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/seebach/spieltracker/internal/repositories/tracker Repository

import (
	"context"

	"github.com/seebach/spieltracker/internal/models"
)

// Repository defines the interface for tracker persistence
type Repository interface {
	// SaveTracker persists a tracker and its roster
	SaveTracker(ctx context.Context, input *SaveTrackerInput) error

	// GetTracker retrieves a tracker by ID
	GetTracker(ctx context.Context, input *GetTrackerInput) (*models.Tracker, error)

	// ListTrackersByCreator retrieves every tracker created by a user
	ListTrackersByCreator(ctx context.Context, input *ListTrackersByCreatorInput) ([]*models.Tracker, error)
}
