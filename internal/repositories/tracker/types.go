package tracker

import (
	"github.com/seebach/spieltracker/internal/models"
)

// SaveTrackerInput contains the tracker to persist
type SaveTrackerInput struct {
	Tracker *models.Tracker
}

// GetTrackerInput defines the input for retrieving a tracker by ID
type GetTrackerInput struct {
	TrackerID string
}

// ListTrackersByCreatorInput defines the input for listing a user's trackers
type ListTrackersByCreatorInput struct {
	CreatorID string
}
