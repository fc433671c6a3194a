package tracker

// TrackerError is a custom error type for tracker-related errors
type TrackerError string

// Error implements the error interface
func (e TrackerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrTrackerNotFound      TrackerError = "tracker not found"
	ErrTrackerArchived      TrackerError = "tracker is archived"
	ErrPlayerNotFound       TrackerError = "player not found in tracker"
	ErrDuplicateDisplayName TrackerError = "participant names must be unique"
	ErrNotEnoughPlayers     TrackerError = "a game needs at least two players"
	ErrNameRequired         TrackerError = "tracker name cannot be empty"
	ErrNilConfig            TrackerError = "config cannot be nil"
	ErrNilTrackerRepo       TrackerError = "tracker repository cannot be nil"
	ErrNilGameRepo          TrackerError = "game repository cannot be nil"
	ErrNilClock             TrackerError = "clock cannot be nil"
	ErrNilUUIDGenerator     TrackerError = "UUID generator cannot be nil"
)
