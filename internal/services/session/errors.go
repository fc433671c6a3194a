package session

// SessionError is a custom error type for game-session errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound     SessionError = "game not found"
	ErrGameNotActive    SessionError = "game is not active"
	ErrActionInProgress SessionError = "another action is already armed"
	ErrActionPending    SessionError = "an action is awaiting completion"
	ErrWrongMode        SessionError = "the matching action mode is not armed"
	ErrInvalidMode      SessionError = "unknown action mode"
	ErrInvalidSurvivor  SessionError = "survivor must be one of the conflicting players"
	ErrNothingToReset   SessionError = "game has no rounds beyond the initial one"
	ErrNilConfig        SessionError = "config cannot be nil"
	ErrNilGameRepo      SessionError = "game repository cannot be nil"
)
