package leaderboard

// LeaderboardError is a custom error type for leaderboard errors
type LeaderboardError string

// Error implements the error interface
func (e LeaderboardError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrUnknownMetric LeaderboardError = "unknown leaderboard metric"
	ErrNilConfig     LeaderboardError = "config cannot be nil"
	ErrNilGameRepo   LeaderboardError = "game repository cannot be nil"
)
