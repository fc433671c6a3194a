package leaderboard

import (
	"github.com/seebach/spieltracker/internal/logger"
	gameRepo "github.com/seebach/spieltracker/internal/repositories/game"
)

// Metric selects which statistic a leaderboard is ranked by
type Metric string

const (
	// MetricWins ranks by total games won
	MetricWins Metric = "wins"

	// MetricWinRate ranks by wins per appearance
	MetricWinRate Metric = "win_rate"

	// MetricAppearances ranks by games played
	MetricAppearances Metric = "appearances"

	// MetricNukes ranks by nukes detonated
	MetricNukes Metric = "nukes"

	// MetricSwims ranks by times a player entered the swimming state
	MetricSwims Metric = "swims"

	// MetricSwimRate ranks by swims per appearance
	MetricSwimRate Metric = "swim_rate"

	// MetricUnbreakable ranks by games won while being the swimmer
	MetricUnbreakable Metric = "unbreakable"

	// MetricUntouchable ranks by games won without losing a life
	MetricUntouchable Metric = "untouchable"
)

// Config holds configuration for the leaderboard service
type Config struct {
	// Repository dependencies
	GameRepo gameRepo.Repository

	// Service dependencies
	Logger logger.Logger
}

// GetLeaderboardInput defines the input for a leaderboard computation
type GetLeaderboardInput struct {
	// TrackerType selects the game type to aggregate
	TrackerType string

	// TrackerIDs optionally restricts the corpus to these trackers
	TrackerIDs []string

	// Metric selects the statistic to rank by
	Metric Metric
}

// Entry is one ranked leaderboard row
type Entry struct {
	// Placing uses standard competition ranking: ties share a placing
	// and the sequence skips the tied count afterwards
	Placing int

	// UserID is the linked account the row belongs to
	UserID string

	// DisplayName is the name last seen for this user
	DisplayName string

	// Value is the raw metric value used for ranking
	Value float64

	// Formatted is the metric value rendered for display
	Formatted string
}

// GetLeaderboardOutput contains the ranked standings
type GetLeaderboardOutput struct {
	Metric  Metric
	Entries []*Entry
}
