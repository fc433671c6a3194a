package leaderboard

import "context"

// Service defines the interface for leaderboard computation
type Service interface {
	// GetLeaderboard replays the completed games of a tracker type and
	// returns the ranked standings for one metric
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}
