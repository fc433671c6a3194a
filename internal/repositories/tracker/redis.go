package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/seebach/spieltracker/internal/models"
)

const (
	// Key prefixes for Redis
	trackerKeyPrefix   = "tracker:"
	byCreatorKeyPrefix = "trackers_by_creator:"
)

// ErrTrackerNotFound is returned when a tracker is not found
var ErrTrackerNotFound = errors.New("tracker not found")

// Config holds configuration for the Redis tracker repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed tracker repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveTracker persists a tracker and its roster
func (r *redisRepository) SaveTracker(ctx context.Context, input *SaveTrackerInput) error {
	if input == nil || input.Tracker == nil {
		return errors.New("input and tracker cannot be nil")
	}

	trackerJSON, err := json.Marshal(input.Tracker)
	if err != nil {
		return fmt.Errorf("failed to marshal tracker: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, trackerKeyPrefix+input.Tracker.ID, trackerJSON, 0)

	if input.Tracker.CreatorID != "" {
		pipe.SAdd(ctx, byCreatorKeyPrefix+input.Tracker.CreatorID, input.Tracker.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save tracker: %w", err)
	}

	return nil
}

// GetTracker retrieves a tracker by ID from Redis
func (r *redisRepository) GetTracker(ctx context.Context, input *GetTrackerInput) (*models.Tracker, error) {
	if input == nil || input.TrackerID == "" {
		return nil, errors.New("input and tracker ID cannot be empty")
	}

	trackerJSON, err := r.client.Get(ctx, trackerKeyPrefix+input.TrackerID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrTrackerNotFound
		}
		return nil, fmt.Errorf("failed to get tracker: %w", err)
	}

	var tracker models.Tracker
	if err := json.Unmarshal([]byte(trackerJSON), &tracker); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tracker: %w", err)
	}

	return &tracker, nil
}

// ListTrackersByCreator retrieves every tracker created by a user
func (r *redisRepository) ListTrackersByCreator(ctx context.Context, input *ListTrackersByCreatorInput) ([]*models.Tracker, error) {
	if input == nil || input.CreatorID == "" {
		return nil, errors.New("input and creator ID cannot be empty")
	}

	trackerIDs, err := r.client.SMembers(ctx, byCreatorKeyPrefix+input.CreatorID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list trackers: %w", err)
	}

	trackers := make([]*models.Tracker, 0, len(trackerIDs))
	for _, id := range trackerIDs {
		tracker, err := r.GetTracker(ctx, &GetTrackerInput{TrackerID: id})
		if err != nil {
			if errors.Is(err, ErrTrackerNotFound) {
				continue
			}
			return nil, err
		}
		trackers = append(trackers, tracker)
	}

	return trackers, nil
}
