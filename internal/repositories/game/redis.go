package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/seebach/spieltracker/internal/models"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix       = "game:"
	gameRoundsKeyPrefix = "game_rounds:"
	trackerGamesPrefix  = "tracker_games:"
	completedGamesKey   = "completed_games:" // one set per game type
)

var (
	// ErrGameNotFound is returned when a game is not found
	ErrGameNotFound = errors.New("game not found")

	// ErrGameNotActive is returned when a round mutation targets a game
	// that is no longer ACTIVE
	ErrGameNotActive = errors.New("game is not active")

	// ErrRoundExists is returned when a round number is already taken
	ErrRoundExists = errors.New("round already exists")
)

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// CreateGame persists a new game, its participants and round 0
func (r *redisRepository) CreateGame(ctx context.Context, input *CreateGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	if input.Game.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	if input.Game.TrackerID == "" {
		return errors.New("tracker ID cannot be empty")
	}

	gameJSON, err := json.Marshal(input.Game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	roundJSON, err := json.Marshal(models.GameRound{
		GameID: input.Game.ID,
		Round:  input.InitialRound.RoundNumber,
		Data:   input.InitialRound,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal initial round: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, gameKeyPrefix+input.Game.ID, gameJSON, 0)
	pipe.HSet(ctx, gameRoundsKeyPrefix+input.Game.ID, strconv.Itoa(input.InitialRound.RoundNumber), roundJSON)
	pipe.SAdd(ctx, trackerGamesPrefix+input.Game.TrackerID, input.Game.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	return nil
}

// GetGame retrieves a game by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	gameJSON, err := r.client.Get(ctx, gameKeyPrefix+input.GameID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var game models.Game
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

// GetRounds retrieves a game's round log ordered by round number
func (r *redisRepository) GetRounds(ctx context.Context, input *GetRoundsInput) ([]models.RoundSnapshot, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, gameRoundsKeyPrefix+input.GameID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get rounds: %w", err)
	}

	records := make([]models.GameRound, 0, len(fields))
	for field, payload := range fields {
		var record models.GameRound
		if err := json.Unmarshal([]byte(payload), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal round %s: %w", field, err)
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Round < records[j].Round
	})

	rounds := make([]models.RoundSnapshot, 0, len(records))
	for _, record := range records {
		rounds = append(rounds, record.Data)
	}

	return rounds, nil
}

// CreateRound appends one round to an ACTIVE game's log
func (r *redisRepository) CreateRound(ctx context.Context, input *CreateRoundInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	game, err := r.GetGame(ctx, &GetGameInput{GameID: input.GameID})
	if err != nil {
		return err
	}

	if game.Status != models.GameStatusActive {
		return ErrGameNotActive
	}

	roundJSON, err := json.Marshal(models.GameRound{
		GameID: input.GameID,
		Round:  input.Round.RoundNumber,
		Data:   input.Round,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal round: %w", err)
	}

	// HSetNX keeps (game, round) unique
	created, err := r.client.HSetNX(ctx, gameRoundsKeyPrefix+input.GameID, strconv.Itoa(input.Round.RoundNumber), roundJSON).Result()
	if err != nil {
		return fmt.Errorf("failed to create round: %w", err)
	}
	if !created {
		return ErrRoundExists
	}

	return nil
}

// DeleteRoundsAfter removes every round with a higher round number from
// an ACTIVE game's log
func (r *redisRepository) DeleteRoundsAfter(ctx context.Context, input *DeleteRoundsAfterInput) (*DeleteRoundsAfterOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	game, err := r.GetGame(ctx, &GetGameInput{GameID: input.GameID})
	if err != nil {
		return nil, err
	}

	if game.Status != models.GameStatusActive {
		return nil, ErrGameNotActive
	}

	roundsKey := gameRoundsKeyPrefix + input.GameID
	fields, err := r.client.HKeys(ctx, roundsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}

	var doomed []string
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		if n > input.RoundNumber {
			doomed = append(doomed, field)
		}
	}

	if len(doomed) == 0 {
		return &DeleteRoundsAfterOutput{Deleted: 0}, nil
	}

	if err := r.client.HDel(ctx, roundsKey, doomed...).Err(); err != nil {
		return nil, fmt.Errorf("failed to delete rounds: %w", err)
	}

	return &DeleteRoundsAfterOutput{Deleted: len(doomed)}, nil
}

// UpdateGameStatus transitions a game's status and maintains the
// completed-games index
func (r *redisRepository) UpdateGameStatus(ctx context.Context, input *UpdateGameStatusInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	game, err := r.GetGame(ctx, &GetGameInput{GameID: input.GameID})
	if err != nil {
		return err
	}

	game.Status = input.Status
	if input.GameData != nil {
		game.GameData = input.GameData
	}

	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, gameKeyPrefix+game.ID, gameJSON, 0)

	completedKey := completedGamesKey + game.Type
	if game.Status == models.GameStatusCompleted {
		pipe.SAdd(ctx, completedKey, game.ID)
	} else {
		pipe.SRem(ctx, completedKey, game.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update game status: %w", err)
	}

	return nil
}

// ListCompletedGames retrieves completed games with participants and
// full round logs
func (r *redisRepository) ListCompletedGames(ctx context.Context, input *ListCompletedGamesInput) (*ListCompletedGamesOutput, error) {
	if input == nil || input.TrackerType == "" {
		return nil, errors.New("input and tracker type cannot be empty")
	}

	gameIDs, err := r.client.SMembers(ctx, completedGamesKey+input.TrackerType).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list completed games: %w", err)
	}

	var wanted map[string]bool
	if len(input.TrackerIDs) > 0 {
		wanted = make(map[string]bool, len(input.TrackerIDs))
		for _, id := range input.TrackerIDs {
			wanted[id] = true
		}
	}

	games := make([]*CompletedGame, 0, len(gameIDs))
	for _, gameID := range gameIDs {
		game, err := r.GetGame(ctx, &GetGameInput{GameID: gameID})
		if err != nil {
			// Index entries can outlive their games
			if errors.Is(err, ErrGameNotFound) {
				continue
			}
			return nil, err
		}

		if wanted != nil && !wanted[game.TrackerID] {
			continue
		}

		rounds, err := r.GetRounds(ctx, &GetRoundsInput{GameID: gameID})
		if err != nil {
			return nil, err
		}

		games = append(games, &CompletedGame{
			Game:   game,
			Rounds: rounds,
		})
	}

	return &ListCompletedGamesOutput{Games: games}, nil
}
