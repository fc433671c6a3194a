package tracker

import (
	"context"
	"errors"

	"github.com/seebach/spieltracker/internal/common/clock"
	"github.com/seebach/spieltracker/internal/common/uuid"
	"github.com/seebach/spieltracker/internal/logger"
	"github.com/seebach/spieltracker/internal/models"
	gameRepo "github.com/seebach/spieltracker/internal/repositories/game"
	trackerRepo "github.com/seebach/spieltracker/internal/repositories/tracker"
	"github.com/seebach/spieltracker/internal/schwimmen"
)

// service implements the Service interface
type service struct {
	trackerRepo trackerRepo.Repository
	gameRepo    gameRepo.Repository
	clock       clock.Clock
	uuid        uuid.UUID
	logger      logger.Logger
}

// New creates a new tracker service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.TrackerRepo == nil {
		return nil, ErrNilTrackerRepo
	}
	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	log := cfg.Logger
	if log == nil {
		log = logger.New("tracker-service")
	}

	return &service{
		trackerRepo: cfg.TrackerRepo,
		gameRepo:    cfg.GameRepo,
		clock:       cfg.Clock,
		uuid:        cfg.UUIDGenerator,
		logger:      log,
	}, nil
}

// CreateTracker creates a tracker with its initial roster
func (s *service) CreateTracker(ctx context.Context, input *CreateTrackerInput) (*CreateTrackerOutput, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}

	seen := make(map[string]bool, len(input.Players))
	for _, p := range input.Players {
		if seen[p.DisplayName] {
			return nil, ErrDuplicateDisplayName
		}
		seen[p.DisplayName] = true
	}

	now := s.clock.Now()
	tracker := &models.Tracker{
		ID:        s.uuid.NewUUID(),
		Name:      input.Name,
		Type:      models.GameTypeSchwimmen,
		CreatorID: input.CreatorID,
		Players:   make([]*models.Player, 0, len(input.Players)),
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, p := range input.Players {
		tracker.Players = append(tracker.Players, &models.Player{
			ID:          s.uuid.NewUUID(),
			TrackerID:   tracker.ID,
			DisplayName: p.DisplayName,
			UserID:      p.UserID,
		})
	}

	if err := s.trackerRepo.SaveTracker(ctx, &trackerRepo.SaveTrackerInput{Tracker: tracker}); err != nil {
		return nil, err
	}

	s.logger.Info("tracker created", "trackerId", tracker.ID, "players", len(tracker.Players))

	return &CreateTrackerOutput{Tracker: tracker}, nil
}

// GetTracker retrieves a tracker by ID
func (s *service) GetTracker(ctx context.Context, input *GetTrackerInput) (*GetTrackerOutput, error) {
	tracker, err := s.getTracker(ctx, input.TrackerID)
	if err != nil {
		return nil, err
	}
	return &GetTrackerOutput{Tracker: tracker}, nil
}

// ListTrackers retrieves the caller's trackers
func (s *service) ListTrackers(ctx context.Context, input *ListTrackersInput) (*ListTrackersOutput, error) {
	trackers, err := s.trackerRepo.ListTrackersByCreator(ctx, &trackerRepo.ListTrackersByCreatorInput{
		CreatorID: input.CreatorID,
	})
	if err != nil {
		return nil, err
	}
	return &ListTrackersOutput{Trackers: trackers}, nil
}

// AddPlayer adds a player to a tracker's roster
func (s *service) AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error) {
	tracker, err := s.getTracker(ctx, input.TrackerID)
	if err != nil {
		return nil, err
	}

	if tracker.HasDisplayName(input.DisplayName, "") {
		return nil, ErrDuplicateDisplayName
	}

	player := &models.Player{
		ID:          s.uuid.NewUUID(),
		TrackerID:   tracker.ID,
		DisplayName: input.DisplayName,
		UserID:      input.UserID,
	}

	tracker.Players = append(tracker.Players, player)
	tracker.UpdatedAt = s.clock.Now()

	if err := s.trackerRepo.SaveTracker(ctx, &trackerRepo.SaveTrackerInput{Tracker: tracker}); err != nil {
		return nil, err
	}

	return &AddPlayerOutput{Player: player}, nil
}

// RenamePlayer changes a roster player's display name
func (s *service) RenamePlayer(ctx context.Context, input *RenamePlayerInput) (*RenamePlayerOutput, error) {
	tracker, err := s.getTracker(ctx, input.TrackerID)
	if err != nil {
		return nil, err
	}

	player := tracker.PlayerByID(input.PlayerID)
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	if tracker.HasDisplayName(input.DisplayName, player.ID) {
		return nil, ErrDuplicateDisplayName
	}

	player.DisplayName = input.DisplayName
	tracker.UpdatedAt = s.clock.Now()

	if err := s.trackerRepo.SaveTracker(ctx, &trackerRepo.SaveTrackerInput{Tracker: tracker}); err != nil {
		return nil, err
	}

	return &RenamePlayerOutput{Player: player}, nil
}

// SetArchived archives or unarchives a tracker
func (s *service) SetArchived(ctx context.Context, input *SetArchivedInput) (*SetArchivedOutput, error) {
	tracker, err := s.getTracker(ctx, input.TrackerID)
	if err != nil {
		return nil, err
	}

	tracker.Archived = input.Archived
	tracker.UpdatedAt = s.clock.Now()

	if err := s.trackerRepo.SaveTracker(ctx, &trackerRepo.SaveTrackerInput{Tracker: tracker}); err != nil {
		return nil, err
	}

	return &SetArchivedOutput{Tracker: tracker}, nil
}

// StartGame creates a new game from tracker roster players
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	tracker, err := s.getTracker(ctx, input.TrackerID)
	if err != nil {
		return nil, err
	}

	if tracker.Archived {
		return nil, ErrTrackerArchived
	}

	if len(input.PlayerIDs) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	now := s.clock.Now()
	game := &models.Game{
		ID:           s.uuid.NewUUID(),
		TrackerID:    tracker.ID,
		Type:         tracker.Type,
		Status:       models.GameStatusActive,
		Participants: make([]*models.Participant, 0, len(input.PlayerIDs)),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	participantIDs := make([]string, 0, len(input.PlayerIDs))
	for _, playerID := range input.PlayerIDs {
		player := tracker.PlayerByID(playerID)
		if player == nil {
			return nil, ErrPlayerNotFound
		}

		participant := &models.Participant{
			ID:          s.uuid.NewUUID(),
			GameID:      game.ID,
			DisplayName: player.DisplayName,
			UserID:      player.UserID,
		}
		game.Participants = append(game.Participants, participant)
		participantIDs = append(participantIDs, participant.ID)
	}

	initialRound := schwimmen.InitialRound(participantIDs)

	if err := s.gameRepo.CreateGame(ctx, &gameRepo.CreateGameInput{
		Game:         game,
		InitialRound: initialRound,
	}); err != nil {
		return nil, err
	}

	s.logger.Info("game started", "gameId", game.ID, "trackerId", tracker.ID, "players", len(game.Participants))

	return &StartGameOutput{
		Game:         game,
		InitialRound: initialRound,
	}, nil
}

func (s *service) getTracker(ctx context.Context, trackerID string) (*models.Tracker, error) {
	tracker, err := s.trackerRepo.GetTracker(ctx, &trackerRepo.GetTrackerInput{TrackerID: trackerID})
	if err != nil {
		if errors.Is(err, trackerRepo.ErrTrackerNotFound) {
			return nil, ErrTrackerNotFound
		}
		return nil, err
	}
	return tracker, nil
}
