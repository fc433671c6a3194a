package session

import (
	"context"
	"errors"
	"sync"

	"github.com/seebach/spieltracker/internal/logger"
	"github.com/seebach/spieltracker/internal/models"
	gameRepo "github.com/seebach/spieltracker/internal/repositories/game"
	"github.com/seebach/spieltracker/internal/schwimmen"
)

// gameSession is the in-memory state for one open game. One logical
// client edits a game at a time; the mutex only keeps a stray concurrent
// request from corrupting the slice.
type gameSession struct {
	mu      sync.Mutex
	game    *models.Game
	rounds  []models.RoundSnapshot
	cursor  int
	mode    ActionMode
	pending bool
}

// service implements the Service interface
type service struct {
	gameRepo gameRepo.Repository
	logger   logger.Logger

	mu       sync.Mutex
	sessions map[string]*gameSession
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	log := cfg.Logger
	if log == nil {
		log = logger.New("session-service")
	}

	return &service{
		gameRepo: cfg.GameRepo,
		logger:   log,
		sessions: make(map[string]*gameSession),
	}, nil
}

// Open loads (or returns the already open) session for a game
func (s *service) Open(ctx context.Context, input *OpenInput) (*OpenOutput, error) {
	sess, err := s.ensure(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	rounds := make([]models.RoundSnapshot, len(sess.rounds))
	copy(rounds, sess.rounds)

	return &OpenOutput{
		Game:   sess.game,
		Rounds: rounds,
		Cursor: sess.cursor,
		Mode:   sess.mode,
	}, nil
}

// SetMode arms or clears an action mode. Clearing is always allowed and
// abandons a pending tie-break without side effects; arming requires an
// idle session on an active game.
func (s *service) SetMode(ctx context.Context, input *SetModeInput) (*SetModeOutput, error) {
	sess, err := s.ensure(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	switch input.Mode {
	case ModeIdle:
		sess.mode = ModeIdle
		sess.pending = false
	case ModeSubtract, ModeNuke:
		if sess.game.Status != models.GameStatusActive {
			return nil, ErrGameNotActive
		}
		if sess.pending {
			return nil, ErrActionPending
		}
		if sess.mode != ModeIdle && sess.mode != input.Mode {
			return nil, ErrActionInProgress
		}
		sess.mode = input.Mode
	default:
		return nil, ErrInvalidMode
	}

	return &SetModeOutput{Mode: sess.mode}, nil
}

// SubtractLife applies a subtract-life action to the target player
func (s *service) SubtractLife(ctx context.Context, input *SubtractLifeInput) (*SubtractLifeOutput, error) {
	sess, err := s.ensure(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.game.Status != models.GameStatusActive {
		return nil, ErrGameNotActive
	}
	if sess.mode != ModeSubtract {
		return nil, ErrWrongMode
	}

	current := sess.rounds[sess.cursor]
	next, ok := schwimmen.ApplySubtract(current, input.TargetID)
	if !ok {
		// Acting on an eliminated player is a silent no-op
		sess.mode = ModeIdle
		return &SubtractLifeOutput{NoOp: true, Cursor: sess.cursor}, nil
	}

	gameData, err := s.commit(ctx, sess, next)
	if err != nil {
		return nil, err
	}

	round := sess.rounds[sess.cursor]
	return &SubtractLifeOutput{
		Round:         &round,
		Cursor:        sess.cursor,
		GameCompleted: gameData != nil,
		GameData:      gameData,
	}, nil
}

// DetonateNuke applies a nuke action. With no survivor supplied the
// conflict check runs first: two or more opponents on their last life
// suspend the action and hand the choice back to the caller.
func (s *service) DetonateNuke(ctx context.Context, input *DetonateNukeInput) (*DetonateNukeOutput, error) {
	sess, err := s.ensure(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.game.Status != models.GameStatusActive {
		return nil, ErrGameNotActive
	}
	if sess.mode != ModeNuke {
		return nil, ErrWrongMode
	}

	current := sess.rounds[sess.cursor]
	if current.Lives(input.DetonatorID) <= 0 {
		sess.mode = ModeIdle
		sess.pending = false
		return &DetonateNukeOutput{NoOp: true, Cursor: sess.cursor}, nil
	}

	survivor := input.SurvivorID
	conflicts := schwimmen.NukeConflicts(current, input.DetonatorID)
	if len(conflicts) >= 2 {
		if survivor == "" {
			// Suspend until the caller supplies a survivor. Nothing is
			// committed and clearing the mode abandons the nuke.
			sess.pending = true
			return &DetonateNukeOutput{ConflictPlayers: conflicts, Cursor: sess.cursor}, nil
		}
		valid := false
		for _, id := range conflicts {
			if id == survivor {
				valid = true
				break
			}
		}
		if !valid {
			return nil, ErrInvalidSurvivor
		}
	} else if len(conflicts) == 1 {
		// The single last-life opponent always survives; a supplied
		// survivor may only confirm that choice
		if survivor != "" && survivor != conflicts[0] {
			return nil, ErrInvalidSurvivor
		}
		survivor = conflicts[0]
	} else if survivor != "" {
		return nil, ErrInvalidSurvivor
	}

	next, ok := schwimmen.ApplyNuke(current, input.DetonatorID, survivor)
	if !ok {
		sess.mode = ModeIdle
		sess.pending = false
		return &DetonateNukeOutput{NoOp: true, Cursor: sess.cursor}, nil
	}

	gameData, err := s.commit(ctx, sess, next)
	if err != nil {
		return nil, err
	}

	round := sess.rounds[sess.cursor]
	return &DetonateNukeOutput{
		Round:         &round,
		Cursor:        sess.cursor,
		GameCompleted: gameData != nil,
		GameData:      gameData,
	}, nil
}

// Undo moves the round cursor one round back, floored at round 0
func (s *service) Undo(ctx context.Context, input *UndoInput) (*UndoOutput, error) {
	sess, err := s.ensure(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.requireIdle(); err != nil {
		return nil, err
	}

	if sess.cursor > 0 {
		sess.cursor--
	}

	return &UndoOutput{Cursor: sess.cursor, Round: sess.rounds[sess.cursor]}, nil
}

// Redo moves the round cursor one round forward, capped at the latest
func (s *service) Redo(ctx context.Context, input *RedoInput) (*RedoOutput, error) {
	sess, err := s.ensure(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.requireIdle(); err != nil {
		return nil, err
	}

	if sess.cursor < len(sess.rounds)-1 {
		sess.cursor++
	}

	return &RedoOutput{Cursor: sess.cursor, Round: sess.rounds[sess.cursor]}, nil
}

// Reset discards every round except round 0
func (s *service) Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error) {
	sess, err := s.ensure(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.requireIdle(); err != nil {
		return nil, err
	}
	if sess.game.Status != models.GameStatusActive {
		return nil, ErrGameNotActive
	}
	if len(sess.rounds) <= 1 {
		return nil, ErrNothingToReset
	}

	out, err := s.gameRepo.DeleteRoundsAfter(ctx, &gameRepo.DeleteRoundsAfterInput{
		GameID:      sess.game.ID,
		RoundNumber: 0,
	})
	if err != nil {
		s.reject(sess, err)
		return nil, err
	}

	sess.rounds = sess.rounds[:1]
	sess.cursor = 0

	s.logger.Info("game reset", "gameId", sess.game.ID, "deleted", out.Deleted)

	return &ResetOutput{Deleted: out.Deleted}, nil
}

// Cancel abandons an active game for good
func (s *service) Cancel(ctx context.Context, input *CancelInput) (*CancelOutput, error) {
	sess, err := s.ensure(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.requireIdle(); err != nil {
		return nil, err
	}
	if sess.game.Status != models.GameStatusActive {
		return nil, ErrGameNotActive
	}

	if err := s.gameRepo.UpdateGameStatus(ctx, &gameRepo.UpdateGameStatusInput{
		GameID: sess.game.ID,
		Status: models.GameStatusCancelled,
	}); err != nil {
		s.reject(sess, err)
		return nil, err
	}

	sess.game.Status = models.GameStatusCancelled

	s.logger.Info("game cancelled", "gameId", sess.game.ID)

	return &CancelOutput{Game: sess.game}, nil
}

// commit persists one engine-produced round, rewriting discarded future
// history first when the cursor sits behind the latest round. It returns
// the completion summary when the round ended the game. The caller holds
// the session lock.
func (s *service) commit(ctx context.Context, sess *gameSession, next models.RoundSnapshot) (*models.GameData, error) {
	sess.pending = true
	defer func() { sess.pending = false }()

	// Branch-on-new-action: acting in the past discards the redo tail
	if sess.cursor < len(sess.rounds)-1 {
		if _, err := s.gameRepo.DeleteRoundsAfter(ctx, &gameRepo.DeleteRoundsAfterInput{
			GameID:      sess.game.ID,
			RoundNumber: sess.rounds[sess.cursor].RoundNumber,
		}); err != nil {
			s.reject(sess, err)
			return nil, err
		}
		sess.rounds = sess.rounds[:sess.cursor+1]
	}

	if err := s.gameRepo.CreateRound(ctx, &gameRepo.CreateRoundInput{
		GameID: sess.game.ID,
		Round:  next,
	}); err != nil {
		s.reject(sess, err)
		return nil, err
	}

	sess.rounds = append(sess.rounds, next)
	sess.cursor = len(sess.rounds) - 1
	sess.mode = ModeIdle

	// The win condition is judged on actual game progress, which after a
	// commit is always the latest round
	latest := sess.rounds[len(sess.rounds)-1]
	winner, won := schwimmen.Winner(latest)
	if !won {
		return nil, nil
	}

	gameData := &models.GameData{
		Type:      sess.game.Type,
		Winner:    winner,
		Swimming:  latest.PlayerSwimming,
		WinByNuke: latest.NukeBy != "",
	}

	if err := s.gameRepo.UpdateGameStatus(ctx, &gameRepo.UpdateGameStatusInput{
		GameID:   sess.game.ID,
		Status:   models.GameStatusCompleted,
		GameData: gameData,
	}); err != nil {
		s.reject(sess, err)
		return nil, err
	}

	sess.game.Status = models.GameStatusCompleted
	sess.game.GameData = gameData

	s.logger.Info("game completed", "gameId", sess.game.ID, "winner", winner, "winByNuke", gameData.WinByNuke)

	return gameData, nil
}

// reject handles a persistence rejection: the store is authoritative, so
// the optimistic session state is dropped and reloaded on next use.
func (s *service) reject(sess *gameSession, err error) {
	sess.mode = ModeIdle
	sess.pending = false

	s.logger.Error("persistence rejected session mutation", err, "gameId", sess.game.ID)

	s.mu.Lock()
	delete(s.sessions, sess.game.ID)
	s.mu.Unlock()
}

// ensure returns the open session for a game, loading it from the store
// on first touch.
func (s *service) ensure(ctx context.Context, gameID string) (*gameSession, error) {
	s.mu.Lock()
	if sess, ok := s.sessions[gameID]; ok {
		s.mu.Unlock()
		return sess, nil
	}
	s.mu.Unlock()

	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{GameID: gameID})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	rounds, err := s.gameRepo.GetRounds(ctx, &gameRepo.GetRoundsInput{GameID: gameID})
	if err != nil {
		return nil, err
	}
	if len(rounds) == 0 {
		return nil, ErrGameNotFound
	}

	sess := &gameSession{
		game:   game,
		rounds: rounds,
		cursor: len(rounds) - 1,
		mode:   ModeIdle,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another request may have loaded the session in the meantime
	if existing, ok := s.sessions[gameID]; ok {
		return existing, nil
	}
	s.sessions[gameID] = sess
	return sess, nil
}

// requireIdle rejects history navigation and lifecycle operations while
// an action is armed or mid-flight. The caller holds the session lock.
func (sess *gameSession) requireIdle() error {
	if sess.pending {
		return ErrActionPending
	}
	if sess.mode != ModeIdle {
		return ErrActionInProgress
	}
	return nil
}
