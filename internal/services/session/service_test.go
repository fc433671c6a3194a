package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/seebach/spieltracker/internal/models"
	gameRepo "github.com/seebach/spieltracker/internal/repositories/game"
	gamemock "github.com/seebach/spieltracker/internal/repositories/game/mocks"
)

const testGameID = "game-1"

type serviceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *gamemock.MockRepository
	service  *service
	ctx      context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(serviceTestSuite))
}

func (s *serviceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = gamemock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	svc, err := New(&Config{GameRepo: s.mockRepo})
	s.Require().NoError(err)
	s.service = svc
}

func (s *serviceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func activeGame() *models.Game {
	return &models.Game{
		ID:        testGameID,
		TrackerID: "tracker-1",
		Type:      models.GameTypeSchwimmen,
		Status:    models.GameStatusActive,
		Participants: []*models.Participant{
			{ID: "a", GameID: testGameID, DisplayName: "Anna"},
			{ID: "b", GameID: testGameID, DisplayName: "Ben"},
			{ID: "c", GameID: testGameID, DisplayName: "Cleo"},
		},
	}
}

func round(n int, lives map[string]int) models.RoundSnapshot {
	return models.RoundSnapshot{
		RoundNumber: n,
		Players: []models.RoundPlayer{
			{PlayerID: "a", Lives: lives["a"]},
			{PlayerID: "b", Lives: lives["b"]},
			{PlayerID: "c", Lives: lives["c"]},
		},
	}
}

// expectLoad wires the lazy session load for one game fixture.
func (s *serviceTestSuite) expectLoad(game *models.Game, rounds []models.RoundSnapshot) {
	s.mockRepo.EXPECT().
		GetGame(s.ctx, &gameRepo.GetGameInput{GameID: testGameID}).
		Return(game, nil)
	s.mockRepo.EXPECT().
		GetRounds(s.ctx, &gameRepo.GetRoundsInput{GameID: testGameID}).
		Return(rounds, nil)
}

func (s *serviceTestSuite) arm(mode ActionMode) {
	out, err := s.service.SetMode(s.ctx, &SetModeInput{GameID: testGameID, Mode: mode})
	s.Require().NoError(err)
	s.Require().Equal(mode, out.Mode)
}

func (s *serviceTestSuite) TestNew_NilConfig() {
	svc, err := New(nil)
	s.Nil(svc)
	s.ErrorIs(err, ErrNilConfig)
}

func (s *serviceTestSuite) TestNew_NilGameRepo() {
	svc, err := New(&Config{})
	s.Nil(svc)
	s.ErrorIs(err, ErrNilGameRepo)
}

func (s *serviceTestSuite) TestOpen_LoadsOnce() {
	game := activeGame()
	rounds := []models.RoundSnapshot{
		round(0, map[string]int{"a": 3, "b": 3, "c": 3}),
		round(1, map[string]int{"a": 3, "b": 2, "c": 3}),
	}
	s.expectLoad(game, rounds)

	out, err := s.service.Open(s.ctx, &OpenInput{GameID: testGameID})
	s.Require().NoError(err)
	s.Equal(1, out.Cursor)
	s.Equal(ModeIdle, out.Mode)
	s.Len(out.Rounds, 2)

	// Second open serves from memory, no further repository calls
	out, err = s.service.Open(s.ctx, &OpenInput{GameID: testGameID})
	s.Require().NoError(err)
	s.Equal(1, out.Cursor)
}

func (s *serviceTestSuite) TestOpen_GameNotFound() {
	s.mockRepo.EXPECT().
		GetGame(s.ctx, &gameRepo.GetGameInput{GameID: testGameID}).
		Return(nil, gameRepo.ErrGameNotFound)

	out, err := s.service.Open(s.ctx, &OpenInput{GameID: testGameID})
	s.Nil(out)
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *serviceTestSuite) TestSetMode_Guards() {
	s.expectLoad(activeGame(), []models.RoundSnapshot{
		round(0, map[string]int{"a": 3, "b": 3, "c": 3}),
	})

	_, err := s.service.SetMode(s.ctx, &SetModeInput{GameID: testGameID, Mode: ActionMode("explode")})
	s.ErrorIs(err, ErrInvalidMode)

	s.arm(ModeSubtract)

	// Switching straight to another armed mode is rejected
	_, err = s.service.SetMode(s.ctx, &SetModeInput{GameID: testGameID, Mode: ModeNuke})
	s.ErrorIs(err, ErrActionInProgress)

	// Re-arming the same mode and clearing are both fine
	s.arm(ModeSubtract)
	s.arm(ModeIdle)
	s.arm(ModeNuke)
}

func (s *serviceTestSuite) TestSetMode_ArmingRequiresActiveGame() {
	game := activeGame()
	game.Status = models.GameStatusCompleted
	s.expectLoad(game, []models.RoundSnapshot{
		round(0, map[string]int{"a": 3, "b": 3, "c": 3}),
	})

	_, err := s.service.SetMode(s.ctx, &SetModeInput{GameID: testGameID, Mode: ModeSubtract})
	s.ErrorIs(err, ErrGameNotActive)

	// Clearing still works on a finished game
	out, err := s.service.SetMode(s.ctx, &SetModeInput{GameID: testGameID, Mode: ModeIdle})
	s.Require().NoError(err)
	s.Equal(ModeIdle, out.Mode)
}

func (s *serviceTestSuite) TestSubtractLife_WrongMode() {
	s.expectLoad(activeGame(), []models.RoundSnapshot{
		round(0, map[string]int{"a": 3, "b": 3, "c": 3}),
	})

	_, err := s.service.SubtractLife(s.ctx, &SubtractLifeInput{GameID: testGameID, TargetID: "b"})
	s.ErrorIs(err, ErrWrongMode)
}

func (s *serviceTestSuite) TestSubtractLife_AppendsRound() {
	s.expectLoad(activeGame(), []models.RoundSnapshot{
		round(0, map[string]int{"a": 3, "b": 3, "c": 3}),
	})

	var created models.RoundSnapshot
	s.mockRepo.EXPECT().
		CreateRound(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gameRepo.CreateRoundInput) error {
			s.Equal(testGameID, input.GameID)
			created = input.Round
			return nil
		})

	s.arm(ModeSubtract)
	out, err := s.service.SubtractLife(s.ctx, &SubtractLifeInput{GameID: testGameID, TargetID: "b"})
	s.Require().NoError(err)

	s.False(out.NoOp)
	s.Equal(1, out.Cursor)
	s.False(out.GameCompleted)
	s.Equal(1, created.RoundNumber)
	s.Equal(2, created.Lives("b"))
	s.Equal(3, created.Lives("a"))
	s.Equal("a", created.Dealer)

	// Mode dropped back to idle, so history navigation is allowed again
	undo, err := s.service.Undo(s.ctx, &UndoInput{GameID: testGameID})
	s.Require().NoError(err)
	s.Equal(0, undo.Cursor)
}

func (s *serviceTestSuite) TestSubtractLife_DeadTargetIsNoOp() {
	s.expectLoad(activeGame(), []models.RoundSnapshot{
		round(0, map[string]int{"a": 3, "b": 3, "c": 3}),
		round(1, map[string]int{"a": 3, "b": 0, "c": 3}),
	})

	s.arm(ModeSubtract)
	out, err := s.service.SubtractLife(s.ctx, &SubtractLifeInput{GameID: testGameID, TargetID: "b"})
	s.Require().NoError(err)
	s.True(out.NoOp)
	s.Nil(out.Round)
	s.Equal(1, out.Cursor)
}

func (s *serviceTestSuite) TestSubtractLife_BranchesAfterUndo() {
	s.expectLoad(activeGame(), []models.RoundSnapshot{
		round(0, map[string]int{"a": 3, "b": 3, "c": 3}),
		round(1, map[string]int{"a": 3, "b": 2, "c": 3}),
		round(2, map[string]int{"a": 3, "b": 2, "c": 2}),
	})

	_, err := s.service.Undo(s.ctx, &UndoInput{GameID: testGameID})
	s.Require().NoError(err)

	// Acting on round 1 discards round 2 before the new round is written
	gomock.InOrder(
		s.mockRepo.EXPECT().
			DeleteRoundsAfter(s.ctx, &gameRepo.DeleteRoundsAfterInput{GameID: testGameID, RoundNumber: 1}).
			Return(&gameRepo.DeleteRoundsAfterOutput{Deleted: 1}, nil),
		s.mockRepo.EXPECT().
			CreateRound(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input *gameRepo.CreateRoundInput) error {
				s.Equal(2, input.Round.RoundNumber)
				s.Equal(1, input.Round.Lives("b"))
				return nil
			}),
	)

	s.arm(ModeSubtract)
	out, err := s.service.SubtractLife(s.ctx, &SubtractLifeInput{GameID: testGameID, TargetID: "b"})
	s.Require().NoError(err)
	s.Equal(2, out.Cursor)
	s.Equal(2, out.Round.RoundNumber)
}

func (s *serviceTestSuite) TestSubtractLife_CompletesGame() {
	// b is already swimming, so the next hit eliminates instead of
	// granting the grace again
	last := round(5, map[string]int{"a": 2, "b": 1, "c": 0})
	last.PlayerSwimming = "b"
	s.expectLoad(activeGame(), []models.RoundSnapshot{
		round(0, map[string]int{"a": 3, "b": 3, "c": 3}),
		last,
	})

	s.mockRepo.EXPECT().CreateRound(s.ctx, gomock.Any()).Return(nil)
	s.mockRepo.EXPECT().
		UpdateGameStatus(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gameRepo.UpdateGameStatusInput) error {
			s.Equal(models.GameStatusCompleted, input.Status)
			s.Require().NotNil(input.GameData)
			s.Equal("a", input.GameData.Winner)
			s.False(input.GameData.WinByNuke)
			return nil
		})

	s.arm(ModeSubtract)
	out, err := s.service.SubtractLife(s.ctx, &SubtractLifeInput{GameID: testGameID, TargetID: "b"})
	s.Require().NoError(err)
	s.True(out.GameCompleted)
	s.Equal("a", out.GameData.Winner)

	// A completed game takes no further actions
	_, err = s.service.SetMode(s.ctx, &SetModeInput{GameID: testGameID, Mode: ModeSubtract})
	s.ErrorIs(err, ErrGameNotActive)
}

func (s *serviceTestSuite) TestDetonateNuke_ConflictSuspendsThenResolves() {
	s.expectLoad(activeGame(), []models.RoundSnapshot{
		round(0, map[string]int{"a": 3, "b": 3, "c": 3}),
		round(3, map[string]int{"a": 2, "b": 1, "c": 1}),
	})

	s.arm(ModeNuke)
	out, err := s.service.DetonateNuke(s.ctx, &DetonateNukeInput{GameID: testGameID, DetonatorID: "a"})
	s.Require().NoError(err)
	s.ElementsMatch([]string{"b", "c"}, out.ConflictPlayers)
	s.Nil(out.Round)

	// The suspension blocks everything except abandoning or resolving
	_, err = s.service.Undo(s.ctx, &UndoInput{GameID: testGameID})
	s.ErrorIs(err, ErrActionPending)
	_, err = s.service.SetMode(s.ctx, &SetModeInput{GameID: testGameID, Mode: ModeSubtract})
	s.ErrorIs(err, ErrActionPending)

	_, err = s.service.DetonateNuke(s.ctx, &DetonateNukeInput{GameID: testGameID, DetonatorID: "a", SurvivorID: "a"})
	s.ErrorIs(err, ErrInvalidSurvivor)

	// c takes the free slot and swims, b is eliminated, a is untouched
	// as the detonator: two players stay alive and the game stays open
	s.mockRepo.EXPECT().
		CreateRound(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gameRepo.CreateRoundInput) error {
			s.Equal("c", input.Round.PlayerSwimming)
			s.Equal("a", input.Round.NukeBy)
			s.Equal(2, input.Round.Lives("a"))
			s.Equal(0, input.Round.Lives("b"))
			s.Equal(1, input.Round.Lives("c"))
			return nil
		})

	out, err = s.service.DetonateNuke(s.ctx, &DetonateNukeInput{GameID: testGameID, DetonatorID: "a", SurvivorID: "c"})
	s.Require().NoError(err)
	s.Require().NotNil(out.Round)
	s.Equal("c", out.Round.PlayerSwimming)
}

func (s *serviceTestSuite) TestDetonateNuke_AbandonConflict() {
	s.expectLoad(activeGame(), []models.RoundSnapshot{
		round(0, map[string]int{"a": 3, "b": 3, "c": 3}),
		round(3, map[string]int{"a": 2, "b": 1, "c": 1}),
	})

	s.arm(ModeNuke)
	out, err := s.service.DetonateNuke(s.ctx, &DetonateNukeInput{GameID: testGameID, DetonatorID: "a"})
	s.Require().NoError(err)
	s.NotEmpty(out.ConflictPlayers)

	// Dropping to idle abandons the nuke, nothing was persisted
	s.arm(ModeIdle)

	undo, err := s.service.Undo(s.ctx, &UndoInput{GameID: testGameID})
	s.Require().NoError(err)
	s.Equal(0, undo.Cursor)
}

func (s *serviceTestSuite) TestDetonateNuke_SingleCandidateAutoSurvives() {
	s.expectLoad(activeGame(), []models.RoundSnapshot{
		round(0, map[string]int{"a": 3, "b": 3, "c": 3}),
		round(2, map[string]int{"a": 2, "b": 1, "c": 2}),
	})

	s.mockRepo.EXPECT().
		CreateRound(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gameRepo.CreateRoundInput) error {
			s.Equal("b", input.Round.PlayerSwimming)
			s.Equal(1, input.Round.Lives("b"))
			s.Equal(1, input.Round.Lives("c"))
			return nil
		})

	s.arm(ModeNuke)
	out, err := s.service.DetonateNuke(s.ctx, &DetonateNukeInput{GameID: testGameID, DetonatorID: "a"})
	s.Require().NoError(err)
	s.Empty(out.ConflictPlayers)
	s.Equal("b", out.Round.PlayerSwimming)
}

func (s *serviceTestSuite) TestDetonateNuke_SurvivorMustBeTheCandidate() {
	s.expectLoad(activeGame(), []models.RoundSnapshot{
		round(0, map[string]int{"a": 3, "b": 3, "c": 3}),
		round(2, map[string]int{"a": 2, "b": 1, "c": 2}),
	})

	// Naming a healthy player would let them swim at full lives and rob
	// the sole last-life opponent of the grace
	s.arm(ModeNuke)
	_, err := s.service.DetonateNuke(s.ctx, &DetonateNukeInput{GameID: testGameID, DetonatorID: "a", SurvivorID: "c"})
	s.ErrorIs(err, ErrInvalidSurvivor)

	// Confirming the automatic candidate commits normally
	s.mockRepo.EXPECT().
		CreateRound(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gameRepo.CreateRoundInput) error {
			s.Equal("b", input.Round.PlayerSwimming)
			s.Equal(1, input.Round.Lives("b"))
			return nil
		})

	out, err := s.service.DetonateNuke(s.ctx, &DetonateNukeInput{GameID: testGameID, DetonatorID: "a", SurvivorID: "b"})
	s.Require().NoError(err)
	s.Equal("b", out.Round.PlayerSwimming)
}

func (s *serviceTestSuite) TestDetonateNuke_SurvivorRejectedWithoutCandidates() {
	s.expectLoad(activeGame(), []models.RoundSnapshot{
		round(0, map[string]int{"a": 3, "b": 3, "c": 3}),
	})

	s.arm(ModeNuke)
	_, err := s.service.DetonateNuke(s.ctx, &DetonateNukeInput{GameID: testGameID, DetonatorID: "a", SurvivorID: "b"})
	s.ErrorIs(err, ErrInvalidSurvivor)
}

func (s *serviceTestSuite) TestDetonateNuke_DeadDetonatorIsNoOp() {
	s.expectLoad(activeGame(), []models.RoundSnapshot{
		round(0, map[string]int{"a": 3, "b": 3, "c": 3}),
		round(4, map[string]int{"a": 0, "b": 2, "c": 2}),
	})

	s.arm(ModeNuke)
	out, err := s.service.DetonateNuke(s.ctx, &DetonateNukeInput{GameID: testGameID, DetonatorID: "a"})
	s.Require().NoError(err)
	s.True(out.NoOp)
}

func (s *serviceTestSuite) TestPersistenceRejectionDropsSession() {
	s.expectLoad(activeGame(), []models.RoundSnapshot{
		round(0, map[string]int{"a": 3, "b": 3, "c": 3}),
	})

	s.mockRepo.EXPECT().
		CreateRound(s.ctx, gomock.Any()).
		Return(gameRepo.ErrGameNotActive)

	s.arm(ModeSubtract)
	_, err := s.service.SubtractLife(s.ctx, &SubtractLifeInput{GameID: testGameID, TargetID: "b"})
	s.ErrorIs(err, gameRepo.ErrGameNotActive)

	// The store is authoritative: the session was dropped and the next
	// touch reloads it
	cancelled := activeGame()
	cancelled.Status = models.GameStatusCancelled
	s.expectLoad(cancelled, []models.RoundSnapshot{
		round(0, map[string]int{"a": 3, "b": 3, "c": 3}),
	})

	out, err := s.service.Open(s.ctx, &OpenInput{GameID: testGameID})
	s.Require().NoError(err)
	s.Equal(models.GameStatusCancelled, out.Game.Status)
	s.Equal(ModeIdle, out.Mode)
}

func (s *serviceTestSuite) TestUndoRedo_Clamps() {
	s.expectLoad(activeGame(), []models.RoundSnapshot{
		round(0, map[string]int{"a": 3, "b": 3, "c": 3}),
		round(1, map[string]int{"a": 3, "b": 2, "c": 3}),
	})

	undo, err := s.service.Undo(s.ctx, &UndoInput{GameID: testGameID})
	s.Require().NoError(err)
	s.Equal(0, undo.Cursor)

	// Already at round 0, another undo stays put
	undo, err = s.service.Undo(s.ctx, &UndoInput{GameID: testGameID})
	s.Require().NoError(err)
	s.Equal(0, undo.Cursor)

	redo, err := s.service.Redo(s.ctx, &RedoInput{GameID: testGameID})
	s.Require().NoError(err)
	s.Equal(1, redo.Cursor)

	redo, err = s.service.Redo(s.ctx, &RedoInput{GameID: testGameID})
	s.Require().NoError(err)
	s.Equal(1, redo.Cursor)
}

func (s *serviceTestSuite) TestUndo_BlockedWhileArmed() {
	s.expectLoad(activeGame(), []models.RoundSnapshot{
		round(0, map[string]int{"a": 3, "b": 3, "c": 3}),
		round(1, map[string]int{"a": 3, "b": 2, "c": 3}),
	})

	s.arm(ModeSubtract)
	_, err := s.service.Undo(s.ctx, &UndoInput{GameID: testGameID})
	s.ErrorIs(err, ErrActionInProgress)
}

func (s *serviceTestSuite) TestReset() {
	s.expectLoad(activeGame(), []models.RoundSnapshot{
		round(0, map[string]int{"a": 3, "b": 3, "c": 3}),
		round(1, map[string]int{"a": 3, "b": 2, "c": 3}),
		round(2, map[string]int{"a": 3, "b": 1, "c": 3}),
	})

	s.mockRepo.EXPECT().
		DeleteRoundsAfter(s.ctx, &gameRepo.DeleteRoundsAfterInput{GameID: testGameID, RoundNumber: 0}).
		Return(&gameRepo.DeleteRoundsAfterOutput{Deleted: 2}, nil)

	out, err := s.service.Reset(s.ctx, &ResetInput{GameID: testGameID})
	s.Require().NoError(err)
	s.Equal(2, out.Deleted)

	opened, err := s.service.Open(s.ctx, &OpenInput{GameID: testGameID})
	s.Require().NoError(err)
	s.Len(opened.Rounds, 1)
	s.Equal(0, opened.Cursor)

	// Nothing left to discard
	_, err = s.service.Reset(s.ctx, &ResetInput{GameID: testGameID})
	s.ErrorIs(err, ErrNothingToReset)
}

func (s *serviceTestSuite) TestCancel() {
	s.expectLoad(activeGame(), []models.RoundSnapshot{
		round(0, map[string]int{"a": 3, "b": 3, "c": 3}),
	})

	s.mockRepo.EXPECT().
		UpdateGameStatus(s.ctx, &gameRepo.UpdateGameStatusInput{
			GameID: testGameID,
			Status: models.GameStatusCancelled,
		}).
		Return(nil)

	out, err := s.service.Cancel(s.ctx, &CancelInput{GameID: testGameID})
	s.Require().NoError(err)
	s.Equal(models.GameStatusCancelled, out.Game.Status)

	_, err = s.service.Cancel(s.ctx, &CancelInput{GameID: testGameID})
	s.ErrorIs(err, ErrGameNotActive)
}
