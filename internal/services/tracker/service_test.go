package tracker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockmock "github.com/seebach/spieltracker/internal/common/clock/mocks"
	uuidmock "github.com/seebach/spieltracker/internal/common/uuid/mocks"
	"github.com/seebach/spieltracker/internal/models"
	gameRepo "github.com/seebach/spieltracker/internal/repositories/game"
	gamemock "github.com/seebach/spieltracker/internal/repositories/game/mocks"
	trackerRepo "github.com/seebach/spieltracker/internal/repositories/tracker"
	trackermock "github.com/seebach/spieltracker/internal/repositories/tracker/mocks"
)

type serviceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockTrackerRepo *trackermock.MockRepository
	mockGameRepo    *gamemock.MockRepository
	mockClock       *clockmock.MockClock
	mockUUID        *uuidmock.MockUUID
	service         *service
	ctx             context.Context
	now             time.Time
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(serviceTestSuite))
}

func (s *serviceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockTrackerRepo = trackermock.NewMockRepository(s.ctrl)
	s.mockGameRepo = gamemock.NewMockRepository(s.ctrl)
	s.mockClock = clockmock.NewMockClock(s.ctrl)
	s.mockUUID = uuidmock.NewMockUUID(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)

	svc, err := New(&Config{
		TrackerRepo:   s.mockTrackerRepo,
		GameRepo:      s.mockGameRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *serviceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// expectUUIDs hands out id-1, id-2, ... in order.
func (s *serviceTestSuite) expectUUIDs() {
	n := 0
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}).AnyTimes()
}

func (s *serviceTestSuite) fixtureTracker() *models.Tracker {
	return &models.Tracker{
		ID:        "tracker-1",
		Name:      "Stammtisch",
		Type:      models.GameTypeSchwimmen,
		CreatorID: "user-1",
		Players: []*models.Player{
			{ID: "p1", TrackerID: "tracker-1", DisplayName: "Anna", UserID: "user-1"},
			{ID: "p2", TrackerID: "tracker-1", DisplayName: "Ben", UserID: "user-2"},
			{ID: "p3", TrackerID: "tracker-1", DisplayName: "Gast"},
		},
	}
}

func (s *serviceTestSuite) expectGetTracker(t *models.Tracker) {
	s.mockTrackerRepo.EXPECT().
		GetTracker(s.ctx, &trackerRepo.GetTrackerInput{TrackerID: t.ID}).
		Return(t, nil)
}

func (s *serviceTestSuite) TestNew_NilChecks() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{GameRepo: s.mockGameRepo, Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilTrackerRepo)

	_, err = New(&Config{TrackerRepo: s.mockTrackerRepo, Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilGameRepo)

	_, err = New(&Config{TrackerRepo: s.mockTrackerRepo, GameRepo: s.mockGameRepo, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{TrackerRepo: s.mockTrackerRepo, GameRepo: s.mockGameRepo, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilUUIDGenerator)
}

func (s *serviceTestSuite) TestCreateTracker() {
	s.expectUUIDs()
	s.mockClock.EXPECT().Now().Return(s.now)

	var saved *models.Tracker
	s.mockTrackerRepo.EXPECT().
		SaveTracker(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *trackerRepo.SaveTrackerInput) error {
			saved = input.Tracker
			return nil
		})

	out, err := s.service.CreateTracker(s.ctx, &CreateTrackerInput{
		Name:      "Stammtisch",
		CreatorID: "user-1",
		Players: []NewPlayer{
			{DisplayName: "Anna", UserID: "user-1"},
			{DisplayName: "Gast"},
		},
	})
	s.Require().NoError(err)
	s.Equal(saved, out.Tracker)

	s.Equal("id-1", out.Tracker.ID)
	s.Equal(models.GameTypeSchwimmen, out.Tracker.Type)
	s.Equal("user-1", out.Tracker.CreatorID)
	s.Equal(s.now, out.Tracker.CreatedAt)
	s.Require().Len(out.Tracker.Players, 2)
	s.Equal("id-2", out.Tracker.Players[0].ID)
	s.Equal(out.Tracker.ID, out.Tracker.Players[0].TrackerID)
	s.Equal("Gast", out.Tracker.Players[1].DisplayName)
	s.Empty(out.Tracker.Players[1].UserID)
}

func (s *serviceTestSuite) TestCreateTracker_NameRequired() {
	_, err := s.service.CreateTracker(s.ctx, &CreateTrackerInput{CreatorID: "user-1"})
	s.ErrorIs(err, ErrNameRequired)
}

func (s *serviceTestSuite) TestCreateTracker_DuplicateNames() {
	_, err := s.service.CreateTracker(s.ctx, &CreateTrackerInput{
		Name:      "Stammtisch",
		CreatorID: "user-1",
		Players: []NewPlayer{
			{DisplayName: "Anna"},
			{DisplayName: "Anna"},
		},
	})
	s.ErrorIs(err, ErrDuplicateDisplayName)
}

func (s *serviceTestSuite) TestGetTracker_NotFound() {
	s.mockTrackerRepo.EXPECT().
		GetTracker(s.ctx, &trackerRepo.GetTrackerInput{TrackerID: "missing"}).
		Return(nil, trackerRepo.ErrTrackerNotFound)

	_, err := s.service.GetTracker(s.ctx, &GetTrackerInput{TrackerID: "missing"})
	s.ErrorIs(err, ErrTrackerNotFound)
}

func (s *serviceTestSuite) TestAddPlayer() {
	tracker := s.fixtureTracker()
	s.expectGetTracker(tracker)
	s.expectUUIDs()
	s.mockClock.EXPECT().Now().Return(s.now)
	s.mockTrackerRepo.EXPECT().SaveTracker(s.ctx, gomock.Any()).Return(nil)

	out, err := s.service.AddPlayer(s.ctx, &AddPlayerInput{
		TrackerID:   "tracker-1",
		DisplayName: "Dora",
		UserID:      "user-4",
	})
	s.Require().NoError(err)
	s.Equal("Dora", out.Player.DisplayName)
	s.Equal("tracker-1", out.Player.TrackerID)
	s.Len(tracker.Players, 4)
	s.Equal(s.now, tracker.UpdatedAt)
}

func (s *serviceTestSuite) TestAddPlayer_DuplicateName() {
	s.expectGetTracker(s.fixtureTracker())

	_, err := s.service.AddPlayer(s.ctx, &AddPlayerInput{
		TrackerID:   "tracker-1",
		DisplayName: "Anna",
	})
	s.ErrorIs(err, ErrDuplicateDisplayName)
}

func (s *serviceTestSuite) TestRenamePlayer() {
	tracker := s.fixtureTracker()
	s.expectGetTracker(tracker)
	s.mockClock.EXPECT().Now().Return(s.now)
	s.mockTrackerRepo.EXPECT().SaveTracker(s.ctx, gomock.Any()).Return(nil)

	out, err := s.service.RenamePlayer(s.ctx, &RenamePlayerInput{
		TrackerID:   "tracker-1",
		PlayerID:    "p2",
		DisplayName: "Benni",
	})
	s.Require().NoError(err)
	s.Equal("Benni", out.Player.DisplayName)
	s.Equal("Benni", tracker.Players[1].DisplayName)
}

func (s *serviceTestSuite) TestRenamePlayer_KeepOwnName() {
	tracker := s.fixtureTracker()
	s.expectGetTracker(tracker)
	s.mockClock.EXPECT().Now().Return(s.now)
	s.mockTrackerRepo.EXPECT().SaveTracker(s.ctx, gomock.Any()).Return(nil)

	// Renaming to the name the player already holds is not a collision
	_, err := s.service.RenamePlayer(s.ctx, &RenamePlayerInput{
		TrackerID:   "tracker-1",
		PlayerID:    "p2",
		DisplayName: "Ben",
	})
	s.NoError(err)
}

func (s *serviceTestSuite) TestRenamePlayer_Collision() {
	s.expectGetTracker(s.fixtureTracker())

	_, err := s.service.RenamePlayer(s.ctx, &RenamePlayerInput{
		TrackerID:   "tracker-1",
		PlayerID:    "p2",
		DisplayName: "Anna",
	})
	s.ErrorIs(err, ErrDuplicateDisplayName)
}

func (s *serviceTestSuite) TestRenamePlayer_PlayerNotFound() {
	s.expectGetTracker(s.fixtureTracker())

	_, err := s.service.RenamePlayer(s.ctx, &RenamePlayerInput{
		TrackerID:   "tracker-1",
		PlayerID:    "nope",
		DisplayName: "Egon",
	})
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *serviceTestSuite) TestSetArchived() {
	tracker := s.fixtureTracker()
	s.expectGetTracker(tracker)
	s.mockClock.EXPECT().Now().Return(s.now)
	s.mockTrackerRepo.EXPECT().SaveTracker(s.ctx, gomock.Any()).Return(nil)

	out, err := s.service.SetArchived(s.ctx, &SetArchivedInput{TrackerID: "tracker-1", Archived: true})
	s.Require().NoError(err)
	s.True(out.Tracker.Archived)
}

func (s *serviceTestSuite) TestStartGame() {
	tracker := s.fixtureTracker()
	s.expectGetTracker(tracker)
	s.expectUUIDs()
	s.mockClock.EXPECT().Now().Return(s.now)

	var created *gameRepo.CreateGameInput
	s.mockGameRepo.EXPECT().
		CreateGame(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gameRepo.CreateGameInput) error {
			created = input
			return nil
		})

	out, err := s.service.StartGame(s.ctx, &StartGameInput{
		TrackerID: "tracker-1",
		PlayerIDs: []string{"p2", "p1", "p3"},
	})
	s.Require().NoError(err)
	s.Equal(created.Game, out.Game)

	s.Equal("id-1", out.Game.ID)
	s.Equal(models.GameStatusActive, out.Game.Status)
	s.Equal(models.GameTypeSchwimmen, out.Game.Type)

	// Seating order follows the request, not the roster
	s.Require().Len(out.Game.Participants, 3)
	s.Equal("Ben", out.Game.Participants[0].DisplayName)
	s.Equal("Anna", out.Game.Participants[1].DisplayName)
	s.Equal("Gast", out.Game.Participants[2].DisplayName)
	s.Empty(out.Game.Participants[2].UserID)

	// Round 0 seats every participant at full lives
	s.Equal(0, out.InitialRound.RoundNumber)
	s.Require().Len(out.InitialRound.Players, 3)
	for i, p := range out.InitialRound.Players {
		s.Equal(out.Game.Participants[i].ID, p.PlayerID)
		s.Equal(models.StartingLives, p.Lives)
	}
	s.Empty(out.InitialRound.Dealer)
	s.Empty(out.InitialRound.PlayerSwimming)
	s.Equal(out.InitialRound, created.InitialRound)
}

func (s *serviceTestSuite) TestStartGame_Archived() {
	tracker := s.fixtureTracker()
	tracker.Archived = true
	s.expectGetTracker(tracker)

	_, err := s.service.StartGame(s.ctx, &StartGameInput{
		TrackerID: "tracker-1",
		PlayerIDs: []string{"p1", "p2"},
	})
	s.ErrorIs(err, ErrTrackerArchived)
}

func (s *serviceTestSuite) TestStartGame_NotEnoughPlayers() {
	s.expectGetTracker(s.fixtureTracker())

	_, err := s.service.StartGame(s.ctx, &StartGameInput{
		TrackerID: "tracker-1",
		PlayerIDs: []string{"p1"},
	})
	s.ErrorIs(err, ErrNotEnoughPlayers)
}

func (s *serviceTestSuite) TestStartGame_UnknownPlayer() {
	s.expectGetTracker(s.fixtureTracker())
	s.expectUUIDs()
	s.mockClock.EXPECT().Now().Return(s.now)

	_, err := s.service.StartGame(s.ctx, &StartGameInput{
		TrackerID: "tracker-1",
		PlayerIDs: []string{"p1", "nope"},
	})
	s.ErrorIs(err, ErrPlayerNotFound)
}
