package leaderboard

import (
	"context"
	"sort"

	"github.com/seebach/spieltracker/internal/logger"
	"github.com/seebach/spieltracker/internal/models"
	gameRepo "github.com/seebach/spieltracker/internal/repositories/game"
)

// service implements the Service interface
type service struct {
	gameRepo gameRepo.Repository
	logger   logger.Logger
}

// New creates a new leaderboard service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	log := cfg.Logger
	if log == nil {
		log = logger.New("leaderboard-service")
	}

	return &service{
		gameRepo: cfg.GameRepo,
		logger:   log,
	}, nil
}

// GetLeaderboard replays the completed games of a tracker type and
// returns the ranked standings for one metric
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	def, ok := metricTable[input.Metric]
	if !ok {
		return nil, ErrUnknownMetric
	}

	out, err := s.gameRepo.ListCompletedGames(ctx, &gameRepo.ListCompletedGamesInput{
		TrackerType: input.TrackerType,
		TrackerIDs:  input.TrackerIDs,
	})
	if err != nil {
		return nil, err
	}

	totals := s.replay(input.TrackerType, out.Games)

	entries := make([]*Entry, 0, len(totals))
	for userID, t := range totals {
		entries = append(entries, &Entry{
			UserID:      userID,
			DisplayName: t.DisplayName,
			Value:       def.value(t),
			Formatted:   def.format(def.value(t)),
		})
	}

	rank(entries)

	return &GetLeaderboardOutput{
		Metric:  input.Metric,
		Entries: entries,
	}, nil
}

// replay walks every completed game once and accumulates per-user
// counters. Guests have no linked account and are excluded; games whose
// summary carries a different game type are skipped without failing the
// whole computation.
func (s *service) replay(trackerType string, games []*gameRepo.CompletedGame) map[string]*userTotals {
	totals := make(map[string]*userTotals)

	for _, cg := range games {
		game := cg.Game
		if game.GameData == nil || game.GameData.Type != trackerType {
			s.logger.Debug("skipping game with foreign or missing summary", "gameId", game.ID)
			continue
		}
		if len(cg.Rounds) == 0 {
			s.logger.Debug("skipping game without rounds", "gameId", game.ID)
			continue
		}

		userOf := make(map[string]string, len(game.Participants))
		final := cg.Rounds[len(cg.Rounds)-1]

		for _, p := range game.Participants {
			if p.UserID == "" {
				continue
			}
			userOf[p.ID] = p.UserID

			t := totals[p.UserID]
			if t == nil {
				t = &userTotals{}
				totals[p.UserID] = t
			}
			t.DisplayName = p.DisplayName
			t.Appearances++

			if game.GameData.Winner == p.ID {
				t.Wins++
				if final.PlayerSwimming == p.ID {
					t.Unbreakable++
				}
				if final.Lives(p.ID) == models.StartingLives {
					t.Untouchable++
				}
			}
		}

		previousSwimmer := ""
		for _, round := range cg.Rounds {
			if round.NukeBy != "" {
				if userID, ok := userOf[round.NukeBy]; ok {
					totals[userID].Nukes++
				}
			}
			if round.PlayerSwimming != "" && round.PlayerSwimming != previousSwimmer {
				if userID, ok := userOf[round.PlayerSwimming]; ok {
					totals[userID].Swims++
				}
			}
			previousSwimmer = round.PlayerSwimming
		}
	}

	return totals
}

// rank sorts entries by descending value and assigns standard
// competition placings: tied values share a placing and the sequence
// resumes after the tied block ([5,5,3] places as 1,1,3).
func rank(entries []*Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].DisplayName < entries[j].DisplayName
	})

	for i, e := range entries {
		if i > 0 && e.Value == entries[i-1].Value {
			e.Placing = entries[i-1].Placing
			continue
		}
		e.Placing = i + 1
	}
}
