package httpapi

import (
	"net/http"

	"github.com/seebach/spieltracker/internal/models"
	"github.com/seebach/spieltracker/internal/services/leaderboard"
)

type leaderboardEntry struct {
	Placing     int     `json:"placing"`
	UserID      string  `json:"userId"`
	DisplayName string  `json:"displayName"`
	Value       float64 `json:"value"`
	Formatted   string  `json:"formatted"`
}

type leaderboardResponse struct {
	Metric  leaderboard.Metric `json:"metric"`
	Entries []leaderboardEntry `json:"entries"`
}

func (s *Server) getLeaderboard(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	trackerType := query.Get("type")
	if trackerType == "" {
		trackerType = models.GameTypeSchwimmen
	}

	metric := leaderboard.Metric(query.Get("metric"))
	if metric == "" {
		metric = leaderboard.MetricWins
	}

	out, err := s.leaderboards.GetLeaderboard(r.Context(), &leaderboard.GetLeaderboardInput{
		TrackerType: trackerType,
		TrackerIDs:  query["trackerId"],
		Metric:      metric,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	entries := make([]leaderboardEntry, 0, len(out.Entries))
	for _, e := range out.Entries {
		entries = append(entries, leaderboardEntry{
			Placing:     e.Placing,
			UserID:      e.UserID,
			DisplayName: e.DisplayName,
			Value:       e.Value,
			Formatted:   e.Formatted,
		})
	}

	s.respond(w, http.StatusOK, leaderboardResponse{Metric: out.Metric, Entries: entries})
}
