package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/seebach/spieltracker/internal/models"
	"github.com/seebach/spieltracker/internal/services/tracker"
)

type newPlayerRequest struct {
	DisplayName string `json:"displayName"`
	UserID      string `json:"userId,omitempty"`
}

type createTrackerRequest struct {
	Name    string             `json:"name"`
	Players []newPlayerRequest `json:"players"`
}

func (s *Server) createTracker(w http.ResponseWriter, r *http.Request) {
	creatorID, err := callerID(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	var req createTrackerRequest
	if err := s.decode(r, &req); err != nil {
		s.respondError(w, err)
		return
	}

	players := make([]tracker.NewPlayer, 0, len(req.Players))
	for _, p := range req.Players {
		players = append(players, tracker.NewPlayer{
			DisplayName: p.DisplayName,
			UserID:      p.UserID,
		})
	}

	out, err := s.trackers.CreateTracker(r.Context(), &tracker.CreateTrackerInput{
		Name:      req.Name,
		CreatorID: creatorID,
		Players:   players,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respond(w, http.StatusCreated, out.Tracker)
}

func (s *Server) getTracker(w http.ResponseWriter, r *http.Request) {
	out, err := s.trackers.GetTracker(r.Context(), &tracker.GetTrackerInput{
		TrackerID: mux.Vars(r)["trackerId"],
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respond(w, http.StatusOK, out.Tracker)
}

func (s *Server) listTrackers(w http.ResponseWriter, r *http.Request) {
	creatorID, err := callerID(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	out, err := s.trackers.ListTrackers(r.Context(), &tracker.ListTrackersInput{
		CreatorID: creatorID,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respond(w, http.StatusOK, out.Trackers)
}

type setArchivedRequest struct {
	Archived bool `json:"archived"`
}

func (s *Server) setArchived(w http.ResponseWriter, r *http.Request) {
	var req setArchivedRequest
	if err := s.decode(r, &req); err != nil {
		s.respondError(w, err)
		return
	}

	out, err := s.trackers.SetArchived(r.Context(), &tracker.SetArchivedInput{
		TrackerID: mux.Vars(r)["trackerId"],
		Archived:  req.Archived,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respond(w, http.StatusOK, out.Tracker)
}

func (s *Server) addPlayer(w http.ResponseWriter, r *http.Request) {
	var req newPlayerRequest
	if err := s.decode(r, &req); err != nil {
		s.respondError(w, err)
		return
	}

	out, err := s.trackers.AddPlayer(r.Context(), &tracker.AddPlayerInput{
		TrackerID:   mux.Vars(r)["trackerId"],
		DisplayName: req.DisplayName,
		UserID:      req.UserID,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respond(w, http.StatusCreated, out.Player)
}

type renamePlayerRequest struct {
	DisplayName string `json:"displayName"`
}

func (s *Server) renamePlayer(w http.ResponseWriter, r *http.Request) {
	var req renamePlayerRequest
	if err := s.decode(r, &req); err != nil {
		s.respondError(w, err)
		return
	}

	vars := mux.Vars(r)
	out, err := s.trackers.RenamePlayer(r.Context(), &tracker.RenamePlayerInput{
		TrackerID:   vars["trackerId"],
		PlayerID:    vars["playerId"],
		DisplayName: req.DisplayName,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respond(w, http.StatusOK, out.Player)
}

type startGameRequest struct {
	PlayerIDs []string `json:"playerIds"`
}

type startGameResponse struct {
	Game         *models.Game         `json:"game"`
	InitialRound models.RoundSnapshot `json:"initialRound"`
}

func (s *Server) startGame(w http.ResponseWriter, r *http.Request) {
	var req startGameRequest
	if err := s.decode(r, &req); err != nil {
		s.respondError(w, err)
		return
	}

	out, err := s.trackers.StartGame(r.Context(), &tracker.StartGameInput{
		TrackerID: mux.Vars(r)["trackerId"],
		PlayerIDs: req.PlayerIDs,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respond(w, http.StatusCreated, startGameResponse{
		Game:         out.Game,
		InitialRound: out.InitialRound,
	})
}
