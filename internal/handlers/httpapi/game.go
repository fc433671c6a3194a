package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/seebach/spieltracker/internal/models"
	"github.com/seebach/spieltracker/internal/services/session"
)

type gameStateResponse struct {
	Game   *models.Game           `json:"game"`
	Rounds []models.RoundSnapshot `json:"rounds"`
	Cursor int                    `json:"cursor"`
	Mode   session.ActionMode     `json:"mode"`
}

func (s *Server) getGame(w http.ResponseWriter, r *http.Request) {
	out, err := s.sessions.Open(r.Context(), &session.OpenInput{
		GameID: mux.Vars(r)["gameId"],
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respond(w, http.StatusOK, gameStateResponse{
		Game:   out.Game,
		Rounds: out.Rounds,
		Cursor: out.Cursor,
		Mode:   out.Mode,
	})
}

type setModeRequest struct {
	Mode session.ActionMode `json:"mode"`
}

type setModeResponse struct {
	Mode session.ActionMode `json:"mode"`
}

func (s *Server) setMode(w http.ResponseWriter, r *http.Request) {
	var req setModeRequest
	if err := s.decode(r, &req); err != nil {
		s.respondError(w, err)
		return
	}

	out, err := s.sessions.SetMode(r.Context(), &session.SetModeInput{
		GameID: mux.Vars(r)["gameId"],
		Mode:   req.Mode,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respond(w, http.StatusOK, setModeResponse{Mode: out.Mode})
}

// actionResponse is the shared shape for committed actions and cursor
// moves. Round is the snapshot at the cursor after the call.
type actionResponse struct {
	NoOp          bool                  `json:"noOp,omitempty"`
	Round         *models.RoundSnapshot `json:"round,omitempty"`
	Cursor        int                   `json:"cursor"`
	GameCompleted bool                  `json:"gameCompleted,omitempty"`
	GameData      *models.GameData      `json:"gameData,omitempty"`
}

type subtractLifeRequest struct {
	TargetID string `json:"targetId"`
}

func (s *Server) subtractLife(w http.ResponseWriter, r *http.Request) {
	var req subtractLifeRequest
	if err := s.decode(r, &req); err != nil {
		s.respondError(w, err)
		return
	}

	out, err := s.sessions.SubtractLife(r.Context(), &session.SubtractLifeInput{
		GameID:   mux.Vars(r)["gameId"],
		TargetID: req.TargetID,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respond(w, http.StatusOK, actionResponse{
		NoOp:          out.NoOp,
		Round:         out.Round,
		Cursor:        out.Cursor,
		GameCompleted: out.GameCompleted,
		GameData:      out.GameData,
	})
}

type detonateNukeRequest struct {
	DetonatorID string `json:"detonatorId"`
	SurvivorID  string `json:"survivorId,omitempty"`
}

type nukeConflictResponse struct {
	ConflictPlayers []string `json:"conflictPlayers"`
}

func (s *Server) detonateNuke(w http.ResponseWriter, r *http.Request) {
	var req detonateNukeRequest
	if err := s.decode(r, &req); err != nil {
		s.respondError(w, err)
		return
	}

	out, err := s.sessions.DetonateNuke(r.Context(), &session.DetonateNukeInput{
		GameID:      mux.Vars(r)["gameId"],
		DetonatorID: req.DetonatorID,
		SurvivorID:  req.SurvivorID,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	// A suspended nuke needs a survivor choice before anything commits
	if len(out.ConflictPlayers) > 0 {
		s.respond(w, http.StatusConflict, nukeConflictResponse{ConflictPlayers: out.ConflictPlayers})
		return
	}

	s.respond(w, http.StatusOK, actionResponse{
		NoOp:          out.NoOp,
		Round:         out.Round,
		Cursor:        out.Cursor,
		GameCompleted: out.GameCompleted,
		GameData:      out.GameData,
	})
}

func (s *Server) undo(w http.ResponseWriter, r *http.Request) {
	out, err := s.sessions.Undo(r.Context(), &session.UndoInput{
		GameID: mux.Vars(r)["gameId"],
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	round := out.Round
	s.respond(w, http.StatusOK, actionResponse{Round: &round, Cursor: out.Cursor})
}

func (s *Server) redo(w http.ResponseWriter, r *http.Request) {
	out, err := s.sessions.Redo(r.Context(), &session.RedoInput{
		GameID: mux.Vars(r)["gameId"],
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	round := out.Round
	s.respond(w, http.StatusOK, actionResponse{Round: &round, Cursor: out.Cursor})
}

type resetResponse struct {
	Deleted int `json:"deleted"`
}

func (s *Server) reset(w http.ResponseWriter, r *http.Request) {
	out, err := s.sessions.Reset(r.Context(), &session.ResetInput{
		GameID: mux.Vars(r)["gameId"],
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respond(w, http.StatusOK, resetResponse{Deleted: out.Deleted})
}

func (s *Server) cancel(w http.ResponseWriter, r *http.Request) {
	out, err := s.sessions.Cancel(r.Context(), &session.CancelInput{
		GameID: mux.Vars(r)["gameId"],
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respond(w, http.StatusOK, out.Game)
}
