// Package schwimmen implements the Schwimmen round transition rules as
// pure functions over round snapshots. Nothing in here touches storage;
// callers decide what to do with the snapshots it produces.
package schwimmen

import (
	"github.com/seebach/spieltracker/internal/models"
)

// InitialRound builds round 0 for the given seating order: every player
// at full lives, no swimmer, no dealer.
func InitialRound(playerIDs []string) models.RoundSnapshot {
	players := make([]models.RoundPlayer, 0, len(playerIDs))
	for _, id := range playerIDs {
		players = append(players, models.RoundPlayer{
			PlayerID: id,
			Lives:    models.StartingLives,
		})
	}
	return models.RoundSnapshot{
		RoundNumber: 0,
		Players:     players,
	}
}

// ApplySubtract takes one life from the target player and returns the
// next round snapshot. The grace rule fires when the target stands at
// exactly one life and the swim slot is free: the life is kept and the
// target becomes the swimmer instead. A target whose lives are already
// gone produces no round at all (ok=false).
func ApplySubtract(current models.RoundSnapshot, targetID string) (models.RoundSnapshot, bool) {
	idx := seatIndex(current.Players, targetID)
	if idx < 0 || current.Players[idx].Lives <= 0 {
		return models.RoundSnapshot{}, false
	}

	next := current.Clone()
	next.RoundNumber = current.RoundNumber + 1
	next.NukeBy = ""

	target := &next.Players[idx]
	if target.Lives > 1 || current.PlayerSwimming != "" {
		// The swim slot being occupied covers the target themselves:
		// a swimmer hit again loses the life like anyone else.
		target.Lives--
		if target.Lives == 0 && next.PlayerSwimming == target.PlayerID {
			next.PlayerSwimming = ""
		}
	} else {
		next.PlayerSwimming = target.PlayerID
	}

	next.Dealer = NextDealer(next.Players, current.Dealer)
	return next, true
}

// NukeConflicts lists every player other than the detonator standing at
// exactly one life, but only while the swim slot is free. Two or more
// entries mean the nuke would eliminate them simultaneously and a single
// survivor must be chosen before the detonation can proceed; exactly one
// entry is the automatic survivor.
func NukeConflicts(current models.RoundSnapshot, detonatorID string) []string {
	if current.PlayerSwimming != "" {
		return nil
	}
	var ids []string
	for _, p := range current.Players {
		if p.PlayerID != detonatorID && p.Lives == 1 {
			ids = append(ids, p.PlayerID)
		}
	}
	return ids
}

// ApplyNuke takes one life from every living player except the detonator
// and returns the next round snapshot. When the swim slot is free the
// survivor keeps their life and becomes the swimmer instead; an already
// swimming player gets no such protection. Callers are expected to have
// resolved NukeConflicts into a survivor first. A detonator without lives
// produces no round (ok=false).
func ApplyNuke(current models.RoundSnapshot, detonatorID, survivorID string) (models.RoundSnapshot, bool) {
	idx := seatIndex(current.Players, detonatorID)
	if idx < 0 || current.Players[idx].Lives <= 0 {
		return models.RoundSnapshot{}, false
	}

	next := current.Clone()
	next.RoundNumber = current.RoundNumber + 1
	next.NukeBy = detonatorID

	slotFree := current.PlayerSwimming == ""
	for i := range next.Players {
		p := &next.Players[i]
		if p.PlayerID == detonatorID || p.Lives <= 0 {
			continue
		}
		if slotFree && p.PlayerID == survivorID {
			next.PlayerSwimming = p.PlayerID
			continue
		}
		p.Lives--
	}

	if next.PlayerSwimming != "" && next.Lives(next.PlayerSwimming) == 0 {
		next.PlayerSwimming = ""
	}

	next.Dealer = NextDealer(next.Players, current.Dealer)
	return next, true
}

// Winner returns the last player standing, valid only when exactly one
// player still has lives.
func Winner(round models.RoundSnapshot) (string, bool) {
	winner := ""
	alive := 0
	for _, p := range round.Players {
		if p.Lives > 0 {
			alive++
			winner = p.PlayerID
		}
	}
	if alive == 1 {
		return winner, true
	}
	return "", false
}

func seatIndex(players []models.RoundPlayer, id string) int {
	for i, p := range players {
		if p.PlayerID == id {
			return i
		}
	}
	return -1
}
