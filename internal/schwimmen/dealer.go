package schwimmen

import (
	"github.com/seebach/spieltracker/internal/models"
)

// NextDealer returns the participant whose turn follows the reference
// player, treating the seating order as circular and skipping players
// without lives. An empty reference means no dealer has been established
// yet; the first alive player in seating order opens. Returns "" when the
// reference is unknown or nobody is alive.
func NextDealer(players []models.RoundPlayer, reference string) string {
	if len(players) == 0 {
		return ""
	}

	if reference == "" {
		for _, p := range players {
			if p.Lives > 0 {
				return p.PlayerID
			}
		}
		return ""
	}

	start := -1
	for i, p := range players {
		if p.PlayerID == reference {
			start = i
			break
		}
	}
	if start == -1 {
		return ""
	}

	// Walk forward from the reference seat, wrapping once around the
	// table at most.
	for step := 1; step <= len(players); step++ {
		p := players[(start+step)%len(players)]
		if p.Lives > 0 {
			return p.PlayerID
		}
	}

	return ""
}
