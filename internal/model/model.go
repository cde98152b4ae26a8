package model

import (
	"time"

	"github.com/ezBadminton/kiva/core"
)

// A stored tournament. The groups and matches are not
// stored but derived from the team order.
type Tournament struct {
	ID           string
	Teams        []string
	Locations    []string
	MinGroupSize int
	Draws        int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Returns the scheduling engine for the stored team order
func (t Tournament) Engine() (*core.Tournament, error) {
	return core.NewTournament(t.Teams, t.Locations, t.MinGroupSize)
}

// Returns a copy of the tournament with the team order
// drawn by the engine.
func (t Tournament) WithDraw(engine *core.Tournament, now time.Time) Tournament {
	t.Teams = engine.Teams()
	t.Draws += 1
	t.UpdatedAt = now
	return t
}
