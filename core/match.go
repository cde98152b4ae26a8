package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidGroupSize  = errors.New("no match order for this group size")
	ErrLocationExhausted = errors.New("not enough locations for all round sets")
)

// A match between two teams of the same group.
//
// Matches are derived from the team order of a Tournament
// and are never stored by it.
type Match struct {
	// The first named team
	TeamA string `json:"team_a"`
	// The second named team
	TeamB string `json:"team_b"`

	// Position of the match inside its round set
	// starting at 1
	Round int `json:"round"`

	// The location where the round set of this
	// match is played
	Location string `json:"location"`

	// Number of the group starting at 1
	Group int `json:"group"`
}

func (m Match) String() string {
	return fmt.Sprintf("%d: %s - %s", m.Round, m.TeamA, m.TeamB)
}

// Creates the matches of all groups.
//
// The groups are processed in the given order. Every round set
// of a group takes the next unused location so the locations
// are consumed by one running cursor across all groups.
func GenerateMatches(groups []Group, locations []string) ([]Match, error) {
	matches := make([]Match, 0, numMatches(groups))
	locationI := 0

	for _, g := range groups {
		roundSets, err := RoundSets(len(g.Teams))
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", g.Number, err)
		}

		for _, roundSet := range roundSets {
			if locationI >= len(locations) {
				return nil, fmt.Errorf(
					"%w: group %d needs location %d of %d",
					ErrLocationExhausted,
					g.Number,
					locationI+1,
					len(locations),
				)
			}
			location := locations[locationI]
			locationI += 1

			for pairI, pairing := range roundSet {
				match := Match{
					TeamA:    g.Teams[pairing.A],
					TeamB:    g.Teams[pairing.B],
					Round:    pairI + 1,
					Location: location,
					Group:    g.Number,
				}
				matches = append(matches, match)
			}
		}
	}

	return matches, nil
}

func numMatches(groups []Group) int {
	n := 0
	for _, g := range groups {
		size := len(g.Teams)
		n += size * (size - 1) / 2
	}
	return n
}
