package core

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrInvalidMinGroupSize = errors.New("the minimum group size is less than one")
)

const DefaultMinGroupSize = 3

// A Tournament holds a roster of teams and the locations
// that they play on. The groups, matches and the schedule
// are derived from the current team order on every call.
//
// A Tournament is not safe for concurrent use. Callers that
// share one between goroutines have to guard Draw against
// the readers themselves.
type Tournament struct {
	teams        []string
	locations    []string
	minGroupSize int
}

// Creates a new tournament.
//
// The teams and locations are copied. When no locations
// are given, the locations "Field 1" to "Field N" are used
// where N is the number of teams.
func NewTournament(teams, locations []string, minGroupSize int) (*Tournament, error) {
	if minGroupSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMinGroupSize, minGroupSize)
	}

	if len(locations) == 0 {
		locations = DefaultLocations(len(teams))
	}

	tournament := &Tournament{
		teams:        slices.Clone(teams),
		locations:    slices.Clone(locations),
		minGroupSize: minGroupSize,
	}
	return tournament, nil
}

// Returns the locations "Field 1" to "Field n"
func DefaultLocations(n int) []string {
	locations := make([]string, 0, n)
	for i := range n {
		locations = append(locations, fmt.Sprintf("Field %d", i+1))
	}
	return locations
}

// Puts the teams into a random order
func (t *Tournament) Draw() {
	Shuffle(t.teams)
}

// Puts the teams into a random order that is
// determined by the seed
func (t *Tournament) DrawSeeded(seed int64) {
	SeededShuffle(t.teams, seed)
}

func (t *Tournament) NumGroups() int {
	return NumGroups(len(t.teams), t.minGroupSize)
}

// Returns the groups in the current team order
func (t *Tournament) Groups() []Group {
	return PartitionTeams(t.Teams(), t.NumGroups())
}

// Returns the matches of all groups ordered by group,
// then round set and then round.
func (t *Tournament) Matches() ([]Match, error) {
	return GenerateMatches(t.Groups(), t.locations)
}

// Returns the matches grouped by their location
func (t *Tournament) Schedule() ([][]Match, error) {
	matches, err := t.Matches()
	if err != nil {
		return nil, err
	}
	return ScheduleByLocation(matches, t.locations), nil
}

// Returns a copy of the current team order
func (t *Tournament) Teams() []string {
	return slices.Clone(t.teams)
}

func (t *Tournament) Locations() []string {
	return slices.Clone(t.locations)
}

func (t *Tournament) MinGroupSize() int {
	return t.minGroupSize
}
