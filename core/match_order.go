package core

import "fmt"

// Two slot indices into the team list of a group
type Pairing struct {
	A, B int
}

// The order of matches inside a group for every supported
// group size.
//
// Each inner slice is a round set which is played on one
// location. The pairings are hand picked so that no team has
// to play twice in a row within a round set.
var matchOrder = map[int][][]Pairing{
	3: {
		{{0, 1}, {0, 2}, {1, 2}},
	},
	4: {
		{{2, 3}, {0, 2}, {0, 3}},
		{{0, 1}, {1, 3}, {1, 2}},
	},
	5: {
		{{2, 3}, {0, 4}, {0, 3}, {0, 2}, {1, 3}},
		{{0, 1}, {1, 2}, {1, 4}, {3, 4}, {2, 4}},
	},
	6: {
		{{2, 3}, {0, 4}, {0, 3}, {0, 2}, {1, 3}},
		{{0, 1}, {1, 2}, {1, 4}, {3, 4}, {2, 4}},
		{{4, 5}, {3, 5}, {2, 5}, {1, 5}, {0, 5}},
	},
}

const (
	MinSupportedGroupSize = 3
	MaxSupportedGroupSize = 6
)

func init() {
	for size, roundSets := range matchOrder {
		if err := checkPairings(size, roundSets); err != nil {
			panic(fmt.Sprintf("match order of group size %d: %v", size, err))
		}
	}
}

// Returns the round sets for a group of the given size.
//
// The returned slices are copies and can be modified
// by the caller.
func RoundSets(groupSize int) ([][]Pairing, error) {
	roundSets, ok := matchOrder[groupSize]
	if !ok {
		return nil, fmt.Errorf(
			"%w: %d (supported are %d to %d)",
			ErrInvalidGroupSize,
			groupSize,
			MinSupportedGroupSize,
			MaxSupportedGroupSize,
		)
	}

	copied := make([][]Pairing, len(roundSets))
	for i, set := range roundSets {
		copied[i] = append([]Pairing(nil), set...)
	}
	return copied, nil
}
