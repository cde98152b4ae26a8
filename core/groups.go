package core

// A group is a contiguous part of the team order
// that plays a round robin on its own.
type Group struct {
	// Number of the group starting at 1
	Number int `json:"number"`
	// The teams of the group in draw order
	Teams []string `json:"teams"`
}

// Returns the number of groups for numTeams teams.
//
// The group count is doubled as long as every group
// would still have at least minGroupSize teams after
// the split. Thus the result is always a power of two.
func NumGroups(numTeams, minGroupSize int) int {
	if minGroupSize < 1 {
		minGroupSize = 1
	}

	numGroups := 1
	for numTeams >= numGroups*2*minGroupSize {
		numGroups *= 2
	}
	return numGroups
}

// Splits the teams into numGroups contiguous groups.
//
// The group sizes differ by at most one. When the teams
// are not divisible by numGroups the lower index groups
// get the remaining teams.
// The group teams are sub-slices of the given teams.
func PartitionTeams(teams []string, numGroups int) []Group {
	if numGroups < 1 {
		numGroups = 1
	}

	groups := make([]Group, 0, numGroups)
	minGroupSize := len(teams) / numGroups
	numLargerGroups := len(teams) % numGroups

	teamI := 0
	for groupI := range numGroups {
		groupSize := minGroupSize
		if groupI < numLargerGroups {
			groupSize += 1
		}

		group := Group{
			Number: groupI + 1,
			Teams:  teams[teamI : teamI+groupSize : teamI+groupSize],
		}
		groups = append(groups, group)

		teamI += groupSize
	}

	return groups
}
