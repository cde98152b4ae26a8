package core

// Partitions the matches by their location.
//
// The locations are visited in the given order and locations
// without matches are skipped. The matches of a location keep
// the order in which they were generated.
func ScheduleByLocation(matches []Match, locations []string) [][]Match {
	schedule := make([][]Match, 0, len(locations))
	for _, location := range locations {
		locationMatches := make([]Match, 0, 5)
		for _, m := range matches {
			if m.Location == location {
				locationMatches = append(locationMatches, m)
			}
		}
		if len(locationMatches) == 0 {
			continue
		}
		schedule = append(schedule, locationMatches)
	}
	return schedule
}
