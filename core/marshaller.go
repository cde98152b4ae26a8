package core

import (
	"encoding/json"
	"maps"
)

func marshalGroups(groups []Group) []map[string]any {
	result := make([]map[string]any, len(groups))
	for i, g := range groups {
		result[i] = map[string]any{
			"number": g.Number,
			"teams":  g.Teams,
		}
	}
	return result
}

func marshalMatches(matches []Match) []map[string]any {
	result := make([]map[string]any, len(matches))
	for i, m := range matches {
		result[i] = marshalMatch(m)
	}
	return result
}

func marshalMatch(match Match) map[string]any {
	result := map[string]any{
		"team_a":   match.TeamA,
		"team_b":   match.TeamB,
		"round":    match.Round,
		"location": match.Location,
		"group":    match.Group,
	}
	return result
}

func marshalSchedule(schedule [][]Match) []map[string]any {
	result := make([]map[string]any, len(schedule))
	for i, locationMatches := range schedule {
		result[i] = map[string]any{
			"location": locationMatches[0].Location,
			"matches":  marshalMatches(locationMatches),
		}
	}
	return result
}

// Returns the derived views of the tournament as a map that
// can be encoded to JSON.
//
// Errors when the matches can not be generated.
func MarshalTournament(t *Tournament) (map[string]any, error) {
	matches, err := t.Matches()
	if err != nil {
		return nil, err
	}
	schedule := ScheduleByLocation(matches, t.locations)

	result := map[string]any{
		"teams":          t.Teams(),
		"locations":      t.Locations(),
		"min_group_size": t.minGroupSize,
	}

	maps.Copy(result, map[string]any{
		"groups":   marshalGroups(t.Groups()),
		"matches":  marshalMatches(matches),
		"schedule": marshalSchedule(schedule),
	})

	return result, nil
}

func (t *Tournament) MarshalJSON() ([]byte, error) {
	anymap, err := MarshalTournament(t)
	if err != nil {
		return nil, err
	}
	return json.Marshal(anymap)
}
