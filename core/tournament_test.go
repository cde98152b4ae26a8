package core

import (
	"encoding/json"
	"errors"
	"reflect"
	"slices"
	"testing"
)

func TestNewTournament(t *testing.T) {
	_, err := NewTournament(teamSlice(3), nil, 0)
	if !errors.Is(err, ErrInvalidMinGroupSize) {
		t.Fatal("min group size zero did not error")
	}

	teams := teamSlice(5)
	tournament, err := NewTournament(teams, []string{}, DefaultMinGroupSize)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Field 1", "Field 2", "Field 3", "Field 4", "Field 5"}
	if !reflect.DeepEqual(tournament.Locations(), want) {
		t.Fatalf("empty locations were not replaced by the default fields: %v", tournament.Locations())
	}

	tournament.DrawSeeded(7)
	if !reflect.DeepEqual(teams, teamSlice(5)) {
		t.Fatal("drawing changed the caller's team slice")
	}

	leaked := tournament.Teams()
	leaked[0] = "X"
	if slices.Contains(tournament.Teams(), "X") {
		t.Fatal("the returned teams are not a copy")
	}
}

func TestDeterministicViews(t *testing.T) {
	tournament, _ := NewTournament(teamSlice(13), nil, DefaultMinGroupSize)

	m1, err1 := tournament.Matches()
	m2, err2 := tournament.Matches()
	if err1 != nil || err2 != nil {
		t.Fatal("matches errored")
	}
	if !reflect.DeepEqual(m1, m2) {
		t.Fatal("matches changed without a draw")
	}

	s1, _ := tournament.Schedule()
	s2, _ := tournament.Schedule()
	if !reflect.DeepEqual(s1, s2) {
		t.Fatal("schedule changed without a draw")
	}

	if !reflect.DeepEqual(tournament.Groups(), tournament.Groups()) {
		t.Fatal("groups changed without a draw")
	}
}

func TestDrawKeepsTeams(t *testing.T) {
	original := teamSlice(12)
	original[5] = "A"

	changed := 0
	for seed := range 30 {
		tournament, _ := NewTournament(original, nil, DefaultMinGroupSize)
		tournament.DrawSeeded(int64(seed))
		drawn := tournament.Teams()

		if !sameMultiset(drawn, original) {
			t.Fatal("the draw changed the set of teams")
		}
		if !slices.Equal(drawn, original) {
			changed += 1
		}
	}
	if changed == 0 {
		t.Fatal("the draw never changed the team order")
	}

	a, _ := NewTournament(original, nil, DefaultMinGroupSize)
	b, _ := NewTournament(original, nil, DefaultMinGroupSize)
	a.DrawSeeded(42)
	b.DrawSeeded(42)
	if !slices.Equal(a.Teams(), b.Teams()) {
		t.Fatal("the same seed did not produce the same draw")
	}

	c, _ := NewTournament(original, nil, DefaultMinGroupSize)
	c.Draw()
	if !sameMultiset(c.Teams(), original) {
		t.Fatal("the unseeded draw changed the set of teams")
	}
}

func TestDrawChangesGroups(t *testing.T) {
	tournament, _ := NewTournament(teamSlice(12), nil, DefaultMinGroupSize)
	before := tournament.Groups()

	for seed := range 10 {
		tournament.DrawSeeded(int64(seed))
		if !reflect.DeepEqual(before, tournament.Groups()) {
			return
		}
	}
	t.Fatal("the groups were not recomputed after the draw")
}

func TestMarshalTournament(t *testing.T) {
	tournament, _ := NewTournament([]string{"A", "B", "C"}, []string{"Court 1", "Court 2"}, 3)

	data, err := json.Marshal(tournament)
	if err != nil {
		t.Fatal(err)
	}

	var decoded struct {
		Groups   []Group `json:"groups"`
		Matches  []Match `json:"matches"`
		Schedule []struct {
			Location string  `json:"location"`
			Matches  []Match `json:"matches"`
		} `json:"schedule"`
		MinGroupSize int `json:"min_group_size"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}

	if len(decoded.Groups) != 1 || len(decoded.Matches) != 3 {
		t.Fatalf("unexpected marshalled tournament %s", data)
	}
	if len(decoded.Schedule) != 1 || decoded.Schedule[0].Location != "Court 1" {
		t.Fatalf("the unused location was not skipped: %s", data)
	}
	if decoded.MinGroupSize != 3 {
		t.Fatal("min group size was not marshalled")
	}

	invalid, _ := NewTournament(teamSlice(2), nil, 3)
	if _, err := json.Marshal(invalid); !errors.Is(err, ErrInvalidGroupSize) {
		t.Fatal("marshalling an invalid tournament did not error")
	}
}

func sameMultiset(a, b []string) bool {
	a = slices.Clone(a)
	b = slices.Clone(b)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}
