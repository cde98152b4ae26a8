package core

import (
	"reflect"
	"slices"
	"testing"
)

func teamSlice(num int) []string {
	names := "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	teams := make([]string, 0, num)
	for i := range num {
		teams = append(teams, string(names[i%len(names)]))
	}
	return teams
}

func TestNumGroups(t *testing.T) {
	cases := []struct{ numTeams, minGroupSize, want int }{
		{0, 3, 1},
		{3, 3, 1},
		{5, 3, 1},
		{6, 3, 2},
		{7, 3, 2},
		{11, 3, 2},
		{12, 3, 4},
		{23, 3, 4},
		{24, 3, 8},
		{15, 4, 2},
		{7, 4, 1},
		{16, 4, 2},
		{2, 3, 1},
	}

	for _, c := range cases {
		got := NumGroups(c.numTeams, c.minGroupSize)
		if got != c.want {
			t.Fatalf("NumGroups(%d, %d) = %d, want %d", c.numTeams, c.minGroupSize, got, c.want)
		}
	}
}

func TestNumGroupsPowerOfTwo(t *testing.T) {
	for minGroupSize := 1; minGroupSize <= 6; minGroupSize++ {
		for n := range 100 {
			g := NumGroups(n, minGroupSize)
			if g&(g-1) != 0 {
				t.Fatalf("group count %d for %d teams is not a power of two", g, n)
			}
			if n < g*minGroupSize && g != 1 {
				t.Fatalf("groups of %d teams would be smaller than %d", n/g, minGroupSize)
			}
			if n >= g*2*minGroupSize {
				t.Fatalf("%d teams would allow more than %d groups", n, g)
			}
		}
	}
}

func TestPartitionRoundTrip(t *testing.T) {
	for minGroupSize := 1; minGroupSize <= 6; minGroupSize++ {
		for n := range 60 {
			teams := teamSlice(n)
			groups := PartitionTeams(teams, NumGroups(n, minGroupSize))

			joined := make([]string, 0, n)
			sizes := make([]int, 0, len(groups))
			for i, g := range groups {
				if g.Number != i+1 {
					t.Fatalf("group %d has number %d", i, g.Number)
				}
				joined = append(joined, g.Teams...)
				sizes = append(sizes, len(g.Teams))
			}

			if !slices.Equal(joined, teams) {
				t.Fatalf("concatenated groups did not reproduce the %d teams", n)
			}
			if slices.Max(sizes)-slices.Min(sizes) > 1 {
				t.Fatalf("group sizes %v are not balanced", sizes)
			}
		}
	}
}

func TestPartitionLargerGroupsFirst(t *testing.T) {
	teams := teamSlice(7)
	groups := PartitionTeams(teams, NumGroups(len(teams), 3))

	want := []Group{
		{Number: 1, Teams: []string{"A", "B", "C", "D"}},
		{Number: 2, Teams: []string{"E", "F", "G"}},
	}
	if !reflect.DeepEqual(groups, want) {
		t.Fatalf("7 teams were grouped as %v", groups)
	}

	groups = PartitionTeams(teamSlice(14), 4)
	sizes := []int{}
	for _, g := range groups {
		sizes = append(sizes, len(g.Teams))
	}
	if !reflect.DeepEqual(sizes, []int{4, 4, 3, 3}) {
		t.Fatalf("the remaining teams did not go into the lower index groups: %v", sizes)
	}
}

func TestPartitionDoesNotAlias(t *testing.T) {
	teams := teamSlice(6)
	groups := PartitionTeams(teams, 2)

	groups[0].Teams = append(groups[0].Teams, "X")
	if teams[3] != "D" {
		t.Fatal("appending to a group overwrote the next group's team")
	}
}
