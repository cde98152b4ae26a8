package web

import (
	"strconv"
	"time"

	"github.com/ezBadminton/kiva/core"
	"github.com/ezBadminton/kiva/internal/model"

	"github.com/dustin/go-humanize"
)

type newTournamentView struct {
	Error        string
	Teams        string
	Locations    string
	MinGroupSize string
}

type tournamentListView struct {
	Tournaments []tournamentListItem
}

type tournamentListItem struct {
	ID       string
	NumTeams int
	Created  string
}

type groupsView struct {
	ID         string
	Groups     []groupView
	NumTeams   int
	NumMatches int
	Draws      int
	Created    string
}

type groupView struct {
	Number int
	Teams  []teamView
}

type teamView struct {
	Name      string
	Opponents []string
}

type scheduleView struct {
	ID        string
	Locations []locationView
}

type locationView struct {
	Location string
	Matches  []core.Match
}

func buildListView(tournaments []model.Tournament, now time.Time) tournamentListView {
	items := make([]tournamentListItem, 0, len(tournaments))
	for _, t := range tournaments {
		items = append(items, tournamentListItem{
			ID:       t.ID,
			NumTeams: len(t.Teams),
			Created:  humanize.RelTime(t.CreatedAt, now, "ago", "from now"),
		})
	}
	return tournamentListView{Tournaments: items}
}

func buildGroupsView(t model.Tournament, engine *core.Tournament, matches []core.Match, now time.Time) (groupsView, error) {
	groups := engine.Groups()
	groupViews := make([]groupView, 0, len(groups))
	for _, g := range groups {
		opponents, err := core.GroupOpponents(g)
		if err != nil {
			return groupsView{}, err
		}
		teams := make([]teamView, 0, len(g.Teams))
		for i, name := range g.Teams {
			teams = append(teams, teamView{Name: name, Opponents: opponents[i]})
		}
		groupViews = append(groupViews, groupView{Number: g.Number, Teams: teams})
	}

	return groupsView{
		ID:         t.ID,
		Groups:     groupViews,
		NumTeams:   len(t.Teams),
		NumMatches: len(matches),
		Draws:      t.Draws,
		Created:    humanize.RelTime(t.CreatedAt, now, "ago", "from now"),
	}, nil
}

func buildScheduleView(t model.Tournament, schedule [][]core.Match) scheduleView {
	locations := make([]locationView, 0, len(schedule))
	for _, matches := range schedule {
		locations = append(locations, locationView{
			Location: matches[0].Location,
			Matches:  matches,
		})
	}
	return scheduleView{ID: t.ID, Locations: locations}
}

func newTournamentForm(minGroupSize int) newTournamentView {
	return newTournamentView{MinGroupSize: strconv.Itoa(minGroupSize)}
}
