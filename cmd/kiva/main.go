// Command kiva prints a round robin schedule for a list of teams.
//
// Usage:
//
//	kiva [-locations file] [-draw] [-seed n] [-min-group-size n] [-json] teams.txt
//	kiva -teams '"FaZe Clan" NaVi G2 Vitality'
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ezBadminton/kiva/core"
	"github.com/ezBadminton/kiva/internal/roster"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	flags := flag.NewFlagSet("kiva", flag.ContinueOnError)
	flags.SetOutput(stderr)
	locationsPath := flags.String("locations", "", "Text file that contains the locations of the matches")
	inlineTeams := flags.String("teams", "", "Space separated team list, quote names that contain spaces")
	draw := flags.Bool("draw", false, "Put the teams into a random order")
	seed := flags.Int64("seed", 0, "Seed for a reproducible draw (0 draws randomly)")
	minGroupSize := flags.Int("min-group-size", core.DefaultMinGroupSize, "Minimum number of teams in a group")
	asJSON := flags.Bool("json", false, "Print the tournament as JSON")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	teamsPath := flags.Arg(0)
	teams, err := readTeams(teamsPath, *inlineTeams)
	if err != nil {
		logger.Error("could not read teams", "error", err)
		return 1
	}
	if err := roster.Validate(teams, max(roster.MinTeams, *minGroupSize)); err != nil {
		logger.Error("invalid roster", "error", err)
		return 1
	}
	for _, pair := range roster.SimilarNames(teams, 1) {
		logger.Warn("similar team names", "a", pair.A, "b", pair.B)
	}

	var locations []string
	if *locationsPath != "" {
		locations, err = roster.ReadNames(*locationsPath)
		if err != nil {
			logger.Error("could not read locations", "error", err)
			return 1
		}
	}

	tournament, err := core.NewTournament(teams, locations, *minGroupSize)
	if err != nil {
		logger.Error("could not create tournament", "error", err)
		return 1
	}

	if *draw {
		if *seed != 0 {
			tournament.DrawSeeded(*seed)
		} else {
			tournament.Draw()
		}
		if teamsPath != "" {
			path, err := roster.SaveDraw(teamsPath, tournament.Teams())
			if err != nil {
				logger.Error("could not save draw", "error", err)
				return 1
			}
			fmt.Fprintf(stdout, "Teams saved to %s\n", path)
		}
	}

	if *asJSON {
		err = printJSON(stdout, tournament)
	} else {
		err = printSchedule(stdout, tournament)
	}
	if err != nil {
		logger.Error("could not create schedule", "error", err)
		return 1
	}
	return 0
}

func readTeams(path, inline string) ([]string, error) {
	if path != "" && inline != "" {
		return nil, errors.New("pass either a teams file or -teams, not both")
	}
	if inline != "" {
		return roster.ParseInline(inline)
	}
	if path == "" {
		return nil, errors.New("no teams given")
	}
	return roster.ReadNames(path)
}

// Prints the groups followed by the matches. A header is
// printed before the first round of every round set.
func printSchedule(w io.Writer, tournament *core.Tournament) error {
	matches, err := tournament.Matches()
	if err != nil {
		return err
	}

	for _, g := range tournament.Groups() {
		fmt.Fprintf(w, "\nGROUP %d\n", g.Number)
		for _, team := range g.Teams {
			fmt.Fprintln(w, team)
		}
	}

	for _, m := range matches {
		if m.Round == 1 {
			fmt.Fprintf(w, "\nGROUP %d, %s\n", m.Group, m.Location)
		}
		fmt.Fprintln(w, m.String())
	}
	return nil
}

func printJSON(w io.Writer, tournament *core.Tournament) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tournament)
}
