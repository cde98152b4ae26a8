// Package roster reads and validates the team and location
// lists that are handed to the scheduling engine.
package roster

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/go-andiamo/splitter"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

var (
	ErrInvalidRosterSize = errors.New("not enough teams for a round robin")
	ErrEmptyName         = errors.New("name is empty")
)

// MinTeams is the smallest roster that can play a round robin
const MinTeams = 3

// Reads one name per line from the file at path.
// Blank lines are dropped.
func ReadNames(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseLines(string(content)), nil
}

// Splits text into names, one per line. Surrounding whitespace
// is trimmed and blank lines are dropped.
func ParseLines(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	return Clean(lines)
}

// Splits a space separated list of names. Names that contain
// spaces have to be quoted, e.g. `"FaZe Clan" NaVi`.
func ParseInline(text string) ([]string, error) {
	spaceSplitter, err := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	if err != nil {
		return nil, err
	}
	parts, err := spaceSplitter.Split(text)
	if err != nil {
		return nil, fmt.Errorf("split team list: %w", err)
	}
	for i, p := range parts {
		parts[i] = strings.Trim(strings.TrimSpace(p), "\"“”")
	}
	return Clean(parts), nil
}

// Returns the names with surrounding whitespace removed and
// blank names dropped.
func Clean(names []string) []string {
	cleaned := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		cleaned = append(cleaned, n)
	}
	return cleaned
}

// Checks that no name is blank and that there are at least
// minTeams names.
func Validate(names []string, minTeams int) error {
	for i, n := range names {
		if strings.TrimSpace(n) == "" {
			return fmt.Errorf("team %d: %w", i+1, ErrEmptyName)
		}
	}
	if len(names) < minTeams {
		return fmt.Errorf("%w: got %d, need at least %d", ErrInvalidRosterSize, len(names), minTeams)
	}
	return nil
}

// Two names of a roster that are likely the same team
type SimilarPair struct {
	A, B     string
	Distance int
}

// Names shorter than this are only reported when they are equal
const minSimilarLength = 4

// Returns the pairs of names that differ by at most maxDistance
// edits, ignoring case. Exact duplicates have a distance of 0.
func SimilarNames(names []string, maxDistance int) []SimilarPair {
	pairs := make([]SimilarPair, 0)
	for i := range names {
		for j := i + 1; j < len(names); j++ {
			a := strings.ToLower(names[i])
			b := strings.ToLower(names[j])
			distance := fuzzy.LevenshteinDistance(a, b)
			short := min(utf8.RuneCountInString(a), utf8.RuneCountInString(b)) < minSimilarLength
			if distance == 0 || (!short && distance <= maxDistance) {
				pairs = append(pairs, SimilarPair{A: names[i], B: names[j], Distance: distance})
			}
		}
	}
	return pairs
}
