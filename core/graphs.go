// This file contains a thin wrapper around the graph module
// for the pairings that the teams of a group play.
package core

import (
	"errors"
	"fmt"

	"github.com/dominikbraun/graph"
)

var (
	ErrDuplicatePairing  = errors.New("a pairing is played more than once")
	ErrIncompletePairing = errors.New("not every pairing of the group is played")
)

// A PairingGraph has the slots of a group as its nodes.
// Every played match adds an undirected edge between
// its two slots.
//
// A group plays a complete round robin when the graph is
// complete and no edge was added twice.
type PairingGraph struct {
	graph.Graph[int, int]
	size  int
	edges int
}

func NewPairingGraph(groupSize int) (*PairingGraph, error) {
	g := graph.New(graph.IntHash)
	for slot := range groupSize {
		if err := g.AddVertex(slot); err != nil {
			return nil, fmt.Errorf("add slot %d: %w", slot, err)
		}
	}
	return &PairingGraph{Graph: g, size: groupSize}, nil
}

func (g *PairingGraph) AddPairing(p Pairing) error {
	if p.A == p.B {
		return fmt.Errorf("%w: slot %d against itself", ErrDuplicatePairing, p.A)
	}

	err := g.AddEdge(p.A, p.B)
	if errors.Is(err, graph.ErrEdgeAlreadyExists) {
		return fmt.Errorf("%w: slots %d and %d", ErrDuplicatePairing, p.A, p.B)
	}
	if err != nil {
		return fmt.Errorf("%w: slots %d and %d: %v", ErrIncompletePairing, p.A, p.B, err)
	}

	g.edges += 1
	return nil
}

// Returns true when every slot has met every other slot
func (g *PairingGraph) Complete() bool {
	return g.edges == g.size*(g.size-1)/2
}

// Returns the slots that the given slot is paired with
// in ascending order
func (g *PairingGraph) Opponents(slot int) []int {
	adjacencyMap, err := g.AdjacencyMap()
	if err != nil {
		return nil
	}
	opponents := make([]int, 0, len(adjacencyMap[slot]))
	for s := range g.size {
		if _, ok := adjacencyMap[slot][s]; ok {
			opponents = append(opponents, s)
		}
	}
	return opponents
}

// Builds the pairing graph of a group size from its
// round sets.
func newRoundSetGraph(groupSize int, roundSets [][]Pairing) (*PairingGraph, error) {
	g, err := NewPairingGraph(groupSize)
	if err != nil {
		return nil, err
	}
	for _, roundSet := range roundSets {
		for _, p := range roundSet {
			if err := g.AddPairing(p); err != nil {
				return nil, err
			}
		}
	}
	if !g.Complete() {
		return nil, ErrIncompletePairing
	}
	return g, nil
}

func checkPairings(groupSize int, roundSets [][]Pairing) error {
	_, err := newRoundSetGraph(groupSize, roundSets)
	return err
}

// Returns the opponents of every team of the group.
// The opponents of the team at index i are at index i
// and are listed in group order.
func GroupOpponents(group Group) ([][]string, error) {
	roundSets, err := RoundSets(len(group.Teams))
	if err != nil {
		return nil, fmt.Errorf("group %d: %w", group.Number, err)
	}
	g, err := newRoundSetGraph(len(group.Teams), roundSets)
	if err != nil {
		return nil, fmt.Errorf("group %d: %w", group.Number, err)
	}

	opponents := make([][]string, len(group.Teams))
	for slot := range group.Teams {
		slots := g.Opponents(slot)
		names := make([]string, 0, len(slots))
		for _, s := range slots {
			names = append(names, group.Teams[s])
		}
		opponents[slot] = names
	}
	return opponents, nil
}
