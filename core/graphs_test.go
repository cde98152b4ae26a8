package core

import (
	"errors"
	"reflect"
	"testing"
)

func TestPairingGraph(t *testing.T) {
	g, err := NewPairingGraph(3)
	if err != nil {
		t.Fatal(err)
	}

	if err := g.AddPairing(Pairing{0, 1}); err != nil {
		t.Fatal(err)
	}
	if err := g.AddPairing(Pairing{1, 0}); !errors.Is(err, ErrDuplicatePairing) {
		t.Fatal("the reversed pairing was not detected as duplicate")
	}
	if err := g.AddPairing(Pairing{2, 2}); !errors.Is(err, ErrDuplicatePairing) {
		t.Fatal("a slot paired with itself did not error")
	}
	if err := g.AddPairing(Pairing{0, 3}); !errors.Is(err, ErrIncompletePairing) {
		t.Fatal("a slot outside of the group did not error")
	}
	if g.Complete() {
		t.Fatal("the graph is complete with one pairing")
	}

	_ = g.AddPairing(Pairing{0, 2})
	_ = g.AddPairing(Pairing{1, 2})
	if !g.Complete() {
		t.Fatal("the graph is not complete after all pairings")
	}

	if !reflect.DeepEqual(g.Opponents(1), []int{0, 2}) {
		t.Fatalf("unexpected opponents %v", g.Opponents(1))
	}
}

func TestCheckPairings(t *testing.T) {
	incomplete := [][]Pairing{{{0, 1}, {0, 2}}}
	if err := checkPairings(3, incomplete); !errors.Is(err, ErrIncompletePairing) {
		t.Fatal("a missing pairing was not detected")
	}

	repeated := [][]Pairing{{{0, 1}, {0, 2}}, {{1, 2}, {0, 1}}}
	if err := checkPairings(3, repeated); !errors.Is(err, ErrDuplicatePairing) {
		t.Fatal("a repeated pairing was not detected")
	}
}

func TestGroupOpponents(t *testing.T) {
	group := Group{Number: 1, Teams: []string{"A", "B", "C", "D"}}
	opponents, err := GroupOpponents(group)
	if err != nil {
		t.Fatal(err)
	}

	want := [][]string{
		{"B", "C", "D"},
		{"A", "C", "D"},
		{"A", "B", "D"},
		{"A", "B", "C"},
	}
	if !reflect.DeepEqual(opponents, want) {
		t.Fatalf("unexpected opponents %v", opponents)
	}

	_, err = GroupOpponents(Group{Number: 2, Teams: []string{"A", "B"}})
	if !errors.Is(err, ErrInvalidGroupSize) {
		t.Fatal("a group of two teams did not error")
	}
}
