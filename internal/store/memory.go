package store

import (
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/ezBadminton/kiva/internal/model"

	"github.com/google/uuid"
)

type MemoryStore struct {
	mu          sync.RWMutex
	tournaments map[string]model.Tournament
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tournaments: make(map[string]model.Tournament),
	}
}

func (s *MemoryStore) ListTournaments() []model.Tournament {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tournaments := make([]model.Tournament, 0, len(s.tournaments))
	for _, t := range s.tournaments {
		tournaments = append(tournaments, cloneTournament(t))
	}
	sort.Slice(tournaments, func(i, j int) bool {
		return tournaments[i].CreatedAt.After(tournaments[j].CreatedAt)
	})
	return tournaments
}

func (s *MemoryStore) GetTournament(id string) (model.Tournament, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tournaments[id]
	return cloneTournament(t), ok
}

func (s *MemoryStore) CreateTournament(tournament model.Tournament) (model.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tournament.ID == "" {
		tournament.ID = uuid.NewString()
	}
	if tournament.CreatedAt.IsZero() {
		tournament.CreatedAt = time.Now()
	}
	if tournament.UpdatedAt.IsZero() {
		tournament.UpdatedAt = tournament.CreatedAt
	}
	tournament = cloneTournament(tournament)
	s.tournaments[tournament.ID] = tournament
	return cloneTournament(tournament), nil
}

func (s *MemoryStore) UpdateTournament(tournament model.Tournament) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tournaments[tournament.ID]; !ok {
		return ErrNotFound
	}
	s.tournaments[tournament.ID] = cloneTournament(tournament)
	return nil
}

func cloneTournament(t model.Tournament) model.Tournament {
	t.Teams = slices.Clone(t.Teams)
	t.Locations = slices.Clone(t.Locations)
	return t
}
