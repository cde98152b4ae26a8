package store

import (
	"errors"

	"github.com/ezBadminton/kiva/internal/model"
)

var ErrNotFound = errors.New("tournament not found")

type Store interface {
	ListTournaments() []model.Tournament
	GetTournament(id string) (model.Tournament, bool)
	CreateTournament(tournament model.Tournament) (model.Tournament, error)
	UpdateTournament(tournament model.Tournament) error
}
