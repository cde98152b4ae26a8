package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ezBadminton/kiva/core"
	"github.com/ezBadminton/kiva/internal/model"
	"github.com/ezBadminton/kiva/internal/roster"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	view := buildListView(s.store.ListTournaments(), time.Now())
	if err := s.templates.Render(w, http.StatusOK, "list.html", view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleNew(w http.ResponseWriter, r *http.Request) {
	view := newTournamentForm(s.opts.MinGroupSize)
	if err := s.templates.Render(w, http.StatusOK, "new.html", view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := newTournamentView{
		Teams:        r.PostFormValue("teams"),
		Locations:    r.PostFormValue("locations"),
		MinGroupSize: strings.TrimSpace(r.PostFormValue("min_group_size")),
	}

	tournament, err := s.parseTournament(form)
	if err != nil {
		form.Error = err.Error()
		if err := s.templates.Render(w, http.StatusBadRequest, "new.html", form); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	for _, pair := range roster.SimilarNames(tournament.Teams, 1) {
		s.logger.Warn("similar team names", "a", pair.A, "b", pair.B, "distance", pair.Distance)
	}

	created, err := s.store.CreateTournament(tournament)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.logger.Info("tournament created", "id", created.ID, "teams", len(created.Teams))
	http.Redirect(w, r, "/tournaments/"+created.ID, http.StatusSeeOther)
}

// Validates the form and checks that a schedule can be
// generated for it.
func (s *Server) parseTournament(form newTournamentView) (model.Tournament, error) {
	teams := roster.ParseLines(form.Teams)
	if err := roster.Validate(teams, roster.MinTeams); err != nil {
		return model.Tournament{}, err
	}
	locations := roster.ParseLines(form.Locations)

	minGroupSize := s.opts.MinGroupSize
	if form.MinGroupSize != "" {
		n, err := strconv.Atoi(form.MinGroupSize)
		if err != nil || n < core.MinSupportedGroupSize || n > core.MaxSupportedGroupSize {
			return model.Tournament{}, fmt.Errorf(
				"minimum group size must be between %d and %d",
				core.MinSupportedGroupSize,
				core.MaxSupportedGroupSize,
			)
		}
		minGroupSize = n
	}

	tournament := model.Tournament{
		Teams:        teams,
		Locations:    locations,
		MinGroupSize: minGroupSize,
	}
	engine, err := tournament.Engine()
	if err != nil {
		return model.Tournament{}, err
	}
	if _, err := engine.Matches(); err != nil {
		return model.Tournament{}, err
	}
	return tournament, nil
}

func (s *Server) handleGroups(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "tournamentID")
	unlock, ok := s.lockTournament(w, id, false)
	if !ok {
		return
	}
	defer unlock()

	tournament, engine, ok := s.loadTournament(w, id)
	if !ok {
		return
	}
	matches, err := engine.Matches()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := buildGroupsView(tournament, engine, matches, time.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.templates.Render(w, http.StatusOK, "groups.html", view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "tournamentID")
	unlock, ok := s.lockTournament(w, id, false)
	if !ok {
		return
	}
	defer unlock()

	tournament, engine, ok := s.loadTournament(w, id)
	if !ok {
		return
	}
	schedule, err := engine.Schedule()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view := buildScheduleView(tournament, schedule)
	if err := s.templates.Render(w, http.StatusOK, "schedule.html", view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleDraw(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "tournamentID")
	unlock, ok := s.lockTournament(w, id, true)
	if !ok {
		return
	}
	defer unlock()

	tournament, engine, ok := s.loadTournament(w, id)
	if !ok {
		return
	}
	engine.Draw()

	drawn := tournament.WithDraw(engine, time.Now())
	if err := s.store.UpdateTournament(drawn); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.logger.Info("tournament drawn", "id", id, "draws", drawn.Draws)
	http.Redirect(w, r, "/tournaments/"+id, http.StatusSeeOther)
}

func (s *Server) handleJSON(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "tournamentID")
	unlock, ok := s.lockTournament(w, id, false)
	if !ok {
		return
	}
	defer unlock()

	tournament, engine, ok := s.loadTournament(w, id)
	if !ok {
		return
	}
	body, err := core.MarshalTournament(engine)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	body["id"] = tournament.ID
	body["draws"] = tournament.Draws

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("encode tournament", "id", id, "error", err)
	}
}

// Locks the tournament for reading or writing. Unknown ids
// get a 404 and no lock is created for them.
func (s *Server) lockTournament(w http.ResponseWriter, id string, write bool) (func(), bool) {
	if _, ok := s.store.GetTournament(id); !ok {
		http.Error(w, "tournament not found", http.StatusNotFound)
		return nil, false
	}
	lock := s.locks.get(id)
	if write {
		lock.Lock()
		return lock.Unlock, true
	}
	lock.RLock()
	return lock.RUnlock, true
}

func (s *Server) loadTournament(w http.ResponseWriter, id string) (model.Tournament, *core.Tournament, bool) {
	tournament, ok := s.store.GetTournament(id)
	if !ok {
		http.Error(w, "tournament not found", http.StatusNotFound)
		return model.Tournament{}, nil, false
	}
	engine, err := tournament.Engine()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return model.Tournament{}, nil, false
	}
	return tournament, engine, true
}
