package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ezBadminton/kiva/internal/model"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// SQLStore keeps tournaments in a sqlite or postgres database.
// Both drivers accept the same $n placeholders.
type SQLStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	return openSQLStore("sqlite", path)
}

func NewPostgresStore(dsn string) (*SQLStore, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("postgres dsn is required")
	}
	return openSQLStore("pgx", dsn)
}

func openSQLStore(driver, dsn string) (*SQLStore, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	if err := applyMigrations(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

const tournamentColumns = `id, teams, locations, min_group_size, draws, created_at, updated_at`

func (s *SQLStore) ListTournaments() []model.Tournament {
	rows, err := s.db.Query(`SELECT ` + tournamentColumns + ` FROM tournaments ORDER BY created_at DESC`)
	if err != nil {
		return nil
	}
	defer rows.Close()

	tournaments := []model.Tournament{}
	for rows.Next() {
		t, err := scanTournament(rows)
		if err != nil {
			continue
		}
		tournaments = append(tournaments, t)
	}
	return tournaments
}

func (s *SQLStore) GetTournament(id string) (model.Tournament, bool) {
	row := s.db.QueryRow(`SELECT `+tournamentColumns+` FROM tournaments WHERE id = $1`, id)
	t, err := scanTournament(row)
	if err != nil {
		return model.Tournament{}, false
	}
	return t, true
}

func (s *SQLStore) CreateTournament(tournament model.Tournament) (model.Tournament, error) {
	if tournament.ID == "" {
		tournament.ID = uuid.NewString()
	}
	if tournament.CreatedAt.IsZero() {
		tournament.CreatedAt = time.Now()
	}
	if tournament.UpdatedAt.IsZero() {
		tournament.UpdatedAt = tournament.CreatedAt
	}
	teams, locations, err := encodeLists(tournament)
	if err != nil {
		return model.Tournament{}, err
	}
	_, err = s.db.Exec(
		`INSERT INTO tournaments (`+tournamentColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		tournament.ID,
		teams,
		locations,
		tournament.MinGroupSize,
		tournament.Draws,
		tournament.CreatedAt.UnixMilli(),
		tournament.UpdatedAt.UnixMilli(),
	)
	if err != nil {
		return model.Tournament{}, fmt.Errorf("insert tournament: %w", err)
	}
	return tournament, nil
}

func (s *SQLStore) UpdateTournament(tournament model.Tournament) error {
	teams, locations, err := encodeLists(tournament)
	if err != nil {
		return err
	}
	result, err := s.db.Exec(
		`UPDATE tournaments SET teams = $2, locations = $3, min_group_size = $4, draws = $5, updated_at = $6 WHERE id = $1`,
		tournament.ID,
		teams,
		locations,
		tournament.MinGroupSize,
		tournament.Draws,
		tournament.UpdatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("update tournament: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update tournament: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTournament(row rowScanner) (model.Tournament, error) {
	var t model.Tournament
	var teams, locations string
	var createdAt, updatedAt int64
	if err := row.Scan(&t.ID, &teams, &locations, &t.MinGroupSize, &t.Draws, &createdAt, &updatedAt); err != nil {
		return model.Tournament{}, err
	}
	if err := json.Unmarshal([]byte(teams), &t.Teams); err != nil {
		return model.Tournament{}, fmt.Errorf("decode teams: %w", err)
	}
	if err := json.Unmarshal([]byte(locations), &t.Locations); err != nil {
		return model.Tournament{}, fmt.Errorf("decode locations: %w", err)
	}
	t.CreatedAt = time.UnixMilli(createdAt)
	t.UpdatedAt = time.UnixMilli(updatedAt)
	return t, nil
}

func encodeLists(t model.Tournament) (string, string, error) {
	teams := t.Teams
	if teams == nil {
		teams = []string{}
	}
	locations := t.Locations
	if locations == nil {
		locations = []string{}
	}
	teamsJSON, err := json.Marshal(teams)
	if err != nil {
		return "", "", fmt.Errorf("encode teams: %w", err)
	}
	locationsJSON, err := json.Marshal(locations)
	if err != nil {
		return "", "", fmt.Errorf("encode locations: %w", err)
	}
	return string(teamsJSON), string(locationsJSON), nil
}
