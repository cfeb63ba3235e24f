package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"league-postseason-service/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS final_standings (
	season     INT              NOT NULL,
	place      INT              NOT NULL,
	label      TEXT             NOT NULL,
	team_id    TEXT             NOT NULL,
	team_name  TEXT             NOT NULL,
	points     DOUBLE PRECISION NOT NULL,
	PRIMARY KEY (season, place)
)`

// Store persists final standings to Postgres. It is an optional
// materialization sink; the in-memory store remains the serving path.
type Store struct {
	db *sql.DB
}

// NewStore opens a Postgres connection and verifies it early.
func NewStore(connStr string) (*Store, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &Store{db: db}, nil
}

// EnsureSchema creates the standings table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// UpsertStandings replaces a season's standings rows in one transaction.
func (s *Store) UpsertStandings(ctx context.Context, result domain.SeasonResult) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM final_standings WHERE season = $1`, result.Season); err != nil {
		return fmt.Errorf("clear season %d: %w", result.Season, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO final_standings (season, place, label, team_id, team_name, points)
		VALUES ($1, $2, $3, $4, $5, $6)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, st := range result.Standings {
		if _, err := stmt.ExecContext(ctx, result.Season, st.Place, st.Label, st.TeamID, st.TeamName, st.Points); err != nil {
			return fmt.Errorf("insert season %d place %d: %w", result.Season, st.Place, err)
		}
	}

	return tx.Commit()
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}
