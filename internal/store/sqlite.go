package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/agentic-research/marquee/api"
	_ "modernc.org/sqlite"
)

// Schema is the SQLite layout shared by SQLiteStore and the ingest writer.
// position preserves dataset order; cast_list is a JSON array of names.
// The *_key columns hold the same case-folded values MemoryStore indexes,
// since COLLATE NOCASE and lower() only fold ASCII.
const Schema = `
CREATE TABLE IF NOT EXISTS movies (
	position INTEGER PRIMARY KEY,
	title TEXT NOT NULL,
	director TEXT NOT NULL,
	year INTEGER NOT NULL,
	cast_list JSON NOT NULL,
	title_key TEXT NOT NULL,
	director_key TEXT NOT NULL,
	cast_keys JSON NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_movies_title ON movies(title_key);
CREATE INDEX IF NOT EXISTS idx_movies_director ON movies(director_key);
CREATE INDEX IF NOT EXISTS idx_movies_year ON movies(year, position);
`

// InsertMovie is the statement InsertArgs fills.
const InsertMovie = `
INSERT INTO movies (position, title, director, year, cast_list, title_key, director_key, cast_keys)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

// InsertArgs returns the InsertMovie arguments for m stored at position.
func InsertArgs(position int, m api.Movie) ([]any, error) {
	cast := m.Cast
	if cast == nil {
		cast = []string{}
	}
	castKeys := make([]string, len(cast))
	for i, c := range cast {
		castKeys[i] = key(c)
	}

	castJSON, err := json.Marshal(cast)
	if err != nil {
		return nil, fmt.Errorf("encode cast: %w", err)
	}
	keysJSON, err := json.Marshal(castKeys)
	if err != nil {
		return nil, fmt.Errorf("encode cast keys: %w", err)
	}
	return []any{
		position, m.Title, m.Director, m.Year, string(castJSON),
		key(m.Title), key(m.Director), string(keysJSON),
	}, nil
}

const selectMovies = `SELECT m.title, m.director, m.year, m.cast_list FROM movies m`

// SQLiteStore implements Store by querying a movies database directly.
// No ingestion step: the table's indices serve every lookup.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string

	boundsOnce sync.Once
	bounds     Bounds
	boundsErr  error
}

// OpenSQLiteStore opens dbPath read-only.
func OpenSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	db.SetMaxOpenConns(4)

	// sql.Open is lazy; fail here on a missing file or table instead of on
	// the first question.
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM movies").Scan(&n); err != nil {
		_ = db.Close() // ignore error
		return nil, fmt.Errorf("check movies table in %s: %w", dbPath, err)
	}

	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

// All implements Store.
func (s *SQLiteStore) All() ([]api.Movie, error) {
	return s.query(selectMovies + ` ORDER BY m.position`)
}

// ByTitle implements Store.
func (s *SQLiteStore) ByTitle(title string) ([]api.Movie, error) {
	return s.query(selectMovies+` WHERE m.title_key = ? ORDER BY m.position`, key(title))
}

// ByDirector implements Store.
func (s *SQLiteStore) ByDirector(director string) ([]api.Movie, error) {
	return s.query(selectMovies+` WHERE m.director_key = ? ORDER BY m.position`, key(director))
}

// ByActor implements Store.
func (s *SQLiteStore) ByActor(actor string) ([]api.Movie, error) {
	return s.query(selectMovies+`
		WHERE EXISTS (
			SELECT 1 FROM json_each(m.cast_keys) c WHERE c.value = ?
		)
		ORDER BY m.position`, key(actor))
}

// ByYearRange implements Store.
func (s *SQLiteStore) ByYearRange(from, to int) ([]api.Movie, error) {
	return s.query(selectMovies+` WHERE m.year BETWEEN ? AND ? ORDER BY m.year, m.position`, from, to)
}

// YearBounds implements Store. Computed once; the database is opened
// read-only so the answer cannot change.
func (s *SQLiteStore) YearBounds() (Bounds, error) {
	s.boundsOnce.Do(func() {
		var lo, hi sql.NullInt64
		if err := s.db.QueryRow("SELECT MIN(year), MAX(year) FROM movies").Scan(&lo, &hi); err != nil {
			s.boundsErr = fmt.Errorf("query year bounds: %w", err)
			return
		}
		if !lo.Valid || !hi.Valid {
			s.boundsErr = ErrEmpty
			return
		}
		s.bounds = Bounds{Min: int(lo.Int64), Max: int(hi.Int64)}
	})
	return s.bounds, s.boundsErr
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) query(q string, args ...any) ([]api.Movie, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query movies: %w", err)
	}
	defer func() { _ = rows.Close() }() // safe to ignore

	var out []api.Movie
	for rows.Next() {
		var m api.Movie
		var castRaw string
		if err := rows.Scan(&m.Title, &m.Director, &m.Year, &castRaw); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		if err := json.Unmarshal([]byte(castRaw), &m.Cast); err != nil {
			return nil, fmt.Errorf("parse cast of %q: %w", m.Title, err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}
	return out, nil
}

var _ Store = (*SQLiteStore)(nil)
