package ingest

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/agentic-research/marquee/api"
	_ "modernc.org/sqlite"
)

// StreamSQLite iterates over all movies in a SQLite database in dataset
// order, calling fn for each one. Only one record is alive at a time.
func StreamSQLite(dbPath string, fn func(m api.Movie) error) error {
	db, err := sql.Open("sqlite", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	defer func() { _ = db.Close() }() // safe to ignore

	rows, err := db.Query("SELECT title, director, year, cast_list FROM movies ORDER BY position")
	if err != nil {
		return fmt.Errorf("query movies: %w", err)
	}
	defer func() { _ = rows.Close() }() // safe to ignore

	for rows.Next() {
		var m api.Movie
		var castRaw string
		if err := rows.Scan(&m.Title, &m.Director, &m.Year, &castRaw); err != nil {
			return fmt.Errorf("scan row: %w", err)
		}
		if err := json.Unmarshal([]byte(castRaw), &m.Cast); err != nil {
			return fmt.Errorf("parse cast json: %w", err)
		}
		if err := fn(m); err != nil {
			return err
		}
	}
	return rows.Err()
}

// LoadSQLite reads every movie from dbPath into a slice.
// Prefer StreamSQLite for large databases.
func LoadSQLite(dbPath string) ([]api.Movie, error) {
	var movies []api.Movie
	err := StreamSQLite(dbPath, func(m api.Movie) error {
		movies = append(movies, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return movies, nil
}
