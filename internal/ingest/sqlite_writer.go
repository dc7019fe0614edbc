package ingest

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/agentic-research/marquee/api"
	"github.com/agentic-research/marquee/internal/store"
	_ "modernc.org/sqlite"
)

// SQLiteWriter implements Target by writing movies into a SQLite database
// readable by store.SQLiteStore.
type SQLiteWriter struct {
	db        *sql.DB
	tx        *sql.Tx
	stmt      *sql.Stmt
	batchSize int
	pending   int
	position  int
	mu        sync.Mutex
}

// NewSQLiteWriter creates dbPath (or opens it) and initializes the schema.
func NewSQLiteWriter(dbPath string) (*SQLiteWriter, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	// Bulk load: durability comes from Close committing the final batch.
	if _, err := db.Exec("PRAGMA synchronous = OFF"); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec("PRAGMA journal_mode = MEMORY"); err != nil {
		_ = db.Close()
		return nil, err
	}

	if _, err := db.Exec(store.Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	// Append after whatever is already there.
	var next sql.NullInt64
	if err := db.QueryRow("SELECT MAX(position) + 1 FROM movies").Scan(&next); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("read last position: %w", err)
	}

	w := &SQLiteWriter{
		db:        db,
		batchSize: 1000,
		position:  int(next.Int64),
	}
	if err := w.beginTx(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return w, nil
}

func (w *SQLiteWriter) beginTx() error {
	var err error
	w.tx, err = w.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	w.stmt, err = w.tx.Prepare(store.InsertMovie)
	if err != nil {
		_ = w.tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	return nil
}

func (w *SQLiteWriter) commitTx() error {
	if w.stmt != nil {
		_ = w.stmt.Close()
		w.stmt = nil
	}
	if err := w.tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Add implements Target.
func (w *SQLiteWriter) Add(m api.Movie) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	args, err := store.InsertArgs(w.position, m)
	if err != nil {
		return fmt.Errorf("insert %q: %w", m.Title, err)
	}
	if _, err := w.stmt.Exec(args...); err != nil {
		return fmt.Errorf("insert %q: %w", m.Title, err)
	}
	w.position++

	w.pending++
	if w.pending >= w.batchSize {
		if err := w.commitTx(); err != nil {
			return err
		}
		if err := w.beginTx(); err != nil {
			return err
		}
		w.pending = 0
	}
	return nil
}

// Close commits the final batch and closes the database.
func (w *SQLiteWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.commitTx(); err != nil {
		_ = w.db.Close()
		return err
	}
	return w.db.Close()
}

var _ Target = (*SQLiteWriter)(nil)
