package ingest

import (
	_ "embed"
	"fmt"

	"github.com/agentic-research/marquee/internal/logger"
	"github.com/agentic-research/marquee/internal/store"
)

//go:embed data/movies.json
var defaultCatalog []byte

// DefaultCatalog returns the raw embedded catalog document.
func DefaultCatalog() []byte {
	return defaultCatalog
}

// LoadDefault builds a MemoryStore from the embedded catalog.
func LoadDefault(log *logger.Logger) (*store.MemoryStore, error) {
	s := store.NewMemoryStore()
	if err := NewEngine(s, log).IngestJSON(defaultCatalog, "embedded catalog"); err != nil {
		return nil, fmt.Errorf("load default catalog: %w", err)
	}
	return s, nil
}

// LoadMemory ingests path into a new MemoryStore using selector
// (DefaultSelector when empty).
func LoadMemory(path, selector string, log *logger.Logger) (*store.MemoryStore, error) {
	s := store.NewMemoryStore()
	e := NewEngine(s, log)
	if selector != "" {
		e.Selector = selector
	}
	if err := e.Ingest(path); err != nil {
		return nil, err
	}
	return s, nil
}
