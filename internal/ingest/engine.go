package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentic-research/marquee/api"
	"github.com/agentic-research/marquee/internal/logger"
	"gopkg.in/yaml.v3"
)

// DefaultSelector picks records out of an api.Catalog document.
const DefaultSelector = "$.movies[*]"

// Target receives decoded records. MemoryStore and SQLiteWriter both
// implement it.
type Target interface {
	Add(m api.Movie) error
}

// Engine drives ingestion of dataset files into a Target.
type Engine struct {
	Target   Target
	Selector string

	log   *logger.Logger
	count int
}

func NewEngine(target Target, log *logger.Logger) *Engine {
	return &Engine{
		Target:   target,
		Selector: DefaultSelector,
		log:      logger.OrNop(log),
	}
}

// Count returns the number of records added so far.
func (e *Engine) Count() int { return e.count }

// Ingest processes a file or every supported file in a directory.
// Directory entries are visited in lexical order.
func (e *Engine) Ingest(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return filepath.Walk(path, func(p string, d os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && Supported(p) {
				return e.ingestFile(p)
			}
			return nil
		})
	}
	if !Supported(path) {
		return fmt.Errorf("unsupported dataset %s (want .json, .yaml, .yml or .db)", path)
	}
	return e.ingestFile(path)
}

// Supported reports whether path has a dataset extension Ingest understands.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml", ".db":
		return true
	default:
		return false
	}
}

func (e *Engine) ingestFile(path string) error {
	before := e.count
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db":
		err = StreamSQLite(path, e.add)
	case ".json":
		err = e.ingestJSON(path)
	case ".yaml", ".yml":
		err = e.ingestYAML(path)
	}
	if err != nil {
		return err
	}
	e.log.Info("ingested dataset", "path", path, "records", e.count-before)
	return nil
}

func (e *Engine) ingestJSON(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return e.IngestJSON(content, path)
}

// IngestJSON ingests an in-memory JSON document. name is used in errors.
func (e *Engine) IngestJSON(content []byte, name string) error {
	var data any
	if err := json.Unmarshal(content, &data); err != nil {
		return fmt.Errorf("failed to parse json %s: %w", name, err)
	}
	if err := e.IngestTree(data); err != nil {
		return fmt.Errorf("ingest %s: %w", name, err)
	}
	return nil
}

func (e *Engine) ingestYAML(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var data any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return fmt.Errorf("failed to parse yaml %s: %w", path, err)
	}
	if err := e.IngestTree(data); err != nil {
		return fmt.Errorf("ingest %s: %w", path, err)
	}
	return nil
}

// IngestTree selects records out of a decoded document and adds them in
// document order.
func (e *Engine) IngestTree(root any) error {
	sel, err := NewRecordSelector(e.Selector)
	if err != nil {
		return err
	}
	return sel.Walk(root, e.add)
}

func (e *Engine) add(m api.Movie) error {
	if err := e.Target.Add(m); err != nil {
		return fmt.Errorf("add %q: %w", m.Title, err)
	}
	e.count++
	return nil
}
