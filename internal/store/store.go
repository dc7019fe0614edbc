package store

import (
	"errors"
	"strings"
	"sync"

	"github.com/RoaringBitmap/roaring"
	"github.com/agentic-research/marquee/api"
)

var ErrEmpty = errors.New("store is empty")

// Bounds is the inclusive range of release years in a store.
type Bounds struct {
	Min int
	Max int
}

// Store is the read side of the movie dataset.
// Handlers see only this interface.
//
// Lookups are case-insensitive. Results keep dataset order; ByYearRange
// orders by year first, then dataset order.
type Store interface {
	All() ([]api.Movie, error)
	ByTitle(title string) ([]api.Movie, error)
	ByDirector(director string) ([]api.Movie, error)
	ByActor(actor string) ([]api.Movie, error)
	// ByYearRange returns movies released in [from, to].
	ByYearRange(from, to int) ([]api.Movie, error)
	// YearBounds returns ErrEmpty when there are no records.
	YearBounds() (Bounds, error)
}

func key(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// -----------------------------------------------------------------------------
// In-memory store with roaring bitmap indices
// -----------------------------------------------------------------------------

// MemoryStore keeps every record in a slice and indexes positions in
// roaring bitmaps. Bitmap iteration is ascending, which is dataset order.
type MemoryStore struct {
	mu     sync.RWMutex
	movies []api.Movie

	byTitle    map[string]*roaring.Bitmap
	byDirector map[string]*roaring.Bitmap
	byActor    map[string]*roaring.Bitmap
	byYear     map[int]*roaring.Bitmap

	bounds    Bounds
	hasBounds bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byTitle:    make(map[string]*roaring.Bitmap),
		byDirector: make(map[string]*roaring.Bitmap),
		byActor:    make(map[string]*roaring.Bitmap),
		byYear:     make(map[int]*roaring.Bitmap),
	}
}

// Add appends a record and indexes it. Year bounds are maintained here so
// range handlers never rescan the dataset.
func (s *MemoryStore) Add(m api.Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos := uint32(len(s.movies))
	m.Cast = append([]string(nil), m.Cast...)
	s.movies = append(s.movies, m)

	setBit(s.byTitle, key(m.Title), pos)
	setBit(s.byDirector, key(m.Director), pos)
	for _, actor := range m.Cast {
		setBit(s.byActor, key(actor), pos)
	}
	bm, ok := s.byYear[m.Year]
	if !ok {
		bm = roaring.New()
		s.byYear[m.Year] = bm
	}
	bm.Add(pos)

	if !s.hasBounds {
		s.bounds = Bounds{Min: m.Year, Max: m.Year}
		s.hasBounds = true
	} else {
		s.bounds.Min = min(s.bounds.Min, m.Year)
		s.bounds.Max = max(s.bounds.Max, m.Year)
	}
	return nil
}

func setBit(index map[string]*roaring.Bitmap, k string, pos uint32) {
	bm, ok := index[k]
	if !ok {
		bm = roaring.New()
		index[k] = bm
	}
	bm.Add(pos)
}

// Len returns the number of records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.movies)
}

// All implements Store.
func (s *MemoryStore) All() ([]api.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]api.Movie, len(s.movies))
	copy(out, s.movies)
	return out, nil
}

// ByTitle implements Store.
func (s *MemoryStore) ByTitle(title string) ([]api.Movie, error) {
	return s.lookup(s.byTitle, key(title)), nil
}

// ByDirector implements Store.
func (s *MemoryStore) ByDirector(director string) ([]api.Movie, error) {
	return s.lookup(s.byDirector, key(director)), nil
}

// ByActor implements Store.
func (s *MemoryStore) ByActor(actor string) ([]api.Movie, error) {
	return s.lookup(s.byActor, key(actor)), nil
}

// ByYearRange implements Store. The range is clamped to the year bounds so
// open-ended queries ("after 0") touch only years that exist.
func (s *MemoryStore) ByYearRange(from, to int) ([]api.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasBounds {
		return nil, nil
	}
	from = max(from, s.bounds.Min)
	to = min(to, s.bounds.Max)

	var out []api.Movie
	for y := from; y <= to; y++ {
		if bm, ok := s.byYear[y]; ok {
			out = s.collect(out, bm)
		}
	}
	return out, nil
}

// YearBounds implements Store.
func (s *MemoryStore) YearBounds() (Bounds, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasBounds {
		return Bounds{}, ErrEmpty
	}
	return s.bounds, nil
}

func (s *MemoryStore) lookup(index map[string]*roaring.Bitmap, k string) []api.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bm, ok := index[k]
	if !ok {
		return nil
	}
	return s.collect(nil, bm)
}

// collect appends the records in bm. Must be called with s.mu held.
func (s *MemoryStore) collect(out []api.Movie, bm *roaring.Bitmap) []api.Movie {
	it := bm.Iterator()
	for it.HasNext() {
		pos := it.Next()
		if int(pos) < len(s.movies) {
			out = append(out, s.movies[pos])
		}
	}
	return out
}

var _ Store = (*MemoryStore)(nil)
