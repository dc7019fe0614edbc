package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/agentic-research/marquee/api"
	"github.com/agentic-research/marquee/internal/answer"
	"github.com/agentic-research/marquee/internal/ingest"
	"github.com/agentic-research/marquee/internal/logger"
	"github.com/agentic-research/marquee/internal/query"
	"github.com/agentic-research/marquee/internal/store"
)

// session is everything a command needs to answer questions.
type session struct {
	log      *logger.Logger
	resolver *query.Resolver
	closers  []func() error
}

func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		_ = s.closers[i]() // read-only handles
	}
	s.log.Sync()
}

func (o *options) logger() (*logger.Logger, error) {
	return logger.New(o.logMode, o.logLevel)
}

func (o *options) open() (*session, error) {
	log, err := o.logger()
	if err != nil {
		return nil, err
	}
	sess := &session{log: log}

	s, err := o.openStore(sess)
	if err != nil {
		sess.Close()
		return nil, err
	}

	set, err := o.patternSet()
	if err != nil {
		sess.Close()
		return nil, err
	}

	sess.resolver, err = answer.NewResolver(s, set, log)
	if err != nil {
		sess.Close()
		return nil, err
	}
	return sess, nil
}

// openStore picks the backend for --data. A .db file is queried in place
// unless --in-memory is set.
func (o *options) openStore(sess *session) (store.Store, error) {
	switch {
	case o.dataPath == "":
		s, err := ingest.LoadDefault(sess.log)
		if err != nil {
			return nil, err
		}
		sess.log.Debug("using embedded catalog", "movies", s.Len())
		return s, nil

	case strings.ToLower(filepath.Ext(o.dataPath)) == ".db" && !o.inMemory:
		s, err := store.OpenSQLiteStore(o.dataPath)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", o.dataPath, err)
		}
		sess.closers = append(sess.closers, s.Close)
		sess.log.Debug("querying sqlite dataset", "path", o.dataPath)
		return s, nil

	default:
		s, err := ingest.LoadMemory(o.dataPath, o.selector, sess.log)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", o.dataPath, err)
		}
		sess.log.Info("dataset loaded", "path", o.dataPath, "movies", s.Len())
		return s, nil
	}
}

func (o *options) patternSet() (api.PatternSet, error) {
	if o.patternsPath == "" {
		return answer.DefaultPatterns(), nil
	}
	return ingest.LoadPatterns(o.patternsPath)
}
