// Package fillerwords implements the filler word store and the
// transcript classifier that decides what may interrupt the agent.
package fillerwords

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roelfdiedericks/fillerclaw/internal/logging"
	"github.com/roelfdiedericks/fillerclaw/internal/paths"
)

// DefaultDBFile is the database filename under the data directory.
const DefaultDBFile = "filler_words.db"

// Config holds filler word store configuration.
type Config struct {
	DBPath string // Override database path; empty = ~/.fillerclaw/filler_words.db
}

// Manager owns the database handle and hands out the store and
// classifier built on it. Open at startup, Close at shutdown.
type Manager struct {
	db    *sql.DB
	store *Store

	mu     sync.Mutex
	closed bool
}

// Open opens (creating if needed) the filler word database, applies
// migrations and seeds the default word list. Failure here is fatal to
// startup; callers should not continue without a store.
func Open(cfg Config) (*Manager, error) {
	dbPath := cfg.DBPath
	if dbPath == "" {
		var err error
		dbPath, err = paths.DataPath(DefaultDBFile)
		if err != nil {
			return nil, fmt.Errorf("get filler_words db path: %w", err)
		}
	} else if strings.HasPrefix(dbPath, "~") {
		expanded, err := paths.ExpandTilde(dbPath)
		if err != nil {
			return nil, fmt.Errorf("expand db path: %w", err)
		}
		dbPath = expanded
	}

	if err := paths.EnsureDir(filepath.Dir(dbPath)); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	logging.L_debug("fillerwords: using database", "path", dbPath)

	// WAL for concurrent readers; busy_timeout so a conflicting lock
	// from the management process fails fast instead of blocking forever
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := InitSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	store := NewStore(db)
	if err := store.Seed(); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed filler words: %w", err)
	}

	m := &Manager{
		db:    db,
		store: store,
	}

	logging.L_info("fillerwords: store opened", "dbPath", dbPath)
	return m, nil
}

// Store returns the word store.
func (m *Manager) Store() *Store {
	return m.store
}

// Classifier returns a classifier backed by this manager's store.
func (m *Manager) Classifier() *Classifier {
	return NewClassifier(m.store)
}

// Close closes the database. Safe to call more than once.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true

	logging.L_debug("fillerwords: closing store")
	return m.db.Close()
}
