package fillerwords

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/roelfdiedericks/fillerclaw/internal/logging"
)

// Store handles CRUD operations for filler words
type Store struct {
	db *sql.DB
}

// NewStore creates a new filler word store
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Normalize lowercases and trims a token. All words pass through here
// before hitting the database, which makes the UNIQUE constraint
// effectively case-insensitive.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Seed populates an empty store with the default word list.
// Idempotent: a no-op when any rows already exist.
func (s *Store) Seed() error {
	count, err := s.Count()
	if err != nil {
		return fmt.Errorf("count filler words: %w", err)
	}
	if count > 0 {
		logging.L_debug("fillerwords: store already populated", "count", count)
		return nil
	}

	for _, word := range DefaultWords {
		if _, err := s.db.Exec(
			"INSERT OR IGNORE INTO filler_words (word) VALUES (?)",
			Normalize(word),
		); err != nil {
			return fmt.Errorf("seed word %q: %w", word, err)
		}
	}

	logging.L_info("fillerwords: seeded default words", "count", len(DefaultWords))
	return nil
}

// List returns all stored words, sorted.
func (s *Store) List() ([]string, error) {
	rows, err := s.db.Query("SELECT word FROM filler_words ORDER BY word")
	if err != nil {
		return nil, fmt.Errorf("list filler words: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scan filler word: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate filler words: %w", err)
	}

	return words, nil
}

// Set returns the stored words as a membership set.
func (s *Store) Set() (map[string]struct{}, error) {
	words, err := s.List()
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set, nil
}

// Contains reports whether a word is in the store.
func (s *Store) Contains(word string) (bool, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM filler_words WHERE word = ?",
		Normalize(word),
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check filler word: %w", err)
	}
	return n > 0, nil
}

// Count returns the number of stored words.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM filler_words").Scan(&n); err != nil {
		return 0, fmt.Errorf("count filler words: %w", err)
	}
	return n, nil
}

// Add inserts a word if absent. Returns false if the word already
// existed; a duplicate is a no-op, never an error.
func (s *Store) Add(word string) (bool, error) {
	norm := Normalize(word)
	if norm == "" {
		return false, fmt.Errorf("word cannot be empty")
	}

	result, err := s.db.Exec("INSERT OR IGNORE INTO filler_words (word) VALUES (?)", norm)
	if err != nil {
		return false, fmt.Errorf("add filler word %q: %w", norm, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		logging.L_debug("fillerwords: word already exists", "word", norm)
		return false, nil
	}

	logging.L_debug("fillerwords: added word", "word", norm)
	return true, nil
}

// AddMany applies Add per element, tolerating individual duplicates.
// Returns the number of words added and skipped.
func (s *Store) AddMany(words []string) (added, skipped int, err error) {
	for _, word := range words {
		if Normalize(word) == "" {
			continue
		}
		ok, err := s.Add(word)
		if err != nil {
			return added, skipped, err
		}
		if ok {
			added++
		} else {
			skipped++
		}
	}
	return added, skipped, nil
}

// Remove deletes a word if present. Returns false if the word was not
// found; a missing word is a no-op, never an error.
func (s *Store) Remove(word string) (bool, error) {
	norm := Normalize(word)

	result, err := s.db.Exec("DELETE FROM filler_words WHERE word = ?", norm)
	if err != nil {
		return false, fmt.Errorf("remove filler word %q: %w", norm, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		logging.L_debug("fillerwords: word not found", "word", norm)
		return false, nil
	}

	logging.L_debug("fillerwords: removed word", "word", norm)
	return true, nil
}

// Clear deletes all words and returns the number removed.
func (s *Store) Clear() (int64, error) {
	result, err := s.db.Exec("DELETE FROM filler_words")
	if err != nil {
		return 0, fmt.Errorf("clear filler words: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}

	logging.L_info("fillerwords: cleared store", "removed", n)
	return n, nil
}
