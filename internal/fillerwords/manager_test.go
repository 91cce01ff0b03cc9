package fillerwords

import (
	"path/filepath"
	"testing"
)

func TestManagerOpenSeedsAndIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "filler_words.db")

	m, err := Open(Config{DBPath: dbPath})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	count, err := m.Store().Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != len(DefaultWords) {
		t.Errorf("expected %d seeded words, got %d", len(DefaultWords), count)
	}

	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Reopening the same file must not re-seed
	m2, err := Open(Config{DBPath: dbPath})
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	defer m2.Close()

	if _, err := m2.Store().Remove("umm"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	m3, err := Open(Config{DBPath: dbPath})
	if err != nil {
		t.Fatalf("third Open failed: %v", err)
	}
	defer m3.Close()

	// Store is non-empty, so the removed default must stay removed
	ok, err := m3.Store().Contains("umm")
	if err != nil {
		t.Fatalf("Contains failed: %v", err)
	}
	if ok {
		t.Error("expected reopen not to re-seed a non-empty store")
	}
}

func TestManagerCloseTwice(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "filler_words.db")

	m, err := Open(Config{DBPath: dbPath})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
}

func TestManagerClassifierEndToEnd(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "filler_words.db")

	m, err := Open(Config{DBPath: dbPath})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer m.Close()

	c := m.Classifier()
	if !c.IsOnlyFillerWords("umm uh-huh") {
		t.Error("expected seeded defaults to classify as filler")
	}
	if c.IsOnlyFillerWords("umm hello") {
		t.Error("expected mixed transcript to classify as real speech")
	}
}
