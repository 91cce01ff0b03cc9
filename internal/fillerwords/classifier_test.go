package fillerwords

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"whitespace only", "   \t ", []string{}},
		{"lowercases", "Umm HELLO", []string{"umm", "hello"}},
		{"strips fixed punctuation", "umm, uh... ok?!", []string{"umm", "uh", "ok"}},
		{"keeps hyphen compounds", "uh-huh", []string{"uh-huh"}},
		{"keeps other punctuation", "hello; (world)", []string{"hello;", "(world)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func seededClassifier(t *testing.T) (*Classifier, *Store, func()) {
	t.Helper()

	db, cleanup := setupTestDB(t)
	store := NewStore(db)
	if err := store.Seed(); err != nil {
		cleanup()
		t.Fatalf("Seed failed: %v", err)
	}
	return NewClassifier(store), store, cleanup
}

func TestClassifierDefaultScenarios(t *testing.T) {
	c, _, cleanup := seededClassifier(t)
	defer cleanup()

	tests := []struct {
		text string
		want bool
	}{
		{"umm", true},
		{"Umm.", true},
		{"umm uh hmm", true},
		{"hello", false},
		{"umm hello", false}, // mixed filler+real is real speech
		{"", true},
		{"   ", true},
		{"...", true},
		{"haan", true},    // Hindi filler in the default set
		{"uh-huh", true},  // stored as a single atomic token
		{"uh huh", false}, // split compound does not match
		{"umm;", false},   // semicolon is not in the stripped set
	}

	for _, tt := range tests {
		if got := c.IsOnlyFillerWords(tt.text); got != tt.want {
			t.Errorf("IsOnlyFillerWords(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestClassifierSeesLiveEdits(t *testing.T) {
	c, store, cleanup := seededClassifier(t)
	defer cleanup()

	if c.IsOnlyFillerWords("righto") {
		t.Fatal("expected unknown word to be real speech")
	}

	// No restart, no cache invalidation - the next call must see the edit
	if _, err := store.Add("righto"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !c.IsOnlyFillerWords("righto") {
		t.Error("expected added word to be filler on the next call")
	}

	if _, err := store.Remove("righto"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if c.IsOnlyFillerWords("righto") {
		t.Error("expected removed word to be real speech again")
	}
}

func TestClassifierFailsOpen(t *testing.T) {
	db, cleanup := setupTestDB(t)
	store := NewStore(db)
	if err := store.Seed(); err != nil {
		cleanup()
		t.Fatalf("Seed failed: %v", err)
	}
	c := NewClassifier(store)

	// Break the store: classification must treat speech as real rather
	// than silently swallowing it
	cleanup()

	if c.IsOnlyFillerWords("umm") {
		t.Error("expected store failure to fail open (treat as real speech)")
	}
}

func TestClassifierEmptyStore(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	c := NewClassifier(NewStore(db))

	// Nothing stored: every word is real speech, empty input still true
	if c.IsOnlyFillerWords("umm") {
		t.Error("expected no matches against an empty store")
	}
	if !c.IsOnlyFillerWords("") {
		t.Error("expected empty input to be true regardless of store")
	}
}
