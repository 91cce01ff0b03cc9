package fillerwords

import (
	"strings"

	"github.com/roelfdiedericks/fillerclaw/internal/logging"
)

// strippedPunctuation is the fixed set of punctuation removed before
// tokenizing. Anything outside this set (semicolons, quotes, ellipses)
// is left in place, so "hello;" is treated as real speech. Hyphens are
// kept so compounds like "uh-huh" stay single tokens.
var strippedPunctuation = strings.NewReplacer(
	".", "",
	",", "",
	"?", "",
	"!", "",
)

// Classifier decides whether a transcript consists entirely of filler
// words. It reads the store fresh on every call, so edits made by the
// management tool take effect immediately without a restart.
type Classifier struct {
	store *Store
}

// NewClassifier creates a classifier backed by the given store.
func NewClassifier(store *Store) *Classifier {
	return &Classifier{store: store}
}

// Tokenize normalizes a transcript into whitespace-separated tokens:
// lowercase, fixed punctuation stripped.
func Tokenize(text string) []string {
	clean := strippedPunctuation.Replace(strings.ToLower(strings.TrimSpace(text)))
	return strings.Fields(clean)
}

// IsOnlyFillerWords reports whether every token in the transcript is a
// known filler word. Empty or whitespace-only input returns true
// (nothing to interrupt on). A transcript mixing fillers with real
// speech always counts as real speech.
//
// A store read failure fails open: the transcript is treated as real
// speech rather than silently swallowed.
func (c *Classifier) IsOnlyFillerWords(text string) bool {
	words := Tokenize(text)
	if len(words) == 0 {
		return true
	}

	// Fresh read per call - management edits apply immediately
	fillers, err := c.store.Set()
	if err != nil {
		logging.L_error("fillerwords: store read failed, passing transcript through", "error", err)
		return false
	}

	for _, word := range words {
		if _, ok := fillers[word]; !ok {
			return false
		}
	}

	logging.L_debug("fillerwords: transcript is filler only", "text", text)
	return true
}
