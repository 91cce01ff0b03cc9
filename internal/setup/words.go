package setup

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/roelfdiedericks/fillerclaw/internal/config"
	"github.com/roelfdiedericks/fillerclaw/internal/fillerwords"
	. "github.com/roelfdiedericks/fillerclaw/internal/logging"
)

// WordManager drives the filler word management menu
type WordManager struct {
	store  *fillerwords.Store
	cfg    *config.Config
	status string
}

// RunWordManager launches the interactive word management TUI.
// The store stays live for the whole session: a running agent sees
// every change on its next classification call.
func RunWordManager(store *fillerwords.Store, cfg *config.Config) error {
	// Suppress non-error logs during TUI
	prevLevel := suppressLogs()
	defer restoreLogs(prevLevel)

	m := &WordManager{
		store: store,
		cfg:   cfg,
	}
	return m.mainMenu()
}

func (m *WordManager) mainMenu() error {
	for {
		count, err := m.store.Count()
		if err != nil {
			return fmt.Errorf("count words: %w", err)
		}

		options := []huh.Option[string]{
			huh.NewOption("View all filler words", "view"),
			huh.NewOption("Add a filler word", "add"),
			huh.NewOption("Add multiple filler words", "addmany"),
			huh.NewOption("Remove a filler word", "remove"),
			huh.NewOption("Clear all filler words", "clear"),
			huh.NewOption("───────────────────", "---"),
			huh.NewOption("Settings", "settings"),
			huh.NewOption("Exit", "exit"),
		}

		subtitle := fmt.Sprintf("%d filler words stored", count)
		if m.status != "" {
			subtitle += "\n" + m.status
		}

		var choice string
		if err := RunMenu(FrameTitleWords, subtitle, options, &choice); err != nil {
			if isUserAbort(err) {
				return nil
			}
			return err
		}

		m.status = ""

		switch choice {
		case "view":
			if err := m.viewWords(); err != nil && !isUserAbort(err) {
				return err
			}
		case "add":
			if err := m.addWord(); err != nil && !isUserAbort(err) {
				return err
			}
		case "addmany":
			if err := m.addWords(); err != nil && !isUserAbort(err) {
				return err
			}
		case "remove":
			if err := m.removeWord(); err != nil && !isUserAbort(err) {
				return err
			}
		case "clear":
			if err := m.clearWords(); err != nil && !isUserAbort(err) {
				return err
			}
		case "settings":
			if err := m.editSettings(); err != nil && !isUserAbort(err) {
				return err
			}
		case "exit":
			return nil
		}
	}
}

// viewWords shows the numbered word list
func (m *WordManager) viewWords() error {
	words, err := m.store.List()
	if err != nil {
		return fmt.Errorf("list words: %w", err)
	}

	var sb strings.Builder
	if len(words) == 0 {
		sb.WriteString("No filler words stored.")
	} else {
		fmt.Fprintf(&sb, "Current filler words (%d total):\n\n", len(words))
		for i, w := range words {
			fmt.Fprintf(&sb, "%3d. %s\n", i+1, w)
		}
	}

	options := []huh.Option[string]{
		huh.NewOption("Back", "back"),
	}
	var choice string
	return RunMenu(FrameTitleWords, sb.String(), options, &choice)
}

// addWord prompts for a single word and inserts it
func (m *WordManager) addWord() error {
	var word string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Filler word to add").
				Description("Hyphenated compounds like uh-huh are stored as one token").
				Validate(notEmpty).
				Value(&word),
		),
	).WithKeyMap(formKeyMap()).WithTheme(blueTheme())

	if err := RunForm(FrameTitleWords, form); err != nil {
		return err
	}

	added, err := m.store.Add(word)
	if err != nil {
		m.status = fmt.Sprintf("Error: %v", err)
		L_error("setup: add word failed", "word", word, "error", err)
		return nil
	}

	norm := fillerwords.Normalize(word)
	if added {
		m.status = fmt.Sprintf("Added %q", norm)
	} else {
		m.status = fmt.Sprintf("%q already exists", norm)
	}
	return nil
}

// addWords prompts for a comma-separated list and inserts each word
func (m *WordManager) addWords() error {
	var input string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Filler words to add").
				Description("Comma-separated, e.g. \"yeah, right, accha\"").
				Validate(notEmpty).
				Value(&input),
		),
	).WithKeyMap(formKeyMap()).WithTheme(blueTheme())

	if err := RunForm(FrameTitleWords, form); err != nil {
		return err
	}

	words := strings.Split(input, ",")
	added, skipped, err := m.store.AddMany(words)
	if err != nil {
		m.status = fmt.Sprintf("Error: %v", err)
		L_error("setup: add words failed", "error", err)
		return nil
	}

	m.status = fmt.Sprintf("Added %d word(s), skipped %d duplicate(s)", added, skipped)
	return nil
}

// removeWord selects and deletes a word
func (m *WordManager) removeWord() error {
	words, err := m.store.List()
	if err != nil {
		return fmt.Errorf("list words: %w", err)
	}
	if len(words) == 0 {
		m.status = "No filler words to remove"
		return nil
	}

	options := make([]huh.Option[string], 0, len(words))
	for _, w := range words {
		options = append(options, huh.NewOption(w, w))
	}

	var word string
	if err := RunMenu(FrameTitleWords, "Remove which word?", options, &word); err != nil {
		return err
	}

	removed, err := m.store.Remove(word)
	if err != nil {
		m.status = fmt.Sprintf("Error: %v", err)
		L_error("setup: remove word failed", "word", word, "error", err)
		return nil
	}

	if removed {
		m.status = fmt.Sprintf("Removed %q", word)
	} else {
		m.status = fmt.Sprintf("%q not found", word)
	}
	return nil
}

// clearWords confirms, then deletes everything
func (m *WordManager) clearWords() error {
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Delete ALL filler words?").
				Description("The default list is re-seeded on the next startup with an empty store").
				Affirmative("Delete all").
				Negative("Cancel").
				Value(&confirmed),
		),
	).WithKeyMap(formKeyMap()).WithTheme(blueTheme())

	if err := RunForm(FrameTitleWords, form); err != nil {
		return err
	}
	if !confirmed {
		m.status = "Clear cancelled"
		return nil
	}

	n, err := m.store.Clear()
	if err != nil {
		m.status = fmt.Sprintf("Error: %v", err)
		L_error("setup: clear words failed", "error", err)
		return nil
	}

	m.status = fmt.Sprintf("Deleted %d word(s)", n)
	return nil
}

// editSettings edits and saves fillerclaw.json
func (m *WordManager) editSettings() error {
	cfg := *m.cfg

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Database path").
				Description("Empty uses ~/.fillerclaw/filler_words.db (takes effect on restart)").
				Value(&cfg.Store.Path),
			huh.NewConfirm().
				Title("Transcript filtering").
				Affirmative("Enabled").
				Negative("Disabled").
				Value(&cfg.Filter.Enabled),
			huh.NewConfirm().
				Title("Debug logging").
				Affirmative("On").
				Negative("Off").
				Value(&cfg.Logging.Debug),
		),
	).WithKeyMap(formKeyMap()).WithTheme(blueTheme())

	if err := RunFormWithSubtitle(FrameTitleWords, "Settings", form); err != nil {
		return err
	}

	if err := config.Save(&cfg); err != nil {
		m.status = fmt.Sprintf("Error saving config: %v", err)
		L_error("setup: config save failed", "error", err)
		return nil
	}

	*m.cfg = cfg
	m.status = "Settings saved"
	return nil
}

// notEmpty rejects blank form input
func notEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}
