// Package setup provides the interactive word management TUI for FillerClaw.
package setup

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	. "github.com/roelfdiedericks/fillerclaw/internal/logging"
)

// Frame title constants
const (
	FrameTitleWords = "🎤 FillerClaw Words"
)

// App colors
var (
	appPrimaryColor   = lipgloss.Color("39")  // Blue
	appSecondaryColor = lipgloss.Color("245") // Gray
	appAccentColor    = lipgloss.Color("87")  // Cyan/Light Blue
)

// App styles
var (
	appFrameTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(appAccentColor).
				Background(lipgloss.Color("0"))

	appSubtitleStyle = lipgloss.NewStyle().
				Foreground(appSecondaryColor).
				MarginBottom(1)

	appHelpStyle = lipgloss.NewStyle().
			Foreground(appSecondaryColor).
			MarginTop(1)
)

// isUserAbort checks if the error is a user abort (Escape pressed)
func isUserAbort(err error) bool {
	return errors.Is(err, huh.ErrUserAborted)
}

// suppressLogs drops the log level to errors-only while the TUI owns
// the terminal. Returns the previous level for restoreLogs.
func suppressLogs() int {
	prev := GetLevel()
	SetLevel(LevelError)
	return prev
}

// restoreLogs restores the log level saved by suppressLogs
func restoreLogs(level int) {
	SetLevel(level)
}

// escKeyMap returns a huh keymap where Escape aborts the form
func escKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("esc", "ctrl+c"))
	return km
}

// formKeyMap is escKeyMap for input forms (kept separate so forms can
// diverge from menus later without touching call sites)
func formKeyMap() *huh.KeyMap {
	return escKeyMap()
}

// blueTheme returns the shared form theme
func blueTheme() *huh.Theme {
	t := huh.ThemeBase()
	t.Focused.Title = t.Focused.Title.Foreground(appAccentColor).Bold(true)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(appPrimaryColor)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(appAccentColor)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(appPrimaryColor)
	return t
}

// renderFrameWithTitle renders content inside a frame with a title in the top border
func renderFrameWithTitle(title string, content string, width, height int) string {
	// Border characters for rounded border
	topLeft := "╭"
	topRight := "╮"
	bottomLeft := "╰"
	bottomRight := "╯"
	horizontal := "─"
	vertical := "│"

	// Calculate inner width (minus borders and padding)
	innerWidth := width - 2        // -2 for left/right borders
	contentWidth := innerWidth - 4 // -4 for padding (2 each side)

	// Build the title portion of the top border
	titleText := " " + title + " "
	titleLen := lipgloss.Width(titleText)
	styledTitle := appFrameTitleStyle.Render(titleText)

	// Calculate horizontal lines on each side of title
	leftLineLen := 2 // Small gap after corner
	rightLineLen := innerWidth - leftLineLen - titleLen
	if rightLineLen < 0 {
		rightLineLen = 0
	}

	// Build top border with title
	borderStyle := lipgloss.NewStyle().Foreground(appPrimaryColor)
	topBorder := borderStyle.Render(
		topLeft+strings.Repeat(horizontal, leftLineLen),
	) + styledTitle + borderStyle.Render(
		strings.Repeat(horizontal, rightLineLen)+topRight,
	)

	// Build content area with padding
	paddedContent := lipgloss.NewStyle().
		Width(contentWidth).
		Padding(1, 2).
		Render(content)

	// Split content into lines and add side borders
	contentLines := strings.Split(paddedContent, "\n")
	var middleLines []string
	for _, line := range contentLines {
		// Pad line to inner width
		lineWidth := lipgloss.Width(line)
		padding := innerWidth - lineWidth
		if padding < 0 {
			padding = 0
		}
		paddedLine := line + strings.Repeat(" ", padding)
		middleLines = append(middleLines, borderStyle.Render(vertical)+paddedLine+borderStyle.Render(vertical))
	}

	// Ensure we have enough lines to fill height
	contentHeight := height - 2 // -2 for top/bottom borders
	for len(middleLines) < contentHeight {
		emptyLine := strings.Repeat(" ", innerWidth)
		middleLines = append(middleLines, borderStyle.Render(vertical)+emptyLine+borderStyle.Render(vertical))
	}

	// Build bottom border
	bottomBorder := borderStyle.Render(
		bottomLeft + strings.Repeat(horizontal, innerWidth) + bottomRight,
	)

	// Join all parts
	return topBorder + "\n" + strings.Join(middleLines, "\n") + "\n" + bottomBorder
}

// App runs a huh form inside a framed fullscreen view
type App struct {
	frameTitle string
	subtitle   string
	form       *huh.Form
	width      int
	height     int
	quitting   bool
	completed  bool
}

// NewApp creates a new framed form app
func NewApp(frameTitle string, form *huh.Form) *App {
	return &App{
		frameTitle: frameTitle,
		form:       form,
	}
}

// WithSubtitle sets the subtitle shown above the form
func (a *App) WithSubtitle(subtitle string) *App {
	a.subtitle = subtitle
	return a
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		a.form.Init(),
	)
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.quitting = true
			return a, tea.Quit
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
	}

	// Pass to form
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	// Check if form is complete
	if a.form.State == huh.StateCompleted {
		a.completed = true
		return a, tea.Quit
	}

	// Check if form was aborted (Escape)
	if a.form.State == huh.StateAborted {
		a.quitting = true
		return a, tea.Quit
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	if a.quitting || a.completed {
		return ""
	}

	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	// Frame dimensions - fill the screen with small margin
	frameWidth := a.width - 4   // 2 char margin each side
	frameHeight := a.height - 3 // margin for help text below

	// Build the content (subtitle and form - title is in frame border)
	var content string
	if a.subtitle != "" {
		content = lipgloss.JoinVertical(lipgloss.Left,
			appSubtitleStyle.Render(a.subtitle),
			a.form.View(),
		)
	} else {
		content = a.form.View()
	}

	// Render the frame with title in the border
	framedContent := renderFrameWithTitle(a.frameTitle, content, frameWidth, frameHeight)

	// Help text below the frame
	helpText := appHelpStyle.Render("↑/↓ navigate • enter select • esc back • ctrl+c quit")

	// Join frame and help text
	fullContent := lipgloss.JoinVertical(lipgloss.Center,
		framedContent,
		lipgloss.NewStyle().Width(frameWidth).Align(lipgloss.Center).Render(helpText),
	)

	// Center in terminal
	return lipgloss.Place(a.width, a.height,
		lipgloss.Center, lipgloss.Center,
		fullContent,
	)
}

// Run executes the app and returns huh.ErrUserAborted if the user quit
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	if err != nil {
		return err
	}
	if a.quitting {
		return huh.ErrUserAborted
	}
	return nil
}

// RunForm runs a huh form inside a framed app
func RunForm(title string, form *huh.Form) error {
	return NewApp(title, form).Run()
}

// RunFormWithSubtitle runs a huh form inside a framed app with subtitle
func RunFormWithSubtitle(title, subtitle string, form *huh.Form) error {
	return NewApp(title, form).WithSubtitle(subtitle).Run()
}

// RunMenu runs a menu selection and stores the choice.
// frameTitle appears in the border, subtitle appears inside below.
// Returns huh.ErrUserAborted if the user quit (ctrl+c) or escaped.
func RunMenu(frameTitle, subtitle string, options []huh.Option[string], choice *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("").
				Options(options...).
				Value(choice),
		),
	).WithShowHelp(false).WithKeyMap(escKeyMap()).WithTheme(blueTheme())

	return NewApp(frameTitle, form).WithSubtitle(subtitle).Run()
}
