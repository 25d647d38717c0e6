package tui

import (
	"time"

	"carbonwise/internal/api"
	"carbonwise/internal/model"
	"carbonwise/internal/workflow"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Default ticker interval for the synthetic progress bar. Cosmetic only;
// the backend offers no real progress signal.
const defaultTickInterval = 350 * time.Millisecond

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	State   workflow.State
	Client  *api.Client
	Backend string // health line for the footer ("" until the probe answers)

	// Alternatives fetched on demand (ctrl+r) for the analyzed material.
	// Separate from State: they belong to the rendered result, not to the
	// analysis cycle itself.
	AltsFor      string
	AltRecs      []model.Recommendation
	AltsErr      string
	FetchingAlts bool

	// UI State
	URLInput   textinput.Model
	Bar        progress.Model
	WindowSize tea.WindowSizeMsg

	// Timing
	TickInterval time.Duration
}

// InitialModel returns the initial state.
func InitialModel(client *api.Client) AppModel {
	ti := textinput.New()
	ti.Placeholder = "https://www.amazon.com/dp/..."
	ti.CharLimit = 500
	ti.Width = 60
	ti.Focus()

	return AppModel{
		Client:       client,
		URLInput:     ti,
		Bar:          progress.New(progress.WithDefaultGradient()),
		TickInterval: defaultTickInterval,
	}
}

// Init starts the backend health probe and the input cursor blink.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.healthCmd())
}
