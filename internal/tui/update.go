package tui

import (
	"context"
	"math/rand"
	"time"

	"carbonwise/internal/api"
	"carbonwise/internal/model"
	"carbonwise/internal/workflow"

	tea "github.com/charmbracelet/bubbletea"
)

// MsgProgressTick advances the synthetic progress bar. It carries the cycle
// it was armed in; ticks from a finished or superseded cycle are dropped.
type MsgProgressTick struct {
	Cycle int
}

// MsgAnalysisDone carries the outcome of the network call, tagged with its
// cycle for the same staleness check.
type MsgAnalysisDone struct {
	Cycle int
	Raw   *api.AnalyzeResponse
	Err   error
}

// MsgBackendStatus reports the startup health probe.
type MsgBackendStatus struct {
	Message string
	Err     error
}

// MsgAlternatives carries on-demand alternatives for a material.
type MsgAlternatives struct {
	Material string
	Recs     []model.Recommendation
	Err      error
}

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		w := msg.Width - 10
		if w < 10 {
			w = 10
		}
		if w > 60 {
			w = 60
		}
		m.Bar.Width = w
		return m, nil

	case MsgProgressTick:
		// The staleness check is the ticker's cancellation: once the cycle
		// concluded (or a newer one started) the chain simply isn't re-armed.
		if msg.Cycle != m.State.Cycle || !m.State.Analyzing {
			return m, nil
		}
		m.State.Advance(rand.Intn(12) + 1)
		return m, m.tickCmd(msg.Cycle)

	case MsgAnalysisDone:
		if msg.Cycle != m.State.Cycle || !m.State.Analyzing {
			// A response from a superseded cycle must not touch state.
			return m, nil
		}
		if msg.Err != nil {
			m.State.Fail(msg.Err.Error())
			return m, nil
		}
		result, recs, err := workflow.Map(msg.Raw)
		if err != nil {
			m.State.Fail(err.Error())
			return m, nil
		}
		m.State.Succeed(result, recs)
		// A fresh result invalidates alternatives from the previous one.
		m.AltsFor = ""
		m.AltRecs = nil
		m.AltsErr = ""
		return m, nil

	case MsgBackendStatus:
		if msg.Err != nil {
			m.Backend = model.IconMissing + " backend unreachable"
		} else {
			m.Backend = model.IconOK + " " + msg.Message
		}
		return m, nil

	case MsgAlternatives:
		m.FetchingAlts = false
		if msg.Err != nil {
			m.AltsErr = msg.Err.Error()
			return m, nil
		}
		m.AltsFor = msg.Material
		m.AltRecs = msg.Recs
		m.AltsErr = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			return m.startAnalysis()
		case "ctrl+r":
			return m.fetchAlternatives()
		}
		m.URLInput, cmd = m.URLInput.Update(msg)
		return m, cmd
	}

	// Everything else (cursor blink etc.) belongs to the input component.
	m.URLInput, cmd = m.URLInput.Update(msg)
	return m, cmd
}

// startAnalysis runs the input gate and, on acceptance, begins a new cycle
// with its two racing commands: the network call and the progress ticker.
func (m AppModel) startAnalysis() (tea.Model, tea.Cmd) {
	if m.State.Analyzing {
		// One cycle at a time; re-invoking mid-flight is ignored.
		return m, nil
	}

	trimmed, err := workflow.ValidateURL(m.URLInput.Value())
	if err != nil {
		m.State.Reject(err.Error())
		return m, nil
	}

	cycle := m.State.Begin()
	return m, tea.Batch(m.analyzeCmd(trimmed, cycle), m.tickCmd(cycle))
}

// fetchAlternatives asks the backend for greener products made of the
// current result's material.
func (m AppModel) fetchAlternatives() (tea.Model, tea.Cmd) {
	if m.State.Analyzing || m.FetchingAlts || m.State.Result == nil {
		return m, nil
	}
	material := m.State.Result.Material
	if material == "" || material == "Unknown" {
		m.AltsErr = "No material identified - nothing to look up."
		return m, nil
	}
	m.FetchingAlts = true
	m.AltsErr = ""
	return m, m.alternativesCmd(material)
}

func (m AppModel) analyzeCmd(url string, cycle int) tea.Cmd {
	client := m.Client
	return func() tea.Msg {
		raw, err := client.Analyze(context.Background(), url)
		return MsgAnalysisDone{Cycle: cycle, Raw: raw, Err: err}
	}
}

func (m AppModel) tickCmd(cycle int) tea.Cmd {
	return tea.Tick(m.TickInterval, func(time.Time) tea.Msg {
		return MsgProgressTick{Cycle: cycle}
	})
}

func (m AppModel) alternativesCmd(material string) tea.Cmd {
	client := m.Client
	return func() tea.Msg {
		raw, err := client.Alternatives(context.Background(), material)
		if err != nil {
			return MsgAlternatives{Material: material, Err: err}
		}
		recs, err := workflow.MapAlternatives(material, raw)
		return MsgAlternatives{Material: material, Recs: recs, Err: err}
	}
}

func (m AppModel) healthCmd() tea.Cmd {
	client := m.Client
	return func() tea.Msg {
		message, err := client.Health(context.Background())
		return MsgBackendStatus{Message: message, Err: err}
	}
}
