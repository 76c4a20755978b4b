// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tui is the interactive citation panel: a DOI input field with the
// panel rendered beneath it. Every edit resolves the field's current value.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/citation-panel/internal/citation"
	"github.com/pdiddy/citation-panel/internal/view"
	"github.com/pdiddy/citation-panel/pkg/types"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// lookupMsg carries a finished lookup back to Update.
type lookupMsg struct {
	state types.DisplayState
}

// App is the bubbletea model for the citation panel.
type App struct {
	resolver *citation.Resolver
	ctx      context.Context

	input textinput.Model
	value string

	state  types.DisplayState
	seq    uint64
	cancel context.CancelFunc

	width int
}

// New returns an App that resolves through resolver. Lookups are cancelled
// when ctx is done.
func New(ctx context.Context, resolver *citation.Resolver) *App {
	ti := textinput.New()
	ti.Placeholder = "10.1000/xyz123"
	ti.Prompt = "DOI: "
	ti.CharLimit = 256
	ti.Focus()

	return &App{
		resolver: resolver,
		ctx:      ctx,
		input:    ti,
		state:    citation.Hidden(""),
	}
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			a.stop()
			return a, tea.Quit
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		return a, nil

	case lookupMsg:
		// Results of superseded calls are dropped.
		if msg.state.Seq == a.seq {
			a.state = msg.state
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	if v := a.input.Value(); v != a.value {
		a.value = v
		return a, tea.Batch(cmd, a.resolve(v))
	}
	return a, cmd
}

// resolve moves the panel to the immediate state for doi and returns the
// command performing the lookup, or nil for empty input.
func (a *App) resolve(doi string) tea.Cmd {
	a.stop()
	a.seq++
	seq := a.seq

	if doi == "" {
		a.state = citation.Hidden(doi)
		a.state.Seq = seq
		return nil
	}

	a.state = citation.Loading(doi)
	a.state.Seq = seq

	ctx, cancel := context.WithCancel(a.ctx)
	a.cancel = cancel
	r := a.resolver
	return func() tea.Msg {
		defer cancel()
		st := r.Lookup(ctx, doi)
		st.Seq = seq
		return lookupMsg{state: st}
	}
}

func (a *App) stop() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
}

// State returns the panel state currently shown.
func (a *App) State() types.DisplayState {
	return a.state
}

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Citation lookup"))
	b.WriteString("\n\n")
	b.WriteString(a.input.View())
	b.WriteString("\n\n")
	if box := view.Box(a.state, a.width); box != "" {
		b.WriteString(box)
		b.WriteString("\n\n")
	}
	b.WriteString(helpStyle.Render("esc: quit"))
	b.WriteString("\n")
	return b.String()
}

// Run starts the interactive panel on the terminal.
func Run(ctx context.Context, resolver *citation.Resolver) error {
	_, err := tea.NewProgram(New(ctx, resolver), tea.WithContext(ctx)).Run()
	return err
}
