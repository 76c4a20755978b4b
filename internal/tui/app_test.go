// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdiddy/citation-panel/internal/citation"
	"github.com/pdiddy/citation-panel/pkg/types"
)

type stubFetcher map[string]*types.Work

func (s stubFetcher) Fetch(_ context.Context, doi string) (*types.Work, error) {
	if w, ok := s[doi]; ok {
		return w, nil
	}
	return nil, errors.New("not found")
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	f := stubFetcher{
		"10.1000/xyz123": {Title: "T", ReferencedByCount: 5},
		"10.1000/x":      {Title: "X", ReferencedByCount: 1},
	}
	return New(context.Background(), citation.NewResolver(f, nil))
}

func typeRunes(t *testing.T, a *App, s string) tea.Cmd {
	t.Helper()
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return cmd
}

func TestResolveShowsLoadingThenResult(t *testing.T) {
	a := newTestApp(t)

	cmd := a.resolve("10.1000/xyz123")
	if cmd == nil {
		t.Fatal("expected a lookup command")
	}
	if got := a.State(); !got.Visible || got.Text != citation.FetchingText {
		t.Fatalf("state before completion = %+v, want visible Fetching...", got)
	}

	a.Update(cmd())
	if got := a.State().Text; got != "T (5 times referenced)" {
		t.Fatalf("text = %q", got)
	}
}

func TestResolveEmptyHides(t *testing.T) {
	a := newTestApp(t)
	a.Update(a.resolve("10.1000/xyz123")())

	if cmd := a.resolve(""); cmd != nil {
		t.Fatal("empty input must not start a lookup")
	}
	if a.State().Visible {
		t.Fatal("panel should be hidden")
	}
}

func TestStaleLookupDropped(t *testing.T) {
	a := newTestApp(t)

	first := a.resolve("10.1000/xyz123")
	second := a.resolve("10.1000/x")

	a.Update(second())
	a.Update(first())

	if got := a.State().Text; got != "X (1 times referenced)" {
		t.Fatalf("text = %q, want the later call's result", got)
	}
}

func TestFailedLookupText(t *testing.T) {
	a := newTestApp(t)
	a.Update(a.resolve("10.1000/unknown")())
	if got := a.State(); got.Phase != types.PhaseFailed || got.Text != citation.NotFoundText {
		t.Fatalf("state = %+v", got)
	}
}

func TestTypingTriggersResolve(t *testing.T) {
	a := newTestApp(t)

	if cmd := typeRunes(t, a, "10.1000/x"); cmd == nil {
		t.Fatal("edit should return commands")
	}
	if got := a.State(); got.Phase != types.PhaseLoading || got.DOI != "10.1000/x" {
		t.Fatalf("state = %+v, want loading for typed DOI", got)
	}

	a.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	if a.State().Visible {
		t.Fatal("clearing the field should hide the panel")
	}
}

func TestViewRendersPanel(t *testing.T) {
	a := newTestApp(t)
	a.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	a.Update(a.resolve("10.1000/xyz123")())

	if got := a.View(); !strings.Contains(got, "T (5 times referenced)") {
		t.Fatalf("view missing citation:\n%s", got)
	}
}

func TestEscQuits(t *testing.T) {
	a := newTestApp(t)
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}
