// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package view

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/pdiddy/citation-panel/pkg/types"
)

var (
	loadingColor  = color.New(color.FgYellow)
	resolvedColor = color.New(color.FgGreen)
	failedColor   = color.New(color.FgRed)
	hiddenColor   = color.New(color.Faint)
)

// LinePanel writes panel changes to w, one line each. Hiding is reported
// only when it changes the panel, or on the first call.
type LinePanel struct {
	mu      sync.Mutex
	w       io.Writer
	touched bool
	visible bool
	phase   types.Phase
	title   string
}

// NewLinePanel returns a hidden panel writing to w.
func NewLinePanel(w io.Writer) *LinePanel {
	return &LinePanel{w: w, phase: types.PhaseHidden}
}

func (p *LinePanel) SetVisible(visible bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.touched && visible == p.visible {
		return
	}
	p.touched = true
	p.visible = visible
	if !visible {
		hiddenColor.Fprintln(p.w, "(citation hidden)")
	}
}

func (p *LinePanel) SetPhase(phase types.Phase) {
	p.mu.Lock()
	p.phase = phase
	p.mu.Unlock()
}

func (p *LinePanel) SetTitle(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.title = text

	c := loadingColor
	switch p.phase {
	case types.PhaseResolved:
		c = resolvedColor
	case types.PhaseFailed:
		c = failedColor
	}
	fmt.Fprintln(p.w, c.Sprint(text))
}

// Title returns the current title text.
func (p *LinePanel) Title() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.title
}

// Visible reports whether the panel is shown.
func (p *LinePanel) Visible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible
}
