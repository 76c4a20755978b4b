// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package view renders citation display states onto a panel.
package view

import "github.com/pdiddy/citation-panel/pkg/types"

// Panel is the surface a display state is applied to: a details container
// whose visibility toggles and a title container holding text.
type Panel interface {
	SetVisible(visible bool)
	SetTitle(text string)
}

// PhaseAware panels are told the phase before the title changes so they can
// style it.
type PhaseAware interface {
	SetPhase(phase types.Phase)
}

// Effects is the set of changes a state makes to a panel.
type Effects struct {
	Visible bool
	Phase   types.Phase

	// SetTitle is false for hidden states: hiding leaves the title text as
	// it was.
	SetTitle bool
	Title    string
}

// Render computes the effects of st. It has no side effects.
func Render(st types.DisplayState) Effects {
	if !st.Visible || st.Phase == types.PhaseHidden {
		return Effects{Phase: types.PhaseHidden}
	}
	return Effects{
		Visible:  true,
		Phase:    st.Phase,
		SetTitle: true,
		Title:    st.Text,
	}
}

// Apply performs e on p.
func Apply(p Panel, e Effects) {
	p.SetVisible(e.Visible)
	if !e.SetTitle {
		return
	}
	if pa, ok := p.(PhaseAware); ok {
		pa.SetPhase(e.Phase)
	}
	p.SetTitle(e.Title)
}
