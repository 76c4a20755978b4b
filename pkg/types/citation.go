// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// CitationMetadata is the part of a CrossRef work shown in the citation panel.
// It lives only for the duration of rendering.
type CitationMetadata struct {
	// Title is the work title as rendered in the panel.
	Title string `json:"title" yaml:"title"`

	// ReferencedByCount is CrossRef's is-referenced-by-count.
	ReferencedByCount int `json:"is-referenced-by-count" yaml:"is_referenced_by_count"`
}

// Phase is the sub-state of a visible citation panel.
type Phase string

const (
	PhaseHidden   Phase = "hidden"
	PhaseLoading  Phase = "loading"
	PhaseResolved Phase = "resolved"
	PhaseFailed   Phase = "failed"
)

// DisplayState is the complete description of what the citation panel shows
// after a resolve call. Visible is false exactly when Phase is PhaseHidden.
type DisplayState struct {
	// Seq orders states produced by one session; zero for standalone lookups.
	Seq uint64 `json:"seq" yaml:"seq"`

	// DOI is the input that produced this state.
	DOI string `json:"doi" yaml:"doi"`

	Visible bool  `json:"visible" yaml:"visible"`
	Phase   Phase `json:"phase" yaml:"phase"`

	// Text is the citation-title text. Empty for hidden states.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// Metadata is set only in PhaseResolved.
	Metadata *CitationMetadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	// Err records why a lookup failed. It never reaches the panel.
	Err error `json:"-" yaml:"-"`
}

// Work is the decoded CrossRef work record used by the CLI's structured output
// and by DOI validation.
type Work struct {
	DOI               string     `json:"doi" yaml:"doi"`
	Title             string     `json:"title" yaml:"title"`
	ReferencedByCount int        `json:"is-referenced-by-count" yaml:"is_referenced_by_count"`
	Authors           []string   `json:"authors,omitempty" yaml:"authors,omitempty"`
	ContainerTitle    string     `json:"container_title,omitempty" yaml:"container_title,omitempty"`
	Publisher         string     `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	Type              string     `json:"type,omitempty" yaml:"type,omitempty"`
	URL               string     `json:"url,omitempty" yaml:"url,omitempty"`
	Issued            *time.Time `json:"issued,omitempty" yaml:"issued,omitempty"`
}

// Citation returns the panel subset of the work.
func (w *Work) Citation() CitationMetadata {
	return CitationMetadata{Title: w.Title, ReferencedByCount: w.ReferencedByCount}
}
