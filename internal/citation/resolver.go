// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citation turns a DOI into the state of the citation panel.
//
// Lookup is a pure state producer: it never touches a panel. Session binds a
// Resolver to a view.Panel and applies states in call order, discarding
// completions that a later call has superseded.
package citation

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/citation-panel/pkg/types"
)

// Panel texts.
const (
	FetchingText = "Fetching..."
	NotFoundText = "Could not find DOI: please check for correctness"
)

// ResolvedText formats the citation-title text for resolved metadata.
func ResolvedText(m types.CitationMetadata) string {
	return fmt.Sprintf("%s (%d times referenced)", m.Title, m.ReferencedByCount)
}

// WorkFetcher fetches a work record with one request. *crossref.Client
// satisfies it.
type WorkFetcher interface {
	Fetch(ctx context.Context, doi string) (*types.Work, error)
}

// Resolver produces display states for DOIs.
type Resolver struct {
	fetcher WorkFetcher
	trace   io.Writer
}

// NewResolver returns a resolver backed by fetcher. Diagnostic traces go to
// trace; nil discards them.
func NewResolver(fetcher WorkFetcher, trace io.Writer) *Resolver {
	if trace == nil {
		trace = io.Discard
	}
	return &Resolver{fetcher: fetcher, trace: trace}
}

// Hidden is the state for empty input.
func Hidden(doi string) types.DisplayState {
	return types.DisplayState{DOI: doi, Phase: types.PhaseHidden}
}

// Loading is the state shown while a request is in flight.
func Loading(doi string) types.DisplayState {
	return types.DisplayState{DOI: doi, Visible: true, Phase: types.PhaseLoading, Text: FetchingText}
}

// Failed is the state for any fetch or parse failure.
func Failed(doi string, err error) types.DisplayState {
	return types.DisplayState{DOI: doi, Visible: true, Phase: types.PhaseFailed, Text: NotFoundText, Err: err}
}

// Resolved is the state for successfully fetched metadata.
func Resolved(doi string, m types.CitationMetadata) types.DisplayState {
	return types.DisplayState{
		DOI:      doi,
		Visible:  true,
		Phase:    types.PhaseResolved,
		Text:     ResolvedText(m),
		Metadata: &m,
	}
}

// Lookup returns the final panel state for doi. Empty input yields the hidden
// state without a network call. Otherwise exactly one request is sent, with
// no retry. Transport errors, non-200 responses and undecodable bodies all
// yield the same failed state.
func (r *Resolver) Lookup(ctx context.Context, doi string) types.DisplayState {
	if doi == "" {
		return Hidden(doi)
	}

	fmt.Fprintf(r.trace, "lookup: %s\n", doi)
	work, err := r.fetcher.Fetch(ctx, doi)
	if err != nil {
		fmt.Fprintf(r.trace, "lookup failed: %s: %v\n", doi, err)
		return Failed(doi, err)
	}
	return Resolved(doi, work.Citation())
}
