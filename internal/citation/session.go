// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citation

import (
	"context"
	"sync"

	"github.com/pdiddy/citation-panel/internal/view"
	"github.com/pdiddy/citation-panel/pkg/types"
)

// Result is the outcome of one Session.Resolve call.
type Result struct {
	State types.DisplayState

	// Applied is false when a later call superseded this one before it
	// completed; the panel was left alone.
	Applied bool
}

// Pending is the future returned by Session.Resolve.
type Pending struct {
	done   chan struct{}
	result Result
}

func completed(r Result) *Pending {
	p := &Pending{done: make(chan struct{}), result: r}
	close(p.done)
	return p
}

// Done is closed once the result is available.
func (p *Pending) Done() <-chan struct{} { return p.done }

// Wait blocks until the result is available or ctx is done.
func (p *Pending) Wait(ctx context.Context) (Result, error) {
	select {
	case <-p.done:
		return p.result, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

// Session applies resolve results to a panel in call order. Each call takes
// the next sequence number and cancels the request of the previous call; a
// completion is rendered only while its sequence number is the latest.
type Session struct {
	resolver *Resolver
	panel    view.Panel

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSession binds resolver to panel.
func NewSession(resolver *Resolver, panel view.Panel) *Session {
	return &Session{resolver: resolver, panel: panel}
}

// Resolve updates the panel for doi. Empty input hides the panel at once and
// returns a completed Pending. Otherwise the loading state is applied before
// any I/O and the lookup runs in the background.
func (s *Session) Resolve(ctx context.Context, doi string) *Pending {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.seq++
	seq := s.seq

	if doi == "" {
		st := Hidden(doi)
		st.Seq = seq
		s.apply(st)
		return completed(Result{State: st, Applied: true})
	}

	loading := Loading(doi)
	loading.Seq = seq
	s.apply(loading)

	lctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	p := &Pending{done: make(chan struct{})}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()
		defer close(p.done)

		st := s.resolver.Lookup(lctx, doi)
		st.Seq = seq
		p.result = Result{State: st, Applied: s.commit(st)}
	}()
	return p
}

// Latest returns the sequence number of the most recent call.
func (s *Session) Latest() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq
}

// Close cancels the in-flight request, if any, and waits for background
// lookups to finish.
func (s *Session) Close() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *Session) commit(st types.DisplayState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st.Seq != s.seq {
		return false
	}
	s.apply(st)
	return true
}

// apply must be called with s.mu held.
func (s *Session) apply(st types.DisplayState) {
	view.Apply(s.panel, view.Render(st))
}
