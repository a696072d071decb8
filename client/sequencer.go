package client

import (
	"context"
	"sync"
)

// Sequencer enforces latest-request-wins: beginning a request cancels the
// one before it, and a Ticket reports whether its request is still the
// newest so stale responses can be dropped.
type Sequencer struct {
	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

type Ticket struct {
	s   *Sequencer
	seq uint64
}

// Begin starts a new request. The returned context is cancelled as soon as a
// newer request begins.
func (s *Sequencer) Begin(ctx context.Context) (context.Context, Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.seq++
	return ctx, Ticket{s: s, seq: s.seq}
}

// Current reports whether no newer request has begun since t.
func (t Ticket) Current() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	return t.s.seq == t.seq
}

// Done releases the context of t when it is still the newest request.
func (t Ticket) Done() {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.s.seq == t.seq && t.s.cancel != nil {
		t.s.cancel()
		t.s.cancel = nil
	}
}
