package service

import (
	"context"
	"sync"
)

// searchTracker keeps a cancel func for every search still waiting on the
// provider.
type searchTracker struct {
	inFlight       map[uint64]context.CancelFunc
	nextID         uint64
	cancelPrevious bool
	mu             sync.Mutex
}

func newSearchTracker(cancelPrevious bool) *searchTracker {
	return &searchTracker{
		inFlight:       make(map[uint64]context.CancelFunc),
		cancelPrevious: cancelPrevious,
	}
}

// begin registers a new search and returns its context together with the
// func that must be called once the search is over.
func (t *searchTracker) begin(parent context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(parent)

	t.mu.Lock()
	if t.cancelPrevious {
		for id, cancelPrior := range t.inFlight {
			cancelPrior()
			delete(t.inFlight, id)
		}
	}
	id := t.nextID
	t.nextID++
	t.inFlight[id] = cancel
	t.mu.Unlock()

	return ctx, func() {
		t.mu.Lock()
		delete(t.inFlight, id)
		t.mu.Unlock()
		cancel()
	}
}

func (t *searchTracker) count() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.inFlight)
}

func (t *searchTracker) shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for id, cancel := range t.inFlight {
		cancel()
		delete(t.inFlight, id)
	}
}
