// Package events carries state changes from background goroutines (download
// workers, search requests) to the single goroutine that owns the UI. Producers
// Post; one consumer drains with Run and applies each event on the UI side.
package events

import (
	"context"
	"sync"

	"github.com/ytget/yt-batch-downloader/internal/model"
)

// DefaultBufferSize is the bus capacity used by the application
const DefaultBufferSize = 256

// Kind identifies the payload of an Event
type Kind int

const (
	KindProgress Kind = iota + 1
	KindSummary
	KindSearchResults
	KindSearchFailed
)

// String returns a short name for logs
func (k Kind) String() string {
	switch k {
	case KindProgress:
		return "progress"
	case KindSummary:
		return "summary"
	case KindSearchResults:
		return "search-results"
	case KindSearchFailed:
		return "search-failed"
	default:
		return "unknown"
	}
}

// Event is one message for the UI
type Event struct {
	Kind    Kind
	BatchID string
	JobID   string

	Progress model.Progress
	Summary  model.AggregateState
	Query    string
	Results  []model.SearchResult
	Err      error
}

// Droppable reports whether the event may be discarded under backpressure.
// Only progress is droppable: the display shows the latest report anyway.
func (e Event) Droppable() bool {
	return e.Kind == KindProgress
}

// Poster is implemented by anything that accepts events for the UI
type Poster interface {
	Post(Event)
}

// Bus is a buffered channel of events with a single consumer
type Bus struct {
	ch      chan Event
	stopped chan struct{}
	once    sync.Once
}

// NewBus creates a bus with the given buffer size
func NewBus(size int) *Bus {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Bus{
		ch:      make(chan Event, size),
		stopped: make(chan struct{}),
	}
}

// Post enqueues ev. Droppable events are discarded when the buffer is full;
// every other event blocks until there is room. Once Run has stopped, Post
// discards events instead of blocking.
func (b *Bus) Post(ev Event) {
	if ev.Droppable() {
		select {
		case b.ch <- ev:
		default:
		}
		return
	}
	select {
	case b.ch <- ev:
	case <-b.stopped:
	}
}

// Run drains the bus and calls apply for each event until ctx is done.
func (b *Bus) Run(ctx context.Context, apply func(Event)) {
	defer b.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-b.ch:
			apply(ev)
		}
	}
}

// Stop releases blocked and future posters. It is safe to call more than once.
func (b *Bus) Stop() {
	b.once.Do(func() { close(b.stopped) })
}

// PosterFunc adapts a function to Poster
type PosterFunc func(Event)

// Post calls f(ev)
func (f PosterFunc) Post(ev Event) {
	f(ev)
}
