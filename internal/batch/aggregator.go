package batch

import (
	"sync"

	"github.com/ytget/yt-batch-downloader/internal/model"
)

// Aggregator records job results for one batch. It is owned by the batch and
// handed to every worker at spawn time; all access goes through one mutex.
type Aggregator struct {
	mu        sync.Mutex
	total     int
	completed int
	results   []model.DownloadResult
	done      chan struct{}
}

// NewAggregator creates an aggregator expecting total results
func NewAggregator(total int) *Aggregator {
	if total < 0 {
		total = 0
	}
	a := &Aggregator{
		total:   total,
		results: make([]model.DownloadResult, 0, total),
		done:    make(chan struct{}),
	}
	if total == 0 {
		close(a.done)
	}
	return a
}

// Record appends r and increments the completed counter. It returns true for
// exactly one call: the one that makes completed equal total. Results past
// the total are rejected and return false.
func (a *Aggregator) Record(r model.DownloadResult) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.completed >= a.total {
		return false
	}

	a.results = append(a.results, r)
	a.completed++

	if a.completed == a.total {
		close(a.done)
		return true
	}
	return false
}

// State returns a snapshot copy of the aggregate
func (a *Aggregator) State() model.AggregateState {
	a.mu.Lock()
	defer a.mu.Unlock()

	results := make([]model.DownloadResult, len(a.results))
	copy(results, a.results)
	return model.AggregateState{
		Total:     a.total,
		Completed: a.completed,
		Results:   results,
	}
}

// Done is closed once every expected result has been recorded
func (a *Aggregator) Done() <-chan struct{} {
	return a.done
}
