package batch

import (
	"github.com/ytget/yt-batch-downloader/internal/model"
)

// Batch is the handle for one dispatched request. Each batch owns its
// aggregator, so workers from an older batch can never touch a newer one.
type Batch struct {
	ID   string
	jobs []model.DownloadJob
	agg  *Aggregator
}

func newBatch(id string, jobs []model.DownloadJob) *Batch {
	return &Batch{
		ID:   id,
		jobs: jobs,
		agg:  NewAggregator(len(jobs)),
	}
}

// Jobs returns a copy of the batch jobs in input order
func (b *Batch) Jobs() []model.DownloadJob {
	jobs := make([]model.DownloadJob, len(b.jobs))
	copy(jobs, b.jobs)
	return jobs
}

// Aggregate returns a snapshot of the batch results so far
func (b *Batch) Aggregate() model.AggregateState {
	return b.agg.State()
}

// State reports Running until every job has recorded a result
func (b *Batch) State() model.BatchState {
	select {
	case <-b.agg.Done():
		return model.BatchStateComplete
	default:
		return model.BatchStateRunning
	}
}

// Done is closed when the last result is recorded
func (b *Batch) Done() <-chan struct{} {
	return b.agg.Done()
}

// Wait blocks until the batch completes
func (b *Batch) Wait() model.AggregateState {
	<-b.agg.Done()
	return b.agg.State()
}
