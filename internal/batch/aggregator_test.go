package batch

import (
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/yt-batch-downloader/internal/model"
)

func TestAggregator_RecordsInAnyOrder(t *testing.T) {
	const total = 5
	a := NewAggregator(total)

	order := rand.Perm(total)
	for i, idx := range order {
		last := a.Record(model.DownloadResult{JobID: fmt.Sprintf("job-%d", idx), Status: model.ResultSuccess})
		assert.Equal(t, i == total-1, last, "record %d", i)
	}

	state := a.State()
	assert.Equal(t, total, state.Total)
	assert.Equal(t, total, state.Completed)
	require.Len(t, state.Results, total)
	for i, idx := range order {
		assert.Equal(t, fmt.Sprintf("job-%d", idx), state.Results[i].JobID)
	}

	select {
	case <-a.Done():
	default:
		t.Fatal("Done must be closed once all results are recorded")
	}
}

func TestAggregator_ExactlyOnceUnderConcurrency(t *testing.T) {
	const total = 64
	a := NewAggregator(total)

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < total; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			status := model.ResultSuccess
			if i%3 == 0 {
				status = model.ResultFailed
			}
			if a.Record(model.DownloadResult{Status: status}) {
				wins.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	state := a.State()
	assert.Equal(t, total, state.Completed)
	assert.Len(t, state.Results, total)
	assert.Equal(t, total, state.Succeeded()+state.Failed())
}

func TestAggregator_RejectsOverflow(t *testing.T) {
	a := NewAggregator(1)
	assert.True(t, a.Record(model.DownloadResult{JobID: "a"}))
	assert.False(t, a.Record(model.DownloadResult{JobID: "b"}))

	state := a.State()
	assert.Equal(t, 1, state.Completed)
	assert.Len(t, state.Results, 1)
}

func TestAggregator_Empty(t *testing.T) {
	a := NewAggregator(0)
	select {
	case <-a.Done():
	default:
		t.Fatal("an empty aggregator is done immediately")
	}
	assert.False(t, a.Record(model.DownloadResult{}))
}

func TestAggregator_StateIsSnapshot(t *testing.T) {
	a := NewAggregator(2)
	a.Record(model.DownloadResult{JobID: "a"})

	snap := a.State()
	snap.Results[0].JobID = "mutated"

	assert.Equal(t, "a", a.State().Results[0].JobID)
}
