package search

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/yt-batch-downloader/internal/events"
	"github.com/ytget/yt-batch-downloader/internal/model"
)

type fakeProvider struct {
	results []model.SearchResult
	err     error
	delay   time.Duration
	calls   atomic.Int32
	limit   atomic.Int32
}

func (p *fakeProvider) Search(ctx context.Context, query string, limit int) ([]model.SearchResult, error) {
	p.calls.Add(1)
	p.limit.Store(int32(limit))
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	return p.results, p.err
}

func TestService_Search(t *testing.T) {
	provider := &fakeProvider{results: []model.SearchResult{
		{Title: "a", URL: "https://www.youtube.com/watch?v=a", ViewText: "1,234 views"},
		{Title: "b", URL: "https://www.youtube.com/watch?v=b", ViewText: "500 views"},
		{Title: "c", URL: "https://www.youtube.com/watch?v=c", ViewText: "10,000 views"},
	}}
	s := NewService(provider, nil)

	results, err := s.Search(context.Background(), "  lofi  ")
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "c", results[0].Title)
	assert.Equal(t, "a", results[1].Title)
	assert.Equal(t, "b", results[2].Title)
	assert.Equal(t, int32(DefaultLimit), provider.limit.Load())
}

func TestService_EmptyQuery(t *testing.T) {
	provider := &fakeProvider{}
	s := NewService(provider, nil)

	_, err := s.Search(context.Background(), " \t ")
	assert.ErrorIs(t, err, ErrEmptyQuery)
	assert.Zero(t, provider.calls.Load())
}

func TestService_ProviderError(t *testing.T) {
	s := NewService(&fakeProvider{err: errors.New("network down")}, nil)

	results, err := s.Search(context.Background(), "cats")
	assert.EqualError(t, err, "network down")
	assert.Nil(t, results)
}

func TestService_TruncatesToLimit(t *testing.T) {
	many := make([]model.SearchResult, 15)
	s := NewService(&fakeProvider{results: many}, nil)

	results, err := s.Search(context.Background(), "x")
	require.NoError(t, err)
	assert.Len(t, results, DefaultLimit)
}

func TestService_CollapsesConcurrentQueries(t *testing.T) {
	provider := &fakeProvider{
		results: []model.SearchResult{{Title: "only", ViewText: "1 view"}},
		delay:   100 * time.Millisecond,
	}
	s := NewService(provider, nil)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results, err := s.Search(context.Background(), "same")
			assert.NoError(t, err)
			assert.Len(t, results, 1)
		}()
	}
	wg.Wait()

	assert.Less(t, provider.calls.Load(), int32(5))
}

func TestService_SearchAsync(t *testing.T) {
	got := make(chan events.Event, 2)
	poster := events.PosterFunc(func(ev events.Event) { got <- ev })

	ok := NewService(&fakeProvider{results: []model.SearchResult{{Title: "hit"}}}, nil)
	ok.SearchAsync(context.Background(), "q", poster)

	select {
	case ev := <-got:
		assert.Equal(t, events.KindSearchResults, ev.Kind)
		assert.Equal(t, "q", ev.Query)
		require.Len(t, ev.Results, 1)
	case <-time.After(2 * time.Second):
		t.Fatal("no search event")
	}

	bad := NewService(&fakeProvider{err: errors.New("boom")}, nil)
	bad.SearchAsync(context.Background(), "q", poster)

	select {
	case ev := <-got:
		assert.Equal(t, events.KindSearchFailed, ev.Kind)
		assert.EqualError(t, ev.Err, "boom")
	case <-time.After(2 * time.Second):
		t.Fatal("no failure event")
	}
}
