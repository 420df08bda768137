package search

import (
	"context"
	"errors"
	"strings"

	"github.com/kataras/golog"
	"golang.org/x/sync/singleflight"

	"github.com/ytget/yt-batch-downloader/internal/events"
	"github.com/ytget/yt-batch-downloader/internal/logging"
	"github.com/ytget/yt-batch-downloader/internal/model"
)

// DefaultLimit is how many results a search asks for
const DefaultLimit = 10

// ErrEmptyQuery is returned for a blank query
var ErrEmptyQuery = errors.New("enter a search query")

// Provider fetches raw search results. Views may be left zero; Service fills
// them from ViewText.
type Provider interface {
	Search(ctx context.Context, query string, limit int) ([]model.SearchResult, error)
}

// Service runs searches against a Provider and ranks the results
type Service struct {
	provider Provider
	limit    int
	logger   *golog.Logger
	group    singleflight.Group
}

// NewService creates a search service. A nil logger discards output.
func NewService(provider Provider, logger *golog.Logger) *Service {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{
		provider: provider,
		limit:    DefaultLimit,
		logger:   logger,
	}
}

// Search returns up to DefaultLimit results for query, most viewed first.
// Identical queries in flight at the same time share one request.
func (s *Service) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	v, err, shared := s.group.Do(query, func() (any, error) {
		s.logger.Debugf("Searching for %q", query)
		raw, err := s.provider.Search(ctx, query, s.limit)
		if err != nil {
			return nil, err
		}
		if len(raw) > s.limit {
			raw = raw[:s.limit]
		}
		return Rank(raw), nil
	})
	if err != nil {
		s.logger.Warnf("Search %q failed: %v", query, err)
		return nil, err
	}
	if shared {
		s.logger.Debugf("Search %q shared an in-flight request", query)
	}

	results := v.([]model.SearchResult)
	out := make([]model.SearchResult, len(results))
	copy(out, results)
	return out, nil
}

// SearchAsync runs Search on its own goroutine and posts the outcome
func (s *Service) SearchAsync(ctx context.Context, query string, poster events.Poster) {
	go func() {
		results, err := s.Search(ctx, query)
		if err != nil {
			poster.Post(events.Event{Kind: events.KindSearchFailed, Query: query, Err: err})
			return
		}
		s.logger.Infof("Search %q returned %d result(s)", query, len(results))
		poster.Post(events.Event{Kind: events.KindSearchResults, Query: query, Results: results})
	}()
}
