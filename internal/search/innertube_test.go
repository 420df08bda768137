package search

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/yt-batch-downloader/internal/events"
)

const searchResponse = `{
  "contents": {
    "twoColumnSearchResultsRenderer": {
      "primaryContents": {
        "sectionListRenderer": {
          "contents": [
            {"itemSectionRenderer": {"contents": [
              {"videoRenderer": {
                "videoId": "aaa",
                "title": {"runs": [{"text": "First "}, {"text": "Video"}]},
                "lengthText": {"simpleText": "4:13"},
                "viewCountText": {"simpleText": "1,234 views"}
              }},
              {"channelRenderer": {"channelId": "UC1"}},
              {"videoRenderer": {
                "videoId": "bbb",
                "title": {"runs": [{"text": "Live Stream"}]},
                "viewCountText": {"runs": [{"text": "321"}, {"text": " watching"}]}
              }},
              {"videoRenderer": {"title": {"runs": [{"text": "no id"}]}}},
              {"videoRenderer": {
                "videoId": "ccc",
                "title": {"simpleText": "Third"},
                "lengthText": {"simpleText": "1:02:03"},
                "viewCountText": {"simpleText": "No views"}
              }}
            ]}}
          ]
        }
      }
    }
  }
}`

func newTestInnertube(t *testing.T, url string) *Innertube {
	t.Helper()
	it, err := NewInnertube(InnertubeConfig{Endpoint: url, Timeout: 5 * time.Second})
	require.NoError(t, err)
	return it
}

func TestInnertube_Search(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "1", r.Header.Get("X-YouTube-Client-Name"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = io.WriteString(w, searchResponse)
	}))
	defer server.Close()

	results, err := newTestInnertube(t, server.URL).Search(context.Background(), "golang", 10)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "golang", body["query"])
	client := body["context"].(map[string]any)["client"].(map[string]any)
	assert.Equal(t, "WEB", client["clientName"])

	assert.Equal(t, "First Video", results[0].Title)
	assert.Equal(t, "https://www.youtube.com/watch?v=aaa", results[0].URL)
	assert.Equal(t, "4:13", results[0].Duration)
	assert.Equal(t, "1,234 views", results[0].ViewText)

	assert.Equal(t, "Live Stream", results[1].Title)
	assert.Equal(t, NotAvailable, results[1].Duration)
	assert.Equal(t, "321 watching", results[1].ViewText)

	assert.Equal(t, "Third", results[2].Title)
	assert.Equal(t, "1:02:03", results[2].Duration)
}

func TestInnertube_Limit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, searchResponse)
	}))
	defer server.Close()

	results, err := newTestInnertube(t, server.URL).Search(context.Background(), "x", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "https://www.youtube.com/watch?v=aaa", results[0].URL)
}

func TestInnertube_CompressedResponses(t *testing.T) {
	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	_, _ = gw.Write([]byte(searchResponse))
	require.NoError(t, gw.Close())

	var br bytes.Buffer
	bw := brotli.NewWriter(&br)
	_, _ = bw.Write([]byte(searchResponse))
	require.NoError(t, bw.Close())

	for encoding, payload := range map[string][]byte{"gzip": gz.Bytes(), "br": br.Bytes()} {
		t.Run(encoding, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Encoding", encoding)
				_, _ = w.Write(payload)
			}))
			defer server.Close()

			results, err := newTestInnertube(t, server.URL).Search(context.Background(), "x", 10)
			require.NoError(t, err)
			assert.Len(t, results, 3)
		})
	}
}

func TestInnertube_ServerErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = io.WriteString(w, searchResponse)
	}))
	defer server.Close()

	svc := NewService(newTestInnertube(t, server.URL), nil)
	results, err := svc.Search(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 503")
	assert.Empty(t, results)
	assert.Equal(t, int32(1), calls.Load())

	got := make(chan events.Event, 1)
	svc.SearchAsync(context.Background(), "x", events.PosterFunc(func(ev events.Event) { got <- ev }))
	select {
	case ev := <-got:
		assert.Equal(t, events.KindSearchResults, ev.Kind, "a new search is a new request")
	case <-time.After(2 * time.Second):
		t.Fatal("no search event")
	}
	assert.Equal(t, int32(2), calls.Load())
}

func TestInnertube_NetworkErrorIsReported(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	got := make(chan events.Event, 1)
	NewService(newTestInnertube(t, url), nil).
		SearchAsync(context.Background(), "x", events.PosterFunc(func(ev events.Event) { got <- ev }))

	select {
	case ev := <-got:
		assert.Equal(t, events.KindSearchFailed, ev.Kind)
		assert.ErrorContains(t, ev.Err, "search request failed")
	case <-time.After(5 * time.Second):
		t.Fatal("no search event")
	}
}

func TestInnertube_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"client error", http.StatusForbidden, "", "HTTP 403"},
		{"server error", http.StatusServiceUnavailable, "", "HTTP 503"},
		{"bad json", http.StatusOK, "{not json", "failed to parse search response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer server.Close()

			_, err := newTestInnertube(t, server.URL).Search(context.Background(), "x", 10)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestInnertube_EmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"contents": {}}`)
	}))
	defer server.Close()

	results, err := newTestInnertube(t, server.URL).Search(context.Background(), "x", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestInnertube_KeepsPageOrder(t *testing.T) {
	const page = `{
  "onResponseReceivedCommands": [{"videoRenderer": {"videoId": "first", "title": {"simpleText": "First"}}}],
  "contents": {"videoRenderer": {"videoId": "second", "title": {"simpleText": "Second"}}},
  "adSlots": {"videoRenderer": {"videoId": "third", "title": {"simpleText": "Third"}}}
}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, page)
	}))
	defer server.Close()

	results, err := newTestInnertube(t, server.URL).Search(context.Background(), "x", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "First", results[0].Title)
	assert.Equal(t, "Second", results[1].Title)
}
