package search

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/kataras/golog"
	"github.com/ytget/ytdlp/client"
	"golang.org/x/net/publicsuffix"

	"github.com/ytget/yt-batch-downloader/internal/logging"
	"github.com/ytget/yt-batch-downloader/internal/model"
)

const (
	searchURL            = "https://www.youtube.com/youtubei/v1/search"
	watchURLPrefix       = "https://www.youtube.com/watch?v="
	clientNameWEB        = "WEB"
	clientCodeWEB        = "1"
	defaultClientVersion = "2.20250312.04.00"
	// Restricts results to videos
	videosOnlyParams     = "EgIQAQ=="
	defaultSearchTimeout = 15 * time.Second
)

// InnertubeConfig configures the YouTube search client
type InnertubeConfig struct {
	Timeout   time.Duration
	UserAgent string
	ProxyURL  string
	// Endpoint overrides the search URL, for tests
	Endpoint string
	Logger   *golog.Logger
}

// Innertube searches YouTube through its internal web API
type Innertube struct {
	httpClient    *http.Client
	endpoint      string
	clientVersion string
	userAgent     string
	logger        *golog.Logger
}

// NewInnertube creates a search client with a cookie jar
func NewInnertube(cfg InnertubeConfig) (*Innertube, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultSearchTimeout
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = searchURL
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}

	c := client.NewWith(client.Config{
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
		ProxyURL:  cfg.ProxyURL,
	})

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	c.HTTPClient.Jar = jar

	return &Innertube{
		httpClient:    c.HTTPClient,
		endpoint:      cfg.Endpoint,
		clientVersion: defaultClientVersion,
		userAgent:     c.UserAgent,
		logger:        cfg.Logger,
	}, nil
}

// Search posts query and returns up to limit video results in page order
func (it *Innertube) Search(ctx context.Context, query string, limit int) ([]model.SearchResult, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	reqBody := map[string]any{
		"context": map[string]any{
			"client": map[string]any{
				"clientName":    clientNameWEB,
				"clientVersion": it.clientVersion,
				"hl":            "en",
				"gl":            "US",
			},
		},
		"query":  query,
		"params": videosOnlyParams,
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	resp, err := it.post(ctx, bodyBytes)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := readBody(resp)
	if err != nil {
		return nil, err
	}

	root, err := decodeOrdered(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	var results []model.SearchResult
	collectVideoRenderers(root, &results, limit)
	it.logger.Debugf("Innertube returned %d video(s) for %q", len(results), query)
	return results, nil
}

// post sends the search body once. Failures are reported to the caller and
// never retried.
func (it *Innertube) post(ctx context.Context, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, it.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	it.setHeaders(req)

	resp, err := it.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("search request failed: HTTP %d", resp.StatusCode)
	}
	return resp, nil
}

func (it *Innertube) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept-Encoding", "gzip, br")
	req.Header.Set("Origin", "https://www.youtube.com")
	req.Header.Set("Referer", "https://www.youtube.com/")
	req.Header.Set("X-YouTube-Client-Name", clientCodeWEB)
	req.Header.Set("X-YouTube-Client-Version", it.clientVersion)
	if it.userAgent != "" {
		req.Header.Set("User-Agent", it.userAgent)
	}
}

// readBody decodes gzip and brotli bodies by Content-Encoding
func readBody(resp *http.Response) ([]byte, error) {
	var reader io.Reader = resp.Body
	switch strings.ToLower(resp.Header.Get("Content-Encoding")) {
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gz.Close()
		reader = gz
	case "br":
		reader = brotli.NewReader(resp.Body)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}
	return body, nil
}

// collectVideoRenderers walks the response tree depth-first in document
// order and appends one result per videoRenderer node until limit is reached
func collectVideoRenderers(node any, out *[]model.SearchResult, limit int) {
	if len(*out) >= limit {
		return
	}
	switch v := node.(type) {
	case object:
		if r, ok := v.get("videoRenderer"); ok {
			if ro, ok := r.(object); ok {
				if res, ok := videoFromRenderer(ro); ok {
					*out = append(*out, res)
				}
				return
			}
		}
		for _, f := range v {
			collectVideoRenderers(f.value, out, limit)
			if len(*out) >= limit {
				return
			}
		}
	case []any:
		for _, val := range v {
			collectVideoRenderers(val, out, limit)
			if len(*out) >= limit {
				return
			}
		}
	}
}

func videoFromRenderer(r object) (model.SearchResult, bool) {
	idNode, _ := r.get("videoId")
	id, _ := idNode.(string)
	if id == "" {
		return model.SearchResult{}, false
	}
	title, _ := r.get("title")
	length, _ := r.get("lengthText")
	views, _ := r.get("viewCountText")
	return model.SearchResult{
		Title:    textOf(title),
		URL:      watchURLPrefix + id,
		Duration: NormalizeDuration(textOf(length)),
		ViewText: textOf(views),
	}, true
}

// textOf reads {"simpleText": ...} or joins {"runs": [{"text": ...}]}
func textOf(node any) string {
	m, ok := node.(object)
	if !ok {
		return ""
	}
	if simple, _ := m.get("simpleText"); simple != nil {
		if s, ok := simple.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	runsNode, _ := m.get("runs")
	runs, _ := runsNode.([]any)
	var b strings.Builder
	for _, run := range runs {
		if rm, ok := run.(object); ok {
			if txt, _ := rm.get("text"); txt != nil {
				if s, ok := txt.(string); ok {
					b.WriteString(s)
				}
			}
		}
	}
	return strings.TrimSpace(b.String())
}
