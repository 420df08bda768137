package search

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ytget/yt-batch-downloader/internal/model"
)

// NotAvailable fills in a missing duration or view count in a row
const NotAvailable = "N/A"

// ParseViewCount turns view text such as "1,234 views" into a number.
// "No views" and anything unparseable count as 0.
func ParseViewCount(text string) int64 {
	s := strings.TrimSpace(text)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, " views")
	s = strings.TrimSuffix(s, " view")

	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Rank fills Views from ViewText and sorts by views, most viewed first.
// Ties keep their original order. The input slice is not modified.
func Rank(results []model.SearchResult) []model.SearchResult {
	ranked := make([]model.SearchResult, len(results))
	copy(ranked, results)
	for i := range ranked {
		ranked[i].Views = ParseViewCount(ranked[i].ViewText)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Views > ranked[j].Views
	})
	return ranked
}

// Row renders a result as "title [duration] (views)"
func Row(r model.SearchResult) string {
	duration := strings.TrimSpace(r.Duration)
	if duration == "" {
		duration = NotAvailable
	}
	views := strings.TrimSpace(r.ViewText)
	if views == "" {
		views = NotAvailable
	}
	return fmt.Sprintf("%s [%s] (%s)", r.Title, duration, views)
}

// Rows renders every result; index i of the returned slice belongs to results[i]
func Rows(results []model.SearchResult) []string {
	rows := make([]string, len(results))
	for i, r := range results {
		rows[i] = Row(r)
	}
	return rows
}

// InsertURL appends url on its own line unless the trimmed text already
// contains it as a substring. It reports whether text changed.
func InsertURL(text, url string) (string, bool) {
	url = strings.TrimSpace(url)
	if url == "" || strings.Contains(strings.TrimSpace(text), url) {
		return text, false
	}
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text + url + "\n", true
}
