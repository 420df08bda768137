package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// OutputNameTemplate names files after the video title plus original extension
const OutputNameTemplate = "%(title)s.%(ext)s"

// UnknownTitle is recorded when a job fails before its title is resolved
const UnknownTitle = "Unknown title"

// DownloadJob is one URL-to-file download attempt. It is immutable once created.
type DownloadJob struct {
	ID        string
	BatchID   string
	URL       string
	Quality   QualityPreset
	OutputDir string
}

// OutputTemplate returns the output path template handed to the engine
func (j DownloadJob) OutputTemplate() string {
	return filepath.Join(j.OutputDir, OutputNameTemplate)
}

// DownloadResult is the outcome of one job
type DownloadResult struct {
	JobID      string
	Title      string
	URL        string
	Status     ResultStatus
	Reason     string
	FinishedAt time.Time
}

// StatusText returns "Success" or "Failed: <reason>"
func (r DownloadResult) StatusText() string {
	if r.Status == ResultSuccess {
		return ResultSuccess.String()
	}
	return fmt.Sprintf("%s: %s", ResultFailed, r.Reason)
}

// DisplayTitle returns the title, falling back to the URL when unknown
func (r DownloadResult) DisplayTitle() string {
	title := strings.TrimSpace(r.Title)
	if title != "" && title != UnknownTitle {
		return title
	}
	if r.URL != "" {
		return r.URL
	}
	return UnknownTitle
}

// AggregateState tracks batch completion.
// Completed never exceeds Total and len(Results) == Completed.
type AggregateState struct {
	Total     int
	Completed int
	Results   []DownloadResult
}

// IsComplete returns true once every job has recorded a result
func (s AggregateState) IsComplete() bool {
	return s.Total > 0 && s.Completed == s.Total
}

// Succeeded returns the number of successful results
func (s AggregateState) Succeeded() int {
	n := 0
	for _, r := range s.Results {
		if r.Status == ResultSuccess {
			n++
		}
	}
	return n
}

// Failed returns the number of failed results
func (s AggregateState) Failed() int {
	return len(s.Results) - s.Succeeded()
}
