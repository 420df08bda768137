package model

import "time"

// ProgressPhase is the phase reported by an engine
type ProgressPhase string

const (
	PhaseDownloading ProgressPhase = "downloading"
	PhaseFinished    ProgressPhase = "finished"
)

// Progress is a byte-level transfer report for a single job.
// Zero TotalBytes, Speed or ETA mean "unknown".
type Progress struct {
	JobID           string
	Phase           ProgressPhase
	Title           string
	DownloadedBytes int64
	TotalBytes      int64
	Speed           float64 // bytes per second
	ETA             time.Duration
}

// Percent returns downloaded/total*100 and false when the total is unknown
func (p Progress) Percent() (float64, bool) {
	if p.TotalBytes <= 0 {
		return 0, false
	}
	return float64(p.DownloadedBytes) / float64(p.TotalBytes) * 100, true
}

// SearchResult is one row returned by the search assistant
type SearchResult struct {
	Title    string
	URL      string
	Duration string
	ViewText string
	Views    int64
}
