package batch

import "errors"

var (
	// ErrNoURLs indicates that the input contained no non-blank lines.
	ErrNoURLs = errors.New("no URLs to download")
	// ErrNoQuality indicates that no quality preset was selected.
	ErrNoQuality = errors.New("no quality selected")
	// ErrNoOutputDir indicates that the output folder is blank.
	ErrNoOutputDir = errors.New("no download location selected")
	// ErrOutputDir indicates that the output folder could not be created.
	ErrOutputDir = errors.New("cannot create download location")
)
