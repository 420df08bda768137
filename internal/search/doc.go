// Package search is the optional search assistant: it queries YouTube for
// videos, ranks them by view count and renders list rows whose URLs can be
// inserted into the download input.
package search
