package model

// Package model defines domain data structures shared across the app: download
// jobs and their results, quality presets, batch aggregate state, progress
// reports, and search results. Values are plain data; synchronization lives in
// the packages that own them.
