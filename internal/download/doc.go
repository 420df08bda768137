package download

// Package download implements the download engines a job is handed to: yt-dlp
// (via github.com/lrstanley/go-ytdlp) for full format negotiation, merging and
// audio extraction, and the native Go engine (github.com/ytget/ytdlp/v2) for
// single-stream downloads without external binaries.
