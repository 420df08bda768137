// Package platform contains OS integration used by the downloader:
// directory helpers, external tool lookup (ffmpeg) and opening folders in the
// system file manager.
package platform
