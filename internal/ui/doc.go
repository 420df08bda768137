// Package ui contains the Fyne desktop interface: URL input, quality and
// folder pickers, live progress, the post-batch summary window, the optional
// search panel and settings. Widgets are only touched from the UI goroutine;
// background work reaches them as events applied through RootUI.Apply.
package ui
