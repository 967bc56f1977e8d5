package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It renders the menu, the playback surface and the dialogs the shell asks for,
// and forwards menu actions to the shell. All UI strings are localized via
// Localization.
