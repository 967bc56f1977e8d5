package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconPlay   = "▶"
	IconFolder = "📁"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	ResolutionFormat   = "%d×%d"
)

// Window sizing
const (
	WindowWidth  float32 = 800
	WindowHeight float32 = 600
)

// Playback surface sizing
const (
	PreviewMinWidth  float32 = 480
	PreviewMinHeight float32 = 270
)

// Dialog sizing
const (
	ProgressDialogWidth float32 = 380
	SettingsDialogWidth float32 = 520
	SettingsDialogHeight float32 = 320
)

// Progress bar range; the bar shows whole percentages
const (
	ProgressMax = 100
)

// Timings
const (
	PreviewTimeout          = 20 * time.Second
	ProgressCompletedLinger = 600 * time.Millisecond
)
