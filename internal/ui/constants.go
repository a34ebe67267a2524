package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconLanguage = "🌐"
	IconError    = "❌"
)

// Text fragments
const (
	DashPlaceholder    = "—"
	MiddleDotSeparator = " · "
)

// Generated button naming
const (
	DefaultButtonNamePrefix = "btnCategory"
)

// Layout sizing (category buttons / product list)
const (
	ButtonHeight      float32 = 32
	ButtonPaneWidth   float32 = 200
	ListMinWidth      float32 = 320
	StatusLabelHeight float32 = 28
)

// Dialog sizing
const (
	SettingsDialogWidth  = 460
	SettingsDialogHeight = 420
)
