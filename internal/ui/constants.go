package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconGlobe    = "🌐"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	EntryLineFormat    = "%d. %s (%s)"
)

// Form defaults
const (
	DefaultTimeText = "00:00:00"
)

// Layout sizing
const (
	LogoSize         float32 = 32
	TimeEntryWidth   float32 = 110
	PreviewMinHeight float32 = 140
)

// Preview limits
const (
	MaxPreviewEntries = 10
	MaxTitleRunes     = 80
)
