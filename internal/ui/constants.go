package ui

import "github.com/ytget/chemviz/internal/dataset"

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconEdit     = "✎"
	IconClose    = "×"
	IconAdd      = "+"
	IconFolder   = "📁"
	IconExport   = "⤓"
	IconOpen     = "⤢"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	SummaryFormat      = "%s: %d" + MiddleDotSeparator + "%s: %.2f" + MiddleDotSeparator + "%s: %.2f" + MiddleDotSeparator + "%s: %.2f"
)

// Layout sizing
const (
	CardChromeHeight float32 = 72
	CardPadding      float32 = 12

	EditorDialogWidth    float32 = 460
	EditorDialogHeight   float32 = 420
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 380

	LogoSize float32 = 32
)

// Dataset file dialog filter
var DatasetExtensions = []string{dataset.ExtJSON, dataset.ExtCSV, dataset.ExtXLSX}
