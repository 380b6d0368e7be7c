package tui

// Color constants for the safehours TUI theme
const (
	// Base Colors
	ColorCardBackground = "#F0F0F0" // Light grey metric box
	ColorBorder         = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Field labels, user input, titles
	ColorSecondaryText = "#B1B8C7" // Muted grey
	ColorPlaceholder   = "#B1B8C7" // Same as secondary
	ColorBoxText       = "#1F2330" // Text on light metric boxes
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors
	ColorAccentMain   = "#2563EB" // Logo, active borders
	ColorAccentBright = "#60A5FA" // Highlights, current field

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Success, confirmations
	ColorWarning = "#F59E0B" // Warnings

	// Alert boxes pulse between these two
	ColorAlert       = "#8B0000" // darkred
	ColorAlertBright = "#C81E1E"
	ColorAlertText   = "#FFFFFF"
)
