package config

// Layout constants.
const (
	// DefaultDialRows is the dial height in terminal rows when the window
	// size is not yet known.
	DefaultDialRows = 21

	// MinDialRows is the smallest dial that still fits the labels.
	MinDialRows = 13

	// MaxDialRows caps the dial on very tall terminals.
	MaxDialRows = 31

	// ChromeRows is the number of rows used by everything except the dial.
	ChromeRows = 9

	// ProgressBarWidth is the default width of the linear progress bar.
	ProgressBarWidth = 40

	// MinProgressBarWidth is the narrowest progress bar rendered.
	MinProgressBarWidth = 10
)

// Input constraints.
const (
	// MaxDurationInputLength limits the duration input field.
	MaxDurationInputLength = 3
)
