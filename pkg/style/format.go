package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// ColorEnabled reports whether styled output should be written to f.
// NO_COLOR, a non-terminal or an ASCII-only terminal disable colour.
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// Configure switches lipgloss and pterm to plain output when f cannot
// display colour.
func Configure(f *os.File) {
	if ColorEnabled(f) {
		return
	}
	DisableColor()
}

// DisableColor forces plain output for both renderers.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
	pterm.DisableStyling()
}
