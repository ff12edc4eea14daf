package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Color modes accepted by Configure
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// UseColor decides whether output to out should be styled. In auto mode
// NO_COLOR, a non-terminal or an ASCII-only terminal disable styling.
func UseColor(mode string, out *os.File) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if out == nil || (!isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd())) {
		return false
	}
	return termenv.NewOutput(out).ColorProfile() != termenv.Ascii
}

// Configure applies the color mode to both lipgloss and pterm and reports
// whether styling is on.
func Configure(mode string, out *os.File) bool {
	color := UseColor(mode, out)
	if color {
		if mode == ColorAlways {
			lipgloss.SetColorProfile(termenv.ANSI256)
		}
		pterm.EnableStyling()
	} else {
		lipgloss.SetColorProfile(termenv.Ascii)
		pterm.DisableStyling()
	}
	return color
}
