// Package style holds the terminal styles used by the devw CLI: lipgloss
// text styles built from DefaultPalette, pterm status badges and the color
// mode switch shared by both.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	MutedStyle   = lipgloss.NewStyle().Foreground(DefaultPalette.Muted)
	SuccessStyle = lipgloss.NewStyle().Foreground(DefaultPalette.Success).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(DefaultPalette.Failure).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(DefaultPalette.Attention).Bold(true)
	InfoStyle    = lipgloss.NewStyle().Foreground(DefaultPalette.Info)

	BlockStyle = lipgloss.NewStyle().Foreground(DefaultPalette.Accent).Bold(true)
	PathStyle  = lipgloss.NewStyle().Foreground(DefaultPalette.Subtle).Italic(true)
)

// Indicators are rendered on each call so they follow the color mode set by
// Configure.
func SuccessIndicator() string { return SuccessStyle.Render("✓") }
func ErrorIndicator() string   { return ErrorStyle.Render("✗") }
func WarningIndicator() string { return WarningStyle.Render("!") }
func InfoIndicator() string    { return InfoStyle.Render("•") }
