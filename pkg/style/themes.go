package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette assigns a color to each semantic role. Every color has a light and
// a dark variant; lipgloss picks one from the terminal background.
type Palette struct {
	Accent    lipgloss.AdaptiveColor // block ids
	Subtle    lipgloss.AdaptiveColor // paths
	Success   lipgloss.AdaptiveColor
	Failure   lipgloss.AdaptiveColor
	Attention lipgloss.AdaptiveColor
	Info      lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
}

// DefaultPalette is the palette the package styles are built from.
var DefaultPalette = Palette{
	Accent:    lipgloss.AdaptiveColor{Light: "#0F766E", Dark: "#2DD4BF"},
	Subtle:    lipgloss.AdaptiveColor{Light: "#475569", Dark: "#94A3B8"},
	Success:   lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"},
	Failure:   lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"},
	Attention: lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"},
	Info:      lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"},
	Muted:     lipgloss.AdaptiveColor{Light: "#64748B", Dark: "#64748B"},
}
