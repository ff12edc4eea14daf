package style

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Status of a block or of the rule set
type Status string

const (
	StatusInstalled Status = "installed" // Block is listed in the project config
	StatusAvailable Status = "available" // Block is in the registry only
	StatusMissing   Status = "missing"   // Block is installed but gone from the registry
	StatusCurrent   Status = "current"   // Rule set matches the stored hash
	StatusStale     Status = "stale"     // Rule set differs from the stored hash
)

// StatusStyle returns the badge style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusInstalled, StatusCurrent:
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	case StatusStale:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case StatusMissing:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// Badge renders status padded to a fixed width so columns line up.
func Badge(status Status) string {
	return StatusStyle(status).Sprint(fmt.Sprintf("%-9s", status))
}
