package model

import "strings"

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconHighImpact     = "▲" // High footprint
	IconModerateImpact = "◆" // Moderate footprint
	IconLowImpact      = "●" // Low footprint
	IconMissing        = "✗" // No data from the service
	IconAlternative    = "→" // Alternative product entry
	IconOK             = "✓" // Backend reachable
)

// ImpactBadge picks the severity icon for a footprint label.
func ImpactBadge(label string) string {
	switch {
	case strings.HasPrefix(label, "High"):
		return IconHighImpact
	case strings.HasPrefix(label, "Moderate"):
		return IconModerateImpact
	case strings.HasPrefix(label, "Low"):
		return IconLowImpact
	}
	return IconMissing
}
