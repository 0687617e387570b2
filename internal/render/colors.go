package render

import "github.com/charmbracelet/lipgloss"

// Palette colors, keyed by the role they play in outline/table/gantt
// output rather than by hue, so a future theme swap only touches this
// file.
var (
	ColorAccent = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}
	ColorWarn   = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	ColorPass   = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}
	ColorMuted  = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	ColorTodo   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	ColorDoing  = ColorAccent
	ColorDone   = ColorPass

	ColorWeekend  = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#27272A"}
	ColorHoliday  = lipgloss.AdaptiveColor{Light: "#FEF3C7", Dark: "#422006"}
	ColorToday    = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	ColorMilestone = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}
	ColorCursor   = lipgloss.AdaptiveColor{Light: "#E0E7FF", Dark: "#312E81"}
)

// huePalette gives each node a stable, distinguishable hue for the
// Gantt's dependency cue (spec §4.5: "coloring the successor's left
// edge to match the predecessor's hue").
var huePalette = []lipgloss.AdaptiveColor{
	{Light: "#DC2626", Dark: "#F87171"},
	{Light: "#D97706", Dark: "#FBBF24"},
	{Light: "#059669", Dark: "#34D399"},
	{Light: "#2563EB", Dark: "#60A5FA"},
	{Light: "#7C3AED", Dark: "#A78BFA"},
	{Light: "#DB2777", Dark: "#F472B6"},
}

// HueColor maps a node id to a stable entry of huePalette so the same
// predecessor always cues the same color across a render.
func HueColor(id string) lipgloss.AdaptiveColor {
	var h uint32
	for i := 0; i < len(id); i++ {
		h = h*31 + uint32(id[i])
	}
	return huePalette[h%uint32(len(huePalette))]
}

// StatusColor returns the foreground color a status renders as.
func StatusColor(status string) lipgloss.AdaptiveColor {
	switch status {
	case "DONE":
		return ColorDone
	case "IN_PROGRESS":
		return ColorDoing
	default:
		return ColorTodo
	}
}
