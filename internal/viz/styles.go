package viz

import "github.com/charmbracelet/lipgloss"

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Width(44)
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pausedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	collidedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	runningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	graphStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// One bright color per body plus a dim counterpart for its trail.
// Index i renders body i; index i+len renders its trail.
var (
	bodyColors  = []lipgloss.Color{"86", "220", "213"}
	trailColors = []lipgloss.Color{"30", "94", "96"}
)

func cellStyles() []lipgloss.Style {
	styles := make([]lipgloss.Style, 0, len(bodyColors)+len(trailColors))
	for _, c := range bodyColors {
		styles = append(styles, lipgloss.NewStyle().Foreground(c))
	}
	for _, c := range trailColors {
		styles = append(styles, lipgloss.NewStyle().Foreground(c))
	}
	return styles
}
