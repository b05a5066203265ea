package components

import (
	"strings"

	"fitfuel/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  string // number-key shortcut
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Today", Key: "1"},
	{Name: "Week", Key: "2"},
	{Name: "Settings", Key: "3"},
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var parts []string
	for i, tab := range Tabs {
		label := keyStyle.Render("["+tab.Key+"]") + " "
		if i == activeIdx {
			label += activeStyle.Render(tab.Name)
		} else {
			label += inactiveStyle.Render(tab.Name)
		}
		parts = append(parts, label)
	}

	return " " + strings.Join(parts, "  ")
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, left, right string) string {
	t := theme.Active

	style := lipgloss.NewStyle().Foreground(t.TextMuted).Width(width)

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
