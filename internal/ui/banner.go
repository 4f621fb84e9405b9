package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Banner is the header printed above preview output
var Banner = []string{
	" ____  _____ _     ____  ____  ____  ",
	"|  _ \\| ____| |   |  _ \\|  _ \\/ ___| ",
	"| |_) |  _| | |   | |_) | |_) \\___ \\ ",
	"|  _ <| |___| |___|  __/|  _ < ___) |",
	"|_| \\_\\_____|_____|_|   |_| \\_\\____/ ",
}

// RenderBanner returns the styled banner with the version underneath
func RenderBanner(version string) string {
	bannerStyle := lipgloss.NewStyle().Foreground(ColorCyan)

	var lines []string
	for _, line := range Banner {
		lines = append(lines, bannerStyle.Render(line))
	}

	if version != "" {
		versionStyle := lipgloss.NewStyle().Foreground(ColorDarkGray)
		lines = append(lines, versionStyle.Render("  release pull requests · "+version))
	}

	return strings.Join(lines, "\n")
}
