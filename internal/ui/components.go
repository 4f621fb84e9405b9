package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wahlandcase/attuned.releaseprs/internal/models"
)

// SectionHeader creates a styled section header with a title and color
// Example: "─── TITLE ───────────"
func SectionHeader(title string, color lipgloss.Color) string {
	dashes := strings.Repeat("─", max(25-len(title), 0))
	headerStyle := lipgloss.NewStyle().Foreground(color)
	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return fmt.Sprintf("%s%s%s",
		headerStyle.Render("  ─── "),
		titleStyle.Render(title),
		headerStyle.Render(" "+dashes),
	)
}

// TagFlow shows the range as "v1.0 ====> v1.1"
func TagFlow(rng models.TagRange) string {
	prevStyle := lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	relStyle := lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	arrowStyle := lipgloss.NewStyle().Foreground(ColorCyan)

	prev := rng.PreviousName()
	if prev == "" {
		prev = "(first tag)"
	}
	return "  " + prevStyle.Render(prev) + arrowStyle.Render("  ====>  ") + relStyle.Render(rng.Release)
}

// PullRequestLine renders "#123 Title (open)"
func PullRequestLine(pr *models.PullRequest) string {
	numberStyle := lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
	stateStyle := lipgloss.NewStyle().Foreground(PRStateColor(pr.GetState(), pr.GetMerged()))

	state := pr.GetState()
	if pr.GetMerged() {
		state = "merged"
	}
	line := "    " + numberStyle.Render(fmt.Sprintf("#%d", pr.GetNumber())) + " " + pr.GetTitle()
	if state != "" {
		line += " " + stateStyle.Render("("+state+")")
	}
	return line
}

// RenderSummary renders the full preview of a pipeline result
func RenderSummary(result *models.PipelineResult) string {
	dim := lipgloss.NewStyle().Foreground(ColorDarkGray)

	var lines []string
	lines = append(lines, SectionHeader("RANGE", ColorCyan), "")
	lines = append(lines, TagFlow(result.Range), "")
	lines = append(lines, dim.Render(fmt.Sprintf("    %d commits in %s", len(result.Commits), result.Range.Spec())), "")

	lines = append(lines, SectionHeader("PULL REQUESTS", ColorMagenta), "")
	if len(result.PullRequests) == 0 {
		lines = append(lines, dim.Render("    none"))
	}
	for _, pr := range result.PullRequests {
		lines = append(lines, PullRequestLine(pr))
	}
	lines = append(lines, "")

	lines = append(lines, SectionHeader("BODIES", ColorYellow), "")
	if result.Bodies == "" {
		lines = append(lines, dim.Render("    none"))
	} else {
		for _, line := range strings.Split(strings.TrimSuffix(result.Bodies, "\n"), "\n") {
			lines = append(lines, "    "+line)
		}
	}

	return strings.Join(lines, "\n")
}
