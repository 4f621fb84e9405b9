package app

import (
	"fmt"
	"strings"

	"github.com/wahlandcase/attuned.releaseprs/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// View renders the current screen
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(ui.RenderBanner(m.version))
	b.WriteString("\n\n")

	switch m.screen {
	case ScreenLoading:
		b.WriteString(m.renderLoading())
	case ScreenSummary:
		b.WriteString(ui.RenderSummary(m.result))
	case ScreenError:
		b.WriteString(m.renderError())
	}

	b.WriteString("\n")
	return b.String()
}

func (m Model) renderLoading() string {
	spinnerStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan)
	dim := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)

	line := "  " + spinnerStyle.Render(spinnerFrames[m.spinnerFrame]) + " " + m.step
	if m.totalCommits > 0 {
		line += dim.Render(fmt.Sprintf("  %d/%d commits", m.doneCommits, m.totalCommits))
	}
	return line + "\n\n" + dim.Render("  q to cancel")
}

func (m Model) renderError() string {
	errStyle := lipgloss.NewStyle().Foreground(ui.ColorRed).Bold(true)
	msg := "cancelled"
	if m.err != nil {
		msg = m.err.Error()
	}
	return ui.SectionHeader("ERROR", ui.ColorRed) + "\n\n  " + errStyle.Render(msg)
}
