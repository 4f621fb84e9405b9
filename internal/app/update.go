package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.screen != ScreenLoading {
			return m, nil
		}
		m.spinnerFrame = (m.spinnerFrame + 1) % len(spinnerFrames)
		return m, tickCmd()

	case progressMsg:
		if msg.step != "" {
			m.step = msg.step
		}
		if msg.total > 0 {
			m.totalCommits = msg.total
		}
		if msg.commitDone {
			m.doneCommits++
		}
		// Continue listening for more progress updates
		return m, listenForProgress(m.progress)

	case pipelineResult:
		return m.handlePipelineResult(msg)
	}

	return m, nil
}

// handleKey processes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.cancel()
		if m.screen == ScreenLoading {
			m.err = m.ctx.Err()
			m.screen = ScreenError
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handlePipelineResult(msg pipelineResult) (tea.Model, tea.Cmd) {
	m.cancel()
	if msg.err != nil {
		m.err = msg.err
		m.screen = ScreenError
		return m, tea.Quit
	}
	m.result = msg.result
	m.screen = ScreenSummary
	return m, tea.Quit
}
