package app

import (
	"context"

	"github.com/wahlandcase/attuned.releaseprs/internal/models"
	"github.com/wahlandcase/attuned.releaseprs/internal/release"

	tea "github.com/charmbracelet/bubbletea"
)

// Message types for async operations

type pipelineResult struct {
	result *models.PipelineResult
	err    error
}

// progressMsg is sent for real-time progress updates while the pipeline runs
type progressMsg struct {
	step       string
	total      int
	commitDone bool
}

// runPipelineCmd runs the pipeline in the background and closes the
// progress channel once it returns
func runPipelineCmd(ctx context.Context, p *release.Pipeline, releaseTag string, progress chan progressMsg) tea.Cmd {
	return func() tea.Msg {
		defer close(progress)
		result, err := p.Run(ctx, releaseTag)
		return pipelineResult{result: result, err: err}
	}
}

// listenForProgress creates a subscription that listens to the progress channel
func listenForProgress(ch chan progressMsg) tea.Cmd {
	return func() tea.Msg {
		if ch == nil {
			return nil
		}
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}
