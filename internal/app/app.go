package app

import (
	"context"
	"time"

	"github.com/wahlandcase/attuned.releaseprs/internal/models"
	"github.com/wahlandcase/attuned.releaseprs/internal/release"

	tea "github.com/charmbracelet/bubbletea"
)

// Model is the preview program state
type Model struct {
	// Inputs
	pipeline   *release.Pipeline
	releaseTag string
	version    string

	// Background run
	ctx      context.Context
	cancel   context.CancelFunc
	progress chan progressMsg

	// Navigation
	screen Screen

	// Progress
	step         string
	totalCommits int
	doneCommits  int
	spinnerFrame int

	// Outcome
	result *models.PipelineResult
	err    error

	// Window size
	width  int
	height int
}

// New creates the preview model. The pipeline's progress hooks are taken
// over by the model for the duration of the run.
func New(ctx context.Context, p *release.Pipeline, releaseTag, version string) Model {
	ctx, cancel := context.WithCancel(ctx)
	m := Model{
		pipeline:   p,
		releaseTag: releaseTag,
		version:    version,
		ctx:        ctx,
		cancel:     cancel,
		progress:   make(chan progressMsg, 16),
		screen:     ScreenLoading,
		step:       "Resolving previous tag...",
		width:      80,
		height:     24,
	}
	m.attachProgress()
	return m
}

// Init starts the pipeline and the spinner
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		runPipelineCmd(m.ctx, m.pipeline, m.releaseTag, m.progress),
		listenForProgress(m.progress),
	)
}

// Result returns the pipeline outcome once the program has finished
func (m Model) Result() (*models.PipelineResult, error) {
	return m.result, m.err
}

// attachProgress routes pipeline callbacks into the progress channel
func (m Model) attachProgress() {
	send := func(msg progressMsg) {
		select {
		case m.progress <- msg:
		case <-m.ctx.Done():
		}
	}
	m.pipeline.OnCommitsListed = func(n int) {
		send(progressMsg{step: "Looking up pull requests...", total: n})
	}
	m.pipeline.Aggregator.OnCommitDone = func(sha string, found int) {
		send(progressMsg{commitDone: true})
	}
}

// tickMsg is sent on each tick for the spinner
type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(_ time.Time) tea.Msg {
		return tickMsg{}
	})
}
