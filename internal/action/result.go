package action

import (
	"github.com/wahlandcase/attuned.releaseprs/internal/models"
)

// Output names published by the step
const (
	OutputPRs       = "prs"
	OutputPRsBodies = "prs_bodies"
)

// EmitResult sets both step outputs or neither. Empty results are still
// emitted: prs as [] and prs_bodies as "".
func (e *Env) EmitResult(result *models.PipelineResult) error {
	prs := result.PullRequests
	if prs == nil {
		prs = []*models.PullRequest{}
	}
	return e.SetOutputs(
		Output{Name: OutputPRs, Value: prs},
		Output{Name: OutputPRsBodies, Value: result.Bodies},
	)
}
