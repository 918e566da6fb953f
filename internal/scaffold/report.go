package scaffold

import (
	"github.com/samber/lo"

	"github.com/company/scapp/internal/filemanager"
)

// StepStatus is the outcome of one pipeline step.
type StepStatus int

const (
	StepOK StepStatus = iota
	StepSkipped
	StepFailed
)

func (s StepStatus) String() string {
	switch s {
	case StepOK:
		return "ok"
	case StepSkipped:
		return "skipped"
	case StepFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StepResult records what a step did.
type StepResult struct {
	Step   string
	Status StepStatus
	// Detail is a short human description, e.g. "renamed to app.cpp".
	Detail string
	Err    error
}

// Report lists every step of a run in execution order.
type Report struct {
	Path     string
	DirState filemanager.DirState
	Steps    []StepResult
}

func (r *Report) add(res StepResult) {
	r.Steps = append(r.Steps, res)
}

// Failed returns the steps that did not complete.
func (r *Report) Failed() []StepResult {
	return lo.Filter(r.Steps, func(s StepResult, _ int) bool {
		return s.Status == StepFailed
	})
}

// Step returns the result recorded for name.
func (r *Report) Step(name string) (StepResult, bool) {
	return lo.Find(r.Steps, func(s StepResult) bool {
		return s.Step == name
	})
}
