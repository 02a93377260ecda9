package cmd

// Stage names, in pipeline order.
const (
	stagePreflight = "preflight"
	stageCommit    = "commit"
	stagePublish   = "publish"
	stageTransfer  = "transfer"
	stageActivate  = "activate"
)

type stageStatus int

const (
	stageSuccess stageStatus = iota
	stageSkipped
	stageFailed
	stageWarning
)

func (s stageStatus) String() string {
	switch s {
	case stageSuccess:
		return "ok"
	case stageSkipped:
		return "skipped"
	case stageFailed:
		return "failed"
	case stageWarning:
		return "warning"
	}
	return "unknown"
}

// stageResult records one stage's outcome for console reporting; nothing is
// persisted across runs.
type stageResult struct {
	Name   string
	Status stageStatus
	Detail string
	Err    error
}

type runReport struct {
	stages []stageResult
}

func (r *runReport) add(res stageResult) { r.stages = append(r.stages, res) }

// aborted returns the failing stage, or nil when the pipeline ran to the end.
func (r *runReport) aborted() *stageResult {
	for i := range r.stages {
		if r.stages[i].Status == stageFailed {
			return &r.stages[i]
		}
	}
	return nil
}

func (r *runReport) warned() bool {
	for _, s := range r.stages {
		if s.Status == stageWarning {
			return true
		}
	}
	return false
}
