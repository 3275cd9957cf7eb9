package types

import "github.com/google/uuid"

// OpAction is the recorded outcome of one file operation
type OpAction string

const (
	// ActionWritten means the file was created
	ActionWritten OpAction = "written"
	// ActionOverwritten means an existing file was replaced
	ActionOverwritten OpAction = "overwritten"
	// ActionSkippedExisting means an existing file was left untouched
	ActionSkippedExisting OpAction = "skipped_existing"
	// ActionSkippedDeclined means the user declined the overwrite
	ActionSkippedDeclined OpAction = "skipped_declined"
	// ActionFailed means rendering or writing this file failed
	ActionFailed OpAction = "failed"

	// Dry-run outcomes mirror the real ones without touching the filesystem
	ActionWouldWrite     OpAction = "would_write"
	ActionWouldOverwrite OpAction = "would_overwrite"
	ActionWouldSkip      OpAction = "would_skip"
	ActionWouldPrompt    OpAction = "would_prompt"
)

// OperationResult records what happened to a single planned file
type OperationResult struct {
	ArtifactID string          `json:"artifact_id"`
	RelPath    string          `json:"path"`
	Action     OpAction        `json:"action"`
	Category   InstallCategory `json:"category"`
	BackupPath string          `json:"backup_path,omitempty"`
	Warning    string          `json:"warning,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// RunReport accumulates per-operation results in execution order
type RunReport struct {
	RunID     string            `json:"run_id"`
	Agent     string            `json:"agent"`
	Lang      string            `json:"lang"`
	DryRun    bool              `json:"dry_run"`
	BackupDir string            `json:"backup_dir,omitempty"`
	Results   []OperationResult `json:"results"`
}

// NewRunReport creates an empty report for one run
func NewRunReport(cfg ResolvedConfig) *RunReport {
	return &RunReport{
		RunID:  uuid.NewString(),
		Agent:  cfg.Agent,
		Lang:   cfg.Lang,
		DryRun: cfg.DryRun,
	}
}

// Add appends one result
func (r *RunReport) Add(res OperationResult) {
	r.Results = append(r.Results, res)
}

// ReportCounts summarizes a report for display
type ReportCounts struct {
	Written     int `json:"written"`
	Overwritten int `json:"overwritten"`
	Skipped     int `json:"skipped"`
	Failed      int `json:"failed"`
	Planned     int `json:"planned"`
}

// Counts tallies results by outcome. Dry-run outcomes land in Planned.
func (r *RunReport) Counts() ReportCounts {
	var c ReportCounts
	for _, res := range r.Results {
		switch res.Action {
		case ActionWritten:
			c.Written++
		case ActionOverwritten:
			c.Overwritten++
		case ActionSkippedExisting, ActionSkippedDeclined:
			c.Skipped++
		case ActionFailed:
			c.Failed++
		case ActionWouldWrite, ActionWouldOverwrite, ActionWouldSkip, ActionWouldPrompt:
			c.Planned++
		}
	}
	return c
}

// HasFailures reports whether any operation failed
func (r *RunReport) HasFailures() bool {
	for _, res := range r.Results {
		if res.Action == ActionFailed {
			return true
		}
	}
	return false
}
