package models

import "time"

// BatchProjectResult records the outcome of one project inside a batch run.
type BatchProjectResult struct {
	Request  ScanRequest   `json:"request"`
	Result   *ScanResult   `json:"result,omitempty"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

// Succeeded reports whether the project was modernized without a fatal error.
func (r *BatchProjectResult) Succeeded() bool {
	return r.Error == "" && r.Result != nil && r.Result.Status != ScanStatusFailed
}

// BatchSummary aggregates counters over a whole batch run.
type BatchSummary struct {
	TotalProjects     int     `json:"total_projects"`
	SucceededProjects int     `json:"succeeded_projects"`
	FailedProjects    int     `json:"failed_projects"`
	TotalFilesChanged int     `json:"total_files_changed"`
	TotalLinesChanged int     `json:"total_lines_changed"`
	AverageDiffRatio  float64 `json:"average_diff_ratio"`
}

// BatchReport is the exportable record of a batch run. Projects appear in
// submission order.
type BatchReport struct {
	StartedAt  time.Time            `json:"started_at"`
	FinishedAt time.Time            `json:"finished_at"`
	Summary    BatchSummary         `json:"summary"`
	Projects   []BatchProjectResult `json:"projects"`
}
