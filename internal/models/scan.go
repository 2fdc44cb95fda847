package models

import "time"

// ScanStatus represents the lifecycle state of a modernization scan.
type ScanStatus string

const (
	ScanStatusCompleted ScanStatus = "completed"
	ScanStatusPartial   ScanStatus = "partial"
	ScanStatusFailed    ScanStatus = "failed"
)

// ScanRequest describes a single project to modernize.
type ScanRequest struct {
	ProjectPath string `json:"project_path" yaml:"project_path"`
	ProjectName string `json:"project_name,omitempty" yaml:"project_name,omitempty"`
}

// Transformation records one rule application inside a file.
type Transformation struct {
	Rule        string `json:"rule"`
	Line        int    `json:"line,omitempty"`
	Description string `json:"description"`
}

// FileAnalysis holds per-file modernization findings.
type FileAnalysis struct {
	Path            string           `json:"path"`
	Modified        bool             `json:"modified"`
	Issues          []string         `json:"issues,omitempty"`
	Suggestions     []string         `json:"suggestions,omitempty"`
	Transformations []Transformation `json:"transformations,omitempty"`
	AdvisorNotes    string           `json:"advisor_notes,omitempty"`
}

// FileFailure records a file that could not be processed. A failed file does
// not abort the scan; the rest of the project is still handled.
type FileFailure struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// ProjectAnalysis groups the non-diff findings of a scan.
type ProjectAnalysis struct {
	JavaFiles      []FileAnalysis       `json:"java_files"`
	BuildFiles     []BuildFileAnalysis  `json:"build_files,omitempty"`
	ConfigFiles    []ConfigFileAnalysis `json:"config_files,omitempty"`
	FailedFiles    []FileFailure        `json:"failed_files,omitempty"`
	AdvisorNotes   string               `json:"advisor_notes,omitempty"`
	FilesScanned   int                  `json:"files_scanned"`
	FilesModified  int                  `json:"files_modified"`
	FilesCopied    int                  `json:"files_copied"`
	OutputLocation string               `json:"output_location"`
}

// ScanResult is the complete outcome of modernizing one project.
type ScanResult struct {
	ID          string              `json:"id"`
	ProjectName string              `json:"project_name"`
	ProjectPath string              `json:"project_path"`
	Status      ScanStatus          `json:"status"`
	StartedAt   time.Time           `json:"started_at"`
	FinishedAt  time.Time           `json:"finished_at"`
	Analysis    ProjectAnalysis     `json:"analysis"`
	DiffSummary *ProjectDiffSummary `json:"diff_summary,omitempty"`
	ReportPaths []string            `json:"report_paths,omitempty"`
	Error       string              `json:"error,omitempty"`
}

// NewScanID derives a scan identifier from the start time, suitable for
// directory names and log subfolders.
func NewScanID(startedAt time.Time) string {
	return startedAt.Format("20060102-150405")
}
