package models

// ChangeCategory classifies what kind of modernization a changed section represents.
type ChangeCategory = string

const (
	CategoryNamespaceMigration ChangeCategory = "namespace_migration"
	CategoryImportAdded        ChangeCategory = "import_added"
	CategoryImportRemoved      ChangeCategory = "import_removed"
	CategoryCommentAdded       ChangeCategory = "comment_added"
	CategoryDeprecatedRemoved  ChangeCategory = "deprecated_removed"
	CategoryCodeUpdated        ChangeCategory = "code_updated"
)

// ChangedSection describes one contiguous region that differs between the
// original and modernized content of a file.
type ChangedSection struct {
	Type            string `json:"type"`
	OriginalStart   int    `json:"original_start"`
	OriginalEnd     int    `json:"original_end"`
	ModernizedStart int    `json:"modernized_start"`
	ModernizedEnd   int    `json:"modernized_end"`
	OriginalCode    string `json:"original_code"`
	ModernizedCode  string `json:"modernized_code"`
	ChangeType      string `json:"change_type"`
}

// FileDiffReport holds the full diff analysis for a single file.
type FileDiffReport struct {
	Filename        string           `json:"filename"`
	OriginalLines   int              `json:"original_lines"`
	ModernizedLines int              `json:"modernized_lines"`
	AddedLines      int              `json:"added_lines"`
	RemovedLines    int              `json:"removed_lines"`
	ChangedLines    int              `json:"changed_lines"`
	DiffRatio       float64          `json:"diff_ratio"`
	UnifiedDiff     string           `json:"unified_diff"`
	ChangedSections []ChangedSection `json:"changed_sections"`
}

// IsModified reports whether the file changed at all.
func (r *FileDiffReport) IsModified() bool {
	return r.ChangedLines > 0
}

// DiffSummaryTotals aggregates counters across all analyzed files.
type DiffSummaryTotals struct {
	TotalFilesAnalyzed   int     `json:"total_files_analyzed"`
	TotalFilesModified   int     `json:"total_files_modified"`
	TotalOriginalLines   int     `json:"total_original_lines"`
	TotalModernizedLines int     `json:"total_modernized_lines"`
	TotalLinesAdded      int     `json:"total_lines_added"`
	TotalLinesRemoved    int     `json:"total_lines_removed"`
	TotalLinesChanged    int     `json:"total_lines_changed"`
	AverageDiffRatio     float64 `json:"average_diff_ratio"`
}

// MostModifiedFile is one entry in the "most modified" ranking.
type MostModifiedFile struct {
	Filename     string `json:"filename"`
	LinesChanged int    `json:"lines_changed"`
	Added        int    `json:"added"`
	Removed      int    `json:"removed"`
}

// ProjectDiffSummary is the project-wide aggregation of per-file diff reports.
type ProjectDiffSummary struct {
	Summary           DiffSummaryTotals  `json:"summary"`
	ChangeCategories  map[string]int     `json:"change_categories"`
	MostModifiedFiles []MostModifiedFile `json:"most_modified_files"`
	Files             []FileDiffReport   `json:"files"`
}

// SideBySideRowKind marks how a side-by-side row should be rendered.
type SideBySideRowKind string

const (
	RowEqual   SideBySideRowKind = "equal"
	RowDelete  SideBySideRowKind = "delete"
	RowInsert  SideBySideRowKind = "insert"
	RowReplace SideBySideRowKind = "replace"
)

// SideBySideRow pairs an original line with its modernized counterpart for
// two-column rendering. Either side may be empty for pure inserts/deletes.
type SideBySideRow struct {
	Kind       SideBySideRowKind `json:"kind"`
	Original   string            `json:"original"`
	Modernized string            `json:"modernized"`
}
