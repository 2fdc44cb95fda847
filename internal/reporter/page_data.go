package reporter

import "github.com/aleister1102/springlift/internal/models"

// CategoryCount is one change-category histogram entry, ordered for display.
type CategoryCount struct {
	Category string
	Count    int
}

// UpgradeEntry is one recommended dependency upgrade, ordered for display.
type UpgradeEntry struct {
	Dependency string
	Version    string
}

// SectionPreview renders one changed region of a file as a two-column diff.
type SectionPreview struct {
	ChangeType      string
	Type            string
	OriginalStart   int
	ModernizedStart int
	Rows            []models.SideBySideRow
}

// FilePreview is the side-by-side diff preview for one modified file.
type FilePreview struct {
	Filename     string
	DiffRatio    float64
	ChangedLines int
	Sections     []SectionPreview
}

// ReportPageData carries everything the HTML report template needs.
type ReportPageData struct {
	ReportTitle    string
	GeneratedAt    string
	ScanID         string
	ProjectName    string
	ProjectPath    string
	OutputLocation string
	Status         models.ScanStatus

	FilesScanned  int
	FilesModified int
	FilesCopied   int

	Summary          models.DiffSummaryTotals
	ChangeCategories []CategoryCount
	MostModified     []models.MostModifiedFile

	JavaFiles       []models.FileAnalysis
	MoreJavaFiles   int
	FailedFiles     []models.FileFailure
	BuildFiles      []models.BuildFileAnalysis
	ConfigFiles     []models.ConfigFileAnalysis
	Recommendations []string

	DependencyIssues   []string
	DependencyUpgrades []UpgradeEntry

	DiffPreviews []FilePreview
	NextSteps    []string
}
