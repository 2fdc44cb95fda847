package reporter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/aleister1102/springlift/internal/config"
	"github.com/aleister1102/springlift/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *models.ScanResult {
	return &models.ScanResult{
		ID:          "20240101-120000",
		ProjectName: "demo",
		ProjectPath: "/projects/demo",
		Status:      models.ScanStatusCompleted,
		Analysis: models.ProjectAnalysis{
			FilesScanned:   2,
			FilesModified:  1,
			FilesCopied:    3,
			OutputLocation: "/projects/demo_modernized",
			JavaFiles: []models.FileAnalysis{
				{Path: "A.java", Modified: true, Issues: []string{"javax import"}},
				{Path: "B.java"},
			},
			BuildFiles: []models.BuildFileAnalysis{
				{
					Path:            "pom.xml",
					Kind:            "maven",
					Issues:          []string{"Spring Boot 2.x detected (2.7.5) - Upgrade to 3.x required"},
					Upgrades:        map[string]string{"spring-boot-starter": "3.x", "java.version": "21"},
					Recommendations: []string{"Upgrade Spring Boot parent to 3.2.0"},
				},
			},
		},
		DiffSummary: &models.ProjectDiffSummary{
			Summary: models.DiffSummaryTotals{
				TotalFilesAnalyzed: 2,
				TotalFilesModified: 1,
				TotalLinesChanged:  2,
				AverageDiffRatio:   95.5,
			},
			ChangeCategories: map[string]int{
				models.CategoryNamespaceMigration: 1,
				models.CategoryCommentAdded:       1,
			},
			MostModifiedFiles: []models.MostModifiedFile{
				{Filename: "A.java", LinesChanged: 2, Added: 1, Removed: 1},
			},
			Files: []models.FileDiffReport{
				{
					Filename:     "A.java",
					ChangedLines: 2,
					AddedLines:   1,
					RemovedLines: 1,
					DiffRatio:    95.5,
					ChangedSections: []models.ChangedSection{
						{
							Type:            "replace",
							OriginalStart:   1,
							OriginalEnd:     1,
							ModernizedStart: 1,
							ModernizedEnd:   1,
							OriginalCode:    "import javax.servlet.Filter;",
							ModernizedCode:  "import jakarta.servlet.Filter;",
							ChangeType:      models.CategoryNamespaceMigration,
						},
					},
				},
				{Filename: "B.java", DiffRatio: 100},
			},
		},
	}
}

func newTestReporter(t *testing.T, cfg config.ReporterConfig) *Reporter {
	t.Helper()
	r, err := NewReporter(cfg, zerolog.Nop())
	require.NoError(t, err)
	return r
}

func TestWriteReports_BothFormats(t *testing.T) {
	dir := t.TempDir()
	r := newTestReporter(t, config.NewDefaultReporterConfig())

	paths, err := r.WriteReports(sampleResult(), dir)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "modernization_report.html"), paths[0])
	assert.Equal(t, filepath.Join(dir, "diff_summary.json"), paths[1])
}

func TestGenerateReport_HTMLStructure(t *testing.T) {
	dir := t.TempDir()
	r := newTestReporter(t, config.NewDefaultReporterConfig())

	paths, err := r.WriteReports(sampleResult(), dir)
	require.NoError(t, err)

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultReportTitle, doc.Find("title").Text())
	assert.Contains(t, doc.Find("#scan-summary").Text(), "20240101-120000")
	assert.Equal(t, 4, doc.Find("#statistics .stat-card").Length())
	assert.Equal(t, 1, doc.Find("#most-modified tbody tr").Length())
	assert.Equal(t, 2, doc.Find("#change-categories tbody tr").Length())

	// only modified files get a preview, with paired diff cells
	assert.Equal(t, 1, doc.Find("#diff-preview .diff-file-header").Length())
	replaceRow := doc.Find("#diff-preview table.diff-table tr.row-replace")
	require.Equal(t, 1, replaceRow.Length())
	assert.Equal(t, "import javax.servlet.Filter;", replaceRow.Find("td.original").Text())
	assert.Equal(t, "import jakarta.servlet.Filter;", replaceRow.Find("td.modernized").Text())

	assert.Contains(t, doc.Find("#recommendations").Text(), "Upgrade Spring Boot parent to 3.2.0")
	assert.Contains(t, doc.Find("#dependency-analysis").Text(), "Spring Boot 2.x detected")
	// upgrades render sorted by dependency name
	upgradeRows := doc.Find("#dependency-analysis tbody tr")
	require.Equal(t, 2, upgradeRows.Length())
	assert.Equal(t, "java.version", upgradeRows.First().Find("td").First().Text())
	assert.Equal(t, 5, doc.Find("#next-steps li").Length())
}

func TestExportDiffSummary_JSONLayout(t *testing.T) {
	dir := t.TempDir()
	r := newTestReporter(t, config.NewDefaultReporterConfig())

	paths, err := r.WriteReports(sampleResult(), dir)
	require.NoError(t, err)

	data, err := os.ReadFile(paths[1])
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 4)
	assert.Contains(t, decoded, "summary")
	assert.Contains(t, decoded, "change_categories")
	assert.Contains(t, decoded, "most_modified_files")
	assert.Contains(t, decoded, "files")

	var summary map[string]any
	require.NoError(t, json.Unmarshal(decoded["summary"], &summary))
	assert.Equal(t, 95.5, summary["average_diff_ratio"])

	var ranked []map[string]any
	require.NoError(t, json.Unmarshal(decoded["most_modified_files"], &ranked))
	require.Len(t, ranked, 1)
	assert.Contains(t, ranked[0], "filename")
	assert.Contains(t, ranked[0], "lines_changed")
	assert.Contains(t, ranked[0], "added")
	assert.Contains(t, ranked[0], "removed")

	var files []map[string]any
	require.NoError(t, json.Unmarshal(decoded["files"], &files))
	require.Len(t, files, 2)
	for _, key := range []string{
		"filename", "original_lines", "modernized_lines", "added_lines",
		"removed_lines", "changed_lines", "diff_ratio", "unified_diff",
		"changed_sections",
	} {
		assert.Contains(t, files[0], key)
	}
}

func TestWriteReports_HTMLDisabled(t *testing.T) {
	dir := t.TempDir()
	cfg := config.NewDefaultReporterConfig()
	cfg.GenerateHTML = false
	r := newTestReporter(t, cfg)

	paths, err := r.WriteReports(sampleResult(), dir)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, filepath.Join(dir, "diff_summary.json"), paths[0])
}

func TestWriteReports_NoDiffSummary(t *testing.T) {
	dir := t.TempDir()
	r := newTestReporter(t, config.NewDefaultReporterConfig())

	result := sampleResult()
	result.DiffSummary = nil
	paths, err := r.WriteReports(result, dir)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, filepath.Join(dir, "modernization_report.html"), paths[0])
}

func TestGenerateReport_NilResult(t *testing.T) {
	r := newTestReporter(t, config.NewDefaultReporterConfig())
	_, err := r.html.GenerateReport(nil, t.TempDir())
	assert.Error(t, err)
}

func TestBuildDiffPreviews_LimitAndRanking(t *testing.T) {
	files := []models.FileDiffReport{
		{Filename: "small.java", ChangedLines: 1},
		{Filename: "untouched.java"},
		{Filename: "big.java", ChangedLines: 10},
	}

	previews := buildDiffPreviews(files, 2)
	require.Len(t, previews, 2)
	assert.Equal(t, "big.java", previews[0].Filename)
	assert.Equal(t, "small.java", previews[1].Filename)

	assert.Nil(t, buildDiffPreviews(files, 0))
}

func TestSortedCategories_Deterministic(t *testing.T) {
	histogram := map[string]int{
		models.CategoryCodeUpdated:        3,
		models.CategoryImportAdded:        1,
		models.CategoryCommentAdded:       1,
		models.CategoryNamespaceMigration: 5,
	}

	categories := sortedCategories(histogram)
	require.Len(t, categories, 4)
	assert.Equal(t, models.CategoryNamespaceMigration, categories[0].Category)
	assert.Equal(t, models.CategoryCodeUpdated, categories[1].Category)
	// equal counts fall back to name order
	assert.Equal(t, models.CategoryCommentAdded, categories[2].Category)
	assert.Equal(t, models.CategoryImportAdded, categories[3].Category)
}
