package reporter

import (
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aleister1102/springlift/internal/common/errorwrapper"
	"github.com/aleister1102/springlift/internal/config"
	"github.com/aleister1102/springlift/internal/differ"
	"github.com/aleister1102/springlift/internal/models"
	"github.com/rs/zerolog"
)

const (
	reportTemplateName = "modernization_report.html.tmpl"
	reportHTMLFilename = "modernization_report.html"

	maxFileTableRows   = 10
	maxRecommendations = 5
)

var defaultNextSteps = []string{
	"Review the Modernized Code: navigate to the output directory and examine the transformed Java files",
	"Check Dependency Updates: update your pom.xml or build.gradle with recommended version upgrades",
	"Run Tests: execute your test suite to ensure compatibility with modernized code",
	"Update Configuration: migrate flagged properties in application.yml and application.properties",
	"Deploy & Test: verify in a staging environment before production deployment",
}

// HTMLReporter renders a scan result into a standalone HTML report.
type HTMLReporter struct {
	config   config.ReporterConfig
	template *template.Template
	logger   zerolog.Logger
	now      func() time.Time
}

// NewHTMLReporter parses the embedded report template and returns a reporter.
func NewHTMLReporter(cfg config.ReporterConfig, logger zerolog.Logger) (*HTMLReporter, error) {
	tmpl, err := template.New("").Funcs(GetReportTemplateFunctions()).ParseFS(templatesFS, "templates/"+reportTemplateName)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse HTML report template")
	}

	return &HTMLReporter{
		config:   cfg,
		template: tmpl,
		logger:   logger.With().Str("component", "HTMLReporter").Logger(),
		now:      time.Now,
	}, nil
}

// GenerateReport writes the HTML report into outputDir and returns its path.
func (r *HTMLReporter) GenerateReport(result *models.ScanResult, outputDir string) (string, error) {
	if result == nil {
		return "", errorwrapper.WrapError(errorwrapper.ErrInvalidInput, "scan result is nil")
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", errorwrapper.NewPathError(outputDir, "failed to create report directory", err)
	}

	outputPath := filepath.Join(outputDir, reportHTMLFilename)
	file, err := os.Create(outputPath)
	if err != nil {
		return "", errorwrapper.NewPathError(outputPath, "failed to create report file", err)
	}
	defer file.Close()

	pageData := r.buildPageData(result)
	if err := r.template.ExecuteTemplate(file, reportTemplateName, pageData); err != nil {
		return "", errorwrapper.WrapError(err, "failed to execute report template")
	}

	r.logger.Info().Str("path", outputPath).Msg("HTML report generated")
	return outputPath, nil
}

// buildPageData flattens a scan result into the shape the template consumes.
func (r *HTMLReporter) buildPageData(result *models.ScanResult) ReportPageData {
	data := ReportPageData{
		ReportTitle:    r.config.ReportTitle,
		GeneratedAt:    r.now().Format("2006-01-02 15:04:05"),
		ScanID:         result.ID,
		ProjectName:    result.ProjectName,
		ProjectPath:    result.ProjectPath,
		OutputLocation: result.Analysis.OutputLocation,
		Status:         result.Status,
		FilesScanned:   result.Analysis.FilesScanned,
		FilesModified:  result.Analysis.FilesModified,
		FilesCopied:    result.Analysis.FilesCopied,
		FailedFiles:    result.Analysis.FailedFiles,
		BuildFiles:     result.Analysis.BuildFiles,
		ConfigFiles:    result.Analysis.ConfigFiles,
		NextSteps:      defaultNextSteps,
	}

	data.JavaFiles = result.Analysis.JavaFiles
	if len(data.JavaFiles) > maxFileTableRows {
		data.MoreJavaFiles = len(data.JavaFiles) - maxFileTableRows
		data.JavaFiles = data.JavaFiles[:maxFileTableRows]
	}

	data.Recommendations = collectRecommendations(result.Analysis.BuildFiles)
	data.DependencyIssues, data.DependencyUpgrades = collectDependencyFindings(result.Analysis.BuildFiles)

	if result.DiffSummary != nil {
		data.Summary = result.DiffSummary.Summary
		data.ChangeCategories = sortedCategories(result.DiffSummary.ChangeCategories)
		data.MostModified = result.DiffSummary.MostModifiedFiles
		data.DiffPreviews = buildDiffPreviews(result.DiffSummary.Files, r.config.DiffPreviewFiles)
	}

	return data
}

// collectRecommendations merges build file recommendations, capped for display.
func collectRecommendations(buildFiles []models.BuildFileAnalysis) []string {
	var recommendations []string
	for _, bf := range buildFiles {
		recommendations = append(recommendations, bf.Recommendations...)
	}
	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}

// collectDependencyFindings merges build file issues and recommended
// upgrades, the latter sorted by dependency name for deterministic output.
func collectDependencyFindings(buildFiles []models.BuildFileAnalysis) ([]string, []UpgradeEntry) {
	var issues []string
	merged := make(map[string]string)
	for _, bf := range buildFiles {
		issues = append(issues, bf.Issues...)
		for dependency, version := range bf.Upgrades {
			merged[dependency] = version
		}
	}

	upgrades := make([]UpgradeEntry, 0, len(merged))
	for dependency, version := range merged {
		upgrades = append(upgrades, UpgradeEntry{Dependency: dependency, Version: version})
	}
	sort.Slice(upgrades, func(i, j int) bool {
		return upgrades[i].Dependency < upgrades[j].Dependency
	})
	return issues, upgrades
}

// sortedCategories orders the category histogram by count descending, then
// name, so report output is deterministic.
func sortedCategories(histogram map[string]int) []CategoryCount {
	categories := make([]CategoryCount, 0, len(histogram))
	for category, count := range histogram {
		categories = append(categories, CategoryCount{Category: category, Count: count})
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Count != categories[j].Count {
			return categories[i].Count > categories[j].Count
		}
		return categories[i].Category < categories[j].Category
	})
	return categories
}

// buildDiffPreviews renders the most modified files as side-by-side previews,
// limited to previewLimit files.
func buildDiffPreviews(files []models.FileDiffReport, previewLimit int) []FilePreview {
	if previewLimit <= 0 {
		return nil
	}

	ranked := make([]models.FileDiffReport, len(files))
	copy(ranked, files)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ChangedLines > ranked[j].ChangedLines
	})

	var previews []FilePreview
	for _, report := range ranked {
		if !report.IsModified() || len(previews) == previewLimit {
			break
		}

		preview := FilePreview{
			Filename:     report.Filename,
			DiffRatio:    report.DiffRatio,
			ChangedLines: report.ChangedLines,
		}
		for _, section := range report.ChangedSections {
			preview.Sections = append(preview.Sections, SectionPreview{
				ChangeType:      section.ChangeType,
				Type:            section.Type,
				OriginalStart:   section.OriginalStart,
				ModernizedStart: section.ModernizedStart,
				Rows:            differ.BuildSideBySideRows(splitCode(section.OriginalCode), splitCode(section.ModernizedCode)),
			})
		}
		previews = append(previews, preview)
	}

	return previews
}

// splitCode splits a changed section's code block into lines for side-by-side
// rendering. An empty block (pure insert or delete) yields no lines.
func splitCode(code string) []string {
	if code == "" {
		return nil
	}
	return strings.Split(code, "\n")
}
