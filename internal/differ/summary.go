package differ

import (
	"sort"

	"github.com/aleister1102/springlift/internal/models"
)

// mostModifiedLimit caps the "most modified files" ranking.
const mostModifiedLimit = 5

// Summarize aggregates per-file reports into a project-wide summary. Reports
// are kept in submission order; the ranking uses a stable sort so ties keep
// that order too. An empty report set yields an average ratio of 100, since
// a project with nothing to compare is trivially unchanged.
func Summarize(reports []models.FileDiffReport) models.ProjectDiffSummary {
	summary := models.ProjectDiffSummary{
		ChangeCategories:  make(map[string]int),
		MostModifiedFiles: make([]models.MostModifiedFile, 0, mostModifiedLimit),
		Files:             append([]models.FileDiffReport{}, reports...),
	}

	ratioSum := 0.0
	for _, report := range reports {
		summary.Summary.TotalFilesAnalyzed++
		if report.IsModified() {
			summary.Summary.TotalFilesModified++
		}
		summary.Summary.TotalOriginalLines += report.OriginalLines
		summary.Summary.TotalModernizedLines += report.ModernizedLines
		summary.Summary.TotalLinesAdded += report.AddedLines
		summary.Summary.TotalLinesRemoved += report.RemovedLines
		summary.Summary.TotalLinesChanged += report.ChangedLines
		ratioSum += report.DiffRatio

		for _, section := range report.ChangedSections {
			summary.ChangeCategories[section.ChangeType]++
		}
	}

	if len(reports) == 0 {
		summary.Summary.AverageDiffRatio = 100.0
	} else {
		summary.Summary.AverageDiffRatio = roundRatio(ratioSum / float64(len(reports)))
	}

	summary.MostModifiedFiles = rankMostModified(reports)
	return summary
}

// rankMostModified returns up to mostModifiedLimit entries ordered by changed
// lines descending, preserving submission order among ties.
func rankMostModified(reports []models.FileDiffReport) []models.MostModifiedFile {
	ranked := append([]models.FileDiffReport{}, reports...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ChangedLines > ranked[j].ChangedLines
	})

	limit := mostModifiedLimit
	if len(ranked) < limit {
		limit = len(ranked)
	}

	top := make([]models.MostModifiedFile, 0, limit)
	for _, report := range ranked[:limit] {
		top = append(top, models.MostModifiedFile{
			Filename:     report.Filename,
			LinesChanged: report.ChangedLines,
			Added:        report.AddedLines,
			Removed:      report.RemovedLines,
		})
	}
	return top
}
