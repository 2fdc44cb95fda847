package reporter

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/aleister1102/springlift/internal/common/errorwrapper"
	"github.com/aleister1102/springlift/internal/models"
	"github.com/rs/zerolog"
)

const diffSummaryFilename = "diff_summary.json"

// JSONExporter persists diff summaries as indented JSON. Downstream tooling
// parses these files, so the field names and nesting of ProjectDiffSummary
// must not change.
type JSONExporter struct {
	logger zerolog.Logger
}

// NewJSONExporter creates a JSON exporter
func NewJSONExporter(logger zerolog.Logger) *JSONExporter {
	return &JSONExporter{
		logger: logger.With().Str("component", "JSONExporter").Logger(),
	}
}

// ExportDiffSummary writes the project diff summary into outputDir and
// returns the file path.
func (e *JSONExporter) ExportDiffSummary(summary *models.ProjectDiffSummary, outputDir string) (string, error) {
	if summary == nil {
		return "", errorwrapper.WrapError(errorwrapper.ErrInvalidInput, "diff summary is nil")
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", errorwrapper.NewPathError(outputDir, "failed to create report directory", err)
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", errorwrapper.WrapError(err, "failed to marshal diff summary")
	}

	outputPath := filepath.Join(outputDir, diffSummaryFilename)
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return "", errorwrapper.NewPathError(outputPath, "failed to write diff summary", err)
	}

	e.logger.Info().Str("path", outputPath).Msg("Diff summary exported")
	return outputPath, nil
}
