package reporter

import (
	"github.com/aleister1102/springlift/internal/config"
	"github.com/aleister1102/springlift/internal/models"
	"github.com/rs/zerolog"
)

// Reporter writes the configured report formats for a finished scan. It
// satisfies the scanner's ReportWriter interface.
type Reporter struct {
	config config.ReporterConfig
	html   *HTMLReporter
	json   *JSONExporter
	logger zerolog.Logger
}

// NewReporter creates a reporter for the enabled formats.
func NewReporter(cfg config.ReporterConfig, logger zerolog.Logger) (*Reporter, error) {
	html, err := NewHTMLReporter(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Reporter{
		config: cfg,
		html:   html,
		json:   NewJSONExporter(logger),
		logger: logger.With().Str("component", "Reporter").Logger(),
	}, nil
}

// WriteReports renders every enabled report format into outputDir and returns
// the written paths. The JSON artifact is skipped when the scan produced no
// diff summary.
func (r *Reporter) WriteReports(result *models.ScanResult, outputDir string) ([]string, error) {
	var paths []string

	if r.config.GenerateHTML {
		path, err := r.html.GenerateReport(result, outputDir)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	if r.config.GenerateJSON && result.DiffSummary != nil {
		path, err := r.json.ExportDiffSummary(result.DiffSummary, outputDir)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	r.logger.Info().Int("reports", len(paths)).Str("dir", outputDir).Msg("Reports written")
	return paths, nil
}
