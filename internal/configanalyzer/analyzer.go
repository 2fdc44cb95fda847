package configanalyzer

import (
	"os"
	"path/filepath"

	"github.com/aleister1102/springlift/internal/common/errorwrapper"
	"github.com/aleister1102/springlift/internal/models"
	"github.com/rs/zerolog"
)

// ConfigAnalyzer dispatches configuration files to the matching inspection
// routine based on the file name.
type ConfigAnalyzer struct {
	logger zerolog.Logger
}

// NewConfigAnalyzer creates a new configuration analyzer
func NewConfigAnalyzer(logger zerolog.Logger) *ConfigAnalyzer {
	return &ConfigAnalyzer{
		logger: logger.With().Str("component", "ConfigAnalyzer").Logger(),
	}
}

// AnalyzeFile reads and analyzes one configuration file. Unknown file types
// return (nil, nil) so the caller can silently skip them.
func (ca *ConfigAnalyzer) AnalyzeFile(path string) (*models.ConfigFileAnalysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errorwrapper.NewPathError(path, "failed to read config file", err)
	}
	content := string(data)

	var analysis models.ConfigFileAnalysis
	switch filepath.Base(path) {
	case "application.properties":
		analysis = AnalyzeProperties(content)
	case "application.yml", "application.yaml":
		analysis, err = AnalyzeYAML(content)
		if err != nil {
			return nil, err
		}
	case "pom.xml":
		analysis = AnalyzePomProperties(content)
	case "build.gradle":
		analysis = AnalyzeGradleProperties(content)
	default:
		ca.logger.Warn().Str("path", path).Msg("Unknown configuration file type")
		return nil, nil
	}

	analysis.Path = path
	return &analysis, nil
}
