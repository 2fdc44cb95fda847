package scanner

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/aleister1102/springlift/internal/buildfile"
	"github.com/aleister1102/springlift/internal/common/errorwrapper"
	"github.com/aleister1102/springlift/internal/config"
	"github.com/aleister1102/springlift/internal/configanalyzer"
	"github.com/aleister1102/springlift/internal/datastore"
	"github.com/aleister1102/springlift/internal/differ"
	"github.com/aleister1102/springlift/internal/models"
	"github.com/aleister1102/springlift/internal/modernizer"
	"github.com/rs/zerolog"
)

// Advisor is an optional external reviewer whose output is treated as opaque
// text attached to a file analysis. Failures are logged and ignored.
type Advisor interface {
	Analyze(ctx context.Context, code, filename string) (string, error)
}

// ReportWriter renders a finished scan result into report files and returns
// their paths.
type ReportWriter interface {
	WriteReports(result *models.ScanResult, outputDir string) ([]string, error)
}

// ProjectScanner orchestrates a whole-project modernization run: discovery,
// per-file rewrite and diff, build and config file analysis, copying, and
// report generation.
type ProjectScanner struct {
	config         *config.GlobalConfig
	walker         *ProjectWalker
	modernizer     *modernizer.JavaModernizer
	diffEngine     *differ.SequenceDiffEngine
	configAnalyzer *configanalyzer.ConfigAnalyzer
	pomUpdater     *buildfile.PomUpdater
	gradleUpdater  *buildfile.GradleUpdater
	store          *datastore.ScanResultStore
	reportWriter   ReportWriter
	advisor        Advisor
	logger         zerolog.Logger
	now            func() time.Time
}

// ProjectScannerBuilder provides a fluent interface for creating ProjectScanner
type ProjectScannerBuilder struct {
	config       *config.GlobalConfig
	store        *datastore.ScanResultStore
	reportWriter ReportWriter
	advisor      Advisor
	logger       zerolog.Logger
	now          func() time.Time
}

// NewProjectScannerBuilder creates a new builder
func NewProjectScannerBuilder() *ProjectScannerBuilder {
	return &ProjectScannerBuilder{
		config: config.NewDefaultGlobalConfig(),
		logger: zerolog.Nop(),
		now:    time.Now,
	}
}

// WithConfig sets the global configuration
func (b *ProjectScannerBuilder) WithConfig(cfg *config.GlobalConfig) *ProjectScannerBuilder {
	b.config = cfg
	return b
}

// WithStore sets the scan result store
func (b *ProjectScannerBuilder) WithStore(store *datastore.ScanResultStore) *ProjectScannerBuilder {
	b.store = store
	return b
}

// WithReportWriter sets the report writer
func (b *ProjectScannerBuilder) WithReportWriter(writer ReportWriter) *ProjectScannerBuilder {
	b.reportWriter = writer
	return b
}

// WithAdvisor sets the optional external advisor
func (b *ProjectScannerBuilder) WithAdvisor(advisor Advisor) *ProjectScannerBuilder {
	b.advisor = advisor
	return b
}

// WithLogger sets the logger
func (b *ProjectScannerBuilder) WithLogger(logger zerolog.Logger) *ProjectScannerBuilder {
	b.logger = logger
	return b
}

// WithClock overrides the timestamp source, used by tests
func (b *ProjectScannerBuilder) WithClock(now func() time.Time) *ProjectScannerBuilder {
	b.now = now
	return b
}

// Build creates a new ProjectScanner instance
func (b *ProjectScannerBuilder) Build() (*ProjectScanner, error) {
	if b.config == nil {
		return nil, errorwrapper.NewValidationError("config", b.config, "global config cannot be nil")
	}

	engine, err := differ.NewSequenceDiffEngine(b.config.DiffConfig, b.logger)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to build diff engine")
	}

	store := b.store
	if store == nil {
		store = datastore.NewScanResultStore()
	}

	return &ProjectScanner{
		config:         b.config,
		walker:         NewProjectWalker(b.config.ScannerConfig, b.logger),
		modernizer:     modernizer.NewJavaModernizer(b.config.ModernizerConfig, b.logger),
		diffEngine:     engine,
		configAnalyzer: configanalyzer.NewConfigAnalyzer(b.logger),
		pomUpdater:     buildfile.NewPomUpdater(b.config.ModernizerConfig, b.logger),
		gradleUpdater:  buildfile.NewGradleUpdater(b.config.ModernizerConfig, b.logger),
		store:          store,
		reportWriter:   b.reportWriter,
		advisor:        b.advisor,
		logger:         b.logger.With().Str("component", "ProjectScanner").Logger(),
		now:            b.now,
	}, nil
}

// Scan modernizes one project into <project>_modernized and returns the scan
// result. Individual file failures are recorded and excluded from the diff
// statistics without aborting the scan.
func (s *ProjectScanner) Scan(ctx context.Context, req models.ScanRequest) (*models.ScanResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, errorwrapper.WrapError(err, "scan cancelled")
	}

	startedAt := s.now()
	if err := ValidateProjectPath(req.ProjectPath); err != nil {
		return nil, errorwrapper.WrapError(err, "invalid project path")
	}

	projectName := req.ProjectName
	if projectName == "" {
		projectName = filepath.Base(req.ProjectPath)
	}

	result := &models.ScanResult{
		ID:          models.NewScanID(startedAt),
		ProjectName: projectName,
		ProjectPath: req.ProjectPath,
		StartedAt:   startedAt,
	}

	outputPath := req.ProjectPath + s.config.ScannerConfig.OutputDirSuffix
	if err := recreateDir(outputPath); err != nil {
		return nil, err
	}
	result.Analysis.OutputLocation = outputPath

	s.logger.Info().
		Str("scan_id", result.ID).
		Str("project", projectName).
		Str("output", outputPath).
		Msg("Starting project scan")

	diffReports := s.processJavaFiles(ctx, req.ProjectPath, outputPath, result)
	s.analyzeBuildFiles(req.ProjectPath, result)
	s.analyzeConfigFiles(req.ProjectPath, result)

	copied, err := s.walker.CopyNonJavaFiles(req.ProjectPath, outputPath)
	if err != nil {
		return nil, err
	}
	result.Analysis.FilesCopied = copied

	s.updateCopiedBuildFiles(outputPath, result)

	summary := differ.Summarize(diffReports)
	result.DiffSummary = &summary

	result.Status = models.ScanStatusCompleted
	if len(result.Analysis.FailedFiles) > 0 {
		result.Status = models.ScanStatusPartial
	}
	result.FinishedAt = s.now()

	if s.reportWriter != nil {
		reportDir := filepath.Join(outputPath, s.config.ReporterConfig.OutputDirName)
		paths, reportErr := s.reportWriter.WriteReports(result, reportDir)
		if reportErr != nil {
			s.logger.Error().Err(reportErr).Msg("Failed to write reports")
		} else {
			result.ReportPaths = paths
		}
	}

	if err := s.store.Save(result); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to store scan result")
	}

	s.logger.Info().
		Str("scan_id", result.ID).
		Int("files_scanned", result.Analysis.FilesScanned).
		Int("files_modified", result.Analysis.FilesModified).
		Str("status", string(result.Status)).
		Msg("Project scan finished")

	return result, nil
}

// processJavaFiles analyzes, rewrites, writes, and diffs every Java file.
// Failed files are recorded on the result and skipped. Cancelling the context
// stops the loop and records the files not yet processed as failed.
func (s *ProjectScanner) processJavaFiles(ctx context.Context, projectPath, outputPath string, result *models.ScanResult) []models.FileDiffReport {
	javaFiles, err := s.walker.FindJavaFiles(projectPath)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to discover Java files")
		result.Analysis.FailedFiles = append(result.Analysis.FailedFiles, models.FileFailure{
			Path:  projectPath,
			Error: err.Error(),
		})
		return nil
	}
	s.logger.Info().Int("count", len(javaFiles)).Msg("Found Java files")

	var diffReports []models.FileDiffReport
	for idx, path := range javaFiles {
		if ctxErr := ctx.Err(); ctxErr != nil {
			s.logger.Warn().Err(ctxErr).Int("remaining", len(javaFiles)-idx).Msg("Scan cancelled, skipping remaining Java files")
			for _, skipped := range javaFiles[idx:] {
				skippedRel, skipErr := filepath.Rel(projectPath, skipped)
				if skipErr != nil {
					skippedRel = filepath.Base(skipped)
				}
				result.Analysis.FailedFiles = append(result.Analysis.FailedFiles, models.FileFailure{
					Path:  skippedRel,
					Error: errorwrapper.WrapError(ctxErr, "cancelled before processing").Error(),
				})
			}
			break
		}

		relPath, relErr := filepath.Rel(projectPath, path)
		if relErr != nil {
			relPath = filepath.Base(path)
		}

		report, analysis, fileErr := s.processJavaFile(ctx, path, relPath, outputPath)
		if fileErr != nil {
			s.logger.Error().Err(fileErr).Str("file", relPath).Msg("Failed to process Java file")
			result.Analysis.FailedFiles = append(result.Analysis.FailedFiles, models.FileFailure{
				Path:  relPath,
				Error: fileErr.Error(),
			})
			continue
		}

		result.Analysis.JavaFiles = append(result.Analysis.JavaFiles, analysis)
		result.Analysis.FilesScanned++
		if analysis.Modified {
			result.Analysis.FilesModified++
		}
		diffReports = append(diffReports, *report)
	}

	return diffReports
}

// processJavaFile handles one source file end to end.
func (s *ProjectScanner) processJavaFile(ctx context.Context, path, relPath, outputPath string) (*models.FileDiffReport, models.FileAnalysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, models.FileAnalysis{}, errorwrapper.NewPathError(path, "failed to read Java file", err)
	}
	original := string(data)

	analysis := modernizer.AnalyzeJavaFile(original, relPath)
	modernized, transformations := s.modernizer.Modernize(original, relPath)
	analysis.Transformations = append(analysis.Transformations, transformations...)
	analysis.Modified = len(transformations) > 0

	if s.advisor != nil {
		notes, advisorErr := s.advisor.Analyze(ctx, original, relPath)
		if advisorErr != nil {
			s.logger.Warn().Err(advisorErr).Str("file", relPath).Msg("Advisor analysis failed")
		} else {
			analysis.AdvisorNotes = notes
		}
	}

	targetPath := filepath.Join(outputPath, relPath)
	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		return nil, models.FileAnalysis{}, errorwrapper.NewPathError(targetPath, "failed to create output directory", err)
	}
	if err := os.WriteFile(targetPath, []byte(modernized), 0644); err != nil {
		return nil, models.FileAnalysis{}, errorwrapper.NewPathError(targetPath, "failed to write modernized file", err)
	}

	report, err := s.diffEngine.Compare(original, modernized, relPath)
	if err != nil {
		return nil, models.FileAnalysis{}, errorwrapper.WrapError(err, "failed to diff file")
	}

	return report, analysis, nil
}

// analyzeBuildFiles inspects pom.xml and build.gradle at the project root.
func (s *ProjectScanner) analyzeBuildFiles(projectPath string, result *models.ScanResult) {
	pomPath := filepath.Join(projectPath, "pom.xml")
	if data, err := os.ReadFile(pomPath); err == nil {
		content := string(data)
		check := modernizer.AnalyzePom(content)
		result.Analysis.BuildFiles = append(result.Analysis.BuildFiles, models.BuildFileAnalysis{
			Path:            pomPath,
			Kind:            "maven",
			Info:            buildfile.ExtractPomInfo(content),
			Issues:          check.Issues,
			Upgrades:        check.Upgrades,
			Recommendations: check.Recommendations,
		})
	}

	gradlePath := filepath.Join(projectPath, "build.gradle")
	if data, err := os.ReadFile(gradlePath); err == nil {
		content := string(data)
		check := modernizer.AnalyzeGradle(content)
		result.Analysis.BuildFiles = append(result.Analysis.BuildFiles, models.BuildFileAnalysis{
			Path:            gradlePath,
			Kind:            "gradle",
			Info:            buildfile.ExtractGradleInfo(content),
			Issues:          check.Issues,
			Upgrades:        check.Upgrades,
			Recommendations: check.Recommendations,
		})
	}
}

// analyzeConfigFiles inspects application configuration files under the
// conventional resources directory, plus root build files for property pins.
func (s *ProjectScanner) analyzeConfigFiles(projectPath string, result *models.ScanResult) {
	candidates := []string{
		filepath.Join(projectPath, "src", "main", "resources", "application.properties"),
		filepath.Join(projectPath, "src", "main", "resources", "application.yml"),
		filepath.Join(projectPath, "src", "main", "resources", "application.yaml"),
		filepath.Join(projectPath, "pom.xml"),
		filepath.Join(projectPath, "build.gradle"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		analysis, err := s.configAnalyzer.AnalyzeFile(path)
		if err != nil {
			s.logger.Warn().Err(err).Str("path", path).Msg("Failed to analyze config file")
			result.Analysis.FailedFiles = append(result.Analysis.FailedFiles, models.FileFailure{
				Path:  path,
				Error: err.Error(),
			})
			continue
		}
		if analysis != nil {
			result.Analysis.ConfigFiles = append(result.Analysis.ConfigFiles, *analysis)
		}
	}
}

// updateCopiedBuildFiles rewrites the build files that were copied into the
// output tree and marks the matching analyses as updated.
func (s *ProjectScanner) updateCopiedBuildFiles(outputPath string, result *models.ScanResult) {
	pomPath := filepath.Join(outputPath, "pom.xml")
	if _, err := os.Stat(pomPath); err == nil {
		changed, _, updateErr := s.pomUpdater.Update(pomPath)
		if updateErr != nil {
			s.logger.Error().Err(updateErr).Msg("Failed to update copied pom.xml")
		} else if changed {
			s.markBuildFileUpdated(result, "maven")
		}
	}

	gradlePath := filepath.Join(outputPath, "build.gradle")
	if _, err := os.Stat(gradlePath); err == nil {
		changed, _, updateErr := s.gradleUpdater.Update(gradlePath)
		if updateErr != nil {
			s.logger.Error().Err(updateErr).Msg("Failed to update copied build.gradle")
		} else if changed {
			s.markBuildFileUpdated(result, "gradle")
		}
	}
}

// markBuildFileUpdated flips the Updated flag on the analysis of a kind.
func (s *ProjectScanner) markBuildFileUpdated(result *models.ScanResult, kind string) {
	for i := range result.Analysis.BuildFiles {
		if result.Analysis.BuildFiles[i].Kind == kind {
			result.Analysis.BuildFiles[i].Updated = true
		}
	}
}

// recreateDir removes and recreates a directory.
func recreateDir(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return errorwrapper.NewPathError(path, "failed to clear output directory", err)
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return errorwrapper.NewPathError(path, "failed to create output directory", err)
	}
	return nil
}
