package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/aleister1102/springlift/internal/batch"
	"github.com/aleister1102/springlift/internal/config"
	"github.com/aleister1102/springlift/internal/datastore"
	"github.com/aleister1102/springlift/internal/logger"
	"github.com/aleister1102/springlift/internal/models"
	"github.com/aleister1102/springlift/internal/reporter"
	"github.com/aleister1102/springlift/internal/scanner"

	"github.com/rs/zerolog"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitPartial = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	flags := ParseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.ConfigFile, zerolog.Nop())
	if err != nil {
		log.Fatalf("[FATAL] Could not load global config using path '%s': %v", flags.ConfigFile, err)
	}

	if flags.NoHTMLReport {
		gCfg.ReporterConfig.GenerateHTML = false
	}
	if flags.NoJSONReport {
		gCfg.ReporterConfig.GenerateJSON = false
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		log.Fatalf("[FATAL] Configuration validation failed: %v", err)
	}

	scanID := models.NewScanID(time.Now())
	zLogger, err := logger.NewWithScanID(gCfg.LogConfig, scanID)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}
	zLogger.Info().Str("scan_id", scanID).Msg("SpringLift starting")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		zLogger.Info().Str("signal", sig.String()).Msg("Received interrupt signal, shutting down")
		cancel()
	}()

	reportWriter, err := reporter.NewReporter(gCfg.ReporterConfig, zLogger)
	if err != nil {
		zLogger.Error().Err(err).Msg("Failed to initialize reporter")
		return exitFailure
	}

	projectScanner, err := scanner.NewProjectScannerBuilder().
		WithConfig(gCfg).
		WithStore(datastore.NewScanResultStore()).
		WithReportWriter(reportWriter).
		WithLogger(zLogger).
		Build()
	if err != nil {
		zLogger.Error().Err(err).Msg("Failed to initialize project scanner")
		return exitFailure
	}

	if flags.BatchFile != "" {
		return runBatch(ctx, gCfg, projectScanner, flags, zLogger)
	}
	return runSingle(ctx, projectScanner, flags, zLogger)
}

// runSingle modernizes one project and prints the report locations.
func runSingle(ctx context.Context, projectScanner *scanner.ProjectScanner, flags AppFlags, zLogger zerolog.Logger) int {
	projectPath, err := filepath.Abs(flags.ProjectPath)
	if err != nil {
		zLogger.Error().Err(err).Str("path", flags.ProjectPath).Msg("Could not resolve project path")
		return exitFailure
	}

	result, err := projectScanner.Scan(ctx, models.ScanRequest{ProjectPath: projectPath})
	if err != nil {
		zLogger.Error().Err(err).Str("path", projectPath).Msg("Modernization failed")
		return exitFailure
	}

	zLogger.Info().
		Str("scan_id", result.ID).
		Str("status", string(result.Status)).
		Int("files_scanned", result.Analysis.FilesScanned).
		Int("files_modified", result.Analysis.FilesModified).
		Str("output", result.Analysis.OutputLocation).
		Msg("Modernization finished")

	fmt.Printf("Modernized project written to %s\n", result.Analysis.OutputLocation)
	for _, path := range result.ReportPaths {
		fmt.Printf("Report: %s\n", path)
	}

	if result.Status != models.ScanStatusCompleted {
		return exitPartial
	}
	return exitOK
}

// runBatch modernizes every project listed in the batch file, sequentially.
func runBatch(ctx context.Context, gCfg *config.GlobalConfig, projectScanner *scanner.ProjectScanner, flags AppFlags, zLogger zerolog.Logger) int {
	requests, err := readProjectList(flags.BatchFile)
	if err != nil {
		zLogger.Error().Err(err).Str("file", flags.BatchFile).Msg("Could not read batch file")
		return exitFailure
	}

	processor := batch.NewBatchProcessor(gCfg.BatchConfig, projectScanner, zLogger)
	if added := processor.AddAll(requests); added == 0 {
		zLogger.Error().Str("file", flags.BatchFile).Msg("No valid project paths in batch file")
		return exitFailure
	}

	report, err := processor.ProcessAll(ctx)
	if err != nil {
		zLogger.Error().Err(err).Msg("Batch processing failed")
		return exitFailure
	}

	if flags.BatchReportPath != "" {
		if err := processor.ExportReport(flags.BatchReportPath); err != nil {
			zLogger.Error().Err(err).Str("path", flags.BatchReportPath).Msg("Could not export batch report")
		}
	}

	fmt.Printf("Batch finished: %d succeeded, %d failed out of %d projects\n",
		report.Summary.SucceededProjects, report.Summary.FailedProjects, report.Summary.TotalProjects)

	if report.Summary.FailedProjects > 0 {
		return exitPartial
	}
	return exitOK
}

// readProjectList reads project paths from a text file, one per line. Blank
// lines and lines starting with '#' are skipped.
func readProjectList(path string) ([]models.ScanRequest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var requests []models.ScanRequest
	lineScanner := bufio.NewScanner(file)
	for lineScanner.Scan() {
		line := strings.TrimSpace(lineScanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		absPath, err := filepath.Abs(line)
		if err != nil {
			return nil, err
		}
		requests = append(requests, models.ScanRequest{ProjectPath: absPath})
	}
	if err := lineScanner.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}
