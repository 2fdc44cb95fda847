package batch

import (
	"context"
	"encoding/json"
	"math"
	"os"
	"time"

	"github.com/aleister1102/springlift/internal/common/errorwrapper"
	"github.com/aleister1102/springlift/internal/config"
	"github.com/aleister1102/springlift/internal/differ"
	"github.com/aleister1102/springlift/internal/models"
	"github.com/rs/zerolog"
)

// ProjectRunner modernizes one project. Satisfied by scanner.ProjectScanner.
type ProjectRunner interface {
	Scan(ctx context.Context, req models.ScanRequest) (*models.ScanResult, error)
}

// BatchProcessor runs many projects through a ProjectRunner, strictly in
// submission order, one at a time. Per-project failures are recorded and do
// not stop the batch unless StopOnFailure is set.
type BatchProcessor struct {
	config   config.BatchConfig
	runner   ProjectRunner
	memCheck *MemoryChecker
	logger   zerolog.Logger
	queue    []models.ScanRequest
	report   models.BatchReport
}

// NewBatchProcessor creates a batch processor over the given runner
func NewBatchProcessor(cfg config.BatchConfig, runner ProjectRunner, logger zerolog.Logger) *BatchProcessor {
	return &BatchProcessor{
		config:   cfg,
		runner:   runner,
		memCheck: NewMemoryChecker(cfg.MemoryWarnPercent, logger),
		logger:   logger.With().Str("component", "BatchProcessor").Logger(),
	}
}

// Add queues one project. The path must exist and be a directory.
func (bp *BatchProcessor) Add(req models.ScanRequest) error {
	info, err := os.Stat(req.ProjectPath)
	if err != nil {
		return errorwrapper.NewPathError(req.ProjectPath, "project path does not exist", err)
	}
	if !info.IsDir() {
		return errorwrapper.NewPathError(req.ProjectPath, "project path is not a directory", errorwrapper.ErrInvalidInput)
	}

	bp.queue = append(bp.queue, req)
	bp.logger.Info().Str("path", req.ProjectPath).Msg("Added project to batch")
	return nil
}

// AddAll queues many projects and returns how many were accepted. Rejected
// paths are logged and skipped.
func (bp *BatchProcessor) AddAll(requests []models.ScanRequest) int {
	added := 0
	for _, req := range requests {
		if err := bp.Add(req); err != nil {
			bp.logger.Error().Err(err).Str("path", req.ProjectPath).Msg("Rejected batch project")
			continue
		}
		added++
	}
	bp.logger.Info().Int("added", added).Msg("Queued batch projects")
	return added
}

// ProcessAll runs every queued project sequentially and returns the batch
// report. Results keep submission order, which also fixes tie ordering in
// any downstream ranking. Cancelling the context stops the batch between
// projects; the ones not yet started are recorded as failed.
func (bp *BatchProcessor) ProcessAll(ctx context.Context) (*models.BatchReport, error) {
	if len(bp.queue) == 0 {
		return nil, errorwrapper.WrapError(errorwrapper.ErrInvalidInput, "no projects in batch queue")
	}

	bp.report = models.BatchReport{StartedAt: time.Now()}
	bp.logger.Info().Int("projects", len(bp.queue)).Msg("Starting batch processing")

	for idx, req := range bp.queue {
		if err := ctx.Err(); err != nil {
			bp.logger.Warn().Err(err).Int("remaining", len(bp.queue)-idx).Msg("Batch cancelled")
			for _, pending := range bp.queue[idx:] {
				bp.report.Projects = append(bp.report.Projects, models.BatchProjectResult{
					Request: pending,
					Error:   errorwrapper.WrapError(err, "cancelled before project started").Error(),
				})
			}
			break
		}

		bp.memCheck.Check()
		bp.logger.Info().
			Int("current", idx+1).
			Int("total", len(bp.queue)).
			Str("path", req.ProjectPath).
			Msg("Processing batch project")

		itemStart := time.Now()
		result, err := bp.runner.Scan(ctx, req)
		item := models.BatchProjectResult{
			Request:  req,
			Result:   result,
			Duration: time.Since(itemStart),
		}
		if err != nil {
			item.Error = err.Error()
			bp.logger.Error().Err(err).Str("path", req.ProjectPath).Msg("Batch project failed")
		}

		bp.report.Projects = append(bp.report.Projects, item)

		if err != nil && bp.config.StopOnFailure {
			bp.logger.Warn().Msg("Stopping batch after failure")
			break
		}
	}

	bp.report.FinishedAt = time.Now()
	bp.report.Summary = bp.Summary()
	bp.logger.Info().
		Int("succeeded", bp.report.Summary.SucceededProjects).
		Int("failed", bp.report.Summary.FailedProjects).
		Msg("Batch processing complete")

	return &bp.report, nil
}

// Summary aggregates the processed results so far.
func (bp *BatchProcessor) Summary() models.BatchSummary {
	summary := models.BatchSummary{TotalProjects: len(bp.report.Projects)}

	ratioSum := 0.0
	ratioCount := 0
	for _, item := range bp.report.Projects {
		if !item.Succeeded() {
			summary.FailedProjects++
			continue
		}
		summary.SucceededProjects++
		if item.Result.DiffSummary != nil {
			summary.TotalFilesChanged += item.Result.DiffSummary.Summary.TotalFilesModified
			summary.TotalLinesChanged += item.Result.DiffSummary.Summary.TotalLinesChanged
			ratioSum += item.Result.DiffSummary.Summary.AverageDiffRatio
			ratioCount++
		}
	}

	if ratioCount > 0 {
		summary.AverageDiffRatio = math.Round(ratioSum/float64(ratioCount)*100) / 100
	} else {
		summary.AverageDiffRatio = 100.0
	}

	return summary
}

// MostModifiedAcrossBatch merges every successful project's diff reports into
// one project-wide ranking, preserving submission order on ties.
func (bp *BatchProcessor) MostModifiedAcrossBatch() []models.MostModifiedFile {
	var reports []models.FileDiffReport
	for _, item := range bp.report.Projects {
		if item.Succeeded() && item.Result.DiffSummary != nil {
			reports = append(reports, item.Result.DiffSummary.Files...)
		}
	}
	return differ.Summarize(reports).MostModifiedFiles
}

// ExportReport writes the batch report as indented JSON.
func (bp *BatchProcessor) ExportReport(path string) error {
	data, err := json.MarshalIndent(bp.report, "", "  ")
	if err != nil {
		return errorwrapper.WrapError(err, "failed to marshal batch report")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errorwrapper.NewPathError(path, "failed to write batch report", err)
	}
	bp.logger.Info().Str("path", path).Msg("Batch report exported")
	return nil
}

// Clear resets the queue and report for the next batch.
func (bp *BatchProcessor) Clear() {
	bp.queue = nil
	bp.report = models.BatchReport{}
	bp.logger.Info().Msg("Batch processor cleared")
}

// QueueLength returns the number of queued projects.
func (bp *BatchProcessor) QueueLength() int {
	return len(bp.queue)
}
