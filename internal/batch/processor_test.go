package batch

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/springlift/internal/config"
	"github.com/aleister1102/springlift/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRunner fails for any project path listed in failPaths.
type stubRunner struct {
	failPaths map[string]bool
	calls     []string
}

func (r *stubRunner) Scan(_ context.Context, req models.ScanRequest) (*models.ScanResult, error) {
	r.calls = append(r.calls, req.ProjectPath)
	if r.failPaths[req.ProjectPath] {
		return nil, errors.New("boom")
	}
	return &models.ScanResult{
		ID:          "scan-" + filepath.Base(req.ProjectPath),
		ProjectPath: req.ProjectPath,
		Status:      models.ScanStatusCompleted,
		DiffSummary: &models.ProjectDiffSummary{
			Summary: models.DiffSummaryTotals{
				TotalFilesModified: 2,
				TotalLinesChanged:  10,
				AverageDiffRatio:   90,
			},
		},
	}, nil
}

func newBatch(t *testing.T, runner ProjectRunner) *BatchProcessor {
	t.Helper()
	return NewBatchProcessor(config.NewDefaultBatchConfig(), runner, zerolog.Nop())
}

func makeDirs(t *testing.T, n int) []string {
	t.Helper()
	dirs := make([]string, n)
	for i := range dirs {
		dirs[i] = t.TempDir()
	}
	return dirs
}

func TestAdd_RejectsBadPaths(t *testing.T) {
	bp := newBatch(t, &stubRunner{})

	assert.Error(t, bp.Add(models.ScanRequest{ProjectPath: filepath.Join(t.TempDir(), "missing")}))

	file := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	assert.Error(t, bp.Add(models.ScanRequest{ProjectPath: file}))

	assert.Equal(t, 0, bp.QueueLength())
}

func TestProcessAll_SequentialInSubmissionOrder(t *testing.T) {
	dirs := makeDirs(t, 3)
	runner := &stubRunner{}
	bp := newBatch(t, runner)

	added := bp.AddAll([]models.ScanRequest{
		{ProjectPath: dirs[0]},
		{ProjectPath: dirs[1]},
		{ProjectPath: dirs[2]},
	})
	require.Equal(t, 3, added)

	report, err := bp.ProcessAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, dirs, runner.calls)
	require.Len(t, report.Projects, 3)
	for i, item := range report.Projects {
		assert.Equal(t, dirs[i], item.Request.ProjectPath)
		assert.True(t, item.Succeeded())
	}
	assert.Equal(t, 3, report.Summary.SucceededProjects)
	assert.Equal(t, 0, report.Summary.FailedProjects)
	assert.Equal(t, 6, report.Summary.TotalFilesChanged)
	assert.Equal(t, 30, report.Summary.TotalLinesChanged)
	assert.Equal(t, 90.0, report.Summary.AverageDiffRatio)
}

func TestProcessAll_PartialFailure(t *testing.T) {
	dirs := makeDirs(t, 3)
	runner := &stubRunner{failPaths: map[string]bool{dirs[1]: true}}
	bp := newBatch(t, runner)
	bp.AddAll([]models.ScanRequest{
		{ProjectPath: dirs[0]},
		{ProjectPath: dirs[1]},
		{ProjectPath: dirs[2]},
	})

	report, err := bp.ProcessAll(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Projects, 3)
	assert.Equal(t, 2, report.Summary.SucceededProjects)
	assert.Equal(t, 1, report.Summary.FailedProjects)
	assert.Equal(t, "boom", report.Projects[1].Error)
	// failed project excluded from aggregate statistics
	assert.Equal(t, 4, report.Summary.TotalFilesChanged)
}

func TestProcessAll_StopOnFailure(t *testing.T) {
	dirs := makeDirs(t, 3)
	runner := &stubRunner{failPaths: map[string]bool{dirs[0]: true}}
	cfg := config.NewDefaultBatchConfig()
	cfg.StopOnFailure = true
	bp := NewBatchProcessor(cfg, runner, zerolog.Nop())
	bp.AddAll([]models.ScanRequest{
		{ProjectPath: dirs[0]},
		{ProjectPath: dirs[1]},
		{ProjectPath: dirs[2]},
	})

	report, err := bp.ProcessAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, report.Projects, 1)
	assert.Len(t, runner.calls, 1)
}

func TestProcessAll_CancelledBeforeStart(t *testing.T) {
	dirs := makeDirs(t, 3)
	runner := &stubRunner{}
	bp := newBatch(t, runner)
	bp.AddAll([]models.ScanRequest{
		{ProjectPath: dirs[0]},
		{ProjectPath: dirs[1]},
		{ProjectPath: dirs[2]},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := bp.ProcessAll(ctx)
	require.NoError(t, err)

	assert.Empty(t, runner.calls)
	require.Len(t, report.Projects, 3)
	for _, item := range report.Projects {
		assert.False(t, item.Succeeded())
		assert.Contains(t, item.Error, "cancelled before project started")
	}
	assert.Equal(t, 3, report.Summary.FailedProjects)
}

// cancellingRunner cancels the batch context during its first scan.
type cancellingRunner struct {
	stubRunner
	cancel context.CancelFunc
}

func (r *cancellingRunner) Scan(ctx context.Context, req models.ScanRequest) (*models.ScanResult, error) {
	r.cancel()
	return r.stubRunner.Scan(ctx, req)
}

func TestProcessAll_CancelledMidBatch(t *testing.T) {
	dirs := makeDirs(t, 3)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runner := &cancellingRunner{cancel: cancel}
	bp := newBatch(t, runner)
	bp.AddAll([]models.ScanRequest{
		{ProjectPath: dirs[0]},
		{ProjectPath: dirs[1]},
		{ProjectPath: dirs[2]},
	})

	report, err := bp.ProcessAll(ctx)
	require.NoError(t, err)

	// first project finishes, the remaining two never start
	assert.Len(t, runner.calls, 1)
	require.Len(t, report.Projects, 3)
	assert.True(t, report.Projects[0].Succeeded())
	assert.False(t, report.Projects[1].Succeeded())
	assert.False(t, report.Projects[2].Succeeded())
	assert.Equal(t, 1, report.Summary.SucceededProjects)
	assert.Equal(t, 2, report.Summary.FailedProjects)
}

func TestProcessAll_EmptyQueue(t *testing.T) {
	bp := newBatch(t, &stubRunner{})
	_, err := bp.ProcessAll(context.Background())
	assert.Error(t, err)
}

func TestExportReport(t *testing.T) {
	dirs := makeDirs(t, 1)
	bp := newBatch(t, &stubRunner{})
	bp.AddAll([]models.ScanRequest{{ProjectPath: dirs[0]}})
	_, err := bp.ProcessAll(context.Background())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "batch.json")
	require.NoError(t, bp.ExportReport(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "summary")
	assert.Contains(t, decoded, "projects")
}

func TestClear(t *testing.T) {
	dirs := makeDirs(t, 1)
	bp := newBatch(t, &stubRunner{})
	bp.AddAll([]models.ScanRequest{{ProjectPath: dirs[0]}})
	_, err := bp.ProcessAll(context.Background())
	require.NoError(t, err)

	bp.Clear()
	assert.Equal(t, 0, bp.QueueLength())
	assert.Equal(t, 0, bp.Summary().TotalProjects)
}
