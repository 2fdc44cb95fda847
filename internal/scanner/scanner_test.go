package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/springlift/internal/datastore"
	"github.com/aleister1102/springlift/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacyJavaSource = `import javax.servlet.Filter;
import javax.servlet.http.HttpServletRequest;

public class LegacyFilter {
}
`

const legacyPomSource = `<?xml version="1.0" encoding="UTF-8"?>
<project>
    <parent>
        <groupId>org.springframework.boot</groupId>
        <artifactId>spring-boot-starter-parent</artifactId>
        <version>2.7.5</version>
    </parent>
    <artifactId>demo</artifactId>
    <properties>
        <java.version>1.8</java.version>
    </properties>
</project>
`

func writeProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "main", "java"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "main", "resources"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main", "java", "LegacyFilter.java"), []byte(legacyJavaSource), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pom.xml"), []byte(legacyPomSource), 0644))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "src", "main", "resources", "application.properties"),
		[]byte("spring.resources.static-locations=classpath:/static/\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# demo\n"), 0644))

	return dir
}

func newTestScanner(t *testing.T, store *datastore.ScanResultStore) *ProjectScanner {
	t.Helper()
	s, err := NewProjectScannerBuilder().WithStore(store).Build()
	require.NoError(t, err)
	return s
}

func TestScan_FullProject(t *testing.T) {
	dir := writeProject(t)
	store := datastore.NewScanResultStore()
	s := newTestScanner(t, store)

	result, err := s.Scan(context.Background(), models.ScanRequest{ProjectPath: dir})
	require.NoError(t, err)

	assert.Equal(t, models.ScanStatusCompleted, result.Status)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, filepath.Base(dir), result.ProjectName)
	assert.Equal(t, 1, result.Analysis.FilesScanned)
	assert.Equal(t, 1, result.Analysis.FilesModified)
	assert.Empty(t, result.Analysis.FailedFiles)

	// modernized Java file written with jakarta imports
	outputPath := dir + "_modernized"
	data, err := os.ReadFile(filepath.Join(outputPath, "src", "main", "java", "LegacyFilter.java"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "import jakarta.servlet.Filter;")

	// pom copied and updated in the output tree, original untouched
	copiedPom, err := os.ReadFile(filepath.Join(outputPath, "pom.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(copiedPom), "<java.version>21</java.version>")
	originalPom, err := os.ReadFile(filepath.Join(dir, "pom.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(originalPom), "<java.version>1.8</java.version>")

	// non-Java files copied
	assert.FileExists(t, filepath.Join(outputPath, "README.md"))
	assert.Greater(t, result.Analysis.FilesCopied, 0)

	// build and config analyses present
	require.Len(t, result.Analysis.BuildFiles, 1)
	assert.Equal(t, "maven", result.Analysis.BuildFiles[0].Kind)
	assert.True(t, result.Analysis.BuildFiles[0].Updated)
	assert.NotEmpty(t, result.Analysis.ConfigFiles)

	// diff summary covers the single modified file
	require.NotNil(t, result.DiffSummary)
	assert.Equal(t, 1, result.DiffSummary.Summary.TotalFilesAnalyzed)
	assert.Equal(t, 1, result.DiffSummary.Summary.TotalFilesModified)
	assert.NotEmpty(t, result.DiffSummary.ChangeCategories)

	// stored under its scan ID
	stored, err := store.Get(result.ID)
	require.NoError(t, err)
	assert.Equal(t, result.ID, stored.ID)
}

func TestScan_InvalidPath(t *testing.T) {
	s := newTestScanner(t, nil)

	_, err := s.Scan(context.Background(), models.ScanRequest{ProjectPath: "relative/path"})
	assert.Error(t, err)

	_, err = s.Scan(context.Background(), models.ScanRequest{ProjectPath: filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, err)
}

func TestScan_CancelledContext(t *testing.T) {
	dir := writeProject(t)
	s := newTestScanner(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Scan(ctx, models.ScanRequest{ProjectPath: dir})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessJavaFiles_CancelledFilesRecordedAsFailed(t *testing.T) {
	dir := writeProject(t)
	s := newTestScanner(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := &models.ScanResult{}
	reports := s.processJavaFiles(ctx, dir, t.TempDir(), result)

	assert.Empty(t, reports)
	assert.Equal(t, 0, result.Analysis.FilesScanned)
	require.Len(t, result.Analysis.FailedFiles, 1)
	assert.Contains(t, result.Analysis.FailedFiles[0].Error, "cancelled before processing")
}

func TestProcessJavaFiles_WalkFailureRecorded(t *testing.T) {
	s := newTestScanner(t, nil)
	missing := filepath.Join(t.TempDir(), "gone")

	result := &models.ScanResult{}
	reports := s.processJavaFiles(context.Background(), missing, t.TempDir(), result)

	assert.Empty(t, reports)
	require.Len(t, result.Analysis.FailedFiles, 1)
	assert.Equal(t, missing, result.Analysis.FailedFiles[0].Path)
}

type stubAdvisor struct {
	notes string
	err   error
}

func (a *stubAdvisor) Analyze(_ context.Context, _, _ string) (string, error) {
	return a.notes, a.err
}

func TestScan_AdvisorNotesAttached(t *testing.T) {
	dir := writeProject(t)
	s, err := NewProjectScannerBuilder().
		WithAdvisor(&stubAdvisor{notes: "consider records"}).
		Build()
	require.NoError(t, err)

	result, err := s.Scan(context.Background(), models.ScanRequest{ProjectPath: dir})
	require.NoError(t, err)
	require.Len(t, result.Analysis.JavaFiles, 1)
	assert.Equal(t, "consider records", result.Analysis.JavaFiles[0].AdvisorNotes)
}

func TestValidateProjectPath(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, ValidateProjectPath(dir))
	assert.Error(t, ValidateProjectPath(""))
	assert.Error(t, ValidateProjectPath("not/absolute"))
	assert.Error(t, ValidateProjectPath(dir+"/../escape"))
	assert.Error(t, ValidateProjectPath(filepath.Join(dir, "missing")))

	filePath := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("x"), 0644))
	assert.Error(t, ValidateProjectPath(filePath))
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "a_b_c", SanitizeFilename(`a/b\c`))
	assert.Equal(t, "report_html", SanitizeFilename("report..html"))
	assert.Equal(t, "sanitized_file", SanitizeFilename("  . "))
	assert.Equal(t, "plain.txt", SanitizeFilename("plain.txt"))
}

func TestFindJavaFiles_SkipsExcludedDirs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "target"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "demo_modernized"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "A.java"), []byte("class A {}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "target", "B.java"), []byte("class B {}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "demo_modernized", "C.java"), []byte("class C {}"), 0644))

	s := newTestScanner(t, nil)
	files, err := s.walker.FindJavaFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "src", "A.java"), files[0])
}
