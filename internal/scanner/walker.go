package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aleister1102/springlift/internal/common/errorwrapper"
	"github.com/aleister1102/springlift/internal/config"
	"github.com/rs/zerolog"
)

// ProjectWalker discovers files in a project tree, skipping excluded
// directories and previously generated output directories.
type ProjectWalker struct {
	excludedDirs    map[string]bool
	outputDirSuffix string
	logger          zerolog.Logger
}

// NewProjectWalker creates a walker from the scanner configuration
func NewProjectWalker(cfg config.ScannerConfig, logger zerolog.Logger) *ProjectWalker {
	excluded := make(map[string]bool, len(cfg.ExcludedDirs))
	for _, dir := range cfg.ExcludedDirs {
		excluded[dir] = true
	}
	return &ProjectWalker{
		excludedDirs:    excluded,
		outputDirSuffix: cfg.OutputDirSuffix,
		logger:          logger.With().Str("component", "ProjectWalker").Logger(),
	}
}

// skipDir reports whether a directory should be pruned from the walk.
func (w *ProjectWalker) skipDir(name string) bool {
	if strings.HasSuffix(name, w.outputDirSuffix) {
		return true
	}
	if strings.HasPrefix(name, ".") && name != "." {
		return true
	}
	return w.excludedDirs[name]
}

// FindJavaFiles returns the paths of all .java files under root, in walk
// order.
func (w *ProjectWalker) FindJavaFiles(root string) ([]string, error) {
	var javaFiles []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// an unreadable root means the walk found nothing at all
			if path == root {
				return err
			}
			w.logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable path")
			return nil
		}
		if d.IsDir() {
			if path != root && w.skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), ".java") {
			javaFiles = append(javaFiles, path)
		}
		return nil
	})
	if err != nil {
		return nil, errorwrapper.NewPathError(root, "failed to walk project tree", err)
	}

	return javaFiles, nil
}

// CopyNonJavaFiles mirrors every non-Java file from root into outputPath,
// preserving the directory structure. Unreadable files are logged and
// skipped. Returns the number of files copied.
func (w *ProjectWalker) CopyNonJavaFiles(root, outputPath string) (int, error) {
	copied := 0

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			w.logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable path")
			return nil
		}
		if d.IsDir() {
			if path != root && w.skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), ".java") {
			return nil
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		if copyErr := w.copyFile(path, filepath.Join(outputPath, relPath)); copyErr != nil {
			w.logger.Warn().Err(copyErr).Str("path", path).Msg("Could not copy file")
			return nil
		}
		copied++
		return nil
	})
	if err != nil {
		return copied, errorwrapper.NewPathError(root, "failed to copy project files", err)
	}

	return copied, nil
}

// copyFile copies src to dst, creating parent directories as needed and
// preserving the source file mode.
func (w *ProjectWalker) copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	return os.WriteFile(dst, data, info.Mode().Perm())
}
