package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aleister1102/springlift/internal/common/errorwrapper"
)

// maxPathLength caps accepted project paths.
const maxPathLength = 4096

var (
	controlCharPattern    = regexp.MustCompile(`[\x00-\x1f]`)
	unsafeFilenamePattern = regexp.MustCompile(`[<>:"/\\|?*]`)
	repeatedDotsPattern   = regexp.MustCompile(`\.{2,}`)
)

// ValidateProjectPath checks that a project path is safe and usable: within
// the length limit, free of traversal sequences and control characters,
// absolute, existing, a directory, and readable.
func ValidateProjectPath(path string) error {
	if path == "" {
		return errorwrapper.NewPathError(path, "project path cannot be empty", errorwrapper.ErrInvalidInput)
	}

	if len(path) > maxPathLength {
		return errorwrapper.NewPathError(path, fmt.Sprintf("project path exceeds maximum length of %d characters", maxPathLength), errorwrapper.ErrInvalidInput)
	}

	if strings.Contains(path, "..") {
		return errorwrapper.NewPathError(path, "project path contains parent directory traversal", errorwrapper.ErrInvalidInput)
	}

	if controlCharPattern.MatchString(path) {
		return errorwrapper.NewPathError(path, "project path contains control characters", errorwrapper.ErrInvalidInput)
	}

	normalized := filepath.Clean(path)
	if !filepath.IsAbs(normalized) {
		return errorwrapper.NewPathError(path, "project path must be absolute", errorwrapper.ErrInvalidInput)
	}

	info, err := os.Stat(normalized)
	if err != nil {
		if os.IsNotExist(err) {
			return errorwrapper.NewPathError(normalized, "project path does not exist", errorwrapper.ErrNotFound)
		}
		return errorwrapper.NewPathError(normalized, "project path is not accessible", err)
	}

	if !info.IsDir() {
		return errorwrapper.NewPathError(normalized, "project path is not a directory", errorwrapper.ErrInvalidInput)
	}

	dir, err := os.Open(normalized)
	if err != nil {
		return errorwrapper.NewPathError(normalized, "no read permission for project path", errorwrapper.ErrPermissionDenied)
	}
	_ = dir.Close()

	return nil
}

// SanitizeFilename strips characters that are unsafe in report or output file
// names and bounds the length.
func SanitizeFilename(filename string) string {
	filename = unsafeFilenamePattern.ReplaceAllString(filename, "_")
	filename = controlCharPattern.ReplaceAllString(filename, "")
	filename = repeatedDotsPattern.ReplaceAllString(filename, "_")
	filename = strings.Trim(filename, " .")

	if filename == "" {
		return "sanitized_file"
	}
	if len(filename) > 255 {
		filename = filename[:255]
	}
	return filename
}
