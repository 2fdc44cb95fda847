package logger

import (
	"path/filepath"
	"testing"

	"github.com/aleister1102/springlift/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultLogger(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	log, err := New(cfg)
	require.NoError(t, err)
	_ = log // ensure variable is used
}

func TestNew_InvalidLevelFallsBack(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	cfg.LogLevel = "nonsense"
	_, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestNewWithScanID_FileLogging(t *testing.T) {
	dir := t.TempDir()
	cfg := config.NewDefaultLogConfig()
	cfg.LogFile = filepath.Join(dir, "springlift.log")

	log, err := NewWithScanID(cfg, "20240101-120000")
	require.NoError(t, err)
	log.Info().Msg("scan started")

	assert.FileExists(t, filepath.Join(dir, "scans", "20240101-120000", "springlift.log"))
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatText, ParseFormat("TEXT"))
	assert.Equal(t, FormatConsole, ParseFormat("anything-else"))
}

func TestBuild_FileEnabledWithoutPath(t *testing.T) {
	builder := NewLoggerBuilder()
	builder.config.EnableFile = true
	builder.config.FilePath = ""
	_, err := builder.Build()
	assert.Error(t, err)
}
