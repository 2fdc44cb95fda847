package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/aleister1102/springlift/internal/common/errorwrapper"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Modernizer Defaults
	DefaultTargetJavaVersion       = "21"
	DefaultTargetSpringBootVersion = "3.2.0"
	DefaultAddModernizationHeader  = true

	// Reporter Defaults
	DefaultReporterOutputDirName = "reports"
	DefaultReportTitle           = "SpringLift Modernization Report"
	DefaultDiffPreviewFiles      = 5

	// Diff Defaults
	DefaultDiffContextLines = 3

	// Scanner Defaults
	DefaultOutputDirSuffix = "_modernized"

	// Batch Defaults
	DefaultBatchMemoryWarnPercent = 85.0
)

type GlobalConfig struct {
	BatchConfig      BatchConfig      `json:"batch_config,omitempty" yaml:"batch_config,omitempty"`
	DiffConfig       DiffConfig       `json:"diff_config,omitempty" yaml:"diff_config,omitempty"`
	LogConfig        LogConfig        `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	ModernizerConfig ModernizerConfig `json:"modernizer_config,omitempty" yaml:"modernizer_config,omitempty"`
	ReporterConfig   ReporterConfig   `json:"reporter_config,omitempty" yaml:"reporter_config,omitempty"`
	ScannerConfig    ScannerConfig    `json:"scanner_config,omitempty" yaml:"scanner_config,omitempty"`
}

func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		BatchConfig:      NewDefaultBatchConfig(),
		DiffConfig:       NewDefaultDiffConfig(),
		LogConfig:        NewDefaultLogConfig(),
		ModernizerConfig: NewDefaultModernizerConfig(),
		ReporterConfig:   NewDefaultReporterConfig(),
		ScannerConfig:    NewDefaultScannerConfig(),
	}
}

type LogConfig struct {
	LogFile       string `json:"log_file,omitempty" yaml:"log_file,omitempty"`
	LogFormat     string `json:"log_format,omitempty" yaml:"log_format,omitempty" validate:"omitempty,logformat"`
	LogLevel      string `json:"log_level,omitempty" yaml:"log_level,omitempty" validate:"omitempty,loglevel"`
	MaxLogBackups int    `json:"max_log_backups,omitempty" yaml:"max_log_backups,omitempty"`
	MaxLogSizeMB  int    `json:"max_log_size_mb,omitempty" yaml:"max_log_size_mb,omitempty"`
}

func NewDefaultLogConfig() LogConfig {
	return LogConfig{
		LogFile:       DefaultLogFile,
		LogFormat:     DefaultLogFormat,
		LogLevel:      DefaultLogLevel,
		MaxLogBackups: DefaultMaxLogBackups,
		MaxLogSizeMB:  DefaultMaxLogSizeMB,
	}
}

type ModernizerConfig struct {
	AddModernizationHeader  bool   `json:"add_modernization_header" yaml:"add_modernization_header"`
	TargetJavaVersion       string `json:"target_java_version,omitempty" yaml:"target_java_version,omitempty"`
	TargetSpringBootVersion string `json:"target_spring_boot_version,omitempty" yaml:"target_spring_boot_version,omitempty"`
}

func NewDefaultModernizerConfig() ModernizerConfig {
	return ModernizerConfig{
		AddModernizationHeader:  DefaultAddModernizationHeader,
		TargetJavaVersion:       DefaultTargetJavaVersion,
		TargetSpringBootVersion: DefaultTargetSpringBootVersion,
	}
}

type DiffConfig struct {
	ContextLines int `json:"context_lines,omitempty" yaml:"context_lines,omitempty" validate:"omitempty,min=0"`
}

func NewDefaultDiffConfig() DiffConfig {
	return DiffConfig{
		ContextLines: DefaultDiffContextLines,
	}
}

type ReporterConfig struct {
	DiffPreviewFiles int    `json:"diff_preview_files,omitempty" yaml:"diff_preview_files,omitempty" validate:"omitempty,min=0"`
	GenerateHTML     bool   `json:"generate_html" yaml:"generate_html"`
	GenerateJSON     bool   `json:"generate_json" yaml:"generate_json"`
	OutputDirName    string `json:"output_dir_name,omitempty" yaml:"output_dir_name,omitempty"`
	ReportTitle      string `json:"report_title,omitempty" yaml:"report_title,omitempty"`
}

func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		DiffPreviewFiles: DefaultDiffPreviewFiles,
		GenerateHTML:     true,
		GenerateJSON:     true,
		OutputDirName:    DefaultReporterOutputDirName,
		ReportTitle:      DefaultReportTitle,
	}
}

type ScannerConfig struct {
	ExcludedDirs    []string `json:"excluded_dirs,omitempty" yaml:"excluded_dirs,omitempty"`
	OutputDirSuffix string   `json:"output_dir_suffix,omitempty" yaml:"output_dir_suffix,omitempty"`
}

func NewDefaultScannerConfig() ScannerConfig {
	return ScannerConfig{
		ExcludedDirs:    []string{".git", ".idea", "target", "build", "node_modules"},
		OutputDirSuffix: DefaultOutputDirSuffix,
	}
}

type BatchConfig struct {
	MemoryWarnPercent float64 `json:"memory_warn_percent,omitempty" yaml:"memory_warn_percent,omitempty" validate:"omitempty,min=0,max=100"`
	StopOnFailure     bool    `json:"stop_on_failure" yaml:"stop_on_failure"`
}

func NewDefaultBatchConfig() BatchConfig {
	return BatchConfig{
		MemoryWarnPercent: DefaultBatchMemoryWarnPercent,
		StopOnFailure:     false,
	}
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// It determines the config file path using GetConfigPath and supports both
// JSON and YAML formats. YAML is preferred if the file extension is .yaml or .yml.
func LoadGlobalConfig(providedPath string, logger zerolog.Logger) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read config file")
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse config content")
	}

	logger.Debug().Str("path", filePath).Msg("Loaded global configuration")
	return cfg, nil
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	ext := filepath.Ext(filePath)
	if isYAMLFile(ext) {
		return parseYAMLConfig(data, filePath, cfg)
	}
	return parseJSONConfig(data, filePath, cfg)
}

// isYAMLFile checks if the file extension indicates a YAML file
func isYAMLFile(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}

// parseYAMLConfig parses YAML configuration
func parseYAMLConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errorwrapper.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
	}
	return nil
}

// parseJSONConfig parses JSON configuration
func parseJSONConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := json.Unmarshal(data, cfg); err != nil {
		return errorwrapper.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}
