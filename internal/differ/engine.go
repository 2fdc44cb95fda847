package differ

import (
	"unicode/utf8"

	"github.com/aleister1102/springlift/internal/common/errorwrapper"
	"github.com/aleister1102/springlift/internal/config"
	"github.com/aleister1102/springlift/internal/models"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/rs/zerolog"
)

// SequenceDiffEngine compares an original and a modernized version of a file
// and produces a structured, classified diff report. The engine is stateless:
// every Compare call is independent and safe to run from any goroutine.
type SequenceDiffEngine struct {
	config config.DiffConfig
	ratio  *RatioCalculator
	logger zerolog.Logger
}

// SequenceDiffEngineBuilder provides a fluent interface for creating SequenceDiffEngine
type SequenceDiffEngineBuilder struct {
	config config.DiffConfig
	logger zerolog.Logger
}

// NewSequenceDiffEngineBuilder creates a new builder
func NewSequenceDiffEngineBuilder() *SequenceDiffEngineBuilder {
	return &SequenceDiffEngineBuilder{
		config: config.NewDefaultDiffConfig(),
		logger: zerolog.Nop(),
	}
}

// WithConfig sets the diff configuration
func (b *SequenceDiffEngineBuilder) WithConfig(cfg config.DiffConfig) *SequenceDiffEngineBuilder {
	b.config = cfg
	return b
}

// WithLogger sets the logger
func (b *SequenceDiffEngineBuilder) WithLogger(logger zerolog.Logger) *SequenceDiffEngineBuilder {
	b.logger = logger
	return b
}

// Build creates a new SequenceDiffEngine instance
func (b *SequenceDiffEngineBuilder) Build() (*SequenceDiffEngine, error) {
	if b.config.ContextLines < 0 {
		return nil, errorwrapper.NewValidationError("context_lines", b.config.ContextLines, "context lines must not be negative")
	}

	return &SequenceDiffEngine{
		config: b.config,
		ratio:  NewRatioCalculator(),
		logger: b.logger.With().Str("component", "SequenceDiffEngine").Logger(),
	}, nil
}

// NewSequenceDiffEngine creates a new engine with the given configuration
func NewSequenceDiffEngine(cfg config.DiffConfig, logger zerolog.Logger) (*SequenceDiffEngine, error) {
	return NewSequenceDiffEngineBuilder().
		WithConfig(cfg).
		WithLogger(logger).
		Build()
}

// Compare aligns the original and modernized text line by line and returns a
// report with line statistics, a character-level similarity ratio, a unified
// diff, and the classified changed sections. The identifier is an opaque
// label copied into the output.
func (e *SequenceDiffEngine) Compare(original, modernized, identifier string) (*models.FileDiffReport, error) {
	if !utf8.ValidString(original) {
		return nil, errorwrapper.WrapError(errorwrapper.ErrMalformedInput, "original text is not valid UTF-8")
	}
	if !utf8.ValidString(modernized) {
		return nil, errorwrapper.WrapError(errorwrapper.ErrMalformedInput, "modernized text is not valid UTF-8")
	}

	originalLines := SplitLines(original)
	modernizedLines := SplitLines(modernized)

	opcodes := difflib.NewMatcher(originalLines, modernizedLines).GetOpCodes()
	added, removed := countLineChanges(opcodes)

	unifiedDiff, err := e.buildUnifiedDiff(originalLines, modernizedLines, identifier)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to build unified diff")
	}

	report := &models.FileDiffReport{
		Filename:        identifier,
		OriginalLines:   len(originalLines),
		ModernizedLines: len(modernizedLines),
		AddedLines:      added,
		RemovedLines:    removed,
		ChangedLines:    added + removed,
		DiffRatio:       e.ratio.Ratio(original, modernized),
		UnifiedDiff:     unifiedDiff,
		ChangedSections: sectionsFromOpcodes(opcodes, originalLines, modernizedLines),
	}

	e.logger.Debug().
		Str("identifier", identifier).
		Int("changed_lines", report.ChangedLines).
		Float64("diff_ratio", report.DiffRatio).
		Msg("Compared file contents")

	return report, nil
}

// countLineChanges totals added and removed lines over the opcode list.
// Replace opcodes contribute to both sides.
func countLineChanges(opcodes []difflib.OpCode) (added, removed int) {
	for _, op := range opcodes {
		switch op.Tag {
		case 'i':
			added += op.J2 - op.J1
		case 'd':
			removed += op.I2 - op.I1
		case 'r':
			added += op.J2 - op.J1
			removed += op.I2 - op.I1
		}
	}
	return added, removed
}

// buildUnifiedDiff renders the alignment as unified-patch text labelled with
// the original/<id> and modernized/<id> file names.
func (e *SequenceDiffEngine) buildUnifiedDiff(originalLines, modernizedLines []string, identifier string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        originalLines,
		B:        modernizedLines,
		FromFile: "original/" + identifier,
		ToFile:   "modernized/" + identifier,
		Context:  e.config.ContextLines,
	})
}
