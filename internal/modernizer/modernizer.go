package modernizer

import (
	"fmt"
	"time"

	"github.com/aleister1102/springlift/internal/config"
	"github.com/aleister1102/springlift/internal/models"
	"github.com/rs/zerolog"
)

// JavaModernizer rewrites legacy Java sources toward the configured target
// Java and Spring Boot versions using an ordered regex rule table.
type JavaModernizer struct {
	config config.ModernizerConfig
	rules  []RewriteRule
	logger zerolog.Logger
	now    func() time.Time
}

// JavaModernizerBuilder provides a fluent interface for creating JavaModernizer
type JavaModernizerBuilder struct {
	config config.ModernizerConfig
	rules  []RewriteRule
	logger zerolog.Logger
	now    func() time.Time
}

// NewJavaModernizerBuilder creates a new builder
func NewJavaModernizerBuilder() *JavaModernizerBuilder {
	return &JavaModernizerBuilder{
		config: config.NewDefaultModernizerConfig(),
		rules:  DefaultRewriteRules(),
		logger: zerolog.Nop(),
		now:    time.Now,
	}
}

// WithConfig sets the modernizer configuration
func (b *JavaModernizerBuilder) WithConfig(cfg config.ModernizerConfig) *JavaModernizerBuilder {
	b.config = cfg
	return b
}

// WithRules replaces the default rule table
func (b *JavaModernizerBuilder) WithRules(rules []RewriteRule) *JavaModernizerBuilder {
	b.rules = rules
	return b
}

// WithLogger sets the logger
func (b *JavaModernizerBuilder) WithLogger(logger zerolog.Logger) *JavaModernizerBuilder {
	b.logger = logger
	return b
}

// WithClock overrides the timestamp source, used by tests
func (b *JavaModernizerBuilder) WithClock(now func() time.Time) *JavaModernizerBuilder {
	b.now = now
	return b
}

// Build creates a new JavaModernizer instance
func (b *JavaModernizerBuilder) Build() *JavaModernizer {
	return &JavaModernizer{
		config: b.config,
		rules:  b.rules,
		logger: b.logger.With().Str("component", "JavaModernizer").Logger(),
		now:    b.now,
	}
}

// NewJavaModernizer creates a modernizer with the default rule table
func NewJavaModernizer(cfg config.ModernizerConfig, logger zerolog.Logger) *JavaModernizer {
	return NewJavaModernizerBuilder().
		WithConfig(cfg).
		WithLogger(logger).
		Build()
}

// Modernize applies the rule table to the given source and returns the
// rewritten text plus one Transformation record per rule that matched. The
// text is returned unchanged (and without a header) when no rule matched.
func (m *JavaModernizer) Modernize(content, filename string) (string, []models.Transformation) {
	modernized := content
	var applied []models.Transformation

	for i := range m.rules {
		rule := &m.rules[i]
		if !rule.Applies(modernized) {
			continue
		}

		matches := rule.Pattern.FindAllStringIndex(modernized, -1)
		if len(matches) == 0 {
			continue
		}

		modernized = rule.Pattern.ReplaceAllString(modernized, rule.Replacement)
		applied = append(applied, models.Transformation{
			Rule:        rule.Name,
			Description: fmt.Sprintf("%s (%d occurrence(s))", rule.Description, len(matches)),
		})
	}

	if len(applied) == 0 {
		return content, nil
	}

	if m.config.AddModernizationHeader {
		modernized = m.buildHeader() + "\n" + modernized
	}

	m.logger.Debug().
		Str("file", filename).
		Int("rules_applied", len(applied)).
		Msg("Modernized Java source")

	return modernized, applied
}

// buildHeader renders the banner comment prepended to rewritten files.
func (m *JavaModernizer) buildHeader() string {
	return fmt.Sprintf(`/*
 * MODERNIZED BY SPRINGLIFT
 *
 * Upgrades applied:
 * - Target Java Version: %s (from 8/11)
 * - Target Spring Boot: %s (from 2.x)
 * - Namespace: javax.* -> jakarta.*
 * - Deprecated API usage reviewed
 *
 * Further modernizations recommended:
 * - Review and apply modern Java language features (records, sealed classes, pattern matching)
 * - Update dependency versions (see pom.xml or build.gradle)
 * - Replace anonymous inner classes with lambda expressions
 * - Use Optional instead of null checks
 *
 * Generated: %s
 */
`, m.config.TargetJavaVersion, m.config.TargetSpringBootVersion, m.now().Format("2006-01-02 15:04:05"))
}
