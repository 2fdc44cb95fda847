package modernizer

import (
	"regexp"
	"strings"
)

// RewriteRule is one regex-driven source transformation. The optional Guard
// lets a rule opt out on files where the replacement would be meaningless,
// e.g. Spring annotations in plain Java code.
type RewriteRule struct {
	Name        string
	Description string
	Pattern     *regexp.Regexp
	Replacement string
	Guard       func(content string) bool
}

// Applies reports whether the rule should run against the given content.
func (r *RewriteRule) Applies(content string) bool {
	return r.Guard == nil || r.Guard(content)
}

// DefaultRewriteRules returns the ordered rule table for Java source files.
// Rules run top to bottom; later rules see the output of earlier ones.
func DefaultRewriteRules() []RewriteRule {
	return []RewriteRule{
		{
			Name:        "javax_to_jakarta",
			Description: "Migrated javax.* imports to jakarta.*",
			Pattern:     regexp.MustCompile(`import\s+javax\.`),
			Replacement: "import jakarta.",
		},
		{
			Name:        "eureka_client_annotation",
			Description: "Commented out @EnableEurekaClient, enabled by default since Spring Cloud 2020",
			Pattern:     regexp.MustCompile(`@EnableEurekaClient`),
			Replacement: "// @EnableEurekaClient - Enabled by default in Spring Cloud 2020+",
			Guard: func(content string) bool {
				return strings.Contains(content, "org.springframework")
			},
		},
	}
}
