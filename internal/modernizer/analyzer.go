package modernizer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aleister1102/springlift/internal/models"
)

// issueCheck couples a detection pattern with the advice reported when it
// matches. Checks are evaluated in order so reports are deterministic.
type issueCheck struct {
	pattern *regexp.Regexp
	message string
}

var javaVersionChecks = []issueCheck{
	{
		regexp.MustCompile(`new\s+\w+\s*<>?\s*\(\)\s*\{\s*public\s+\w+.*?\{`),
		"Anonymous inner classes found - Consider using lambda expressions or functional interfaces (Java 8+)",
	},
	{
		regexp.MustCompile(`if\s*\(\s*\w+\s*!=\s*null\s*\)`),
		"Manual null checks found - Consider using Optional or records with validation (Java 14+)",
	},
	{
		regexp.MustCompile(`(?s)try\s*\{.*?finally\s*\{.*?close`),
		"Manual resource management found - Use try-with-resources (Java 7+) or virtual threads (Java 19+)",
	},
	{
		regexp.MustCompile(`for\s*\(\s*\w+\s+\w+\s*:\s+\w+\)`),
		"Traditional for-loops found - Consider using Streams API for functional operations",
	},
}

var springBoot2Checks = []issueCheck{
	{
		regexp.MustCompile(`import\s+javax\.`),
		"javax.* imports found - Must be replaced with jakarta.* for Spring Boot 3.x",
	},
	{
		regexp.MustCompile(`@Deprecated`),
		"Deprecated annotations found - Review and upgrade to current APIs",
	},
	{
		regexp.MustCompile(`org\.springframework\.context\.support\.ClassPathXmlApplicationContext`),
		"XML-based Spring configuration detected - Migrate to Java-based @Configuration classes",
	},
	{
		regexp.MustCompile(`import\s+javax\.servlet`),
		"javax.servlet imports found - Migrate to jakarta.servlet for Spring Boot 3.x",
	},
}

var deprecatedAPIChecks = []issueCheck{
	{regexp.MustCompile(`Runtime\.getRuntime\(\)\.exec\(`), "Deprecated API found - Use Process.start() or ProcessHandle API (Java 9+)"},
	{regexp.MustCompile(`new\s+URL\(`), "Deprecated API found - Use URI or HttpClient (Java 11+)"},
	{regexp.MustCompile(`HttpURLConnection`), "Deprecated API found - Use HttpClient (Java 11+)"},
	{regexp.MustCompile(`sun\.misc\.BASE64`), "Deprecated API found - Use java.util.Base64 (Java 8+)"},
	{regexp.MustCompile(`org\.apache\.commons\.lang\.`), "Deprecated API found - Use built-in Java utilities (Java 8+)"},
}

// modernizationSuggestions are general upgrade hints attached to every
// analyzed file.
var modernizationSuggestions = []string{
	"Use var keyword for local variable type inference",
	"Use records for immutable data classes",
	"Leverage sealed classes for type hierarchy",
	"Use text blocks for multi-line strings",
	"Adopt pattern matching",
	"Use virtual threads for I/O operations",
}

var (
	javaxImportPattern = regexp.MustCompile(`import javax\.`)
	pojoClassPattern   = regexp.MustCompile(`public\s+class\s+(\w+)\s*\{[\s\S]*?private\s+final\s+\w+`)
	cloneCallPattern   = regexp.MustCompile(`clone\(\)`)
)

// AnalyzeJavaFile inspects a Java source file and returns its modernization
// issues, suggestions, and candidate transformations. The analysis is purely
// textual and never modifies the content.
func AnalyzeJavaFile(content, filename string) models.FileAnalysis {
	analysis := models.FileAnalysis{
		Path:        filename,
		Suggestions: append([]string{}, modernizationSuggestions...),
	}

	analysis.Issues = append(analysis.Issues, runChecks(javaVersionChecks, content)...)
	if cloneCallPattern.MatchString(content) {
		analysis.Issues = append(analysis.Issues, "Array.clone() found - Consider using Arrays.copyOf() or streams")
	}
	analysis.Issues = append(analysis.Issues, runChecks(springBoot2Checks, content)...)
	analysis.Issues = append(analysis.Issues, runChecks(deprecatedAPIChecks, content)...)

	if count := len(javaxImportPattern.FindAllString(content, -1)); count > 0 {
		analysis.Transformations = append(analysis.Transformations, models.Transformation{
			Rule:        "javax_to_jakarta",
			Description: fmt.Sprintf("Migrate %d javax.* import(s) to jakarta.*", count),
		})
	}

	if pojos := pojoClassPattern.FindAllStringSubmatch(content, -1); len(pojos) > 0 {
		names := make([]string, 0, 5)
		for _, match := range pojos {
			names = append(names, match[1])
			if len(names) == 5 {
				break
			}
		}
		analysis.Transformations = append(analysis.Transformations, models.Transformation{
			Rule:        "pojo_to_records",
			Description: fmt.Sprintf("Convert %d POJO class(es) to records: %s", len(pojos), strings.Join(names, ", ")),
		})
	}

	return analysis
}

// runChecks collects the messages of every check whose pattern matches.
func runChecks(checks []issueCheck, content string) []string {
	var issues []string
	for _, check := range checks {
		if check.pattern.MatchString(content) {
			issues = append(issues, check.message)
		}
	}
	return issues
}
