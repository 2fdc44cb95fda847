package configanalyzer

import (
	"fmt"
	"strings"

	"github.com/aleister1102/springlift/internal/models"
)

// AnalyzeProperties inspects an application.properties file line by line and
// reports deprecated properties, pending migrations, and legacy Java version
// values. Comments and blank lines are skipped.
func AnalyzeProperties(content string) models.ConfigFileAnalysis {
	analysis := models.ConfigFileAnalysis{Kind: "properties"}

	for lineNum, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if dep, ok := findDeprecated(key); ok {
			analysis.Findings = append(analysis.Findings, models.ConfigFinding{
				Property:       key,
				Line:           lineNum + 1,
				Issue:          fmt.Sprintf("Property '%s' is deprecated in Spring Boot 3.x", key),
				Recommendation: dep.Advice,
			})
		}

		if migration, ok := findMigration(key); ok && migration.Old != migration.New {
			analysis.Findings = append(analysis.Findings, models.ConfigFinding{
				Property:       key,
				Line:           lineNum + 1,
				Issue:          fmt.Sprintf("Property '%s' was renamed in Spring Boot 3.x", key),
				Recommendation: fmt.Sprintf("Migrate property from '%s' to '%s'", key, migration.New),
			})
		}

		if strings.Contains(key, "java.version") && legacyJavaVersions[value] {
			analysis.Findings = append(analysis.Findings, models.ConfigFinding{
				Property:       key,
				Line:           lineNum + 1,
				Issue:          fmt.Sprintf("Legacy Java version value '%s'", value),
				Recommendation: "Update Java version to 21",
			})
		}
	}

	return analysis
}
