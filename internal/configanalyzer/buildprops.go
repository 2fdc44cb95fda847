package configanalyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aleister1102/springlift/internal/models"
)

var (
	propertiesBlockPattern = regexp.MustCompile(`(?s)<properties>(.*?)</properties>`)
	propertyEntryPattern   = regexp.MustCompile(`<([\w.-]+)>([^<]+)</([\w.-]+)>`)

	gradleSourceCompatValue = regexp.MustCompile(`sourceCompatibility\s*=\s*['"]([^'"]+)['"]`)
	gradleTargetCompatValue = regexp.MustCompile(`targetCompatibility\s*=\s*['"]([^'"]+)['"]`)
	gradleBootPluginDep     = regexp.MustCompile(`['"]org\.springframework\.boot:spring-boot-gradle-plugin:([^'"]+)['"]`)
)

// AnalyzePomProperties inspects the <properties> block of a pom.xml for
// legacy Java and Spring Boot version pins.
func AnalyzePomProperties(content string) models.ConfigFileAnalysis {
	analysis := models.ConfigFileAnalysis{Kind: "properties"}

	blockMatch := propertiesBlockPattern.FindStringSubmatchIndex(content)
	if blockMatch == nil {
		return analysis
	}
	block := content[blockMatch[2]:blockMatch[3]]
	blockOffset := blockMatch[2]

	for _, match := range propertyEntryPattern.FindAllStringSubmatchIndex(block, -1) {
		name := block[match[2]:match[3]]
		value := block[match[4]:match[5]]
		closing := block[match[6]:match[7]]
		if name != closing {
			continue
		}

		line := lineOfOffset(content, blockOffset+match[0])
		lowerName := strings.ToLower(name)

		if strings.Contains(lowerName, "java") && strings.Contains(lowerName, "version") && legacyJavaVersions[value] {
			analysis.Findings = append(analysis.Findings, models.ConfigFinding{
				Property:       name,
				Line:           line,
				Issue:          fmt.Sprintf("Update Java version from %s to 21", value),
				Recommendation: "21",
			})
		}

		if strings.Contains(lowerName, "spring-boot") && strings.HasPrefix(value, "2.") {
			analysis.Findings = append(analysis.Findings, models.ConfigFinding{
				Property:       name,
				Line:           line,
				Issue:          fmt.Sprintf("Update Spring Boot from %s to 3.x", value),
				Recommendation: "3.0.0+",
			})
		}
	}

	return analysis
}

// AnalyzeGradleProperties inspects a build.gradle for legacy compatibility
// settings and plugin versions.
func AnalyzeGradleProperties(content string) models.ConfigFileAnalysis {
	analysis := models.ConfigFileAnalysis{Kind: "properties"}

	for _, probe := range []struct {
		pattern *regexp.Regexp
		name    string
	}{
		{gradleSourceCompatValue, "sourceCompatibility"},
		{gradleTargetCompatValue, "targetCompatibility"},
	} {
		if match := probe.pattern.FindStringSubmatchIndex(content); match != nil {
			value := content[match[2]:match[3]]
			if legacyJavaVersions[value] {
				analysis.Findings = append(analysis.Findings, models.ConfigFinding{
					Property:       probe.name,
					Line:           lineOfOffset(content, match[0]),
					Issue:          fmt.Sprintf("Update %s from %s to 21", probe.name, value),
					Recommendation: "21",
				})
			}
		}
	}

	if match := gradleBootPluginDep.FindStringSubmatchIndex(content); match != nil {
		version := content[match[2]:match[3]]
		if strings.HasPrefix(version, "2.") {
			analysis.Findings = append(analysis.Findings, models.ConfigFinding{
				Property:       "spring-boot-gradle-plugin",
				Line:           lineOfOffset(content, match[0]),
				Issue:          fmt.Sprintf("Update Spring Boot Gradle plugin from %s to 3.x", version),
				Recommendation: "3.0.0+",
			})
		}
	}

	return analysis
}

// lineOfOffset converts a byte offset into a 1-based line number.
func lineOfOffset(content string, offset int) int {
	return strings.Count(content[:offset], "\n") + 1
}
