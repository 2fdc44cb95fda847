package modernizer

import (
	"fmt"
	"regexp"
	"strings"
)

// BuildCheck is the analysis result for a Maven or Gradle build file.
type BuildCheck struct {
	Issues          []string
	Upgrades        map[string]string
	Recommendations []string
}

// DependencyUpgrades maps known legacy artifacts to their recommended target
// version lines.
var DependencyUpgrades = map[string]string{
	"spring-boot-starter":          "3.x",
	"spring-boot-starter-web":      "3.x",
	"spring-boot-starter-data-jpa": "3.x",
	"spring-data-jpa":              "3.x",
	"org.springframework:spring-context": "6.x",
	"org.springframework:spring-core":    "6.x",
	"org.springframework.cloud:spring-cloud-starter-netflix-eureka-client": "4.x",
	"org.springframework.cloud:spring-cloud-starter-config":                "4.x",
	"com.fasterxml.jackson.core:jackson-databind":                          "2.15+",
	"junit:junit":                       "4.13+",
	"org.junit.jupiter:junit-jupiter":   "5.x",
}

var (
	pomSpringBootVersionPattern = regexp.MustCompile(`<spring-boot\.version>([^<]+)<`)
	pomJavaVersionPattern       = regexp.MustCompile(`<java\.version>([^<]+)<`)
	pomArtifactIDPattern        = regexp.MustCompile(`<artifactId>([^<]+)<`)

	gradleSpringBootPluginV2Pattern = regexp.MustCompile(`id\s+['"]org\.springframework\.boot['"]\s+version\s+['"]2\.`)
	gradleSourceCompat8Pattern      = regexp.MustCompile(`sourceCompatibility\s*=\s*['"]1\.8['"]`)
	gradleSourceCompat11Pattern     = regexp.MustCompile(`sourceCompatibility\s*=\s*['"]11['"]`)
)

// AnalyzePom inspects a Maven pom.xml and reports legacy versions plus
// artifact upgrades from the known table.
func AnalyzePom(content string) BuildCheck {
	check := BuildCheck{
		Upgrades: make(map[string]string),
		Recommendations: []string{
			"Upgrade Spring Boot from 2.x to 3.x",
			"Upgrade Java from 8/11 to 21",
			"Update all spring-boot-starter dependencies",
			"Migrate javax.* to jakarta.* namespace",
			"Review and update third-party library versions",
		},
	}

	if match := pomSpringBootVersionPattern.FindStringSubmatch(content); match != nil {
		if strings.HasPrefix(match[1], "2") {
			check.Issues = append(check.Issues, fmt.Sprintf("Spring Boot 2.x detected (%s) - Upgrade to 3.x required", match[1]))
			check.Upgrades["spring-boot-starter"] = "3.x"
		}
	}

	if match := pomJavaVersionPattern.FindStringSubmatch(content); match != nil {
		switch match[1] {
		case "1.8", "8", "11":
			check.Issues = append(check.Issues, fmt.Sprintf("Java %s detected - Upgrade to 21 recommended", match[1]))
			check.Upgrades["java.version"] = "21"
		}
	}

	for _, match := range pomArtifactIDPattern.FindAllStringSubmatch(content, -1) {
		if target, known := DependencyUpgrades[match[1]]; known {
			check.Upgrades[match[1]] = target
		}
	}

	return check
}

// AnalyzeGradle inspects a build.gradle and reports legacy plugin and
// compatibility settings.
func AnalyzeGradle(content string) BuildCheck {
	check := BuildCheck{
		Upgrades: make(map[string]string),
		Recommendations: []string{
			"Update Spring Boot plugin version to 3.x",
			"Update sourceCompatibility and targetCompatibility to 21",
			"Update all dependency versions",
			"Review gradle wrapper version",
		},
	}

	if gradleSpringBootPluginV2Pattern.MatchString(content) {
		check.Issues = append(check.Issues, "Spring Boot 2.x detected - Upgrade to 3.x required")
		check.Upgrades["spring-boot"] = "3.x"
	}

	if gradleSourceCompat8Pattern.MatchString(content) || gradleSourceCompat11Pattern.MatchString(content) {
		check.Issues = append(check.Issues, "Java 8/11 compatibility detected - Upgrade to 21 recommended")
		check.Upgrades["sourceCompatibility"] = "21"
	}

	return check
}
