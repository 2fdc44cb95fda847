package buildfile

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/aleister1102/springlift/internal/common/errorwrapper"
	"github.com/aleister1102/springlift/internal/config"
	"github.com/rs/zerolog"
)

// gradleCoordinate pins one group:name coordinate to its target version.
type gradleCoordinate struct {
	Group   string
	Name    string
	Version string
}

// gradleDependencyVersions lists the Gradle coordinates whose versions are bumped.
var gradleDependencyVersions = []gradleCoordinate{
	{"org.springframework", "spring-context", "6.1.0"},
	{"org.springframework", "spring-core", "6.1.0"},
	{"org.springframework.data", "spring-data-jpa", "3.2.0"},
	{"org.springframework", "spring-web", "6.1.0"},
	{"org.springframework", "spring-webmvc", "6.1.0"},
	{"org.springframework.security", "spring-security-core", "6.2.0"},
	{"org.springframework.security", "spring-security-web", "6.2.0"},
	{"org.springframework.cloud", "spring-cloud-starter-netflix-eureka-client", "4.1.0"},
	{"org.springframework.cloud", "spring-cloud-starter-config", "4.1.0"},
	{"com.fasterxml.jackson.core", "jackson-databind", "2.15.2"},
	{"com.fasterxml.jackson.core", "jackson-core", "2.15.2"},
	{"com.fasterxml.jackson.core", "jackson-annotations", "2.15.2"},
	{"org.junit.jupiter", "junit-jupiter", "5.9.3"},
	{"org.mockito", "mockito-core", "5.3.0"},
	{"org.mockito", "mockito-junit-jupiter", "5.3.0"},
	{"ch.qos.logback", "logback-classic", "1.4.11"},
	{"org.slf4j", "slf4j-api", "2.0.7"},
}

var (
	gradleSourceCompatPattern     = regexp.MustCompile(`sourceCompatibility\s*=\s*['"]?[\d.]+['"]?`)
	gradleSourceCompatEnumPattern = regexp.MustCompile(`sourceCompatibility\s*=\s*JavaVersion\.VERSION_\d+`)
	gradleTargetCompatPattern     = regexp.MustCompile(`targetCompatibility\s*=\s*['"]?[\d.]+['"]?`)
	gradleTargetCompatEnumPattern = regexp.MustCompile(`targetCompatibility\s*=\s*JavaVersion\.VERSION_\d+`)
	gradleBootPluginPattern       = regexp.MustCompile(`(id\s+['"]org\.springframework\.boot['"]\s+version\s+)['"][\d.]+['"]`)
)

// GradleUpdater rewrites build.gradle files toward the configured target Java
// and Spring Boot versions.
type GradleUpdater struct {
	config config.ModernizerConfig
	logger zerolog.Logger
}

// NewGradleUpdater creates a new build.gradle updater
func NewGradleUpdater(cfg config.ModernizerConfig, logger zerolog.Logger) *GradleUpdater {
	return &GradleUpdater{
		config: cfg,
		logger: logger.With().Str("component", "GradleUpdater").Logger(),
	}
}

// UpdateContent rewrites the build.gradle content in memory and returns the
// new text plus one message per change.
func (u *GradleUpdater) UpdateContent(content string) (string, []string) {
	original := content
	var changes []string

	content, changes = u.updateJavaVersion(content, changes)
	content, changes = u.updateSpringBootPlugin(content, changes)
	content, changes = u.updateDependencies(content, changes)

	if content == original {
		return original, nil
	}
	return u.addModernizationComment(content), changes
}

// Update rewrites the build.gradle at path in place.
func (u *GradleUpdater) Update(path string) (bool, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, nil, errorwrapper.NewPathError(path, "failed to read build.gradle", err)
	}

	updated, changes := u.UpdateContent(string(data))
	if len(changes) == 0 {
		u.logger.Debug().Str("path", path).Msg("No changes needed in build.gradle")
		return false, nil, nil
	}

	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		return false, nil, errorwrapper.NewPathError(path, "failed to write build.gradle", err)
	}

	u.logger.Info().Str("path", path).Int("changes", len(changes)).Msg("Updated build.gradle")
	return true, changes, nil
}

func (u *GradleUpdater) updateJavaVersion(content string, changes []string) (string, []string) {
	target := u.config.TargetJavaVersion

	switch {
	case gradleSourceCompatPattern.MatchString(content):
		content = gradleSourceCompatPattern.ReplaceAllString(content, fmt.Sprintf("sourceCompatibility = '%s'", target))
		changes = append(changes, fmt.Sprintf("Updated sourceCompatibility to %s", target))
	case gradleSourceCompatEnumPattern.MatchString(content):
		content = gradleSourceCompatEnumPattern.ReplaceAllString(content, "sourceCompatibility = JavaVersion.VERSION_"+target)
		changes = append(changes, fmt.Sprintf("Updated sourceCompatibility to Java %s", target))
	}

	switch {
	case gradleTargetCompatPattern.MatchString(content):
		content = gradleTargetCompatPattern.ReplaceAllString(content, fmt.Sprintf("targetCompatibility = '%s'", target))
		changes = append(changes, fmt.Sprintf("Updated targetCompatibility to %s", target))
	case gradleTargetCompatEnumPattern.MatchString(content):
		content = gradleTargetCompatEnumPattern.ReplaceAllString(content, "targetCompatibility = JavaVersion.VERSION_"+target)
		changes = append(changes, fmt.Sprintf("Updated targetCompatibility to Java %s", target))
	}

	return content, changes
}

func (u *GradleUpdater) updateSpringBootPlugin(content string, changes []string) (string, []string) {
	if gradleBootPluginPattern.MatchString(content) {
		content = gradleBootPluginPattern.ReplaceAllString(content, "${1}'"+u.config.TargetSpringBootVersion+"'")
		changes = append(changes, fmt.Sprintf("Updated Spring Boot plugin to %s", u.config.TargetSpringBootVersion))
	}
	return content, changes
}

func (u *GradleUpdater) updateDependencies(content string, changes []string) (string, []string) {
	for _, dep := range gradleDependencyVersions {
		pattern := regexp.MustCompile(`(['"])` + regexp.QuoteMeta(dep.Group) + `:` + regexp.QuoteMeta(dep.Name) + `:[^'"]+(['"])`)
		if !pattern.MatchString(content) {
			continue
		}
		content = pattern.ReplaceAllString(content, fmt.Sprintf("${1}%s:%s:%s${2}", dep.Group, dep.Name, dep.Version))
		changes = append(changes, fmt.Sprintf("Updated %s to %s", dep.Name, dep.Version))
	}
	return content, changes
}

// addModernizationComment stamps the file at the very top.
func (u *GradleUpdater) addModernizationComment(content string) string {
	if strings.Contains(content, modernizedMarker) {
		return content
	}
	comment := fmt.Sprintf("// %s - Updated to Java %s and Spring Boot %s\n",
		modernizedMarker, u.config.TargetJavaVersion, u.config.TargetSpringBootVersion)
	return comment + content
}
