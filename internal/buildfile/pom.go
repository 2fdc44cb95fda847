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

// modernizedMarker guards against stamping a build file twice.
const modernizedMarker = "MODERNIZED by SpringLift"

// dependencyVersion pins one artifact to its modernization target. The table
// is ordered so repeated runs rewrite versions in the same sequence.
type dependencyVersion struct {
	Artifact string
	Version  string
}

// pomDependencyVersions lists the Maven artifacts whose versions are bumped.
var pomDependencyVersions = []dependencyVersion{
	{"spring-boot", "3.2.0"},
	{"spring-boot-starter", "3.2.0"},
	{"spring-boot-starter-web", "3.2.0"},
	{"spring-boot-starter-data-jpa", "3.2.0"},
	{"spring-boot-starter-security", "3.2.0"},
	{"spring-boot-starter-actuator", "3.2.0"},
	{"spring-boot-starter-logging", "3.2.0"},
	{"spring-boot-starter-test", "3.2.0"},
	{"spring-context", "6.1.0"},
	{"spring-core", "6.1.0"},
	{"spring-data-jpa", "3.2.0"},
	{"spring-web", "6.1.0"},
	{"spring-webmvc", "6.1.0"},
	{"spring-security-core", "6.2.0"},
	{"spring-security-web", "6.2.0"},
	{"spring-cloud-starter-netflix-eureka-client", "4.1.0"},
	{"spring-cloud-starter-config", "4.1.0"},
	{"spring-cloud-starter-netflix-hystrix", "4.1.0"},
	{"jackson-databind", "2.15.2"},
	{"jackson-core", "2.15.2"},
	{"jackson-annotations", "2.15.2"},
	{"junit-jupiter", "5.9.3"},
	{"mockito-core", "5.3.0"},
	{"mockito-junit-jupiter", "5.3.0"},
	{"logback-classic", "1.4.11"},
	{"slf4j-api", "2.0.7"},
	{"jakarta.servlet-api", "6.0.0"},
	{"jakarta.persistence-api", "3.1.0"},
}

// pomPropertyUpdates lists <properties> entries rewritten when present.
// java.version is handled separately together with the compiler properties.
var pomPropertyUpdates = []dependencyVersion{
	{"maven.compiler.source", "21"},
	{"maven.compiler.target", "21"},
	{"project.build.sourceEncoding", "UTF-8"},
	{"spring-boot.version", "3.2.0"},
}

var (
	pomParentVersionPattern  = regexp.MustCompile(`(?s)(<parent>.*?<artifactId>spring-boot-starter-parent</artifactId>.*?<version>)[0-9.]+(?:\.RELEASE)?(</version>)`)
	pomJavaVersionTagPattern = regexp.MustCompile(`<java\.version>.*?</java\.version>`)
	pomBootPluginPattern     = regexp.MustCompile(`(<artifactId>spring-boot-maven-plugin</artifactId>\s*<version>).*?(</version>)`)
	pomSurefirePattern       = regexp.MustCompile(`(<artifactId>maven-surefire-plugin</artifactId>\s*<version>).*?(</version>)`)
	pomCompilerPluginPattern = regexp.MustCompile(`<artifactId>maven-compiler-plugin</artifactId>\s*<version>`)
)

// PomUpdater rewrites Maven pom.xml files toward the configured target Java
// and Spring Boot versions.
type PomUpdater struct {
	config config.ModernizerConfig
	logger zerolog.Logger
}

// NewPomUpdater creates a new pom.xml updater
func NewPomUpdater(cfg config.ModernizerConfig, logger zerolog.Logger) *PomUpdater {
	return &PomUpdater{
		config: cfg,
		logger: logger.With().Str("component", "PomUpdater").Logger(),
	}
}

// UpdateContent rewrites the pom content in memory and returns the new text
// plus one message per change. The text comes back untouched, without the
// modernization comment, when nothing needed updating.
func (u *PomUpdater) UpdateContent(content string) (string, []string) {
	original := content
	var changes []string

	content, changes = u.updateParentVersion(content, changes)
	content, changes = u.updateJavaVersion(content, changes)
	content, changes = u.updateDependencies(content, changes)
	content, changes = u.updateProperties(content, changes)
	content, changes = u.updatePlugins(content, changes)

	if content == original {
		return original, nil
	}
	return u.addModernizationComment(content), changes
}

// Update rewrites the pom.xml at path in place. It returns whether the file
// changed and the list of applied changes.
func (u *PomUpdater) Update(path string) (bool, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, nil, errorwrapper.NewPathError(path, "failed to read pom.xml", err)
	}

	updated, changes := u.UpdateContent(string(data))
	if len(changes) == 0 {
		u.logger.Debug().Str("path", path).Msg("No changes needed in pom.xml")
		return false, nil, nil
	}

	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		return false, nil, errorwrapper.NewPathError(path, "failed to write pom.xml", err)
	}

	u.logger.Info().Str("path", path).Int("changes", len(changes)).Msg("Updated pom.xml")
	return true, changes, nil
}

func (u *PomUpdater) updateParentVersion(content string, changes []string) (string, []string) {
	if pomParentVersionPattern.MatchString(content) {
		replacement := "${1}" + u.config.TargetSpringBootVersion + "${2}"
		content = pomParentVersionPattern.ReplaceAllString(content, replacement)
		changes = append(changes, fmt.Sprintf("Updated parent spring-boot-starter-parent version to %s", u.config.TargetSpringBootVersion))
	}
	return content, changes
}

func (u *PomUpdater) updateJavaVersion(content string, changes []string) (string, []string) {
	target := u.config.TargetJavaVersion

	if pomJavaVersionTagPattern.MatchString(content) {
		content = pomJavaVersionTagPattern.ReplaceAllString(content, fmt.Sprintf("<java.version>%s</java.version>", target))
		changes = append(changes, fmt.Sprintf("Updated java.version to %s", target))
	}

	for _, prop := range []string{"maven.compiler.source", "maven.compiler.target"} {
		pattern := regexp.MustCompile(`<` + regexp.QuoteMeta(prop) + `>.*?</` + regexp.QuoteMeta(prop) + `>`)
		replacement := fmt.Sprintf("<%s>%s</%s>", prop, target, prop)
		if pattern.MatchString(content) {
			content = pattern.ReplaceAllString(content, replacement)
			changes = append(changes, fmt.Sprintf("Updated %s to %s", prop, target))
		} else if pos := strings.Index(content, "</properties>"); pos > 0 {
			content = content[:pos] + "    " + replacement + "\n    " + content[pos:]
			changes = append(changes, fmt.Sprintf("Added %s property (%s)", prop, target))
		}
	}

	return content, changes
}

func (u *PomUpdater) updateDependencies(content string, changes []string) (string, []string) {
	for _, dep := range pomDependencyVersions {
		pattern := regexp.MustCompile(`(<artifactId>\s*` + regexp.QuoteMeta(dep.Artifact) + `\s*</artifactId>\s*<version>).*?(</version>)`)
		if !pattern.MatchString(content) {
			continue
		}
		content = pattern.ReplaceAllString(content, "${1}"+dep.Version+"${2}")
		changes = append(changes, fmt.Sprintf("Updated %s to %s", dep.Artifact, dep.Version))
	}
	return content, changes
}

func (u *PomUpdater) updateProperties(content string, changes []string) (string, []string) {
	for _, prop := range pomPropertyUpdates {
		pattern := regexp.MustCompile(`<` + regexp.QuoteMeta(prop.Artifact) + `>.*?</` + regexp.QuoteMeta(prop.Artifact) + `>`)
		replacement := fmt.Sprintf("<%s>%s</%s>", prop.Artifact, prop.Version, prop.Artifact)
		if pattern.MatchString(content) && !strings.Contains(content, replacement) {
			content = pattern.ReplaceAllString(content, replacement)
			changes = append(changes, fmt.Sprintf("Updated property %s to %s", prop.Artifact, prop.Version))
		}
	}
	return content, changes
}

func (u *PomUpdater) updatePlugins(content string, changes []string) (string, []string) {
	if pomBootPluginPattern.MatchString(content) {
		content = pomBootPluginPattern.ReplaceAllString(content, "${1}"+u.config.TargetSpringBootVersion+"${2}")
		changes = append(changes, fmt.Sprintf("Updated spring-boot-maven-plugin to %s", u.config.TargetSpringBootVersion))
	}

	if pomSurefirePattern.MatchString(content) {
		content = pomSurefirePattern.ReplaceAllString(content, "${1}3.1.2${2}")
		changes = append(changes, "Updated maven-surefire-plugin to 3.1.2")
	}

	// maven-compiler-plugin declared without a version gets one pinned
	if strings.Contains(content, "<artifactId>maven-compiler-plugin</artifactId>") && !pomCompilerPluginPattern.MatchString(content) {
		content = strings.Replace(content,
			"<artifactId>maven-compiler-plugin</artifactId>",
			"<artifactId>maven-compiler-plugin</artifactId>\n                <version>3.11.0</version>", 1)
		changes = append(changes, "Added maven-compiler-plugin version 3.11.0")
	}

	return content, changes
}

// addModernizationComment stamps the file right after the XML declaration.
func (u *PomUpdater) addModernizationComment(content string) string {
	if strings.Contains(content, modernizedMarker) {
		return content
	}
	comment := fmt.Sprintf("\n<!-- %s - Updated to Java %s and Spring Boot %s -->\n",
		modernizedMarker, u.config.TargetJavaVersion, u.config.TargetSpringBootVersion)
	return strings.Replace(content, "?>\n", "?>"+comment, 1)
}
