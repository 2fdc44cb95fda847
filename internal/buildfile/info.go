package buildfile

import (
	"regexp"

	"github.com/aleister1102/springlift/internal/models"
)

var (
	pomJavaVersionInfoPattern   = regexp.MustCompile(`<java\.version>(.*?)</java\.version>`)
	pomCompilerSourceInfo       = regexp.MustCompile(`<maven\.compiler\.source>(.*?)</maven\.compiler\.source>`)
	pomBootVersionPropInfo      = regexp.MustCompile(`<spring-boot\.version>(.*?)</spring-boot\.version>`)
	pomParentBootVersionInfo    = regexp.MustCompile(`(?s)<parent>.*?<artifactId>spring-boot-starter-parent</artifactId>.*?<version>([\d.]+(?:\.RELEASE)?)</version>`)
	pomDependencyInfoPattern    = regexp.MustCompile(`<artifactId>(.*?)</artifactId>\s*<version>(.*?)</version>`)
	gradleSourceCompatInfo      = regexp.MustCompile(`sourceCompatibility\s*=\s*['"]?([\d.]+)['"]?`)
	gradleSourceCompatEnumInfo  = regexp.MustCompile(`sourceCompatibility\s*=\s*JavaVersion\.VERSION_(\d+)`)
	gradleBootPluginVersionInfo = regexp.MustCompile(`id\s+['"]org\.springframework\.boot['"]\s+version\s+['"]([^'"]+)['"]`)
	gradleCoordinateInfoPattern = regexp.MustCompile(`['"]([\w.-]+):([\w.-]+):([\w.+-]+)['"]`)
)

// ExtractPomInfo pulls the current Java and Spring Boot versions plus the
// declared dependencies out of a pom.xml.
func ExtractPomInfo(content string) models.BuildFileInfo {
	info := models.BuildFileInfo{}

	if match := pomJavaVersionInfoPattern.FindStringSubmatch(content); match != nil {
		info.JavaVersion = match[1]
	} else if match := pomCompilerSourceInfo.FindStringSubmatch(content); match != nil {
		info.JavaVersion = match[1]
	}

	if match := pomBootVersionPropInfo.FindStringSubmatch(content); match != nil {
		info.SpringBootVersion = match[1]
	} else if match := pomParentBootVersionInfo.FindStringSubmatch(content); match != nil {
		info.SpringBootVersion = match[1]
	}

	for _, match := range pomDependencyInfoPattern.FindAllStringSubmatch(content, -1) {
		info.Dependencies = append(info.Dependencies, models.DependencyRef{
			Artifact: match[1],
			Version:  match[2],
		})
	}

	return info
}

// ExtractGradleInfo pulls the current Java and Spring Boot versions plus the
// declared group:name:version coordinates out of a build.gradle.
func ExtractGradleInfo(content string) models.BuildFileInfo {
	info := models.BuildFileInfo{}

	if match := gradleSourceCompatInfo.FindStringSubmatch(content); match != nil {
		info.JavaVersion = match[1]
	} else if match := gradleSourceCompatEnumInfo.FindStringSubmatch(content); match != nil {
		info.JavaVersion = match[1]
	}

	if match := gradleBootPluginVersionInfo.FindStringSubmatch(content); match != nil {
		info.SpringBootVersion = match[1]
	}

	for _, match := range gradleCoordinateInfoPattern.FindAllStringSubmatch(content, -1) {
		info.Dependencies = append(info.Dependencies, models.DependencyRef{
			Group:    match[1],
			Artifact: match[2],
			Version:  match[3],
		})
	}

	return info
}
