package models

// DependencyRef identifies a declared dependency inside a build file.
type DependencyRef struct {
	Group    string `json:"group,omitempty"`
	Artifact string `json:"artifact"`
	Version  string `json:"version,omitempty"`
}

// BuildFileInfo captures the versions extracted from a pom.xml or build.gradle.
type BuildFileInfo struct {
	SpringBootVersion string          `json:"spring_boot_version,omitempty"`
	JavaVersion       string          `json:"java_version,omitempty"`
	Dependencies      []DependencyRef `json:"dependencies,omitempty"`
}

// BuildFileAnalysis holds the modernization findings for one build file.
type BuildFileAnalysis struct {
	Path            string            `json:"path"`
	Kind            string            `json:"kind"` // "maven" or "gradle"
	Info            BuildFileInfo     `json:"info"`
	Issues          []string          `json:"issues,omitempty"`
	Upgrades        map[string]string `json:"upgrades,omitempty"`
	Recommendations []string          `json:"recommendations,omitempty"`
	Updated         bool              `json:"updated"`
}
