package models

// ConfigFinding points at one problematic property in a configuration file.
type ConfigFinding struct {
	Property       string `json:"property"`
	Line           int    `json:"line,omitempty"`
	Issue          string `json:"issue"`
	Recommendation string `json:"recommendation,omitempty"`
}

// ConfigFileAnalysis holds findings for one application configuration file
// (application.properties, application.yml, or version properties embedded
// in build files).
type ConfigFileAnalysis struct {
	Path     string          `json:"path"`
	Kind     string          `json:"kind"` // "properties" or "yaml"
	Findings []ConfigFinding `json:"findings,omitempty"`
}

// HasFindings reports whether any issue was detected in the file.
func (a *ConfigFileAnalysis) HasFindings() bool {
	return len(a.Findings) > 0
}
