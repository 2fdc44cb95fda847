package configanalyzer

import (
	"fmt"
	"strings"

	"github.com/aleister1102/springlift/internal/common/errorwrapper"
	"github.com/aleister1102/springlift/internal/models"
	"gopkg.in/yaml.v3"
)

// AnalyzeYAML inspects an application.yml file. The document is parsed into a
// node tree so findings carry real line numbers and full dotted property
// paths instead of guessed indentation.
func AnalyzeYAML(content string) (models.ConfigFileAnalysis, error) {
	analysis := models.ConfigFileAnalysis{Kind: "yaml"}

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(content), &root); err != nil {
		return analysis, errorwrapper.WrapError(err, "failed to parse YAML")
	}

	for i := range root.Content {
		walkYAMLMapping(root.Content[i], nil, &analysis)
	}

	return analysis, nil
}

// walkYAMLMapping visits mapping nodes depth-first, accumulating the dotted
// key path, and records findings for deprecated properties. Matching is
// approximate on the final key segment, mirroring how dotted property names
// split across nested YAML keys.
func walkYAMLMapping(node *yaml.Node, path []string, analysis *models.ConfigFileAnalysis) {
	if node.Kind != yaml.MappingNode {
		return
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]
		keyPath := append(append([]string{}, path...), keyNode.Value)
		dotted := strings.Join(keyPath, ".")

		for _, dep := range deprecatedProperties {
			if dotted == dep.Key || lastSegmentMatches(keyNode.Value, dep.Key) {
				analysis.Findings = append(analysis.Findings, models.ConfigFinding{
					Property:       dotted,
					Line:           keyNode.Line,
					Issue:          fmt.Sprintf("Potentially deprecated property: %s", dotted),
					Recommendation: dep.Advice,
				})
				break
			}
		}

		if migration, ok := findMigration(dotted); ok && migration.Old != migration.New {
			analysis.Findings = append(analysis.Findings, models.ConfigFinding{
				Property:       dotted,
				Line:           keyNode.Line,
				Issue:          fmt.Sprintf("Property '%s' was renamed in Spring Boot 3.x", dotted),
				Recommendation: fmt.Sprintf("Migrate property from '%s' to '%s'", dotted, migration.New),
			})
		}

		walkYAMLMapping(valueNode, keyPath, analysis)
	}
}

// lastSegmentMatches reports whether a YAML key equals the final dotted
// segment of a known property name.
func lastSegmentMatches(key, property string) bool {
	segments := strings.Split(property, ".")
	return key == segments[len(segments)-1]
}
