package configanalyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeProperties(t *testing.T) {
	content := `# datasource
spring.datasource.url=jdbc:h2:mem:test
spring.jpa.properties.hibernate.dialect=org.hibernate.dialect.H2Dialect
spring.jpa.properties.hibernate.jdbc.lob.non_contextual_creation=true
spring.resources.static-locations=classpath:/static/
java.version=1.8
`
	analysis := AnalyzeProperties(content)

	require.Len(t, analysis.Findings, 4)

	byProperty := map[string]int{}
	for _, f := range analysis.Findings {
		byProperty[f.Property] = f.Line
	}
	assert.Equal(t, 3, byProperty["spring.jpa.properties.hibernate.dialect"])
	assert.Equal(t, 4, byProperty["spring.jpa.properties.hibernate.jdbc.lob.non_contextual_creation"])
	assert.Equal(t, 5, byProperty["spring.resources.static-locations"])
	assert.Equal(t, 6, byProperty["java.version"])
}

func TestAnalyzeProperties_UnchangedPropertiesProduceNoFindings(t *testing.T) {
	content := "spring.datasource.url=jdbc:postgresql://db/app\nserver.servlet.context-path=/api\n"
	analysis := AnalyzeProperties(content)
	assert.Empty(t, analysis.Findings)
}

func TestAnalyzeYAML(t *testing.T) {
	content := `spring:
  jpa:
    properties:
      hibernate:
        enable_lazy_load_no_trans: true
  datasource:
    hikari:
      maximum-pool-size: 10
`
	analysis, err := AnalyzeYAML(content)
	require.NoError(t, err)

	require.NotEmpty(t, analysis.Findings)
	properties := make([]string, 0, len(analysis.Findings))
	for _, f := range analysis.Findings {
		properties = append(properties, f.Property)
		assert.Greater(t, f.Line, 0)
	}
	assert.Contains(t, properties, "spring.jpa.properties.hibernate.enable_lazy_load_no_trans")
	assert.Contains(t, properties, "spring.datasource.hikari.maximum-pool-size")
}

func TestAnalyzeYAML_Malformed(t *testing.T) {
	_, err := AnalyzeYAML("spring:\n  jpa: [unclosed")
	assert.Error(t, err)
}

func TestAnalyzePomProperties(t *testing.T) {
	content := `<project>
  <properties>
    <java.version>11</java.version>
    <spring-boot.version>2.7.5</spring-boot.version>
    <some.other>x</some.other>
  </properties>
</project>`

	analysis := AnalyzePomProperties(content)
	require.Len(t, analysis.Findings, 2)
	assert.Equal(t, "java.version", analysis.Findings[0].Property)
	assert.Equal(t, 3, analysis.Findings[0].Line)
	assert.Equal(t, "spring-boot.version", analysis.Findings[1].Property)
	assert.Equal(t, 4, analysis.Findings[1].Line)
}

func TestAnalyzeGradleProperties(t *testing.T) {
	content := `sourceCompatibility = '1.8'
targetCompatibility = '1.8'
classpath 'org.springframework.boot:spring-boot-gradle-plugin:2.7.5'
`
	analysis := AnalyzeGradleProperties(content)
	require.Len(t, analysis.Findings, 3)
	assert.Equal(t, "sourceCompatibility", analysis.Findings[0].Property)
	assert.Equal(t, "targetCompatibility", analysis.Findings[1].Property)
	assert.Equal(t, "spring-boot-gradle-plugin", analysis.Findings[2].Property)
}

func TestAnalyzeFile_DispatchAndUnknown(t *testing.T) {
	dir := t.TempDir()
	analyzer := NewConfigAnalyzer(zerolog.Nop())

	propsPath := filepath.Join(dir, "application.properties")
	require.NoError(t, os.WriteFile(propsPath, []byte("spring.resources.static-locations=classpath:/static/\n"), 0644))

	analysis, err := analyzer.AnalyzeFile(propsPath)
	require.NoError(t, err)
	require.NotNil(t, analysis)
	assert.Equal(t, propsPath, analysis.Path)
	assert.True(t, analysis.HasFindings())

	unknownPath := filepath.Join(dir, "random.txt")
	require.NoError(t, os.WriteFile(unknownPath, []byte("hello"), 0644))
	analysis, err = analyzer.AnalyzeFile(unknownPath)
	require.NoError(t, err)
	assert.Nil(t, analysis)
}
