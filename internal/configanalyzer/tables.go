package configanalyzer

// propertyMigration maps a Spring Boot 2.x property to its 3.x replacement.
// Entries where Old == New are kept for completeness but produce no finding;
// they document properties that were reviewed and survive unchanged.
type propertyMigration struct {
	Old string
	New string
}

var propertyMigrations = []propertyMigration{
	{"spring.datasource.url", "spring.datasource.url"},
	{"spring.jpa.properties.hibernate.dialect", "spring.jpa.database-platform"},
	{"spring.mvc.view.prefix", "spring.mvc.view.prefix"},
	{"spring.mvc.view.suffix", "spring.mvc.view.suffix"},
	{"spring.resources.static-locations", "spring.web.resources.static-locations"},
	{"logging.level.org.springframework.web", "logging.level.org.springframework.web"},
	{"server.servlet.context-path", "server.servlet.context-path"},
	{"management.endpoints.web.base-path", "management.endpoints.web.base-path"},
	{"spring.jpa.hibernate.ddl-auto", "spring.jpa.hibernate.ddl-auto"},
	{"spring.h2.console.enabled", "spring.h2.console.enabled"},
}

// deprecatedProperty pairs a property removed in Spring Boot 3.x with the
// advice shown to the user.
type deprecatedProperty struct {
	Key    string
	Advice string
}

var deprecatedProperties = []deprecatedProperty{
	{"spring.jpa.properties.hibernate.jdbc.lob.non_contextual_creation", "No longer needed in Spring Boot 3.x"},
	{"spring.jpa.properties.hibernate.enable_lazy_load_no_trans", "Use spring.jpa.open-in-view instead"},
	{"spring.datasource.hikari.maximum-pool-size", "Consider using spring.datasource.hikari.pool-name"},
}

// legacyJavaVersions are property values that indicate a pre-17 toolchain.
var legacyJavaVersions = map[string]bool{
	"":    true,
	"1.8": true,
	"8":   true,
	"11":  true,
}

// findMigration returns the migration entry for a key, if any.
func findMigration(key string) (propertyMigration, bool) {
	for _, m := range propertyMigrations {
		if m.Old == key {
			return m, true
		}
	}
	return propertyMigration{}, false
}

// findDeprecated returns the deprecation entry for a key, if any.
func findDeprecated(key string) (deprecatedProperty, bool) {
	for _, d := range deprecatedProperties {
		if d.Key == key {
			return d, true
		}
	}
	return deprecatedProperty{}, false
}
