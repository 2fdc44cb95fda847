package reporter

import (
	"fmt"
	"html/template"
	"strings"
	"unicode"

	"github.com/aleister1102/springlift/internal/models"
)

// titleCase converts string to title case (replaces deprecated strings.Title)
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// categoryLabel turns a change category key like "namespace_migration" into
// a human readable label.
func categoryLabel(category string) string {
	return titleCase(strings.ReplaceAll(category, "_", " "))
}

// rowClass maps a side-by-side row kind to its CSS class.
func rowClass(kind models.SideBySideRowKind) string {
	switch kind {
	case models.RowEqual:
		return "row-equal"
	case models.RowDelete:
		return "row-delete"
	case models.RowInsert:
		return "row-insert"
	case models.RowReplace:
		return "row-replace"
	default:
		return ""
	}
}

// GetReportTemplateFunctions returns the function map for report templates.
func GetReportTemplateFunctions() template.FuncMap {
	return template.FuncMap{
		"title":         titleCase,
		"categoryLabel": categoryLabel,
		"rowClass":      rowClass,
		"ToLower":       strings.ToLower,
		"inc": func(i int) int {
			return i + 1
		},
		"percent": func(v float64) string {
			return fmt.Sprintf("%.1f%%", v)
		},
		"joinStrings": func(s []string, sep string) string {
			return strings.Join(s, sep)
		},
	}
}
