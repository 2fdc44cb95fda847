package differ

import (
	"strings"

	"github.com/aleister1102/springlift/internal/models"
	"github.com/pmezard/go-difflib/difflib"
)

// classificationRule pairs a predicate with the category it assigns. Rules
// are evaluated top to bottom; the first match wins. Matching is plain
// substring inspection, so incidental matches are possible; this keeps the
// classifier cheap and predictable on arbitrary text.
type classificationRule struct {
	category models.ChangeCategory
	matches  func(original, modernized string) bool
}

var classificationRules = []classificationRule{
	{models.CategoryNamespaceMigration, func(o, m string) bool {
		return strings.Contains(o, "javax.") && strings.Contains(m, "jakarta.")
	}},
	{models.CategoryImportAdded, func(o, m string) bool {
		return strings.Contains(m, "import ") && !strings.Contains(o, "import ")
	}},
	{models.CategoryImportRemoved, func(o, m string) bool {
		return strings.Contains(o, "import ") && !strings.Contains(m, "import ")
	}},
	{models.CategoryCommentAdded, func(o, m string) bool {
		return strings.Contains(m, "//") && !strings.Contains(o, "//")
	}},
	{models.CategoryDeprecatedRemoved, func(o, m string) bool {
		return strings.Contains(o, "Deprecated")
	}},
}

// classifyChange assigns exactly one category to a changed section based on
// its original and modernized text.
func classifyChange(original, modernized string) models.ChangeCategory {
	for _, rule := range classificationRules {
		if rule.matches(original, modernized) {
			return rule.category
		}
	}
	return models.CategoryCodeUpdated
}

// opcodeTagName maps a difflib opcode tag byte to its section type name.
func opcodeTagName(tag byte) string {
	switch tag {
	case 'r':
		return "replace"
	case 'd':
		return "delete"
	case 'i':
		return "insert"
	default:
		return "equal"
	}
}

// ExtractChangedSections aligns the two line sequences and returns one
// classified section per non-equal opcode, in alignment order.
func ExtractChangedSections(originalLines, modernizedLines []string) []models.ChangedSection {
	opcodes := difflib.NewMatcher(originalLines, modernizedLines).GetOpCodes()
	return sectionsFromOpcodes(opcodes, originalLines, modernizedLines)
}

// sectionsFromOpcodes builds classified sections from an existing alignment.
// Sections where both slices are blank after trimming are dropped; they carry
// no information and only arise from whitespace-only edits.
func sectionsFromOpcodes(opcodes []difflib.OpCode, originalLines, modernizedLines []string) []models.ChangedSection {
	sections := make([]models.ChangedSection, 0)

	for _, op := range opcodes {
		if op.Tag == 'e' {
			continue
		}

		originalCode := strings.Join(originalLines[op.I1:op.I2], "")
		modernizedCode := strings.Join(modernizedLines[op.J1:op.J2], "")

		trimmedOriginal := strings.TrimSpace(originalCode)
		trimmedModernized := strings.TrimSpace(modernizedCode)
		if trimmedOriginal == "" && trimmedModernized == "" {
			continue
		}

		sections = append(sections, models.ChangedSection{
			Type:            opcodeTagName(op.Tag),
			OriginalStart:   op.I1 + 1,
			OriginalEnd:     op.I2,
			ModernizedStart: op.J1 + 1,
			ModernizedEnd:   op.J2,
			OriginalCode:    trimmedOriginal,
			ModernizedCode:  trimmedModernized,
			ChangeType:      classifyChange(originalCode, modernizedCode),
		})
	}

	return sections
}
