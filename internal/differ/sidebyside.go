package differ

import (
	"github.com/aleister1102/springlift/internal/models"
	"github.com/pmezard/go-difflib/difflib"
)

// BuildSideBySideRows renders an alignment as a two-column view. Equal lines
// appear in both columns, deletes only on the left, inserts only on the
// right. Replace regions are paired line-by-line with the shorter side padded
// by blank cells so the columns stay vertically aligned.
func BuildSideBySideRows(originalLines, modernizedLines []string) []models.SideBySideRow {
	opcodes := difflib.NewMatcher(originalLines, modernizedLines).GetOpCodes()
	rows := make([]models.SideBySideRow, 0, len(originalLines))

	for _, op := range opcodes {
		switch op.Tag {
		case 'e':
			for k := 0; k < op.I2-op.I1; k++ {
				rows = append(rows, models.SideBySideRow{
					Kind:       models.RowEqual,
					Original:   trimLineEnding(originalLines[op.I1+k]),
					Modernized: trimLineEnding(modernizedLines[op.J1+k]),
				})
			}
		case 'd':
			for i := op.I1; i < op.I2; i++ {
				rows = append(rows, models.SideBySideRow{
					Kind:     models.RowDelete,
					Original: trimLineEnding(originalLines[i]),
				})
			}
		case 'i':
			for j := op.J1; j < op.J2; j++ {
				rows = append(rows, models.SideBySideRow{
					Kind:       models.RowInsert,
					Modernized: trimLineEnding(modernizedLines[j]),
				})
			}
		case 'r':
			rows = append(rows, buildReplaceRows(originalLines[op.I1:op.I2], modernizedLines[op.J1:op.J2])...)
		}
	}

	return rows
}

// buildReplaceRows pairs the two sides of a replace region, padding the
// shorter side with empty cells.
func buildReplaceRows(originalSide, modernizedSide []string) []models.SideBySideRow {
	length := len(originalSide)
	if len(modernizedSide) > length {
		length = len(modernizedSide)
	}

	rows := make([]models.SideBySideRow, 0, length)
	for k := 0; k < length; k++ {
		row := models.SideBySideRow{Kind: models.RowReplace}
		if k < len(originalSide) {
			row.Original = trimLineEnding(originalSide[k])
		}
		if k < len(modernizedSide) {
			row.Modernized = trimLineEnding(modernizedSide[k])
		}
		rows = append(rows, row)
	}
	return rows
}
