package differ

import (
	"strings"
	"testing"

	"github.com/aleister1102/springlift/internal/common/errorwrapper"
	"github.com/aleister1102/springlift/internal/config"
	"github.com/aleister1102/springlift/internal/models"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *SequenceDiffEngine {
	t.Helper()
	engine, err := NewSequenceDiffEngine(config.NewDefaultDiffConfig(), zerolog.Nop())
	require.NoError(t, err)
	return engine
}

func TestSplitLines_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"single line without terminator",
		"one\n",
		"one\ntwo\nthree\n",
		"one\r\ntwo\r\n",
		"trailing text after last newline\nno terminator here",
		"\n\n\n",
	}

	for _, input := range inputs {
		lines := SplitLines(input)
		assert.Equal(t, input, strings.Join(lines, ""), "round-trip failed for %q", input)
	}
}

func TestCompare_Identity(t *testing.T) {
	engine := newTestEngine(t)
	text := "package demo;\n\npublic class A {\n}\n"

	report, err := engine.Compare(text, text, "A.java")
	require.NoError(t, err)

	assert.Equal(t, 0, report.ChangedLines)
	assert.Equal(t, 100.0, report.DiffRatio)
	assert.Empty(t, report.ChangedSections)
	assert.Empty(t, report.UnifiedDiff)
}

func TestCompare_NamespaceMigration(t *testing.T) {
	engine := newTestEngine(t)
	original := "import javax.servlet.Filter;\npublic class A {}\n"
	modernized := "import jakarta.servlet.Filter;\npublic class A {}\n"

	report, err := engine.Compare(original, modernized, "A.java")
	require.NoError(t, err)

	assert.Equal(t, 1, report.AddedLines)
	assert.Equal(t, 1, report.RemovedLines)
	assert.Equal(t, 2, report.ChangedLines)
	require.Len(t, report.ChangedSections, 1)
	assert.Equal(t, models.CategoryNamespaceMigration, report.ChangedSections[0].ChangeType)
	assert.Equal(t, "replace", report.ChangedSections[0].Type)
	assert.Equal(t, 1, report.ChangedSections[0].OriginalStart)
	assert.Equal(t, 1, report.ChangedSections[0].OriginalEnd)
}

func TestCompare_CommentAdded(t *testing.T) {
	engine := newTestEngine(t)
	original := "public class A {}\n"
	modernized := "// note\npublic class A {}\n"

	report, err := engine.Compare(original, modernized, "A.java")
	require.NoError(t, err)

	assert.Equal(t, 1, report.AddedLines)
	assert.Equal(t, 0, report.RemovedLines)
	require.Len(t, report.ChangedSections, 1)
	assert.Equal(t, models.CategoryCommentAdded, report.ChangedSections[0].ChangeType)
	assert.Equal(t, "insert", report.ChangedSections[0].Type)
}

func TestCompare_DisjointTexts(t *testing.T) {
	engine := newTestEngine(t)

	// inputs must share no characters at all, including newlines
	report, err := engine.Compare("aaaa", "bbbb", "x")
	require.NoError(t, err)
	assert.Equal(t, 0.0, report.DiffRatio)
}

func TestCompare_MonotonicCounts(t *testing.T) {
	engine := newTestEngine(t)
	cases := []struct{ original, modernized string }{
		{"a\nb\nc\n", "a\nc\n"},
		{"a\n", "a\nb\nc\n"},
		{"x\ny\n", "p\nq\nr\n"},
		{"", "new\n"},
		{"old\n", ""},
	}

	for _, tc := range cases {
		report, err := engine.Compare(tc.original, tc.modernized, "f")
		require.NoError(t, err)
		assert.Equal(t, report.AddedLines+report.RemovedLines, report.ChangedLines)
	}
}

func TestCompare_Determinism(t *testing.T) {
	engine := newTestEngine(t)
	original := "a\nb\nc\nd\ne\n"
	modernized := "a\nx\nc\ny\ne\nz\n"

	first, err := engine.Compare(original, modernized, "f")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := engine.Compare(original, modernized, "f")
		require.NoError(t, err)
		assert.Equal(t, first.UnifiedDiff, again.UnifiedDiff)
		assert.Equal(t, first.ChangedSections, again.ChangedSections)
	}
}

func TestCompare_MalformedInput(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Compare(string([]byte{0xff, 0xfe}), "ok", "f")
	require.Error(t, err)
	assert.ErrorIs(t, err, errorwrapper.ErrMalformedInput)

	_, err = engine.Compare("ok", string([]byte{0xc3, 0x28}), "f")
	require.Error(t, err)
	assert.ErrorIs(t, err, errorwrapper.ErrMalformedInput)
}

func TestCompare_UnifiedDiffLabels(t *testing.T) {
	engine := newTestEngine(t)

	report, err := engine.Compare("a\n", "b\n", "src/Main.java")
	require.NoError(t, err)
	assert.Contains(t, report.UnifiedDiff, "--- original/src/Main.java")
	assert.Contains(t, report.UnifiedDiff, "+++ modernized/src/Main.java")
	assert.Contains(t, report.UnifiedDiff, "-a")
	assert.Contains(t, report.UnifiedDiff, "+b")
}

func TestOpcodes_CoverageInvariant(t *testing.T) {
	originalLines := SplitLines("a\nb\nc\nd\n")
	modernizedLines := SplitLines("a\nx\nc\ne\nf\n")

	opcodes := difflib.NewMatcher(originalLines, modernizedLines).GetOpCodes()
	require.NotEmpty(t, opcodes)

	assert.Equal(t, 0, opcodes[0].I1)
	assert.Equal(t, 0, opcodes[0].J1)
	for i := 1; i < len(opcodes); i++ {
		assert.Equal(t, opcodes[i-1].I2, opcodes[i].I1, "gap or overlap on original side")
		assert.Equal(t, opcodes[i-1].J2, opcodes[i].J1, "gap or overlap on modernized side")
	}
	last := opcodes[len(opcodes)-1]
	assert.Equal(t, len(originalLines), last.I2)
	assert.Equal(t, len(modernizedLines), last.J2)
}

func TestExtractChangedSections_SkipsBlankSections(t *testing.T) {
	originalLines := SplitLines("a\n\n\nb\n")
	modernizedLines := SplitLines("a\nb\n")

	sections := ExtractChangedSections(originalLines, modernizedLines)
	for _, section := range sections {
		assert.False(t, section.OriginalCode == "" && section.ModernizedCode == "")
	}
}

func TestClassifyChange_Precedence(t *testing.T) {
	cases := []struct {
		name       string
		original   string
		modernized string
		want       models.ChangeCategory
	}{
		{"namespace wins over import", "import javax.mail.Session;", "import jakarta.mail.Session;", models.CategoryNamespaceMigration},
		{"namespace outside imports", "javax.servlet.Filter chain;", "jakarta.servlet.Filter chain;", models.CategoryNamespaceMigration},
		{"import added", "", "import java.util.List;", models.CategoryImportAdded},
		{"import removed", "import java.util.List;", "", models.CategoryImportRemoved},
		{"comment added", "int x = 1;", "// migrated\nint x = 1;", models.CategoryCommentAdded},
		{"deprecated removed", "@Deprecated\nvoid old() {}", "", models.CategoryDeprecatedRemoved},
		{"deprecated without annotation form", "callDeprecatedHelper();", "", models.CategoryDeprecatedRemoved},
		{"fallback", "int x = 1;", "int x = 2;", models.CategoryCodeUpdated},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classifyChange(tc.original, tc.modernized))
		})
	}
}
