package differ

import "strings"

// SplitLines splits text into lines keeping line terminators attached, so the
// original text round-trips exactly: strings.Join(SplitLines(s), "") == s.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	// SplitAfter leaves a trailing empty element when the text ends with a newline
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// trimLineEnding strips the trailing line terminator for display purposes.
func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
