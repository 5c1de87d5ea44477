package ir

import "strings"

// normalizeText applies the content-hash normalization rules spec.md
// §4.1 requires before hashing or comparing leaf text: CRLF becomes LF,
// and trailing whitespace on each line is trimmed. Leading whitespace
// and blank lines are preserved since they can be meaningful inside
// code blocks.
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.Join(lines, "\n")
}

// normalizeCodeText normalizes a code block's body: CRLF to LF and a
// single trailing-newline trim, but no per-line trailing-whitespace
// trim since whitespace inside code is significant.
func normalizeCodeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	return strings.TrimRight(s, "\n")
}

// normalizeCell collapses internal whitespace runs in a table/grid cell
// to a single space and trims the ends, per §4.1's table-cell rule.
func normalizeCell(s string) string {
	fields := strings.Fields(normalizeText(s))

	return strings.Join(fields, " ")
}

