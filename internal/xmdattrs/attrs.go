// Package xmdattrs parses the flat key="value" attribute bags that
// appear on figure lines and directive openers (spec.md §4.3/§6), and
// extracts "#fig:<label>"-style tokens from them. Shared by the parser
// (which stores these verbatim in Figure.Source().Raw rather than
// decomposing them — source.raw is the documented source of truth) and
// by the renderers, which read the same raw text back out.
package xmdattrs

import "strings"

// Parse parses a sequence of key="value" (or bare key=value) pairs.
// Malformed fragments are skipped rather than erroring, matching the
// engine's never-fail parsing discipline.
func Parse(s string) map[string]string {
	out := make(map[string]string)
	i := 0
	n := len(s)

	for i < n {
		for i < n && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
		if i >= n {
			break
		}

		keyStart := i
		for i < n && s[i] != '=' && s[i] != ' ' && s[i] != '\t' {
			i++
		}
		key := s[keyStart:i]
		if i >= n || s[i] != '=' {
			for i < n && s[i] != ' ' && s[i] != '\t' {
				i++
			}

			continue
		}
		i++

		var value string
		if i < n && s[i] == '"' {
			i++
			start := i
			for i < n && s[i] != '"' {
				i++
			}
			value = s[start:i]
			if i < n {
				i++
			}
		} else {
			start := i
			for i < n && s[i] != ' ' && s[i] != '\t' {
				i++
			}
			value = s[start:i]
		}

		if key != "" {
			out[key] = value
		}
	}

	return out
}

// Label finds a "#fig:<name>" style token anywhere in s and returns it
// without the leading "#" (e.g. "fig:demo").
func Label(s string) string {
	for _, tok := range strings.Fields(s) {
		if strings.HasPrefix(tok, "#") {
			return tok[1:]
		}
	}

	return ""
}

// StripAttrBlock removes a leading "{...}" attribute block (balanced
// braces) from s and returns the remainder plus the block's inner text
// (without the outer braces).
func StripAttrBlock(s string) (inner, rest string) {
	trimmed := strings.TrimLeft(s, " \t")
	if !strings.HasPrefix(trimmed, "{") {
		return "", s
	}

	depth := 0
	for i, r := range trimmed {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return trimmed[1:i], trimmed[i+1:]
			}
		}
	}

	return "", s
}
