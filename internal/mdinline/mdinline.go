// Package mdinline converts the small inline markdown subset XMD
// paragraphs/list items carry — bold, italic, inline code,
// "[text](url)" links, and "![alt](url)" images — into HTML or LaTeX.
// Both renderers (C6, C7)
// share this conversion rather than each hand-rolling their own, since
// spec.md describes the same bounded inline grammar for both (§4.6
// "markdown-inline -> HTML", §4.7 "bounded markdown-inline-to-LaTeX
// conversion").
//
// Escaping discipline: each target's leaf text is escaped once, at the
// point it is emitted; command/tag output this package itself produces
// is never re-escaped (spec.md §9 "LaTeX escaping").
package mdinline

import (
	"html"
	"regexp"
	"strings"
)

type tokenKind int

const (
	tokenText tokenKind = iota
	tokenBold
	tokenItalic
	tokenCode
	tokenLink
	tokenImage
)

type token struct {
	kind tokenKind
	text string
	url  string // tokenLink, tokenImage only
}

var (
	boldRe = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italRe = regexp.MustCompile(`\*([^*]+)\*`)
	codeRe = regexp.MustCompile("`([^`]+)`")
	imgRe  = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]*)\)`)
	linkRe = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)
	allRe  = regexp.MustCompile(boldRe.String() + "|" + codeRe.String() + "|" + imgRe.String() + "|" + linkRe.String() + "|" + italRe.String())
)

// tokenize scans text left to right, emitting plain-text runs and the
// five recognized inline spans in source order. Overlapping/ambiguous
// markup (e.g. an unterminated "*") falls back to plain text.
func tokenize(text string) []token {
	var out []token
	pos := 0

	for pos < len(text) {
		loc := allRe.FindStringIndex(text[pos:])
		if loc == nil {
			out = append(out, token{kind: tokenText, text: text[pos:]})

			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if start > pos {
			out = append(out, token{kind: tokenText, text: text[pos:start]})
		}

		match := text[start:end]
		switch {
		case boldRe.MatchString(match) && strings.HasPrefix(match, "**"):
			out = append(out, token{kind: tokenBold, text: boldRe.FindStringSubmatch(match)[1]})
		case strings.HasPrefix(match, "`"):
			out = append(out, token{kind: tokenCode, text: codeRe.FindStringSubmatch(match)[1]})
		case strings.HasPrefix(match, "!["):
			sub := imgRe.FindStringSubmatch(match)
			out = append(out, token{kind: tokenImage, text: sub[1], url: sub[2]})
		case strings.HasPrefix(match, "["):
			sub := linkRe.FindStringSubmatch(match)
			out = append(out, token{kind: tokenLink, text: sub[1], url: sub[2]})
		default:
			out = append(out, token{kind: tokenItalic, text: italRe.FindStringSubmatch(match)[1]})
		}

		pos = end
	}

	return out
}

// ToHTML renders text as an inline HTML fragment.
func ToHTML(text string) string {
	var sb strings.Builder
	for _, t := range tokenize(text) {
		switch t.kind {
		case tokenBold:
			sb.WriteString("<strong>" + html.EscapeString(t.text) + "</strong>")
		case tokenItalic:
			sb.WriteString("<em>" + html.EscapeString(t.text) + "</em>")
		case tokenCode:
			sb.WriteString("<code>" + html.EscapeString(t.text) + "</code>")
		case tokenLink:
			sb.WriteString(`<a href="` + html.EscapeString(t.url) + `">` + html.EscapeString(t.text) + "</a>")
		case tokenImage:
			sb.WriteString(`<img src="` + html.EscapeString(t.url) + `" alt="` + html.EscapeString(t.text) + `">`)
		default:
			sb.WriteString(html.EscapeString(t.text))
		}
	}

	return sb.String()
}

// ToLatex renders text as an inline LaTeX fragment. Per spec.md §4.7, a
// link renders as "t (u)" rather than depending on the hyperref
// package.
func ToLatex(text string) string {
	var sb strings.Builder
	for _, t := range tokenize(text) {
		switch t.kind {
		case tokenBold:
			sb.WriteString(`\textbf{` + EscapeLatex(t.text) + `}`)
		case tokenItalic:
			sb.WriteString(`\emph{` + EscapeLatex(t.text) + `}`)
		case tokenCode:
			sb.WriteString(`\texttt{` + EscapeLatex(t.text) + `}`)
		case tokenLink:
			sb.WriteString(EscapeLatex(t.text) + " (" + EscapeLatex(t.url) + ")")
		case tokenImage:
			sb.WriteString(`\includegraphics{` + `\detokenize{` + t.url + `}` + `}`)
		default:
			sb.WriteString(EscapeLatex(t.text))
		}
	}

	return sb.String()
}

var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// EscapeLatex escapes LaTeX metacharacters in leaf text. It must never
// be applied to text this package has already emitted as a LaTeX
// command (e.g. the output of ToLatex itself).
func EscapeLatex(s string) string {
	return latexEscaper.Replace(s)
}
