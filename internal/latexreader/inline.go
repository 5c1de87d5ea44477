package latexreader

import (
	"regexp"
	"strings"
)

var (
	textbfRe  = regexp.MustCompile(`\\textbf\{([^{}]*)\}`)
	emphRe    = regexp.MustCompile(`\\emph\{([^{}]*)\}`)
	bfRe      = regexp.MustCompile(`\\bf\b`)
	texttt    = regexp.MustCompile(`\\texttt\{([^{}]*)\}`)
	hrefRe    = regexp.MustCompile(`\\href\{([^{}]*)\}\{([^{}]*)\}`)
	urlRe     = regexp.MustCompile(`\\url\{([^{}]*)\}`)
	thanksRe  = regexp.MustCompile(`\\thanks\{[^{}]*\}`)
	hspaceRe  = regexp.MustCompile(`\\hspace\{[^{}]*\}`)
	colorRe   = regexp.MustCompile(`\\color\{[^{}]*\}`)
	largeRe   = regexp.MustCompile(`\\(Huge|huge|LARGE|Large|large|normalsize|small|footnotesize)\b`)
	andRe     = regexp.MustCompile(`\\(And|AND)\b`)
	linebreak = regexp.MustCompile(`\\\\`)
)

// ToText converts an inline LaTeX fragment to plain/markdown text,
// covering the subset documented in spec.md §4.8.
func ToText(s string) string {
	s = thanksRe.ReplaceAllString(s, "")
	s = hspaceRe.ReplaceAllString(s, "")
	s = colorRe.ReplaceAllString(s, "")
	s = largeRe.ReplaceAllString(s, "")
	s = bfRe.ReplaceAllString(s, "")
	s = andRe.ReplaceAllString(s, ", ")

	for {
		next := textbfRe.ReplaceAllString(s, "**$1**")
		next = emphRe.ReplaceAllString(next, "*$1*")
		next = texttt.ReplaceAllString(next, "`$1`")
		next = hrefRe.ReplaceAllString(next, "[$2]($1)")
		next = urlRe.ReplaceAllString(next, "$1")
		if next == s {
			break
		}
		s = next
	}

	s = linebreak.ReplaceAllString(s, "\n")
	s = unescapeLatex(s)

	return strings.TrimSpace(collapseSpace(s))
}

var latexUnescaper = strings.NewReplacer(
	`\%`, `%`,
	`\&`, `&`,
	`\#`, `#`,
	`\_`, `_`,
	`\{`, `{`,
	`\}`, `}`,
	`\$`, `$`,
)

func unescapeLatex(s string) string { return latexUnescaper.Replace(s) }

var spaceRunRe = regexp.MustCompile(`[ \t]+`)

func collapseSpace(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(spaceRunRe.ReplaceAllString(l, " "))
	}

	return strings.Join(lines, " ")
}
