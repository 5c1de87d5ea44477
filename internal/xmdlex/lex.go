// Package xmdlex is the block tokenizer (C2): it segments normalized
// XMD source into an ordered list of Blocks without ever failing —
// anything it cannot recognize becomes a Raw block carrying the
// original text, per spec.md §4.2/§7.
//
// Grounded on the teacher's internal/markdown/token.go and the line-scan
// shape of its parser.go, adapted from an inline-token stream to a
// line-oriented block scanner since XMD's block grammar (directives,
// grid cell/row delimiters, attribute blocks) is line-structured rather
// than inline-delimiter-structured like the teacher's dialect.
package xmdlex

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind identifies which block grammar rule produced a Block.
type Kind uint8

const (
	KindAuthorMarker Kind = iota
	KindDateMarker
	KindTitleMarker
	KindHeading
	KindCodeFence
	KindMathBlock
	KindDirective
	KindList
	KindFigureLine
	KindParagraph
	KindRaw
)

// Block is one segmented unit of source, spanning whole lines. Payload
// fields are interpreted per Kind by the parser (C3):
//   - KindHeading: Level, Lines[0] is the heading text.
//   - KindCodeFence: Lang, Lines is the fenced body (fence lines excluded).
//   - KindDirective: Name (empty for a grid), Args, Lines is the body.
//   - KindList: Ordered, Lines is one item text per entry.
//   - KindFigureLine: Lines[0] is "![alt](url)", Lines[1] is the
//     verbatim attribute block text (including braces), or "" if absent.
//   - KindTitleMarker/KindAuthorMarker/KindDateMarker: Lines[0] is the
//     marker payload text (may be empty for author/date).
//   - KindParagraph: Lines is the paragraph's source lines.
//   - KindRaw: Lines is the untouched remainder.
type Block struct {
	Kind        Kind
	StartOffset int
	EndOffset   int
	BlockIndex  int
	Level       int
	Ordered     bool
	Lang        string
	Name        string
	Args        string
	Lines       []string
	Raw         string
}

var (
	headingRe = regexp.MustCompile(`^(#{1,6})(\s+(.*))?$`)
	fenceRe   = regexp.MustCompile("^```(\\w+)?\\s*$")
	orderedRe = regexp.MustCompile(`^\d+\.\s`)
	figureRe  = regexp.MustCompile(`^!\[([^\]]*)\]\(([^)]*)\)`)
)

type line struct {
	text        string
	startOffset int
}

// Tokenize segments normalized (LF-only, per I6) source into Blocks.
// It never returns an error; unrecognized or unclosed constructs become
// a KindRaw block spanning the remaining source.
func Tokenize(source string) []Block {
	lines := splitLines(source)
	var blocks []Block
	idx := 0
	blockIndex := 0

	for idx < len(lines) {
		if strings.TrimSpace(lines[idx].text) == "" {
			idx++

			continue
		}

		b, next := scanOne(lines, idx, blockIndex)
		blocks = append(blocks, b)
		blockIndex++
		idx = next
	}

	return blocks
}

func scanOne(lines []line, idx, blockIndex int) (Block, int) {
	l := lines[idx]
	text := l.text

	if rest, ok := marker(text, "@^"); ok {
		return finishSingle(KindAuthorMarker, lines, idx, blockIndex, []string{rest})
	}
	if rest, ok := marker(text, "@="); ok {
		return finishSingle(KindDateMarker, lines, idx, blockIndex, []string{rest})
	}
	if rest, ok := marker(text, "@"); ok && strings.TrimSpace(rest) != "" {
		return finishSingle(KindTitleMarker, lines, idx, blockIndex, []string{rest})
	}

	if m := headingRe.FindStringSubmatch(text); m != nil {
		level := len(m[1])
		title := strings.TrimSpace(m[3])

		return finishSingle2(KindHeading, lines, idx, blockIndex, level, "", "", []string{title})
	}

	if m := fenceRe.FindStringSubmatch(text); m != nil {
		return scanFence(lines, idx, blockIndex, m[1])
	}

	if strings.TrimSpace(text) == "$$" {
		return scanMath(lines, idx, blockIndex)
	}

	if strings.HasPrefix(strings.TrimLeft(text, " \t"), ":::") {
		return scanDirective(lines, idx, blockIndex)
	}

	if isListStart(text) {
		return scanList(lines, idx, blockIndex)
	}

	if figureRe.MatchString(text) {
		return scanFigureLine(lines, idx, blockIndex)
	}

	return scanParagraph(lines, idx, blockIndex)
}

func marker(text, prefix string) (string, bool) {
	if !strings.HasPrefix(text, prefix) {
		return "", false
	}
	rest := text[len(prefix):]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		// e.g. "@^title" isn't "@^ " marker at all for "@" case, but for
		// "@^"/"@=" the prefix already disambiguates; guard against a
		// word character immediately following "@" that isn't a marker.
		if prefix == "@" {
			return "", false
		}
	}

	return strings.TrimSpace(rest), true
}

func isListStart(text string) bool {
	return strings.HasPrefix(text, "- ") || strings.HasPrefix(text, "* ") || orderedRe.MatchString(text)
}

func finishSingle(kind Kind, lines []line, idx, blockIndex int, payload []string) (Block, int) {
	return finishSingle2(kind, lines, idx, blockIndex, 0, "", "", payload)
}

func finishSingle2(kind Kind, lines []line, idx, blockIndex int, level int, lang, name string, payload []string) (Block, int) {
	l := lines[idx]
	end := l.startOffset + len(l.text)

	return Block{
		Kind:        kind,
		StartOffset: l.startOffset,
		EndOffset:   end,
		BlockIndex:  blockIndex,
		Level:       level,
		Lang:        lang,
		Name:        name,
		Lines:       payload,
		Raw:         l.text,
	}, idx + 1
}

func scanFence(lines []line, idx, blockIndex int, lang string) (Block, int) {
	start := lines[idx].startOffset
	var body []string
	i := idx + 1
	closed := false
	for i < len(lines) {
		if strings.TrimRight(lines[i].text, " \t") == "```" {
			closed = true

			break
		}
		body = append(body, lines[i].text)
		i++
	}

	end := start
	rawLines := []string{lines[idx].text}
	rawLines = append(rawLines, body...)
	if closed {
		rawLines = append(rawLines, lines[i].text)
		end = lines[i].startOffset + len(lines[i].text)
		i++
	} else if len(lines) > 0 {
		last := lines[len(lines)-1]
		end = last.startOffset + len(last.text)
	}

	if !closed {
		return Block{
			Kind: KindRaw, StartOffset: start, EndOffset: end, BlockIndex: blockIndex,
			Lines: rawLines, Raw: strings.Join(rawLines, "\n"),
		}, i
	}

	return Block{
		Kind: KindCodeFence, StartOffset: start, EndOffset: end, BlockIndex: blockIndex,
		Lang: lang, Lines: body, Raw: strings.Join(rawLines, "\n"),
	}, i
}

func scanMath(lines []line, idx, blockIndex int) (Block, int) {
	start := lines[idx].startOffset
	var body []string
	i := idx + 1
	closed := false
	for i < len(lines) {
		if strings.TrimSpace(lines[i].text) == "$$" {
			closed = true

			break
		}
		body = append(body, lines[i].text)
		i++
	}

	rawLines := []string{lines[idx].text}
	rawLines = append(rawLines, body...)
	end := start
	if closed {
		rawLines = append(rawLines, lines[i].text)
		end = lines[i].startOffset + len(lines[i].text)
		i++
	} else if len(lines) > 0 {
		last := lines[len(lines)-1]
		end = last.startOffset + len(last.text)
	}

	if !closed {
		return Block{Kind: KindRaw, StartOffset: start, EndOffset: end, BlockIndex: blockIndex,
			Lines: rawLines, Raw: strings.Join(rawLines, "\n")}, i
	}

	return Block{Kind: KindMathBlock, StartOffset: start, EndOffset: end, BlockIndex: blockIndex,
		Lines: body, Raw: strings.Join(rawLines, "\n")}, i
}

// scanDirective scans ":::<name>? <args>?" through a closing "::: ".
// Tolerates a closing line suffixed with grid delimiters ("|||", "---")
// and a body line that ends with " :::" (treated as close, prefix kept
// as body), per §4.2's close-fence tolerance note.
func scanDirective(lines []line, idx, blockIndex int) (Block, int) {
	start := lines[idx].startOffset
	opener := strings.TrimLeft(lines[idx].text, " \t")
	header := strings.TrimSpace(strings.TrimPrefix(opener, ":::"))

	name, args := "", header
	if header != "" {
		fields := strings.SplitN(header, " ", 2)
		switch {
		case isDirectiveName(fields[0]):
			name = fields[0]
			args = ""
			if len(fields) > 1 {
				args = strings.TrimSpace(fields[1])
			}
		case !strings.Contains(fields[0], "="):
			// A bare leading word that isn't a known directive name and
			// isn't a "key=value" grid attribute: an unrecognized
			// directive name (§4.3 "Unknown directive name -> RawXmdBlock").
			name = "unknown:" + fields[0]
			args = ""
		}
	}

	var body []string
	i := idx + 1
	closed := false
	rawLines := []string{lines[idx].text}

	for i < len(lines) {
		t := lines[i].text
		trimmed := strings.TrimRight(t, " \t")

		if trimmed == ":::" {
			closed = true
			rawLines = append(rawLines, t)
			i++

			break
		}
		if strings.HasSuffix(trimmed, " :::") {
			body = append(body, strings.TrimSuffix(trimmed, " :::"))
			rawLines = append(rawLines, t)
			closed = true
			i++

			break
		}
		if suffix, ok := closeWithGridSuffix(trimmed); ok {
			if suffix != "" {
				body = append(body, suffix)
			}
			rawLines = append(rawLines, t)
			closed = true
			i++

			break
		}

		body = append(body, t)
		rawLines = append(rawLines, t)
		i++
	}

	end := start
	if len(rawLines) > 0 {
		// recompute end from the last consumed physical line
		lastIdx := idx + len(rawLines) - 1
		if lastIdx < len(lines) {
			end = lines[lastIdx].startOffset + len(lines[lastIdx].text)
		}
	}

	if !closed {
		return Block{Kind: KindRaw, StartOffset: start, EndOffset: end, BlockIndex: blockIndex,
			Lines: rawLines, Raw: strings.Join(rawLines, "\n")}, i
	}

	return Block{
		Kind: KindDirective, StartOffset: start, EndOffset: end, BlockIndex: blockIndex,
		Name: name, Args: args, Lines: body, Raw: strings.Join(rawLines, "\n"),
	}, i
}

func isDirectiveName(word string) bool {
	switch word {
	case "figure", "table", "equation":
		return true
	default:
		return false
	}
}

// closeWithGridSuffix recognizes a closing "::: " line followed on the
// same physical line by a grid cell/row delimiter.
func closeWithGridSuffix(trimmed string) (string, bool) {
	for _, suffix := range []string{"|||", "---"} {
		if trimmed == ":::"+suffix {
			return suffix, true
		}
	}

	return "", false
}

func scanList(lines []line, idx, blockIndex int) (Block, int) {
	start := lines[idx].startOffset
	ordered := orderedRe.MatchString(lines[idx].text)
	var items []string
	i := idx

	for i < len(lines) {
		t := lines[i].text
		if strings.TrimSpace(t) == "" {
			break
		}
		if i > idx && !isSameListKind(t, ordered) {
			break
		}
		items = append(items, stripListMarker(t, ordered))
		i++
	}

	end := start
	if i > idx {
		last := lines[i-1]
		end = last.startOffset + len(last.text)
	}

	raw := make([]string, 0, i-idx)
	for j := idx; j < i; j++ {
		raw = append(raw, lines[j].text)
	}

	return Block{
		Kind: KindList, StartOffset: start, EndOffset: end, BlockIndex: blockIndex,
		Ordered: ordered, Lines: items, Raw: strings.Join(raw, "\n"),
	}, i
}

func isSameListKind(text string, ordered bool) bool {
	if ordered {
		return orderedRe.MatchString(text)
	}

	return strings.HasPrefix(text, "- ") || strings.HasPrefix(text, "* ")
}

func stripListMarker(text string, ordered bool) string {
	if ordered {
		if m := orderedRe.FindString(text); m != "" {
			return strings.TrimSpace(text[len(m):])
		}

		return strings.TrimSpace(text)
	}

	return strings.TrimSpace(text[2:])
}

// scanFigureLine captures "![alt](url)" plus a balanced-brace trailing
// attribute block, which may itself legally contain {CH}/{REF}
// placeholder braces — a plain nesting-depth counter handles those
// without special-casing, since they are just balanced braces nested
// inside the outer block.
func scanFigureLine(lines []line, idx, blockIndex int) (Block, int) {
	l := lines[idx]
	text := l.text
	m := figureRe.FindStringIndex(text)
	rest := text[m[1]:]

	attr := ""
	trailing := ""
	if strings.HasPrefix(strings.TrimLeft(rest, " \t"), "{") {
		trimmed := strings.TrimLeft(rest, " \t")
		depth := 0
		closeAt := -1
		for i, r := range trimmed {
			switch r {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					closeAt = i + 1

					break
				}
			}
			if closeAt != -1 {
				break
			}
		}
		if closeAt != -1 {
			attr = trimmed[:closeAt]
			trailing = trimmed[closeAt:]
		} else {
			trailing = rest
		}
	} else {
		trailing = rest
	}

	end := l.startOffset + len(text)

	return Block{
		Kind: KindFigureLine, StartOffset: l.startOffset, EndOffset: end, BlockIndex: blockIndex,
		Lines: []string{text[:m[1]], attr, strings.TrimSpace(trailing)}, Raw: text,
	}, idx + 1
}

func scanParagraph(lines []line, idx, blockIndex int) (Block, int) {
	start := lines[idx].startOffset
	var body []string
	i := idx

	for i < len(lines) {
		t := lines[i].text
		if strings.TrimSpace(t) == "" {
			break
		}
		if i > idx && isStructuralBreak(t) {
			break
		}
		body = append(body, t)
		i++
	}

	end := start
	if i > idx {
		last := lines[i-1]
		end = last.startOffset + len(last.text)
	}

	return Block{
		Kind: KindParagraph, StartOffset: start, EndOffset: end, BlockIndex: blockIndex,
		Lines: body, Raw: strings.Join(body, "\n"),
	}, i
}

func isStructuralBreak(text string) bool {
	if headingRe.MatchString(text) {
		return true
	}
	if fenceRe.MatchString(text) {
		return true
	}
	if strings.TrimSpace(text) == "$$" {
		return true
	}
	if strings.HasPrefix(strings.TrimLeft(text, " \t"), ":::") {
		return true
	}
	if isListStart(text) {
		return true
	}
	if figureRe.MatchString(text) {
		return true
	}

	return false
}

func splitLines(source string) []line {
	raw := strings.Split(source, "\n")
	out := make([]line, 0, len(raw))
	offset := 0
	for i, text := range raw {
		out = append(out, line{text: text, startOffset: offset})
		offset += len(text)
		if i != len(raw)-1 {
			offset++ // the '\n' consumed by Split
		}
	}

	return out
}

// FormatSpanIndex renders a block's index as a human-readable debug
// tag; nothing else in the module calls it.
func FormatSpanIndex(b Block) string {
	return strconv.Itoa(b.BlockIndex)
}
