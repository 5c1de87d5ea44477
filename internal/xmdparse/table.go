package xmdparse

import (
	"strconv"
	"strings"

	"github.com/zadoox/xmd/internal/ir"
	"github.com/zadoox/xmd/internal/xmdlex"
)

// parseTableDirective parses the XMD Table v1 body described in
// spec.md §4.3: an optional colSpec line, optional h-rule marker lines
// (`-`/`=`/`.`), a pipe header row, the standard `|---|...|` separator,
// and pipe data rows.
func parseTableDirective(docID string, top *frame, b xmdlex.Block) ir.Node {
	attrs := parseAttrs(b.Args)

	lines := b.Lines
	var colAlign []ir.Align
	var vRules []ir.Rule

	if len(lines) > 0 {
		if aligns, rules, ok := parseColSpec(strings.TrimSpace(lines[0])); ok {
			colAlign, vRules = aligns, rules
			lines = lines[1:]
		}
	}

	var header []string
	var rows [][]string
	var hRules []ir.Rule
	sawHeader := false

	for _, raw := range lines {
		t := strings.TrimSpace(raw)
		if t == "" {
			continue
		}
		if rule, ok := classifyHRuleMarker(t); ok {
			hRules = append(hRules, rule)

			continue
		}
		if isSeparatorRow(t) {
			hRules = append(hRules, ir.RuleSingle)

			continue
		}

		cells := splitPipeRow(t)
		if !sawHeader {
			header = cells
			sawHeader = true
		} else {
			rows = append(rows, cells)
		}
	}

	want := len(rows) + 2 // header + data rows + 1 boundary
	for len(hRules) < want {
		hRules = append(hRules, ir.RuleNone)
	}
	if len(hRules) > want {
		hRules = hRules[:want]
	}

	var style *ir.TableStyle
	_, hasStyle := attrs["borderStyle"]
	_, hasColor := attrs["borderColor"]
	_, hasWidth := attrs["borderWidth"]
	if hasStyle || hasColor || hasWidth {
		style = tableStyle(attrs, attrs["borderStyle"])
	}

	path := top.nextPath(docID, ir.KindTable)

	return ir.NewTable(docID, path, sourceFromBlock(b), ir.Table{
		Header:   header,
		Rows:     rows,
		Caption:  attrs["caption"],
		Label:    attrs["label"],
		ColAlign: colAlign,
		VRules:   vRules,
		HRules:   hRules,
		Style:    style,
	})
}

func tableStyle(attrs map[string]string, borderStyle string) *ir.TableStyle {
	st := &ir.TableStyle{BorderStyle: ir.BorderStyle(borderStyle), BorderColor: attrs["borderColor"]}
	if w, ok := attrs["borderWidth"]; ok {
		if n, err := strconv.Atoi(w); err == nil {
			st.BorderWidthPx = n
			st.HasBorderWidth = true
		}
	}

	return st
}

// looksLikeTableBody distinguishes an anonymous "::: attrs" directive
// carrying XMD Table v1 content from a grid: a grid body always uses a
// standalone "---"/"|||" delimiter line, which a table body never
// does. Absent those delimiters, a body is a table when its first
// non-empty line is a colSpec or an ordinary pipe row.
func looksLikeTableBody(lines []string) bool {
	for _, l := range lines {
		t := strings.TrimRight(strings.TrimSpace(l), " \t")
		if t == "---" || t == "|||" {
			return false
		}
	}

	for _, l := range lines {
		t := strings.TrimSpace(l)
		if t == "" {
			continue
		}
		if _, _, ok := parseColSpec(t); ok {
			return true
		}

		return strings.HasPrefix(t, "|")
	}

	return false
}

// parseColSpec parses a colSpec line like "|L|C|R|" into column
// alignments and the vertical rules between/around them (length
// cols+1). Returns ok=false if the line isn't a colSpec at all.
func parseColSpec(s string) ([]ir.Align, []ir.Rule, bool) {
	if s == "" {
		return nil, nil, false
	}
	for _, r := range s {
		switch r {
		case '|', 'L', 'C', 'R':
		default:
			return nil, nil, false
		}
	}

	var aligns []ir.Align
	var rules []ir.Rule
	i := 0
	for i < len(s) {
		count := 0
		for i < len(s) && s[i] == '|' {
			count++
			i++
		}
		switch count {
		case 0:
			rules = append(rules, ir.RuleNone)
		case 1:
			rules = append(rules, ir.RuleSingle)
		default:
			rules = append(rules, ir.RuleDouble)
		}

		if i >= len(s) {
			break
		}

		switch s[i] {
		case 'L':
			aligns = append(aligns, ir.AlignLeft)
		case 'C':
			aligns = append(aligns, ir.AlignCenter)
		case 'R':
			aligns = append(aligns, ir.AlignRight)
		}
		i++
	}
	if len(rules) == len(aligns) {
		// no trailing bar: the right outer boundary has no rule
		rules = append(rules, ir.RuleNone)
	}

	if len(aligns) == 0 {
		return nil, nil, false
	}

	return aligns, rules, true
}

func classifyHRuleMarker(t string) (ir.Rule, bool) {
	switch t {
	case "-":
		return ir.RuleSingle, true
	case "=":
		return ir.RuleDouble, true
	case ".":
		return ir.RuleNone, true
	default:
		return "", false
	}
}

// isSeparatorRow recognizes the standard markdown header separator,
// e.g. "|---|---|---|" or "---|---|---".
func isSeparatorRow(t string) bool {
	if !strings.Contains(t, "-") {
		return false
	}
	body := strings.Trim(t, "|")
	if body == "" {
		return false
	}
	for _, seg := range strings.Split(body, "|") {
		seg = strings.TrimSpace(seg)
		if seg == "" || strings.Trim(seg, "-: ") != "" {
			return false
		}
	}

	return true
}

func splitPipeRow(t string) []string {
	trimmed := strings.Trim(t, "|")
	parts := strings.Split(trimmed, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}

	return cells
}
