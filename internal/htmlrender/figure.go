package htmlrender

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/zadoox/xmd/internal/config"
	"github.com/zadoox/xmd/internal/ir"
	"github.com/zadoox/xmd/internal/mdinline"
	"github.com/zadoox/xmd/internal/xmdattrs"
)

var knownSchemes = []string{"zadoox-asset://", "data:"}

func hasKnownScheme(src string) bool {
	for _, s := range knownSchemes {
		if strings.HasPrefix(src, s) {
			return true
		}
	}

	return strings.Contains(src, "://")
}

func renderFigure(sb *strings.Builder, f *ir.Figure, cfg config.Config) {
	inner, _ := xmdattrs.StripAttrBlock(stripFigureMarkdownPrefix(f.Source().Raw))
	attrs := xmdattrs.Parse(inner)

	if cfg.RawImageLinks && !hasKnownScheme(f.Src) {
		fmt.Fprintf(sb, `<img src="%s" alt="%s">`+"\n", html.EscapeString(f.Src), html.EscapeString(f.Caption))

		return
	}

	if hasKnownScheme(f.Src) && f.Source().Raw != "" {
		id := sanitizeID(stringOr(f.Label, f.ID()))
		fmt.Fprintf(sb, `<span id="figure-%s">%s</span>`+"\n", id, mdinline.ToHTML(fmt.Sprintf("![%s](%s)", f.Caption, f.Src)))

		return
	}

	renderFigureAsset(sb, f, attrs)
}

func stripFigureMarkdownPrefix(raw string) string {
	if idx := strings.Index(raw, ")"); idx >= 0 {
		return raw[idx+1:]
	}

	return raw
}

func stringOr(a, b string) string {
	if a != "" {
		return a
	}

	return b
}

func sanitizeID(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteRune('-')
		}
	}

	return sb.String()
}

func renderFigureAsset(sb *strings.Builder, f *ir.Figure, attrs map[string]string) {
	placement := attrs["placement"]
	align := attrs["align"]
	if align != "left" && align != "right" && align != "center" {
		align = "left"
	}
	width := attrs["width"]

	wrapperDecls := figureWrapperStyle(placement, align, width)
	imgDecls := figureImageStyle(placement, align, width, attrs)

	path := assetRelPath(f.Src)
	tag := "img"
	if strings.HasSuffix(strings.ToLower(path), ".pdf") {
		tag = "object"
	}

	fmt.Fprintf(sb, `<div class="figure-wrapper" style="%s">`+"\n", strings.Join(wrapperDecls, ";"))
	if tag == "object" {
		fmt.Fprintf(sb, `<object type="application/pdf" data-zx-asset-scope="latex" data-zx-asset-path="%s" style="%s"></object>`+"\n",
			html.EscapeString(path), strings.Join(imgDecls, ";"))
	} else {
		fmt.Fprintf(sb, `<img data-zx-asset-scope="latex" data-zx-asset-path="%s" alt="%s" style="%s">`+"\n",
			html.EscapeString(path), html.EscapeString(f.Caption), strings.Join(imgDecls, ";"))
	}
	if f.Caption != "" {
		fmt.Fprintf(sb, `<figcaption>%s</figcaption>`+"\n", mdinline.ToHTML(f.Caption))
	}
	sb.WriteString("</div>\n")
}

func assetRelPath(src string) string {
	if strings.HasPrefix(src, "zadoox-asset://") {
		return "assets/" + strings.TrimPrefix(src, "zadoox-asset://")
	}

	return src
}

func figureWrapperStyle(placement, align, width string) []string {
	if placement == "inline" {
		decls := []string{"display:inline-block"}
		switch align {
		case "left":
			decls = append(decls, "float:left", "margin:0 1em 1em 0")
		case "right":
			decls = append(decls, "float:right", "margin:0 0 1em 1em")
		case "center":
			decls = append(decls, "margin:0 auto")
		}
		if width != "" {
			decls = append(decls, "width:"+width)
		}

		return decls
	}

	decls := []string{"display:block", "width:100%"}
	switch align {
	case "center":
		decls = append(decls, "margin:0 auto")
	case "right":
		decls = append(decls, "margin-left:auto")
	}

	return decls
}

func figureImageStyle(placement, align, width string, attrs map[string]string) []string {
	var decls []string
	if placement == "block" {
		if width != "" {
			decls = append(decls, "max-width:"+width)
		}
	} else if width != "" {
		decls = append(decls, "width:"+width)
	}

	if bw, ok := attrs["borderWidth"]; ok {
		if n, err := strconv.Atoi(bw); err == nil && n == 0 {
			decls = append(decls, "border:none")

			return decls
		}
	}

	if style, color := attrs["borderStyle"], attrs["borderColor"]; style != "" || color != "" {
		width := "1"
		if bw, ok := attrs["borderWidth"]; ok {
			width = bw
		}
		if style == "" {
			style = "solid"
		}
		hex := normalizeColor(color)
		decls = append(decls, fmt.Sprintf("border:%spx %s %s", width, style, hex))
	}

	return decls
}

// normalizeColor parses a CSS color / #RGB / #RRGGBB string into a
// canonical "#rrggbb" using go-colorful, falling back to the input
// unchanged if it can't be parsed (render-local degrade, §7.2).
func normalizeColor(s string) string {
	if s == "" {
		return s
	}
	c, err := colorful.Hex(normalizeHexShorthand(s))
	if err != nil {
		return s
	}

	return c.Hex()
}

func normalizeHexShorthand(s string) string {
	if !strings.HasPrefix(s, "#") || len(s) != 4 {
		return s
	}
	r, g, b := s[1], s[2], s[3]

	return fmt.Sprintf("#%c%c%c%c%c%c", r, r, g, g, b, b)
}
