package latexreader

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	includegraphicsRe = regexp.MustCompile(`\\includegraphics(\[([^]]*)\])?\{\\detokenize\{([^{}]*)\}\}`)
	captionRe         = regexp.MustCompile(`\\caption\{([^{}]*)\}`)
	labelRe           = regexp.MustCompile(`\\label\{([^{}]*)\}`)
	wrapSideRe        = regexp.MustCompile(`\\begin\{wrapfigure\}\{([lr])\}\{([^{}]*)\}`)
	widthPercentRe    = regexp.MustCompile(`^([0-9.]+)\\textwidth$`)
	fcolorboxRe       = regexp.MustCompile(`\\fcolorbox\{([^{}]*)\}`)
	includeWidthOptRe = regexp.MustCompile(`width=([^,\]]+)`)
)

// figureFromBlock rebuilds an XMD-equivalent "![caption](src){...}"
// line into a Figure node's source.raw, per spec.md §4.8.
func figureFromBlock(b Block) *figureData {
	body := strings.Join(b.Body, "\n")

	src := ""
	width := ""
	if m := includegraphicsRe.FindStringSubmatch(body); m != nil {
		opts := m[2]
		src = assetSrcFromPath(m[3])
		if wm := includeWidthOptRe.FindStringSubmatch(opts); wm != nil {
			width = widthAttr(wm[1])
		}
	}

	caption := ""
	if m := captionRe.FindStringSubmatch(body); m != nil {
		caption = ToText(m[1])
	}
	label := ""
	if m := labelRe.FindStringSubmatch(body); m != nil {
		label = m[1]
	}

	align := "center"
	placement := "block"
	if b.Kind == KindWrapfigure {
		placement = "inline"
		if m := wrapSideRe.FindStringSubmatch(b.BeginLine); m != nil {
			if m[1] == "l" {
				align = "left"
			} else {
				align = "right"
			}
			if width == "" {
				width = widthAttr(m[2])
			}
		}
	} else {
		switch {
		case strings.Contains(body, `\raggedright`):
			align = "left"
		case strings.Contains(body, `\raggedleft`):
			align = "right"
		}
	}

	borderColor := ""
	if m := fcolorboxRe.FindStringSubmatch(body); m != nil {
		borderColor = m[1]
	}

	attrs := map[string]string{"placement": placement, "align": align}
	if width != "" {
		attrs["width"] = width
	}
	if borderColor != "" {
		attrs["borderColor"] = borderColor
	}
	if label != "" {
		attrs["label"] = "#" + label
	}

	return &figureData{Src: src, Caption: caption, Label: label, Raw: reconstructRaw(caption, src, attrs)}
}

type figureData struct {
	Src     string
	Caption string
	Label   string
	Raw     string
}

func widthAttr(tex string) string {
	tex = strings.TrimSpace(tex)
	if m := widthPercentRe.FindStringSubmatch(tex); m != nil {
		f, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return fmt.Sprintf("%d%%", int(f*100))
		}
	}
	if strings.HasSuffix(tex, "\\textwidth") || strings.HasSuffix(tex, "\\linewidth") {
		return tex
	}

	return tex
}

func assetSrcFromPath(path string) string {
	if strings.HasPrefix(path, "assets/") {
		return "zadoox-asset://" + strings.TrimPrefix(path, "assets/")
	}

	return path
}

func reconstructRaw(caption, src string, attrs map[string]string) string {
	var attrParts []string
	for _, k := range []string{"width", "align", "placement", "borderColor"} {
		if v, ok := attrs[k]; ok {
			attrParts = append(attrParts, fmt.Sprintf(`%s="%s"`, k, v))
		}
	}
	if l, ok := attrs["label"]; ok {
		attrParts = append(attrParts, l)
	}

	line := fmt.Sprintf("![%s](%s)", caption, src)
	if len(attrParts) > 0 {
		line += "{" + strings.Join(attrParts, " ") + "}"
	}

	return line
}
