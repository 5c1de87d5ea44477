package latexwriter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zadoox/xmd/internal/ir"
)

func writeFigure(sb *strings.Builder, f *ir.Figure) {
	attrs := figureAttrs(f)
	placement := attrs["placement"]
	align := attrs["align"]

	if placement == "inline" && (align == "left" || align == "right") {
		side := "l"
		if align == "right" {
			side = "r"
		}
		wrapWidth := attrs["width"]
		if wrapWidth == "" {
			wrapWidth = "0.4\\textwidth"
		} else {
			wrapWidth = wrapLength(wrapWidth)
		}
		graphic := graphicCommand(f, attrs, "\\linewidth")
		fmt.Fprintf(sb, "\\begin{wrapfigure}{%s}{%s}\n", side, wrapWidth)
		sb.WriteString("\\centering\n")
		sb.WriteString(graphic + "\n")
		writeCaptionLabel(sb, f)
		sb.WriteString("\\end{wrapfigure}\n")

		return
	}

	width := attrs["width"]
	if width == "" {
		width = "0.6\\linewidth"
	}
	graphic := graphicCommand(f, attrs, width)

	sb.WriteString("\\begin{figure}[h]\n")
	switch align {
	case "left":
		sb.WriteString("\\raggedright\n")
	case "right":
		sb.WriteString("\\raggedleft\n")
	default:
		sb.WriteString("\\centering\n")
	}
	sb.WriteString(graphic + "\n")
	writeCaptionLabel(sb, f)
	sb.WriteString("\\end{figure}\n")
}

func writeCaptionLabel(sb *strings.Builder, f *ir.Figure) {
	if f.Caption != "" {
		fmt.Fprintf(sb, "\\caption{%s}\n", toLatexInline(f.Caption))
	}
	if f.Label != "" {
		fmt.Fprintf(sb, "\\label{%s}\n", f.Label)
	}
}

func graphicCommand(f *ir.Figure, attrs map[string]string, width string) string {
	path := "\\detokenize{" + assetRelPath(f.Src) + "}"
	opts := fmt.Sprintf("width=%s", toLatexLength(width))
	include := fmt.Sprintf("\\includegraphics[%s]{%s}", opts, path)

	if bw, ok := attrs["borderWidth"]; ok {
		if n, err := strconv.Atoi(bw); err == nil && n == 0 {
			return include
		}
	}

	style, color := attrs["borderStyle"], attrs["borderColor"]
	if style == "" && color == "" {
		return include
	}
	colorName := "black"
	if color != "" {
		colorName = colorPaletteName(color)
	}

	return fmt.Sprintf("\\fcolorbox{%s}{white}{%s}", colorName, include)
}

func toLatexLength(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "%") {
		num := strings.TrimSuffix(s, "%")
		if n, err := strconv.ParseFloat(num, 64); err == nil {
			return fmt.Sprintf("%.3f\\linewidth", n/100)
		}
	}
	if _, err := strconv.Atoi(s); err == nil {
		return s + "px"
	}

	return s
}

// wrapLength converts a percentage width into a \textwidth fraction for
// a wrapfigure box, e.g. "33%" -> "0.330\textwidth".
func wrapLength(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "%") {
		num := strings.TrimSuffix(s, "%")
		if n, err := strconv.ParseFloat(num, 64); err == nil {
			return fmt.Sprintf("%.3f\\textwidth", n/100)
		}
	}

	return s
}

// assetRelPath resolves the engine's "zadoox-asset://" scheme to a path
// relative to the compiled document's asset directory.
func assetRelPath(src string) string {
	if strings.HasPrefix(src, "zadoox-asset://") {
		return "assets/" + strings.TrimPrefix(src, "zadoox-asset://")
	}

	return src
}
