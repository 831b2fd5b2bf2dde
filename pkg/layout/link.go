package layout

import (
	"strconv"
	"strings"
)

// LinkPath returns the SVG path data for a link: a cubic Bézier leaving the
// parent vertically and entering the child vertically.
func LinkPath(l Link) string {
	return VerticalLink(l.From.X, l.From.Y, l.To.X, l.To.Y)
}

// VerticalLink returns "M x0,y0 C x0,ym x1,ym x1,y1" where ym is the
// vertical midpoint.
func VerticalLink(x0, y0, x1, y1 float64) string {
	ym := (y0 + y1) / 2
	var sb strings.Builder
	sb.WriteString("M ")
	writePoint(&sb, x0, y0)
	sb.WriteString(" C ")
	writePoint(&sb, x0, ym)
	sb.WriteString(" ")
	writePoint(&sb, x1, ym)
	sb.WriteString(" ")
	writePoint(&sb, x1, y1)
	return sb.String()
}

func writePoint(sb *strings.Builder, x, y float64) {
	sb.WriteString(formatCoord(x))
	sb.WriteByte(',')
	sb.WriteString(formatCoord(y))
}

// formatCoord prints a coordinate with at most two decimals and no trailing
// zeros.
func formatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
