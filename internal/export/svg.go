// Package export renders a body store snapshot to a standalone SVG, the
// vector counterpart of the additive-blend GUI frame.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/galaxia/internal/body"
)

const glowSoft = 0.2

// StoreToSVG draws one dot per body on a dark background. World
// coordinates in [-span, span] map to the image square; bodies outside
// the view are skipped. Brightness falls off with distance from the
// center the same way the renderers dim emitted colors.
func StoreToSVG(s *body.Store, size int, span float64) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#05050a"/>
`, size, size, size, size))

	scale := float64(size) / (2 * span)

	for i := 0; i < s.Len(); i++ {
		pos := s.Centroid(i)
		x := (pos.X + span) * scale
		y := float64(size) - (pos.Y+span)*scale
		if x < 0 || x >= float64(size) || y < 0 || y >= float64(size) {
			continue
		}

		col := s.Col[i].Scale(1 / (pos.Len() + glowSoft))
		sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"0.8\" fill=\"%s\"/>\n",
			x, y, hexColor(col)))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func hexColor(c body.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 255
	}
	return uint8(v * 255)
}
