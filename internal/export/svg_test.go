package export

import (
	"strings"
	"testing"

	"github.com/san-kum/galaxia/internal/body"
)

func TestStoreToSVG(t *testing.T) {
	s := body.NewStore(2)
	s.Push(body.Vec2{}, body.Vec2{}, 1.0, body.Color{R: 1, G: 0.8, B: 0.5}, body.KindStar)
	s.Push(body.Vec2{X: 10}, body.Vec2{}, 1.0, body.Color{R: 1}, body.KindStar) // out of view

	svg := StoreToSVG(s, 512, 1.5)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML declaration")
	}
	if !strings.Contains(svg, `width="512"`) {
		t.Error("missing image size")
	}
	if got := strings.Count(svg, "<circle"); got != 1 {
		t.Errorf("expected 1 circle (out-of-view body skipped), got %d", got)
	}
	if !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Error("unterminated SVG document")
	}
}

func TestStoreToSVGCenterBody(t *testing.T) {
	s := body.NewStore(1)
	s.Push(body.Vec2{}, body.Vec2{}, 1.0, body.Color{R: 0.2, G: 0.16, B: 0.1}, body.KindStar)

	// a body at the origin lands at the image center
	svg := StoreToSVG(s, 100, 1.0)
	if !strings.Contains(svg, `cx="50.0" cy="50.0"`) {
		t.Errorf("origin body not centered:\n%s", svg)
	}
}

func TestHexColorClamps(t *testing.T) {
	if got := hexColor(body.Color{R: 2, G: -1, B: 0.5}); got != "#ff007f" {
		t.Errorf("hexColor = %q, want #ff007f", got)
	}
}
