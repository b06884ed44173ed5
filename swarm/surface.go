package swarm

import (
	"fmt"
	"strconv"
	"strings"
)

// Surface is the drawing target the core paints onto. The raylib implementation
// lives in the renderer package; tests use a recording fake.
type Surface interface {
	// FillCircle paints a filled circle with the given color and alpha in [0, 1].
	FillCircle(x, y, radius float32, col Color, alpha float32)
	// Line paints a 1px line segment.
	Line(x1, y1, x2, y2 float32, col Color, alpha float32)
}

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// ParseColor parses an "R,G,B" string such as "255,0,0".
func ParseColor(s string) (Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("parsing color %q: want R,G,B", s)
	}
	var vals [3]uint8
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return Color{}, fmt.Errorf("parsing color %q: %w", s, err)
		}
		vals[i] = uint8(v)
	}
	return Color{R: vals[0], G: vals[1], B: vals[2]}, nil
}
