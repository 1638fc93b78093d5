package textart

import "strings"

// Margins are the crop distances, in pixels, removed from each canvas edge
// before composing.
type Margins struct {
	Left   int `json:"left"`
	Right  int `json:"right"`
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
}

// Compose converts the opacity canvas into the final text grid. Pixels with
// any ink become the fill character, everything else a space. Rows are
// joined with a single newline and there is no trailing newline.
//
// The iteration ranges are clamped to the canvas: margins that collapse an
// axis yield an empty string rather than an error, since oversized margins
// are a caller-controlled aesthetic choice.
func Compose(c *Canvas, m Margins, fill rune) string {
	bounds := c.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	x0 := clamp(m.Left, 0, width)
	x1 := clamp(width-m.Right, 0, width)
	y0 := clamp(m.Top, 0, height)
	y1 := clamp(height-m.Bottom, 0, height)
	if x0 >= x1 || y0 >= y1 {
		return ""
	}

	var sb strings.Builder
	sb.Grow((y1 - y0) * (x1 - x0 + 1))
	for y := y0; y < y1; y++ {
		if y > y0 {
			sb.WriteByte('\n')
		}
		for x := x0; x < x1; x++ {
			if c.Ink(bounds.Min.X+x, bounds.Min.Y+y) {
				sb.WriteRune(fill)
			} else {
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
