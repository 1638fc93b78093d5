package textart

import (
	"testing"

	"github.com/matzehuels/asciitype/pkg/fontkit"
)

// inkCount counts ink pixels in the column range [x0, x1).
func inkCount(c *Canvas, x0, x1 int) int {
	bounds := c.Bounds()
	count := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := x0; x < x1; x++ {
			if c.Ink(x, y) {
				count++
			}
		}
	}
	return count
}

func TestRasterizeShaped(t *testing.T) {
	face := openFace(t, 24)
	plan := PlanCanvas(face, "I", false, 'W')

	canvas := Rasterize(face, plan, "I", false, fontkit.StyleRegular)

	bounds := canvas.Bounds()
	if bounds.Dx() != plan.Width || bounds.Dy() != plan.Height {
		t.Errorf("canvas bounds = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), plan.Width, plan.Height)
	}
	if inkCount(canvas, 0, plan.Width) == 0 {
		t.Error("no ink pixels rendered for non-empty text")
	}
}

func TestRasterizeFixedCellsPerCellInk(t *testing.T) {
	// Both glyph cells of "AB" must receive ink.
	face := openFace(t, 24)
	plan := PlanCanvas(face, "AB", true, 'W')

	canvas := Rasterize(face, plan, "AB", true, fontkit.StyleRegular)

	if got := inkCount(canvas, 0, plan.CellWidth); got == 0 {
		t.Error("first cell has no ink, want glyph 'A' pixels")
	}
	if got := inkCount(canvas, plan.CellWidth, 2*plan.CellWidth); got == 0 {
		t.Error("second cell has no ink, want glyph 'B' pixels")
	}
}

func TestRasterizeFixedCellsConfinement(t *testing.T) {
	// A trailing space draws nothing, so its cell must stay empty: glyph ink
	// never leaks outside its own cell.
	face := openFace(t, 24)
	plan := PlanCanvas(face, "I ", true, 'W')

	canvas := Rasterize(face, plan, "I ", true, fontkit.StyleRegular)

	if got := inkCount(canvas, 0, plan.CellWidth); got == 0 {
		t.Error("first cell has no ink, want glyph 'I' pixels")
	}
	if got := inkCount(canvas, plan.CellWidth, 2*plan.CellWidth); got != 0 {
		t.Errorf("space cell has %d ink pixels, want 0", got)
	}
}

func TestRasterizeShapedNoRightEdgeClipping(t *testing.T) {
	// The planned width must cover the full string advance: rendering on a
	// wider canvas must not reveal ink the planned canvas cut off. Advances
	// are fixed-point, so any truncation in measuring shows up here as
	// clipped anti-aliasing at the right edge.
	face := openFace(t, 24)

	for _, text := range []string{"W", "MMM", "ii"} {
		plan := PlanCanvas(face, text, false, 'W')
		planned := Rasterize(face, plan, text, false, fontkit.StyleRegular)

		wide := plan
		wide.Width += 5
		unclipped := Rasterize(face, wide, text, false, fontkit.StyleRegular)

		got := inkCount(planned, 0, plan.Width)
		want := inkCount(unclipped, 0, wide.Width)
		if got != want {
			t.Errorf("%q: planned canvas ink = %d, unclipped ink = %d, want equal", text, got, want)
		}
	}
}

func TestRasterizeFixedCellsWideGlyphConfinement(t *testing.T) {
	// 'W' is as wide as the reference cell itself, so any undersizing of the
	// cell pushes its right-edge anti-aliasing into the neighbor cell. The
	// trailing space cell must stay completely empty.
	for _, size := range []int{17, 24} {
		face := openFace(t, size)
		plan := PlanCanvas(face, "W ", true, 'W')

		canvas := Rasterize(face, plan, "W ", true, fontkit.StyleRegular)

		if got := inkCount(canvas, 0, plan.CellWidth); got == 0 {
			t.Errorf("size %d: first cell has no ink, want glyph 'W' pixels", size)
		}
		if got := inkCount(canvas, plan.CellWidth, 2*plan.CellWidth); got != 0 {
			t.Errorf("size %d: ink leaked into the space cell: %d pixels, want 0", size, got)
		}
	}
}

func TestRasterizeDescenderNotClipped(t *testing.T) {
	// The rows below the baseline must cover the full descent: a taller
	// canvas must not reveal ink the planned height cut off at the bottom.
	face := openFace(t, 24)
	plan := PlanCanvas(face, "g", false, 'W')

	planned := Rasterize(face, plan, "g", false, fontkit.StyleRegular)

	tall := plan
	tall.Height += 5
	unclipped := Rasterize(face, tall, "g", false, fontkit.StyleRegular)

	got := inkCount(planned, 0, plan.Width)
	want := inkCount(unclipped, 0, plan.Width)
	if got != want {
		t.Errorf("planned canvas ink = %d, unclipped ink = %d, want equal", got, want)
	}
}

func TestRasterizeExactGlyphCount(t *testing.T) {
	// Fixed-cells mode draws exactly one glyph per rune: a canvas planned for
	// one rune holds all the ink of a single glyph and nothing is clipped at
	// the right edge compared to a wider canvas.
	face := openFace(t, 24)

	single := PlanCanvas(face, "I", true, 'W')
	canvas := Rasterize(face, single, "I", true, fontkit.StyleRegular)

	padded := PlanCanvas(face, "I ", true, 'W')
	wide := Rasterize(face, padded, "I ", true, fontkit.StyleRegular)

	if got, want := inkCount(canvas, 0, single.Width), inkCount(wide, 0, single.Width); got != want {
		t.Errorf("single-cell ink = %d, want %d (same glyph on wider canvas)", got, want)
	}
}

func TestRasterizeUnderline(t *testing.T) {
	face := openFace(t, 24)
	plan := PlanCanvas(face, "I", false, 'W')

	plain := Rasterize(face, plan, "I", false, fontkit.StyleRegular)
	underlined := Rasterize(face, plan, "I", false, fontkit.StyleUnderline)

	// The rule spans the full canvas width below the baseline, so the
	// underlined canvas must carry strictly more ink than the plain one.
	if got, want := inkCount(underlined, 0, plan.Width), inkCount(plain, 0, plan.Width); got <= want {
		t.Errorf("underlined ink = %d, want > %d", got, want)
	}

	baseline := face.Metrics().Ascent.Ceil()
	found := false
	for y := baseline; y < plan.Height; y++ {
		row := 0
		for x := 0; x < plan.Width; x++ {
			if underlined.Ink(x, y) {
				row++
			}
		}
		if row >= plan.Width/2 {
			found = true
			break
		}
	}
	if !found {
		t.Error("no near-full-width rule found below the baseline")
	}
}

func TestRasterizeStrikeout(t *testing.T) {
	face := openFace(t, 24)
	plan := PlanCanvas(face, "  ", false, 'W')

	canvas := Rasterize(face, plan, "  ", false, fontkit.StyleStrikeout)

	// Spaces draw no glyphs, so all ink comes from the strikeout rule.
	if inkCount(canvas, 0, plan.Width) == 0 {
		t.Error("strikeout rule rendered no ink")
	}
}
