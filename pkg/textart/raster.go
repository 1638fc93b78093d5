package textart

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/asciitype/pkg/fontkit"
)

// Canvas is an opacity buffer produced by the rasterizer. The background is
// fully transparent; drawn text leaves non-zero alpha wherever ink covers a
// pixel.
type Canvas struct {
	img image.Image
}

// NewCanvas wraps an existing image as a Canvas. Useful for composing from
// synthetic opacity patterns.
func NewCanvas(img image.Image) *Canvas {
	return &Canvas{img: img}
}

// Bounds returns the pixel bounds of the canvas.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// Ink reports whether the pixel at (x, y) carries any ink. Any non-zero
// alpha counts; there is no gray-level threshold.
func (c *Canvas) Ink(x, y int) bool {
	_, _, _, a := c.img.At(x, y).RGBA()
	return a > 0
}

// Rasterize draws the text onto a freshly allocated canvas of the planned
// size and returns the resulting opacity buffer.
//
// With backend shaping the whole string is drawn once at the origin and the
// backend applies its native kerning. In fixed-cells mode each rune is drawn
// individually at x = index × cell width; exactly one glyph is drawn per
// input rune.
//
// Strikeout and underline styles draw a horizontal rule across the full
// canvas width at the conventional offsets.
func Rasterize(face font.Face, plan Plan, text string, fixedCells bool, style fontkit.Style) *Canvas {
	dc := gg.NewContext(plan.Width, plan.Height)
	dc.SetFontFace(face)
	dc.SetColor(color.Black)

	metrics := face.Metrics()
	baseline := float64(metrics.Ascent.Ceil())

	if fixedCells {
		for i, r := range []rune(text) {
			dc.DrawString(string(r), float64(i*plan.CellWidth), baseline)
		}
	} else {
		dc.DrawString(text, 0, baseline)
	}

	switch style {
	case fontkit.StyleUnderline:
		drawRule(dc, plan.Width, baseline+float64(metrics.Descent.Ceil())/2, metrics)
	case fontkit.StyleStrikeout:
		drawRule(dc, plan.Width, baseline-float64(metrics.Ascent.Ceil())/3, metrics)
	}

	return &Canvas{img: dc.Image()}
}

// drawRule strokes a horizontal line across the canvas at height y, scaled
// to the face size with a one-pixel floor.
func drawRule(dc *gg.Context, width int, y float64, metrics font.Metrics) {
	lw := math.Max(1, float64(metrics.Height.Ceil())/16)
	dc.SetLineWidth(lw)
	dc.DrawLine(0, y, float64(width), y)
	dc.Stroke()
}
