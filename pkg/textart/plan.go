package textart

import (
	"unicode/utf8"

	"golang.org/x/image/font"
)

// Plan holds the pixel canvas dimensions computed before any drawing occurs.
// The rendering backend requires a canvas sized in advance, so planning is a
// separate measurement pass over the same font face.
type Plan struct {
	// Width and Height are the canvas dimensions in pixels.
	Width  int
	Height int

	// CellWidth is the fixed per-glyph cell width in fixed-cells mode.
	// Zero when the whole string is rendered with backend shaping.
	CellWidth int
}

// PlanCanvas measures the text and returns the canvas dimensions.
//
// With backend shaping (fixedCells false) the whole string is measured as a
// single run and its advance becomes the canvas width. In fixed-cells mode
// only the reference glyph is measured; its advance becomes the cell width
// and the canvas width is cell width × rune count, which guarantees every
// glyph fits its cell without per-glyph resizing.
//
// The canvas height is the face's ascent plus descent in both modes.
//
// Advances are measured as fixed-point values and rounded up per measurement.
// Ascent and descent are likewise rounded up individually: the baseline sits
// at Ceil(ascent), so the rows below it must cover Ceil(descent) or a
// descender's bottom anti-aliasing row falls off the canvas.
func PlanCanvas(face font.Face, text string, fixedCells bool, reference rune) Plan {
	metrics := face.Metrics()
	height := metrics.Ascent.Ceil() + metrics.Descent.Ceil()

	if !fixedCells {
		return Plan{Width: font.MeasureString(face, text).Ceil(), Height: height}
	}

	cell := font.MeasureString(face, string(reference)).Ceil()
	return Plan{
		Width:     cell * utf8.RuneCountInString(text),
		Height:    height,
		CellWidth: cell,
	}
}
