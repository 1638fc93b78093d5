package textart

import (
	"io"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/asciitype/pkg/errors"
	"github.com/matzehuels/asciitype/pkg/fontkit"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and TUI
// =============================================================================

const (
	// DefaultFontFamily is the font used when none is requested.
	DefaultFontFamily = "Lucida Sans Typewriter"

	// DefaultFontSize is the point size used when none is requested.
	DefaultFontSize = 16

	// DefaultFill is the character emitted for ink pixels.
	DefaultFill = "@"

	// DefaultReferenceChar sizes the fixed cell in fixed-cells mode. 'W' is
	// the widest glyph in most Latin faces, so every glyph fits its cell.
	DefaultReferenceChar = "W"

	// MinFontSize and MaxFontSize bound the requested point size.
	MinFontSize = 1
	MaxFontSize = 1000

	// MaxMargin bounds each crop margin.
	MaxMargin = 1000
)

// =============================================================================
// Options - Render Configuration
// =============================================================================

// Options contains all configuration for a single render.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Text is the string to render. Required, non-empty.
	Text string `json:"text"`

	// Font selection.
	FontFamily string `json:"font_family,omitempty"`
	FontSize   int    `json:"font_size,omitempty"`
	FontStyle  string `json:"font_style,omitempty"` // regular, bold, italic, strikeout, underline

	// Fill is the single character emitted for ink pixels.
	Fill string `json:"fill,omitempty"`

	// Crop margins, in pixels, removed from the canvas edges.
	MarginLeft   int `json:"margin_left,omitempty"`
	MarginRight  int `json:"margin_right,omitempty"`
	MarginTop    int `json:"margin_top,omitempty"`
	MarginBottom int `json:"margin_bottom,omitempty"`

	// FixedCells disables the backend's natural kerning and places every
	// glyph in an identical-width cell sized from ReferenceChar. The default
	// (false) renders the whole string with backend shaping.
	FixedCells bool `json:"fixed_cells,omitempty"`

	// ReferenceChar is the single character whose advance sizes the cell in
	// fixed-cells mode. Ignored otherwise.
	ReferenceChar string `json:"reference_char,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// Parsed values cached by ValidateAndSetDefaults.
	style     fontkit.Style
	fill      rune
	reference rune
	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Text == "" {
		return errors.New(errors.ErrCodeInvalidInput, "text is required")
	}

	if o.FontFamily == "" {
		o.FontFamily = DefaultFontFamily
	}
	if o.FontSize == 0 {
		o.FontSize = DefaultFontSize
	}
	if o.FontSize < MinFontSize || o.FontSize > MaxFontSize {
		return errors.New(errors.ErrCodeInvalidSize,
			"font size %d out of range [%d, %d]", o.FontSize, MinFontSize, MaxFontSize)
	}

	style, err := fontkit.ParseStyle(o.FontStyle)
	if err != nil {
		return err
	}
	o.style = style
	o.FontStyle = string(style)

	if o.Fill == "" {
		o.Fill = DefaultFill
	}
	if utf8.RuneCountInString(o.Fill) != 1 {
		return errors.New(errors.ErrCodeInvalidFill, "fill must be a single character, got %q", o.Fill)
	}
	o.fill, _ = utf8.DecodeRuneInString(o.Fill)

	for _, m := range []struct {
		name  string
		value int
	}{
		{"margin_left", o.MarginLeft},
		{"margin_right", o.MarginRight},
		{"margin_top", o.MarginTop},
		{"margin_bottom", o.MarginBottom},
	} {
		if m.value < 0 || m.value > MaxMargin {
			return errors.New(errors.ErrCodeInvalidMargin,
				"%s %d out of range [0, %d]", m.name, m.value, MaxMargin)
		}
	}

	if o.ReferenceChar == "" {
		o.ReferenceChar = DefaultReferenceChar
	}
	if utf8.RuneCountInString(o.ReferenceChar) != 1 {
		return errors.New(errors.ErrCodeInvalidInput,
			"reference char must be a single character, got %q", o.ReferenceChar)
	}
	o.reference, _ = utf8.DecodeRuneInString(o.ReferenceChar)

	o.validated = true
	return nil
}

// Margins returns the crop margins as a Margins value.
func (o *Options) Margins() Margins {
	return Margins{
		Left:   o.MarginLeft,
		Right:  o.MarginRight,
		Top:    o.MarginTop,
		Bottom: o.MarginBottom,
	}
}

// Descriptor returns the font descriptor for the requested face.
func (o *Options) Descriptor() fontkit.Descriptor {
	return fontkit.Descriptor{
		Family: o.FontFamily,
		Size:   o.FontSize,
		Style:  o.style,
	}
}

// logger returns the configured logger, or a discarding one.
func (o *Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.NewWithOptions(io.Discard, log.Options{})
}

// =============================================================================
// Render - Complete Pipeline
// =============================================================================

// Render runs the complete plan → rasterize → compose pipeline and returns
// the ASCII art as a single string with rows separated by newlines and no
// trailing newline.
//
// The font face is acquired for the duration of the call and released on
// every exit path. Render keeps no state between calls.
func Render(opts Options) (string, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return "", err
	}
	logger := opts.logger()

	face, err := fontkit.Open(opts.Descriptor())
	if err != nil {
		return "", err
	}
	defer face.Close()

	start := time.Now()

	plan := PlanCanvas(face, opts.Text, opts.FixedCells, opts.reference)
	logger.Debug("planned canvas",
		"width", plan.Width,
		"height", plan.Height,
		"cell_width", plan.CellWidth)

	canvas := Rasterize(face, plan, opts.Text, opts.FixedCells, opts.style)

	art := Compose(canvas, opts.Margins(), opts.fill)
	logger.Debug("composed output",
		"margins", opts.Margins(),
		"duration", time.Since(start).Round(time.Microsecond))

	return art, nil
}
