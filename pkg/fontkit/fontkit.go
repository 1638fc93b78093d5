// Package fontkit resolves font descriptors to renderable font faces.
//
// A descriptor names a font family, a point size, and a style. Resolution
// checks the builtin embedded families first (the Go font collection from
// golang.org/x/image/font/gofont), then searches the host's installed fonts
// via go-findfont. There is no fallback substitution: a family/style that
// resolves nowhere is a FONT_NOT_FOUND error.
//
// Faces are created at 72 DPI so one point equals one pixel. The returned
// face holds a freetype glyph cache; callers own it and must Close it when
// rendering is done.
package fontkit

import (
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/matzehuels/asciitype/pkg/errors"
)

// Style identifies a font style variant.
type Style string

// Supported font styles.
const (
	StyleRegular   Style = "regular"
	StyleBold      Style = "bold"
	StyleItalic    Style = "italic"
	StyleStrikeout Style = "strikeout"
	StyleUnderline Style = "underline"
)

// ValidStyles is the set of supported font styles.
var ValidStyles = map[Style]bool{
	StyleRegular:   true,
	StyleBold:      true,
	StyleItalic:    true,
	StyleStrikeout: true,
	StyleUnderline: true,
}

// ParseStyle normalizes a style name. The empty string means regular.
func ParseStyle(s string) (Style, error) {
	if s == "" {
		return StyleRegular, nil
	}
	style := Style(strings.ToLower(strings.TrimSpace(s)))
	if !ValidStyles[style] {
		return "", errors.New(errors.ErrCodeInvalidStyle,
			"invalid style: %q (must be one of: regular, bold, italic, strikeout, underline)", s)
	}
	return style, nil
}

// Decoration reports whether the style is drawn as a stroke over the regular
// face (strikeout, underline) rather than selecting a separate font variant.
func (s Style) Decoration() bool {
	return s == StyleStrikeout || s == StyleUnderline
}

// faceStyle maps a style to the variant used for glyph outlines.
// Decorated styles render with the regular variant.
func (s Style) faceStyle() Style {
	if s.Decoration() {
		return StyleRegular
	}
	return s
}

// Descriptor identifies a font face: family name, point size, and style.
type Descriptor struct {
	Family string `json:"family"`
	Size   int    `json:"size"`
	Style  Style  `json:"style"`
}

// Open resolves the descriptor and creates a font face sized at desc.Size
// points (72 DPI, so points equal pixels). The caller must Close the face.
func Open(desc Descriptor) (font.Face, error) {
	data, err := resolve(desc.Family, desc.Style.faceStyle())
	if err != nil {
		return nil, err
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontInvalid, err, "parse font %q", desc.Family)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    float64(desc.Size),
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
