package fontkit

import (
	"os"
	"sort"
	"strings"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"

	"github.com/matzehuels/asciitype/pkg/errors"
)

// builtin maps normalized family names to embedded TTF data per style.
// These are the Go fonts shipped with golang.org/x/image; they make the tool
// usable on hosts with no installed fonts at all.
var builtin = map[string]map[Style][]byte{
	"go": {
		StyleRegular: goregular.TTF,
		StyleBold:    gobold.TTF,
		StyleItalic:  goitalic.TTF,
	},
	"go mono": {
		StyleRegular: gomono.TTF,
		StyleBold:    gomonobold.TTF,
		StyleItalic:  gomonoitalic.TTF,
	},
	"go mono bold italic": {
		StyleRegular: gomonobolditalic.TTF,
	},
	"go bold italic": {
		StyleRegular: gobolditalic.TTF,
	},
	"go medium": {
		StyleRegular: gomedium.TTF,
		StyleItalic:  gomediumitalic.TTF,
	},
	"go smallcaps": {
		StyleRegular: gosmallcaps.TTF,
		StyleItalic:  gosmallcapsitalic.TTF,
	},
}

// builtinNames are display names for the embedded families, keyed by the
// normalized lookup name.
var builtinNames = map[string]string{
	"go":                  "Go",
	"go mono":             "Go Mono",
	"go mono bold italic": "Go Mono Bold Italic",
	"go bold italic":      "Go Bold Italic",
	"go medium":           "Go Medium",
	"go smallcaps":        "Go Smallcaps",
}

// normalizeFamily canonicalizes a family name for builtin lookup.
func normalizeFamily(family string) string {
	return strings.ToLower(strings.Join(strings.Fields(family), " "))
}

// Builtin returns the display names of the embedded font families, sorted.
func Builtin() []string {
	names := make([]string, 0, len(builtinNames))
	for _, name := range builtinNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuiltinStyles returns the styles available for a builtin family, sorted.
// It returns nil if the family is not builtin.
func BuiltinStyles(family string) []Style {
	variants, ok := builtin[normalizeFamily(family)]
	if !ok {
		return nil
	}
	styles := make([]Style, 0, len(variants))
	for s := range variants {
		styles = append(styles, s)
	}
	sort.Slice(styles, func(i, j int) bool { return styles[i] < styles[j] })
	return styles
}

// IsBuiltin reports whether family resolves to an embedded font.
func IsBuiltin(family string) bool {
	_, ok := builtin[normalizeFamily(family)]
	return ok
}

// resolve returns the raw TTF bytes for a family/style pair, checking the
// builtin set before the host's installed fonts.
func resolve(family string, style Style) ([]byte, error) {
	if variants, ok := builtin[normalizeFamily(family)]; ok {
		if data, ok := variants[style]; ok {
			return data, nil
		}
		return nil, errors.New(errors.ErrCodeFontNotFound,
			"builtin family %q has no %s variant", family, style)
	}
	return resolveSystem(family, style)
}

// resolveSystem searches the host's font directories for a file matching the
// family and style. No substitute is returned on failure.
func resolveSystem(family string, style Style) ([]byte, error) {
	var lastErr error
	for _, name := range systemCandidates(family, style) {
		path, err := findfont.Find(name)
		if err != nil {
			lastErr = err
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			lastErr = err
			continue
		}
		return data, nil
	}
	return nil, errors.Wrap(errors.ErrCodeFontNotFound, lastErr,
		"font family %q (%s) is not installed", family, style)
}

// systemCandidates builds filename candidates for a family/style pair, most
// specific first. Font files on disk commonly follow either "Family-Style.ttf"
// or "FamilyStyle.ttf" naming.
func systemCandidates(family string, style Style) []string {
	compact := strings.Join(strings.Fields(family), "")
	suffixes := map[Style][]string{
		StyleRegular: {"-Regular", "Regular", ""},
		StyleBold:    {"-Bold", "Bold", " Bold"},
		StyleItalic:  {"-Italic", "Italic", " Italic"},
	}
	var names []string
	for _, suffix := range suffixes[style] {
		names = append(names, compact+strings.Join(strings.Fields(suffix), "")+".ttf")
		names = append(names, family+suffix+".ttf")
	}
	return dedupe(names)
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	var out []string
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
