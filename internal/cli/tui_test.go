package cli

import (
	"testing"

	"github.com/matzehuels/asciitype/pkg/fontkit"
)

func TestNewPreviewModelStartsRegular(t *testing.T) {
	m := NewPreviewModel("hi")

	if got := m.fieldValue(fieldStyle); got != string(fontkit.StyleRegular) {
		t.Errorf("initial style = %q, want %q", got, fontkit.StyleRegular)
	}
	if m.err != nil {
		t.Errorf("initial render failed: %v", m.err)
	}
	if m.art == "" {
		t.Error("initial render produced no art")
	}
}

func TestPreviewModelFamilyCycleResetsStyle(t *testing.T) {
	m := NewPreviewModel("hi")
	m.cursor = fieldFamily

	for range m.families {
		m.cycle(1)
		if got := m.fieldValue(fieldStyle); got != string(fontkit.StyleRegular) {
			t.Errorf("family %q: style after cycle = %q, want %q",
				m.fieldValue(fieldFamily), got, fontkit.StyleRegular)
		}
	}
}

func TestStyleIndex(t *testing.T) {
	styles := []fontkit.Style{fontkit.StyleBold, fontkit.StyleItalic, fontkit.StyleRegular}

	if got := styleIndex(styles, fontkit.StyleRegular); got != 2 {
		t.Errorf("styleIndex(regular) = %d, want 2", got)
	}
	if got := styleIndex(styles, fontkit.StyleUnderline); got != 0 {
		t.Errorf("styleIndex(absent) = %d, want 0", got)
	}
}
