package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/asciitype/pkg/fontkit"
	"github.com/matzehuels/asciitype/pkg/textart"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// PreviewModel - Interactive render preview
// =============================================================================

// Preview knobs, cycled with left/right.
var (
	previewSizes = []int{12, 16, 24, 32, 48}
	previewFills = []string{"@", "#", "*", "█", "."}
)

// Field indices for the preview settings list.
const (
	fieldFamily = iota
	fieldStyle
	fieldSize
	fieldFill
	fieldFixedCells
	fieldCount
)

var fieldNames = [fieldCount]string{"family", "style", "size", "fill", "cells"}

// PreviewModel is the bubbletea model for the interactive preview.
type PreviewModel struct {
	Text string

	families   []string
	familyIdx  int
	styleIdx   int
	sizeIdx    int
	fillIdx    int
	fixedCells bool

	cursor int
	art    string
	err    error
}

// NewPreviewModel creates a preview model for the given text.
func NewPreviewModel(text string) PreviewModel {
	m := PreviewModel{
		Text:     text,
		families: fontkit.Builtin(),
		sizeIdx:  1, // 16pt
	}
	m.styleIdx = styleIndex(m.styles(), fontkit.StyleRegular)
	m.render()
	return m
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < fieldCount-1 {
				m.cursor++
			}
		case "left", "h":
			m.cycle(-1)
			m.render()
		case "right", "l", "enter", " ":
			m.cycle(1)
			m.render()
		}
	}
	return m, nil
}

// cycle advances the value of the selected field by delta.
func (m *PreviewModel) cycle(delta int) {
	switch m.cursor {
	case fieldFamily:
		m.familyIdx = wrap(m.familyIdx+delta, len(m.families))
		m.styleIdx = styleIndex(m.styles(), fontkit.StyleRegular)
	case fieldStyle:
		styles := m.styles()
		m.styleIdx = wrap(m.styleIdx+delta, len(styles))
	case fieldSize:
		m.sizeIdx = wrap(m.sizeIdx+delta, len(previewSizes))
	case fieldFill:
		m.fillIdx = wrap(m.fillIdx+delta, len(previewFills))
	case fieldFixedCells:
		m.fixedCells = !m.fixedCells
	}
}

func (m PreviewModel) styles() []fontkit.Style {
	return fontkit.BuiltinStyles(m.families[m.familyIdx])
}

func (m *PreviewModel) render() {
	styles := m.styles()
	opts := textart.Options{
		Text:       m.Text,
		FontFamily: m.families[m.familyIdx],
		FontSize:   previewSizes[m.sizeIdx],
		FontStyle:  string(styles[m.styleIdx]),
		Fill:       previewFills[m.fillIdx],
		FixedCells: m.fixedCells,
	}
	m.art, m.err = textart.Render(opts)
}

func (m PreviewModel) fieldValue(field int) string {
	switch field {
	case fieldFamily:
		return m.families[m.familyIdx]
	case fieldStyle:
		return string(m.styles()[m.styleIdx])
	case fieldSize:
		return fmt.Sprintf("%dpt", previewSizes[m.sizeIdx])
	case fieldFill:
		return previewFills[m.fillIdx]
	case fieldFixedCells:
		if m.fixedCells {
			return "fixed"
		}
		return "shaped"
	}
	return ""
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Preview: " + m.Text))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ field  ←/→ value  q quit"))
	b.WriteString("\n\n")

	for field := 0; field < fieldCount; field++ {
		cursor := "  "
		if field == m.cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%s%-8s %s", cursor, fieldNames[field], m.fieldValue(field))
		if field == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(strings.Repeat("-", 40)))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(StyleDim.Render("render failed: " + m.err.Error()))
	} else {
		b.WriteString(m.art)
	}
	b.WriteString("\n")

	return b.String()
}

// styleIndex returns the position of want in styles, or 0 if absent. Style
// lists are sorted alphabetically, so regular is not necessarily first.
func styleIndex(styles []fontkit.Style, want fontkit.Style) int {
	for i, s := range styles {
		if s == want {
			return i
		}
	}
	return 0
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}
