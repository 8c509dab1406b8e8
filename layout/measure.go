package layout

import (
	"fmt"
	"math"
	"strings"
)

const (
	// lineSpacing scales font size into the advance between line tops.
	lineSpacing = 1.25
	// leading is the fixed extra height added below the last line of a
	// wrapped text block.
	leading = 2.0
)

// WidthFunc reports the rendered width in points of text set in the given
// font at the given size. The canvas renderer supplies real glyph widths;
// tests supply a fixed-width stand-in.
type WidthFunc func(text, font string, size float64) float64

// TextLine is one wrapped line of a measured text block.
type TextLine struct {
	Content string  `json:"content"`
	Width   float64 `json:"width"`
}

// Metrics is the result of measuring a piece of wrapped text.
type Metrics struct {
	LineCount int
	Height    float64
}

// Measurer wraps and measures text. It holds no mutable state, so a single
// Measurer may serve any number of concurrent compositions.
type Measurer struct {
	width WidthFunc
}

// NewMeasurer builds a Measurer over the given width function.
func NewMeasurer(w WidthFunc) *Measurer {
	return &Measurer{width: w}
}

// LineHeight is the vertical advance of one line at the given font size.
func LineHeight(size float64) float64 { return size * lineSpacing }

// Wrap breaks text into lines no wider than maxWidth, splitting only at
// word boundaries. A single word wider than maxWidth is placed on a line of
// its own without further breaking. Explicit newlines always break.
func (m *Measurer) Wrap(text, font string, size, maxWidth float64) []TextLine {
	limit := maxWidth
	if limit <= 0 {
		limit = math.MaxFloat64
	}

	var lines []TextLine
	for _, raw := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		words := strings.Fields(raw)
		if len(words) == 0 {
			lines = append(lines, TextLine{})
			continue
		}
		current := words[0]
		currentW := m.width(current, font, size)
		for _, word := range words[1:] {
			candidate := current + " " + word
			w := m.width(candidate, font, size)
			if w > limit {
				lines = append(lines, TextLine{Content: current, Width: currentW})
				current = word
				currentW = m.width(word, font, size)
				continue
			}
			current = candidate
			currentW = w
		}
		lines = append(lines, TextLine{Content: current, Width: currentW})
	}
	if len(lines) == 0 {
		lines = []TextLine{{}}
	}
	return lines
}

// Measure reports the wrapped line count and rendered height of text. Height
// is lineCount times the line height plus a fixed leading. Measurement is
// deterministic for identical inputs, which the two-pass layout relies on.
func (m *Measurer) Measure(text, font string, size, maxWidth float64) (Metrics, error) {
	lines := m.Wrap(text, font, size, maxWidth)
	h := float64(len(lines))*LineHeight(size) + leading
	if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return Metrics{}, fmt.Errorf("measure: non-finite height for %q at %gpt", text, size)
	}
	return Metrics{LineCount: len(lines), Height: h}, nil
}
