package canvasrenderer

import (
	"testing"

	"github.com/tdewolff/canvas"

	"github.com/spotfurnish/quotegen/layout"
)

func TestParseFontStyle(t *testing.T) {
	tests := []struct {
		name string
		want canvas.FontStyle
	}{
		{"Helvetica", canvas.FontRegular},
		{"Helvetica-Bold", canvas.FontBold},
		{"Helvetica-Oblique", canvas.FontRegular | canvas.FontItalic},
		{"Helvetica-BoldOblique", canvas.FontBold | canvas.FontItalic},
		{"Inter-Light", canvas.FontLight},
		{"Inter-ExtraBold", canvas.FontExtraBold},
	}
	for _, tc := range tests {
		if got := parseFontStyle(tc.name); got != tc.want {
			t.Errorf("parseFontStyle(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestNewRendererRequiresFonts(t *testing.T) {
	if _, err := NewRenderer(Options{}); err == nil {
		t.Error("expected an error with no fonts configured")
	}
	_, err := NewRenderer(Options{Fonts: map[string]Resource{
		"Helvetica": {Path: "/nonexistent/helvetica.ttf"},
	}})
	if err == nil {
		t.Error("expected an error for an unreadable font path")
	}
}

func TestCellTextHeightIgnoresTrailingBlanks(t *testing.T) {
	lineH := layout.LineHeight(12)
	tests := []struct {
		name  string
		lines []string
		want  float64
	}{
		{"single line", []string{"abc"}, lineH},
		{"trailing blanks", []string{"abc", "", ""}, lineH},
		{"interior blank counts", []string{"abc", "", "def"}, 3 * lineH},
		{"all blank", []string{"", ""}, 0},
	}
	for _, tc := range tests {
		cell := layout.PlacedCell{Size: 12}
		for _, s := range tc.lines {
			cell.Lines = append(cell.Lines, layout.TextLine{Content: s})
		}
		if got := cellTextHeight(cell); got != tc.want {
			t.Errorf("%s: cellTextHeight = %g, want %g", tc.name, got, tc.want)
		}
	}
}

func TestApproxWidthScalesWithSize(t *testing.T) {
	if got := approxWidth("abcd", 12); got != 24 {
		t.Errorf("approxWidth = %g, want 24", got)
	}
}
