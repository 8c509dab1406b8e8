// Package canvasrenderer draws composed documents to PDF via
// github.com/tdewolff/canvas. Layout space is points with a top-left
// origin; canvas works in millimeters, so every coordinate converts once
// at the drawing boundary.
package canvasrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/spotfurnish/quotegen/layout"
	"github.com/spotfurnish/quotegen/renderer"
)

const ruleWidth = 0.2 // mm

// Renderer draws documents with fonts loaded from injected resources.
type Renderer struct {
	fontBlobs map[string][]byte

	fontMu       sync.Mutex
	fontFamilies map[string]*canvas.FontFamily
	fallbackName string
}

var _ renderer.Renderer = (*Renderer)(nil)

// Resource is a font source, either raw bytes or a file path.
type Resource struct {
	Bytes []byte
	Path  string
}

// Options configures the renderer. Fonts maps face names used by the
// layout ("Helvetica", "Helvetica-Bold") to their TTF sources; Fallback
// names the face substituted for any unknown name.
type Options struct {
	Fonts    map[string]Resource
	Fallback string
}

// NewRenderer builds a renderer from the given font resources.
func NewRenderer(opts Options) (*Renderer, error) {
	r := &Renderer{
		fontBlobs:    map[string][]byte{},
		fontFamilies: map[string]*canvas.FontFamily{},
		fallbackName: opts.Fallback,
	}
	for name, res := range opts.Fonts {
		if name == "" {
			continue
		}
		data := res.Bytes
		if len(data) == 0 && res.Path != "" {
			var err error
			data, err = os.ReadFile(res.Path)
			if err != nil {
				return nil, fmt.Errorf("load font %s: %w", name, err)
			}
		}
		if len(data) == 0 {
			return nil, fmt.Errorf("font %s: no bytes and no path", name)
		}
		r.fontBlobs[name] = data
	}
	if len(r.fontBlobs) == 0 {
		return nil, fmt.Errorf("no fonts configured")
	}
	if r.fallbackName == "" {
		for name := range r.fontBlobs {
			if r.fallbackName == "" || name < r.fallbackName {
				r.fallbackName = name
			}
		}
	}
	return r, nil
}

// Width implements layout.WidthFunc using real glyph metrics. It never
// fails: an unloadable font falls back to a fixed per-rune estimate so
// measurement stays total.
func (r *Renderer) Width(text, font string, size float64) float64 {
	face, err := r.fontFace(font, size, layout.Black)
	if err != nil {
		return approxWidth(text, size)
	}
	return face.TextWidth(text) * layout.MmToPt
}

func approxWidth(text string, size float64) float64 {
	return float64(len([]rune(text))) * size * 0.5
}

// Render draws every page of the document into a single PDF.
func (r *Renderer) Render(doc *layout.Document) ([]byte, error) {
	if doc == nil || len(doc.Pages) == 0 {
		return nil, fmt.Errorf("render: empty document")
	}
	geo := doc.Geometry
	pageW := toMm(geo.PageWidth)
	pageH := toMm(geo.PageHeight)

	var buf bytes.Buffer
	writer := pdf.New(&buf, pageW, pageH, nil)
	for i, page := range doc.Pages {
		if i > 0 {
			writer.NewPage(pageW, pageH)
		}
		c := canvas.New(pageW, pageH)
		ctx := canvas.NewContext(c)
		ctx.SetCoordSystem(canvas.CartesianIV) // top-left origin, matching layout space

		if err := r.drawPage(ctx, page); err != nil {
			return nil, err
		}
		c.RenderTo(writer)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawPage(ctx *canvas.Context, page layout.Page) error {
	for _, placed := range page.Blocks {
		var err error
		switch b := placed.(type) {
		case layout.PlacedText:
			err = r.drawText(ctx, b)
		case layout.PlacedTable:
			err = r.drawTable(ctx, b)
		case layout.PlacedImage:
			err = r.drawImage(ctx, b)
		case layout.PlacedFooter:
			err = r.drawFooter(ctx, b)
		default:
			err = fmt.Errorf("render: unsupported block %T", placed)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) drawText(ctx *canvas.Context, b layout.PlacedText) error {
	face, err := r.fontFace(b.Font, b.Size, b.Color)
	if err != nil {
		return err
	}
	r.drawLines(ctx, face, b.Lines, b.X, b.Y, b.Width, b.Size, b.Align)
	return nil
}

// drawLines draws pre-wrapped lines from the given top-left corner. The
// baseline of each line sits one ascent below the line top.
func (r *Renderer) drawLines(ctx *canvas.Context, face *canvas.FontFace, lines []layout.TextLine, x, y, width, size float64, align string) {
	var textAlign canvas.TextAlign
	var anchorX float64
	switch strings.ToLower(align) {
	case "center":
		textAlign = canvas.Center
		anchorX = toMm(x + width/2)
	case "right", "end":
		textAlign = canvas.Right
		anchorX = toMm(x + width)
	default:
		textAlign = canvas.Left
		anchorX = toMm(x)
	}

	ascent := face.Metrics().Ascent
	lineH := toMm(layout.LineHeight(size))
	top := toMm(y)
	for i, line := range lines {
		if line.Content == "" {
			continue
		}
		textLine := canvas.NewTextLine(face, line.Content, textAlign)
		ctx.DrawText(anchorX, top+float64(i)*lineH+ascent, textLine)
	}
}

func (r *Renderer) drawTable(ctx *canvas.Context, b layout.PlacedTable) error {
	for _, row := range b.Rows {
		if !b.Borderless {
			ctx.SetFillColor(color.RGBA{})
			ctx.SetStrokeColor(canvas.Black)
			ctx.SetStrokeWidth(ruleWidth)
			ctx.DrawPath(toMm(b.X), toMm(row.Y), canvas.Rectangle(toMm(b.Width), toMm(row.Height)))
			r.drawRowRules(ctx, b, row)
		}
		for _, cell := range row.Cells {
			face, err := r.fontFace(cell.Font, cell.Size, layout.Black)
			if err != nil {
				return err
			}
			// center the wrapped lines inside the row
			y := row.Y + (row.Height-cellTextHeight(cell))/2
			r.drawLines(ctx, face, cell.Lines, cell.X, y, cell.Width, cell.Size, cell.Align)
		}
	}
	return nil
}

// cellTextHeight is the drawn height of a cell's wrapped lines. Trailing
// blank lines leave no ink, so they do not count toward centering.
func cellTextHeight(cell layout.PlacedCell) float64 {
	n := 0
	for i, line := range cell.Lines {
		if line.Content != "" {
			n = i + 1
		}
	}
	return float64(n) * layout.LineHeight(cell.Size)
}

// drawRowRules strokes the row's vertical column dividers. A nil Rules
// slice means every inner boundary; summary rows list just the boundaries
// the printed form shows.
func (r *Renderer) drawRowRules(ctx *canvas.Context, tbl layout.PlacedTable, row layout.PlacedRow) {
	boundaries := row.Rules
	if boundaries == nil {
		boundaries = make([]int, 0, len(tbl.Columns)-1)
		for i := 1; i < len(tbl.Columns); i++ {
			boundaries = append(boundaries, i)
		}
	}
	offsets := make([]float64, len(tbl.Columns)+1)
	for i, col := range tbl.Columns {
		offsets[i+1] = offsets[i] + col.Width
	}
	for _, idx := range boundaries {
		if idx <= 0 || idx >= len(tbl.Columns) {
			continue
		}
		x := toMm(tbl.X + offsets[idx])
		p := &canvas.Path{}
		p.MoveTo(0, 0)
		p.LineTo(0, toMm(row.Height))
		ctx.SetStrokeColor(canvas.Black)
		ctx.SetStrokeWidth(ruleWidth)
		ctx.DrawPath(x, toMm(row.Y), p)
	}
}

// drawImage decodes and places raster bytes. Empty data is the blank
// placeholder: the footprint stays reserved, nothing is drawn.
func (r *Renderer) drawImage(ctx *canvas.Context, b layout.PlacedImage) error {
	if len(b.Data) == 0 {
		return nil
	}
	img, _, err := image.Decode(bytes.NewReader(b.Data))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}
	widthMm := toMm(b.Width)
	dpmm := float64(img.Bounds().Dx()) / widthMm
	if dpmm <= 0 {
		dpmm = 1
	}
	ctx.DrawImage(toMm(b.X), toMm(b.Y), img, canvas.DPMM(dpmm))
	return nil
}

func (r *Renderer) drawFooter(ctx *canvas.Context, b layout.PlacedFooter) error {
	face, err := r.fontFace(b.Font, b.Size, layout.Black)
	if err != nil {
		return err
	}
	lines := []layout.TextLine{{Content: b.Text}}
	r.drawLines(ctx, face, lines, b.X, b.Y, b.Width, b.Size, "center")
	return nil
}

func (r *Renderer) fontFace(name string, size float64, col layout.Color) (*canvas.FontFace, error) {
	family, style, err := r.ensureFontFamily(name)
	if err != nil {
		return nil, err
	}
	return family.Face(size, colorFromLayout(col), style, canvas.FontNormal), nil
}

func (r *Renderer) ensureFontFamily(name string) (*canvas.FontFamily, canvas.FontStyle, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	resolved := name
	if _, ok := r.fontBlobs[resolved]; !ok {
		resolved = r.fallbackName
	}
	style := parseFontStyle(resolved)

	if family, ok := r.fontFamilies[resolved]; ok {
		return family, style, nil
	}
	data, ok := r.fontBlobs[resolved]
	if !ok {
		return nil, canvas.FontRegular, fmt.Errorf("font %s not configured", name)
	}
	family := canvas.NewFontFamily(resolved)
	if err := family.LoadFont(data, 0, style); err != nil {
		return nil, canvas.FontRegular, fmt.Errorf("load font %s: %w", resolved, err)
	}
	r.fontFamilies[resolved] = family
	return family, style, nil
}

// parseFontStyle reads the style out of a face name suffix, e.g.
// "Helvetica-BoldOblique" is bold italic.
func parseFontStyle(name string) canvas.FontStyle {
	s := strings.ToLower(name)
	if i := strings.LastIndexByte(s, '-'); i >= 0 {
		s = s[i+1:]
	} else {
		return canvas.FontRegular
	}
	result := canvas.FontRegular
	switch {
	case strings.Contains(s, "black"):
		result = canvas.FontBlack
	case strings.Contains(s, "extrabold"):
		result = canvas.FontExtraBold
	case strings.Contains(s, "bold"):
		result = canvas.FontBold
	case strings.Contains(s, "semibold"), strings.Contains(s, "demibold"):
		result = canvas.FontSemiBold
	case strings.Contains(s, "medium"):
		result = canvas.FontMedium
	case strings.Contains(s, "light"):
		result = canvas.FontLight
	}
	if strings.Contains(s, "italic") || strings.Contains(s, "oblique") {
		result |= canvas.FontItalic
	}
	return result
}

func colorFromLayout(c layout.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}

func toMm(pt float64) float64 { return pt * layout.PtToMm }
