package layout

// Placed types are the composer's output: blocks resolved to absolute page
// coordinates with their text already wrapped. A renderer draws them as-is
// and makes no layout decisions of its own.

// Placed is any block fixed at a page position.
type Placed interface {
	Bounds() (x, y, height float64)
}

// PlacedText is a laid-out paragraph.
type PlacedText struct {
	X      float64    `json:"x"`
	Y      float64    `json:"y"`
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Font   string     `json:"font"`
	Size   float64    `json:"size"`
	Color  Color      `json:"color"`
	Align  string     `json:"align,omitempty"`
	Lines  []TextLine `json:"lines"`
}

// PlacedCell is one table cell with its wrapped lines and absolute x.
type PlacedCell struct {
	X     float64    `json:"x"`
	Width float64    `json:"width"`
	Font  string     `json:"font"`
	Size  float64    `json:"size"`
	Align string     `json:"align,omitempty"`
	Lines []TextLine `json:"lines"`
}

// PlacedRow records one row's own height; vertical rules use this height,
// not a shared page-wide one.
type PlacedRow struct {
	Y      float64      `json:"y"`
	Height float64      `json:"height"`
	Header bool         `json:"header,omitempty"`
	Rules  []int        `json:"rules,omitempty"`
	Cells  []PlacedCell `json:"cells"`
}

// PlacedTable is the part of a table that landed on one page. A long table
// produces one PlacedTable per page it touches.
type PlacedTable struct {
	X          float64      `json:"x"`
	Y          float64      `json:"y"`
	Width      float64      `json:"width"`
	Height     float64      `json:"height"`
	Columns    []ColumnSpec `json:"columns"`
	Borderless bool         `json:"borderless,omitempty"`
	Rows       []PlacedRow  `json:"rows"`
}

// PlacedImage is a placed raster image. Nil Data means the blank
// placeholder used when the source image could not be fetched.
type PlacedImage struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Data   []byte  `json:"-"`
}

// PlacedFooter is the stamped per-page footer text.
type PlacedFooter struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Width float64 `json:"width"`
	Text  string  `json:"text"`
	Font  string  `json:"font"`
	Size  float64 `json:"size"`
}

func (p PlacedText) Bounds() (float64, float64, float64)  { return p.X, p.Y, p.Height }
func (p PlacedTable) Bounds() (float64, float64, float64) { return p.X, p.Y, p.Height }
func (p PlacedImage) Bounds() (float64, float64, float64) { return p.X, p.Y, p.Height }
func (p PlacedFooter) Bounds() (float64, float64, float64) {
	return p.X, p.Y, LineHeight(p.Size)
}

// Page is one laid-out page. Blocks appear in placement order with strictly
// non-overlapping vertical extents; the footer, when stamped, comes last.
type Page struct {
	Index       int      `json:"index"`
	Blocks      []Placed `json:"blocks"`
	ContentUsed float64  `json:"contentUsed"`
}

// Document is the finished, immutable layout result handed to a renderer.
type Document struct {
	Geometry Geometry `json:"geometry"`
	Pages    []Page   `json:"pages"`
}
