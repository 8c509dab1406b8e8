package layout

// Blocks are the units of content handed to the Composer. The script is an
// ordered slice of blocks; the composer decides pages and coordinates, the
// renderer only draws what was placed.

// Color is an RGB triple in the 0-255 range.
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

var (
	Black = Color{}
	Green = Color{R: 0, G: 128, B: 46}
	Red   = Color{R: 204, G: 0, B: 0}
)

// Block is one entry of a content script.
type Block interface {
	block()
}

// TextBlock is a flowed paragraph. A text block never spans two pages.
type TextBlock struct {
	Text  string
	Font  string
	Size  float64
	Color Color
	// MaxWidth limits wrapping; zero means the full content width minus
	// Indent.
	MaxWidth float64
	// Indent shifts the block right of the left margin.
	Indent float64
	Align  string // left (default), center, right
}

// ColumnSpec fixes one table column. Widths are absolute points; the
// column x offsets follow from the running sum, never from the cell text.
type ColumnSpec struct {
	Title string  `json:"title"`
	Width float64 `json:"width"`
	Align string  `json:"align,omitempty"`
}

// TableRow is one atomic row. Rows may land on different pages but a row's
// own content is never divided.
type TableRow struct {
	Cells []string
	// Header and Bold rows are set in the bold face.
	Header bool
	Bold   bool
	// Rules lists the inner column boundaries (1..len(columns)-1) to
	// stroke for this row. Nil strokes all of them; summary rows of the
	// quotation only stroke the boundary before the total column.
	Rules []int
	// FontSize overrides the table font size for this row.
	FontSize float64
}

// TableBlock is a hand-laid-out table. Row heights come from measuring each
// cell's wrapped text; vertical rules are drawn per row at the fixed column
// boundaries.
type TableBlock struct {
	Columns      []ColumnSpec
	Rows         []TableRow
	FontSize     float64 // default 12
	MinRowHeight float64 // default 30
	Borderless   bool
}

// ImageBlock places raster bytes at their given size. Empty Data renders a
// blank placeholder of the same footprint.
type ImageBlock struct {
	Data   []byte
	Width  float64
	Height float64
	Align  string
}

// FooterBlock is the running page footer. It is stamped on every page in
// the second pass once the total page count is known and never participates
// in the overflow accounting of the first pass. Template receives the
// 1-based page index and the page count.
type FooterBlock struct {
	Template string
	Font     string
	Size     float64
}

// PageBreakBlock forces the next block onto a fresh page.
type PageBreakBlock struct{}

// SpacerBlock advances the cursor without placing anything.
type SpacerBlock struct {
	Height float64
}

func (TextBlock) block()      {}
func (TableBlock) block()     {}
func (ImageBlock) block()     {}
func (FooterBlock) block()    {}
func (PageBreakBlock) block() {}
func (SpacerBlock) block()    {}
