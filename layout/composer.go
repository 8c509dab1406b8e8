package layout

import (
	"errors"
	"fmt"
)

const (
	blockSpacing = 5.0
	cellPadding  = 5.0

	defaultTableFontSize = 12.0
	defaultMinRowHeight  = 30.0
	defaultFooterFont    = "Helvetica"
	defaultFooterSize    = 10.0

	tableFont     = "Helvetica"
	tableBoldFont = "Helvetica-Bold"
)

// ErrComposerReused is returned when Compose is called on a composer that
// already produced a document. A composer is single-use; build a new one
// per order.
var ErrComposerReused = errors.New("layout: composer already used")

type composerState int

const (
	stateDraft composerState = iota
	stateLaidOut
	statePaginated
)

// Composer turns a block script into a paginated Document in two passes:
// a dry layout pass that walks the script and decides every page break, and
// a footer pass that stamps "Page i of N" once N is known.
type Composer struct {
	geo      Geometry
	measurer *Measurer
	state    composerState

	pages   []Page
	cursorY float64
	footer  FooterBlock
}

// NewComposer builds a composer for one document.
func NewComposer(geo Geometry, m *Measurer) *Composer {
	return &Composer{geo: geo, measurer: m}
}

// Compose lays out the script and returns the finished document. The
// returned Document is not touched by the composer afterwards; a second
// call fails with ErrComposerReused.
func (c *Composer) Compose(script []Block) (*Document, error) {
	if c.state != stateDraft {
		return nil, ErrComposerReused
	}

	c.footer = FooterBlock{Template: "Page %d of %d", Font: defaultFooterFont, Size: defaultFooterSize}
	c.newPage()

	for _, b := range script {
		var err error
		switch blk := b.(type) {
		case TextBlock:
			err = c.placeText(blk)
		case TableBlock:
			err = c.placeTable(blk)
		case ImageBlock:
			c.placeImage(blk)
		case FooterBlock:
			// Footers never participate in pass-1 height accounting.
			c.footer = blk
		case PageBreakBlock:
			c.newPage()
		case SpacerBlock:
			c.advance(blk.Height)
		default:
			err = fmt.Errorf("layout: unsupported block %T", b)
		}
		if err != nil {
			return nil, err
		}
	}
	c.closePage()
	c.state = stateLaidOut

	c.stampFooters()
	c.state = statePaginated

	return &Document{Geometry: c.geo, Pages: c.pages}, nil
}

func (c *Composer) newPage() {
	c.closePage()
	c.pages = append(c.pages, Page{Index: len(c.pages)})
	c.cursorY = c.geo.ContentTop()
}

// closePage records how much of the content area the current page used.
func (c *Composer) closePage() {
	if len(c.pages) == 0 {
		return
	}
	c.pages[len(c.pages)-1].ContentUsed = c.cursorY - c.geo.ContentTop()
}

func (c *Composer) curr() *Page { return &c.pages[len(c.pages)-1] }

// ensureSpace opens a new page when height does not fit below the cursor.
// A block taller than the whole content area is still given a fresh page
// and placed there; it will overflow visually, but dropping order content
// is worse than an imperfect page.
func (c *Composer) ensureSpace(height float64) {
	if c.cursorY+height <= c.geo.ContentBottom() {
		return
	}
	if c.cursorY == c.geo.ContentTop() {
		return // already at the top of a fresh page
	}
	c.newPage()
}

func (c *Composer) advance(height float64) {
	c.cursorY += height
	if c.cursorY > c.geo.ContentBottom() {
		c.newPage()
	}
}

func (c *Composer) placeText(blk TextBlock) error {
	maxWidth := blk.MaxWidth
	if maxWidth <= 0 {
		maxWidth = c.geo.ContentWidth() - blk.Indent
	}
	m, err := c.measurer.Measure(blk.Text, blk.Font, blk.Size, maxWidth)
	if err != nil {
		return err
	}
	c.ensureSpace(m.Height)

	c.curr().Blocks = append(c.curr().Blocks, PlacedText{
		X:      c.geo.Margin.Left + blk.Indent,
		Y:      c.cursorY,
		Width:  maxWidth,
		Height: m.Height,
		Font:   blk.Font,
		Size:   blk.Size,
		Color:  blk.Color,
		Align:  blk.Align,
		Lines:  c.measurer.Wrap(blk.Text, blk.Font, blk.Size, maxWidth),
	})
	c.cursorY += m.Height + blockSpacing
	return nil
}

func (c *Composer) placeImage(blk ImageBlock) {
	c.ensureSpace(blk.Height)
	x := c.geo.Margin.Left
	switch blk.Align {
	case "right":
		x = c.geo.Margin.Left + c.geo.ContentWidth() - blk.Width
	case "center":
		x = c.geo.Margin.Left + (c.geo.ContentWidth()-blk.Width)/2
	}
	c.curr().Blocks = append(c.curr().Blocks, PlacedImage{
		X:      x,
		Y:      c.cursorY,
		Width:  blk.Width,
		Height: blk.Height,
		Data:   blk.Data,
	})
	c.cursorY += blk.Height + blockSpacing
}

// placeTable lays rows one at a time. A row whose height would overflow the
// current page closes the page and continues the table on the next one; the
// row itself is never divided. Each page the table touches gets its own
// PlacedTable segment.
func (c *Composer) placeTable(blk TableBlock) error {
	fontSize := blk.FontSize
	if fontSize <= 0 {
		fontSize = defaultTableFontSize
	}
	minRow := blk.MinRowHeight
	if minRow <= 0 {
		minRow = defaultMinRowHeight
	}

	tableWidth := 0.0
	for _, col := range blk.Columns {
		tableWidth += col.Width
	}

	segStart := c.cursorY
	var rows []PlacedRow

	flush := func() {
		if len(rows) == 0 {
			return
		}
		c.curr().Blocks = append(c.curr().Blocks, PlacedTable{
			X:          c.geo.Margin.Left,
			Y:          segStart,
			Width:      tableWidth,
			Height:     c.cursorY - segStart,
			Columns:    blk.Columns,
			Borderless: blk.Borderless,
			Rows:       rows,
		})
		rows = nil
	}

	for _, row := range blk.Rows {
		placed, height, err := c.layoutRow(row, blk.Columns, fontSize, minRow)
		if err != nil {
			return err
		}
		if c.cursorY+height > c.geo.ContentBottom() && c.cursorY > c.geo.ContentTop() {
			flush()
			c.newPage()
			segStart = c.cursorY
		}
		placed.Y = c.cursorY
		rows = append(rows, placed)
		c.cursorY += height
	}
	flush()
	c.cursorY += blockSpacing
	return nil
}

// layoutRow computes one row's height as the tallest measured cell plus
// padding, floored at the table's minimum row height.
func (c *Composer) layoutRow(row TableRow, columns []ColumnSpec, fontSize, minRow float64) (PlacedRow, float64, error) {
	size := fontSize
	if row.FontSize > 0 {
		size = row.FontSize
	}
	font := tableFont
	if row.Header || row.Bold {
		font = tableBoldFont
	}

	placed := PlacedRow{Header: row.Header, Rules: row.Rules}
	x := c.geo.Margin.Left
	maxH := 0.0
	for i, col := range columns {
		cellText := ""
		if i < len(row.Cells) {
			cellText = row.Cells[i]
		}
		cellWidth := col.Width - 2*cellPadding
		if cellWidth <= 0 {
			cellWidth = col.Width
		}
		if cellText != "" {
			m, err := c.measurer.Measure(cellText, font, size, cellWidth)
			if err != nil {
				return PlacedRow{}, 0, err
			}
			if m.Height > maxH {
				maxH = m.Height
			}
		}
		placed.Cells = append(placed.Cells, PlacedCell{
			X:     x + cellPadding,
			Width: cellWidth,
			Font:  font,
			Size:  size,
			Align: col.Align,
			Lines: c.measurer.Wrap(cellText, font, size, cellWidth),
		})
		x += col.Width
	}

	height := maxH + 2*cellPadding
	if height < minRow {
		height = minRow
	}
	placed.Height = height
	return placed, height, nil
}

// stampFooters is the second pass: with the page count final, append the
// footer to every page. The footer sits at the fixed footer baseline and is
// exempt from the overflow check by construction.
func (c *Composer) stampFooters() {
	n := len(c.pages)
	for i := range c.pages {
		c.pages[i].Blocks = append(c.pages[i].Blocks, PlacedFooter{
			X:     c.geo.Margin.Left,
			Y:     c.geo.FooterY,
			Width: c.geo.ContentWidth(),
			Text:  fmt.Sprintf(c.footer.Template, i+1, n),
			Font:  c.footer.Font,
			Size:  c.footer.Size,
		})
	}
}
