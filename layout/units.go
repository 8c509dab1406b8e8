package layout

// Layout space is PDF points with the origin at the top-left corner of the
// page. The canvas backend works in millimeters, so the conversion pair lives
// here where both sides can reach it.

// Conversion constants between pt and mm.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// Margin describes the four page margins in points.
type Margin struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Geometry fixes the page size, margins and the footer baseline for a
// document. One geometry is shared by every page of a Document.
type Geometry struct {
	PageWidth  float64 `json:"pageWidth"`
	PageHeight float64 `json:"pageHeight"`
	Margin     Margin  `json:"margin"`
	// FooterY is the distance from the top of the page to the footer
	// baseline. Footers are stamped there after layout and never count
	// against the content area.
	FooterY float64 `json:"footerY"`
}

// A4 returns the only geometry the composer is used with in production:
// A4 portrait, 50pt margins, footer line at 800pt.
func A4() Geometry {
	return Geometry{
		PageWidth:  595.28,
		PageHeight: 841.89,
		Margin:     Margin{Top: 50, Right: 45.28, Bottom: 50, Left: 50},
		FooterY:    800,
	}
}

// ContentWidth is the usable width between the left and right margins.
func (g Geometry) ContentWidth() float64 {
	return g.PageWidth - g.Margin.Left - g.Margin.Right
}

// ContentTop is the y coordinate where flowed content starts on each page.
func (g Geometry) ContentTop() float64 { return g.Margin.Top }

// ContentBottom is the y coordinate past which flowed content overflows.
func (g Geometry) ContentBottom() float64 { return g.PageHeight - g.Margin.Bottom }
