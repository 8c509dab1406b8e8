package renderer

import "github.com/spotfurnish/quotegen/layout"

// Renderer draws a composed document to its final form, e.g. a PDF byte
// stream. Renderers make no layout decisions; every block arrives with
// absolute coordinates and pre-wrapped text.
type Renderer interface {
	Render(doc *layout.Document) ([]byte, error)
}
