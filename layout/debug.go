package layout

import (
	"encoding/json"
	"os"
)

// WriteDebugJSON dumps a composed document as JSON so page breaks and row
// heights can be inspected without rendering a PDF.
func WriteDebugJSON(doc *Document, path string) error {
	if doc == nil {
		return nil
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
