package notes

import (
	"fmt"
	"os"
)

// WriteText renders the document and writes it to path
func WriteText(doc *Document, path string) error {
	if err := os.WriteFile(path, []byte(doc.Render()), 0644); err != nil {
		return fmt.Errorf("write notes file: %w", err)
	}
	return nil
}
