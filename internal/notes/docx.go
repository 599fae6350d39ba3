package notes

import (
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// WriteDocx renders the document as a styled docx file: bold headings, one
// paragraph per bullet line, one per sampled timestamp.
func WriteDocx(d *Document, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), d.Title, true, 16)
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), "KEY TAKEAWAYS", true, 15)
	for _, line := range strings.Split(d.Summary, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		addStyledRun(doc.AddParagraph(""), line, false, fontSize)
	}

	doc.AddParagraph("")
	addStyledRun(doc.AddParagraph(""), "TIMESTAMPS", true, 15)
	for _, seg := range d.SampleTimestamps() {
		line := strings.TrimSuffix(formatTimestampLine(seg), "\n")
		addStyledRun(doc.AddParagraph(""), line, false, fontSize)
	}

	return doc.SaveTo(outputPath)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
