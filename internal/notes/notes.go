// Package notes renders finished pipeline output into the fixed notes
// layout, as plain text and as docx.
package notes

import (
	"fmt"
	"strings"

	"github.com/quangnd/noteflow/internal/transcriber"
)

// Document is the final pipeline output: full transcript, bullet-point
// summary and the timestamped segments the summary was derived from.
// It is written once and never mutated.
type Document struct {
	Title      string
	Transcript string
	Summary    string
	Segments   []transcriber.Segment
}

const (
	// Every 5th segment is emitted, and only from the first 40 segments
	timestampStride = 5
	timestampCap    = 40

	bannerWidth = 60
)

// SampleTimestamps returns the decimated segment list used for the
// TIMESTAMPS section.
func (d *Document) SampleTimestamps() []transcriber.Segment {
	var sampled []transcriber.Segment
	for i, seg := range d.Segments {
		if i%timestampStride == 0 && i < timestampCap {
			sampled = append(sampled, seg)
		}
	}
	return sampled
}

// Render produces the notes text with its banner/section layout. Pure
// formatting; the inputs are not validated for completeness.
func (d *Document) Render() string {
	rule := strings.Repeat("=", bannerWidth)
	thin := strings.Repeat("-", bannerWidth)

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("📝 IMPORTANT POINTS - AI NOTES SUMMARY\n")
	b.WriteString(rule + "\n\n")

	b.WriteString("🎯 KEY TAKEAWAYS\n")
	b.WriteString(thin + "\n\n")
	b.WriteString(d.Summary + "\n\n")
	b.WriteString("\n" + rule + "\n\n")

	b.WriteString("💡 NOTE: Full transcript available if needed\n")
	b.WriteString("The above points capture the essential information.\n\n")

	b.WriteString(rule + "\n")
	b.WriteString("⏱️ TIMESTAMPS\n")
	b.WriteString(rule + "\n\n")

	for _, seg := range d.SampleTimestamps() {
		b.WriteString(formatTimestampLine(seg))
	}

	return b.String()
}

func formatTimestampLine(seg transcriber.Segment) string {
	total := int(seg.Start.Seconds())
	return fmt.Sprintf("[%02d:%02d] %s\n", total/60, total%60, seg.Text)
}
