// Package pdf renders the analysis output as a downloadable PDF. It is a
// formatting sink: it consumes the issue summary and the complaint template
// and does not interpret either.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

const (
	fontSize   = 10
	lineHeight = 5
	// wrapWidth is the hard character wrap applied to template lines so
	// long paragraphs stay inside the page.
	wrapWidth = 90
)

// Build renders the issue summary and complaint template into a PDF.
func Build(issueSummary, complaintTemplate string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "", fontSize)

	writeSection(doc, "ISSUE SUMMARY:", issueSummary)
	writeSection(doc, "COMPLAINT TEMPLATE:", complaintTemplate)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSection(doc *fpdf.Fpdf, label, content string) {
	writeLine(doc, label)
	writeLine(doc, "")
	for _, line := range strings.Split(content, "\n") {
		for len(line) > wrapWidth {
			writeLine(doc, line[:wrapWidth])
			line = line[wrapWidth:]
		}
		writeLine(doc, line)
	}
	writeLine(doc, "")
}

func writeLine(doc *fpdf.Fpdf, line string) {
	doc.CellFormat(0, lineHeight, line, "", 1, "L", false, 0, "")
}
