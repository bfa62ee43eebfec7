package report

import (
	"github.com/gomutex/godocx"

	"github.com/ABB00717/Clean-Video/internal/subtitle"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// WriteTranscriptDocx writes the final subtitle text as a clean transcript
// document: title first, then one paragraph per line, consecutive
// duplicates collapsed.
func WriteTranscriptDocx(title string, lines []subtitle.Line, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	doc.AddParagraph("").AddText(title).Font(fontName).Size(16).Color("000000").Bold(true)
	doc.AddParagraph("")

	previous := ""
	for _, line := range lines {
		if line.Text == "" || line.Text == previous {
			continue
		}
		previous = line.Text
		doc.AddParagraph("").AddText(line.Text).Font(fontName).Size(fontSize).Color("000000")
	}

	return doc.SaveTo(outputPath)
}
