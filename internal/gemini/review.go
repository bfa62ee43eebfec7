package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/ABB00717/Clean-Video/internal/refine"
	"github.com/ABB00717/Clean-Video/internal/subtitle"
)

var _ refine.Reviewer = (*Client)(nil)

const reviewPromptTemplate = `Review the following subtitle window (indices %d to %d).
You have access to the VIDEO and AUXILIARY FILES.

Task:
1. Check for any mismatches between the text and better visual context (blackboard, slides).
2. Ensure strict terminology consistency with the style guide.
3. OUTPUT: a JSON list of ONLY the lines that need correction, addressed by index. If a line is correct, do not include it.

Style guide:
%s

Subtitles:
%s`

var reviewSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"corrections": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"index":   {Type: genai.TypeInteger},
					"content": {Type: genai.TypeString},
				},
				Required: []string{"index", "content"},
			},
		},
	},
	Required: []string{"corrections"},
}

// ReviewWindow performs the pass-2 correction call over one window of
// lines. The service may return a subset, or stale indices; the caller
// ignores anything that does not match the window.
func (c *Client) ReviewWindow(ctx context.Context, shared *refine.Context, window []subtitle.Line) ([]refine.Correction, error) {
	if len(window) == 0 {
		return nil, nil
	}

	var b strings.Builder
	for _, line := range window {
		fmt.Fprintf(&b, "%d: %s\n", line.Index, line.Text)
	}

	prompt := fmt.Sprintf(reviewPromptTemplate,
		window[0].Index, window[len(window)-1].Index,
		shared.StyleGuide, b.String())

	parts := append(fileParts(shared.Files), genai.NewPartFromText(prompt))

	var resp struct {
		Corrections []struct {
			Index   int    `json:"index"`
			Content string `json:"content"`
		} `json:"corrections"`
	}
	if err := c.generateJSON(ctx, c.proModel, "", parts, reviewSchema, &resp); err != nil {
		return nil, err
	}

	corrections := make([]refine.Correction, 0, len(resp.Corrections))
	for _, corr := range resp.Corrections {
		corrections = append(corrections, refine.Correction{Index: corr.Index, Text: corr.Content})
	}
	return corrections, nil
}

func fileParts(files []refine.FileRef) []*genai.Part {
	parts := make([]*genai.Part, 0, len(files))
	for _, f := range files {
		parts = append(parts, genai.NewPartFromURI(f.URI, f.MIMEType))
	}
	return parts
}
