package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/ABB00717/Clean-Video/internal/refine"
)

var _ refine.Rewriter = (*Client)(nil)

const rewriteSystemTemplate = `You are a strict subtitle editor for a lecture video in %s.

**CRITICAL RULE: SUBTRACTION & MERGING**
1. **Subtraction Only**: Remove filler words, stutters, and redundant phrases.
2. **Merging**: Check if the current line flows grammatically into the NEXT line.
   - If merging them creates a better sentence AND the combined length is <= %d characters, set should_merge_next to true.
   - Do NOT manually merge the text in output. Just return the refined text of the CURRENT line.
3. **No Rewriting**: Do not change sentence structure or add words unless using standard notation.

**FORMATTING**
1. Output valid JSON.
2. Add spaces between English/Numbers and CJK characters.

**GLOBAL SUMMARY**
%s

**STYLE GUIDE**
%s`

var rewriteSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"output":            {Type: genai.TypeString},
		"should_merge_next": {Type: genai.TypeBoolean},
	},
	Required: []string{"output"},
}

// RewriteLine performs one pass-1 rewrite over a single subtitle line.
// The shared context is read-only; only the line text and the prompt go
// over the wire.
func (c *Client) RewriteLine(ctx context.Context, shared *refine.Context, line string) (refine.Rewrite, error) {
	language := shared.Language
	if language == "" {
		language = "the transcript's language"
	}
	system := fmt.Sprintf(rewriteSystemTemplate, language, c.mergeLimit, shared.Summary, shared.StyleGuide)

	parts := []*genai.Part{
		genai.NewPartFromText("Subtitle line:\n" + line),
	}

	var resp struct {
		Output          string `json:"output"`
		ShouldMergeNext bool   `json:"should_merge_next"`
	}
	if err := c.generateJSON(ctx, c.flashModel, system, parts, rewriteSchema, &resp); err != nil {
		return refine.Rewrite{}, err
	}
	if resp.Output == "" {
		return refine.Rewrite{}, &SchemaError{Model: c.flashModel, Err: fmt.Errorf("empty output field")}
	}

	return refine.Rewrite{Text: resp.Output, MergeNext: resp.ShouldMergeNext}, nil
}
