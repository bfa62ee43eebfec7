package gemini

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/ABB00717/Clean-Video/internal/refine"
)

// Summary is the one-shot context generated before pass 1: a topic
// summary plus a style guide of notation and terminology seen in the
// uploaded materials.
type Summary struct {
	Summary    string `json:"summary"`
	StyleGuide string `json:"style_guide"`
}

const summaryPrompt = `Analyze the uploaded video (if available), auxiliary documents (slides/notes), and the following transcript.
Task:
1. Provide a comprehensive summary of the lecture topic.
2. Extract a "Style Guide" of specific notations and terminology used in the video (visuals on blackboard/slides).

Transcript:
%s`

var summarySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"summary":     {Type: genai.TypeString},
		"style_guide": {Type: genai.TypeString},
	},
	Required: []string{"summary", "style_guide"},
}

// GenerateSummary builds the global summary and style guide from the
// uploaded context files and the full transcript text
func (c *Client) GenerateSummary(ctx context.Context, files []refine.FileRef, transcript string) (Summary, error) {
	parts := append(fileParts(files), genai.NewPartFromText(fmt.Sprintf(summaryPrompt, transcript)))

	var resp Summary
	if err := c.generateJSON(ctx, c.proModel, "", parts, summarySchema, &resp); err != nil {
		return Summary{}, err
	}
	return resp, nil
}

// UploadFile pushes a context file (video, slides, notes) to the service
// and waits until it is ready for use in prompts
func (c *Client) UploadFile(ctx context.Context, path string) (refine.FileRef, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.currentKey(),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return refine.FileRef{}, fmt.Errorf("create client: %w", err)
	}

	c.logger.Info(ctx, "Uploading context file: %s", path)
	file, err := client.Files.UploadFromPath(ctx, path, nil)
	if err != nil {
		return refine.FileRef{}, fmt.Errorf("upload %s: %w", path, err)
	}

	for file.State == genai.FileStateProcessing {
		select {
		case <-ctx.Done():
			return refine.FileRef{}, ctx.Err()
		case <-time.After(2 * time.Second):
		}
		file, err = client.Files.Get(ctx, file.Name, nil)
		if err != nil {
			return refine.FileRef{}, fmt.Errorf("poll %s: %w", path, err)
		}
	}

	if file.State != genai.FileStateActive {
		return refine.FileRef{}, fmt.Errorf("file %s failed to process, state: %v", path, file.State)
	}

	c.logger.Debug(ctx, "Context file ready: %s", file.URI)
	return refine.FileRef{URI: file.URI, MIMEType: file.MIMEType}, nil
}
