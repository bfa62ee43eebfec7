package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/ABB00717/Clean-Video/internal/refine"
)

// OffTopicSegment marks a stretch of the transcript unrelated to the
// lecture's main content
type OffTopicSegment struct {
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Description string `json:"description"`
}

const offTopicPrompt = `Analyze the following lecture transcript.
Goal: Identify segments that are **Off-Topic** or unrelated to the main educational content.
Examples:
- Logistics (assignments, exam dates, "don't come tomorrow").
- Jokes, personal stories, idle chatter.
- Political commentary or unrelated current events.
- Classroom management ("don't be afraid to raise hands").

Video Topic Summary:
%s

Transcript:
%s`

var offTopicSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"segments": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"start_time":  {Type: genai.TypeString},
					"end_time":    {Type: genai.TypeString},
					"description": {Type: genai.TypeString},
				},
				Required: []string{"start_time", "end_time", "description"},
			},
		},
	},
	Required: []string{"segments"},
}

// DetectOffTopic scans the final transcript for off-topic stretches
func (c *Client) DetectOffTopic(ctx context.Context, shared *refine.Context, transcript string) ([]OffTopicSegment, error) {
	prompt := fmt.Sprintf(offTopicPrompt, shared.Summary, transcript)
	parts := append(fileParts(shared.Files), genai.NewPartFromText(prompt))

	var resp struct {
		Segments []OffTopicSegment `json:"segments"`
	}
	if err := c.generateJSON(ctx, c.proModel, "", parts, offTopicSchema, &resp); err != nil {
		return nil, err
	}
	return resp.Segments, nil
}
