// Package gemini wraps the generative text service behind the three call
// shapes the pipeline needs: single-line rewrite, windowed review and
// one-shot context summary, plus file upload for shared context material.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/ABB00717/Clean-Video/internal/config"
	"github.com/ABB00717/Clean-Video/internal/logger"
)

// Client talks to the Gemini API. It rotates through the configured API
// keys when a call hits quota limits, and is safe for concurrent use.
type Client struct {
	keys       []string
	flashModel string
	proModel   string
	mergeLimit int
	logger     logger.Logger

	mu  sync.Mutex
	cur int
}

// New creates a Client from the configured key list
func New(cfg *config.Config, log logger.Logger) (*Client, error) {
	if len(cfg.GeminiAPIKeys) == 0 {
		return nil, fmt.Errorf("no Gemini API keys configured (set GEMINI_API_KEYS)")
	}
	return &Client{
		keys:       cfg.GeminiAPIKeys,
		flashModel: cfg.Refine.FlashModel,
		proModel:   cfg.Refine.ProModel,
		mergeLimit: cfg.Refine.MergeLimit,
		logger:     log,
	}, nil
}

// SchemaError reports a response that arrived but failed schema validation.
// Callers treat it the same as a transport failure: fall back locally.
type SchemaError struct {
	Model string
	Err   error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("model %s returned a response that does not match the schema: %v", e.Model, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

func (c *Client) currentKey() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.keys[c.cur]
}

func (c *Client) rotateKey() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur = (c.cur + 1) % len(c.keys)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

// generateJSON runs one schema-constrained generation and decodes the
// JSON response into out. Quota errors rotate to the next key and retry;
// other transport errors return as-is.
func (c *Client) generateJSON(ctx context.Context, model, system string, parts []*genai.Part, schema *genai.Schema, out interface{}) error {
	attempts := len(c.keys)
	var lastErr error

	for range attempts {
		key := c.currentKey()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			c.rotateKey()
			continue
		}

		cfg := &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		}
		if system != "" {
			cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
		}

		contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

		result, err := client.Models.GenerateContent(ctx, model, contents, cfg)
		if err != nil {
			if isQuotaError(err) {
				c.logger.Warn(ctx, "Gemini key rate limited, rotating...")
				c.rotateKey()
				lastErr = err
				continue
			}
			return fmt.Errorf("generate content: %w", err)
		}

		text := responseText(result)
		if text == "" {
			return fmt.Errorf("empty response from model %s", model)
		}

		if err := json.Unmarshal([]byte(text), out); err != nil {
			return &SchemaError{Model: model, Err: err}
		}
		return nil
	}

	return fmt.Errorf("all Gemini API keys exhausted: %w", lastErr)
}

func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}
