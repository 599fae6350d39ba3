package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/quangnd/noteflow/internal/logger"
)

const summaryPrompt = `You are a note-taking assistant. Summarize the lecture transcript excerpt below into its key points.

Requirements:
- At most %d words, at least %d words
- Plain prose sentences separated by ". " — no markdown, no list markers
- Keep technical terms exactly as spoken
- State only what the transcript says, do not add commentary

Transcript excerpt:
---
%s
---`

type geminiEngine struct {
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
}

// NewGeminiEngine creates an Engine backed by the Gemini API. Generation is
// run with temperature zero so repeated calls on the same chunk produce the
// same summary. Keys are rotated on quota errors.
func NewGeminiEngine(apiKeys []string, model string, log logger.Logger) Engine {
	return &geminiEngine{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}
}

func (g *geminiEngine) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, maxLength, minLength, text)

	attempts := len(g.apiKeys)
	var lastErr error

	for range attempts {
		key := g.apiKeys[g.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt),
			&genai.GenerateContentConfig{
				Temperature: genai.Ptr[float32](0),
			})
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", g.currentKey+1)
				g.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var out string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					out += part.Text
				}
			}
			return out, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *geminiEngine) rotateKey() {
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
}
