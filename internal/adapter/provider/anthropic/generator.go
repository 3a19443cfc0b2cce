// Package anthropic implements flashcard proposal generation via the
// Anthropic Messages API.
package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/flashcards-backend/internal/config"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// Generator produces flashcard proposals from source text using Claude.
type Generator struct {
	client  sdk.Client
	cfg     config.AIConfig
	enabled bool
}

// New creates a Generator. If cfg.APIKey is empty the generator is created in
// disabled state: the server still starts, but Generate returns a
// configuration error. opts are forwarded to the SDK client, used by tests to
// point at a stub server.
func New(cfg config.AIConfig, opts ...option.RequestOption) *Generator {
	if cfg.APIKey == "" {
		return &Generator{cfg: cfg, enabled: false}
	}

	opts = append([]option.RequestOption{option.WithAPIKey(cfg.APIKey)}, opts...)

	return &Generator{
		client:  sdk.NewClient(opts...),
		cfg:     cfg,
		enabled: true,
	}
}

// proposalPayload mirrors the JSON schema the model is asked to produce.
type proposalPayload struct {
	Flashcards []struct {
		Front string `json:"front"`
		Back  string `json:"back"`
	} `json:"flashcards"`
}

// Generate asks the model for 2 to 5 proposals based on the source text.
// The call is bounded by cfg.RequestTimeout. Any malformed item rejects the
// whole response: partial results are never returned.
func (g *Generator) Generate(ctx context.Context, text string) ([]domain.Proposal, error) {
	if !g.enabled {
		return nil, domain.NewGenerationError("AI generation is not configured", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, g.cfg.RequestTimeout)
	defer cancel()

	msg, err := g.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(g.cfg.Model),
		MaxTokens: int64(g.cfg.MaxTokens),
		System: []sdk.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(buildPrompt(text))),
		},
	})
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, domain.NewGenerationError("AI request timed out", err)
		}
		return nil, domain.NewGenerationError("AI request failed", err)
	}

	if len(msg.Content) == 0 {
		return nil, domain.NewGenerationError("AI returned an empty response", nil)
	}

	responseText := msg.Content[0].Text

	jsonStr, err := extractJSON(responseText)
	if err != nil {
		return nil, domain.NewGenerationError("AI response contains no JSON", err)
	}

	if !json.Valid([]byte(jsonStr)) {
		return nil, domain.NewGenerationError("AI response contains invalid JSON", nil)
	}

	var payload proposalPayload
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return nil, domain.NewGenerationError("AI response does not match the expected schema", err)
	}

	proposals, err := validateProposals(payload)
	if err != nil {
		return nil, domain.NewGenerationError(err.Error(), nil)
	}

	return proposals, nil
}

// validateProposals enforces the output contract. All items must be valid,
// otherwise the whole batch is rejected.
func validateProposals(payload proposalPayload) ([]domain.Proposal, error) {
	if len(payload.Flashcards) == 0 {
		return nil, fmt.Errorf("AI returned no flashcards")
	}

	proposals := make([]domain.Proposal, 0, len(payload.Flashcards))
	for i, item := range payload.Flashcards {
		front := strings.TrimSpace(item.Front)
		back := strings.TrimSpace(item.Back)

		if front == "" || back == "" {
			return nil, fmt.Errorf("AI flashcard %d has an empty side", i+1)
		}
		if len(front) > domain.FrontContentMaxLen {
			return nil, fmt.Errorf("AI flashcard %d front exceeds %d characters", i+1, domain.FrontContentMaxLen)
		}
		if len(back) > domain.BackContentMaxLen {
			return nil, fmt.Errorf("AI flashcard %d back exceeds %d characters", i+1, domain.BackContentMaxLen)
		}

		proposals = append(proposals, domain.Proposal{
			FrontContent: front,
			BackContent:  back,
		})
	}

	return proposals, nil
}

const systemPrompt = `You are an expert at creating educational flashcards. Given a text, extract the key concepts and produce question/answer flashcards that help a student learn the material.`

// buildPrompt creates the user message for a single generation request.
func buildPrompt(text string) string {
	return fmt.Sprintf(`Create between 2 and 5 flashcards from the following text.

Text:
%s

Output ONLY a valid JSON object matching this exact schema:
{
  "flashcards": [
    {"front": "<question, max 1000 characters>", "back": "<answer, max 2000 characters>"}
  ]
}

Rules:
- Each flashcard tests one distinct concept from the text
- Fronts are clear questions, backs are concise complete answers
- Do not invent facts that are not in the text
- Output ONLY the JSON, no markdown, no explanations`, text)
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
