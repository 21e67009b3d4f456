package completion

import (
	"context"
	"fmt"
	"mammacheck/internal/config"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
)

// OpenAIClient calls the OpenAI Responses API.
type OpenAIClient struct {
	cfg    *config.CompletionConfig
	client *openai.Client
}

// NewOpenAIClient creates an OpenAI-backed completion client.
func NewOpenAIClient(cfg *config.CompletionConfig) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(cfg.OpenAIAPIKey))
	return &OpenAIClient{cfg: cfg, client: &client}
}

// Complete sends the instructions, prior turns and user text and returns the
// response text.
func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt string, history []Message, userText string) (string, error) {
	if c.cfg.OpenAIAPIKey == "" {
		return "", ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMS)*time.Millisecond)
	defer cancel()

	items := make([]responses.ResponseInputItemUnionParam, 0, len(history)+1)
	for _, m := range history {
		role := responses.EasyInputMessageRoleUser
		if m.Role == RoleAssistant {
			role = responses.EasyInputMessageRoleAssistant
		}
		items = append(items, responses.ResponseInputItemParamOfMessage(m.Content, role))
	}
	items = append(items, responses.ResponseInputItemParamOfMessage(userText, responses.EasyInputMessageRoleUser))

	params := responses.ResponseNewParams{
		Model:           c.cfg.OpenAIModel,
		MaxOutputTokens: openai.Int(500),
		Instructions:    openai.String(systemPrompt),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: items,
		},
	}

	resp, err := c.client.Responses.New(ctx, params)
	if err != nil {
		return "", err
	}

	text := resp.OutputText()
	if text == "" {
		return "", fmt.Errorf("empty response from openai")
	}
	return text, nil
}
