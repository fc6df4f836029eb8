package llm

import (
	"context"
	"encoding/base64"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIProvider struct {
	client      *openai.Client
	name        string
	model       string
	visionModel string
}

func NewOpenAIProvider(apiKey string, model string, visionModel string) *OpenAIProvider {
	if model == "" {
		model = "gpt-4o-mini"
	}
	if visionModel == "" {
		visionModel = "gpt-4o-mini"
	}

	return &OpenAIProvider{
		client:      openai.NewClient(apiKey),
		name:        "OpenAI",
		model:       model,
		visionModel: visionModel,
	}
}

// NewCompatibleProvider creates a provider for OpenAI-compatible APIs
// (Groq, DeepSeek). These endpoints speak the chat completion protocol but
// offer no image understanding.
func NewCompatibleProvider(name, apiKey, baseURL, model string) *OpenAIProvider {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(cfg),
		name:   name,
		model:  model,
	}
}

func (p *OpenAIProvider) GetProviderName() string {
	return p.name
}

func (p *OpenAIProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})

	if err != nil {
		return "", fmt.Errorf("%s error: %w", p.name, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from %s", p.name)
	}

	return resp.Choices[0].Message.Content, nil
}

func (p *OpenAIProvider) DescribeImage(ctx context.Context, image []byte) (string, error) {
	if p.visionModel == "" {
		return "", fmt.Errorf("image understanding is not supported by %s", p.name)
	}

	b64 := base64.StdEncoding.EncodeToString(image)
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.visionModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: "Describe this image in detail, focusing on its main subject, colors, and any notable details that would be relevant for tourism content.",
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: "data:image/jpeg;base64," + b64,
						},
					},
				},
			},
		},
		MaxTokens: 300,
	})

	if err != nil {
		return "", fmt.Errorf("%s vision error: %w", p.name, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from %s", p.name)
	}

	return resp.Choices[0].Message.Content, nil
}
