package assistant

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// CompletionClient produces one completion for a conversation. Turns may carry
// MultiContent parts with inline image data.
type CompletionClient interface {
	Complete(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error)
}

// ImageClient turns a text prompt into a URL of a generated image.
type ImageClient interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// OpenAIClient implements both clients against the OpenAI API.
type OpenAIClient struct {
	api        *openai.Client
	model      string
	imageModel string
	imageSize  string
}

func NewOpenAIClient(apiKey, model, imageModel, imageSize string) *OpenAIClient {
	return &OpenAIClient{
		api:        openai.NewClient(apiKey),
		model:      model,
		imageModel: imageModel,
		imageSize:  imageSize,
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (c *OpenAIClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateImage(ctx, openai.ImageRequest{
		Model:  c.imageModel,
		Prompt: prompt,
		N:      1,
		Size:   c.imageSize,
	})
	if err != nil {
		return "", fmt.Errorf("image generation: %w", err)
	}
	if len(resp.Data) == 0 {
		return "", fmt.Errorf("image generation: no results")
	}
	return resp.Data[0].URL, nil
}
