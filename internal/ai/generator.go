package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"portfolio_ai_server/internal/ai/prompts"
)

// ChatClient abstracts the chat-completion backend so tests can substitute
// a canned implementation.
type ChatClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// OpenAIChat implements ChatClient on the OpenAI chat completions API.
type OpenAIChat struct {
	client      *openai.Client
	model       string
	temperature float32
}

func NewOpenAIChat(apiKey, model string, temperature float32) *OpenAIChat {
	return &OpenAIChat{
		client:      openai.NewClient(apiKey),
		model:       model,
		temperature: temperature,
	}
}

func (c *OpenAIChat) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt},
			},
			Temperature: c.temperature,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Printf("OpenAI usage for empty response: %+v", resp.Usage)
		return "", errors.New("openai returned empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

// Generator sends one brief per user action to the model with the fixed
// portfolio instruction. Stateless; no retries, no streaming.
type Generator struct {
	chat ChatClient
}

func NewGenerator(chat ChatClient) *Generator {
	return &Generator{chat: chat}
}

// GeneratePortfolio returns the raw model reply for one brief. The brief
// is passed through opaque; only the caller checks it for emptiness.
func (g *Generator) GeneratePortfolio(ctx context.Context, brief string) (string, error) {
	log.Printf("Requesting portfolio generation (brief %d bytes)", len(brief))

	reply, err := g.chat.Complete(ctx, prompts.GetPortfolioSystemPrompt(), brief)
	if err != nil {
		return "", err
	}

	log.Printf("Model reply received (%d bytes)", len(reply))
	return strings.TrimSpace(reply), nil
}
