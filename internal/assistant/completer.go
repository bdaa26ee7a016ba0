package assistant

import (
	"context"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are the HR assistant. Help with HR policies, onboarding, and employee queries."

//go:generate mockgen -source=completer.go -destination=mock/completer_mock.go -package=mock
type Completer interface {
	Complete(ctx context.Context, message string) (string, error)
}

type OpenAICompleter struct {
	client *openai.Client
	model  string
}

func NewOpenAICompleter(apiKey string) *OpenAICompleter {
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAICompleter{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (o *OpenAICompleter) Complete(ctx context.Context, message string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}
