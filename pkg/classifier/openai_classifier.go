package classifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"

	"personatag/internal/models"
)

// chatCompletionClient is the minimal slice of the OpenAI client the
// classifier needs, kept narrow so tests can stub it.
type chatCompletionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIClassifier classifies quiz answers via the OpenAI chat completion
// API. One blocking call per request; failures are surfaced, never retried.
type OpenAIClassifier struct {
	client chatCompletionClient
	model  string
}

// NewOpenAIClassifier creates a classifier backed by an OpenAI-compatible
// chat completion client.
func NewOpenAIClassifier(client chatCompletionClient, model string) *OpenAIClassifier {
	return &OpenAIClassifier{
		client: client,
		model:  model,
	}
}

func (c *OpenAIClassifier) Name() string { return "openai" }

func (c *OpenAIClassifier) ModelName() string { return c.model }

func (c *OpenAIClassifier) Classify(ctx context.Context, req Request) (Result, Usage, error) {
	if c.client == nil {
		return Result{}, Usage{}, fmt.Errorf("%w: openai classifier is not initialized (missing API key)", models.ErrProvider)
	}

	prompt, genderFlow := BuildPrompt(req)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return Result{}, Usage{}, fmt.Errorf("%w: openai chat completion failed: %v", models.ErrProvider, err)
	}
	if len(resp.Choices) == 0 {
		return Result{}, Usage{}, fmt.Errorf("%w: no choices returned from OpenAI", models.ErrProvider)
	}

	usage := Usage{
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}

	raw := strings.TrimSpace(resp.Choices[0].Message.Content)
	result, err := ValidateResponse(raw, genderFlow)
	if err != nil {
		log.WithField("model", c.model).Warnf("Rejected completion: %v", err)
		return Result{}, usage, err
	}
	return result, usage, nil
}

var _ Classifier = (*OpenAIClassifier)(nil)
