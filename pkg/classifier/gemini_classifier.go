package classifier

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"personatag/internal/models"
)

// GeminiClassifier classifies quiz answers via the Google Gemini API.
type GeminiClassifier struct {
	client *genai.Client
	model  string
}

// NewGeminiClassifier creates a Gemini-backed classifier. A missing API key
// disables the classifier instead of failing startup.
func NewGeminiClassifier(apiKey, modelName string) (*GeminiClassifier, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		log.Warn("Gemini API key not provided. Gemini classifier will be disabled.")
		return &GeminiClassifier{client: nil, model: modelName}, nil
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	log.Infof("Gemini classifier initialized with model %s", modelName)

	return &GeminiClassifier{
		client: client,
		model:  modelName,
	}, nil
}

func (c *GeminiClassifier) Name() string { return "gemini" }

func (c *GeminiClassifier) ModelName() string { return c.model }

func (c *GeminiClassifier) Classify(ctx context.Context, req Request) (Result, Usage, error) {
	if c.client == nil {
		return Result{}, Usage{}, fmt.Errorf("%w: gemini classifier is not initialized (missing API key)", models.ErrProvider)
	}

	prompt, genderFlow := BuildPrompt(req)

	gm := c.client.GenerativeModel(c.model)
	resp, err := gm.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return Result{}, Usage{}, fmt.Errorf("%w: gemini generation failed: %v", models.ErrProvider, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return Result{}, Usage{}, fmt.Errorf("%w: no candidates returned from Gemini", models.ErrProvider)
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	var usage Usage
	if resp.UsageMetadata != nil {
		usage = Usage{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}

	raw := strings.TrimSpace(b.String())
	result, err := ValidateResponse(raw, genderFlow)
	if err != nil {
		log.WithField("model", c.model).Warnf("Rejected completion: %v", err)
		return Result{}, usage, err
	}
	return result, usage, nil
}

// Close cleans up the Gemini client resources.
func (c *GeminiClassifier) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

var _ Classifier = (*GeminiClassifier)(nil)
