package classifier

import "context"

// Request holds one free-text quiz answer plus the optional question that
// prompted it.
type Request struct {
	Question string
	Answer   string
}

// Result holds the validated tags for one answer.
type Result struct {
	StyleTags    []string `json:"style_tags"`
	FittingTags  []string `json:"fitting_tags"`
	ActivityTags []string `json:"activity_tags"`
	Gender       string   `json:"gender,omitempty"`
}

// Usage carries the provider's token counts through unmodified.
type Usage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
}

// Classifier classifies a quiz answer against the tag taxonomy.
type Classifier interface {
	Classify(ctx context.Context, req Request) (Result, Usage, error)
	Name() string
	ModelName() string
}
