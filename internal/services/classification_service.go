package services

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"personatag/internal/models"
	"personatag/pkg/classifier"
)

// ClassificationService validates incoming quiz requests and delegates to
// the configured classifier.
type ClassificationService struct {
	Classifier classifier.Classifier
}

func NewClassificationService(c classifier.Classifier) *ClassificationService {
	return &ClassificationService{Classifier: c}
}

// Classify runs one answer through the classification pipeline. An empty
// answer fails before any provider call.
func (s *ClassificationService) Classify(ctx context.Context, question, answer string) (classifier.Result, classifier.Usage, error) {
	if strings.TrimSpace(answer) == "" {
		return classifier.Result{}, classifier.Usage{}, fmt.Errorf("%w: answer is required", models.ErrInvalidRequest)
	}
	if s.Classifier == nil {
		return classifier.Result{}, classifier.Usage{}, fmt.Errorf("%w: no classifier configured", models.ErrProvider)
	}

	result, usage, err := s.Classifier.Classify(ctx, classifier.Request{
		Question: question,
		Answer:   answer,
	})
	if err != nil {
		return classifier.Result{}, usage, err
	}

	log.WithFields(log.Fields{
		"provider":     s.Classifier.Name(),
		"model":        s.Classifier.ModelName(),
		"total_tokens": usage.TotalTokens,
	}).Debug("Classification succeeded")

	return result, usage, nil
}
