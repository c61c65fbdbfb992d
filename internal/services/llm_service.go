package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/justsurfingit/career-path-advisor/internal/config"
	"github.com/justsurfingit/career-path-advisor/internal/models"
)

// ErrEmptyCompletion is returned by a TextGenerator when the provider answered with no text.
var ErrEmptyCompletion = errors.New("model returned an empty completion")

// TextGenerator sends one prompt to a model provider and returns the text reply.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ProviderFailureSuggestion is returned when the provider call itself fails.
func ProviderFailureSuggestion() models.CareerSuggestion {
	return models.CareerSuggestion{
		SuggestedJobRole:       "Technical Specialist",
		CareerPath:             "Based on your profile, a career path in technology would be appropriate. Start with junior roles to gain experience, then move to mid-level positions in 2-3 years. Aim for senior or specialized roles within 5-7 years.",
		CertificationsRequired: "Cloud certifications (AWS/Azure/GCP), Programming certifications, Project Management certifications (PMP, Agile), Industry-specific certifications",
		ExpectedSalary:         "$60,000 - $150,000 depending on experience, location, and specialization",
	}
}

type LLMService struct {
	Client TextGenerator
	Log    logrus.FieldLogger
}

func NewLLMService(client TextGenerator, log logrus.FieldLogger) *LLMService {
	return &LLMService{Client: client, Log: log}
}

// NewTextGenerator builds the provider client selected by cfg.LLMProvider.
func NewTextGenerator(ctx context.Context, cfg config.Config) (TextGenerator, error) {
	switch cfg.LLMProvider {
	case config.ProviderGoogleAI:
		return NewLangChainGenerator(ctx, cfg.LLMAPIKey, cfg.LLMModel)
	case config.ProviderGenAI:
		return NewGenAIGenerator(ctx, cfg.LLMAPIKey, cfg.LLMModel)
	case config.ProviderAnthropic:
		return NewAnthropicGenerator(cfg.LLMAPIKey, cfg.LLMModel), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownProvider, cfg.LLMProvider)
	}
}

// GenerateCareerSuggestion asks the model for a recommendation. It always returns a suggestion:
// provider errors yield ProviderFailureSuggestion and unparseable replies yield the raw-text form.
func (s *LLMService) GenerateCareerSuggestion(ctx context.Context, profile *models.ProfileSubmission) models.CareerSuggestion {
	reply, err := s.Client.GenerateText(ctx, BuildCareerPrompt(profile))
	if err != nil {
		s.Log.WithError(err).Warn("career suggestion: provider call failed, using fallback")
		return ProviderFailureSuggestion()
	}

	suggestion, err := ParseCareerSuggestion(reply)
	if err != nil {
		s.Log.WithError(err).WithField("raw_response", reply).Warn("career suggestion: could not parse model reply")
	}
	return suggestion
}

func nonEmpty(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
