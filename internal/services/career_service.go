package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/justsurfingit/career-path-advisor/internal/database"
	"github.com/justsurfingit/career-path-advisor/internal/models"
)

// SuggestionGenerator produces a suggestion for a profile and never fails.
type SuggestionGenerator interface {
	GenerateCareerSuggestion(ctx context.Context, profile *models.ProfileSubmission) models.CareerSuggestion
}

type CareerService struct {
	Store     database.Store
	Generator SuggestionGenerator
	Log       logrus.FieldLogger
}

func NewCareerService(store database.Store, generator SuggestionGenerator, log logrus.FieldLogger) *CareerService {
	return &CareerService{
		Store:     store,
		Generator: generator,
		Log:       log,
	}
}

// Suggest stores the submission, generates a suggestion and stores it with a reference
// back to the submission. The two writes are independent: if the second one fails the
// submission stays stored. Only store errors are returned.
func (s *CareerService) Suggest(ctx context.Context, profile *models.ProfileSubmission) (models.CareerSuggestion, error) {
	profileID, err := s.Store.InsertProfile(ctx, profile)
	if err != nil {
		return models.CareerSuggestion{}, fmt.Errorf("save profile: %w", err)
	}

	suggestion := s.Generator.GenerateCareerSuggestion(ctx, profile)

	record := &models.CareerSuggestionRecord{
		CareerSuggestion: suggestion,
		UserProfileID:    profileID,
	}
	suggestionID, err := s.Store.InsertSuggestion(ctx, record)
	if err != nil {
		return models.CareerSuggestion{}, fmt.Errorf("save suggestion for profile %s: %w", profileID, err)
	}

	s.Log.WithFields(logrus.Fields{
		"user_profile_id": profileID,
		"suggestion_id":   suggestionID,
		"role":            suggestion.SuggestedJobRole,
	}).Info("career suggestion stored")
	return suggestion, nil
}
