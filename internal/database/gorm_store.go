package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/justsurfingit/career-path-advisor/internal/models"
)

// GormStore maps each collection onto a table. Used for postgres:// and sqlite:// URLs.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// Migrate creates the two tables if they are missing.
func (s *GormStore) Migrate() error {
	return s.DB.AutoMigrate(&models.ProfileSubmission{}, &models.CareerSuggestionRecord{})
}

func (s *GormStore) InsertProfile(ctx context.Context, profile *models.ProfileSubmission) (string, error) {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	if err := s.DB.WithContext(ctx).Create(profile).Error; err != nil {
		return "", fmt.Errorf("insert %s: %w", models.UserProfilesCollection, err)
	}
	return profile.ID, nil
}

func (s *GormStore) InsertSuggestion(ctx context.Context, record *models.CareerSuggestionRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if err := s.DB.WithContext(ctx).Create(record).Error; err != nil {
		return "", fmt.Errorf("insert %s: %w", models.CareerSuggestionsCollection, err)
	}
	return record.ID, nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *GormStore) Close(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
