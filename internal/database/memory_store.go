package database

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/justsurfingit/career-path-advisor/internal/models"
)

// MemoryStore keeps both collections in process memory. Meant for local runs and tests.
type MemoryStore struct {
	mu          sync.Mutex
	profiles    []models.ProfileSubmission
	suggestions []models.CareerSuggestionRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) InsertProfile(ctx context.Context, profile *models.ProfileSubmission) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	profile.ID = uuid.NewString()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles = append(s.profiles, *profile)
	return profile.ID, nil
}

func (s *MemoryStore) InsertSuggestion(ctx context.Context, record *models.CareerSuggestionRecord) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	record.ID = uuid.NewString()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.suggestions = append(s.suggestions, *record)
	return record.ID, nil
}

// Profiles returns a copy of the stored submissions in insertion order.
func (s *MemoryStore) Profiles() []models.ProfileSubmission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ProfileSubmission(nil), s.profiles...)
}

// Suggestions returns a copy of the stored suggestions in insertion order.
func (s *MemoryStore) Suggestions() []models.CareerSuggestionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CareerSuggestionRecord(nil), s.suggestions...)
}

func (s *MemoryStore) Ping(ctx context.Context) error { return ctx.Err() }

func (s *MemoryStore) Close(ctx context.Context) error { return nil }
