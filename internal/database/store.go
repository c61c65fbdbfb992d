package database

import (
	"context"
	"errors"

	"github.com/justsurfingit/career-path-advisor/internal/models"
)

// ErrUnsupportedURL is returned by Connect for an unknown URL scheme.
var ErrUnsupportedURL = errors.New("unsupported database url")

// Store is the append-only document store behind the two collections.
// Implementations must be safe for concurrent use.
type Store interface {
	// InsertProfile stores a submission and returns its generated identifier.
	InsertProfile(ctx context.Context, profile *models.ProfileSubmission) (string, error)
	// InsertSuggestion stores a suggestion; record.UserProfileID must already be set.
	InsertSuggestion(ctx context.Context, record *models.CareerSuggestionRecord) (string, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
