package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/justsurfingit/career-path-advisor/internal/models"
)

// MongoStore writes to the user_profiles and career_suggestions collections.
// Document ids are ObjectIDs generated by the driver.
type MongoStore struct {
	client      *mongo.Client
	profiles    *mongo.Collection
	suggestions *mongo.Collection
}

// NewMongoStore connects lazily; no server round trip happens until the first operation.
func NewMongoStore(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	store := NewMongoStoreFromDatabase(client.Database(dbName))
	store.client = client
	return store, nil
}

// NewMongoStoreFromDatabase wraps an existing database handle. Close is a no-op on the result.
func NewMongoStoreFromDatabase(db *mongo.Database) *MongoStore {
	return &MongoStore{
		profiles:    db.Collection(models.UserProfilesCollection),
		suggestions: db.Collection(models.CareerSuggestionsCollection),
	}
}

func (s *MongoStore) InsertProfile(ctx context.Context, profile *models.ProfileSubmission) (string, error) {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}
	res, err := s.profiles.InsertOne(ctx, profile)
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", models.UserProfilesCollection, err)
	}
	profile.ID = insertedID(res.InsertedID)
	return profile.ID, nil
}

func (s *MongoStore) InsertSuggestion(ctx context.Context, record *models.CareerSuggestionRecord) (string, error) {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	// The back-reference is stored as an ObjectID when it parses as one.
	var ref any = record.UserProfileID
	if oid, err := primitive.ObjectIDFromHex(record.UserProfileID); err == nil {
		ref = oid
	}
	doc := bson.D{
		{Key: "suggestedJobRole", Value: record.SuggestedJobRole},
		{Key: "careerPath", Value: record.CareerPath},
		{Key: "certificationsRequired", Value: record.CertificationsRequired},
		{Key: "expectedSalary", Value: record.ExpectedSalary},
		{Key: "user_profile_id", Value: ref},
		{Key: "createdAt", Value: record.CreatedAt},
	}

	res, err := s.suggestions.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", models.CareerSuggestionsCollection, err)
	}
	record.ID = insertedID(res.InsertedID)
	return record.ID, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	if s.client == nil {
		return s.profiles.Database().Client().Ping(ctx, readpref.Primary())
	}
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

func insertedID(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
