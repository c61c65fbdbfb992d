package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the store named by url's scheme:
// mongodb:// and mongodb+srv:// use MongoDB, postgres:// and postgresql:// use Postgres,
// sqlite://<path> uses an embedded SQLite file and memory:// keeps everything in process.
// SQL backends are migrated on connect.
func Connect(ctx context.Context, url, dbName string, log logrus.FieldLogger) (Store, error) {
	scheme, rest, _ := strings.Cut(url, "://")
	scheme = strings.ToLower(scheme)

	switch scheme {
	case "mongodb", "mongodb+srv":
		store, err := NewMongoStore(ctx, url, dbName)
		if err != nil {
			return nil, err
		}
		log.WithField("backend", "mongodb").WithField("database", dbName).Info("document store configured")
		return store, nil
	case "postgres", "postgresql":
		return openGorm(postgres.Open(url), "postgres", log)
	case "sqlite":
		return openGorm(sqlite.Open(rest), "sqlite", log)
	case "memory":
		log.WithField("backend", "memory").Warn("document store is in-memory; data is lost on exit")
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: scheme %q", ErrUnsupportedURL, scheme)
	}
}

func openGorm(dialector gorm.Dialector, backend string, log logrus.FieldLogger) (Store, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", backend, err)
	}

	store := NewGormStore(db)
	log.WithField("backend", backend).Info("running migrations")
	if err := store.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate %s: %w", backend, err)
	}
	return store, nil
}
