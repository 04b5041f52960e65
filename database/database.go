package database

import (
	"antopolis/config"
	"antopolis/model"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidID = errors.New("invalid id format")
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// Store is the persistence boundary used by the HTTP handlers. Every method maps to a
// single database operation.
type Store interface {
	InsertFoodItem(ctx context.Context, item *model.FoodItem) error
	InsertFoodItems(ctx context.Context, items []model.FoodItem) ([]string, error)
	ListFoodItems(ctx context.Context) ([]model.FoodItem, error)
	GetFoodItem(ctx context.Context, id string) (*model.FoodItem, error)
	// DeleteFoodItem removes the item and returns it as it was before removal.
	DeleteFoodItem(ctx context.Context, id string) (*model.FoodItem, error)

	InsertCategory(ctx context.Context, category *model.Category) error
	ListCategories(ctx context.Context) ([]model.Category, error)

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// DB is the process-wide store, opened once by InitDatabase.
var DB Store

const connectTimeout = 10 * time.Second

func InitDatabase(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	var (
		store Store
		err   error
	)
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		store, err = NewPostgresStore(ctx, cfg.DatabaseDSN)
	default:
		store, err = NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
	}
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
	}

	DB = store
	log.Info().Str("driver", cfg.StoreDriver).Msg("Database connected")
	return nil
}

func CloseDatabase(ctx context.Context) error {
	if DB == nil {
		return nil
	}
	return DB.Close(ctx)
}
