package database

import (
	"antopolis/model"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// PostgresStore is the relational alternative to MongoStore. Ids are UUIDs generated by
// the application so both drivers hand out opaque string identifiers.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	if err := db.WithContext(ctx).AutoMigrate(&model.FoodItem{}, &model.Category{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func parseUUID(id string) (string, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return "", ErrInvalidID
	}
	return uid.String(), nil
}

func (s *PostgresStore) InsertFoodItem(ctx context.Context, item *model.FoodItem) error {
	item.ID = uuid.NewString()
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		item.ID = ""
		return fmt.Errorf("insert food item: %w", err)
	}
	return nil
}

func (s *PostgresStore) InsertFoodItems(ctx context.Context, items []model.FoodItem) ([]string, error) {
	rows := make([]model.FoodItem, len(items))
	ids := make([]string, len(items))
	for i, item := range items {
		item.ID = uuid.NewString()
		rows[i] = item
		ids[i] = item.ID
	}
	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, fmt.Errorf("insert food items: %w", err)
	}
	return ids, nil
}

func (s *PostgresStore) ListFoodItems(ctx context.Context) ([]model.FoodItem, error) {
	items := make([]model.FoodItem, 0)
	if err := s.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("find food items: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) GetFoodItem(ctx context.Context, id string) (*model.FoodItem, error) {
	uid, err := parseUUID(id)
	if err != nil {
		return nil, err
	}
	var item model.FoodItem
	err = s.db.WithContext(ctx).First(&item, "id = ?", uid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find food item: %w", err)
	}
	return &item, nil
}

func (s *PostgresStore) DeleteFoodItem(ctx context.Context, id string) (*model.FoodItem, error) {
	uid, err := parseUUID(id)
	if err != nil {
		return nil, err
	}
	var item model.FoodItem
	res := s.db.WithContext(ctx).Clauses(clause.Returning{}).Where("id = ?", uid).Delete(&item)
	if res.Error != nil {
		return nil, fmt.Errorf("delete food item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &item, nil
}

func (s *PostgresStore) InsertCategory(ctx context.Context, category *model.Category) error {
	category.ID = uuid.NewString()
	err := s.db.WithContext(ctx).Create(category).Error
	if err == nil {
		return nil
	}
	category.ID = ""
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return fmt.Errorf("insert category: %w", err)
}

func (s *PostgresStore) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories := make([]model.Category, 0)
	if err := s.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	return categories, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *PostgresStore) Close(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
