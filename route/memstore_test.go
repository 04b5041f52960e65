package route

import (
	"antopolis/database"
	"antopolis/model"
	"context"
	"sync"

	"github.com/google/uuid"
)

// memStore is an in-memory database.Store with the same error contract as the real drivers.
type memStore struct {
	mu         sync.Mutex
	foodOrder  []string
	foodItems  map[string]model.FoodItem
	categories []model.Category
	err        error
}

func newMemStore() *memStore {
	return &memStore{foodItems: map[string]model.FoodItem{}}
}

func (s *memStore) InsertFoodItem(ctx context.Context, item *model.FoodItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	item.ID = uuid.NewString()
	s.foodItems[item.ID] = *item
	s.foodOrder = append(s.foodOrder, item.ID)
	return nil
}

func (s *memStore) InsertFoodItems(ctx context.Context, items []model.FoodItem) ([]string, error) {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if err := s.InsertFoodItem(ctx, &item); err != nil {
			return nil, err
		}
		ids = append(ids, item.ID)
	}
	return ids, nil
}

func (s *memStore) ListFoodItems(ctx context.Context) ([]model.FoodItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	items := make([]model.FoodItem, 0, len(s.foodOrder))
	for _, id := range s.foodOrder {
		if item, ok := s.foodItems[id]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *memStore) GetFoodItem(ctx context.Context, id string) (*model.FoodItem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, database.ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	item, ok := s.foodItems[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &item, nil
}

func (s *memStore) DeleteFoodItem(ctx context.Context, id string) (*model.FoodItem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, database.ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	item, ok := s.foodItems[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	delete(s.foodItems, id)
	return &item, nil
}

func (s *memStore) InsertCategory(ctx context.Context, category *model.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	for _, existing := range s.categories {
		if existing.Name == category.Name {
			return database.ErrDuplicate
		}
	}
	category.ID = uuid.NewString()
	s.categories = append(s.categories, *category)
	return nil
}

func (s *memStore) ListCategories(ctx context.Context) ([]model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return append([]model.Category{}, s.categories...), nil
}

func (s *memStore) Ping(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *memStore) Close(ctx context.Context) error { return nil }
