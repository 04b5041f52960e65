package database

import (
	"antopolis/model"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseObjectID(t *testing.T) {
	oid := primitive.NewObjectID()

	got, err := parseObjectID(oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid, got)

	for _, bad := range []string{"", "123", "not-an-id", "zzzzzzzzzzzzzzzzzzzzzzzz", uuid.NewString()} {
		_, err := parseObjectID(bad)
		assert.ErrorIs(t, err, ErrInvalidID, bad)
	}
}

func TestParseUUID(t *testing.T) {
	id := uuid.NewString()

	got, err := parseUUID(id)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	for _, bad := range []string{"", "123", primitive.NewObjectID().Hex()} {
		_, err := parseUUID(bad)
		assert.ErrorIs(t, err, ErrInvalidID, bad)
	}
}

// testStoreContract exercises the behaviour every Store driver must share. missingID
// returns a well-formed id that matches no record.
func testStoreContract(t *testing.T, s Store, missingID func() string) {
	ctx := context.Background()

	require.NoError(t, s.Ping(ctx))

	t.Run("empty collections list as empty slices", func(t *testing.T) {
		items, err := s.ListFoodItems(ctx)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)

		categories, err := s.ListCategories(ctx)
		require.NoError(t, err)
		assert.NotNil(t, categories)
		assert.Empty(t, categories)
	})

	var burger model.FoodItem
	t.Run("insert then get", func(t *testing.T) {
		burger = model.FoodItem{FoodName: "Burger", Category: "Fast Food", ImagePath: "food-1.png"}
		require.NoError(t, s.InsertFoodItem(ctx, &burger))
		require.NotEmpty(t, burger.ID)

		got, err := s.GetFoodItem(ctx, burger.ID)
		require.NoError(t, err)
		assert.Equal(t, burger, *got)
	})

	t.Run("insert many", func(t *testing.T) {
		ids, err := s.InsertFoodItems(ctx, []model.FoodItem{
			{FoodName: "Tea", Category: "Drinks"},
			{FoodName: "Soup", Category: "Starters"},
		})
		require.NoError(t, err)
		assert.Len(t, ids, 2)

		items, err := s.ListFoodItems(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})

	t.Run("malformed and missing ids", func(t *testing.T) {
		_, err := s.GetFoodItem(ctx, "not-an-id")
		assert.ErrorIs(t, err, ErrInvalidID)
		_, err = s.DeleteFoodItem(ctx, "not-an-id")
		assert.ErrorIs(t, err, ErrInvalidID)

		_, err = s.GetFoodItem(ctx, missingID())
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = s.DeleteFoodItem(ctx, missingID())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete returns the removed item once", func(t *testing.T) {
		deleted, err := s.DeleteFoodItem(ctx, burger.ID)
		require.NoError(t, err)
		assert.Equal(t, burger, *deleted)

		_, err = s.DeleteFoodItem(ctx, burger.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = s.GetFoodItem(ctx, burger.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("category names are unique", func(t *testing.T) {
		snacks := model.Category{Name: "Snacks"}
		require.NoError(t, s.InsertCategory(ctx, &snacks))
		assert.NotEmpty(t, snacks.ID)

		again := model.Category{Name: "Snacks"}
		assert.ErrorIs(t, s.InsertCategory(ctx, &again), ErrDuplicate)

		categories, err := s.ListCategories(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.Equal(t, snacks, categories[0])
	})
}
