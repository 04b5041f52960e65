package database

import (
	"antopolis/model"
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	foodItemCollection = "foodItem"
	categoryCollection = "category"
)

type foodItemDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FoodName  string             `bson:"foodName"`
	Category  string             `bson:"category"`
	ImagePath string             `bson:"imagePath,omitempty"`
}

func (d foodItemDocument) model() model.FoodItem {
	return model.FoodItem{
		ID:        d.ID.Hex(),
		FoodName:  d.FoodName,
		Category:  d.Category,
		ImagePath: d.ImagePath,
	}
}

type categoryDocument struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"category"`
}

// MongoStore keeps food items and categories in two collections of one database.
type MongoStore struct {
	client     *mongo.Client
	foodItems  *mongo.Collection
	categories *mongo.Collection
}

func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping: %w", err)
	}

	db := client.Database(database)
	s := &MongoStore{
		client:     client,
		foodItems:  db.Collection(foodItemCollection),
		categories: db.Collection(categoryCollection),
	}

	// Category names are unique; the index makes the server reject duplicates.
	_, err = s.categories.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "category", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("category_unique"),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("create category index: %w", err)
	}
	return s, nil
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

func (s *MongoStore) InsertFoodItem(ctx context.Context, item *model.FoodItem) error {
	doc := foodItemDocument{
		FoodName:  item.FoodName,
		Category:  item.Category,
		ImagePath: item.ImagePath,
	}
	res, err := s.foodItems.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert food item: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid.Hex()
	}
	return nil
}

func (s *MongoStore) InsertFoodItems(ctx context.Context, items []model.FoodItem) ([]string, error) {
	docs := make([]interface{}, 0, len(items))
	for _, item := range items {
		docs = append(docs, foodItemDocument{
			FoodName:  item.FoodName,
			Category:  item.Category,
			ImagePath: item.ImagePath,
		})
	}
	res, err := s.foodItems.InsertMany(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("insert food items: %w", err)
	}
	ids := make([]string, 0, len(res.InsertedIDs))
	for _, raw := range res.InsertedIDs {
		if oid, ok := raw.(primitive.ObjectID); ok {
			ids = append(ids, oid.Hex())
		}
	}
	return ids, nil
}

func (s *MongoStore) ListFoodItems(ctx context.Context) ([]model.FoodItem, error) {
	cursor, err := s.foodItems.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find food items: %w", err)
	}
	var docs []foodItemDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode food items: %w", err)
	}
	items := make([]model.FoodItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.model())
	}
	return items, nil
}

func (s *MongoStore) GetFoodItem(ctx context.Context, id string) (*model.FoodItem, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	var doc foodItemDocument
	err = s.foodItems.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find food item: %w", err)
	}
	item := doc.model()
	return &item, nil
}

func (s *MongoStore) DeleteFoodItem(ctx context.Context, id string) (*model.FoodItem, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	var doc foodItemDocument
	err = s.foodItems.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("delete food item: %w", err)
	}
	item := doc.model()
	return &item, nil
}

func (s *MongoStore) InsertCategory(ctx context.Context, category *model.Category) error {
	res, err := s.categories.InsertOne(ctx, categoryDocument{Name: category.Name})
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		category.ID = oid.Hex()
	}
	return nil
}

func (s *MongoStore) ListCategories(ctx context.Context) ([]model.Category, error) {
	cursor, err := s.categories.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	var docs []categoryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	categories := make([]model.Category, 0, len(docs))
	for _, d := range docs {
		categories = append(categories, model.Category{ID: d.ID.Hex(), Name: d.Name})
	}
	return categories, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
