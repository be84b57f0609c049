package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/HailNail/MindArc/internal/domain/entities"
	"github.com/HailNail/MindArc/internal/domain/repositories"
)

type CategoryRepositoryMongo struct {
	collection *mongo.Collection
}

func NewCategoryRepositoryMongo(ctx context.Context, db *mongo.Database) (*CategoryRepositoryMongo, error) {
	collection := db.Collection("categories")

	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "category_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create category indexes: %w", err)
	}

	return &CategoryRepositoryMongo{collection: collection}, nil
}

func (r *CategoryRepositoryMongo) Create(ctx context.Context, category *entities.Category) error {
	_, err := r.collection.InsertOne(ctx, toCategoryDocument(category))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repositories.ErrAlreadyExists
		}
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepositoryMongo) GetByID(ctx context.Context, id string) (*entities.Category, error) {
	return r.findOne(ctx, bson.M{"category_id": id})
}

func (r *CategoryRepositoryMongo) GetByName(ctx context.Context, name string) (*entities.Category, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *CategoryRepositoryMongo) findOne(ctx context.Context, filter bson.M) (*entities.Category, error) {
	var doc CategoryDocument
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return toCategoryEntity(&doc), nil
}

func (r *CategoryRepositoryMongo) Update(ctx context.Context, category *entities.Category) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"category_id": category.ID},
		bson.M{"$set": bson.M{"name": category.Name}},
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repositories.ErrAlreadyExists
		}
		return fmt.Errorf("failed to update category: %w", err)
	}
	if result.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *CategoryRepositoryMongo) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"category_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if result.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *CategoryRepositoryMongo) List(ctx context.Context) ([]entities.Category, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []entities.Category
	for cursor.Next(ctx) {
		var doc CategoryDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode category: %w", err)
		}
		categories = append(categories, *toCategoryEntity(&doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	return categories, nil
}
