package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Callymags/task-manager-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCategoryRepository is a MongoDB implementation of CategoryRepository
type MongoCategoryRepository struct {
	col *mongo.Collection
}

// NewCategoryRepository creates a new CategoryRepository backed by the
// categories collection
func NewCategoryRepository(db *mongo.Database) CategoryRepository {
	return &MongoCategoryRepository{col: db.Collection("categories")}
}

// Insert creates a new category and returns its store-assigned id
func (r *MongoCategoryRepository) Insert(ctx context.Context, category *models.Category) (string, error) {
	res, err := r.col.InsertOne(ctx, category)
	if err != nil {
		return "", fmt.Errorf("failed to insert category: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	category.ID = oid
	return oid.Hex(), nil
}

// FindByID finds a category by its hex id
func (r *MongoCategoryRepository) FindByID(ctx context.Context, id string) (*models.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var category models.Category
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&category); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return &category, nil
}

// FindAll retrieves every category sorted by category_name ascending
func (r *MongoCategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "category_name", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer cur.Close(ctx)

	categories := []models.Category{}
	if err := cur.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}

// Replace overwrites the category with the given id. Replacing a missing
// category is a no-op.
func (r *MongoCategoryRepository) Replace(ctx context.Context, id string, category *models.Category) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	category.ID = oid
	if _, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, category); err != nil {
		return fmt.Errorf("failed to replace category: %w", err)
	}
	return nil
}

// Delete removes the category with the given id. Deleting a missing category
// is a no-op.
func (r *MongoCategoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
