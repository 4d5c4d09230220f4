package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Callymags/task-manager-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTaskRepository is a MongoDB implementation of TaskRepository
type MongoTaskRepository struct {
	col *mongo.Collection
}

// NewTaskRepository creates a new TaskRepository backed by the tasks collection
func NewTaskRepository(db *mongo.Database) TaskRepository {
	return &MongoTaskRepository{col: db.Collection("tasks")}
}

// Insert creates a new task and returns its store-assigned id
func (r *MongoTaskRepository) Insert(ctx context.Context, task *models.Task) (string, error) {
	res, err := r.col.InsertOne(ctx, task)
	if err != nil {
		return "", fmt.Errorf("failed to insert task: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	task.ID = oid
	return oid.Hex(), nil
}

// FindByID finds a task by its hex id
func (r *MongoTaskRepository) FindByID(ctx context.Context, id string) (*models.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var task models.Task
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&task); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}

// FindAll retrieves every task, unordered
func (r *MongoTaskRepository) FindAll(ctx context.Context) ([]models.Task, error) {
	return r.find(ctx, bson.M{})
}

// FindByCreator retrieves the tasks created by a given username
func (r *MongoTaskRepository) FindByCreator(ctx context.Context, username string) ([]models.Task, error) {
	return r.find(ctx, bson.M{"created_by": username})
}

// Search runs a $text query over the indexed task fields. The query string is
// handed to the store as-is; matching is case-insensitive.
func (r *MongoTaskRepository) Search(ctx context.Context, query string) ([]models.Task, error) {
	return r.find(ctx, bson.M{"$text": bson.M{"$search": query}})
}

// Replace overwrites the task with the given id. Replacing a missing task is
// a no-op.
func (r *MongoTaskRepository) Replace(ctx context.Context, id string, task *models.Task) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	task.ID = oid
	if _, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, task); err != nil {
		return fmt.Errorf("failed to replace task: %w", err)
	}
	return nil
}

// Delete removes the task with the given id. Deleting a missing task is a
// no-op.
func (r *MongoTaskRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func (r *MongoTaskRepository) find(ctx context.Context, filter bson.M) ([]models.Task, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer cur.Close(ctx)

	tasks := []models.Task{}
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}
	return tasks, nil
}
