package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task is a single tracked item. CategoryName references a Category by name,
// not by id; renaming or deleting a category does not touch tasks that point
// at the old name. DueDate is kept as the submitted string, unvalidated.
type Task struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CategoryName    string             `bson:"category_name" json:"category_name"`
	TaskName        string             `bson:"task_name" json:"task_name"`
	TaskDescription string             `bson:"task_description" json:"task_description"`
	IsUrgent        bool               `bson:"is_urgent" json:"is_urgent"`
	DueDate         string             `bson:"due_date" json:"due_date"`
	CreatedBy       string             `bson:"created_by" json:"created_by"`
}
