package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category groups tasks by name. Names are not required to be unique or
// non-empty; tasks reference the name directly.
type Category struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CategoryName string             `bson:"category_name" json:"category_name"`
}
