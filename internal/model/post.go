package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a blog post document in the MongoDB walkthrough.
type Post struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title    string             `bson:"title" json:"title"`
	Body     string             `bson:"body" json:"body"`
	Category string             `bson:"category" json:"category"`
	Likes    int                `bson:"likes" json:"likes"`
	Tags     []string           `bson:"tags" json:"tags"`
	Date     time.Time          `bson:"date" json:"date"`
}
