package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Comment lives inside its post document. Name and Avatar are a fresh copy
// of the author's profile taken when the comment is written, independent of
// the denormalized fields on the post itself.
type Comment struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	UserID    bson.ObjectID `json:"userId"    bson:"user_id"`
	Text      string        `json:"text"      bson:"text"`
	Name      string        `json:"name"      bson:"name"`
	Avatar    string        `json:"avatar"    bson:"avatar"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}
