package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"postboard/model"
)

// PostStore loads and saves the whole post aggregate. Sub-collections are
// never patched independently: a mutation either replaces the full document
// or nothing.
type PostStore interface {
	Insert(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id bson.ObjectID) (*model.Post, error)
	FindAllNewestFirst(ctx context.Context) ([]model.Post, error)
	// Replace writes the aggregate back if its version still matches the
	// loaded one, bumping the version on success. Returns
	// model.ErrVersionConflict when another writer got there first.
	Replace(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id bson.ObjectID) error
}

type MongoPostStore struct {
	col *mongo.Collection
}

func NewMongoPostStore(db *mongo.Database) *MongoPostStore {
	return &MongoPostStore{col: db.Collection("posts")}
}

func (s *MongoPostStore) Insert(ctx context.Context, post *model.Post) error {
	_, err := s.col.InsertOne(ctx, post)
	return err
}

func (s *MongoPostStore) FindByID(ctx context.Context, id bson.ObjectID) (*model.Post, error) {
	var post model.Post
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *MongoPostStore) FindAllNewestFirst(ctx context.Context) ([]model.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []model.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *MongoPostStore) Replace(ctx context.Context, post *model.Post) error {
	filter := bson.M{"_id": post.ID, "version": post.Version}
	next := *post
	next.Version = post.Version + 1

	res, err := s.col.ReplaceOne(ctx, filter, next)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return model.ErrVersionConflict
	}
	post.Version = next.Version
	return nil
}

func (s *MongoPostStore) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return model.ErrPostNotFound
	}
	return nil
}
