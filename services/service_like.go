package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"postboard/model"
)

// Like moves the actor from not-liked to liked on the post. Liking twice is
// an error, not a no-op. Returns the updated likes collection.
func (s *PostService) Like(ctx context.Context, idHex string, actor bson.ObjectID) ([]model.Like, error) {
	post, err := s.update(ctx, idHex, func(p *model.Post) error {
		_, err := p.AddLike(actor, time.Now().UTC())
		return err
	})
	if err != nil {
		return nil, err
	}
	return post.Likes, nil
}

// Unlike removes the actor's like, failing when there is none.
func (s *PostService) Unlike(ctx context.Context, idHex string, actor bson.ObjectID) ([]model.Like, error) {
	post, err := s.update(ctx, idHex, func(p *model.Post) error {
		return p.RemoveLike(actor)
	})
	if err != nil {
		return nil, err
	}
	return post.Likes, nil
}
