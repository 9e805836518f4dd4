package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"postboard/model"
)

// AddComment prepends a new comment carrying a fresh copy of the actor's
// profile fields, looked up at comment time rather than taken from the post.
// Returns the updated comments collection.
func (s *PostService) AddComment(ctx context.Context, idHex string, actor bson.ObjectID, text string) ([]model.Comment, error) {
	if text == "" {
		return nil, fieldRequired("text")
	}
	user, err := s.Users.FindByID(ctx, actor)
	if err != nil {
		return nil, err
	}
	comment := model.Comment{
		ID:        bson.NewObjectID(),
		UserID:    actor,
		Text:      text,
		Name:      user.Name,
		Avatar:    user.Avatar,
		CreatedAt: time.Now().UTC(),
	}
	post, err := s.update(ctx, idHex, func(p *model.Post) error {
		p.AddComment(comment)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return post.Comments, nil
}

// DeleteComment removes the matching comment if the actor wrote it and
// returns the whole updated post. A malformed comment id reads as a missing
// comment, same conflation as for posts.
func (s *PostService) DeleteComment(ctx context.Context, idHex, commentHex string, actor bson.ObjectID) (*model.Post, error) {
	commentID, err := bson.ObjectIDFromHex(commentHex)
	if err != nil {
		return nil, model.ErrCommentNotFound
	}
	return s.update(ctx, idHex, func(p *model.Post) error {
		return p.RemoveComment(commentID, actor)
	})
}
