package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"postboard/dto"
	"postboard/internal/repository"
	"postboard/model"
)

// ValidationError carries field-level detail for bad request bodies.
type ValidationError struct {
	Errors []dto.FieldError
}

func (e *ValidationError) Error() string { return "validation failed" }

func fieldRequired(field string) *ValidationError {
	return &ValidationError{Errors: []dto.FieldError{
		{Field: field, Message: field + " is required"},
	}}
}

// PostService owns every mutation of the post aggregate. Stores are passed
// in, never reached through globals, so tests run against in-memory fakes.
type PostService struct {
	Posts repository.PostStore
	Users repository.UserStore
}

func NewPostService(posts repository.PostStore, users repository.UserStore) *PostService {
	return &PostService{Posts: posts, Users: users}
}

// Create denormalizes the actor's current name and avatar into the new post.
// Those copies go stale on purpose when the profile changes later.
func (s *PostService) Create(ctx context.Context, actor bson.ObjectID, text string) (*model.Post, error) {
	if text == "" {
		return nil, fieldRequired("text")
	}
	user, err := s.Users.FindByID(ctx, actor)
	if err != nil {
		return nil, err
	}
	post := model.NewPost(actor, text, user.Name, user.Avatar, time.Now().UTC())
	if err := s.Posts.Insert(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) List(ctx context.Context) ([]model.Post, error) {
	return s.Posts.FindAllNewestFirst(ctx)
}

// Get treats a malformed id exactly like an absent one.
func (s *PostService) Get(ctx context.Context, idHex string) (*model.Post, error) {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, model.ErrPostNotFound
	}
	return s.Posts.FindByID(ctx, id)
}

// Delete removes the post permanently. Only the author may delete.
func (s *PostService) Delete(ctx context.Context, idHex string, actor bson.ObjectID) error {
	post, err := s.Get(ctx, idHex)
	if err != nil {
		return err
	}
	if post.UserID != actor {
		return model.ErrNotAuthorized
	}
	return s.Posts.Delete(ctx, post.ID)
}

// update runs one load-mutate-save cycle against a single aggregate. If the
// save loses a version race the cycle is reapplied once from a fresh load
// before the conflict surfaces.
func (s *PostService) update(ctx context.Context, idHex string, mutate func(*model.Post) error) (*model.Post, error) {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, model.ErrPostNotFound
	}
	for attempt := 0; ; attempt++ {
		post, err := s.Posts.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := mutate(post); err != nil {
			return nil, err
		}
		err = s.Posts.Replace(ctx, post)
		if err == nil {
			return post, nil
		}
		if !errors.Is(err, model.ErrVersionConflict) || attempt > 0 {
			return nil, err
		}
	}
}
