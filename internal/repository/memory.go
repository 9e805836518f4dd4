package repository

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"postboard/model"
)

// In-memory stores implementing the same ports as the Mongo ones, used by
// unit tests. Documents are copied on the way in and out so callers never
// alias stored state, matching the driver's decode behavior.

type MemoryPostStore struct {
	mu    sync.Mutex
	posts map[bson.ObjectID]model.Post
}

func NewMemoryPostStore() *MemoryPostStore {
	return &MemoryPostStore{posts: make(map[bson.ObjectID]model.Post)}
}

func copyPost(p model.Post) model.Post {
	out := p
	out.Likes = append([]model.Like{}, p.Likes...)
	out.Comments = append([]model.Comment{}, p.Comments...)
	return out
}

func (s *MemoryPostStore) Insert(_ context.Context, post *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[post.ID] = copyPost(*post)
	return nil
}

func (s *MemoryPostStore) FindByID(_ context.Context, id bson.ObjectID) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return nil, model.ErrPostNotFound
	}
	out := copyPost(p)
	return &out, nil
}

func (s *MemoryPostStore) FindAllNewestFirst(_ context.Context) ([]model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	posts := make([]model.Post, 0, len(s.posts))
	for _, p := range s.posts {
		posts = append(posts, copyPost(p))
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (s *MemoryPostStore) Replace(_ context.Context, post *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.posts[post.ID]
	if !ok || stored.Version != post.Version {
		return model.ErrVersionConflict
	}
	post.Version++
	s.posts[post.ID] = copyPost(*post)
	return nil
}

func (s *MemoryPostStore) Delete(_ context.Context, id bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return model.ErrPostNotFound
	}
	delete(s.posts, id)
	return nil
}

type MemoryUserStore struct {
	mu    sync.Mutex
	users map[bson.ObjectID]model.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[bson.ObjectID]model.User)}
}

func (s *MemoryUserStore) Insert(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return model.ErrEmailTaken
		}
	}
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryUserStore) FindByID(_ context.Context, id bson.ObjectID) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	out := u
	return &out, nil
}

func (s *MemoryUserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, model.ErrUserNotFound
}
