package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"postboard/internal/repository"
	"postboard/model"
)

func newTestService(t *testing.T) (*PostService, *repository.MemoryUserStore) {
	t.Helper()
	users := repository.NewMemoryUserStore()
	return NewPostService(repository.NewMemoryPostStore(), users), users
}

func seedUser(t *testing.T, users *repository.MemoryUserStore, name, avatar string) bson.ObjectID {
	t.Helper()
	u := &model.User{
		ID:        bson.NewObjectID(),
		Name:      name,
		Email:     name + "@example.com",
		Avatar:    avatar,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, users.Insert(context.Background(), u))
	return u.ID
}

func TestCreateAndGetRoundtrip(t *testing.T) {
	svc, users := newTestService(t)
	ctx := context.Background()
	actor := seedUser(t, users, "Alice", "alice.png")

	post, err := svc.Create(ctx, actor, "hello world")
	require.NoError(t, err)

	got, err := svc.Get(ctx, post.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "hello world", got.Text)
	assert.Equal(t, actor, got.UserID)
	// profile fields were copied at creation time
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "alice.png", got.Avatar)
	assert.Empty(t, got.Likes)
	assert.Empty(t, got.Comments)
}

func TestCreateValidation(t *testing.T) {
	svc, users := newTestService(t)
	actor := seedUser(t, users, "Alice", "alice.png")

	_, err := svc.Create(context.Background(), actor, "")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Errors, 1)
	assert.Equal(t, "text", verr.Errors[0].Field)
}

func TestCreateUnknownActor(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), bson.NewObjectID(), "hello")
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestGetNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		idHex string
	}{
		{name: "absent id", idHex: bson.NewObjectID().Hex()},
		{name: "malformed id", idHex: "not-a-hex-id"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Get(ctx, tc.idHex)
			assert.ErrorIs(t, err, model.ErrPostNotFound)
		})
	}
}

func TestListNewestFirst(t *testing.T) {
	users := repository.NewMemoryUserStore()
	posts := repository.NewMemoryPostStore()
	svc := NewPostService(posts, users)
	ctx := context.Background()
	actor := seedUser(t, users, "Alice", "alice.png")

	// insert with explicit timestamps so ordering is deterministic
	base := time.Now().UTC()
	for i, text := range []string{"oldest", "middle", "newest"} {
		p := model.NewPost(actor, text, "Alice", "alice.png", base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, posts.Insert(ctx, p))
	}

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "newest", all[0].Text)
	assert.Equal(t, "oldest", all[2].Text)
}

func TestDeletePost(t *testing.T) {
	svc, users := newTestService(t)
	ctx := context.Background()
	author := seedUser(t, users, "Alice", "alice.png")
	stranger := seedUser(t, users, "Bob", "bob.png")

	post, err := svc.Create(ctx, author, "mine")
	require.NoError(t, err)

	// a non-author cannot delete, and the post stays fully intact
	err = svc.Delete(ctx, post.ID.Hex(), stranger)
	assert.ErrorIs(t, err, model.ErrNotAuthorized)

	got, err := svc.Get(ctx, post.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "mine", got.Text)

	require.NoError(t, svc.Delete(ctx, post.ID.Hex(), author))

	_, err = svc.Get(ctx, post.ID.Hex())
	assert.ErrorIs(t, err, model.ErrPostNotFound)

	err = svc.Delete(ctx, post.ID.Hex(), author)
	assert.ErrorIs(t, err, model.ErrPostNotFound)
}

// End-to-end walk over one aggregate: create, like, duplicate like, unlike,
// comment by a second user, comment delete by the wrong user.
func TestInteractionScenario(t *testing.T) {
	svc, users := newTestService(t)
	ctx := context.Background()
	u1 := seedUser(t, users, "U1", "u1.png")
	u2 := seedUser(t, users, "U2", "u2.png")

	post, err := svc.Create(ctx, u1, "hello")
	require.NoError(t, err)
	id := post.ID.Hex()

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Text)
	assert.Empty(t, got.Likes)
	assert.Empty(t, got.Comments)

	likes, err := svc.Like(ctx, id, u1)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, u1, likes[0].UserID)

	_, err = svc.Like(ctx, id, u1)
	assert.ErrorIs(t, err, model.ErrAlreadyLiked)
	got, err = svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Len(t, got.Likes, 1)

	likes, err = svc.Unlike(ctx, id, u1)
	require.NoError(t, err)
	assert.Empty(t, likes)

	comments, err := svc.AddComment(ctx, id, u2, "nice")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "nice", comments[0].Text)
	assert.Equal(t, u2, comments[0].UserID)

	_, err = svc.DeleteComment(ctx, id, comments[0].ID.Hex(), u1)
	assert.ErrorIs(t, err, model.ErrNotAuthorized)
}
