package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"postboard/model"
)

func TestAddComment(t *testing.T) {
	svc, users := newTestService(t)
	ctx := context.Background()
	author := seedUser(t, users, "Alice", "alice.png")
	commenter := seedUser(t, users, "Bob", "bob.png")

	post, err := svc.Create(ctx, author, "commentable")
	require.NoError(t, err)
	id := post.ID.Hex()

	comments, err := svc.AddComment(ctx, id, commenter, "first")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	// the commenter's profile, not the post author's, is denormalized in
	assert.Equal(t, "Bob", comments[0].Name)
	assert.Equal(t, "bob.png", comments[0].Avatar)
	assert.Equal(t, commenter, comments[0].UserID)

	comments, err = svc.AddComment(ctx, id, author, "second")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "second", comments[0].Text)
	assert.Equal(t, "first", comments[1].Text)
}

func TestAddCommentValidation(t *testing.T) {
	svc, users := newTestService(t)
	ctx := context.Background()
	author := seedUser(t, users, "Alice", "alice.png")

	post, err := svc.Create(ctx, author, "commentable")
	require.NoError(t, err)

	_, err = svc.AddComment(ctx, post.ID.Hex(), author, "")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "text", verr.Errors[0].Field)

	_, err = svc.AddComment(ctx, bson.NewObjectID().Hex(), author, "hello")
	assert.ErrorIs(t, err, model.ErrPostNotFound)
}

func TestDeleteComment(t *testing.T) {
	svc, users := newTestService(t)
	ctx := context.Background()
	author := seedUser(t, users, "Alice", "alice.png")
	commenter := seedUser(t, users, "Bob", "bob.png")

	post, err := svc.Create(ctx, author, "commentable")
	require.NoError(t, err)
	id := post.ID.Hex()

	comments, err := svc.AddComment(ctx, id, commenter, "keep")
	require.NoError(t, err)
	keep := comments[0]
	comments, err = svc.AddComment(ctx, id, commenter, "remove")
	require.NoError(t, err)
	remove := comments[0]

	// non-author rejection leaves the collection untouched
	_, err = svc.DeleteComment(ctx, id, remove.ID.Hex(), author)
	assert.ErrorIs(t, err, model.ErrNotAuthorized)
	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Len(t, got.Comments, 2)

	// unknown and malformed comment ids read the same
	_, err = svc.DeleteComment(ctx, id, bson.NewObjectID().Hex(), commenter)
	assert.ErrorIs(t, err, model.ErrCommentNotFound)
	_, err = svc.DeleteComment(ctx, id, "garbage", commenter)
	assert.ErrorIs(t, err, model.ErrCommentNotFound)

	updated, err := svc.DeleteComment(ctx, id, remove.ID.Hex(), commenter)
	require.NoError(t, err)
	require.Len(t, updated.Comments, 1)
	assert.Equal(t, keep.ID, updated.Comments[0].ID)

	_, err = svc.DeleteComment(ctx, bson.NewObjectID().Hex(), keep.ID.Hex(), commenter)
	assert.ErrorIs(t, err, model.ErrPostNotFound)
}
