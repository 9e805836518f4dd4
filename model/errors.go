package model

import "errors"

var (
	// ErrPostNotFound covers both an absent post and a malformed post id;
	// callers cannot tell the two apart.
	ErrPostNotFound = errors.New("post not found")

	// ErrCommentNotFound indicates the post exists but holds no comment
	// with the given id.
	ErrCommentNotFound = errors.New("comment not found")

	ErrUserNotFound = errors.New("user not found")

	// ErrNotAuthorized indicates the actor is not the resource's author.
	ErrNotAuthorized = errors.New("not authorized")

	ErrAlreadyLiked = errors.New("already liked this post")
	ErrNotLiked     = errors.New("post not yet liked")

	// ErrVersionConflict is returned by the post store when the aggregate
	// changed between load and save.
	ErrVersionConflict = errors.New("post version conflict")

	ErrEmailTaken = errors.New("email already registered")
)
