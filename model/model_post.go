package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Post is the aggregate persisted as a single document: likes and comments
// live inside it, never in their own collections. Name and Avatar are the
// author's profile fields copied at creation time and not kept in sync with
// later profile edits.
type Post struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	UserID    bson.ObjectID `json:"userId"    bson:"user_id"`
	Text      string        `json:"text"      bson:"text"`
	Name      string        `json:"name"      bson:"name"`
	Avatar    string        `json:"avatar"    bson:"avatar"`
	Likes     []Like        `json:"likes"     bson:"likes"`
	Comments  []Comment     `json:"comments"  bson:"comments"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
	Version   int64         `json:"-"         bson:"version"`
}

type Like struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	UserID    bson.ObjectID `json:"userId"    bson:"user_id"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}

// NewPost builds a post owned by userID with empty like/comment collections.
func NewPost(userID bson.ObjectID, text, name, avatar string, now time.Time) *Post {
	return &Post{
		ID:        bson.NewObjectID(),
		UserID:    userID,
		Text:      text,
		Name:      name,
		Avatar:    avatar,
		Likes:     []Like{},
		Comments:  []Comment{},
		CreatedAt: now,
	}
}

// LikedBy reports whether userID already holds a like on the post. The
// collection is small, a linear scan is enough.
func (p *Post) LikedBy(userID bson.ObjectID) bool {
	for _, l := range p.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}

// AddLike prepends a like owned by userID. A second like by the same user is
// rejected with ErrAlreadyLiked, it is not a silent no-op.
func (p *Post) AddLike(userID bson.ObjectID, now time.Time) (Like, error) {
	if p.LikedBy(userID) {
		return Like{}, ErrAlreadyLiked
	}
	like := Like{ID: bson.NewObjectID(), UserID: userID, CreatedAt: now}
	p.Likes = append([]Like{like}, p.Likes...)
	return like, nil
}

// RemoveLike removes the unique like owned by userID, failing with
// ErrNotLiked if there is none.
func (p *Post) RemoveLike(userID bson.ObjectID) error {
	for i, l := range p.Likes {
		if l.UserID == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return nil
		}
	}
	return ErrNotLiked
}

// AddComment prepends the comment so the collection stays newest-first.
func (p *Post) AddComment(c Comment) {
	p.Comments = append([]Comment{c}, p.Comments...)
}

// RemoveComment removes the comment with the given id, matched by id
// equality rather than position. Only the comment's own author may remove
// it.
func (p *Post) RemoveComment(commentID, actorID bson.ObjectID) error {
	for i, c := range p.Comments {
		if c.ID == commentID {
			if c.UserID != actorID {
				return ErrNotAuthorized
			}
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return nil
		}
	}
	return ErrCommentNotFound
}
