package post

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrAlreadyLiked    = errors.New("post already liked")
	ErrNotYetLiked     = errors.New("post has not yet been liked")
	ErrCommentNotFound = errors.New("comment does not exist")
	ErrNotOwner        = errors.New("user not authorized")
)

type Like struct {
	UserID uuid.UUID `json:"user"`
}

type Comment struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar"`
	CreatedAt time.Time `json:"date"`
}

// Post embeds its likes and comments; the author's name and avatar are
// snapshotted at creation time so reads need no join.
type Post struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar"`
	Likes     []Like    `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"date"`
}

func (p *Post) AddLike(userID uuid.UUID) error {
	for _, l := range p.Likes {
		if l.UserID == userID {
			return ErrAlreadyLiked
		}
	}
	p.Likes = append(p.Likes, Like{UserID: userID})
	return nil
}

func (p *Post) RemoveLike(userID uuid.UUID) error {
	for i, l := range p.Likes {
		if l.UserID == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return nil
		}
	}
	return ErrNotYetLiked
}

// AddComment inserts at the head, newest first.
func (p *Post) AddComment(c Comment) {
	p.Comments = append([]Comment{c}, p.Comments...)
}

// RemoveComment deletes commentID if it exists and belongs to userID.
func (p *Post) RemoveComment(commentID, userID uuid.UUID) error {
	for i, c := range p.Comments {
		if c.ID == commentID {
			if c.UserID != userID {
				return ErrNotOwner
			}
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return nil
		}
	}
	return ErrCommentNotFound
}

type Repository interface {
	Save(ctx context.Context, p *Post) error
	Update(ctx context.Context, p *Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*Post, error)
	ListAll(ctx context.Context) ([]*Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
