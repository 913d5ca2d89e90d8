package post

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/devlinkhq/devlink/internal/domain/post"
	"github.com/devlinkhq/devlink/internal/domain/user"
	"github.com/devlinkhq/devlink/pkg/apperror"
)

type CommentPostUseCase struct {
	postRepo post.Repository
	userRepo user.Repository
}

func NewCommentPostUseCase(pRepo post.Repository, uRepo user.Repository) *CommentPostUseCase {
	return &CommentPostUseCase{postRepo: pRepo, userRepo: uRepo}
}

type AddCommentInput struct {
	PostID uuid.UUID
	UserID uuid.UUID
	Text   string
}

// ExecuteAdd prepends the comment so the newest one is read first.
func (uc *CommentPostUseCase) ExecuteAdd(ctx context.Context, input AddCommentInput) (*post.Post, error) {
	p, err := uc.postRepo.FindByID(ctx, input.PostID)
	if err != nil {
		return nil, err
	}

	author, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, apperror.NewInternal("failed to load comment author", err)
	}

	p.AddComment(post.Comment{
		ID:        uuid.New(),
		UserID:    author.ID,
		Text:      input.Text,
		Name:      author.Name,
		AvatarURL: author.AvatarURL,
		CreatedAt: time.Now().UTC(),
	})

	if err := uc.postRepo.Update(ctx, p); err != nil {
		return nil, apperror.NewInternal("failed to save comment", err)
	}
	return p, nil
}

type RemoveCommentInput struct {
	PostID    uuid.UUID
	CommentID uuid.UUID
	UserID    uuid.UUID
}

func (uc *CommentPostUseCase) ExecuteRemove(ctx context.Context, input RemoveCommentInput) (*post.Post, error) {
	p, err := uc.postRepo.FindByID(ctx, input.PostID)
	if err != nil {
		return nil, err
	}

	if err := p.RemoveComment(input.CommentID, input.UserID); err != nil {
		return nil, err
	}

	if err := uc.postRepo.Update(ctx, p); err != nil {
		return nil, apperror.NewInternal("failed to remove comment", err)
	}
	return p, nil
}
