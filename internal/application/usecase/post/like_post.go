package post

import (
	"context"

	"github.com/google/uuid"

	"github.com/devlinkhq/devlink/internal/domain/post"
	"github.com/devlinkhq/devlink/pkg/apperror"
)

type LikePostUseCase struct {
	postRepo post.Repository
}

func NewLikePostUseCase(repo post.Repository) *LikePostUseCase {
	return &LikePostUseCase{postRepo: repo}
}

type LikeInput struct {
	PostID uuid.UUID
	UserID uuid.UUID
}

// ExecuteLike records at most one like per user per post.
func (uc *LikePostUseCase) ExecuteLike(ctx context.Context, input LikeInput) (*post.Post, error) {
	p, err := uc.postRepo.FindByID(ctx, input.PostID)
	if err != nil {
		return nil, err
	}

	if err := p.AddLike(input.UserID); err != nil {
		return nil, err
	}

	if err := uc.postRepo.Update(ctx, p); err != nil {
		return nil, apperror.NewInternal("failed to save like", err)
	}
	return p, nil
}

func (uc *LikePostUseCase) ExecuteUnlike(ctx context.Context, input LikeInput) (*post.Post, error) {
	p, err := uc.postRepo.FindByID(ctx, input.PostID)
	if err != nil {
		return nil, err
	}

	if err := p.RemoveLike(input.UserID); err != nil {
		return nil, err
	}

	if err := uc.postRepo.Update(ctx, p); err != nil {
		return nil, apperror.NewInternal("failed to remove like", err)
	}
	return p, nil
}
