package post

import (
	"context"

	"github.com/google/uuid"

	"github.com/devlinkhq/devlink/internal/domain/post"
	"github.com/devlinkhq/devlink/pkg/apperror"
)

type ListPostsUseCase struct {
	postRepo post.Repository
}

func NewListPostsUseCase(repo post.Repository) *ListPostsUseCase {
	return &ListPostsUseCase{postRepo: repo}
}

// Execute returns every post, newest first.
func (uc *ListPostsUseCase) Execute(ctx context.Context) ([]*post.Post, error) {
	posts, err := uc.postRepo.ListAll(ctx)
	if err != nil {
		return nil, apperror.NewInternal("failed to list posts", err)
	}
	return posts, nil
}

type GetPostUseCase struct {
	postRepo post.Repository
}

func NewGetPostUseCase(repo post.Repository) *GetPostUseCase {
	return &GetPostUseCase{postRepo: repo}
}

func (uc *GetPostUseCase) Execute(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	return uc.postRepo.FindByID(ctx, id)
}
