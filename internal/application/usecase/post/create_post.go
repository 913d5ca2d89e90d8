package post

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devlinkhq/devlink/adapters/event"
	"github.com/devlinkhq/devlink/internal/domain/post"
	"github.com/devlinkhq/devlink/internal/domain/user"
	"github.com/devlinkhq/devlink/pkg/apperror"
	"github.com/devlinkhq/devlink/pkg/logger"
)

type CreatePostUseCase struct {
	postRepo    post.Repository
	userRepo    user.Repository
	kafkaClient event.Publisher
	logger      logger.Logger
}

func NewCreatePostUseCase(pRepo post.Repository, uRepo user.Repository, kClient event.Publisher, log logger.Logger) *CreatePostUseCase {
	return &CreatePostUseCase{
		postRepo:    pRepo,
		userRepo:    uRepo,
		kafkaClient: kClient,
		logger:      log,
	}
}

type CreatePostInput struct {
	UserID uuid.UUID
	Text   string
}

type CreatePostOutput struct {
	Post *post.Post
}

func (uc *CreatePostUseCase) Execute(ctx context.Context, input CreatePostInput) (*CreatePostOutput, error) {

	author, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, apperror.NewInternal("failed to load author", err)
	}

	p := &post.Post{
		ID:        uuid.New(),
		UserID:    author.ID,
		Text:      input.Text,
		Name:      author.Name,
		AvatarURL: author.AvatarURL,
		Likes:     []post.Like{},
		Comments:  []post.Comment{},
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.postRepo.Save(ctx, p); err != nil {
		return nil, apperror.NewInternal("failed to save post", err)
	}

	go func() {
		err := uc.kafkaClient.PublishPostEvent(context.Background(), event.PostEventPayload{
			EventType: event.PostEventTypeCreated,
			PostID:    p.ID,
			UserID:    p.UserID,
		})
		if err != nil {
			uc.logger.Error("background publish of post created event failed", err,
				zap.String("post_id", p.ID.String()))
		}
	}()

	return &CreatePostOutput{Post: p}, nil
}
