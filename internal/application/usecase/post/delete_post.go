package post

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devlinkhq/devlink/adapters/event"
	"github.com/devlinkhq/devlink/internal/domain/post"
	"github.com/devlinkhq/devlink/pkg/logger"
)

type DeletePostUseCase struct {
	postRepo    post.Repository
	kafkaClient event.Publisher
	logger      logger.Logger
}

func NewDeletePostUseCase(repo post.Repository, kClient event.Publisher, log logger.Logger) *DeletePostUseCase {
	return &DeletePostUseCase{
		postRepo:    repo,
		kafkaClient: kClient,
		logger:      log,
	}
}

type DeletePostInput struct {
	PostID uuid.UUID
	UserID uuid.UUID
}

func (uc *DeletePostUseCase) Execute(ctx context.Context, input DeletePostInput) error {

	p, err := uc.postRepo.FindByID(ctx, input.PostID)
	if err != nil {
		return err
	}

	if p.UserID != input.UserID {
		return post.ErrNotOwner
	}

	if err := uc.postRepo.Delete(ctx, input.PostID); err != nil {
		return err
	}

	go func() {
		err := uc.kafkaClient.PublishPostEvent(context.Background(), event.PostEventPayload{
			EventType: event.PostEventTypeDeleted,
			PostID:    input.PostID,
			UserID:    input.UserID,
		})
		if err != nil {
			uc.logger.Error("background publish of post deleted event failed", err,
				zap.String("post_id", input.PostID.String()))
		}
	}()

	return nil
}
