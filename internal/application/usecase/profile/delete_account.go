package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devlinkhq/devlink/adapters/event"
	"github.com/devlinkhq/devlink/internal/domain/post"
	"github.com/devlinkhq/devlink/internal/domain/profile"
	"github.com/devlinkhq/devlink/internal/domain/user"
	"github.com/devlinkhq/devlink/pkg/logger"
)

type DeleteAccountUseCase struct {
	postRepo    post.Repository
	profileRepo profile.Repository
	userRepo    user.Repository
	kafkaClient event.Publisher
	cache       ListingCache
	logger      logger.Logger
}

func NewDeleteAccountUseCase(
	postRepo post.Repository,
	profileRepo profile.Repository,
	userRepo user.Repository,
	kafkaClient event.Publisher,
	cache ListingCache,
	log logger.Logger,
) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		postRepo:    postRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
		kafkaClient: kafkaClient,
		cache:       cache,
		logger:      log,
	}
}

type DeleteAccountInput struct {
	UserID uuid.UUID
}

// Execute removes the caller's posts, then profile, then user row, strictly
// in that order so no orphaned references survive a partial failure. There
// is no compensating rollback: a step that fails leaves the earlier steps
// applied, and the error names the step that broke.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {

	if err := uc.postRepo.DeleteByUser(ctx, input.UserID); err != nil {
		return fmt.Errorf("delete posts failed: %w", err)
	}

	if err := uc.profileRepo.Delete(ctx, input.UserID); err != nil && !errors.Is(err, profile.ErrProfileNotFound) {
		return fmt.Errorf("delete profile failed: %w", err)
	}

	if err := uc.userRepo.Delete(ctx, input.UserID); err != nil {
		return fmt.Errorf("delete user failed: %w", err)
	}

	uc.invalidateCache(ctx)

	go func() {
		err := uc.kafkaClient.PublishUserEvent(context.Background(), event.UserEventPayload{
			EventType: event.UserEventTypeDeleted,
			UserID:    input.UserID,
		})
		if err != nil {
			uc.logger.Error("background publish of user deletion event failed", err,
				zap.String("user_id", input.UserID.String()))
		}
	}()

	return nil
}

func (uc *DeleteAccountUseCase) invalidateCache(ctx context.Context) {
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warn("profile listing cache invalidation failed: " + err.Error())
	}
}
