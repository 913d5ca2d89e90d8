package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/devlinkhq/devlink/internal/domain/profile"
	"github.com/devlinkhq/devlink/pkg/apperror"
	"github.com/devlinkhq/devlink/pkg/logger"
)

var tracer = otel.Tracer("profile_usecase")

// ListingCache holds the public profile browse listing. A nil-profiles,
// nil-error return means a miss.
type ListingCache interface {
	GetAll(ctx context.Context) ([]*profile.Profile, error)
	SetAll(ctx context.Context, profiles []*profile.Profile) error
	Invalidate(ctx context.Context) error
}

type ProfileUseCase struct {
	profileRepo profile.Repository
	cache       ListingCache
	logger      logger.Logger
}

func NewProfileUseCase(repo profile.Repository, cache ListingCache, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: repo,
		cache:       cache,
		logger:      log,
	}
}

type GetProfileInput struct {
	UserID uuid.UUID
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteGet(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetProfileOutput{Profile: p}, nil
}

type ListProfilesOutput struct {
	Profiles []*profile.Profile
}

func (uc *ProfileUseCase) ExecuteList(ctx context.Context) (*ListProfilesOutput, error) {
	if cached, err := uc.cache.GetAll(ctx); err != nil {
		uc.logger.Warn("profile listing cache read failed: " + err.Error())
	} else if cached != nil {
		return &ListProfilesOutput{Profiles: cached}, nil
	}

	profiles, err := uc.profileRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.SetAll(ctx, profiles); err != nil {
		uc.logger.Warn("profile listing cache write failed: " + err.Error())
	}
	return &ListProfilesOutput{Profiles: profiles}, nil
}

type UpsertProfileInput struct {
	UserID uuid.UUID
	Fields profile.Update
}

type UpsertProfileOutput struct {
	Profile *profile.Profile
}

// ExecuteUpsert creates the caller's profile on first use and merges the
// sparse field set in place afterwards. Re-submitting identical input leaves
// the stored state identical.
func (uc *ProfileUseCase) ExecuteUpsert(ctx context.Context, input UpsertProfileInput) (*UpsertProfileOutput, error) {

	ctx, span := tracer.Start(ctx, "UpsertProfile")
	defer span.End()

	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		if !errors.Is(err, profile.ErrProfileNotFound) {
			span.RecordError(err)
			return nil, err
		}
		p = &profile.Profile{
			UserID:     input.UserID,
			Experience: []profile.Experience{},
			Education:  []profile.Education{},
			CreatedAt:  time.Now().UTC(),
		}
	}

	input.Fields.ApplyTo(p)
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		span.RecordError(err)
		return nil, apperror.NewInternal("failed to upsert profile", err)
	}

	uc.invalidateListing(ctx)
	return &UpsertProfileOutput{Profile: p}, nil
}

func (uc *ProfileUseCase) invalidateListing(ctx context.Context) {
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warn("profile listing cache invalidation failed: " + err.Error())
	}
}
