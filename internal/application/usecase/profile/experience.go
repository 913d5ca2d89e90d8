package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/devlinkhq/devlink/internal/domain/profile"
	"github.com/devlinkhq/devlink/pkg/apperror"
)

type AddExperienceInput struct {
	UserID      uuid.UUID
	Title       string
	Company     string
	Location    string
	From        string
	To          string
	Current     bool
	Description string
}

// ExecuteAddExperience prepends a new entry to the caller's experience list.
// The read-modify-write below is deliberately unguarded: two concurrent
// appends race and the last write wins.
func (uc *ProfileUseCase) ExecuteAddExperience(ctx context.Context, input AddExperienceInput) (*profile.Profile, error) {
	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	p.AddExperience(profile.Experience{
		ID:          uuid.New(),
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		From:        input.From,
		To:          input.To,
		Current:     input.Current,
		Description: input.Description,
	})

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, apperror.NewInternal("failed to save experience", err)
	}

	uc.invalidateListing(ctx)
	return p, nil
}

type RemoveExperienceInput struct {
	UserID       uuid.UUID
	ExperienceID uuid.UUID
}

// ExecuteRemoveExperience removes the matching entry if present. A miss is
// not an error: the unchanged profile is returned with success.
func (uc *ProfileUseCase) ExecuteRemoveExperience(ctx context.Context, input RemoveExperienceInput) (*profile.Profile, error) {
	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if !p.RemoveExperience(input.ExperienceID) {
		return p, nil
	}

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, apperror.NewInternal("failed to remove experience", err)
	}

	uc.invalidateListing(ctx)
	return p, nil
}
