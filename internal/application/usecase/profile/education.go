package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/devlinkhq/devlink/internal/domain/profile"
	"github.com/devlinkhq/devlink/pkg/apperror"
)

type AddEducationInput struct {
	UserID       uuid.UUID
	School       string
	Degree       string
	FieldOfStudy string
	From         string
	To           string
	Current      bool
	Description  string
}

func (uc *ProfileUseCase) ExecuteAddEducation(ctx context.Context, input AddEducationInput) (*profile.Profile, error) {
	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	p.AddEducation(profile.Education{
		ID:           uuid.New(),
		School:       input.School,
		Degree:       input.Degree,
		FieldOfStudy: input.FieldOfStudy,
		From:         input.From,
		To:           input.To,
		Current:      input.Current,
		Description:  input.Description,
	})

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, apperror.NewInternal("failed to save education", err)
	}

	uc.invalidateListing(ctx)
	return p, nil
}

type RemoveEducationInput struct {
	UserID      uuid.UUID
	EducationID uuid.UUID
}

func (uc *ProfileUseCase) ExecuteRemoveEducation(ctx context.Context, input RemoveEducationInput) (*profile.Profile, error) {
	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if !p.RemoveEducation(input.EducationID) {
		return p, nil
	}

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, apperror.NewInternal("failed to remove education", err)
	}

	uc.invalidateListing(ctx)
	return p, nil
}
