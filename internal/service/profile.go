package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/niklaus0x/viral-blog/internal/dto"
	"github.com/niklaus0x/viral-blog/internal/model"
	"github.com/niklaus0x/viral-blog/internal/repository"
	"go.uber.org/zap"
)

type profileService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newProfileService(logger *zap.Logger, repo *repository.Repository) Profile {
	return &profileService{
		logger: logger,
		repo:   repo,
	}
}

func (s *profileService) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	profile, err := s.repo.Postgres.Profile.FindByUserID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrProfileNotFound
		}

		s.logger.Sugar().Errorf("failed to find profile(%s) from postgres: %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	return profile, nil
}

// Update applies the partial edit and returns the fresh profile.
// Already-authored posts and comments keep the author_name they were
// written with.
func (s *profileService) Update(ctx context.Context, userID uuid.UUID, input dto.UpdateProfileRequest) (*model.Profile, error) {
	updates := make(map[string]interface{})
	setColumn(updates, "display_name", input.DisplayName)
	setColumn(updates, "bio", input.Bio)
	setColumn(updates, "avatar_url", input.AvatarURL)

	if err := s.repo.Postgres.Profile.Update(ctx, userID, updates); err != nil {
		s.logger.Sugar().Errorf("failed to update profile(%s): %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	return s.FindByUserID(ctx, userID)
}

// setColumn records a column write for a provided field; blank values
// clear the column.
func setColumn(updates map[string]interface{}, column string, value *string) {
	if value == nil {
		return
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		updates[column] = nil
		return
	}
	updates[column] = trimmed
}
