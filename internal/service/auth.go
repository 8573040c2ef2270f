package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/niklaus0x/viral-blog/internal/config"
	"github.com/niklaus0x/viral-blog/internal/dto"
	"github.com/niklaus0x/viral-blog/internal/model"
	"github.com/niklaus0x/viral-blog/internal/repository"
	"github.com/niklaus0x/viral-blog/pkg/utils"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const pgUniqueViolation = "23505"

type authService struct {
	logger     *zap.Logger
	repo       *repository.Repository
	authConfig config.AuthConfig
}

func newAuthService(logger *zap.Logger, repo *repository.Repository, authConfig config.AuthConfig) Auth {
	return &authService{
		logger:     logger,
		repo:       repo,
		authConfig: authConfig,
	}
}

// Register creates the account and its profile row in one go; every
// account has a profile from the moment it exists.
func (s *authService) Register(ctx context.Context, input dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Sugar().Errorf("failed to hash password: %s", err.Error())
		return nil, ErrInternal
	}

	user := model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Postgres.User.Create(ctx, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrEmailTaken
		}

		s.logger.Sugar().Errorf("failed to create user(%s): %s", email, err.Error())
		return nil, ErrInternal
	}

	profile := model.Profile{UserID: user.ID}
	if displayName := strings.TrimSpace(input.DisplayName); displayName != "" {
		profile.DisplayName = &displayName
	}
	if err := s.repo.Postgres.Profile.Create(ctx, profile); err != nil {
		s.logger.Sugar().Errorf("failed to create profile for user(%s): %s", user.ID.String(), err.Error())
		return nil, ErrInternal
	}

	return s.authResponse(user)
}

func (s *authService) Login(ctx context.Context, input dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.repo.Postgres.User.FindByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrInvalidCredentials
		}

		s.logger.Sugar().Errorf("failed to find user(%s) from postgres: %s", email, err.Error())
		return nil, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(*user)
}

func (s *authService) authResponse(user model.User) (*dto.AuthResponse, error) {
	accessToken, err := utils.GenerateJWT(user.ID.String(), s.authConfig.AccessSecret, s.authConfig.AccessTTL)
	if err != nil {
		s.logger.Sugar().Errorf("failed to sign access token for user(%s): %s", user.ID.String(), err.Error())
		return nil, ErrInternal
	}

	return &dto.AuthResponse{
		AccessToken: accessToken,
		User:        user,
	}, nil
}

func (s *authService) UserFromAccessToken(ctx context.Context, accessToken string) (*model.User, error) {
	claims, err := utils.DecodeJWT(accessToken, s.authConfig.AccessSecret)
	if err != nil {
		return nil, err
	}

	idString, ok := claims["id"].(string)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	id, err := uuid.Parse(idString)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.Postgres.User.FindByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrInvalidCredentials
		}

		s.logger.Sugar().Errorf("failed to find user(%s) from postgres: %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	return user, nil
}
