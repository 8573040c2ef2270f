package service

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"github.com/niklaus0x/viral-blog/internal/config"
	"github.com/niklaus0x/viral-blog/internal/dto"
	"github.com/niklaus0x/viral-blog/internal/model"
	"github.com/niklaus0x/viral-blog/internal/repository"
	"github.com/niklaus0x/viral-blog/internal/storage"
	"go.uber.org/zap"
)

type Post interface {
	Create(ctx context.Context, author *model.User, input dto.CreatePostRequest) (*model.Post, error)
	FindByID(ctx context.Context, viewer *model.User, id int64) (*model.FullPost, error)
	FindAll(ctx context.Context, category string) ([]*model.FullPost, error)
	FindAuthorPosts(ctx context.Context, authorID uuid.UUID) ([]*model.FullPost, error)
	Update(ctx context.Context, authorID uuid.UUID, postID int64, input dto.EditPostRequest) (*model.Post, error)
	Delete(ctx context.Context, authorID uuid.UUID, postID int64, confirmed bool) error
}

type Comment interface {
	Create(ctx context.Context, author *model.User, input dto.CreateCommentRequest) ([]*model.Comment, error)
	FindPostComments(ctx context.Context, postID int64) ([]*model.Comment, error)
	Update(ctx context.Context, authorID uuid.UUID, commentID int64, content string) (*model.Comment, error)
	Delete(ctx context.Context, authorID uuid.UUID, commentID int64) error
}

type Profile interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, input dto.UpdateProfileRequest) (*model.Profile, error)
}

type Auth interface {
	Register(ctx context.Context, input dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, input dto.LoginRequest) (*dto.AuthResponse, error)
	UserFromAccessToken(ctx context.Context, accessToken string) (*model.User, error)
}

type Upload interface {
	UploadImage(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (string, error)
}

type Service struct {
	Post    Post
	Comment Comment
	Profile Profile
	Auth    Auth
	Upload  Upload
}

func New(logger *zap.Logger, repo *repository.Repository, store storage.Store, authConfig config.AuthConfig) *Service {
	return &Service{
		Post:    newPostService(logger, repo),
		Comment: newCommentService(logger, repo),
		Profile: newProfileService(logger, repo),
		Auth:    newAuthService(logger, repo, authConfig),
		Upload:  newUploadService(logger, store),
	}
}

// authorDisplayName resolves the name snapshotted into posts and
// comments at write time: the profile display name when set, otherwise
// the email local part, otherwise "Anonymous". Later profile edits do
// not touch records written with an earlier snapshot.
func authorDisplayName(ctx context.Context, repo *repository.Repository, author *model.User) string {
	profile, err := repo.Postgres.Profile.FindByUserID(ctx, author.ID)
	if err == nil && profile.DisplayName != nil {
		if name := strings.TrimSpace(*profile.DisplayName); name != "" {
			return name
		}
	}

	if at := strings.Index(author.Email, "@"); at > 0 {
		return author.Email[:at]
	}

	return "Anonymous"
}
