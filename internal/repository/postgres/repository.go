package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/niklaus0x/viral-blog/internal/config"
	"github.com/niklaus0x/viral-blog/internal/model"
)

type Post interface {
	Create(ctx context.Context, post model.Post) (*model.Post, error)
	FindByID(ctx context.Context, id int64) (*model.Post, error)
	FindAll(ctx context.Context) ([]*model.Post, error)
	FindAuthorPosts(ctx context.Context, authorID uuid.UUID) ([]*model.Post, error)
	Update(ctx context.Context, post model.Post) error
	Delete(ctx context.Context, id int64, authorID uuid.UUID) error
}

type Comment interface {
	Create(ctx context.Context, comment model.Comment) (*model.Comment, error)
	FindByID(ctx context.Context, id int64) (*model.Comment, error)
	FindPostComments(ctx context.Context, postID int64) ([]*model.Comment, error)
	Update(ctx context.Context, commentID int64, authorID uuid.UUID, content string) error
	Delete(ctx context.Context, commentID int64, authorID uuid.UUID) error
}

type Profile interface {
	Create(ctx context.Context, profile model.Profile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, updates map[string]interface{}) error
}

type User interface {
	Create(ctx context.Context, user model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type PostgresRepository struct {
	Post
	Comment
	Profile
	User
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		Post:    newPostRepo(db),
		Comment: newCommentRepo(db),
		Profile: newProfileRepo(db),
		User:    newUserRepo(db),
	}
}

// DB builds the connection pool. Missing credentials surface as
// config.ErrMissingCredentials before any dial is attempted.
func DB(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return pgxpool.New(ctx, cfg.ConnString())
}
