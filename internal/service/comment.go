package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/niklaus0x/viral-blog/internal/dto"
	"github.com/niklaus0x/viral-blog/internal/model"
	"github.com/niklaus0x/viral-blog/internal/repository"
	"github.com/niklaus0x/viral-blog/internal/validation"
	"go.uber.org/zap"
)

const pgForeignKeyViolation = "23503"

type commentService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newCommentService(logger *zap.Logger, repo *repository.Repository) Comment {
	return &commentService{
		logger: logger,
		repo:   repo,
	}
}

// Create inserts the comment and returns the re-fetched list for the
// post, newest first. There is no optimistic insert; the caller's view
// is only as fresh as this re-fetch.
func (s *commentService) Create(ctx context.Context, author *model.User, input dto.CreateCommentRequest) ([]*model.Comment, error) {
	content, err := validation.CommentContent(input.Content)
	if err != nil {
		return nil, err
	}

	comment := model.Comment{
		PostID:     input.PostID,
		AuthorID:   author.ID,
		AuthorName: authorDisplayName(ctx, s.repo, author),
		Content:    content,
	}

	if _, err := s.repo.Postgres.Comment.Create(ctx, comment); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return nil, ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to create user(%s) comment on post(%d): %s", author.ID.String(), input.PostID, err.Error())
		return nil, ErrInternal
	}

	return s.FindPostComments(ctx, input.PostID)
}

func (s *commentService) FindPostComments(ctx context.Context, postID int64) ([]*model.Comment, error) {
	comments, err := s.repo.Postgres.Comment.FindPostComments(ctx, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find post(%d) comments from postgres: %s", postID, err.Error())
		return nil, ErrInternal
	}

	return comments, nil
}

// Update replaces the content unconditionally; no revision history is
// kept. Only the comment's author may edit it.
func (s *commentService) Update(ctx context.Context, authorID uuid.UUID, commentID int64, content string) (*model.Comment, error) {
	comment, err := s.findOwned(ctx, authorID, commentID)
	if err != nil {
		return nil, err
	}

	validated, err := validation.CommentContent(content)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Postgres.Comment.Update(ctx, commentID, authorID, validated); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrForbidden
		}

		s.logger.Sugar().Errorf("failed to update comment(%d): %s", commentID, err.Error())
		return nil, ErrInternal
	}

	comment.Content = validated
	return comment, nil
}

// Delete is immediate for the author, with no confirmation step.
func (s *commentService) Delete(ctx context.Context, authorID uuid.UUID, commentID int64) error {
	if _, err := s.findOwned(ctx, authorID, commentID); err != nil {
		return err
	}

	if err := s.repo.Postgres.Comment.Delete(ctx, commentID, authorID); err != nil {
		if err == pgx.ErrNoRows {
			return ErrForbidden
		}

		s.logger.Sugar().Errorf("failed to delete comment(%d): %s", commentID, err.Error())
		return ErrInternal
	}

	return nil
}

func (s *commentService) findOwned(ctx context.Context, authorID uuid.UUID, commentID int64) (*model.Comment, error) {
	comment, err := s.repo.Postgres.Comment.FindByID(ctx, commentID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrCommentNotFound
		}

		s.logger.Sugar().Errorf("failed to find comment(%d) from postgres: %s", commentID, err.Error())
		return nil, ErrInternal
	}

	if comment.AuthorID != authorID {
		return nil, ErrForbidden
	}

	return comment, nil
}
