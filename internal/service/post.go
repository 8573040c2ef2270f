package service

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/niklaus0x/viral-blog/internal/dto"
	"github.com/niklaus0x/viral-blog/internal/model"
	"github.com/niklaus0x/viral-blog/internal/repository"
	"github.com/niklaus0x/viral-blog/internal/repository/redisrepo"
	"github.com/niklaus0x/viral-blog/internal/validation"
	"github.com/niklaus0x/viral-blog/pkg/utils"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type postService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newPostService(logger *zap.Logger, repo *repository.Repository) Post {
	return &postService{
		logger: logger,
		repo:   repo,
	}
}

func (s *postService) Create(ctx context.Context, author *model.User, input dto.CreatePostRequest) (*model.Post, error) {
	validated, err := validation.ValidatePost(validation.PostInput{
		Title:    input.Title,
		Excerpt:  input.Excerpt,
		Content:  input.Content,
		Category: input.Category,
		ImageURL: input.ImageURL,
	})
	if err != nil {
		return nil, err
	}

	post := model.Post{
		AuthorID:   author.ID,
		AuthorName: authorDisplayName(ctx, s.repo, author),
		Title:      validated.Title,
		Excerpt:    validated.Excerpt,
		Content:    validated.Content,
		Category:   validated.Category,
		ReadTime:   utils.ReadTime(validated.Content),
	}
	if validated.ImageURL != "" {
		post.ImageURL = &validated.ImageURL
	}

	createdPost, err := s.repo.Postgres.Post.Create(ctx, post)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s) post: %s", post.AuthorID.String(), err.Error())
		return nil, ErrInternal
	}

	return createdPost, nil
}

// FindByID returns the post with its view counter. Every read counts
// as a view except the author opening their own post; viewer is nil
// for anonymous readers.
func (s *postService) FindByID(ctx context.Context, viewer *model.User, id int64) (*model.FullPost, error) {
	post, err := s.repo.Postgres.Post.FindByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to find post(%d) from postgres: %s", id, err.Error())
		return nil, ErrInternal
	}

	views, err := s.repo.Redis.Default.Get(ctx, redisrepo.PostViewsKey(id)).Int64()
	if err != nil && err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get views for post(%d) from redis: %s", id, err.Error())
	}

	if viewer == nil || viewer.ID != post.AuthorID {
		go s.incrViews(post.ID)
	}

	return &model.FullPost{Post: *post, Views: views}, nil
}

func (s *postService) incrViews(postID int64) {
	ctx := context.Background()
	if err := s.repo.Redis.Default.Incr(ctx, redisrepo.PostViewsKey(postID)).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to increment views for post(%d): %s", postID, err.Error())
	}
}

// FindAll returns every post, newest first. The category filter
// narrows the fetched list in memory; "All" and the empty string mean
// no filter.
func (s *postService) FindAll(ctx context.Context, category string) ([]*model.FullPost, error) {
	posts, err := s.repo.Postgres.Post.FindAll(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find posts from postgres: %s", err.Error())
		return nil, ErrInternal
	}

	if category != "" && category != "All" {
		filtered := posts[:0]
		for _, post := range posts {
			if post.Category == category {
				filtered = append(filtered, post)
			}
		}
		posts = filtered
	}

	return s.attachViews(ctx, posts), nil
}

func (s *postService) FindAuthorPosts(ctx context.Context, authorID uuid.UUID) ([]*model.FullPost, error) {
	posts, err := s.repo.Postgres.Post.FindAuthorPosts(ctx, authorID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find author(%s) posts from postgres: %s", authorID.String(), err.Error())
		return nil, ErrInternal
	}

	return s.attachViews(ctx, posts), nil
}

// attachViews merges the Redis view counters into the result. Counter
// failures are logged and render as zero; they never fail the read.
func (s *postService) attachViews(ctx context.Context, posts []*model.Post) []*model.FullPost {
	fullPosts := make([]*model.FullPost, 0, len(posts))
	for _, post := range posts {
		fullPosts = append(fullPosts, &model.FullPost{Post: *post})
	}
	if len(posts) == 0 {
		return fullPosts
	}

	keys := make([]string, 0, len(posts))
	for _, post := range posts {
		keys = append(keys, redisrepo.PostViewsKey(post.ID))
	}

	values, err := s.repo.Redis.Default.MGet(ctx, keys...).Result()
	if err != nil {
		s.logger.Sugar().Errorf("failed to get post views from redis: %s", err.Error())
		return fullPosts
	}

	for i, value := range values {
		if i >= len(fullPosts) {
			break
		}
		if str, ok := value.(string); ok {
			if views, err := strconv.ParseInt(str, 10, 64); err == nil {
				fullPosts[i].Views = views
			}
		}
	}

	return fullPosts
}

func (s *postService) Update(ctx context.Context, authorID uuid.UUID, postID int64, input dto.EditPostRequest) (*model.Post, error) {
	post, err := s.repo.Postgres.Post.FindByID(ctx, postID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to find post(%d) from postgres: %s", postID, err.Error())
		return nil, ErrInternal
	}

	if post.AuthorID != authorID {
		return nil, ErrForbidden
	}

	validated, err := validation.ValidatePost(validation.PostInput{
		Title:    input.Title,
		Excerpt:  input.Excerpt,
		Content:  input.Content,
		Category: input.Category,
		ImageURL: input.ImageURL,
	})
	if err != nil {
		return nil, err
	}

	post.Title = validated.Title
	post.Excerpt = validated.Excerpt
	post.Content = validated.Content
	post.Category = validated.Category
	post.ImageURL = nil
	if validated.ImageURL != "" {
		post.ImageURL = &validated.ImageURL
	}
	post.ReadTime = utils.ReadTime(validated.Content)

	if err := s.repo.Postgres.Post.Update(ctx, *post); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrForbidden
		}

		s.logger.Sugar().Errorf("failed to update post(%d): %s", postID, err.Error())
		return nil, ErrInternal
	}

	return post, nil
}

// Delete is two-phase: the call is rejected until the caller confirms,
// and an unconfirmed attempt leaves the post retrievable.
func (s *postService) Delete(ctx context.Context, authorID uuid.UUID, postID int64, confirmed bool) error {
	post, err := s.repo.Postgres.Post.FindByID(ctx, postID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to find post(%d) from postgres: %s", postID, err.Error())
		return ErrInternal
	}

	if post.AuthorID != authorID {
		return ErrForbidden
	}

	if !confirmed {
		return ErrDeleteNotConfirmed
	}

	if err := s.repo.Postgres.Post.Delete(ctx, postID, authorID); err != nil {
		if err == pgx.ErrNoRows {
			return ErrForbidden
		}

		s.logger.Sugar().Errorf("failed to delete post(%d): %s", postID, err.Error())
		return ErrInternal
	}

	if err := s.repo.Redis.Default.Del(ctx, redisrepo.PostViewsKey(postID)).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to delete views counter for post(%d): %s", postID, err.Error())
	}

	return nil
}
