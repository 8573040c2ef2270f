package service_test

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/niklaus0x/viral-blog/internal/config"
	"github.com/niklaus0x/viral-blog/internal/model"
	"github.com/niklaus0x/viral-blog/internal/repository"
	"github.com/niklaus0x/viral-blog/internal/repository/postgres"
	"github.com/niklaus0x/viral-blog/internal/repository/redisrepo"
	"github.com/niklaus0x/viral-blog/internal/service"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// In-memory stand-ins for the postgres repositories. They keep the
// same not-found and ownership semantics as the real queries
// (pgx.ErrNoRows when no row matches the predicates).

type fakePostRepo struct {
	mu      sync.Mutex
	posts   []*model.Post
	nextID  int64
	creates int
	updates int
	deletes int
}

func (f *fakePostRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	f.nextID++
	post.ID = f.nextID
	post.CreatedAt = time.Unix(1700000000, 0).Add(time.Duration(f.nextID) * time.Minute)
	stored := post
	f.posts = append([]*model.Post{&stored}, f.posts...)
	return &post, nil
}

func (f *fakePostRepo) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.posts {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakePostRepo) FindAll(ctx context.Context) ([]*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*model.Post, len(f.posts))
	copy(out, f.posts)
	return out, nil
}

func (f *fakePostRepo) FindAuthorPosts(ctx context.Context, authorID uuid.UUID) ([]*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.Post
	for _, p := range f.posts {
		if p.AuthorID == authorID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePostRepo) Update(ctx context.Context, post model.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.posts {
		if p.ID == post.ID && p.AuthorID == post.AuthorID {
			f.updates++
			post.CreatedAt = p.CreatedAt
			*p = post
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakePostRepo) Delete(ctx context.Context, id int64, authorID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.posts {
		if p.ID == id && p.AuthorID == authorID {
			f.deletes++
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments []*model.Comment
	nextID   int64
	creates  int
	updates  int
	deletes  int
}

func (f *fakeCommentRepo) Create(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	f.nextID++
	comment.ID = f.nextID
	comment.CreatedAt = time.Unix(1700000000, 0).Add(time.Duration(f.nextID) * time.Minute)
	stored := comment
	f.comments = append([]*model.Comment{&stored}, f.comments...)
	return &comment, nil
}

func (f *fakeCommentRepo) FindByID(ctx context.Context, id int64) (*model.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.comments {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeCommentRepo) FindPostComments(ctx context.Context, postID int64) ([]*model.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.Comment
	for _, c := range f.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) Update(ctx context.Context, commentID int64, authorID uuid.UUID, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.comments {
		if c.ID == commentID && c.AuthorID == authorID {
			f.updates++
			c.Content = content
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeCommentRepo) Delete(ctx context.Context, commentID int64, authorID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, c := range f.comments {
		if c.ID == commentID && c.AuthorID == authorID {
			f.deletes++
			f.comments = append(f.comments[:i], f.comments[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*model.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uuid.UUID]*model.Profile)}
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile model.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	profile.ID = int64(len(f.profiles) + 1)
	f.profiles[profile.UserID] = &profile
	return nil
}

func (f *fakeProfileRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *profile
	return &copied, nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, userID uuid.UUID, updates map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	profile, ok := f.profiles[userID]
	if !ok {
		return pgx.ErrNoRows
	}
	for column, value := range updates {
		var ptr *string
		if value != nil {
			s := value.(string)
			ptr = &s
		}
		switch column {
		case "display_name":
			profile.DisplayName = ptr
		case "bio":
			profile.Bio = ptr
		case "avatar_url":
			profile.AvatarURL = ptr
		default:
			return postgres.ErrFieldsNotAllowedToUpdate
		}
	}
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = &user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeRedis struct {
	mu     sync.Mutex
	counts map[string]int64
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{counts: make(map[string]int64)}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	count, ok := f.counts[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(strconv.FormatInt(count, 10), nil)
}

func (f *fakeRedis) MGet(ctx context.Context, keys ...string) *redis.SliceCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	values := make([]interface{}, len(keys))
	for i, key := range keys {
		if count, ok := f.counts[key]; ok {
			values[i] = strconv.FormatInt(count, 10)
		}
	}
	return redis.NewSliceResult(values, nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, key := range keys {
		delete(f.counts, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func (f *fakeRedis) Incr(ctx context.Context, key string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[key]++
	return redis.NewIntResult(f.counts[key], nil)
}

func (f *fakeRedis) count(key string) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[key]
}

type testEnv struct {
	services *service.Service
	posts    *fakePostRepo
	comments *fakeCommentRepo
	profiles *fakeProfileRepo
	users    *fakeUserRepo
	redis    *fakeRedis
	alice    model.User
	bob      model.User
}

func newTestEnv() *testEnv {
	env := &testEnv{
		posts:    &fakePostRepo{},
		comments: &fakeCommentRepo{},
		profiles: newFakeProfileRepo(),
		users:    newFakeUserRepo(),
		redis:    newFakeRedis(),
	}

	repo := &repository.Repository{
		Postgres: &postgres.PostgresRepository{
			Post:    env.posts,
			Comment: env.comments,
			Profile: env.profiles,
			User:    env.users,
		},
		Redis: &redisrepo.RedisRepository{Default: env.redis},
	}

	authConfig := config.AuthConfig{AccessSecret: []byte("test-secret"), AccessTTL: time.Hour}
	env.services = service.New(zap.NewNop(), repo, nil, authConfig)

	ctx := context.Background()
	env.alice = model.User{ID: uuid.New(), Email: "alice@example.com", CreatedAt: time.Now()}
	env.bob = model.User{ID: uuid.New(), Email: "bob@example.com", CreatedAt: time.Now()}
	env.users.Create(ctx, env.alice)
	env.users.Create(ctx, env.bob)

	aliceName := "Alice Cooper"
	env.profiles.Create(ctx, model.Profile{UserID: env.alice.ID, DisplayName: &aliceName})
	env.profiles.Create(ctx, model.Profile{UserID: env.bob.ID})

	return env
}
