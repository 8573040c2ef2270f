package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/niklaus0x/viral-blog/internal/model"
)

type postRepo struct {
	db *pgxpool.Pool
}

func newPostRepo(db *pgxpool.Pool) Post {
	return &postRepo{
		db: db,
	}
}

func (r *postRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	post.CreatedAt = time.Now()
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO posts(author_id, author_name, title, excerpt, content, category, image_url, read_time, created_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		post.AuthorID,
		post.AuthorName,
		post.Title,
		post.Excerpt,
		post.Content,
		post.Category,
		post.ImageURL,
		post.ReadTime,
		post.CreatedAt,
	).Scan(&post.ID); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	var post model.Post
	if err := r.db.QueryRow(
		ctx,
		`SELECT p.id, p.author_id, p.author_name, p.title, p.excerpt, p.content, p.category, p.image_url, p.read_time, p.created_at
		FROM posts p
		WHERE p.id = $1`,
		id,
	).Scan(
		&post.ID,
		&post.AuthorID,
		&post.AuthorName,
		&post.Title,
		&post.Excerpt,
		&post.Content,
		&post.Category,
		&post.ImageURL,
		&post.ReadTime,
		&post.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) FindAll(ctx context.Context) ([]*model.Post, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT p.id, p.author_id, p.author_name, p.title, p.excerpt, p.content, p.category, p.image_url, p.read_time, p.created_at
		FROM posts p
		ORDER BY p.created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (r *postRepo) FindAuthorPosts(ctx context.Context, authorID uuid.UUID) ([]*model.Post, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT p.id, p.author_id, p.author_name, p.title, p.excerpt, p.content, p.category, p.image_url, p.read_time, p.created_at
		FROM posts p
		WHERE p.author_id = $1
		ORDER BY p.created_at DESC`,
		authorID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

func scanPosts(rows pgx.Rows) ([]*model.Post, error) {
	var posts []*model.Post
	for rows.Next() {
		var post model.Post
		if err := rows.Scan(
			&post.ID,
			&post.AuthorID,
			&post.AuthorName,
			&post.Title,
			&post.Excerpt,
			&post.Content,
			&post.Category,
			&post.ImageURL,
			&post.ReadTime,
			&post.CreatedAt,
		); err != nil {
			return nil, err
		}

		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

// Update rewrites the editable fields. The author predicate keeps row
// ownership enforced at the data layer even if the service pre-check
// is bypassed; author_name and created_at are never rewritten.
func (r *postRepo) Update(ctx context.Context, post model.Post) error {
	ct, err := r.db.Exec(
		ctx,
		`UPDATE posts
		SET title = $1, excerpt = $2, content = $3, category = $4, image_url = $5, read_time = $6
		WHERE id = $7 AND author_id = $8`,
		post.Title,
		post.Excerpt,
		post.Content,
		post.Category,
		post.ImageURL,
		post.ReadTime,
		post.ID,
		post.AuthorID,
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *postRepo) Delete(ctx context.Context, id int64, authorID uuid.UUID) error {
	ct, err := r.db.Exec(ctx, "DELETE FROM posts WHERE id = $1 AND author_id = $2", id, authorID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
