package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/niklaus0x/viral-blog/internal/model"
)

type commentRepo struct {
	db *pgxpool.Pool
}

func newCommentRepo(db *pgxpool.Pool) Comment {
	return &commentRepo{
		db: db,
	}
}

func (r *commentRepo) Create(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	comment.CreatedAt = time.Now()
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO comments(post_id, author_id, author_name, content, created_at)
		VALUES($1, $2, $3, $4, $5)
		RETURNING id`,
		comment.PostID,
		comment.AuthorID,
		comment.AuthorName,
		comment.Content,
		comment.CreatedAt,
	).Scan(&comment.ID); err != nil {
		return nil, err
	}

	return &comment, nil
}

func (r *commentRepo) FindByID(ctx context.Context, id int64) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.QueryRow(
		ctx,
		`SELECT c.id, c.post_id, c.author_id, c.author_name, c.content, c.created_at
		FROM comments c
		WHERE c.id = $1`,
		id,
	).Scan(
		&comment.ID,
		&comment.PostID,
		&comment.AuthorID,
		&comment.AuthorName,
		&comment.Content,
		&comment.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &comment, nil
}

func (r *commentRepo) FindPostComments(ctx context.Context, postID int64) ([]*model.Comment, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT c.id, c.post_id, c.author_id, c.author_name, c.content, c.created_at
		FROM comments c
		WHERE c.post_id = $1
		ORDER BY c.created_at DESC`,
		postID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*model.Comment
	for rows.Next() {
		var comment model.Comment
		if err := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.AuthorID,
			&comment.AuthorName,
			&comment.Content,
			&comment.CreatedAt,
		); err != nil {
			return nil, err
		}

		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

func (r *commentRepo) Update(ctx context.Context, commentID int64, authorID uuid.UUID, content string) error {
	ct, err := r.db.Exec(
		ctx,
		"UPDATE comments SET content = $1 WHERE id = $2 AND author_id = $3",
		content,
		commentID,
		authorID,
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *commentRepo) Delete(ctx context.Context, commentID int64, authorID uuid.UUID) error {
	ct, err := r.db.Exec(ctx, "DELETE FROM comments WHERE id = $1 AND author_id = $2", commentID, authorID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
