package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/niklaus0x/viral-blog/internal/model"
)

type userRepo struct {
	db *pgxpool.Pool
}

func newUserRepo(db *pgxpool.Pool) User {
	return &userRepo{
		db: db,
	}
}

func (r *userRepo) Create(ctx context.Context, user model.User) error {
	_, err := r.db.Exec(
		ctx,
		"INSERT INTO users(id, email, password_hash, created_at) VALUES($1, $2, $3, $4)",
		user.ID,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
	)
	return err
}

func (r *userRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.QueryRow(
		ctx,
		"SELECT u.id, u.email, u.password_hash, u.created_at FROM users u WHERE u.id = $1",
		id,
	).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.QueryRow(
		ctx,
		"SELECT u.id, u.email, u.password_hash, u.created_at FROM users u WHERE u.email = $1",
		email,
	).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &user, nil
}
