package postgres

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/niklaus0x/viral-blog/internal/model"
)

var ErrFieldsNotAllowedToUpdate = errors.New("some fields are not allowed to be updated")

type profileRepo struct {
	db *pgxpool.Pool
}

func newProfileRepo(db *pgxpool.Pool) Profile {
	return &profileRepo{
		db: db,
	}
}

func (r *profileRepo) Create(ctx context.Context, profile model.Profile) error {
	_, err := r.db.Exec(
		ctx,
		"INSERT INTO profiles(user_id, display_name, bio, avatar_url, created_at) VALUES($1, $2, $3, $4, $5)",
		profile.UserID,
		profile.DisplayName,
		profile.Bio,
		profile.AvatarURL,
		time.Now(),
	)
	return err
}

func (r *profileRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.QueryRow(
		ctx,
		`SELECT p.id, p.user_id, p.display_name, p.bio, p.avatar_url, p.created_at
		FROM profiles p
		WHERE p.user_id = $1`,
		userID,
	).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.DisplayName,
		&profile.Bio,
		&profile.AvatarURL,
		&profile.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &profile, nil
}

// Update applies a partial column update. Only the public profile
// fields are writable; anything else in the map is rejected.
func (r *profileRepo) Update(ctx context.Context, userID uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	allowedFields := []string{"display_name", "bio", "avatar_url"}
	allowedFieldsSet := make(map[string]struct{}, len(allowedFields))
	for _, field := range allowedFields {
		allowedFieldsSet[field] = struct{}{}
	}

	for field := range updates {
		if _, ok := allowedFieldsSet[field]; !ok {
			return ErrFieldsNotAllowedToUpdate
		}
	}

	query := "UPDATE profiles SET "
	args := []interface{}{}
	i := 1

	for column, value := range updates {
		query += (column + " = $" + strconv.Itoa(i) + ", ")
		args = append(args, value)
		i++
	}

	query = query[:len(query)-2] + " WHERE user_id = $" + strconv.Itoa(i)
	args = append(args, userID)

	_, err := r.db.Exec(ctx, query, args...)
	return err
}
