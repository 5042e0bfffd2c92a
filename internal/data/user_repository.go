package data

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nabin00012/codecommons-sub000/internal/errdefs"
	"github.com/nabin00012/codecommons-sub000/internal/model"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
INSERT INTO users (
	id, name, email, password_hash, role, department, avatar_url
)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING
	id, name, email, password_hash, role,
	department, avatar_url, created_at, edited_at
`
	var created model.User
	err := pgxscan.Get(ctx, r.db, &created, query,
		user.Id,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.Department,
		user.AvatarURL,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &created, nil
}

func (r *UserRepository) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := `
SELECT
	id, name, email, password_hash, role,
	department, avatar_url, created_at, edited_at
FROM users
WHERE id = $1
`
	var user model.User
	err := pgxscan.Get(ctx, r.db, &user, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
SELECT
	id, name, email, password_hash, role,
	department, avatar_url, created_at, edited_at
FROM users
WHERE email = $1
`
	var user model.User
	err := pgxscan.Get(ctx, r.db, &user, query, email)
	if err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, id uuid.UUID, input *model.UpdateUserInput) (*model.User, error) {
	query, args, err := buildUserUpdateQuery(input)
	if err != nil {
		return nil, err
	}
	args = append(args, id)
	var user model.User
	err = pgxscan.Get(ctx, r.db, &user, query, args...)
	if err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `
UPDATE users
SET password_hash = $1, edited_at = NOW()
WHERE id = $2
`
	tag, err := r.db.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}

func (r *UserRepository) CreatePasswordReset(ctx context.Context, reset *model.PasswordReset) error {
	query := `
INSERT INTO password_resets (token, user_id, expires_at)
VALUES ($1, $2, $3)
`
	_, err := r.db.Exec(ctx, query, reset.Token, reset.UserId, reset.ExpiresAt)
	if err != nil {
		return handleError(err)
	}
	return nil
}

func (r *UserRepository) GetPasswordReset(ctx context.Context, token uuid.UUID) (*model.PasswordReset, error) {
	query := `
SELECT token, user_id, expires_at, created_at
FROM password_resets
WHERE token = $1 AND expires_at > $2
`
	var reset model.PasswordReset
	err := pgxscan.Get(ctx, r.db, &reset, query, token, time.Now())
	if err != nil {
		return nil, handleError(err)
	}
	return &reset, nil
}

func (r *UserRepository) DeletePasswordResets(ctx context.Context, userId uuid.UUID) error {
	query := `
DELETE FROM password_resets
WHERE user_id = $1
`
	_, err := r.db.Exec(ctx, query, userId)
	if err != nil {
		return handleError(err)
	}
	return nil
}
