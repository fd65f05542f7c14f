package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"gaia/internal/core/domain"
)

// UserRepository implements port.UserRepository using pgxpool for PostgreSQL.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a new repository instance.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const uniqueViolation = "23505"

// Create inserts a new user. The unique index on email makes a duplicate
// insert fail atomically; that failure surfaces as domain.ErrDuplicateEmail.
func (r *UserRepository) Create(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	u := domain.User{ID: uuid.New(), Email: email, PasswordHash: passwordHash}
	err := r.pool.QueryRow(ctx, `INSERT INTO users (id, email, password_hash)
VALUES ($1, $2, $3)
RETURNING created_at, updated_at`, u.ID, u.Email, u.PasswordHash).
		Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}
	return &u, nil
}

// FindByEmail returns the user with the given email, or nil when absent.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, `SELECT id, email, password_hash, COALESCE(api_keys_enc, ''), created_at, updated_at
FROM users WHERE email = $1`, email)
}

// FindByID returns the user with the given id, or nil when absent.
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.findOne(ctx, `SELECT id, email, password_hash, COALESCE(api_keys_enc, ''), created_at, updated_at
FROM users WHERE id = $1`, id)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, query, arg).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.EncryptedAPIKeys, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateApiKeys replaces the encrypted blob. Last write wins; there is no
// optimistic concurrency token on this column.
func (r *UserRepository) UpdateAPIKeys(ctx context.Context, id uuid.UUID, encryptedBlob string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE users SET api_keys_enc = $1, updated_at = $2 WHERE id = $3`,
		encryptedBlob, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// WipeAll deletes every row from every table. Administrative use only.
func (r *UserRepository) WipeAll(ctx context.Context) error {
	for _, table := range []string{"access_logs", "campaign_metrics", "campaigns", "users"} {
		if _, err := r.pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}
	return nil
}
