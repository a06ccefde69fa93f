package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/openlearn/backend/internal/domain"
)

const uniqueViolation = "23505"

func isUnique(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func (p *Postgres) CreateUser(ctx context.Context, u *domain.User) error {
	err := p.pool.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash, provider, provider_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, u.Username, u.Email, u.PasswordHash, u.Provider, u.ProviderID).Scan(&u.ID, &u.CreatedAt)
	if isUnique(err) {
		return ErrAlreadyExists
	}
	return err
}

func (p *Postgres) GetUser(ctx context.Context, id domain.UserID) (domain.User, error) {
	var u domain.User
	err := p.pool.QueryRow(ctx, `
		SELECT id, username, email, password_hash, COALESCE(provider, ''), COALESCE(provider_id, ''), created_at
		FROM users WHERE id = $1
	`, id).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Provider, &u.ProviderID, &u.CreatedAt)
	return u, notFound(err)
}

// GetUserByLogin resolves a user by username or email, for login.
func (p *Postgres) GetUserByLogin(ctx context.Context, usernameOrEmail string) (domain.User, error) {
	var u domain.User
	err := p.pool.QueryRow(ctx, `
		SELECT id, username, email, password_hash, COALESCE(provider, ''), COALESCE(provider_id, ''), created_at
		FROM users WHERE username = $1 OR email = $1
	`, usernameOrEmail).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Provider, &u.ProviderID, &u.CreatedAt)
	return u, notFound(err)
}

func (p *Postgres) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, username, email, COALESCE(provider, ''), created_at
		FROM users ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Provider, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (p *Postgres) UpdateUser(ctx context.Context, id domain.UserID, username, email string) (domain.User, error) {
	var u domain.User
	err := p.pool.QueryRow(ctx, `
		UPDATE users SET username = $2, email = $3
		WHERE id = $1
		RETURNING id, username, email, COALESCE(provider, ''), created_at
	`, id, username, email).Scan(&u.ID, &u.Username, &u.Email, &u.Provider, &u.CreatedAt)
	if isUnique(err) {
		return domain.User{}, ErrAlreadyExists
	}
	return u, notFound(err)
}

func (p *Postgres) DeleteUser(ctx context.Context, id domain.UserID) error {
	ct, err := p.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
