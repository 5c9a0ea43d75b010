// Package identity wraps the identity-provider subsystem: authentication
// identities with stable UUIDs, tracked independently of the users profile
// table. The id issued here is the canonical user id everywhere else.
package identity

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/luispedrilho/genutra-backend/internal/auth"
	"github.com/luispedrilho/genutra-backend/internal/models"
)

var ErrEmailRegistered = errors.New("email já registrado")

type Provider struct {
	db *sql.DB
}

func NewProvider(db *sql.DB) *Provider {
	return &Provider{db: db}
}

// FindByEmail returns the identity for an email, or (nil, nil) when absent.
func (p *Provider) FindByEmail(ctx context.Context, email string) (*models.AuthUser, error) {
	var u models.AuthUser
	err := p.db.QueryRowContext(ctx,
		`SELECT id, email FROM auth_users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser registers a new, pre-confirmed authentication identity and
// returns its canonical id. The provider keeps its own credential copy.
func (p *Provider) CreateUser(ctx context.Context, email, password string) (string, error) {
	existing, err := p.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrEmailRegistered
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	_, err = p.db.ExecContext(ctx, `
		INSERT INTO auth_users (id, email, password_hash, email_confirmed)
		VALUES ($1, $2, $3, TRUE)
	`, id, email, hash)
	if err != nil {
		return "", err
	}

	return id, nil
}
