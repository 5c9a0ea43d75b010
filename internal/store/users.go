package store

import (
	"context"
	"database/sql"

	"github.com/luispedrilho/genutra-backend/internal/models"
)

// InsertUser inserts a profile row. The caller supplies the identity-provider
// id on u.UserID; a failure here after identity creation leaves the identity
// orphaned (no compensating delete).
func (s *Store) InsertUser(ctx context.Context, u *models.User) error {
	crn := sql.NullString{String: u.CRN, Valid: u.CRN != ""}
	return s.db.QueryRowContext(ctx, `
		INSERT INTO users (user_id, name, email, password_hash, cpf_cnpj, profession, crn)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, u.UserID, u.Name, u.Email, u.PasswordHash, u.CpfCnpj, u.Profession, crn).
		Scan(&u.ID, &u.CreatedAt)
}

// FindUserByEmail returns the profile row for an email, used for the login
// password check. Returns (nil, nil) when no row exists.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	var crn sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, email, password_hash, cpf_cnpj, profession, crn, created_at
		FROM users WHERE email = $1
	`, email).Scan(&u.ID, &u.UserID, &u.Name, &u.Email, &u.PasswordHash, &u.CpfCnpj, &u.Profession, &crn, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	u.CRN = crn.String
	return &u, nil
}
