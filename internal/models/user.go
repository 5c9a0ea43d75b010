package models

import "time"

// AuthUser is an identity-provider record. Its ID is the canonical user id
// carried in tokens and stamped on every plan.
type AuthUser struct {
	ID    string
	Email string
}

// User is a nutritionist profile row. UserID references the identity-provider
// record; the two representations are kept separate on purpose because the
// identity provider is the system of record for credentials.
type User struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CpfCnpj      string    `json:"cpf_cnpj"`
	Profession   string    `json:"profession"`
	CRN          string    `json:"crn,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// PublicUser is the shape returned by /login and /register.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
