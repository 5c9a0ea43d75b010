package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/luispedrilho/genutra-backend/internal/auth"
	"github.com/luispedrilho/genutra-backend/internal/identity"
	"github.com/luispedrilho/genutra-backend/internal/models"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  models.PublicUser `json:"user"`
	Token string            `json:"token"`
}

type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	CpfCnpj    string `json:"cpf_cnpj"`
	Profession string `json:"profession"`
	CRN        string `json:"crn"`
}

type RegisterResponse struct {
	User    models.PublicUser `json:"user"`
	Message string            `json:"message"`
}

// Login checks the password against the profile row and issues a token
// embedding the identity-provider id stored on it.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email e senha são obrigatórios")
		return
	}

	user, err := h.Store.FindUserByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("[login] store error for %s: %v", req.Email, err)
		writeError(w, http.StatusInternalServerError, "erro interno do servidor")
		return
	}
	if user == nil {
		writeError(w, http.StatusUnauthorized, "credenciais inválidas")
		return
	}

	valid, err := auth.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil || !valid {
		writeError(w, http.StatusUnauthorized, "credenciais inválidas")
		return
	}

	token, err := h.Tokens.Issue(user.UserID, user.Email, user.Name)
	if err != nil {
		log.Printf("[login] failed to issue token: %v", err)
		writeError(w, http.StatusInternalServerError, "erro interno do servidor")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		User:  models.PublicUser{ID: user.UserID, Name: user.Name, Email: user.Email},
		Token: token,
	})
}

// Register creates the identity-provider user first, then the profile row.
// The two writes are not atomic: a profile insert failure leaves the identity
// orphaned, with no compensating delete.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" || req.CpfCnpj == "" || req.Profession == "" {
		writeError(w, http.StatusBadRequest, "nome, email, senha, cpf_cnpj e profissão são obrigatórios")
		return
	}

	userID, err := h.Identity.CreateUser(r.Context(), req.Email, req.Password)
	if err != nil {
		if err != identity.ErrEmailRegistered {
			log.Printf("[register] identity provider error for %s: %v", req.Email, err)
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("[register] failed to hash password: %v", err)
		writeError(w, http.StatusInternalServerError, "erro interno do servidor")
		return
	}

	user := &models.User{
		UserID:       userID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CpfCnpj:      req.CpfCnpj,
		Profession:   req.Profession,
		CRN:          req.CRN,
	}
	if err := h.Store.InsertUser(r.Context(), user); err != nil {
		// Identity already exists at the provider; known partial-failure gap.
		log.Printf("[register] profile insert failed after identity %s was created: %v", userID, err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, RegisterResponse{
		User:    models.PublicUser{ID: userID, Name: user.Name, Email: user.Email},
		Message: "usuário registrado com sucesso",
	})
}
