package dto

import "time"

// RegisterRequest entrada para registro de usuário do portal. Usuários
// corretor informam corretor_id; usuários rh informam empresa_id.
type RegisterRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Nome       string `json:"nome" validate:"omitempty,max=200"`
	Role       string `json:"role" validate:"required,oneof=corretor rh"`
	CorretorID string `json:"corretor_id" validate:"omitempty,uuid"`
	EmpresaID  string `json:"empresa_id" validate:"omitempty,uuid"`
}

// UserResponse saída de um usuário (sem password).
type UserResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Nome       string    `json:"nome"`
	Role       string    `json:"role"`
	CorretorID string    `json:"corretor_id,omitempty"`
	EmpresaID  string    `json:"empresa_id,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse saída com token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
