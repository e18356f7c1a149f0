package entity

import "time"

// Papéis de acesso ao portal.
const (
	RoleCorretor = "corretor" // corretora: resolve pendências, administra carteira
	RoleRH       = "rh"       // RH da empresa cliente: solicita inclusões/exclusões
)

// User é o usuário de login do portal. Usuários corretor carregam CorretorID;
// usuários rh carregam EmpresaID.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Nome         string
	Role         string // corretor | rh
	CorretorID   string
	EmpresaID    string
	Status       string // active, blocked
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
