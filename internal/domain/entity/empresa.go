package entity

import "time"

// Empresa representa a empresa cliente da corretora (estipulante do contrato coletivo).
type Empresa struct {
	ID           string
	CorretorID   string // corretor responsável pela carteira
	RazaoSocial  string
	NomeFantasia string
	CNPJ         string // CNPJ da matriz, armazenado normalizado (apenas dígitos)
	Email        string
	Telefone     string
	Status       string // ativa, suspensa, inativa
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
