package dto

import "time"

// CreateEmpresaRequest entrada para cadastrar uma empresa cliente.
type CreateEmpresaRequest struct {
	RazaoSocial  string `json:"razao_social" validate:"required,min=1,max=200"`
	NomeFantasia string `json:"nome_fantasia" validate:"omitempty,max=200"`
	CNPJ         string `json:"cnpj" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	Telefone     string `json:"telefone"`
}

// UpdateEmpresaRequest entrada para atualizar uma empresa (campos opcionais).
type UpdateEmpresaRequest struct {
	RazaoSocial  *string `json:"razao_social" validate:"omitempty,min=1,max=200"`
	NomeFantasia *string `json:"nome_fantasia" validate:"omitempty,max=200"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Telefone     *string `json:"telefone"`
	Status       *string `json:"status" validate:"omitempty,oneof=ativa suspensa inativa"`
}

// EmpresaResponse saída de uma empresa.
type EmpresaResponse struct {
	ID           string    `json:"id"`
	RazaoSocial  string    `json:"razao_social"`
	NomeFantasia string    `json:"nome_fantasia"`
	CNPJ         string    `json:"cnpj"`
	Email        string    `json:"email"`
	Telefone     string    `json:"telefone"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EmpresaListResponse lista paginada de empresas.
type EmpresaListResponse struct {
	Items []EmpresaResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateFilialRequest entrada para cadastrar uma filial (CNPJ) da empresa.
type CreateFilialRequest struct {
	CNPJ        string `json:"cnpj" validate:"required"`
	RazaoSocial string `json:"razao_social" validate:"required,min=1,max=200"`
}

// FilialResponse saída de uma filial.
type FilialResponse struct {
	ID          string    `json:"id"`
	EmpresaID   string    `json:"empresa_id"`
	CNPJ        string    `json:"cnpj"`
	RazaoSocial string    `json:"razao_social"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// FilialListResponse lista de filiais de uma empresa.
type FilialListResponse struct {
	Items []FilialResponse `json:"items"`
}
