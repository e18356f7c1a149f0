package dto

import "time"

// IncluirFuncionarioRequest entrada para incluir uma vida sob uma filial.
type IncluirFuncionarioRequest struct {
	FilialID string   `json:"filial_id" validate:"required,uuid"`
	Nome     string   `json:"nome" validate:"required,min=1,max=200"`
	CPF      string   `json:"cpf" validate:"omitempty"`
	Email    string   `json:"email" validate:"omitempty,email"`
	Cargo    string   `json:"cargo" validate:"omitempty,max=100"`
	PlanoIDs []string `json:"plano_ids" validate:"required,min=1,dive,uuid"`
}

// SolicitacaoRequest entrada para solicitar exclusão ou alteração de uma vida.
type SolicitacaoRequest struct {
	Motivo string `json:"motivo" validate:"omitempty,max=500"`
}

// FuncionarioResponse saída de um funcionário.
type FuncionarioResponse struct {
	ID        string    `json:"id"`
	FilialID  string    `json:"filial_id"`
	Nome      string    `json:"nome"`
	CPF       string    `json:"cpf,omitempty"`
	Email     string    `json:"email,omitempty"`
	Cargo     string    `json:"cargo,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InclusaoResponse saída da inclusão: o funcionário criado e o protocolo da
// pendência de ativação aberta.
type InclusaoResponse struct {
	Funcionario FuncionarioResponse `json:"funcionario"`
	Protocolo   string              `json:"protocolo"`
}

// FuncionarioListResponse lista paginada de funcionários.
type FuncionarioListResponse struct {
	Items []FuncionarioResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// GrupoDuplicadoResponse grupo de funcionários com a mesma identidade.
type GrupoDuplicadoResponse struct {
	Identidade     string   `json:"identidade"`
	FuncionarioIDs []string `json:"funcionario_ids"`
}

// DuplicadosResponse saída da detecção de duplicados.
type DuplicadosResponse struct {
	PorCPF    []GrupoDuplicadoResponse `json:"por_cpf"`
	Homonimos []GrupoDuplicadoResponse `json:"homonimos"`
}
