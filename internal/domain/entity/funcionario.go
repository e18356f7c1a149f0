package entity

import "time"

// Status do ciclo de vida do funcionário. A máquina de estados em
// domain/movimentacao é o único caminho legal de mutação.
const (
	FuncionarioPendente           = "pendente"
	FuncionarioAtivo              = "ativo"
	FuncionarioExclusaoSolicitada = "exclusao_solicitada"
	FuncionarioEdicaoSolicitada   = "edicao_solicitada"
	FuncionarioDesativado         = "desativado"
	FuncionarioArquivado          = "arquivado"
)

// Funcionario é a vida coberta sob uma filial. Nunca é removido fisicamente:
// desativado/arquivado são terminais e mantidos para auditoria.
type Funcionario struct {
	ID        string
	FilialID  string
	Nome      string
	CPF       string // normalizado (apenas dígitos); pode estar vazio em cadastros legados
	Email     string
	Cargo     string
	Status    string // ver constantes Funcionario*
	CreatedAt time.Time
	UpdatedAt time.Time
}
