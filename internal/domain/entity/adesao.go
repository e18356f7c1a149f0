package entity

import "time"

// Status da adesão. Acompanha, mas não é idêntico ao status do funcionário:
// um funcionário ativo pode ter uma adesão ainda pendente.
const (
	AdesaoPendente = "pendente"
	AdesaoAtiva    = "ativo"
	AdesaoInativa  = "inativo"
)

// Adesao vincula um funcionário a um plano.
type Adesao struct {
	ID            string
	FuncionarioID string
	PlanoID       string
	Status        string // ver constantes Adesao*
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
