package entity

import "time"

// Status de configuração da filial, independente do status dos funcionários.
const (
	FilialEmConfiguracao = "em_configuracao"
	FilialAtiva          = "ativa"
	FilialSuspensa       = "suspensa"
)

// Filial é o registro de pessoa jurídica (CNPJ) sob o qual funcionários e
// planos são agrupados. Uma Empresa pode ter várias filiais.
type Filial struct {
	ID          string
	EmpresaID   string
	CorretorID  string // denormalizado da Empresa; exigido pelo emissor de pendências
	CNPJ        string // normalizado (apenas dígitos)
	RazaoSocial string
	Status      string // ver constantes Filial*
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
