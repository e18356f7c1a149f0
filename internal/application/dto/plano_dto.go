package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePlanoRequest entrada para cadastrar um plano sob uma filial.
type CreatePlanoRequest struct {
	FilialID        string          `json:"filial_id" validate:"required,uuid"`
	Tipo            string          `json:"tipo" validate:"required,oneof=vida saude"`
	Nome            string          `json:"nome" validate:"required,min=1,max=200"`
	Operadora       string          `json:"operadora" validate:"omitempty,max=200"`
	ValorTitular    decimal.Decimal `json:"valor_titular" validate:"required"`
	ValorDependente decimal.Decimal `json:"valor_dependente"`
}

// UpdateValoresRequest entrada para reajustar os valores de um plano.
// Os demais campos são imutáveis depois de referenciados por adesões.
type UpdateValoresRequest struct {
	ValorTitular    decimal.Decimal `json:"valor_titular" validate:"required"`
	ValorDependente decimal.Decimal `json:"valor_dependente"`
}

// PlanoResponse saída de um plano.
type PlanoResponse struct {
	ID              string          `json:"id"`
	FilialID        string          `json:"filial_id"`
	Tipo            string          `json:"tipo"`
	Nome            string          `json:"nome"`
	Operadora       string          `json:"operadora"`
	ValorTitular    decimal.Decimal `json:"valor_titular"`
	ValorDependente decimal.Decimal `json:"valor_dependente"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// PlanoListResponse lista de planos de uma filial.
type PlanoListResponse struct {
	Items []PlanoResponse `json:"items"`
}
