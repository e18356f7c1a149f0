package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de plano oferecidos.
const (
	PlanoVida  = "vida"
	PlanoSaude = "saude"
)

// Plano é um produto de seguro (vida ou saúde) ofertado aos funcionários de
// uma filial. Imutável depois de referenciado por adesões, exceto valores.
type Plano struct {
	ID              string
	FilialID        string
	Tipo            string // vida | saude
	Nome            string
	Operadora       string
	ValorTitular    decimal.Decimal // prêmio mensal por titular
	ValorDependente decimal.Decimal
	Status          string // ativo, encerrado
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
