package repository

import (
	"context"

	"github.com/vitalseg/corretora-api/internal/domain/entity"
)

// PlanoRepository porta de persistência para planos de seguro.
type PlanoRepository interface {
	Create(ctx context.Context, plano *entity.Plano) error
	GetByID(ctx context.Context, id string) (*entity.Plano, error)
	ListByFilial(ctx context.Context, filialID string) ([]*entity.Plano, error)
	// UpdateValores atualiza apenas os campos de preço; o restante do plano é
	// imutável depois de referenciado por adesões.
	UpdateValores(ctx context.Context, plano *entity.Plano) error
}
