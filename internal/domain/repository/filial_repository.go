package repository

import (
	"context"

	"github.com/vitalseg/corretora-api/internal/domain/entity"
)

// FilialRepository porta de persistência para filiais (CNPJs) de uma empresa.
type FilialRepository interface {
	Create(ctx context.Context, filial *entity.Filial) error
	GetByID(ctx context.Context, id string) (*entity.Filial, error)
	ListByEmpresa(ctx context.Context, empresaID string) ([]*entity.Filial, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
