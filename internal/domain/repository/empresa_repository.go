package repository

import (
	"context"

	"github.com/vitalseg/corretora-api/internal/domain/entity"
)

// EmpresaRepository porta de persistência para empresas clientes.
type EmpresaRepository interface {
	Create(ctx context.Context, empresa *entity.Empresa) error
	GetByID(ctx context.Context, id string) (*entity.Empresa, error)
	GetByCNPJ(ctx context.Context, cnpj string) (*entity.Empresa, error)
	Update(ctx context.Context, empresa *entity.Empresa) error
	ListByCorretor(ctx context.Context, corretorID string, limit, offset int) ([]*entity.Empresa, error)
}
