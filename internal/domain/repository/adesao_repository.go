package repository

import (
	"context"
	"time"

	"github.com/vitalseg/corretora-api/internal/domain/entity"
)

// AdesaoRepository porta de persistência para adesões funcionário-plano.
type AdesaoRepository interface {
	Create(ctx context.Context, adesao *entity.Adesao) error
	ListByFuncionario(ctx context.Context, funcionarioID string) ([]*entity.Adesao, error)
	// UpdateStatusPorFuncionario muda o status de todas as adesões do
	// funcionário; usado pelo motor de resolução na mesma transação da
	// mudança de status do funcionário.
	UpdateStatusPorFuncionario(ctx context.Context, funcionarioID, status string, updatedAt time.Time) error
}
