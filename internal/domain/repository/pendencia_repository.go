package repository

import (
	"context"
	"time"

	"github.com/vitalseg/corretora-api/internal/domain/entity"
)

// PendenciaRepository porta de persistência para pendências.
// Criação passa pelo emissor; conclusão passa pelo motor de resolução.
type PendenciaRepository interface {
	Create(ctx context.Context, p *entity.Pendencia) error
	GetByID(ctx context.Context, id string) (*entity.Pendencia, error)
	// GetByIDForUpdate bloqueia a linha (SELECT FOR UPDATE); usar dentro de transação.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Pendencia, error)
	GetByProtocolo(ctx context.Context, protocolo string) (*entity.Pendencia, error)
	// GetAbertaPorTipo devolve a pendência com status pendente do par
	// (funcionário, tipo), ou nil. Base da idempotência do emissor.
	GetAbertaPorTipo(ctx context.Context, funcionarioID, tipo string) (*entity.Pendencia, error)
	Concluir(ctx context.Context, id string, concluidaEm time.Time) error
	ListByCorretor(ctx context.Context, corretorID, status string, limit, offset int) ([]*entity.Pendencia, error)
	ListByFilial(ctx context.Context, filialID, status string, limit, offset int) ([]*entity.Pendencia, error)
}
