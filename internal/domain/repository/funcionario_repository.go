package repository

import (
	"context"
	"time"

	"github.com/vitalseg/corretora-api/internal/domain/entity"
)

// FuncionarioRepository porta de persistência para funcionários.
// O status só é mutado pelos casos de uso de movimentação.
type FuncionarioRepository interface {
	Create(ctx context.Context, f *entity.Funcionario) error
	GetByID(ctx context.Context, id string) (*entity.Funcionario, error)
	// GetByIDForUpdate bloqueia a linha (SELECT FOR UPDATE); usar dentro de transação.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Funcionario, error)
	Update(ctx context.Context, f *entity.Funcionario) error
	UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error
	ListByFilial(ctx context.Context, filialID, status string, limit, offset int) ([]*entity.Funcionario, error)
	// ListByEmpresa percorre todas as filiais da empresa. Status vazio lista todos.
	ListByEmpresa(ctx context.Context, empresaID, status string) ([]*entity.Funcionario, error)
	// ListComPendenciaExigida devolve os funcionários do escopo (empresa ou
	// filial; filialID vazio = empresa inteira) cujo status implica uma
	// pendência aberta (pendente, exclusao_solicitada, edicao_solicitada).
	ListComPendenciaExigida(ctx context.Context, empresaID, filialID string) ([]*entity.Funcionario, error)
}
