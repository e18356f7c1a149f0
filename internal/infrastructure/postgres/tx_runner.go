package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vitalseg/corretora-api/internal/application/movimentacao"
	"github.com/vitalseg/corretora-api/internal/domain/repository"
)

// Garante que TxRunner implementa movimentacao.TxRunner.
var _ movimentacao.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
// É a unidade atômica de trabalho do motor de movimentação: a mudança de
// status do funcionário e a emissão/conclusão da pendência acontecem na
// mesma transação, ou nenhuma delas acontece.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repositórios atados à tx e faz
// Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	funcRepo repository.FuncionarioRepository,
	adesaoRepo repository.AdesaoRepository,
	pendRepo repository.PendenciaRepository,
	filialRepo repository.FilialRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	funcRepo := NewFuncionarioRepository(tx)
	adesaoRepo := NewAdesaoRepository(tx)
	pendRepo := NewPendenciaRepository(tx)
	filialRepo := NewFilialRepository(tx)

	if err := fn(funcRepo, adesaoRepo, pendRepo, filialRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
