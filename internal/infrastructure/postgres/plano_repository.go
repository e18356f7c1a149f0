package postgres

import (
	"context"
	"fmt"

	"github.com/vitalseg/corretora-api/internal/domain"
	"github.com/vitalseg/corretora-api/internal/domain/entity"
	"github.com/vitalseg/corretora-api/internal/domain/repository"
)

var _ repository.PlanoRepository = (*PlanoRepo)(nil)

const planoCols = `id, filial_id, tipo, nome, operadora, valor_titular, valor_dependente, status, created_at, updated_at`

// PlanoRepo implementação do porto PlanoRepository sobre PostgreSQL.
// Os valores NUMERIC são lidos como shopspring/decimal via codec do pool.
type PlanoRepo struct {
	q Querier
}

// NewPlanoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewPlanoRepository(q Querier) *PlanoRepo {
	return &PlanoRepo{q: q}
}

// Create persiste um novo plano.
func (r *PlanoRepo) Create(ctx context.Context, p *entity.Plano) error {
	query := `
		INSERT INTO planos (id, filial_id, tipo, nome, operadora, valor_titular, valor_dependente, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.FilialID, p.Tipo, p.Nome, p.Operadora,
		p.ValorTitular, p.ValorDependente, p.Status, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert plano: %w", err)
	}
	return nil
}

// GetByID obtém um plano por ID.
func (r *PlanoRepo) GetByID(ctx context.Context, id string) (*entity.Plano, error) {
	query := `SELECT ` + planoCols + ` FROM planos WHERE id = $1`
	var p entity.Plano
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.FilialID, &p.Tipo, &p.Nome, &p.Operadora,
		&p.ValorTitular, &p.ValorDependente, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plano: %w", err)
	}
	return &p, nil
}

// ListByFilial lista os planos ofertados em uma filial.
func (r *PlanoRepo) ListByFilial(ctx context.Context, filialID string) ([]*entity.Plano, error) {
	query := `SELECT ` + planoCols + ` FROM planos WHERE filial_id = $1 ORDER BY nome`
	rows, err := r.q.Query(ctx, query, filialID)
	if err != nil {
		return nil, fmt.Errorf("list planos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Plano
	for rows.Next() {
		var p entity.Plano
		if err := rows.Scan(&p.ID, &p.FilialID, &p.Tipo, &p.Nome, &p.Operadora, &p.ValorTitular, &p.ValorDependente, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan plano: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// UpdateValores atualiza apenas os campos de preço do plano.
func (r *PlanoRepo) UpdateValores(ctx context.Context, p *entity.Plano) error {
	query := `UPDATE planos SET valor_titular = $2, valor_dependente = $3, updated_at = $4 WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, p.ID, p.ValorTitular, p.ValorDependente, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update valores plano: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
