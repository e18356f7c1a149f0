package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/vitalseg/corretora-api/internal/domain/entity"
	"github.com/vitalseg/corretora-api/internal/domain/repository"
)

var _ repository.AdesaoRepository = (*AdesaoRepo)(nil)

// AdesaoRepo implementação do porto AdesaoRepository sobre PostgreSQL (usável com pool ou tx).
type AdesaoRepo struct {
	q Querier
}

// NewAdesaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewAdesaoRepository(q Querier) *AdesaoRepo {
	return &AdesaoRepo{q: q}
}

// Create persiste uma nova adesão.
func (r *AdesaoRepo) Create(ctx context.Context, a *entity.Adesao) error {
	query := `
		INSERT INTO adesoes (id, funcionario_id, plano_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, a.ID, a.FuncionarioID, a.PlanoID, a.Status, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert adesao: %w", err)
	}
	return nil
}

// ListByFuncionario lista as adesões de um funcionário.
func (r *AdesaoRepo) ListByFuncionario(ctx context.Context, funcionarioID string) ([]*entity.Adesao, error) {
	query := `
		SELECT id, funcionario_id, plano_id, status, created_at, updated_at
		FROM adesoes WHERE funcionario_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, funcionarioID)
	if err != nil {
		return nil, fmt.Errorf("list adesoes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Adesao
	for rows.Next() {
		var a entity.Adesao
		if err := rows.Scan(&a.ID, &a.FuncionarioID, &a.PlanoID, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan adesao: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// UpdateStatusPorFuncionario muda o status de todas as adesões do funcionário.
func (r *AdesaoRepo) UpdateStatusPorFuncionario(ctx context.Context, funcionarioID, status string, updatedAt time.Time) error {
	query := `UPDATE adesoes SET status = $2, updated_at = $3 WHERE funcionario_id = $1`
	_, err := r.q.Exec(ctx, query, funcionarioID, status, updatedAt)
	if err != nil {
		return fmt.Errorf("update status adesoes: %w", err)
	}
	return nil
}
