package postgres

import (
	"context"
	"fmt"

	"github.com/vitalseg/corretora-api/internal/domain"
	"github.com/vitalseg/corretora-api/internal/domain/entity"
	"github.com/vitalseg/corretora-api/internal/domain/repository"
)

var _ repository.FilialRepository = (*FilialRepo)(nil)

// FilialRepo implementação do porto FilialRepository sobre PostgreSQL (usável com pool ou tx).
type FilialRepo struct {
	q Querier
}

// NewFilialRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewFilialRepository(q Querier) *FilialRepo {
	return &FilialRepo{q: q}
}

// Create persiste uma nova filial. Devolve domain.ErrDuplicate se o CNPJ já existir.
func (r *FilialRepo) Create(ctx context.Context, f *entity.Filial) error {
	query := `
		INSERT INTO filiais (id, empresa_id, corretor_id, cnpj, razao_social, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		f.ID, f.EmpresaID, f.CorretorID, f.CNPJ, f.RazaoSocial, f.Status, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert filial: %w", err)
	}
	return nil
}

// GetByID obtém uma filial por ID.
func (r *FilialRepo) GetByID(ctx context.Context, id string) (*entity.Filial, error) {
	query := `
		SELECT id, empresa_id, corretor_id, cnpj, razao_social, status, created_at, updated_at
		FROM filiais WHERE id = $1`
	var f entity.Filial
	err := r.q.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.EmpresaID, &f.CorretorID, &f.CNPJ, &f.RazaoSocial, &f.Status,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get filial: %w", err)
	}
	return &f, nil
}

// ListByEmpresa lista as filiais de uma empresa.
func (r *FilialRepo) ListByEmpresa(ctx context.Context, empresaID string) ([]*entity.Filial, error) {
	query := `
		SELECT id, empresa_id, corretor_id, cnpj, razao_social, status, created_at, updated_at
		FROM filiais WHERE empresa_id = $1 ORDER BY razao_social`
	rows, err := r.q.Query(ctx, query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list filiais: %w", err)
	}
	defer rows.Close()

	var list []*entity.Filial
	for rows.Next() {
		var f entity.Filial
		if err := rows.Scan(&f.ID, &f.EmpresaID, &f.CorretorID, &f.CNPJ, &f.RazaoSocial, &f.Status, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan filial: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// UpdateStatus muda o status de configuração da filial.
func (r *FilialRepo) UpdateStatus(ctx context.Context, id, status string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE filiais SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update status filial: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
