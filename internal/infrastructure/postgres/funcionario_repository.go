package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/vitalseg/corretora-api/internal/domain/entity"
	"github.com/vitalseg/corretora-api/internal/domain/repository"
)

var _ repository.FuncionarioRepository = (*FuncionarioRepo)(nil)

const funcionarioCols = `id, filial_id, nome, cpf, email, cargo, status, created_at, updated_at`

// FuncionarioRepo implementação do porto FuncionarioRepository sobre PostgreSQL (usável com pool ou tx).
type FuncionarioRepo struct {
	q Querier
}

// NewFuncionarioRepository constrói o adaptador de persistência para funcionários. Passar pool ou tx (Querier).
func NewFuncionarioRepository(q Querier) *FuncionarioRepo {
	return &FuncionarioRepo{q: q}
}

// Create persiste um novo funcionário.
func (r *FuncionarioRepo) Create(ctx context.Context, f *entity.Funcionario) error {
	query := `
		INSERT INTO funcionarios (id, filial_id, nome, cpf, email, cargo, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		f.ID, f.FilialID, f.Nome, f.CPF, f.Email, f.Cargo, f.Status,
		f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert funcionario: %w", err)
	}
	return nil
}

// GetByID obtém um funcionário por ID.
func (r *FuncionarioRepo) GetByID(ctx context.Context, id string) (*entity.Funcionario, error) {
	query := `SELECT ` + funcionarioCols + ` FROM funcionarios WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByIDForUpdate obtém um funcionário bloqueando a linha (SELECT FOR UPDATE).
func (r *FuncionarioRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Funcionario, error) {
	query := `SELECT ` + funcionarioCols + ` FROM funcionarios WHERE id = $1 FOR UPDATE`
	return r.scanOne(ctx, query, id)
}

func (r *FuncionarioRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Funcionario, error) {
	var f entity.Funcionario
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&f.ID, &f.FilialID, &f.Nome, &f.CPF, &f.Email, &f.Cargo, &f.Status,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get funcionario: %w", err)
	}
	return &f, nil
}

// Update atualiza os dados cadastrais do funcionário (não o status).
func (r *FuncionarioRepo) Update(ctx context.Context, f *entity.Funcionario) error {
	query := `
		UPDATE funcionarios SET nome = $2, cpf = $3, email = $4, cargo = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, f.ID, f.Nome, f.CPF, f.Email, f.Cargo, f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update funcionario: %w", err)
	}
	return nil
}

// UpdateStatus muda apenas o status. Chamado somente pelos casos de uso de movimentação.
func (r *FuncionarioRepo) UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error {
	query := `UPDATE funcionarios SET status = $2, updated_at = $3 WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, id, status, updatedAt)
	if err != nil {
		return fmt.Errorf("update status funcionario: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update status funcionario %s: nenhuma linha afetada", id)
	}
	return nil
}

// ListByFilial lista funcionários de uma filial, opcionalmente filtrando por status.
func (r *FuncionarioRepo) ListByFilial(ctx context.Context, filialID, status string, limit, offset int) ([]*entity.Funcionario, error) {
	query := `
		SELECT ` + funcionarioCols + `
		FROM funcionarios
		WHERE filial_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY nome LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, filialID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list funcionarios: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// ListByEmpresa lista funcionários de todas as filiais da empresa.
func (r *FuncionarioRepo) ListByEmpresa(ctx context.Context, empresaID, status string) ([]*entity.Funcionario, error) {
	query := `
		SELECT f.id, f.filial_id, f.nome, f.cpf, f.email, f.cargo, f.status, f.created_at, f.updated_at
		FROM funcionarios f
		JOIN filiais fl ON fl.id = f.filial_id
		WHERE fl.empresa_id = $1 AND ($2 = '' OR f.status = $2)
		ORDER BY f.nome`
	rows, err := r.q.Query(ctx, query, empresaID, status)
	if err != nil {
		return nil, fmt.Errorf("list funcionarios empresa: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// ListComPendenciaExigida devolve os funcionários do escopo cujo status
// implica uma pendência aberta. filialID vazio = empresa inteira.
func (r *FuncionarioRepo) ListComPendenciaExigida(ctx context.Context, empresaID, filialID string) ([]*entity.Funcionario, error) {
	query := `
		SELECT f.id, f.filial_id, f.nome, f.cpf, f.email, f.cargo, f.status, f.created_at, f.updated_at
		FROM funcionarios f
		JOIN filiais fl ON fl.id = f.filial_id
		WHERE fl.empresa_id = $1
		  AND ($2 = '' OR f.filial_id = $2)
		  AND f.status IN ('pendente', 'exclusao_solicitada', 'edicao_solicitada')
		ORDER BY f.id`
	rows, err := r.q.Query(ctx, query, empresaID, filialID)
	if err != nil {
		return nil, fmt.Errorf("list funcionarios com pendência exigida: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *FuncionarioRepo) scanAll(rows pgx.Rows) ([]*entity.Funcionario, error) {
	var list []*entity.Funcionario
	for rows.Next() {
		var f entity.Funcionario
		if err := rows.Scan(&f.ID, &f.FilialID, &f.Nome, &f.CPF, &f.Email, &f.Cargo, &f.Status, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan funcionario: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}
