package postgres

import (
	"context"
	"fmt"

	"github.com/vitalseg/corretora-api/internal/domain"
	"github.com/vitalseg/corretora-api/internal/domain/entity"
	"github.com/vitalseg/corretora-api/internal/domain/repository"
)

var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

const empresaCols = `id, corretor_id, razao_social, nome_fantasia, cnpj, email, telefone, status, created_at, updated_at`

// EmpresaRepo implementação do porto EmpresaRepository sobre PostgreSQL.
type EmpresaRepo struct {
	q Querier
}

// NewEmpresaRepository constrói o adaptador de persistência para empresas.
func NewEmpresaRepository(q Querier) *EmpresaRepo {
	return &EmpresaRepo{q: q}
}

// Create persiste uma nova empresa. Devolve domain.ErrDuplicate se o CNPJ já existir.
func (r *EmpresaRepo) Create(ctx context.Context, e *entity.Empresa) error {
	query := `
		INSERT INTO empresas (id, corretor_id, razao_social, nome_fantasia, cnpj, email, telefone, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.CorretorID, e.RazaoSocial, e.NomeFantasia, e.CNPJ,
		e.Email, e.Telefone, e.Status, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

// GetByID obtém uma empresa por ID.
func (r *EmpresaRepo) GetByID(ctx context.Context, id string) (*entity.Empresa, error) {
	query := `SELECT ` + empresaCols + ` FROM empresas WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByCNPJ obtém uma empresa por CNPJ (normalizado).
func (r *EmpresaRepo) GetByCNPJ(ctx context.Context, cnpj string) (*entity.Empresa, error) {
	query := `SELECT ` + empresaCols + ` FROM empresas WHERE cnpj = $1`
	return r.scanOne(ctx, query, cnpj)
}

func (r *EmpresaRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Empresa, error) {
	var e entity.Empresa
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&e.ID, &e.CorretorID, &e.RazaoSocial, &e.NomeFantasia, &e.CNPJ,
		&e.Email, &e.Telefone, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return &e, nil
}

// Update atualiza uma empresa existente.
func (r *EmpresaRepo) Update(ctx context.Context, e *entity.Empresa) error {
	query := `
		UPDATE empresas SET razao_social = $2, nome_fantasia = $3, cnpj = $4, email = $5, telefone = $6, status = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.RazaoSocial, e.NomeFantasia, e.CNPJ, e.Email, e.Telefone, e.Status, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update empresa: %w", err)
	}
	return nil
}

// ListByCorretor devolve as empresas da carteira do corretor, com paginação.
func (r *EmpresaRepo) ListByCorretor(ctx context.Context, corretorID string, limit, offset int) ([]*entity.Empresa, error) {
	query := `
		SELECT ` + empresaCols + `
		FROM empresas WHERE corretor_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, corretorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Empresa
	for rows.Next() {
		var e entity.Empresa
		if err := rows.Scan(&e.ID, &e.CorretorID, &e.RazaoSocial, &e.NomeFantasia, &e.CNPJ, &e.Email, &e.Telefone, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
