package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/vitalseg/corretora-api/internal/domain"
	"github.com/vitalseg/corretora-api/internal/domain/entity"
	"github.com/vitalseg/corretora-api/internal/domain/repository"
)

var _ repository.PendenciaRepository = (*PendenciaRepo)(nil)

const pendenciaCols = `id, protocolo, tipo, funcionario_id, filial_id, corretor_id, status_anterior, detalhe, status, criada_em, vence_em, concluida_em`

// PendenciaRepo implementação do porto PendenciaRepository sobre PostgreSQL (usável com pool ou tx).
//
// O índice único parcial abaixo é o backstop do invariante de pendência
// única por (funcionário, tipo) quando duas emissões concorrem:
//
//	CREATE UNIQUE INDEX pendencias_aberta_unq
//	    ON pendencias (funcionario_id, tipo) WHERE status = 'pendente';
type PendenciaRepo struct {
	q Querier
}

// NewPendenciaRepository constrói o adaptador de persistência para pendências. Passar pool ou tx (Querier).
func NewPendenciaRepository(q Querier) *PendenciaRepo {
	return &PendenciaRepo{q: q}
}

// Create persiste uma nova pendência. Devolve domain.ErrDuplicate na violação
// do índice único parcial (já existe pendência aberta do mesmo tipo).
func (r *PendenciaRepo) Create(ctx context.Context, p *entity.Pendencia) error {
	query := `
		INSERT INTO pendencias (id, protocolo, tipo, funcionario_id, filial_id, corretor_id, status_anterior, detalhe, status, criada_em, vence_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Protocolo, p.Tipo, p.FuncionarioID, p.FilialID, p.CorretorID,
		p.StatusAnterior, p.Detalhe, p.Status, p.CriadaEm, p.VenceEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert pendencia: %w", err)
	}
	return nil
}

// GetByID obtém uma pendência por ID.
func (r *PendenciaRepo) GetByID(ctx context.Context, id string) (*entity.Pendencia, error) {
	query := `SELECT ` + pendenciaCols + ` FROM pendencias WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByIDForUpdate obtém uma pendência bloqueando a linha (SELECT FOR UPDATE).
func (r *PendenciaRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Pendencia, error) {
	query := `SELECT ` + pendenciaCols + ` FROM pendencias WHERE id = $1 FOR UPDATE`
	return r.scanOne(ctx, query, id)
}

// GetByProtocolo obtém uma pendência pelo número de protocolo.
func (r *PendenciaRepo) GetByProtocolo(ctx context.Context, protocolo string) (*entity.Pendencia, error) {
	query := `SELECT ` + pendenciaCols + ` FROM pendencias WHERE protocolo = $1`
	return r.scanOne(ctx, query, protocolo)
}

// GetAbertaPorTipo devolve a pendência aberta do par (funcionário, tipo), ou nil.
func (r *PendenciaRepo) GetAbertaPorTipo(ctx context.Context, funcionarioID, tipo string) (*entity.Pendencia, error) {
	query := `
		SELECT ` + pendenciaCols + `
		FROM pendencias
		WHERE funcionario_id = $1 AND tipo = $2 AND status = 'pendente'`
	return r.scanOne(ctx, query, funcionarioID, tipo)
}

func (r *PendenciaRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Pendencia, error) {
	var p entity.Pendencia
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.Protocolo, &p.Tipo, &p.FuncionarioID, &p.FilialID, &p.CorretorID,
		&p.StatusAnterior, &p.Detalhe, &p.Status, &p.CriadaEm, &p.VenceEm, &p.ConcluidaEm,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pendencia: %w", err)
	}
	return &p, nil
}

// Concluir marca a pendência como concluída.
func (r *PendenciaRepo) Concluir(ctx context.Context, id string, concluidaEm time.Time) error {
	query := `UPDATE pendencias SET status = 'concluido', concluida_em = $2 WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, id, concluidaEm)
	if err != nil {
		return fmt.Errorf("concluir pendencia: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCorretor lista pendências da carteira do corretor, opcionalmente por status.
func (r *PendenciaRepo) ListByCorretor(ctx context.Context, corretorID, status string, limit, offset int) ([]*entity.Pendencia, error) {
	query := `
		SELECT ` + pendenciaCols + `
		FROM pendencias
		WHERE corretor_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY criada_em DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, corretorID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pendencias corretor: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// ListByFilial lista pendências de uma filial, opcionalmente por status.
func (r *PendenciaRepo) ListByFilial(ctx context.Context, filialID, status string, limit, offset int) ([]*entity.Pendencia, error) {
	query := `
		SELECT ` + pendenciaCols + `
		FROM pendencias
		WHERE filial_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY criada_em DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, filialID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pendencias filial: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *PendenciaRepo) scanAll(rows pgx.Rows) ([]*entity.Pendencia, error) {
	var list []*entity.Pendencia
	for rows.Next() {
		var p entity.Pendencia
		if err := rows.Scan(&p.ID, &p.Protocolo, &p.Tipo, &p.FuncionarioID, &p.FilialID, &p.CorretorID,
			&p.StatusAnterior, &p.Detalhe, &p.Status, &p.CriadaEm, &p.VenceEm, &p.ConcluidaEm); err != nil {
			return nil, fmt.Errorf("scan pendencia: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
