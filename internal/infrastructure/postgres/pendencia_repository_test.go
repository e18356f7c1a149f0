package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalseg/corretora-api/internal/domain"
	"github.com/vitalseg/corretora-api/internal/domain/entity"
)

func novaPendenciaTeste(now time.Time) *entity.Pendencia {
	return &entity.Pendencia{
		ID:             "pend-1",
		Protocolo:      "20260828120000-ABCD1234",
		Tipo:           entity.PendenciaAtivacao,
		FuncionarioID:  "func-1",
		FilialID:       "filial-1",
		CorretorID:     "corretor-1",
		StatusAnterior: "",
		Detalhe:        "inclusão",
		Status:         entity.PendenciaPendente,
		CriadaEm:       now,
		VenceEm:        now.Add(7 * 24 * time.Hour),
	}
}

func TestPendenciaRepoCreate(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPendenciaRepository(mock)
	now := time.Now()
	p := novaPendenciaTeste(now)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO pendencias`)).
		WithArgs(p.ID, p.Protocolo, p.Tipo, p.FuncionarioID, p.FilialID, p.CorretorID,
			p.StatusAnterior, p.Detalhe, p.Status, p.CriadaEm, p.VenceEm).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), p))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPendenciaRepoCreateDuplicada(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPendenciaRepository(mock)
	p := novaPendenciaTeste(time.Now())

	// Violação do índice único parcial pendencias_aberta_unq.
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO pendencias`)).
		WithArgs(p.ID, p.Protocolo, p.Tipo, p.FuncionarioID, p.FilialID, p.CorretorID,
			p.StatusAnterior, p.Detalhe, p.Status, p.CriadaEm, p.VenceEm).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "pendencias_aberta_unq"})

	err = repo.Create(context.Background(), p)
	require.ErrorIs(t, err, domain.ErrDuplicate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPendenciaRepoGetAbertaPorTipo(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPendenciaRepository(mock)
	now := time.Now()

	cols := []string{"id", "protocolo", "tipo", "funcionario_id", "filial_id", "corretor_id",
		"status_anterior", "detalhe", "status", "criada_em", "vence_em", "concluida_em"}
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE funcionario_id = $1 AND tipo = $2 AND status = 'pendente'`)).
		WithArgs("func-1", entity.PendenciaAtivacao).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow("pend-1", "20260828120000-ABCD1234", entity.PendenciaAtivacao, "func-1", "filial-1", "corretor-1",
				"", "inclusão", entity.PendenciaPendente, now, now.Add(7*24*time.Hour), nil))

	p, err := repo.GetAbertaPorTipo(context.Background(), "func-1", entity.PendenciaAtivacao)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "pend-1", p.ID)
	assert.Equal(t, entity.PendenciaPendente, p.Status)
	assert.Nil(t, p.ConcluidaEm)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPendenciaRepoGetAbertaPorTipoSemLinha(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPendenciaRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE funcionario_id = $1 AND tipo = $2 AND status = 'pendente'`)).
		WithArgs("func-1", entity.PendenciaDocumentacao).
		WillReturnError(pgx.ErrNoRows)

	// Ausência de linha não é erro: o emissor decide criar.
	p, err := repo.GetAbertaPorTipo(context.Background(), "func-1", entity.PendenciaDocumentacao)
	require.NoError(t, err)
	assert.Nil(t, p)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPendenciaRepoConcluir(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPendenciaRepository(mock)
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE pendencias SET status = 'concluido', concluida_em = $2 WHERE id = $1`)).
		WithArgs("pend-1", now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.Concluir(context.Background(), "pend-1", now))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPendenciaRepoConcluirInexistente(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPendenciaRepository(mock)
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE pendencias SET status = 'concluido', concluida_em = $2 WHERE id = $1`)).
		WithArgs("nao-existe", now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.Concluir(context.Background(), "nao-existe", now)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("qualquer outro erro")))
}
