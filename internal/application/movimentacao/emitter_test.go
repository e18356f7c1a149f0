package movimentacao

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalseg/corretora-api/internal/domain"
	"github.com/vitalseg/corretora-api/internal/domain/entity"
)

func TestEmitirIdempotente(t *testing.T) {
	a := novoAmbiente()
	f := a.novoFuncionario(entity.FuncionarioAtivo)

	p1, criada, err := a.uc.Emitir(context.Background(), a.escopo(), f.ID, entity.PendenciaDocumentacao, "comprovante de vínculo")
	require.NoError(t, err)
	require.True(t, criada)
	require.NotEmpty(t, p1.Protocolo)
	assert.Equal(t, entity.PendenciaPendente, p1.Status)
	assert.Equal(t, testCorretorID, p1.CorretorID)

	// Reemissão do mesmo par (funcionário, tipo) devolve a aberta existente.
	p2, criada, err := a.uc.Emitir(context.Background(), a.escopo(), f.ID, entity.PendenciaDocumentacao, "comprovante de vínculo")
	require.NoError(t, err)
	assert.False(t, criada)
	assert.Equal(t, p1.ID, p2.ID)
	assert.Equal(t, p1.Protocolo, p2.Protocolo)

	abertas := 0
	for _, p := range a.store.pendencias {
		if p.Status == entity.PendenciaPendente {
			abertas++
		}
	}
	assert.Equal(t, 1, abertas)
}

func TestEmitirTiposDistintosCoexistem(t *testing.T) {
	a := novoAmbiente()
	f := a.novoFuncionario(entity.FuncionarioAtivo)

	_, criada, err := a.uc.Emitir(context.Background(), a.escopo(), f.ID, entity.PendenciaDocumentacao, "")
	require.NoError(t, err)
	require.True(t, criada)

	// Pendência aberta de outro tipo para o mesmo funcionário não conflita.
	_, err = a.uc.SolicitarExclusao(context.Background(), a.escopo(), f.ID, "desligamento")
	require.NoError(t, err)

	assert.Equal(t, 2, len(a.store.pendencias))
}

func TestEmitirSemVinculoCorretor(t *testing.T) {
	a := novoAmbiente()
	a.store.filiais[testFilialID].CorretorID = ""
	f := a.novoFuncionario(entity.FuncionarioAtivo)

	_, _, err := a.uc.Emitir(context.Background(), Escopo{EmpresaID: testEmpresaID}, f.ID, entity.PendenciaDocumentacao, "")
	require.ErrorIs(t, err, domain.ErrVinculoCorretor)
	assert.Empty(t, a.store.pendencias)
}

func TestEmitirCorridaConcorrente(t *testing.T) {
	a := novoAmbiente()
	f := a.novoFuncionario(entity.FuncionarioAtivo)
	a.store.simularCorridaPendencia = true

	// Outro emissor vence a corrida entre a checagem e o insert; o índice
	// único aponta a colisão e a emissão devolve a linha vencedora.
	p, criada, err := a.uc.Emitir(context.Background(), a.escopo(), f.ID, entity.PendenciaDocumentacao, "")
	require.NoError(t, err)
	assert.False(t, criada)
	require.NotNil(t, p)
	assert.Contains(t, p.Protocolo, "CONCORRENTE-")
}

func TestEmitirFuncionarioInexistente(t *testing.T) {
	a := novoAmbiente()

	_, _, err := a.uc.Emitir(context.Background(), a.escopo(), "nao-existe", entity.PendenciaDocumentacao, "")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEmitirForaDoEscopo(t *testing.T) {
	a := novoAmbiente()
	f := a.novoFuncionario(entity.FuncionarioAtivo)

	_, _, err := a.uc.Emitir(context.Background(), Escopo{CorretorID: "corretor-alheio"}, f.ID, entity.PendenciaDocumentacao, "")
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGerarProtocoloUnico(t *testing.T) {
	vistos := make(map[string]bool)
	for i := 0; i < 100; i++ {
		p := gerarProtocolo(timeNowFixed())
		require.False(t, vistos[p], "protocolo repetido: %s", p)
		vistos[p] = true
	}
}

func timeNowFixed() (t0 time.Time) {
	t0, _ = time.Parse("2006-01-02", "2026-03-01")
	return t0
}

func TestEmitirTipoDesconhecido(t *testing.T) {
	a := novoAmbiente()
	f := a.novoFuncionario(entity.FuncionarioAtivo)

	// Um tipo fora do conjunto fechado nunca teria destino de resolução: a
	// pendência ficaria aberta para sempre.
	_, _, err := a.uc.Emitir(context.Background(), a.escopo(), f.ID, "tipo-que-nao-existe", "")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, a.store.pendencias)
}

func TestEmitirTipoIncoerenteComStatus(t *testing.T) {
	a := novoAmbiente()
	ativo := a.novoFuncionario(entity.FuncionarioAtivo)
	pendente := a.novoFuncionario(entity.FuncionarioPendente)

	// Ativação avulsa para funcionário já ativo criaria uma pendência cuja
	// negação não tem transição legal.
	_, _, err := a.uc.Emitir(context.Background(), a.escopo(), ativo.ID, entity.PendenciaAtivacao, "")
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = a.uc.Emitir(context.Background(), a.escopo(), pendente.ID, entity.PendenciaCancelamento, "")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, a.store.pendencias)
}

func TestEmitirTipoDeTransicaoExigidoPeloStatus(t *testing.T) {
	a := novoAmbiente()
	f := a.novoFuncionario(entity.FuncionarioExclusaoSolicitada)

	// Emissão avulsa do tipo que o status exige funciona como o reparo,
	// inclusive no status de reversão retroativo.
	p, criada, err := a.uc.Emitir(context.Background(), a.escopo(), f.ID, entity.PendenciaCancelamento, "")
	require.NoError(t, err)
	assert.True(t, criada)
	assert.Equal(t, entity.FuncionarioAtivo, p.StatusAnterior)
}
