package movimentacao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalseg/corretora-api/internal/domain"
	"github.com/vitalseg/corretora-api/internal/domain/entity"
)

func TestRepararBackfillDeDeriva(t *testing.T) {
	a := novoAmbiente()
	ctx := context.Background()

	// Três funcionários em deriva: status exige pendência, pendência ausente.
	fPendente := a.novoFuncionario(entity.FuncionarioPendente)
	fExclusao := a.novoFuncionario(entity.FuncionarioExclusaoSolicitada)
	fEdicao := a.novoFuncionario(entity.FuncionarioEdicaoSolicitada)
	// E dois saudáveis, que o reparo deve ignorar.
	a.novoFuncionario(entity.FuncionarioAtivo)
	a.novoFuncionario(entity.FuncionarioDesativado)

	resultados, err := a.uc.Reparar(ctx, a.escopo())
	require.NoError(t, err)
	require.Len(t, resultados, 3)

	porFuncionario := make(map[string]ResultadoReparo)
	for _, r := range resultados {
		porFuncionario[r.FuncionarioID] = r
		assert.True(t, r.Criada, "primeira rodada deve criar: %s", r.FuncionarioID)
		assert.Empty(t, r.Erro)
		assert.NotEmpty(t, r.Protocolo)
	}
	assert.Equal(t, entity.PendenciaAtivacao, porFuncionario[fPendente.ID].Tipo)
	assert.Equal(t, entity.PendenciaCancelamento, porFuncionario[fExclusao.ID].Tipo)
	assert.Equal(t, entity.PendenciaAlteracao, porFuncionario[fEdicao.ID].Tipo)

	// Pendências retroativas de cancelamento/alteração revertem para ativo
	// quando negadas, já que o status pré-transição não foi observado.
	p := a.store.pendenciaAberta(fExclusao.ID, entity.PendenciaCancelamento)
	require.NotNil(t, p)
	assert.Equal(t, entity.FuncionarioAtivo, p.StatusAnterior)

	// Segunda rodada sem mutações intermediárias: nada novo.
	resultados, err = a.uc.Reparar(ctx, a.escopo())
	require.NoError(t, err)
	require.Len(t, resultados, 3)
	for _, r := range resultados {
		assert.False(t, r.Criada, "rodada repetida não deve duplicar: %s", r.FuncionarioID)
		assert.NotEmpty(t, r.Protocolo, "deve apontar a pendência existente")
	}
	assert.Equal(t, 3, len(a.store.pendencias))
}

func TestRepararIsolaFalhaPorFuncionario(t *testing.T) {
	a := novoAmbiente()

	// Filial sem corretor: emissões para ela falham com ErrVinculoCorretor.
	a.store.filiais["filial-orfa"] = &entity.Filial{
		ID:        "filial-orfa",
		EmpresaID: testEmpresaID,
		Status:    entity.FilialAtiva,
	}
	quebrado := &entity.Funcionario{
		ID:       "func-quebrado",
		FilialID: "filial-orfa",
		Nome:     "Sem Corretor",
		Status:   entity.FuncionarioPendente,
	}
	a.store.funcionarios[quebrado.ID] = quebrado
	saudavel := a.novoFuncionario(entity.FuncionarioPendente)

	resultados, err := a.uc.Reparar(context.Background(), a.escopo())
	require.NoError(t, err, "falha individual não aborta a varredura")
	require.Len(t, resultados, 2)

	porFuncionario := make(map[string]ResultadoReparo)
	for _, r := range resultados {
		porFuncionario[r.FuncionarioID] = r
	}
	assert.Contains(t, porFuncionario[quebrado.ID].Erro, domain.ErrVinculoCorretor.Error())
	assert.False(t, porFuncionario[quebrado.ID].Criada)
	assert.True(t, porFuncionario[saudavel.ID].Criada)
	assert.NotNil(t, a.store.pendenciaAberta(saudavel.ID, entity.PendenciaAtivacao))
}

func TestRepararRestritoAFilial(t *testing.T) {
	a := novoAmbiente()
	a.store.filiais["filial-2"] = &entity.Filial{
		ID:         "filial-2",
		EmpresaID:  testEmpresaID,
		CorretorID: testCorretorID,
		Status:     entity.FilialAtiva,
	}
	dentro := a.novoFuncionario(entity.FuncionarioPendente)
	fora := &entity.Funcionario{ID: "func-fora", FilialID: "filial-2", Status: entity.FuncionarioPendente}
	a.store.funcionarios[fora.ID] = fora

	escopo := a.escopo()
	escopo.FilialID = testFilialID
	resultados, err := a.uc.Reparar(context.Background(), escopo)
	require.NoError(t, err)
	require.Len(t, resultados, 1)
	assert.Equal(t, dentro.ID, resultados[0].FuncionarioID)
}

func TestRepararExigeEmpresa(t *testing.T) {
	a := novoAmbiente()

	_, err := a.uc.Reparar(context.Background(), Escopo{CorretorID: testCorretorID})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRepararForaDaCarteira(t *testing.T) {
	a := novoAmbiente()
	a.novoFuncionario(entity.FuncionarioPendente)

	// Corretor sem filial na empresa não dispara reparo nem descobre que a
	// empresa existe.
	_, err := a.uc.Reparar(context.Background(), Escopo{CorretorID: "corretor-alheio", EmpresaID: testEmpresaID})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, a.store.pendencias)

	escopo := Escopo{CorretorID: "corretor-alheio", EmpresaID: testEmpresaID, FilialID: testFilialID}
	_, err = a.uc.Reparar(context.Background(), escopo)
	require.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, a.store.pendencias)
}
