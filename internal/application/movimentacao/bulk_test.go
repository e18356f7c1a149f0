package movimentacao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalseg/corretora-api/internal/domain"
	"github.com/vitalseg/corretora-api/internal/domain/entity"
	domainmov "github.com/vitalseg/corretora-api/internal/domain/movimentacao"
)

func TestResolverEmLote(t *testing.T) {
	a := novoAmbiente()
	ctx := context.Background()

	var ids []string
	for i := 0; i < 5; i++ {
		f := a.novoFuncionario(entity.FuncionarioPendente)
		p := a.novaPendencia(f.ID, entity.PendenciaAtivacao, "")
		ids = append(ids, p.ID)
	}
	ids = append(ids, "pendencia-inexistente")

	res, err := a.uc.ResolverEmLote(ctx, a.escopo(), ids, domainmov.DecisaoAprovar)
	require.NoError(t, err)

	// Exatamente um desfecho por ID de entrada.
	assert.Len(t, res.Sucessos, 5)
	require.Len(t, res.Falhas, 1)
	assert.Equal(t, "pendencia-inexistente", res.Falhas[0].PendenciaID)
	assert.Equal(t, domain.ErrNotFound.Error(), res.Falhas[0].Erro)

	for _, s := range res.Sucessos {
		assert.Equal(t, entity.FuncionarioAtivo, s.NovoStatus)
		assert.False(t, s.JaResolvida)
	}
	for _, p := range a.store.pendencias {
		assert.Equal(t, entity.PendenciaConcluida, p.Status)
	}
}

func TestResolverEmLoteIDDuplicado(t *testing.T) {
	a := novoAmbiente()
	f := a.novoFuncionario(entity.FuncionarioPendente)
	p := a.novaPendencia(f.ID, entity.PendenciaAtivacao, "")

	// O mesmo ID duas vezes no mesmo lote: a segunda resolução encontra a
	// pendência concluída e vira sucesso marcado, não falha.
	res, err := a.uc.ResolverEmLote(context.Background(), a.escopo(), []string{p.ID, p.ID}, domainmov.DecisaoAprovar)
	require.NoError(t, err)
	require.Len(t, res.Sucessos, 2)
	assert.Empty(t, res.Falhas)

	jaResolvidas := 0
	for _, s := range res.Sucessos {
		if s.JaResolvida {
			jaResolvidas++
		}
	}
	assert.Equal(t, 1, jaResolvidas)
	assert.Equal(t, entity.FuncionarioAtivo, a.store.funcionarios[f.ID].Status)
}

func TestResolverEmLoteVazio(t *testing.T) {
	a := novoAmbiente()

	res, err := a.uc.ResolverEmLote(context.Background(), a.escopo(), nil, domainmov.DecisaoNegar)
	require.NoError(t, err)
	assert.Empty(t, res.Sucessos)
	assert.Empty(t, res.Falhas)
}

func TestResolverEmLoteDecisaoInvalida(t *testing.T) {
	a := novoAmbiente()

	_, err := a.uc.ResolverEmLote(context.Background(), a.escopo(), []string{"x"}, "talvez")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResolverEmLoteContextoCancelado(t *testing.T) {
	a := novoAmbiente()
	var ids []string
	for i := 0; i < 3; i++ {
		f := a.novoFuncionario(entity.FuncionarioPendente)
		ids = append(ids, a.novaPendencia(f.ID, entity.PendenciaAtivacao, "").ID)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := a.uc.ResolverEmLote(ctx, a.escopo(), ids, domainmov.DecisaoAprovar)
	require.NoError(t, err)
	assert.Empty(t, res.Sucessos)
	assert.Len(t, res.Falhas, 3, "IDs não processados ganham desfecho de falha")
}
