package movimentacao

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalseg/corretora-api/internal/domain"
	"github.com/vitalseg/corretora-api/internal/domain/entity"
)

func (a *ambiente) novoFuncionarioNomeCPF(nome, cpf string) *entity.Funcionario {
	f := &entity.Funcionario{
		ID:       uuid.New().String(),
		FilialID: testFilialID,
		Nome:     nome,
		CPF:      cpf,
		Status:   entity.FuncionarioAtivo,
	}
	a.store.funcionarios[f.ID] = f
	return f
}

func TestDuplicadosPorCPF(t *testing.T) {
	a := novoAmbiente()

	// Mesmo CPF com formatações diferentes: duplicado real.
	d1 := a.novoFuncionarioNomeCPF("Maria Souza", "529.982.247-25")
	d2 := a.novoFuncionarioNomeCPF("Maria S. Souza", "52998224725")
	// CPF único: fora do resultado.
	a.novoFuncionarioNomeCPF("Pedro Alves", "11144477735")

	res, err := a.uc.Duplicados(context.Background(), a.escopo())
	require.NoError(t, err)
	require.Len(t, res.PorCPF, 1)
	assert.Equal(t, "52998224725", res.PorCPF[0].Identidade)
	assert.ElementsMatch(t, []string{d1.ID, d2.ID}, res.PorCPF[0].FuncionarioIDs)
	assert.Empty(t, res.Homonimos)
}

func TestDuplicadosHomonimosSemCPF(t *testing.T) {
	a := novoAmbiente()

	// Sem CPF, o agrupamento consultivo usa o nome normalizado: acentos,
	// caixa e espaçamento não diferenciam.
	h1 := a.novoFuncionarioNomeCPF("José da Silva", "")
	h2 := a.novoFuncionarioNomeCPF("JOSE  DA  SILVA", "")
	a.novoFuncionarioNomeCPF("Ana Clara", "")

	res, err := a.uc.Duplicados(context.Background(), a.escopo())
	require.NoError(t, err)
	assert.Empty(t, res.PorCPF)
	require.Len(t, res.Homonimos, 1)
	assert.Equal(t, "jose da silva", res.Homonimos[0].Identidade)
	assert.ElementsMatch(t, []string{h1.ID, h2.ID}, res.Homonimos[0].FuncionarioIDs)
}

func TestDuplicadosCPFSeparaHomonimos(t *testing.T) {
	a := novoAmbiente()

	// Nomes iguais com CPFs distintos não são duplicados.
	a.novoFuncionarioNomeCPF("João Santos", "52998224725")
	a.novoFuncionarioNomeCPF("João Santos", "11144477735")

	res, err := a.uc.Duplicados(context.Background(), a.escopo())
	require.NoError(t, err)
	assert.Empty(t, res.PorCPF)
	assert.Empty(t, res.Homonimos)
}

func TestDuplicadosRestritoAFilial(t *testing.T) {
	a := novoAmbiente()
	a.store.filiais["filial-2"] = &entity.Filial{
		ID:         "filial-2",
		EmpresaID:  testEmpresaID,
		CorretorID: testCorretorID,
	}
	a.novoFuncionarioNomeCPF("Maria Souza", "52998224725")
	foraDaFilial := &entity.Funcionario{
		ID:       uuid.New().String(),
		FilialID: "filial-2",
		Nome:     "Maria Souza",
		CPF:      "52998224725",
		Status:   entity.FuncionarioAtivo,
	}
	a.store.funcionarios[foraDaFilial.ID] = foraDaFilial

	escopo := a.escopo()
	escopo.FilialID = testFilialID
	res, err := a.uc.Duplicados(context.Background(), escopo)
	require.NoError(t, err)
	assert.Empty(t, res.PorCPF, "a outra ocorrência está fora da filial do escopo")

	// Sem o recorte de filial, o par aparece.
	res, err = a.uc.Duplicados(context.Background(), a.escopo())
	require.NoError(t, err)
	assert.Len(t, res.PorCPF, 1)
}

func TestDuplicadosExigeEmpresa(t *testing.T) {
	a := novoAmbiente()

	_, err := a.uc.Duplicados(context.Background(), Escopo{CorretorID: testCorretorID})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDuplicadosForaDaCarteira(t *testing.T) {
	a := novoAmbiente()
	a.novoFuncionarioNomeCPF("Maria Souza", "52998224725")
	a.novoFuncionarioNomeCPF("Maria S. Souza", "52998224725")

	// CPFs são dado pessoal: corretor sem filial na empresa não lê os grupos.
	res, err := a.uc.Duplicados(context.Background(), Escopo{CorretorID: "corretor-alheio", EmpresaID: testEmpresaID})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, res)
}
