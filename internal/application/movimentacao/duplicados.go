package movimentacao

import (
	"context"
	"sort"

	"github.com/vitalseg/corretora-api/pkg/documento"
)

// GrupoDuplicado agrupa funcionários com a mesma identidade normalizada.
type GrupoDuplicado struct {
	Identidade     string // CPF normalizado, ou nome normalizado para homônimos
	FuncionarioIDs []string
}

// ResultadoDuplicados é a saída somente-leitura da detecção de duplicados.
// PorCPF são prováveis cadastros duplicados; Homonimos é uma lista consultiva
// de funcionários sem CPF agrupados por nome normalizado.
type ResultadoDuplicados struct {
	PorCPF    []GrupoDuplicado
	Homonimos []GrupoDuplicado
}

// Duplicados varre os funcionários do escopo e devolve os grupos com mais de
// um membro por CPF normalizado. Não altera estado: a consolidação dos
// cadastros duplicados é decisão manual do operador.
func (uc *UseCase) Duplicados(ctx context.Context, escopo Escopo) (*ResultadoDuplicados, error) {
	if err := uc.validarEscopoEmpresa(ctx, escopo); err != nil {
		return nil, err
	}

	funcionarios, err := uc.funcRepo.ListByEmpresa(ctx, escopo.EmpresaID, "")
	if err != nil {
		return nil, err
	}

	porCPF := make(map[string][]string)
	porNome := make(map[string][]string)
	for _, f := range funcionarios {
		if escopo.FilialID != "" && f.FilialID != escopo.FilialID {
			continue
		}
		if cpf := documento.NormalizarCPF(f.CPF); cpf != "" {
			porCPF[cpf] = append(porCPF[cpf], f.ID)
			continue
		}
		if nome := documento.NormalizarNome(f.Nome); nome != "" {
			porNome[nome] = append(porNome[nome], f.ID)
		}
	}

	return &ResultadoDuplicados{
		PorCPF:    gruposComMaisDeUm(porCPF),
		Homonimos: gruposComMaisDeUm(porNome),
	}, nil
}

// gruposComMaisDeUm filtra os grupos unitários e devolve o restante em ordem
// determinística.
func gruposComMaisDeUm(grupos map[string][]string) []GrupoDuplicado {
	var out []GrupoDuplicado
	for identidade, ids := range grupos {
		if len(ids) > 1 {
			out = append(out, GrupoDuplicado{Identidade: identidade, FuncionarioIDs: ids})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Identidade < out[j].Identidade })
	return out
}
