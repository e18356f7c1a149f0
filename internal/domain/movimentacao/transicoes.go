// Package movimentacao contém as regras puras da movimentação de vidas:
// a tabela de transições de status do funcionário, o mapeamento entre
// status e tipo de pendência esperada e os destinos de aprovação/negação.
// Não tem efeitos colaterais; os casos de uso em application/movimentacao
// aplicam estas regras dentro de transações.
package movimentacao

import (
	"fmt"

	"github.com/vitalseg/corretora-api/internal/domain/entity"
)

// Decisões possíveis sobre uma pendência aberta.
const (
	DecisaoAprovar = "aprovar"
	DecisaoNegar   = "negar"
)

// TransicaoInvalidaError indica uma transição de status fora da tabela,
// reportando o status atual e o destino solicitado.
type TransicaoInvalidaError struct {
	Atual   string
	Destino string
}

func (e *TransicaoInvalidaError) Error() string {
	return fmt.Sprintf("transição inválida: %s -> %s", e.Atual, e.Destino)
}

// transicoes é a tabela de transições legais (origem -> destinos).
var transicoes = map[string][]string{
	entity.FuncionarioPendente: {
		entity.FuncionarioAtivo,            // aprovação da ativação
		entity.FuncionarioDesativado,       // negação da ativação (inclusão recusada)
		entity.FuncionarioEdicaoSolicitada, // pedido de alteração antes de ativar
	},
	entity.FuncionarioAtivo: {
		entity.FuncionarioExclusaoSolicitada,
		entity.FuncionarioEdicaoSolicitada,
		entity.FuncionarioArquivado, // administrativo, sem pendência
	},
	entity.FuncionarioExclusaoSolicitada: {
		entity.FuncionarioDesativado, // aprovação do cancelamento
		entity.FuncionarioAtivo,      // negação: reverte
	},
	entity.FuncionarioEdicaoSolicitada: {
		entity.FuncionarioAtivo,    // resolução com origem ativo
		entity.FuncionarioPendente, // resolução com origem pendente
	},
	entity.FuncionarioDesativado: {
		entity.FuncionarioArquivado,
	},
}

// TransicaoValida informa se a transição atual -> destino está na tabela.
func TransicaoValida(atual, destino string) bool {
	for _, d := range transicoes[atual] {
		if d == destino {
			return true
		}
	}
	return false
}

// ValidarTransicao devolve TransicaoInvalidaError quando a transição não é legal.
func ValidarTransicao(atual, destino string) error {
	if !TransicaoValida(atual, destino) {
		return &TransicaoInvalidaError{Atual: atual, Destino: destino}
	}
	return nil
}

// TipoPendenciaExigida devolve o tipo de pendência aberta que o status do
// funcionário implica. O motor de reparo usa este mapeamento para detectar
// deriva (status que exige pendência sem pendência aberta correspondente).
func TipoPendenciaExigida(status string) (string, bool) {
	switch status {
	case entity.FuncionarioPendente:
		return entity.PendenciaAtivacao, true
	case entity.FuncionarioExclusaoSolicitada:
		return entity.PendenciaCancelamento, true
	case entity.FuncionarioEdicaoSolicitada:
		return entity.PendenciaAlteracao, true
	}
	return "", false
}

// DestinoResolucao devolve o status de destino do funcionário ao resolver
// uma pendência de um dado tipo, conforme a decisão. statusAnterior é o
// status do funcionário antes da transição que emitiu a pendência.
// Destino vazio significa que a resolução não altera o status (documentacao).
func DestinoResolucao(tipo, decisao, statusAnterior string) (string, error) {
	switch tipo {
	case entity.PendenciaAtivacao:
		if decisao == DecisaoAprovar {
			return entity.FuncionarioAtivo, nil
		}
		// Inclusão recusada: permanecer pendente faria o reparo reemitir a
		// pendência recém-fechada em loop.
		return entity.FuncionarioDesativado, nil
	case entity.PendenciaCancelamento:
		if decisao == DecisaoAprovar {
			return entity.FuncionarioDesativado, nil
		}
		if statusAnterior == "" {
			statusAnterior = entity.FuncionarioAtivo
		}
		return statusAnterior, nil
	case entity.PendenciaAlteracao:
		// Ambas as decisões retornam ao status de origem; a aplicação dos
		// dados alterados é feita pela camada de cadastro, fora do motor.
		if statusAnterior == "" {
			statusAnterior = entity.FuncionarioAtivo
		}
		return statusAnterior, nil
	case entity.PendenciaDocumentacao:
		return "", nil
	}
	return "", fmt.Errorf("tipo de pendência desconhecido: %q", tipo)
}

// TipoValido informa se o tipo pertence ao conjunto fechado de tipos de
// pendência. Um tipo fora do conjunto nunca teria destino de resolução e a
// pendência ficaria aberta para sempre.
func TipoValido(tipo string) bool {
	switch tipo {
	case entity.PendenciaAtivacao, entity.PendenciaCancelamento,
		entity.PendenciaAlteracao, entity.PendenciaDocumentacao:
		return true
	}
	return false
}

// DecisaoValida informa se a decisão é aprovar ou negar.
func DecisaoValida(decisao string) bool {
	return decisao == DecisaoAprovar || decisao == DecisaoNegar
}
