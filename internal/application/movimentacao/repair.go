package movimentacao

import (
	"context"
	"time"

	"github.com/vitalseg/corretora-api/internal/domain"
	"github.com/vitalseg/corretora-api/internal/domain/entity"
	domainmov "github.com/vitalseg/corretora-api/internal/domain/movimentacao"
	"github.com/vitalseg/corretora-api/internal/domain/repository"
)

// ResultadoReparo é o desfecho por funcionário de uma rodada de reparo.
type ResultadoReparo struct {
	FuncionarioID string
	Tipo          string
	Criada        bool
	Protocolo     string
	Erro          string
}

// Reparar varre os funcionários do escopo cujo status implica uma pendência
// aberta e emite as que faltam. Correções manuais no banco e falhas parciais
// de versões antigas deixam funcionários em pendente/exclusao_solicitada sem
// a pendência correspondente; esta rotina fecha essa deriva.
//
// Cada funcionário é sua própria unidade de trabalho: a falha em um não
// aborta a varredura dos demais. Como a emissão é idempotente, rodadas
// repetidas ou concorrentes com o tráfego normal nunca duplicam — uma nova
// rodada sem mutações intermediárias devolve Criada=false para todos.
func (uc *UseCase) Reparar(ctx context.Context, escopo Escopo) ([]ResultadoReparo, error) {
	if err := uc.validarEscopoEmpresa(ctx, escopo); err != nil {
		return nil, err
	}

	funcionarios, err := uc.funcRepo.ListComPendenciaExigida(ctx, escopo.EmpresaID, escopo.FilialID)
	if err != nil {
		return nil, err
	}

	resultados := make([]ResultadoReparo, 0, len(funcionarios))
	for _, f := range funcionarios {
		resultado := uc.repararFuncionario(ctx, f.ID)
		resultados = append(resultados, resultado)
	}
	return resultados, nil
}

// repararFuncionario emite a pendência exigida pelo status do funcionário,
// em transação própria. Relê o funcionário com bloqueio porque o status pode
// ter mudado entre a listagem e o reparo.
func (uc *UseCase) repararFuncionario(ctx context.Context, funcionarioID string) ResultadoReparo {
	resultado := ResultadoReparo{FuncionarioID: funcionarioID}

	err := uc.txRunner.Run(ctx, func(
		funcRepo repository.FuncionarioRepository,
		_ repository.AdesaoRepository,
		pendRepo repository.PendenciaRepository,
		filialRepo repository.FilialRepository,
	) error {
		f, err := funcRepo.GetByIDForUpdate(ctx, funcionarioID)
		if err != nil {
			return err
		}
		if f == nil {
			return domain.ErrNotFound
		}
		tipo, exigida := domainmov.TipoPendenciaExigida(f.Status)
		if !exigida {
			// Status mudou desde a listagem; nada a reparar.
			return nil
		}
		resultado.Tipo = tipo

		pendencia, criada, err := uc.emitir(ctx, pendRepo, filialRepo, f, tipo, statusAnteriorRetroativo(tipo), "reparo automático", time.Now())
		if err != nil {
			return err
		}
		resultado.Criada = criada
		resultado.Protocolo = pendencia.Protocolo
		return nil
	})
	if err != nil {
		resultado.Erro = err.Error()
	}
	return resultado
}

// statusAnteriorRetroativo escolhe o status de reversão para pendências
// criadas retroativamente, onde o status pré-transição não foi observado.
func statusAnteriorRetroativo(tipo string) string {
	switch tipo {
	case entity.PendenciaCancelamento, entity.PendenciaAlteracao:
		return entity.FuncionarioAtivo
	}
	return ""
}
