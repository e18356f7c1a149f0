package movimentacao

import (
	"context"
	"fmt"
	"time"

	"github.com/vitalseg/corretora-api/internal/domain"
	"github.com/vitalseg/corretora-api/internal/domain/entity"
	domainmov "github.com/vitalseg/corretora-api/internal/domain/movimentacao"
	"github.com/vitalseg/corretora-api/internal/domain/repository"
)

// ResultadoResolucao é o retrato do funcionário após a resolução, para
// notificação do caller.
type ResultadoResolucao struct {
	PendenciaID   string
	Protocolo     string
	Tipo          string
	Decisao       string
	FuncionarioID string
	Nome          string
	FilialID      string
	NovoStatus    string
}

// Resolver processa a decisão do corretor sobre uma pendência aberta.
// A mudança de status do funcionário (e das adesões, quando aplicável) e a
// conclusão da pendência são uma única unidade atômica: ou ambas acontecem,
// ou nenhuma.
//
// Erros: domain.ErrNotFound (pendência inexistente ou fora do escopo),
// domain.ErrJaResolvida (sinal benigno de submissão duplicada) e
// TransicaoInvalidaError. Falhas de persistência sobem embrulhadas e NÃO são
// reprocessadas internamente, para não aplicar a decisão duas vezes.
func (uc *UseCase) Resolver(ctx context.Context, escopo Escopo, pendenciaID, decisao string) (*ResultadoResolucao, error) {
	if !domainmov.DecisaoValida(decisao) {
		return nil, domain.ErrInvalidInput
	}

	var resultado *ResultadoResolucao
	err := uc.txRunner.Run(ctx, func(
		funcRepo repository.FuncionarioRepository,
		adesaoRepo repository.AdesaoRepository,
		pendRepo repository.PendenciaRepository,
		_ repository.FilialRepository,
	) error {
		p, err := pendRepo.GetByIDForUpdate(ctx, pendenciaID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if escopo.CorretorID != "" && p.CorretorID != escopo.CorretorID {
			// Fora da carteira do corretor: não revelar a existência.
			return domain.ErrNotFound
		}
		if p.Status != entity.PendenciaPendente {
			return domain.ErrJaResolvida
		}

		f, err := funcRepo.GetByIDForUpdate(ctx, p.FuncionarioID)
		if err != nil {
			return err
		}
		if f == nil {
			return fmt.Errorf("funcionário %s da pendência %s: %w", p.FuncionarioID, p.ID, domain.ErrNotFound)
		}

		now := time.Now()
		destino, err := domainmov.DestinoResolucao(p.Tipo, decisao, p.StatusAnterior)
		if err != nil {
			return err
		}
		if destino != "" && destino != f.Status {
			if err := domainmov.ValidarTransicao(f.Status, destino); err != nil {
				return err
			}
			if err := funcRepo.UpdateStatus(ctx, f.ID, destino, now); err != nil {
				return err
			}
			f.Status = destino
		}

		if statusAdesao := statusAdesaoAposResolucao(p.Tipo, decisao); statusAdesao != "" {
			if err := adesaoRepo.UpdateStatusPorFuncionario(ctx, f.ID, statusAdesao, now); err != nil {
				return err
			}
		}

		if err := pendRepo.Concluir(ctx, p.ID, now); err != nil {
			return err
		}

		resultado = &ResultadoResolucao{
			PendenciaID:   p.ID,
			Protocolo:     p.Protocolo,
			Tipo:          p.Tipo,
			Decisao:       decisao,
			FuncionarioID: f.ID,
			Nome:          f.Nome,
			FilialID:      f.FilialID,
			NovoStatus:    f.Status,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resultado, nil
}

// statusAdesaoAposResolucao devolve o novo status das adesões do funcionário
// após a resolução, ou vazio quando a resolução não as afeta.
func statusAdesaoAposResolucao(tipo, decisao string) string {
	switch tipo {
	case entity.PendenciaAtivacao:
		if decisao == domainmov.DecisaoAprovar {
			return entity.AdesaoAtiva
		}
		return entity.AdesaoInativa
	case entity.PendenciaCancelamento:
		if decisao == domainmov.DecisaoAprovar {
			return entity.AdesaoInativa
		}
	}
	return ""
}
