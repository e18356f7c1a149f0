package movimentacao

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vitalseg/corretora-api/internal/domain"
	"github.com/vitalseg/corretora-api/internal/domain/entity"
	domainmov "github.com/vitalseg/corretora-api/internal/domain/movimentacao"
	"github.com/vitalseg/corretora-api/internal/domain/repository"
)

// emitir cria (ou devolve a já existente) pendência aberta do par
// (funcionário, tipo), dentro da transação do caller. A checagem de
// existência e o insert acontecem na mesma transação; a violação do índice
// único parcial é tratada como "já existe", não como erro — por isso a
// operação é um "emit" e não um "create": callers podem invocá-la
// especulativamente.
//
// Devolve (pendência, criada, erro). criada=false quando a pendência aberta
// já existia.
func (uc *UseCase) emitir(
	ctx context.Context,
	pendRepo repository.PendenciaRepository,
	filialRepo repository.FilialRepository,
	f *entity.Funcionario,
	tipo, statusAnterior, detalhe string,
	now time.Time,
) (*entity.Pendencia, bool, error) {
	filial, err := filialRepo.GetByID(ctx, f.FilialID)
	if err != nil {
		return nil, false, err
	}
	if filial == nil || filial.CorretorID == "" {
		// Sem vínculo com corretor não há para quem abrir a pendência;
		// aborta a transição que a exigiu.
		return nil, false, domain.ErrVinculoCorretor
	}

	existente, err := pendRepo.GetAbertaPorTipo(ctx, f.ID, tipo)
	if err != nil {
		return nil, false, err
	}
	if existente != nil {
		return existente, false, nil
	}

	p := &entity.Pendencia{
		ID:             uuid.New().String(),
		Protocolo:      gerarProtocolo(now),
		Tipo:           tipo,
		FuncionarioID:  f.ID,
		FilialID:       filial.ID,
		CorretorID:     filial.CorretorID,
		StatusAnterior: statusAnterior,
		Detalhe:        detalhe,
		Status:         entity.PendenciaPendente,
		CriadaEm:       now,
		VenceEm:        now.Add(uc.cfg.PrazoPendencia),
	}
	if err := pendRepo.Create(ctx, p); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			// Emissão concorrente venceu a corrida; devolve a existente.
			existente, err := pendRepo.GetAbertaPorTipo(ctx, f.ID, tipo)
			if err != nil {
				return nil, false, err
			}
			if existente != nil {
				return existente, false, nil
			}
			return nil, false, fmt.Errorf("pendência duplicada sem linha aberta: funcionario=%s tipo=%s", f.ID, tipo)
		}
		return nil, false, err
	}
	return p, true, nil
}

// Emitir emite uma pendência fora de uma transição de status — por exemplo,
// pendências de documentação abertas pelo fluxo de upload. Idempotente.
// O tipo vem do mundo externo e é validado contra o conjunto fechado; tipos
// de transição (ativacao, cancelamento, alteracao) só são aceitos quando o
// status do funcionário os exige, como no reparo.
func (uc *UseCase) Emitir(ctx context.Context, escopo Escopo, funcionarioID, tipo, detalhe string) (*entity.Pendencia, bool, error) {
	if !domainmov.TipoValido(tipo) {
		return nil, false, domain.ErrInvalidInput
	}

	var (
		pendencia *entity.Pendencia
		criada    bool
	)
	err := uc.txRunner.Run(ctx, func(
		funcRepo repository.FuncionarioRepository,
		_ repository.AdesaoRepository,
		pendRepo repository.PendenciaRepository,
		filialRepo repository.FilialRepository,
	) error {
		f, err := funcRepo.GetByID(ctx, funcionarioID)
		if err != nil {
			return err
		}
		if f == nil {
			return domain.ErrNotFound
		}
		if err := uc.validarEscopoFilial(ctx, filialRepo, escopo, f.FilialID); err != nil {
			return err
		}
		if tipo != entity.PendenciaDocumentacao {
			if exigido, ok := domainmov.TipoPendenciaExigida(f.Status); !ok || exigido != tipo {
				return domain.ErrInvalidInput
			}
		}
		pendencia, criada, err = uc.emitir(ctx, pendRepo, filialRepo, f, tipo, statusAnteriorRetroativo(tipo), detalhe, time.Now())
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return pendencia, criada, nil
}

// gerarProtocolo monta um identificador opaco e resistente a colisão:
// timestamp UTC + sufixo aleatório. Nunca reutilizado.
func gerarProtocolo(now time.Time) string {
	sufixo := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return now.UTC().Format("20060102150405") + "-" + sufixo
}

// validarEscopoEmpresa confere que a empresa do escopo está na carteira do
// corretor. A propriedade é verificada pelas filiais, que denormalizam o
// CorretorID; uma empresa sem filial do corretor está fora da carteira.
func (uc *UseCase) validarEscopoEmpresa(ctx context.Context, escopo Escopo) error {
	if escopo.EmpresaID == "" {
		return domain.ErrInvalidInput
	}
	if escopo.FilialID != "" {
		return uc.validarEscopoFilial(ctx, uc.filialRepo, escopo, escopo.FilialID)
	}
	if escopo.CorretorID == "" {
		return nil
	}
	filiais, err := uc.filialRepo.ListByEmpresa(ctx, escopo.EmpresaID)
	if err != nil {
		return err
	}
	for _, filial := range filiais {
		if filial.CorretorID == escopo.CorretorID {
			return nil
		}
	}
	// Fora da carteira: não revelar a existência da empresa.
	return domain.ErrNotFound
}

// validarEscopoFilial confere que a filial pertence ao escopo do caller.
func (uc *UseCase) validarEscopoFilial(ctx context.Context, filialRepo repository.FilialRepository, escopo Escopo, filialID string) error {
	filial, err := filialRepo.GetByID(ctx, filialID)
	if err != nil {
		return err
	}
	if filial == nil {
		return domain.ErrNotFound
	}
	if escopo.CorretorID != "" && filial.CorretorID != escopo.CorretorID {
		return domain.ErrForbidden
	}
	if escopo.EmpresaID != "" && filial.EmpresaID != escopo.EmpresaID {
		return domain.ErrForbidden
	}
	return nil
}
