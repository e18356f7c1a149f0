package movimentacao

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vitalseg/corretora-api/internal/domain"
	"github.com/vitalseg/corretora-api/internal/domain/entity"
	domainmov "github.com/vitalseg/corretora-api/internal/domain/movimentacao"
	"github.com/vitalseg/corretora-api/internal/domain/repository"
	"github.com/vitalseg/corretora-api/pkg/documento"
)

// InclusaoInput entrada para incluir uma vida: cria o funcionário em status
// pendente, as adesões aos planos indicados e a pendência de ativação — tudo
// na mesma transação.
type InclusaoInput struct {
	FilialID string
	Nome     string
	CPF      string
	Email    string
	Cargo    string
	PlanoIDs []string
}

// ResultadoInclusao devolve o funcionário criado e o protocolo da pendência
// de ativação aberta para o corretor.
type ResultadoInclusao struct {
	Funcionario *entity.Funcionario
	Protocolo   string
}

// IncluirFuncionario registra uma nova vida sob a filial. O funcionário nasce
// pendente e só passa a ativo quando o corretor aprova a pendência de ativação.
func (uc *UseCase) IncluirFuncionario(ctx context.Context, escopo Escopo, in InclusaoInput) (*ResultadoInclusao, error) {
	if in.FilialID == "" || in.Nome == "" || len(in.PlanoIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	cpf := documento.NormalizarCPF(in.CPF)
	if cpf != "" && !documento.CPFValido(cpf) {
		return nil, domain.ErrCPFInvalido
	}

	// Planos precisam existir e pertencer à filial.
	for _, planoID := range in.PlanoIDs {
		plano, err := uc.planoRepo.GetByID(ctx, planoID)
		if err != nil {
			return nil, err
		}
		if plano == nil || plano.FilialID != in.FilialID {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	f := &entity.Funcionario{
		ID:        uuid.New().String(),
		FilialID:  in.FilialID,
		Nome:      in.Nome,
		CPF:       cpf,
		Email:     in.Email,
		Cargo:     in.Cargo,
		Status:    entity.FuncionarioPendente,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var protocolo string
	err := uc.txRunner.Run(ctx, func(
		funcRepo repository.FuncionarioRepository,
		adesaoRepo repository.AdesaoRepository,
		pendRepo repository.PendenciaRepository,
		filialRepo repository.FilialRepository,
	) error {
		if err := uc.validarEscopoFilial(ctx, filialRepo, escopo, in.FilialID); err != nil {
			return err
		}
		if err := funcRepo.Create(ctx, f); err != nil {
			return err
		}
		for _, planoID := range in.PlanoIDs {
			adesao := &entity.Adesao{
				ID:            uuid.New().String(),
				FuncionarioID: f.ID,
				PlanoID:       planoID,
				Status:        entity.AdesaoPendente,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if err := adesaoRepo.Create(ctx, adesao); err != nil {
				return err
			}
		}
		pendencia, _, err := uc.emitir(ctx, pendRepo, filialRepo, f, entity.PendenciaAtivacao, "", "", now)
		if err != nil {
			return err
		}
		protocolo = pendencia.Protocolo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ResultadoInclusao{Funcionario: f, Protocolo: protocolo}, nil
}

// SolicitarExclusao move o funcionário de ativo para exclusao_solicitada e
// emite a pendência de cancelamento na mesma transação.
func (uc *UseCase) SolicitarExclusao(ctx context.Context, escopo Escopo, funcionarioID, motivo string) (*entity.Pendencia, error) {
	return uc.solicitar(ctx, escopo, funcionarioID, entity.FuncionarioExclusaoSolicitada, entity.PendenciaCancelamento, motivo)
}

// SolicitarAlteracao move o funcionário para edicao_solicitada e emite a
// pendência de alteração. A aplicação dos dados alterados é feita pela camada
// de cadastro; o motor administra apenas o status.
func (uc *UseCase) SolicitarAlteracao(ctx context.Context, escopo Escopo, funcionarioID, detalhe string) (*entity.Pendencia, error) {
	return uc.solicitar(ctx, escopo, funcionarioID, entity.FuncionarioEdicaoSolicitada, entity.PendenciaAlteracao, detalhe)
}

func (uc *UseCase) solicitar(ctx context.Context, escopo Escopo, funcionarioID, destino, tipo, detalhe string) (*entity.Pendencia, error) {
	var pendencia *entity.Pendencia
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
		if err := uc.validarEscopoFilial(ctx, filialRepo, escopo, f.FilialID); err != nil {
			return err
		}
		if err := domainmov.ValidarTransicao(f.Status, destino); err != nil {
			return err
		}
		now := time.Now()
		statusAnterior := f.Status
		if err := funcRepo.UpdateStatus(ctx, f.ID, destino, now); err != nil {
			return err
		}
		f.Status = destino
		pendencia, _, err = uc.emitir(ctx, pendRepo, filialRepo, f, tipo, statusAnterior, detalhe, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return pendencia, nil
}

// Arquivar move o funcionário para o status terminal arquivado. Operação
// administrativa: não emite nem fecha pendência.
func (uc *UseCase) Arquivar(ctx context.Context, escopo Escopo, funcionarioID string) error {
	return uc.txRunner.Run(ctx, func(
		funcRepo repository.FuncionarioRepository,
		_ repository.AdesaoRepository,
		_ repository.PendenciaRepository,
		filialRepo repository.FilialRepository,
	) error {
		f, err := funcRepo.GetByIDForUpdate(ctx, funcionarioID)
		if err != nil {
			return err
		}
		if f == nil {
			return domain.ErrNotFound
		}
		if err := uc.validarEscopoFilial(ctx, filialRepo, escopo, f.FilialID); err != nil {
			return err
		}
		if err := domainmov.ValidarTransicao(f.Status, entity.FuncionarioArquivado); err != nil {
			return err
		}
		return funcRepo.UpdateStatus(ctx, f.ID, entity.FuncionarioArquivado, time.Now())
	})
}
