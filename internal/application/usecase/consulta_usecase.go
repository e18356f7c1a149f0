package usecase

import (
	"context"

	"github.com/vitalseg/corretora-api/internal/application/dto"
	"github.com/vitalseg/corretora-api/internal/domain/entity"
	"github.com/vitalseg/corretora-api/internal/domain/repository"
)

// ConsultaUseCase leituras do portal: listagens de funcionários e pendências
// e busca por protocolo. Não muta estado.
type ConsultaUseCase struct {
	funcRepo repository.FuncionarioRepository
	pendRepo repository.PendenciaRepository
}

// NewConsultaUseCase constrói o caso de uso de consultas.
func NewConsultaUseCase(funcRepo repository.FuncionarioRepository, pendRepo repository.PendenciaRepository) *ConsultaUseCase {
	return &ConsultaUseCase{funcRepo: funcRepo, pendRepo: pendRepo}
}

// ListarFuncionarios lista os funcionários da filial, opcionalmente filtrados
// por status.
func (uc *ConsultaUseCase) ListarFuncionarios(ctx context.Context, filialID, status string, limit, offset int) (*dto.FuncionarioListResponse, error) {
	list, err := uc.funcRepo.ListByFilial(ctx, filialID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FuncionarioResponse, 0, len(list))
	for _, f := range list {
		items = append(items, ToFuncionarioResponse(f))
	}
	return &dto.FuncionarioListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListarPendenciasCorretor lista a fila de trabalho do corretor,
// opcionalmente filtrada por status.
func (uc *ConsultaUseCase) ListarPendenciasCorretor(ctx context.Context, corretorID, status string, limit, offset int) (*dto.PendenciaListResponse, error) {
	list, err := uc.pendRepo.ListByCorretor(ctx, corretorID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	return toPendenciaList(list, limit, offset), nil
}

// ListarPendenciasFilial lista as pendências da filial, para acompanhamento
// do RH.
func (uc *ConsultaUseCase) ListarPendenciasFilial(ctx context.Context, filialID, status string, limit, offset int) (*dto.PendenciaListResponse, error) {
	list, err := uc.pendRepo.ListByFilial(ctx, filialID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	return toPendenciaList(list, limit, offset), nil
}

// BuscarPorProtocolo encontra uma pendência pelo protocolo; nil se não existe.
func (uc *ConsultaUseCase) BuscarPorProtocolo(ctx context.Context, protocolo string) (*dto.PendenciaResponse, error) {
	p, err := uc.pendRepo.GetByProtocolo(ctx, protocolo)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	r := ToPendenciaResponse(p)
	return &r, nil
}

// ToFuncionarioResponse converte a entidade para o DTO de saída.
func ToFuncionarioResponse(f *entity.Funcionario) dto.FuncionarioResponse {
	return dto.FuncionarioResponse{
		ID:        f.ID,
		FilialID:  f.FilialID,
		Nome:      f.Nome,
		CPF:       f.CPF,
		Email:     f.Email,
		Cargo:     f.Cargo,
		Status:    f.Status,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// ToPendenciaResponse converte a entidade para o DTO de saída.
func ToPendenciaResponse(p *entity.Pendencia) dto.PendenciaResponse {
	return dto.PendenciaResponse{
		ID:            p.ID,
		Protocolo:     p.Protocolo,
		Tipo:          p.Tipo,
		FuncionarioID: p.FuncionarioID,
		FilialID:      p.FilialID,
		Detalhe:       p.Detalhe,
		Status:        p.Status,
		CriadaEm:      p.CriadaEm,
		VenceEm:       p.VenceEm,
		ConcluidaEm:   p.ConcluidaEm,
	}
}

func toPendenciaList(list []*entity.Pendencia, limit, offset int) *dto.PendenciaListResponse {
	items := make([]dto.PendenciaResponse, 0, len(list))
	for _, p := range list {
		items = append(items, ToPendenciaResponse(p))
	}
	return &dto.PendenciaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
