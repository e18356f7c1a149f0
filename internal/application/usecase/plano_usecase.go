package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vitalseg/corretora-api/internal/application/dto"
	"github.com/vitalseg/corretora-api/internal/domain"
	"github.com/vitalseg/corretora-api/internal/domain/entity"
	"github.com/vitalseg/corretora-api/internal/domain/repository"
)

// PlanoUseCase casos de uso do catálogo de planos de uma filial.
type PlanoUseCase struct {
	planoRepo  repository.PlanoRepository
	filialRepo repository.FilialRepository
}

// NewPlanoUseCase constrói o caso de uso de planos.
func NewPlanoUseCase(planoRepo repository.PlanoRepository, filialRepo repository.FilialRepository) *PlanoUseCase {
	return &PlanoUseCase{planoRepo: planoRepo, filialRepo: filialRepo}
}

// Create cadastra um plano sob a filial, validando que ela pertence à
// carteira do corretor.
func (uc *PlanoUseCase) Create(ctx context.Context, corretorID string, in dto.CreatePlanoRequest) (*dto.PlanoResponse, error) {
	filial, err := uc.filialRepo.GetByID(ctx, in.FilialID)
	if err != nil {
		return nil, err
	}
	if filial == nil || (corretorID != "" && filial.CorretorID != corretorID) {
		return nil, domain.ErrNotFound
	}
	if in.ValorTitular.IsNegative() || in.ValorDependente.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	plano := &entity.Plano{
		ID:              uuid.New().String(),
		FilialID:        in.FilialID,
		Tipo:            in.Tipo,
		Nome:            in.Nome,
		Operadora:       in.Operadora,
		ValorTitular:    in.ValorTitular,
		ValorDependente: in.ValorDependente,
		Status:          "ativo",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.planoRepo.Create(ctx, plano); err != nil {
		return nil, err
	}
	return toPlanoResponse(plano), nil
}

// ListByFilial lista os planos ofertados pela filial.
func (uc *PlanoUseCase) ListByFilial(ctx context.Context, filialID string) (*dto.PlanoListResponse, error) {
	list, err := uc.planoRepo.ListByFilial(ctx, filialID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PlanoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPlanoResponse(p))
	}
	return &dto.PlanoListResponse{Items: items}, nil
}

// UpdateValores reajusta os valores do plano. Os demais campos são imutáveis
// depois de referenciados por adesões.
func (uc *PlanoUseCase) UpdateValores(ctx context.Context, corretorID, planoID string, in dto.UpdateValoresRequest) (*dto.PlanoResponse, error) {
	plano, err := uc.planoRepo.GetByID(ctx, planoID)
	if err != nil {
		return nil, err
	}
	if plano == nil {
		return nil, domain.ErrNotFound
	}
	filial, err := uc.filialRepo.GetByID(ctx, plano.FilialID)
	if err != nil {
		return nil, err
	}
	if filial == nil || (corretorID != "" && filial.CorretorID != corretorID) {
		return nil, domain.ErrNotFound
	}
	if in.ValorTitular.IsNegative() || in.ValorDependente.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	plano.ValorTitular = in.ValorTitular
	plano.ValorDependente = in.ValorDependente
	plano.UpdatedAt = time.Now()
	if err := uc.planoRepo.UpdateValores(ctx, plano); err != nil {
		return nil, err
	}
	return toPlanoResponse(plano), nil
}

func toPlanoResponse(p *entity.Plano) *dto.PlanoResponse {
	if p == nil {
		return nil
	}
	return &dto.PlanoResponse{
		ID:              p.ID,
		FilialID:        p.FilialID,
		Tipo:            p.Tipo,
		Nome:            p.Nome,
		Operadora:       p.Operadora,
		ValorTitular:    p.ValorTitular,
		ValorDependente: p.ValorDependente,
		Status:          p.Status,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
