package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vitalseg/corretora-api/internal/application/dto"
	"github.com/vitalseg/corretora-api/internal/domain"
	"github.com/vitalseg/corretora-api/internal/domain/entity"
	"github.com/vitalseg/corretora-api/internal/domain/repository"
	"github.com/vitalseg/corretora-api/pkg/documento"
)

// EmpresaUseCase casos de uso do cadastro de empresas clientes e suas filiais.
type EmpresaUseCase struct {
	empresaRepo repository.EmpresaRepository
	filialRepo  repository.FilialRepository
}

// NewEmpresaUseCase constrói o caso de uso com as portas de persistência.
func NewEmpresaUseCase(empresaRepo repository.EmpresaRepository, filialRepo repository.FilialRepository) *EmpresaUseCase {
	return &EmpresaUseCase{empresaRepo: empresaRepo, filialRepo: filialRepo}
}

// Create cadastra uma empresa cliente na carteira do corretor. Devolve
// domain.ErrCNPJInvalido se o CNPJ não passa nos dígitos verificadores e
// domain.ErrDuplicate se já existe empresa com esse CNPJ.
func (uc *EmpresaUseCase) Create(ctx context.Context, corretorID string, in dto.CreateEmpresaRequest) (*dto.EmpresaResponse, error) {
	cnpj := documento.NormalizarCNPJ(in.CNPJ)
	if !documento.CNPJValido(cnpj) {
		return nil, domain.ErrCNPJInvalido
	}
	existing, err := uc.empresaRepo.GetByCNPJ(ctx, cnpj)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	empresa := &entity.Empresa{
		ID:           uuid.New().String(),
		CorretorID:   corretorID,
		RazaoSocial:  in.RazaoSocial,
		NomeFantasia: in.NomeFantasia,
		CNPJ:         cnpj,
		Email:        in.Email,
		Telefone:     in.Telefone,
		Status:       "ativa",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.empresaRepo.Create(ctx, empresa); err != nil {
		return nil, err
	}
	return toEmpresaResponse(empresa), nil
}

// GetByID obtém uma empresa da carteira do corretor; nil se não existe ou se
// pertence a outra carteira.
func (uc *EmpresaUseCase) GetByID(ctx context.Context, corretorID, id string) (*dto.EmpresaResponse, error) {
	empresa, err := uc.empresaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if empresa == nil || (corretorID != "" && empresa.CorretorID != corretorID) {
		return nil, nil
	}
	return toEmpresaResponse(empresa), nil
}

// Update atualiza os campos presentes (não-nil) da empresa.
func (uc *EmpresaUseCase) Update(ctx context.Context, corretorID, id string, in dto.UpdateEmpresaRequest) (*dto.EmpresaResponse, error) {
	empresa, err := uc.empresaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if empresa == nil || (corretorID != "" && empresa.CorretorID != corretorID) {
		return nil, domain.ErrNotFound
	}
	if in.RazaoSocial != nil {
		empresa.RazaoSocial = *in.RazaoSocial
	}
	if in.NomeFantasia != nil {
		empresa.NomeFantasia = *in.NomeFantasia
	}
	if in.Email != nil {
		empresa.Email = *in.Email
	}
	if in.Telefone != nil {
		empresa.Telefone = *in.Telefone
	}
	if in.Status != nil {
		empresa.Status = *in.Status
	}
	empresa.UpdatedAt = time.Now()
	if err := uc.empresaRepo.Update(ctx, empresa); err != nil {
		return nil, err
	}
	return toEmpresaResponse(empresa), nil
}

// List lista as empresas da carteira do corretor, paginado.
func (uc *EmpresaUseCase) List(ctx context.Context, corretorID string, limit, offset int) (*dto.EmpresaListResponse, error) {
	list, err := uc.empresaRepo.ListByCorretor(ctx, corretorID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmpresaResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmpresaResponse(e))
	}
	return &dto.EmpresaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// CreateFilial cadastra uma filial (CNPJ) sob a empresa, herdando o corretor
// da empresa. A filial nasce em configuração e só recebe vidas depois de ativa.
func (uc *EmpresaUseCase) CreateFilial(ctx context.Context, corretorID, empresaID string, in dto.CreateFilialRequest) (*dto.FilialResponse, error) {
	empresa, err := uc.empresaRepo.GetByID(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	if empresa == nil || (corretorID != "" && empresa.CorretorID != corretorID) {
		return nil, domain.ErrNotFound
	}
	cnpj := documento.NormalizarCNPJ(in.CNPJ)
	if !documento.CNPJValido(cnpj) {
		return nil, domain.ErrCNPJInvalido
	}
	now := time.Now()
	filial := &entity.Filial{
		ID:          uuid.New().String(),
		EmpresaID:   empresa.ID,
		CorretorID:  empresa.CorretorID,
		CNPJ:        cnpj,
		RazaoSocial: in.RazaoSocial,
		Status:      entity.FilialEmConfiguracao,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.filialRepo.Create(ctx, filial); err != nil {
		return nil, err
	}
	return toFilialResponse(filial), nil
}

// ListFiliais lista as filiais da empresa.
func (uc *EmpresaUseCase) ListFiliais(ctx context.Context, corretorID, empresaID string) (*dto.FilialListResponse, error) {
	empresa, err := uc.empresaRepo.GetByID(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	if empresa == nil || (corretorID != "" && empresa.CorretorID != corretorID) {
		return nil, domain.ErrNotFound
	}
	list, err := uc.filialRepo.ListByEmpresa(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FilialResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFilialResponse(f))
	}
	return &dto.FilialListResponse{Items: items}, nil
}

// AtivarFilial marca a filial como ativa, liberando inclusões de vidas.
func (uc *EmpresaUseCase) AtivarFilial(ctx context.Context, corretorID, filialID string) error {
	filial, err := uc.filialRepo.GetByID(ctx, filialID)
	if err != nil {
		return err
	}
	if filial == nil || (corretorID != "" && filial.CorretorID != corretorID) {
		return domain.ErrNotFound
	}
	return uc.filialRepo.UpdateStatus(ctx, filialID, entity.FilialAtiva)
}

func toEmpresaResponse(e *entity.Empresa) *dto.EmpresaResponse {
	if e == nil {
		return nil
	}
	return &dto.EmpresaResponse{
		ID:           e.ID,
		RazaoSocial:  e.RazaoSocial,
		NomeFantasia: e.NomeFantasia,
		CNPJ:         e.CNPJ,
		Email:        e.Email,
		Telefone:     e.Telefone,
		Status:       e.Status,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func toFilialResponse(f *entity.Filial) *dto.FilialResponse {
	if f == nil {
		return nil
	}
	return &dto.FilialResponse{
		ID:          f.ID,
		EmpresaID:   f.EmpresaID,
		CNPJ:        f.CNPJ,
		RazaoSocial: f.RazaoSocial,
		Status:      f.Status,
		CreatedAt:   f.CreatedAt,
	}
}
