package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vitalseg/corretora-api/internal/application/dto"
	"github.com/vitalseg/corretora-api/internal/application/movimentacao"
	"github.com/vitalseg/corretora-api/internal/application/usecase"
	"github.com/vitalseg/corretora-api/internal/domain"
)

// FuncionarioHandler maneja as requisições HTTP do ciclo de vida de
// funcionários: inclusão, solicitações, arquivamento, listagem e duplicados.
type FuncionarioHandler struct {
	mov      *movimentacao.UseCase
	consulta *usecase.ConsultaUseCase
}

// NewFuncionarioHandler constrói o handler injetando os casos de uso.
func NewFuncionarioHandler(mov *movimentacao.UseCase, consulta *usecase.ConsultaUseCase) *FuncionarioHandler {
	return &FuncionarioHandler{mov: mov, consulta: consulta}
}

// escopoDe monta o escopo do motor a partir da identidade do token.
func escopoDe(c *fiber.Ctx) movimentacao.Escopo {
	return movimentacao.Escopo{
		CorretorID: GetCorretorID(c),
		EmpresaID:  GetEmpresaID(c),
	}
}

// escopoEmpresa monta o escopo recortado à empresa do path. Usuários rh só
// enxergam a própria empresa; corretores informam a empresa da carteira.
func escopoEmpresa(c *fiber.Ctx) (movimentacao.Escopo, error) {
	escopo := escopoDe(c)
	empresaID := c.Params("id")
	if escopo.EmpresaID != "" && escopo.EmpresaID != empresaID {
		return movimentacao.Escopo{}, domain.ErrForbidden
	}
	escopo.EmpresaID = empresaID
	return escopo, nil
}

// Incluir godoc
// @Summary      Incluir uma vida sob a filial
// @Description  Cria o funcionário em status pendente, as adesões aos planos e a pendência de ativação, atomicamente.
// @Tags         funcionarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IncluirFuncionarioRequest  true  "Dados do funcionário"
// @Success      201   {object}  dto.InclusaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/funcionarios [post]
func (h *FuncionarioHandler) Incluir(c *fiber.Ctx) error {
	var in dto.IncluirFuncionarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.FilialID == "" || in.Nome == "" || len(in.PlanoIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filial_id, nome e plano_ids são obrigatórios"})
	}
	res, err := h.mov.IncluirFuncionario(c.Context(), escopoDe(c), movimentacao.InclusaoInput{
		FilialID: in.FilialID,
		Nome:     in.Nome,
		CPF:      in.CPF,
		Email:    in.Email,
		Cargo:    in.Cargo,
		PlanoIDs: in.PlanoIDs,
	})
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.InclusaoResponse{
		Funcionario: usecase.ToFuncionarioResponse(res.Funcionario),
		Protocolo:   res.Protocolo,
	})
}

// SolicitarExclusao godoc
// @Summary      Solicitar exclusão de uma vida
// @Description  Move o funcionário para exclusao_solicitada e abre a pendência de cancelamento.
// @Tags         funcionarios
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do funcionário"
// @Param        body  body  dto.SolicitacaoRequest  false  "Motivo"
// @Success      201   {object}  dto.PendenciaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/funcionarios/{id}/exclusao [post]
func (h *FuncionarioHandler) SolicitarExclusao(c *fiber.Ctx) error {
	var in dto.SolicitacaoRequest
	_ = c.BodyParser(&in) // corpo opcional
	p, err := h.mov.SolicitarExclusao(c.Context(), escopoDe(c), c.Params("id"), in.Motivo)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usecase.ToPendenciaResponse(p))
}

// SolicitarAlteracao godoc
// @Summary      Solicitar alteração cadastral de uma vida
// @Tags         funcionarios
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do funcionário"
// @Param        body  body  dto.SolicitacaoRequest  false  "Detalhe da alteração"
// @Success      201   {object}  dto.PendenciaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/funcionarios/{id}/alteracao [post]
func (h *FuncionarioHandler) SolicitarAlteracao(c *fiber.Ctx) error {
	var in dto.SolicitacaoRequest
	_ = c.BodyParser(&in)
	p, err := h.mov.SolicitarAlteracao(c.Context(), escopoDe(c), c.Params("id"), in.Motivo)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usecase.ToPendenciaResponse(p))
}

// Arquivar godoc
// @Summary      Arquivar uma vida (terminal, sem pendência)
// @Tags         funcionarios
// @Produce      json
// @Param        id   path  string  true  "ID do funcionário"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/funcionarios/{id}/arquivar [post]
func (h *FuncionarioHandler) Arquivar(c *fiber.Ctx) error {
	if err := h.mov.Arquivar(c.Context(), escopoDe(c), c.Params("id")); err != nil {
		return handleDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListByFilial godoc
// @Summary      Listar funcionários da filial
// @Tags         funcionarios
// @Produce      json
// @Param        id      path   string  true   "ID da filial"
// @Param        status  query  string  false  "Filtro por status"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.FuncionarioListResponse
// @Router       /api/filiais/{id}/funcionarios [get]
func (h *FuncionarioHandler) ListByFilial(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.consulta.ListarFuncionarios(c.Context(), c.Params("id"), c.Query("status"), limit, offset)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// Duplicados godoc
// @Summary      Detectar cadastros duplicados da empresa
// @Description  Agrupa funcionários por CPF normalizado; funcionários sem CPF entram num agrupamento consultivo por nome. Somente leitura.
// @Tags         funcionarios
// @Produce      json
// @Param        id         path   string  true   "ID da empresa"
// @Param        filial_id  query  string  false  "Restringir a uma filial"
// @Success      200        {object}  dto.DuplicadosResponse
// @Failure      403        {object}  dto.ErrorResponse
// @Router       /api/empresas/{id}/duplicados [get]
func (h *FuncionarioHandler) Duplicados(c *fiber.Ctx) error {
	escopo, err := escopoEmpresa(c)
	if err != nil {
		return handleDomainError(c, err)
	}
	escopo.FilialID = c.Query("filial_id")
	res, err := h.mov.Duplicados(c.Context(), escopo)
	if err != nil {
		return handleDomainError(c, err)
	}
	out := dto.DuplicadosResponse{
		PorCPF:    toGruposResponse(res.PorCPF),
		Homonimos: toGruposResponse(res.Homonimos),
	}
	return c.JSON(out)
}

func toGruposResponse(grupos []movimentacao.GrupoDuplicado) []dto.GrupoDuplicadoResponse {
	out := make([]dto.GrupoDuplicadoResponse, 0, len(grupos))
	for _, g := range grupos {
		out = append(out, dto.GrupoDuplicadoResponse{Identidade: g.Identidade, FuncionarioIDs: g.FuncionarioIDs})
	}
	return out
}
