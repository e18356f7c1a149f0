package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vitalseg/corretora-api/internal/application/dto"
	"github.com/vitalseg/corretora-api/internal/application/usecase"
)

// EmpresaHandler maneja as requisições HTTP de empresas e filiais.
type EmpresaHandler struct {
	uc *usecase.EmpresaUseCase
}

// NewEmpresaHandler constrói o handler injetando o caso de uso.
func NewEmpresaHandler(uc *usecase.EmpresaUseCase) *EmpresaHandler {
	return &EmpresaHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar empresa cliente
// @Tags         empresas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmpresaRequest  true  "Dados da empresa"
// @Success      201   {object}  dto.EmpresaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/empresas [post]
func (h *EmpresaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmpresaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.RazaoSocial == "" || in.CNPJ == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "razao_social e cnpj são obrigatórios"})
	}
	out, err := h.uc.Create(c.Context(), GetCorretorID(c), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter empresa por ID
// @Tags         empresas
// @Produce      json
// @Param        id   path  string  true  "ID da empresa"
// @Success      200  {object}  dto.EmpresaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empresas/{id} [get]
func (h *EmpresaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetCorretorID(c), c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa não encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar empresa
// @Tags         empresas
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da empresa"
// @Param        body  body  dto.UpdateEmpresaRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.EmpresaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/empresas/{id} [put]
func (h *EmpresaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmpresaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetCorretorID(c), c.Params("id"), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar empresas da carteira
// @Tags         empresas
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.EmpresaListResponse
// @Router       /api/empresas [get]
func (h *EmpresaHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Context(), GetCorretorID(c), limit, offset)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// CreateFilial godoc
// @Summary      Cadastrar filial (CNPJ) da empresa
// @Tags         empresas
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da empresa"
// @Param        body  body  dto.CreateFilialRequest  true  "Dados da filial"
// @Success      201   {object}  dto.FilialResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/empresas/{id}/filiais [post]
func (h *EmpresaHandler) CreateFilial(c *fiber.Ctx) error {
	var in dto.CreateFilialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.CNPJ == "" || in.RazaoSocial == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cnpj e razao_social são obrigatórios"})
	}
	out, err := h.uc.CreateFilial(c.Context(), GetCorretorID(c), c.Params("id"), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListFiliais godoc
// @Summary      Listar filiais da empresa
// @Tags         empresas
// @Produce      json
// @Param        id   path  string  true  "ID da empresa"
// @Success      200  {object}  dto.FilialListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empresas/{id}/filiais [get]
func (h *EmpresaHandler) ListFiliais(c *fiber.Ctx) error {
	out, err := h.uc.ListFiliais(c.Context(), GetCorretorID(c), c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// AtivarFilial godoc
// @Summary      Ativar filial, liberando inclusões de vidas
// @Tags         empresas
// @Produce      json
// @Param        id   path  string  true  "ID da filial"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/filiais/{id}/ativar [post]
func (h *EmpresaHandler) AtivarFilial(c *fiber.Ctx) error {
	if err := h.uc.AtivarFilial(c.Context(), GetCorretorID(c), c.Params("id")); err != nil {
		return handleDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// pageParams lê limit/offset da query com os limites padrão.
func pageParams(c *fiber.Ctx) (int, int) {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
