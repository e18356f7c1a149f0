package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vitalseg/corretora-api/internal/application/dto"
	"github.com/vitalseg/corretora-api/internal/application/usecase"
)

// PlanoHandler maneja as requisições HTTP do catálogo de planos.
type PlanoHandler struct {
	uc *usecase.PlanoUseCase
}

// NewPlanoHandler constrói o handler injetando o caso de uso.
func NewPlanoHandler(uc *usecase.PlanoUseCase) *PlanoHandler {
	return &PlanoHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar plano sob uma filial
// @Tags         planos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePlanoRequest  true  "Dados do plano"
// @Success      201   {object}  dto.PlanoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/planos [post]
func (h *PlanoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePlanoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.FilialID == "" || in.Nome == "" || in.Tipo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filial_id, tipo e nome são obrigatórios"})
	}
	out, err := h.uc.Create(c.Context(), GetCorretorID(c), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByFilial godoc
// @Summary      Listar planos da filial
// @Tags         planos
// @Produce      json
// @Param        id   path  string  true  "ID da filial"
// @Success      200  {object}  dto.PlanoListResponse
// @Router       /api/filiais/{id}/planos [get]
func (h *PlanoHandler) ListByFilial(c *fiber.Ctx) error {
	out, err := h.uc.ListByFilial(c.Context(), c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// UpdateValores godoc
// @Summary      Reajustar valores do plano
// @Tags         planos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do plano"
// @Param        body  body  dto.UpdateValoresRequest  true  "Novos valores"
// @Success      200   {object}  dto.PlanoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/planos/{id}/valores [put]
func (h *PlanoHandler) UpdateValores(c *fiber.Ctx) error {
	var in dto.UpdateValoresRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdateValores(c.Context(), GetCorretorID(c), c.Params("id"), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}
