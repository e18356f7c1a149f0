package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/vitalseg/corretora-api/internal/application/dto"
	"github.com/vitalseg/corretora-api/internal/domain"
	domainmov "github.com/vitalseg/corretora-api/internal/domain/movimentacao"
)

// handleDomainError traduz os erros de domínio para status HTTP e corpo
// padronizado. Erros não mapeados viram 500 sem vazar detalhes internos.
func handleDomainError(c *fiber.Ctx, err error) error {
	var tie *domainmov.TransicaoInvalidaError
	switch {
	case errors.As(err, &tie):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "TRANSICAO_INVALIDA", Message: tie.Error()})
	case errors.Is(err, domain.ErrJaResolvida):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "JA_RESOLVIDA", Message: "pendência já resolvida"})
	case errors.Is(err, domain.ErrVinculoCorretor):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "SEM_VINCULO", Message: "filial sem corretor vinculado"})
	case errors.Is(err, domain.ErrCPFInvalido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CPF_INVALIDO", Message: "CPF inválido"})
	case errors.Is(err, domain.ErrCNPJInvalido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CNPJ_INVALIDO", Message: "CNPJ inválido"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso não encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "registro duplicado"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "email já registrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "fora do escopo do usuário"})
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciais inválidas"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro interno"})
	}
}
