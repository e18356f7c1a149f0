package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/vitalseg/corretora-api/internal/application/dto"
	"github.com/vitalseg/corretora-api/pkg/jwt"
)

// Locals keys para a identidade extraída do token.
const (
	LocalUserID     = "user_id"
	LocalCorretorID = "corretor_id"
	LocalEmpresaID  = "empresa_id"
	LocalRole       = "role"
)

// AuthMiddleware valida o Bearer Token JWT e extrai a identidade para c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalCorretorID, claims.CorretorID)
		c.Locals(LocalEmpresaID, claims.EmpresaID)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// RequireRole restringe a rota aos papéis indicados; usar depois do
// AuthMiddleware. Token sem claim de role é tratado como não autenticado.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token sem papel"})
		}
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "papel sem permissão para esta operação"})
	}
}

// GetUserID devolve o UserID do contexto (depois do middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetCorretorID devolve o CorretorID do contexto; vazio para usuários rh.
func GetCorretorID(c *fiber.Ctx) string {
	return localString(c, LocalCorretorID)
}

// GetEmpresaID devolve o EmpresaID do contexto; vazio para usuários corretor.
func GetEmpresaID(c *fiber.Ctx) string {
	return localString(c, LocalEmpresaID)
}

// GetRole devolve o papel do usuário autenticado.
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
