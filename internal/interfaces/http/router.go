package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vitalseg/corretora-api/internal/application/auth"
	"github.com/vitalseg/corretora-api/internal/application/movimentacao"
	"github.com/vitalseg/corretora-api/internal/application/usecase"
	"github.com/vitalseg/corretora-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	EmpresaUC  *usecase.EmpresaUseCase
	PlanoUC    *usecase.PlanoUseCase
	ConsultaUC *usecase.ConsultaUseCase
	MovUC      *movimentacao.UseCase
	JWTSecret  string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Todo o restante exige Bearer Token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	empresaHandler := NewEmpresaHandler(deps.EmpresaUC)
	funcionarioHandler := NewFuncionarioHandler(deps.MovUC, deps.ConsultaUC)
	pendenciaHandler := NewPendenciaHandler(deps.MovUC, deps.ConsultaUC)
	planoHandler := NewPlanoHandler(deps.PlanoUC)

	soCorretor := RequireRole(entity.RoleCorretor)

	// Carteira do corretor: empresas e filiais
	empresas := protected.Group("/empresas")
	empresas.Post("/", soCorretor, empresaHandler.Create)
	empresas.Get("/", soCorretor, empresaHandler.List)
	empresas.Get("/:id", empresaHandler.GetByID)
	empresas.Put("/:id", soCorretor, empresaHandler.Update)
	empresas.Post("/:id/filiais", soCorretor, empresaHandler.CreateFilial)
	empresas.Get("/:id/filiais", empresaHandler.ListFiliais)
	empresas.Get("/:id/duplicados", funcionarioHandler.Duplicados)
	empresas.Post("/:id/reparos", soCorretor, pendenciaHandler.Reparar)

	filiais := protected.Group("/filiais")
	filiais.Post("/:id/ativar", soCorretor, empresaHandler.AtivarFilial)
	filiais.Get("/:id/funcionarios", funcionarioHandler.ListByFilial)
	filiais.Get("/:id/pendencias", pendenciaHandler.ListByFilial)
	filiais.Get("/:id/planos", planoHandler.ListByFilial)

	// Catálogo de planos (administrado pelo corretor)
	planos := protected.Group("/planos")
	planos.Post("/", soCorretor, planoHandler.Create)
	planos.Put("/:id/valores", soCorretor, planoHandler.UpdateValores)

	// Ciclo de vida das vidas cobertas
	funcionarios := protected.Group("/funcionarios")
	funcionarios.Post("/", funcionarioHandler.Incluir)
	funcionarios.Post("/:id/exclusao", funcionarioHandler.SolicitarExclusao)
	funcionarios.Post("/:id/alteracao", funcionarioHandler.SolicitarAlteracao)
	funcionarios.Post("/:id/arquivar", soCorretor, funcionarioHandler.Arquivar)

	// Fila de pendências e resolução (decisão é do corretor)
	pendencias := protected.Group("/pendencias")
	pendencias.Get("/", soCorretor, pendenciaHandler.List)
	pendencias.Post("/", pendenciaHandler.Emitir)
	pendencias.Get("/protocolo/:protocolo", pendenciaHandler.GetByProtocolo)
	pendencias.Post("/resolver-lote", soCorretor, pendenciaHandler.ResolverLote)
	pendencias.Post("/:id/resolver", soCorretor, pendenciaHandler.Resolver)
}
