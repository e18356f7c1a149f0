package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/vitalseg/corretora-api/internal/application/auth"
	"github.com/vitalseg/corretora-api/internal/application/movimentacao"
	"github.com/vitalseg/corretora-api/internal/application/usecase"
	"github.com/vitalseg/corretora-api/internal/infrastructure/postgres"
	httpRouter "github.com/vitalseg/corretora-api/internal/interfaces/http"
	"github.com/vitalseg/corretora-api/pkg/config"
	"github.com/vitalseg/corretora-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	empresaRepo := postgres.NewEmpresaRepository(pool)
	filialRepo := postgres.NewFilialRepository(pool)
	funcionarioRepo := postgres.NewFuncionarioRepository(pool)
	planoRepo := postgres.NewPlanoRepository(pool)
	pendenciaRepo := postgres.NewPendenciaRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	movUC := movimentacao.NewUseCase(
		txRunner, funcionarioRepo, filialRepo, planoRepo, pendenciaRepo,
		movimentacao.Config{
			PrazoPendencia: time.Duration(cfg.Movimentacao.PrazoPendenciaDias) * 24 * time.Hour,
			LoteTamanho:    cfg.Movimentacao.LoteTamanho,
			LotePausa:      time.Duration(cfg.Movimentacao.LotePausaMs) * time.Millisecond,
		},
	)
	empresaUC := usecase.NewEmpresaUseCase(empresaRepo, filialRepo)
	planoUC := usecase.NewPlanoUseCase(planoRepo, filialRepo)
	consultaUC := usecase.NewConsultaUseCase(funcionarioRepo, pendenciaRepo)
	authUC := auth.NewAuthUseCase(userRepo, empresaRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Corretora API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		EmpresaUC:  empresaUC,
		PlanoUC:    planoUC,
		ConsultaUC: consultaUC,
		MovUC:      movUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
