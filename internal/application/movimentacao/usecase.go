package movimentacao

import (
	"time"

	"github.com/vitalseg/corretora-api/internal/domain/repository"
)

// Config parâmetros do motor de movimentação.
type Config struct {
	PrazoPendencia time.Duration // janela de vencimento das pendências emitidas
	LoteTamanho    int           // tamanho do lote na resolução em massa
	LotePausa      time.Duration // pausa entre lotes
}

// UseCase é o motor de movimentação de vidas: máquina de estados do
// funcionário, emissor de pendências, resolução, reparo, detecção de
// duplicados e resolução em lote.
//
// Os repositórios injetados aqui são atados ao pool e servem leituras fora
// de transação; toda escrita passa pelo TxRunner.
type UseCase struct {
	txRunner   TxRunner
	funcRepo   repository.FuncionarioRepository
	filialRepo repository.FilialRepository
	planoRepo  repository.PlanoRepository
	pendRepo   repository.PendenciaRepository
	cfg        Config
}

// NewUseCase constrói o motor.
func NewUseCase(
	txRunner TxRunner,
	funcRepo repository.FuncionarioRepository,
	filialRepo repository.FilialRepository,
	planoRepo repository.PlanoRepository,
	pendRepo repository.PendenciaRepository,
	cfg Config,
) *UseCase {
	if cfg.PrazoPendencia <= 0 {
		cfg.PrazoPendencia = 7 * 24 * time.Hour
	}
	if cfg.LoteTamanho <= 0 {
		cfg.LoteTamanho = 10
	}
	return &UseCase{
		txRunner:   txRunner,
		funcRepo:   funcRepo,
		filialRepo: filialRepo,
		planoRepo:  planoRepo,
		pendRepo:   pendRepo,
		cfg:        cfg,
	}
}
