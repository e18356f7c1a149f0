package movimentacao

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vitalseg/corretora-api/internal/domain"
	domainmov "github.com/vitalseg/corretora-api/internal/domain/movimentacao"
)

// ItemLote é o desfecho de sucesso de um item da resolução em lote.
// JaResolvida marca submissões duplicadas, que não são falhas.
type ItemLote struct {
	PendenciaID   string
	Protocolo     string
	FuncionarioID string
	NovoStatus    string
	JaResolvida   bool
}

// FalhaLote é o desfecho de falha de um item, amarrado ao ID ofensor.
type FalhaLote struct {
	PendenciaID string
	Erro        string
}

// ResultadoLote carrega exatamente um desfecho por ID de entrada. A ordem
// não é garantida; a completude é.
type ResultadoLote struct {
	Sucessos []ItemLote
	Falhas   []FalhaLote
}

// ResolverEmLote aplica a mesma decisão a várias pendências, em lotes de
// tamanho fixo com concorrência limitada ao lote e uma pausa curta entre
// lotes para conter a carga no banco. Cada item é resolvido de forma
// independente (sem transação cruzada): a falha de um não bloqueia nem
// desfaz os demais.
func (uc *UseCase) ResolverEmLote(ctx context.Context, escopo Escopo, pendenciaIDs []string, decisao string) (*ResultadoLote, error) {
	if !domainmov.DecisaoValida(decisao) {
		return nil, domain.ErrInvalidInput
	}

	resultado := &ResultadoLote{}
	var mu sync.Mutex

	tam := uc.cfg.LoteTamanho
	for inicio := 0; inicio < len(pendenciaIDs); inicio += tam {
		fim := inicio + tam
		if fim > len(pendenciaIDs) {
			fim = len(pendenciaIDs)
		}

		if err := ctx.Err(); err != nil {
			// Contexto cancelado: os IDs restantes ganham desfecho de falha
			// para preservar a completude do resultado.
			mu.Lock()
			for _, id := range pendenciaIDs[inicio:] {
				resultado.Falhas = append(resultado.Falhas, FalhaLote{PendenciaID: id, Erro: err.Error()})
			}
			mu.Unlock()
			return resultado, nil
		}

		g, gctx := errgroup.WithContext(ctx)
		for _, id := range pendenciaIDs[inicio:fim] {
			id := id
			g.Go(func() error {
				res, err := uc.Resolver(gctx, escopo, id, decisao)
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					resultado.Sucessos = append(resultado.Sucessos, ItemLote{
						PendenciaID:   res.PendenciaID,
						Protocolo:     res.Protocolo,
						FuncionarioID: res.FuncionarioID,
						NovoStatus:    res.NovoStatus,
					})
				case errors.Is(err, domain.ErrJaResolvida):
					resultado.Sucessos = append(resultado.Sucessos, ItemLote{PendenciaID: id, JaResolvida: true})
				default:
					resultado.Falhas = append(resultado.Falhas, FalhaLote{PendenciaID: id, Erro: err.Error()})
				}
				// Falhas por item ficam no resultado agregado; nunca abortam o grupo.
				return nil
			})
		}
		_ = g.Wait()

		if fim < len(pendenciaIDs) && uc.cfg.LotePausa > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(uc.cfg.LotePausa):
			}
		}
	}
	return resultado, nil
}
