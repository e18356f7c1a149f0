package movimentacao

import (
	"context"

	"github.com/vitalseg/corretora-api/internal/domain/repository"
)

// TxRunner executa fn dentro de uma unidade atômica de trabalho, com
// repositórios atados à mesma transação. A mudança de status do funcionário
// e a emissão/conclusão da pendência correspondente acontecem juntas ou não
// acontecem.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		funcRepo repository.FuncionarioRepository,
		adesaoRepo repository.AdesaoRepository,
		pendRepo repository.PendenciaRepository,
		filialRepo repository.FilialRepository,
	) error) error
}

// Escopo é a identidade corretor/empresa fornecida pelo caller; delimita
// todas as consultas do motor. O motor confia no escopo recebido — a
// autenticação/autorização é responsabilidade da camada HTTP.
type Escopo struct {
	CorretorID string
	EmpresaID  string
	FilialID   string // opcional; restringe reparo e duplicados a uma filial
}
