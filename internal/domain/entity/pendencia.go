package entity

import "time"

// Tipos de pendência.
const (
	PendenciaAtivacao     = "ativacao"
	PendenciaCancelamento = "cancelamento"
	PendenciaAlteracao    = "alteracao"
	PendenciaDocumentacao = "documentacao"
)

// Status da pendência.
const (
	PendenciaPendente  = "pendente"
	PendenciaConcluida = "concluido"
)

// Pendencia é um item de trabalho aguardando ação do corretor, ligado a um
// funcionário e a um tipo de mudança solicitada.
//
// Invariante central do subsistema: para um par (FuncionarioID, Tipo) existe
// no máximo UMA pendência com status pendente. O índice único parcial em
// (funcionario_id, tipo) WHERE status = 'pendente' é o backstop no banco.
type Pendencia struct {
	ID            string
	Protocolo     string // opaco, único, nunca reutilizado
	Tipo          string // ver constantes Pendencia*
	FuncionarioID string
	FilialID      string
	CorretorID    string
	// StatusAnterior guarda o status do funcionário antes da transição que
	// emitiu a pendência; usado para reverter em caso de negação.
	StatusAnterior string
	Detalhe        string
	Status         string // pendente | concluido
	CriadaEm       time.Time
	VenceEm        time.Time
	ConcluidaEm    *time.Time // nil enquanto pendente
}
