package dto

import "time"

// EmitirPendenciaRequest entrada para emitir uma pendência avulsa
// (tipicamente de documentação).
type EmitirPendenciaRequest struct {
	FuncionarioID string `json:"funcionario_id" validate:"required,uuid"`
	Tipo          string `json:"tipo" validate:"required,oneof=ativacao cancelamento alteracao documentacao"`
	Detalhe       string `json:"detalhe" validate:"omitempty,max=500"`
}

// ResolverRequest entrada para resolver uma pendência.
type ResolverRequest struct {
	Decisao string `json:"decisao" validate:"required,oneof=aprovar negar"`
}

// ResolverLoteRequest entrada para resolver várias pendências com a mesma decisão.
type ResolverLoteRequest struct {
	PendenciaIDs []string `json:"pendencia_ids" validate:"required,min=1,dive,required"`
	Decisao      string   `json:"decisao" validate:"required,oneof=aprovar negar"`
}

// PendenciaResponse saída de uma pendência.
type PendenciaResponse struct {
	ID            string     `json:"id"`
	Protocolo     string     `json:"protocolo"`
	Tipo          string     `json:"tipo"`
	FuncionarioID string     `json:"funcionario_id"`
	FilialID      string     `json:"filial_id"`
	Detalhe       string     `json:"detalhe,omitempty"`
	Status        string     `json:"status"`
	CriadaEm      time.Time  `json:"criada_em"`
	VenceEm       time.Time  `json:"vence_em"`
	ConcluidaEm   *time.Time `json:"concluida_em,omitempty"`
}

// EmissaoResponse saída da emissão: a pendência e se foi criada agora ou já
// estava aberta.
type EmissaoResponse struct {
	Pendencia PendenciaResponse `json:"pendencia"`
	Criada    bool              `json:"criada"`
}

// PendenciaListResponse lista paginada de pendências.
type PendenciaListResponse struct {
	Items []PendenciaResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// ResolucaoResponse saída da resolução de uma pendência.
type ResolucaoResponse struct {
	PendenciaID   string `json:"pendencia_id"`
	Protocolo     string `json:"protocolo"`
	Tipo          string `json:"tipo"`
	Decisao       string `json:"decisao"`
	FuncionarioID string `json:"funcionario_id"`
	Nome          string `json:"nome"`
	FilialID      string `json:"filial_id"`
	NovoStatus    string `json:"novo_status"`
}

// ItemLoteResponse desfecho de sucesso de um item do lote.
type ItemLoteResponse struct {
	PendenciaID   string `json:"pendencia_id"`
	Protocolo     string `json:"protocolo,omitempty"`
	FuncionarioID string `json:"funcionario_id,omitempty"`
	NovoStatus    string `json:"novo_status,omitempty"`
	JaResolvida   bool   `json:"ja_resolvida,omitempty"`
}

// FalhaLoteResponse desfecho de falha de um item do lote.
type FalhaLoteResponse struct {
	PendenciaID string `json:"pendencia_id"`
	Erro        string `json:"erro"`
}

// ResolucaoLoteResponse saída da resolução em lote: um desfecho por ID enviado.
type ResolucaoLoteResponse struct {
	Sucessos []ItemLoteResponse  `json:"sucessos"`
	Falhas   []FalhaLoteResponse `json:"falhas"`
}

// ReparoItemResponse desfecho por funcionário de uma rodada de reparo.
type ReparoItemResponse struct {
	FuncionarioID string `json:"funcionario_id"`
	Tipo          string `json:"tipo,omitempty"`
	Criada        bool   `json:"criada"`
	Protocolo     string `json:"protocolo,omitempty"`
	Erro          string `json:"erro,omitempty"`
}

// ReparoResponse saída de uma rodada de reparo.
type ReparoResponse struct {
	Itens []ReparoItemResponse `json:"itens"`
}
