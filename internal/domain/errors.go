package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("o email já está cadastrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrConflict           = errors.New("conflito com o estado atual")

	// ErrJaResolvida indica que a pendência já foi concluída. É um sinal
	// benigno de idempotência: o caller pode exibir aviso em vez de erro.
	ErrJaResolvida = errors.New("pendência já resolvida")

	// ErrVinculoCorretor indica que o funcionário ou a filial não possui
	// vínculo com um corretor; aborta a transição que o exigiu.
	ErrVinculoCorretor = errors.New("funcionário sem vínculo com corretor")

	ErrCPFInvalido  = errors.New("CPF inválido")
	ErrCNPJInvalido = errors.New("CNPJ inválido")
)
