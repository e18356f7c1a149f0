package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vitalseg/corretora-api/internal/application/dto"
	"github.com/vitalseg/corretora-api/internal/application/movimentacao"
	"github.com/vitalseg/corretora-api/internal/application/usecase"
)

// PendenciaHandler maneja as requisições HTTP de pendências: fila do
// corretor, emissão, resolução individual e em lote, e reparo.
type PendenciaHandler struct {
	mov      *movimentacao.UseCase
	consulta *usecase.ConsultaUseCase
}

// NewPendenciaHandler constrói o handler injetando os casos de uso.
func NewPendenciaHandler(mov *movimentacao.UseCase, consulta *usecase.ConsultaUseCase) *PendenciaHandler {
	return &PendenciaHandler{mov: mov, consulta: consulta}
}

// List godoc
// @Summary      Listar a fila de pendências do corretor
// @Tags         pendencias
// @Produce      json
// @Param        status  query  string  false  "pendente ou concluido"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.PendenciaListResponse
// @Router       /api/pendencias [get]
func (h *PendenciaHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.consulta.ListarPendenciasCorretor(c.Context(), GetCorretorID(c), c.Query("status"), limit, offset)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// ListByFilial godoc
// @Summary      Listar pendências da filial
// @Tags         pendencias
// @Produce      json
// @Param        id      path   string  true   "ID da filial"
// @Param        status  query  string  false  "pendente ou concluido"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.PendenciaListResponse
// @Router       /api/filiais/{id}/pendencias [get]
func (h *PendenciaHandler) ListByFilial(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.consulta.ListarPendenciasFilial(c.Context(), c.Params("id"), c.Query("status"), limit, offset)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByProtocolo godoc
// @Summary      Buscar pendência pelo protocolo
// @Tags         pendencias
// @Produce      json
// @Param        protocolo  path  string  true  "Protocolo"
// @Success      200  {object}  dto.PendenciaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pendencias/protocolo/{protocolo} [get]
func (h *PendenciaHandler) GetByProtocolo(c *fiber.Ctx) error {
	out, err := h.consulta.BuscarPorProtocolo(c.Context(), c.Params("protocolo"))
	if err != nil {
		return handleDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "protocolo não encontrado"})
	}
	return c.JSON(out)
}

// Emitir godoc
// @Summary      Emitir pendência avulsa (idempotente)
// @Description  Reemissões do mesmo par (funcionário, tipo) devolvem a pendência aberta existente com criada=false.
// @Tags         pendencias
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmitirPendenciaRequest  true  "funcionario_id, tipo"
// @Success      201   {object}  dto.EmissaoResponse
// @Success      200   {object}  dto.EmissaoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/pendencias [post]
func (h *PendenciaHandler) Emitir(c *fiber.Ctx) error {
	var in dto.EmitirPendenciaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.FuncionarioID == "" || in.Tipo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "funcionario_id e tipo são obrigatórios"})
	}
	p, criada, err := h.mov.Emitir(c.Context(), escopoDe(c), in.FuncionarioID, in.Tipo, in.Detalhe)
	if err != nil {
		return handleDomainError(c, err)
	}
	status := fiber.StatusOK
	if criada {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(dto.EmissaoResponse{
		Pendencia: usecase.ToPendenciaResponse(p),
		Criada:    criada,
	})
}

// Resolver godoc
// @Summary      Resolver uma pendência (aprovar ou negar)
// @Description  Aplica a decisão do corretor: muda o status do funcionário e conclui a pendência na mesma transação.
// @Tags         pendencias
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da pendência"
// @Param        body  body  dto.ResolverRequest  true  "decisao: aprovar ou negar"
// @Success      200   {object}  dto.ResolucaoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/pendencias/{id}/resolver [post]
func (h *PendenciaHandler) Resolver(c *fiber.Ctx) error {
	var in dto.ResolverRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	res, err := h.mov.Resolver(c.Context(), escopoDe(c), c.Params("id"), in.Decisao)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(dto.ResolucaoResponse{
		PendenciaID:   res.PendenciaID,
		Protocolo:     res.Protocolo,
		Tipo:          res.Tipo,
		Decisao:       res.Decisao,
		FuncionarioID: res.FuncionarioID,
		Nome:          res.Nome,
		FilialID:      res.FilialID,
		NovoStatus:    res.NovoStatus,
	})
}

// ResolverLote godoc
// @Summary      Resolver várias pendências com a mesma decisão
// @Description  Processa em lotes com concorrência limitada; devolve exatamente um desfecho por ID enviado. Falhas individuais não abortam o restante.
// @Tags         pendencias
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResolverLoteRequest  true  "pendencia_ids, decisao"
// @Success      200   {object}  dto.ResolucaoLoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pendencias/resolver-lote [post]
func (h *PendenciaHandler) ResolverLote(c *fiber.Ctx) error {
	var in dto.ResolverLoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if len(in.PendenciaIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "pendencia_ids é obrigatório"})
	}
	res, err := h.mov.ResolverEmLote(c.Context(), escopoDe(c), in.PendenciaIDs, in.Decisao)
	if err != nil {
		return handleDomainError(c, err)
	}
	out := dto.ResolucaoLoteResponse{
		Sucessos: make([]dto.ItemLoteResponse, 0, len(res.Sucessos)),
		Falhas:   make([]dto.FalhaLoteResponse, 0, len(res.Falhas)),
	}
	for _, s := range res.Sucessos {
		out.Sucessos = append(out.Sucessos, dto.ItemLoteResponse{
			PendenciaID:   s.PendenciaID,
			Protocolo:     s.Protocolo,
			FuncionarioID: s.FuncionarioID,
			NovoStatus:    s.NovoStatus,
			JaResolvida:   s.JaResolvida,
		})
	}
	for _, f := range res.Falhas {
		out.Falhas = append(out.Falhas, dto.FalhaLoteResponse{PendenciaID: f.PendenciaID, Erro: f.Erro})
	}
	return c.JSON(out)
}

// Reparar godoc
// @Summary      Reparar pendências em deriva na empresa
// @Description  Emite as pendências que o status dos funcionários exige e que não existem. Idempotente; falha por funcionário não aborta a varredura.
// @Tags         pendencias
// @Produce      json
// @Param        id         path   string  true   "ID da empresa"
// @Param        filial_id  query  string  false  "Restringir a uma filial"
// @Success      200        {object}  dto.ReparoResponse
// @Failure      403        {object}  dto.ErrorResponse
// @Router       /api/empresas/{id}/reparos [post]
func (h *PendenciaHandler) Reparar(c *fiber.Ctx) error {
	escopo, err := escopoEmpresa(c)
	if err != nil {
		return handleDomainError(c, err)
	}
	escopo.FilialID = c.Query("filial_id")
	resultados, err := h.mov.Reparar(c.Context(), escopo)
	if err != nil {
		return handleDomainError(c, err)
	}
	out := dto.ReparoResponse{Itens: make([]dto.ReparoItemResponse, 0, len(resultados))}
	for _, r := range resultados {
		out.Itens = append(out.Itens, dto.ReparoItemResponse{
			FuncionarioID: r.FuncionarioID,
			Tipo:          r.Tipo,
			Criada:        r.Criada,
			Protocolo:     r.Protocolo,
			Erro:          r.Erro,
		})
	}
	return c.JSON(out)
}
